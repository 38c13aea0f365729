// Package feedback maps evaluation outcomes to presentation-neutral signals.
package feedback

import "time"

// Kind is the tone of a signal.
type Kind string

const (
	KindNone    Kind = ""
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Outcome is the result of evaluating a learner's input.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeFinished
	OutcomeMatch
	OutcomeMismatch
	OutcomeSorted
	OutcomeNotSorted
)

// Message keys. The presentation layer owns the bilingual text behind them.
const (
	MsgReady     = "ready"
	MsgCorrect   = "correct"
	MsgTryAgain  = "try_again"
	MsgFinished  = "finished"
	MsgMatch     = "match"
	MsgMismatch  = "mismatch"
	MsgSorted    = "sorted"
	MsgNotSorted = "not_sorted"
)

// Signal tells the presentation what to show and when the engine will move on.
// AutoAdvanceAfter is zero when no timed transition follows.
type Signal struct {
	Kind             Kind
	Message          string
	AutoAdvanceAfter time.Duration
}

// Context carries the timing of the game the outcome belongs to.
type Context struct {
	AdvanceDelay  time.Duration
	RetryDelay    time.Duration
	MismatchDelay time.Duration
}

// For returns the signal for an outcome.
func For(o Outcome, c Context) Signal {
	switch o {
	case OutcomeCorrect:
		return Signal{Kind: KindSuccess, Message: MsgCorrect, AutoAdvanceAfter: c.AdvanceDelay}
	case OutcomeIncorrect:
		return Signal{Kind: KindError, Message: MsgTryAgain, AutoAdvanceAfter: c.RetryDelay}
	case OutcomeFinished:
		return Signal{Kind: KindSuccess, Message: MsgFinished}
	case OutcomeMatch:
		return Signal{Kind: KindSuccess, Message: MsgMatch}
	case OutcomeMismatch:
		return Signal{Kind: KindError, Message: MsgMismatch, AutoAdvanceAfter: c.MismatchDelay}
	case OutcomeSorted:
		return Signal{Kind: KindSuccess, Message: MsgSorted}
	case OutcomeNotSorted:
		return Signal{Kind: KindError, Message: MsgNotSorted}
	default:
		return Signal{Kind: KindInfo, Message: MsgReady}
	}
}
