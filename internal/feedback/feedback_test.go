package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	c := Context{
		AdvanceDelay:  1500 * time.Millisecond,
		RetryDelay:    time.Second,
		MismatchDelay: 800 * time.Millisecond,
	}

	tests := []struct {
		name    string
		outcome Outcome
		want    Signal
	}{
		{"pending", OutcomePending, Signal{Kind: KindInfo, Message: MsgReady}},
		{"correct", OutcomeCorrect, Signal{Kind: KindSuccess, Message: MsgCorrect, AutoAdvanceAfter: 1500 * time.Millisecond}},
		{"incorrect", OutcomeIncorrect, Signal{Kind: KindError, Message: MsgTryAgain, AutoAdvanceAfter: time.Second}},
		{"finished", OutcomeFinished, Signal{Kind: KindSuccess, Message: MsgFinished}},
		{"match", OutcomeMatch, Signal{Kind: KindSuccess, Message: MsgMatch}},
		{"mismatch", OutcomeMismatch, Signal{Kind: KindError, Message: MsgMismatch, AutoAdvanceAfter: 800 * time.Millisecond}},
		{"sorted", OutcomeSorted, Signal{Kind: KindSuccess, Message: MsgSorted}},
		{"not sorted", OutcomeNotSorted, Signal{Kind: KindError, Message: MsgNotSorted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.outcome, c))
		})
	}
}

func TestFor_Pure(t *testing.T) {
	c := Context{AdvanceDelay: time.Second}
	assert.Equal(t, For(OutcomeCorrect, c), For(OutcomeCorrect, c))
}
