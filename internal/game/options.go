package game

// Recorder receives interaction events. Implementations must not block and
// must not call back into the game.
type Recorder interface {
	Record(name string, attrs map[string]any)
}

type nopRecorder struct{}

func (nopRecorder) Record(string, map[string]any) {}

// Event names sent to the Recorder.
const (
	EventRoundResolved = "round_resolved"
	EventGameFinished  = "game_finished"
	EventGameReset     = "game_reset"
	EventCardsMatched  = "cards_matched"
	EventOrderChecked  = "order_checked"
)

type options struct {
	scheduler Scheduler
	recorder  Recorder
	onChange  func()
}

// Option configures a game instance.
type Option func(*options)

// WithScheduler sets the scheduler for timed transitions.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithRecorder sets the analytics recorder.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithOnChange registers fn to be called after every timed transition, so
// the presentation can re-render state it did not ask for.
func WithOnChange(fn func()) Option {
	return func(o *options) { o.onChange = fn }
}

func newOptions(opts []Option) options {
	o := options{
		scheduler: RealScheduler{},
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
