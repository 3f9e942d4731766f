package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the search exceeds WithMaxExpansions.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrNegativeCost is returned when a successor reports a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrUnknownStrategy is returned by ParseStrategy and Run for an unknown name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Result is the outcome of one search call.
//
// Found == false is the no-solution signal: the frontier was exhausted without
// popping a goal. Found == true with an empty Actions slice means the start
// state is itself a goal.
type Result[A any] struct {
	// Actions leads from the start state to the goal, in order.
	Actions []A

	// Found reports whether a goal state was reached.
	Found bool

	// Cost is the sum of step costs along Actions.
	Cost float64

	// Expanded counts states whose successors were generated.
	Expanded int

	// Generated counts successor entries pushed onto the frontier.
	Generated int
}

// Summary describes a finished search call. It is handed to an Observer.
type Summary struct {
	Strategy  Strategy
	Found     bool
	Cost      float64
	Length    int
	Expanded  int
	Generated int
	Duration  time.Duration
	Err       error
}

// Observer receives a Summary each time a search call returns.
type Observer interface {
	ObserveSearch(s Summary)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(s Summary)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s Summary) { f(s) }

// Option configures a search call via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// strategy runs.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search call.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of expansions.
	// 0 disables the limit.
	MaxExpansions int

	// OnExpand is called right before a state is expanded, with its depth
	// (number of actions from the start). A returned error aborts the search.
	OnExpand func(depth int) error

	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Observer, if non-nil, receives a Summary when the call returns.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - no-op OnExpand hook
//   - a logger that discards everything
//   - no observer
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(int) error { return nil },
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds how many states may be expanded.
//
//	n > 0:  stop with ErrExpansionLimit once n states were expanded
//	n == 0: explicit "no limit"
//	n < 0:  invalid option -> ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer notified when the call returns.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
