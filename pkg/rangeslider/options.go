package rangeslider

import "log/slog"

// ErrorHandler receives every validation failure raised by a State.
type ErrorHandler func(*Error)

// Option configures a State.
type Option func(*options)

type options struct {
	parent  *State
	handler ErrorHandler
	log     *slog.Logger
	limits  Limits
	bounds  Limits
}

// WithParent attaches the new state to parent: limits are inherited from it
// and unhandled errors escalate to it.
func WithParent(parent *State) Option {
	return func(o *options) { o.parent = parent }
}

// WithErrorHandler overrides error routing for this state. Without it, errors
// go to the parent, and at the root they are logged.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) { o.handler = h }
}

// WithLogger sets the logger used to report errors reaching the root.
// Children inherit their parent's logger by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLimits sets this state's own absolute bounds. On a root they replace
// DefaultLimits; on a child they are intersected with the parent's effective
// bounds, so they can only narrow.
func WithLimits(l Limits) Option {
	return func(o *options) { o.limits = l.clone() }
}

// WithBound sets the own bound of a single field. See WithLimits.
func WithBound(f Field, b Bound) Option {
	return func(o *options) {
		if o.bounds == nil {
			o.bounds = make(Limits)
		}
		o.bounds[f] = b
	}
}

func (o *options) ownLimits() Limits {
	var own Limits
	switch {
	case o.limits != nil:
		own = o.limits.clone()
	case o.parent == nil:
		own = DefaultLimits()
	default:
		own = make(Limits)
	}
	for f, b := range o.bounds {
		own[f] = b
	}
	return own
}
