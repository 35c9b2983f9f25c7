package rangeslider

import (
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/filterkit/pkg/logger"
	"github.com/dmitrymomot/filterkit/pkg/sanitizer"
	"github.com/dmitrymomot/filterkit/pkg/validator"
)

// State is a validated dual-handle numeric range.
//
// A State is not safe for concurrent use; the owner serializes mutations.
type State struct {
	id string

	precision float64
	min       float64
	max       float64
	step      float64
	unit      string

	low  float64
	high float64

	limits  Limits
	parent  *State
	handler ErrorHandler
	log     *slog.Logger
}

// New builds a State from cfg merged over DefaultConfig.
//
// Fields are applied in order: precision, min, max, step. A rejected field
// keeps its default, its error goes through the error chain, and New returns
// the joined field errors next to a usable, partially defaulted State. The
// returned State is never nil.
func New(cfg Config, opts ...Option) (*State, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil && o.parent != nil {
		o.log = o.parent.log
	}

	cfg = cfg.withDefaults()
	def := DefaultConfig()

	s := &State{
		id:        uuid.NewString(),
		precision: def.Precision,
		min:       def.Min,
		max:       def.Max,
		step:      def.Step,
		unit:      cfg.Unit,
		limits:    o.ownLimits(),
		parent:    o.parent,
		handler:   o.handler,
		log:       logger.OrDefault(o.log),
	}
	s.low, s.high = s.min, s.max

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	collect(s.SetPrecision(cfg.Precision))
	// min is checked against the requested max so that {min: 1500, max: 2000}
	// is accepted even though the default max is 1000.
	collect(s.setMin(cfg.Min, s.constructionMax(cfg.Max)))
	collect(s.SetMax(cfg.Max))
	collect(s.SetStep(cfg.Step))

	s.low, s.high = s.min, s.max

	return s, errors.Join(errs...)
}

// CreateChild returns a state whose limits read through to s and whose
// errors escalate to s.
func (s *State) CreateChild(cfg Config, opts ...Option) (*State, error) {
	return New(cfg, append([]Option{WithParent(s)}, opts...)...)
}

// constructionMax returns requested only when SetMax can accept it, so min is
// never committed against a max that is rejected right after.
func (s *State) constructionMax(requested float64) float64 {
	if !math.IsNaN(requested) && !math.IsInf(requested, 0) && s.effective(FieldMax).Contains(requested) {
		return requested
	}
	return s.max
}

// effective walks the parent chain and intersects every explicit bound on the way.
func (s *State) effective(f Field) Bound {
	own := s.limits.Bound(f)
	if s.parent == nil {
		return own
	}
	return own.Intersect(s.parent.effective(f))
}

// Limits returns the effective bounds enforced on s.
func (s *State) Limits() Limits {
	out := make(Limits, len(fieldNames))
	for _, f := range Fields() {
		out[f] = s.effective(f)
	}
	return out
}

// SetPrecision sets the number of decimal digits kept when rounding input.
func (s *State) SetPrecision(v float64) error {
	b := s.effective(FieldPrecision)
	err := validator.ApplyFirst(
		validator.Integer("precision", v),
		validator.Min("precision", v, 0),
		validator.Min("precision", v, b.Min),
		validator.Max("precision", v, b.Max),
	)
	if err != nil {
		return s.reject(FieldPrecision, v, b, Bound{}, false, err)
	}
	s.precision = v
	s.settle()
	return nil
}

// SetMin moves the lower end of the range. The low handle resets to it.
func (s *State) SetMin(v float64) error {
	return s.setMin(v, s.max)
}

func (s *State) setMin(v, currentMax float64) error {
	b := s.effective(FieldMin)
	err := validator.ApplyFirst(
		validator.Finite("min", v),
		validator.Min("min", v, b.Min),
		validator.Max("min", v, b.Max),
		validator.Less("min", v, currentMax),
	)
	if err != nil {
		return s.reject(FieldMin, v, b, Bound{Min: s.min, Max: currentMax}, true, err)
	}
	s.min = v
	s.low = v
	s.settle()
	return nil
}

// SetMax moves the upper end of the range. The high handle resets to it.
func (s *State) SetMax(v float64) error {
	b := s.effective(FieldMax)
	err := validator.ApplyFirst(
		validator.Finite("max", v),
		validator.Max("max", v, b.Max),
		validator.Min("max", v, b.Min),
		validator.Greater("max", v, s.min),
	)
	if err != nil {
		return s.reject(FieldMax, v, b, Bound{Min: s.min, Max: s.max}, true, err)
	}
	s.max = v
	s.high = v
	s.settle()
	return nil
}

// SetStep sets the quantization step. It must be smaller than max - min.
func (s *State) SetStep(v float64) error {
	b := s.effective(FieldStep)
	err := validator.ApplyFirst(
		validator.Finite("step", v),
		validator.Greater("step", v, 0),
		validator.Min("step", v, b.Min),
		validator.Max("step", v, b.Max),
		validator.Less("step", v, s.max-s.min),
	)
	if err != nil {
		return s.reject(FieldStep, v, b, Bound{Min: s.min, Max: s.max}, true, err)
	}
	s.step = v
	s.settle()
	return nil
}

// SnapValue maps v onto the {min, max, step} grid: round to precision, clamp
// to [min, max], quantize from min, then clamp to max again. Both ends stay
// reachable even when max is not on the grid.
func (s *State) SnapValue(v float64) float64 {
	rounded := sanitizer.RoundHalfUp(v, int(s.precision))
	clamped := sanitizer.Clamp(rounded, s.min, s.max)
	if clamped == s.max {
		return s.max
	}
	return math.Min(sanitizer.Quantize(clamped, s.min, s.step), s.max)
}

// Update snaps both values and commits them in ascending order; an inverted
// pair is swapped silently. A NaN argument is rejected with no state change.
func (s *State) Update(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) {
		bad := low
		if !math.IsNaN(low) {
			bad = high
		}
		return s.rejectInput(bad)
	}
	s.commit(s.SnapValue(low), s.SnapValue(high))
	return nil
}

// UpdateRaw parses form-style input and calls Update. Blank strings count as
// zero; anything unparsable is rejected as invalid input.
func (s *State) UpdateRaw(low, high string) error {
	return s.Update(parseNumber(low), parseNumber(high))
}

func (s *State) commit(a, b float64) {
	s.low, s.high = math.Min(a, b), math.Max(a, b)
}

// settle re-snaps both handles after a field change.
func (s *State) settle() {
	s.commit(s.SnapValue(s.low), s.SnapValue(s.high))
}

func (s *State) Values() Values { return Values{Low: s.low, High: s.high} }

// Config returns a snapshot of the current configuration.
func (s *State) Config() Config {
	return Config{
		Precision: s.precision,
		Min:       s.min,
		Max:       s.max,
		Step:      s.step,
		Unit:      s.unit,
	}
}

func (s *State) Precision() float64 { return s.precision }
func (s *State) Min() float64       { return s.min }
func (s *State) Max() float64       { return s.max }
func (s *State) Step() float64      { return s.step }
func (s *State) Unit() string       { return s.unit }
func (s *State) ID() string         { return s.id }
func (s *State) Parent() *State     { return s.parent }

// HierarchyLevel is 0 for a root and grows by one per ancestor.
func (s *State) HierarchyLevel() int {
	level := 0
	for p := s.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

func (s *State) reject(f Field, v float64, limits, context Bound, hasContext bool, cause error) *Error {
	typeErr := false
	if first, ok := validator.ExtractValidationErrors(cause).First(); ok {
		typeErr = first.IsTypeError()
	}
	e := s.newError(kindFor(f, typeErr), f.String(), v, cause)
	e.Limits = limits
	e.Context = context
	e.HasContext = hasContext
	s.report(e)
	return e
}

func (s *State) rejectInput(v float64) *Error {
	e := s.newError(KindInvalidInput, "", v, nil)
	e.Limits = Bound{Min: s.min, Max: s.max}
	s.report(e)
	return e
}

func (s *State) newError(k Kind, field string, v float64, cause error) *Error {
	e := &Error{
		Kind:           k,
		Field:          field,
		Value:          v,
		HierarchyLevel: s.HierarchyLevel(),
		StateID:        s.id,
		Cause:          cause,
	}
	if s.parent != nil {
		cfg := s.parent.Config()
		e.ParentConfig = &cfg
	}
	return e
}

// report delivers e to the explicit handler, else to the parent chain, else
// logs it at the root.
func (s *State) report(e *Error) {
	switch {
	case s.handler != nil:
		s.handler(e)
	case s.parent != nil:
		s.parent.report(e)
	default:
		s.logRoot(e)
	}
}

func (s *State) logRoot(e *Error) {
	attrs := []any{
		logger.Component("rangeslider"),
		logger.Code(e.Code()),
		slog.String("kind", string(e.Kind)),
		logger.Float("value", e.Value),
		logger.Bound("limits", e.Limits.Min, e.Limits.Max),
		logger.HierarchyLevel(e.HierarchyLevel),
		logger.StateID(e.StateID),
		logger.Error(e),
	}
	if e.Field != "" {
		attrs = append(attrs, logger.Field(e.Field))
	}
	if e.ParentConfig != nil {
		attrs = append(attrs, logger.Group("parent_config",
			slog.Float64("precision", e.ParentConfig.Precision),
			slog.Float64("min", e.ParentConfig.Min),
			slog.Float64("max", e.ParentConfig.Max),
			slog.Float64("step", e.ParentConfig.Step),
		))
	}
	s.log.Error("range state error", attrs...)
}

func parseNumber(raw string) float64 {
	raw = sanitizer.NumberInput(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
