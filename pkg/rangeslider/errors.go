package rangeslider

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrInvalidPrecision = errors.New("rangeslider: invalid precision")
	ErrInvalidMin       = errors.New("rangeslider: invalid min")
	ErrInvalidMax       = errors.New("rangeslider: invalid max")
	ErrInvalidStep      = errors.New("rangeslider: invalid step")
	ErrInvalidInput     = errors.New("rangeslider: invalid input values")
	ErrUnknownKey       = errors.New("rangeslider: unknown key action")
)

// Kind classifies a validation failure.
type Kind string

const (
	KindInvalidPrecisionType  Kind = "INVALID_PRECISION_TYPE"
	KindInvalidPrecisionRange Kind = "INVALID_PRECISION_RANGE"
	KindInvalidMinType        Kind = "INVALID_MIN_TYPE"
	KindInvalidMinRange       Kind = "INVALID_MIN_RANGE"
	KindInvalidMaxType        Kind = "INVALID_MAX_TYPE"
	KindInvalidMaxRange       Kind = "INVALID_MAX_RANGE"
	KindInvalidStepType       Kind = "INVALID_STEP_TYPE"
	KindInvalidStepRange      Kind = "INVALID_STEP_RANGE"
	KindInvalidInput          Kind = "INVALID_INPUT"
)

var kindCodes = map[Kind]int{
	KindInvalidPrecisionType:  10000001,
	KindInvalidPrecisionRange: 10000002,
	KindInvalidMinType:        10000003,
	KindInvalidMinRange:       10000004,
	KindInvalidMaxType:        10000005,
	KindInvalidMaxRange:       10000006,
	KindInvalidStepType:       10000007,
	KindInvalidStepRange:      10000008,
	KindInvalidInput:          10000009,
}

// Code returns the stable numeric code of k, or 0 for an unknown kind.
func (k Kind) Code() int { return kindCodes[k] }

// IsTypeError reports whether k describes a malformed value.
func (k Kind) IsTypeError() bool {
	switch k {
	case KindInvalidPrecisionType, KindInvalidMinType, KindInvalidMaxType, KindInvalidStepType:
		return true
	}
	return false
}

func kindFor(f Field, typeErr bool) Kind {
	switch f {
	case FieldPrecision:
		if typeErr {
			return KindInvalidPrecisionType
		}
		return KindInvalidPrecisionRange
	case FieldMin:
		if typeErr {
			return KindInvalidMinType
		}
		return KindInvalidMinRange
	case FieldMax:
		if typeErr {
			return KindInvalidMaxType
		}
		return KindInvalidMaxRange
	default:
		if typeErr {
			return KindInvalidStepType
		}
		return KindInvalidStepRange
	}
}

// Error is the structured payload delivered to error handlers and returned
// from mutating methods.
type Error struct {
	Kind  Kind
	Field string
	Value float64

	// Limits is the effective absolute bound of the field.
	Limits Bound
	// Context holds the other fields' current values: Min is the current min,
	// Max the current max. Only meaningful when HasContext is true.
	Context    Bound
	HasContext bool

	HierarchyLevel int
	// ParentConfig is a snapshot of the immediate parent's config, nil at the root.
	ParentConfig *Config
	StateID      string

	Cause error
}

func (e *Error) Code() int { return e.Kind.Code() }

func (e *Error) Error() string {
	v := num(e.Value)
	switch e.Kind {
	case KindInvalidPrecisionType:
		return fmt.Sprintf("Precision %s value type must be integer", v)
	case KindInvalidPrecisionRange:
		return fmt.Sprintf("Precision %s out of range [%s-%s]", v, num(e.Limits.Min), num(e.Limits.Max))
	case KindInvalidMinType:
		return fmt.Sprintf("Min %s value type must be a number", v)
	case KindInvalidMinRange:
		return fmt.Sprintf("Min %s out of range [%s-%s]", v, num(e.Limits.Min), num(math.Min(e.Limits.Max, e.Context.Max)))
	case KindInvalidMaxType:
		return fmt.Sprintf("Max %s value type must be a number", v)
	case KindInvalidMaxRange:
		return fmt.Sprintf("Max %s out of range [%s-%s]", v, num(math.Max(e.Limits.Min, e.Context.Min)), num(e.Limits.Max))
	case KindInvalidStepType:
		return fmt.Sprintf("Step %s value type must be a number", v)
	case KindInvalidStepRange:
		return fmt.Sprintf("Step %s must be >= %s and < %s", v, num(math.Max(e.Limits.Min, 0)), num(e.Context.Max-e.Context.Min))
	case KindInvalidInput:
		return "Invalid input values"
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Kind)
}

// Unwrap exposes the per-field sentinel and the underlying validation cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindInvalidPrecisionType, KindInvalidPrecisionRange:
		return ErrInvalidPrecision
	case KindInvalidMinType, KindInvalidMinRange:
		return ErrInvalidMin
	case KindInvalidMaxType, KindInvalidMaxRange:
		return ErrInvalidMax
	case KindInvalidStepType, KindInvalidStepRange:
		return ErrInvalidStep
	default:
		return ErrInvalidInput
	}
}

// AsError extracts the structured *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries a *Error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == k
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
