package validator

import (
	"fmt"
	"math"
)

// Finite validates that a number is neither NaN nor infinite.
func Finite[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			f := float64(value)
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: KeyFinite,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Integer validates that a number has no fractional part.
func Integer[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			f := float64(value)
			return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an integer",
			TranslationKey: KeyInteger,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: KeyMin,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: KeyMax,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Less validates that a numeric value is strictly below the bound.
func Less[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value < bound
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be less than %v", bound),
			TranslationKey: KeyLess,
			TranslationValues: map[string]any{
				"field": field,
				"bound": bound,
			},
		},
	}
}

// Greater validates that a numeric value is strictly above the bound.
func Greater[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value > bound
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be greater than %v", bound),
			TranslationKey: KeyGreater,
			TranslationValues: map[string]any{
				"field": field,
				"bound": bound,
			},
		},
	}
}

// Min is an alias for MinNum for common numeric validation.
func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

// Max is an alias for MaxNum for common numeric validation.
func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
