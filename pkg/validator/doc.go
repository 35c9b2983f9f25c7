// Package validator provides small, generic validation rules for numeric
// values and the plumbing to evaluate them.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Apply evaluates every rule and aggregates failures into ValidationErrors,
// which satisfies the error interface. ApplyFirst stops at the first failure,
// which suits ordered checks where a type rule guards the range rules that
// follow it.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.Finite("min", v),
//	    validator.Min("min", v, 0),
//	    validator.Less("min", v, currentMax),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	    if first.IsTypeError() {
//	        // malformed value
//	    }
//	}
//
// The package is stateless and goroutine-safe.
package validator
