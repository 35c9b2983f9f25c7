// Package sanitizer provides small stateless helpers for cleaning user input
// and constraining numbers before they reach domain code.
//
// Numeric helpers are generic over the built-in number types:
//
//	sanitizer.Clamp(15, 1, 10)            // 10
//	sanitizer.RoundHalfUp(-2.5, 0)        // -2
//	sanitizer.Quantize(730.0, 0.0, 100.0) // 700
//	sanitizer.Percentage(25, 200)         // 12.5
//
// String helpers compose through Apply:
//
//	sanitizer.NumberInput(" 42\t\n") // "42"
//
// None of the helpers returns an error, and all are safe for concurrent use.
package sanitizer
