// Package rangeslider implements the state of a dual-handle numeric range
// control: validated configuration, grid snapping and hierarchical limits.
//
// A State owns precision, min, max, step and the committed low/high values.
// Every mutation is validated first; a rejected mutation leaves the state
// exactly as it was.
//
// # Snapping
//
// SnapValue rounds to precision, clamps to [min, max], quantizes to the
// nearest multiple of step counted from min and clamps to max once more.
// Update snaps both inputs and stores them in ascending order.
//
// # Hierarchy
//
// CreateChild returns a State whose absolute limits are the intersection of
// its own bounds (WithLimits, WithBound) and its parent's effective limits,
// so children narrow and never widen.
//
// # Errors
//
// Validation failures are *Error values with a Kind, a stable Code, the
// offending value, the violated bound, the other fields' current values,
// the hierarchy depth and a snapshot of the parent config. Each mutating
// method returns the error and also delivers it to the error chain: the
// state's own ErrorHandler if set, otherwise the parent's chain, otherwise
// the root logs it through slog.
//
//	root, _ := rangeslider.New(rangeslider.Config{Max: 5000, Step: 50})
//	price, _ := root.CreateChild(rangeslider.Config{Min: 100, Max: 3000, Step: 10})
//	if err := price.Update(2500, 400); err != nil {
//	    // NaN input only
//	}
//	price.Values() // {Low: 400, High: 2500}
package rangeslider
