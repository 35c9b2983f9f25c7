package rangeslider

import "github.com/dmitrymomot/filterkit/pkg/sanitizer"

// Handle selects one of the two thumbs of the range.
type Handle int

const (
	Low Handle = iota
	High
)

func (h Handle) String() string {
	if h == High {
		return "high"
	}
	return "low"
}

// KeyAction is a keyboard command applied to a focused handle.
type KeyAction int

const (
	KeyIncrement KeyAction = iota + 1
	KeyDecrement
	KeyHome
	KeyEnd
)

// ParseKey maps a DOM-style key name to its action.
func ParseKey(key string) (KeyAction, bool) {
	switch key {
	case "ArrowUp", "ArrowRight":
		return KeyIncrement, true
	case "ArrowDown", "ArrowLeft":
		return KeyDecrement, true
	case "Home":
		return KeyHome, true
	case "End":
		return KeyEnd, true
	}
	return 0, false
}

// Value returns the committed value of h.
func (s *State) Value(h Handle) float64 {
	if h == High {
		return s.high
	}
	return s.low
}

// SetHandle moves one handle and keeps the other. Crossing the other handle
// swaps them, as Update does.
func (s *State) SetHandle(h Handle, v float64) error {
	if h == High {
		return s.Update(s.low, v)
	}
	return s.Update(v, s.high)
}

// MoveHandle applies a drag: fraction is the pointer delta divided by the
// track width, start is the handle value when the drag began.
func (s *State) MoveHandle(h Handle, start, fraction float64) error {
	return s.SetHandle(h, start+fraction*(s.max-s.min))
}

// Nudge applies a keyboard action to h. With rtl set, increment and
// decrement swap direction.
func (s *State) Nudge(h Handle, action KeyAction, rtl bool) error {
	dir := 1.0
	if rtl {
		dir = -1
	}

	current := s.Value(h)
	switch action {
	case KeyIncrement:
		return s.SetHandle(h, current+s.step*dir)
	case KeyDecrement:
		return s.SetHandle(h, current-s.step*dir)
	case KeyHome:
		return s.SetHandle(h, s.min)
	case KeyEnd:
		return s.SetHandle(h, s.max)
	}
	return ErrUnknownKey
}

// Positions returns each handle's offset along the track in percent.
func (s *State) Positions() Positions {
	span := s.max - s.min
	return Positions{
		Low:  sanitizer.Percentage(s.low-s.min, span),
		High: sanitizer.Percentage(s.high-s.min, span),
	}
}
