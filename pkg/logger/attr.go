package logger

import (
	"log/slog"
	"math"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Code records a stable numeric error code under the key "code".
func Code(code int) slog.Attr {
	return slog.Int("code", code)
}

// Field records the name of the field being validated under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Float records v under key. NaN and infinities are written as the strings
// "NaN", "+Inf" and "-Inf" so that JSON output stays encodable.
func Float(key string, v float64) slog.Attr {
	switch {
	case math.IsNaN(v):
		return slog.String(key, "NaN")
	case math.IsInf(v, 1):
		return slog.String(key, "+Inf")
	case math.IsInf(v, -1):
		return slog.String(key, "-Inf")
	}
	return slog.Float64(key, v)
}

// Bound records an interval as a group with "min" and "max" keys.
// Unbounded ends are written as strings, see Float.
func Bound(name string, lo, hi float64) slog.Attr {
	return Group(name, Float("min", lo), Float("max", hi))
}

// HierarchyLevel records how deep in a parent/child chain a record originated.
func HierarchyLevel(level int) slog.Attr {
	return slog.Int("hierarchy", level)
}

// StateID records a state identifier under the key "state_id".
// If id is empty, it returns an empty Attr.
func StateID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("state_id", id)
}

// Page records a page number under the key "page".
func Page(n int) slog.Attr {
	return slog.Int("page", n)
}
