package rangeslider

import "math"

// Field identifies one of the configurable numeric fields of a State.
type Field int

const (
	FieldPrecision Field = iota
	FieldMin
	FieldMax
	FieldStep
)

var fieldNames = [...]string{
	FieldPrecision: "precision",
	FieldMin:       "min",
	FieldMax:       "max",
	FieldStep:      "step",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields lists every configurable field in the order New applies them.
func Fields() []Field {
	return []Field{FieldPrecision, FieldMin, FieldMax, FieldStep}
}

// Bound is an inclusive absolute interval. Infinite ends mean "unbounded".
type Bound struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func Unbounded() Bound { return Bound{Min: math.Inf(-1), Max: math.Inf(1)} }

func AtLeast(v float64) Bound { return Bound{Min: v, Max: math.Inf(1)} }

func AtMost(v float64) Bound { return Bound{Min: math.Inf(-1), Max: v} }

func Between(lo, hi float64) Bound { return Bound{Min: lo, Max: hi} }

// Intersect returns the tightest bound satisfying both b and o.
func (b Bound) Intersect(o Bound) Bound {
	return Bound{Min: math.Max(b.Min, o.Min), Max: math.Min(b.Max, o.Max)}
}

func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Limits holds absolute bounds per field. A field missing from the map is
// unbounded at this level and inherits whatever the parent chain enforces.
type Limits map[Field]Bound

// DefaultLimits returns the bounds a root State starts from.
func DefaultLimits() Limits {
	return Limits{
		FieldPrecision: Between(0, 10),
		FieldMin:       AtLeast(0),
		FieldMax:       AtMost(10000),
		FieldStep:      AtLeast(1),
	}
}

// Bound returns the bound for f, or Unbounded when none is set.
func (l Limits) Bound(f Field) Bound {
	if b, ok := l[f]; ok {
		return b
	}
	return Unbounded()
}

func (l Limits) clone() Limits {
	out := make(Limits, len(l))
	for f, b := range l {
		out[f] = b
	}
	return out
}
