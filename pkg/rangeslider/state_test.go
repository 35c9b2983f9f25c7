package rangeslider_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filterkit/pkg/logger"
	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

// recorder collects errors delivered through the handler chain.
type recorder struct {
	errs []*rangeslider.Error
}

func (r *recorder) handle(e *rangeslider.Error) { r.errs = append(r.errs, e) }

func (r *recorder) last(t *testing.T) *rangeslider.Error {
	t.Helper()
	require.NotEmpty(t, r.errs, "expected an error to be reported")
	return r.errs[len(r.errs)-1]
}

func newState(t *testing.T, cfg rangeslider.Config, opts ...rangeslider.Option) (*rangeslider.State, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append(opts, rangeslider.WithErrorHandler(rec.handle))
	s, err := rangeslider.New(cfg, opts...)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s, rec
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, rangeslider.Config{})

	assert.Equal(t, rangeslider.DefaultConfig(), s.Config())
	assert.Equal(t, rangeslider.Values{Low: 0, High: 1000}, s.Values())
	assert.Equal(t, "₽", s.Unit())
	assert.Equal(t, 0, s.HierarchyLevel())
	assert.Nil(t, s.Parent())
	assert.NotEmpty(t, s.ID())
	assert.Empty(t, rec.errs)
}

func TestNew_AppliesConfig(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, rangeslider.Config{Min: 1500, Max: 2000, Step: 50, Unit: "$"})

	assert.Equal(t, 1500.0, s.Min())
	assert.Equal(t, 2000.0, s.Max())
	assert.Equal(t, 50.0, s.Step())
	assert.Equal(t, "$", s.Unit())
	assert.Equal(t, rangeslider.Values{Low: 1500, High: 2000}, s.Values())
}

func TestNew_PartiallyDefaulted(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s, err := rangeslider.New(
		rangeslider.Config{Min: 1500, Max: 20000},
		rangeslider.WithErrorHandler(rec.handle),
	)
	require.Error(t, err)
	require.NotNil(t, s)

	assert.ErrorIs(t, err, rangeslider.ErrInvalidMin)
	assert.ErrorIs(t, err, rangeslider.ErrInvalidMax)
	assert.Len(t, rec.errs, 2)

	assert.Equal(t, 0.0, s.Min())
	assert.Equal(t, 1000.0, s.Max())
	assert.Equal(t, 100.0, s.Step())
	assert.Less(t, s.Min(), s.Max())
	assert.Equal(t, rangeslider.Values{Low: 0, High: 1000}, s.Values())
}

func TestSnapValue_ClampsToBounds(t *testing.T) {
	t.Parallel()

	configs := []rangeslider.Config{
		{Min: 0, Max: 100, Step: 10},
		{Min: 5, Max: 95, Step: 10},
		{Min: 100, Max: 10000, Step: 250},
		{Min: 0, Max: 1000, Step: 999},
		{Min: 1, Max: 3, Step: 1},
	}

	for _, cfg := range configs {
		s, _ := newState(t, cfg)
		assert.Equal(t, cfg.Min, s.SnapValue(cfg.Min-1000), "below min for %+v", cfg)
		assert.Equal(t, cfg.Max, s.SnapValue(cfg.Max+1000), "above max for %+v", cfg)
		assert.Equal(t, cfg.Min, s.SnapValue(math.Inf(-1)))
		assert.Equal(t, cfg.Max, s.SnapValue(math.Inf(1)))
	}
}

func TestSnapValue_Idempotent(t *testing.T) {
	t.Parallel()

	configs := []rangeslider.Config{
		{Min: 0, Max: 100, Step: 10},
		{Min: 5, Max: 95, Step: 10},
		{Min: 0, Max: 1000, Step: 300},
		{Precision: 2, Min: 0, Max: 10, Step: 1},
	}
	inputs := []float64{-50, 0, 3, 4.999, 5, 14.5, 33.3333, 94, 95, 96, 250, 999.5, 1e6}

	for _, cfg := range configs {
		s, _ := newState(t, cfg)
		for _, v := range inputs {
			once := s.SnapValue(v)
			assert.Equal(t, once, s.SnapValue(once), "cfg %+v input %v", cfg, v)
			assert.GreaterOrEqual(t, once, s.Min())
			assert.LessOrEqual(t, once, s.Max())
		}
	}
}

func TestSnapValue_Grid(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, rangeslider.Config{Min: 5, Max: 95, Step: 10})

	assert.Equal(t, 5.0, s.SnapValue(9.4))
	assert.Equal(t, 15.0, s.SnapValue(10))
	assert.Equal(t, 85.0, s.SnapValue(89))
	assert.Equal(t, 95.0, s.SnapValue(94))

	offGrid, _ := newState(t, rangeslider.Config{Min: 0, Max: 1000, Step: 999})
	assert.Equal(t, 999.0, offGrid.SnapValue(998))
	assert.Equal(t, 1000.0, offGrid.SnapValue(1000))
}

func TestSnapValue_Precision(t *testing.T) {
	t.Parallel()

	s, _ := newState(t,
		rangeslider.Config{Precision: 2, Min: 0, Max: 10, Step: 0.25},
		rangeslider.WithBound(rangeslider.FieldStep, rangeslider.AtLeast(0.01)),
	)

	assert.Equal(t, 3.5, s.SnapValue(3.376))
	assert.Equal(t, 3.0, s.SnapValue(3.1))
	assert.Equal(t, 0.25, s.SnapValue(0.125))
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("swaps inverted pair", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{Min: 0, Max: 100, Step: 10})

		require.NoError(t, s.Update(80, 20))
		assert.Equal(t, rangeslider.Values{Low: 20, High: 80}, s.Values())
		assert.Empty(t, rec.errs)
	})

	t.Run("snaps both values", func(t *testing.T) {
		t.Parallel()
		s, _ := newState(t, rangeslider.Config{Min: 0, Max: 100, Step: 10})

		require.NoError(t, s.Update(-12, 47))
		assert.Equal(t, rangeslider.Values{Low: 0, High: 50}, s.Values())
	})

	t.Run("NaN leaves values unchanged", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{Min: 0, Max: 100, Step: 10})
		require.NoError(t, s.Update(30, 70))
		before := s.Values()

		err := s.Update(math.NaN(), 50)
		require.Error(t, err)
		assert.True(t, rangeslider.IsInvalidInput(err))
		assert.True(t, rangeslider.IsKind(err, rangeslider.KindInvalidInput))
		assert.Equal(t, before, s.Values())

		e := rec.last(t)
		assert.Equal(t, rangeslider.KindInvalidInput, e.Kind)
		assert.Equal(t, 10000009, e.Code())
		assert.True(t, math.IsNaN(e.Value))
	})

	t.Run("NaN high side", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{})
		require.Error(t, s.Update(100, math.NaN()))
		assert.Len(t, rec.errs, 1)
		assert.Equal(t, rangeslider.Values{Low: 0, High: 1000}, s.Values())
	})
}

func TestUpdateRaw(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, rangeslider.Config{})

	require.NoError(t, s.UpdateRaw("  700 ", ""))
	assert.Equal(t, rangeslider.Values{Low: 0, High: 700}, s.Values())

	err := s.UpdateRaw("300", "abc")
	assert.ErrorIs(t, err, rangeslider.ErrInvalidInput)
	assert.Equal(t, rangeslider.Values{Low: 0, High: 700}, s.Values())
	assert.Len(t, rec.errs, 1)
}

func TestSetMin(t *testing.T) {
	t.Parallel()

	t.Run("rejects min above current max", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{Min: 0, Max: 40, Step: 10})

		err := s.SetMin(50)
		require.Error(t, err)
		assert.ErrorIs(t, err, rangeslider.ErrInvalidMin)
		assert.Equal(t, 0.0, s.Min())
		assert.Equal(t, 40.0, s.Max())

		e := rec.last(t)
		assert.Equal(t, rangeslider.KindInvalidMinRange, e.Kind)
		assert.Equal(t, 10000004, e.Code())
		assert.Equal(t, "min", e.Field)
		assert.Equal(t, 50.0, e.Value)
		assert.True(t, e.HasContext)
		assert.Equal(t, 40.0, e.Context.Max)
		assert.Equal(t, "Min 50 out of range [0-40]", e.Error())
	})

	t.Run("rejects non-number", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{})

		require.Error(t, s.SetMin(math.NaN()))
		assert.Equal(t, rangeslider.KindInvalidMinType, rec.last(t).Kind)
		assert.True(t, rec.last(t).Kind.IsTypeError())
	})

	t.Run("resets low handle", func(t *testing.T) {
		t.Parallel()
		s, _ := newState(t, rangeslider.Config{})
		require.NoError(t, s.Update(300, 700))

		require.NoError(t, s.SetMin(200))
		assert.Equal(t, rangeslider.Values{Low: 200, High: 700}, s.Values())
	})
}

func TestSetMax(t *testing.T) {
	t.Parallel()

	t.Run("rejects max at or below min", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{Min: 100, Max: 500, Step: 10})

		require.Error(t, s.SetMax(100))
		assert.Equal(t, 500.0, s.Max())
		e := rec.last(t)
		assert.Equal(t, rangeslider.KindInvalidMaxRange, e.Kind)
		assert.Equal(t, "Max 100 out of range [100-10000]", e.Error())
	})

	t.Run("rejects max above absolute bound", func(t *testing.T) {
		t.Parallel()
		s, rec := newState(t, rangeslider.Config{})

		require.Error(t, s.SetMax(10001))
		assert.Equal(t, 1000.0, s.Max())
		assert.Equal(t, 10000006, rec.last(t).Code())
	})

	t.Run("shrinking below low keeps order", func(t *testing.T) {
		t.Parallel()
		s, _ := newState(t, rangeslider.Config{})
		require.NoError(t, s.Update(600, 900))

		require.NoError(t, s.SetMax(500))
		v := s.Values()
		assert.LessOrEqual(t, v.Low, v.High)
		assert.Equal(t, rangeslider.Values{Low: 500, High: 500}, v)
	})
}

func TestSetStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		kind  rangeslider.Kind
	}{
		{"below absolute min", 0.5, rangeslider.KindInvalidStepRange},
		{"equal to span", 1000, rangeslider.KindInvalidStepRange},
		{"negative", -10, rangeslider.KindInvalidStepRange},
		{"not a number", math.NaN(), rangeslider.KindInvalidStepType},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, rec := newState(t, rangeslider.Config{})

			err := s.SetStep(tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, rangeslider.ErrInvalidStep)
			assert.Equal(t, tt.kind, rec.last(t).Kind)
			assert.Equal(t, 100.0, s.Step())
		})
	}

	t.Run("accepts value inside span", func(t *testing.T) {
		t.Parallel()
		s, _ := newState(t, rangeslider.Config{})
		require.NoError(t, s.SetStep(250))
		assert.Equal(t, 250.0, s.Step())
		assert.Equal(t, 500.0, s.SnapValue(480))
	})
}

func TestSetPrecision(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, rangeslider.Config{})

	require.Error(t, s.SetPrecision(1.5))
	assert.Equal(t, rangeslider.KindInvalidPrecisionType, rec.last(t).Kind)
	assert.Equal(t, 10000001, rec.last(t).Code())

	require.Error(t, s.SetPrecision(11))
	assert.Equal(t, rangeslider.KindInvalidPrecisionRange, rec.last(t).Kind)
	assert.Equal(t, "Precision 11 out of range [0-10]", rec.last(t).Error())

	require.Error(t, s.SetPrecision(-1))
	assert.Equal(t, 0.0, s.Precision())

	require.NoError(t, s.SetPrecision(3))
	assert.Equal(t, 3.0, s.Precision())
}

func TestRootLogging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())

	s, err := rangeslider.New(rangeslider.Config{Max: 40, Step: 10}, rangeslider.WithLogger(log))
	require.NoError(t, err)

	require.Error(t, s.SetMin(50))
	out := buf.String()
	assert.Contains(t, out, "range state error")
	assert.Contains(t, out, "code=10000004")
	assert.Contains(t, out, "kind=INVALID_MIN_RANGE")
	assert.Contains(t, out, "hierarchy=0")
	assert.Contains(t, out, "field=min")
}

func TestRootLogging_JSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())

	s, err := rangeslider.New(rangeslider.Config{}, rangeslider.WithLogger(log))
	require.NoError(t, err)
	require.Error(t, s.SetMin(-5))

	var record struct {
		Code   int            `json:"code"`
		Value  float64        `json:"value"`
		Limits map[string]any `json:"limits"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, 10000004, record.Code)
	assert.Equal(t, -5.0, record.Value)
	assert.Equal(t, map[string]any{"min": 0.0, "max": "+Inf"}, record.Limits)
	assert.NotContains(t, buf.String(), "!ERROR")

	buf.Reset()
	require.Error(t, s.SetMax(math.Inf(1)))
	assert.Contains(t, buf.String(), `"value":"+Inf"`)
	assert.NotContains(t, buf.String(), "!ERROR")
}

func TestNew_InfiniteMaxKeepsOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s, err := rangeslider.New(
		rangeslider.Config{Min: 1500, Max: math.Inf(1)},
		rangeslider.WithLimits(rangeslider.Limits{}),
		rangeslider.WithErrorHandler(rec.handle),
	)

	require.ErrorIs(t, err, rangeslider.ErrInvalidMin)
	require.ErrorIs(t, err, rangeslider.ErrInvalidMax)
	assert.Less(t, s.Min(), s.Max())
	assert.Equal(t, 0.0, s.Min())
	assert.Equal(t, 1000.0, s.Max())
	assert.Equal(t, rangeslider.Values{Low: 0, High: 1000}, s.Values())
	require.Len(t, rec.errs, 2)
	assert.Equal(t, rangeslider.KindInvalidMinRange, rec.errs[0].Kind)
	assert.Equal(t, rangeslider.KindInvalidMaxType, rec.errs[1].Kind)
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, rangeslider.Config{})
	err := s.SetMax(-1)
	require.Error(t, err)

	e, ok := rangeslider.AsError(err)
	require.True(t, ok)
	assert.Equal(t, rangeslider.KindInvalidMaxRange, e.Kind)
	assert.True(t, errors.Is(err, rangeslider.ErrInvalidMax))
	assert.False(t, errors.Is(err, rangeslider.ErrInvalidMin))
	assert.NotNil(t, e.Cause)

	_, ok = rangeslider.AsError(errors.New("other"))
	assert.False(t, ok)
}

func TestFailFastHandler(t *testing.T) {
	t.Parallel()

	s, err := rangeslider.New(rangeslider.Config{},
		rangeslider.WithErrorHandler(func(e *rangeslider.Error) { panic(e) }),
	)
	require.NoError(t, err)

	assert.Panics(t, func() { _ = s.SetMin(5000) })
	assert.Equal(t, 0.0, s.Min())
}
