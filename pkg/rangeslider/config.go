package rangeslider

// Config is the user-facing configuration of a State.
//
// Zero Max, zero Step and empty Unit select the defaults. Neither zero value
// could pass validation under the default limits, so "unset" and "zero" never
// collide in practice.
type Config struct {
	Precision float64 `env:"RANGE_PRECISION" envDefault:"0" json:"precision" yaml:"precision"`
	Min       float64 `env:"RANGE_MIN" envDefault:"0" json:"min" yaml:"min"`
	Max       float64 `env:"RANGE_MAX" envDefault:"1000" json:"max" yaml:"max"`
	Step      float64 `env:"RANGE_STEP" envDefault:"100" json:"step" yaml:"step"`
	Unit      string  `env:"RANGE_UNIT" envDefault:"₽" json:"unit" yaml:"unit"`
}

// DefaultConfig returns the configuration applied when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Precision: 0,
		Min:       0,
		Max:       1000,
		Step:      100,
		Unit:      "₽",
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Max == 0 {
		c.Max = def.Max
	}
	if c.Step == 0 {
		c.Step = def.Step
	}
	if c.Unit == "" {
		c.Unit = def.Unit
	}
	return c
}

// Values is the committed pair of handle values. Low <= High always holds.
type Values struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Positions are handle offsets along the track in percent (0..100).
type Positions struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}
