package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

// rangeFlags override config values when set on the command line.
type rangeFlags struct {
	precision float64
	min       float64
	max       float64
	step      float64
	unit      string
}

func (f *rangeFlags) register(cmd *cobra.Command, prefix string) {
	flags := cmd.Flags()
	flags.Float64Var(&f.precision, prefix+"precision", 0, "decimal digits kept when rounding")
	flags.Float64Var(&f.min, prefix+"min", 0, "lower end of the range")
	flags.Float64Var(&f.max, prefix+"max", 0, "upper end of the range")
	flags.Float64Var(&f.step, prefix+"step", 0, "grid step")
	flags.StringVar(&f.unit, prefix+"unit", "", "unit suffix")
}

func (f *rangeFlags) apply(cmd *cobra.Command, prefix string, cfg *rangeslider.Config) {
	flags := cmd.Flags()
	if flags.Changed(prefix + "precision") {
		cfg.Precision = f.precision
	}
	if flags.Changed(prefix + "min") {
		cfg.Min = f.min
	}
	if flags.Changed(prefix + "max") {
		cfg.Max = f.max
	}
	if flags.Changed(prefix + "step") {
		cfg.Step = f.step
	}
	if flags.Changed(prefix + "unit") {
		cfg.Unit = f.unit
	}
}

func snapCmd(a *app) *cobra.Command {
	var rf rangeFlags
	var low, high string

	cmd := &cobra.Command{
		Use:   "snap [VALUE...]",
		Short: "Snap values onto the range grid",
		Long: `Snap prints every VALUE mapped onto the {min, max, step} grid.
With --low and --high it commits a range instead and prints the stored
values followed by the handle positions in percent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg rangeslider.Config
			if err := loadConfig(a, &cfg); err != nil {
				return err
			}
			rf.apply(cmd, "", &cfg)

			// Rejected fields fall back to defaults and are already reported
			// through the error chain.
			s, _ := rangeslider.New(cfg, a.rangeOptions()...)

			out := cmd.OutOrStdout()
			for _, raw := range args {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", raw, err)
				}
				fmt.Fprintln(out, formatFloat(s.SnapValue(v)))
			}

			if cmd.Flags().Changed("low") || cmd.Flags().Changed("high") {
				if err := s.UpdateRaw(low, high); err != nil {
					return err
				}
				v, p := s.Values(), s.Positions()
				fmt.Fprintf(out, "%s %s (%s%% %s%%)\n",
					formatFloat(v.Low), formatFloat(v.High), formatFloat(p.Low), formatFloat(p.High))
			}
			return nil
		},
	}

	rf.register(cmd, "")
	cmd.Flags().StringVar(&low, "low", "", "raw low value to commit")
	cmd.Flags().StringVar(&high, "high", "", "raw high value to commit")

	return cmd
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
