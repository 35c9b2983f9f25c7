// Package main is the entry point for the filterkit CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/filterkit/pkg/config"
	"github.com/dmitrymomot/filterkit/pkg/logger"
	"github.com/dmitrymomot/filterkit/pkg/metrics"
	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds state shared by subcommands of one invocation.
type app struct {
	envFile     string
	configFile  string
	logFormat   string
	environment string
	verbose     bool
	showMetrics bool

	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "filterkit",
		Short:         "Range slider, pagination and price filter toolkit",
		Long:          `filterkit evaluates range slider snapping, pagination windows and price filter captions from flags, environment or a YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.showMetrics {
				return a.printMetrics(cmd)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	flags.StringVarP(&a.configFile, "config", "c", "", "YAML or JSON config file")
	flags.StringVar(&a.logFormat, "log-format", string(logger.FormatText), "log format: text or json")
	flags.StringVar(&a.environment, "env", "", "environment preset for logging: development, staging or production")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&a.showMetrics, "metrics", false, "print error counters after the command")

	cmd.AddCommand(snapCmd(a))
	cmd.AddCommand(pagesCmd(a))
	cmd.AddCommand(filterCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		config.ResetCache()
	}

	format := logger.Format(a.logFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}
	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("filterkit")),
	}
	if a.environment != "" {
		opts = append(opts, logger.WithEnvironment(a.environment))
	}
	if a.environment == "" || cmd.Flags().Changed("log-format") {
		opts = append(opts, logger.WithFormat(format))
	}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	a.log = logger.New(opts...)

	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.New(metrics.WithRegistry(a.registry))
	return nil
}

// rangeOptions wires a root state into logging and error counters.
func (a *app) rangeOptions() []rangeslider.Option {
	return []rangeslider.Option{
		rangeslider.WithLogger(a.log),
		rangeslider.WithErrorHandler(a.metrics.ErrorHandler(func(e *rangeslider.Error) {
			a.log.Warn("rejected",
				logger.Code(e.Code()),
				logger.Field(e.Field),
				logger.HierarchyLevel(e.HierarchyLevel),
				logger.Error(e),
			)
		})),
	}
}

// loadConfig fills v from the environment and then overlays the config file.
func loadConfig[T any](a *app, v *T) error {
	if err := config.Load(v); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.configFile == "" {
		return nil
	}
	if err := config.LoadFile(a.configFile, v); err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	return nil
}

func (a *app) printMetrics(cmd *cobra.Command) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	out := cmd.ErrOrStderr()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(labels)
			fmt.Fprintf(out, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}
