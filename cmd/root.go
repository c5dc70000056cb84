package cmd

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/kilianp07/coffee/config"
	"github.com/kilianp07/coffee/core/factory"
	"github.com/kilianp07/coffee/core/machine"
	"github.com/kilianp07/coffee/infra/logger"
	"github.com/kilianp07/coffee/metrics"
)

var (
	cfgPath     string
	dumpMetrics bool
)

// session holds what a command needs once configuration is loaded.
type session struct {
	cfg      *config.Config
	registry *prometheus.Registry
	machine  *machine.Machine
}

var current *session

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                "coffee",
		Short:              "Coffee machine built on the factory pattern",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		RunE:               runDemo,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().BoolVar(&dumpMetrics, "dump-metrics", false, "write collected metrics to stderr on exit")
	root.AddCommand(newBrewCmd(), newMenuCmd())
	return root
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(logger.Options{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		Out:     cmd.ErrOrStderr(),
	}); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	reg := prometheus.NewRegistry()
	sinkCfgs := cfg.Metrics.Sinks
	if dumpMetrics && len(sinkCfgs) == 0 {
		sinkCfgs = []factory.ModuleConfig{{Type: "prometheus"}}
	}
	sink, err := metrics.NewOrderSink(sinkCfgs, reg)
	if err != nil {
		return fmt.Errorf("order sink: %w", err)
	}
	current = &session{
		cfg:      cfg,
		registry: reg,
		machine:  machine.New(machine.WithLogger(logger.New("machine")), machine.WithSink(sink)),
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if !dumpMetrics || current == nil {
		return nil
	}
	return writeMetrics(cmd.ErrOrStderr(), current.registry)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return brew(cmd.OutOrStdout(), current.machine, current.cfg.Demo.Orders)
}

func brew(w io.Writer, m *machine.Machine, orders []string) error {
	for _, name := range orders {
		if _, err := fmt.Fprintln(w, m.MakeCoffee(name)); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
