package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"owncollections/demo"
	"owncollections/log"
	"owncollections/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel        string
		initialCapacity int
		withMetrics     bool
	)

	cmd := &cobra.Command{
		Use:          "listdemo [array|linked|all]",
		Short:        "Walk the array list and linked list through their demo scenarios",
		Args:         cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs:    []string{"array", "linked", "all"},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}

			logger := log.New()
			logger.SetOutput(cmd.OutOrStdout())
			logger.SetLevel(logLevel)

			opts := &demo.Options{InitialCapacity: initialCapacity}
			reg := prometheus.NewRegistry()
			if withMetrics {
				opts.Collector = metrics.NewCollector("listdemo")
				reg.MustRegister(opts.Collector)
			}

			if which == "array" || which == "all" {
				if _, err := demo.RunArrayList(logger, opts); err != nil {
					return err
				}
			}
			if which == "linked" || which == "all" {
				if _, err := demo.RunLinkedList(logger, opts); err != nil {
					return err
				}
			}
			if withMetrics {
				return demo.DumpMetrics(logger, reg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	cmd.Flags().IntVar(&initialCapacity, "initial-capacity", 10, "initial capacity of the array list")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "log container size and capacity gauges after the run")
	return cmd
}
