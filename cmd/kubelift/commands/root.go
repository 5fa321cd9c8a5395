// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// globalFlags are bound to the root command and shared by all subcommands.
type globalFlags struct {
	configPath  string
	metricsFile string
	debug       bool
}

func (g *globalFlags) options() handlers.Options {
	return handlers.Options{ConfigPath: g.configPath, MetricsFile: g.metricsFile}
}

// Root returns the root command for the kubelift CLI.
func Root() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "kubelift",
		Short:         "Deploy applications and their secrets to Kubernetes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := zap.New(zap.UseDevMode(g.debug), zap.WriteTo(cmd.ErrOrStderr()))
			logf.SetLogger(logger)
			cmd.SetContext(logf.IntoContext(cmd.Context(), logger))
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to configuration file (default: kubelift.yaml)")
	cmd.PersistentFlags().StringVar(&g.metricsFile, "metrics-file", "", "Write operation counters to this file in Prometheus text format")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable development logging")

	cmd.AddCommand(Namespace(g))
	cmd.AddCommand(Deploy(g))
	cmd.AddCommand(Get(g))
	cmd.AddCommand(Delete(g))
	cmd.AddCommand(Job(g))
	cmd.AddCommand(Secret(g))
	cmd.AddCommand(TLS(g))
	cmd.AddCommand(DNS(g))
	cmd.AddCommand(Probe())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
