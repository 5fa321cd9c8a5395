package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

var getKinds = []string{
	handlers.KindDeployment,
	handlers.KindService,
	handlers.KindIngress,
	handlers.KindJob,
	handlers.KindJobs,
}

// Get returns the get command.
func Get(g *globalFlags) *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:       "get KIND [NAME]",
		Short:     "Print a deployment, service, ingress, job or all jobs as YAML",
		ValidArgs: getKinds,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("requires a kind, one of %v", getKinds)
			}
			if args[0] == handlers.KindJobs {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			return handlers.Get(cmd.Context(), g.options(), args[0], namespace, name)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace")

	return cmd
}
