package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// Delete returns the delete command.
func Delete(g *globalFlags) *cobra.Command {
	var namespace, selector string

	cmd := &cobra.Command{
		Use:   "delete KIND NAME",
		Short: "Delete a deployment, service, ingress, job, pods or replica sets",
		Long: `Delete removes a single resource.

For "pods" every pod of the namespace is deleted with a zero grace period
unless --selector narrows it down. For "replicasets" NAME is the application
whose replica sets (labelled application=NAME) are deleted.`,
		ValidArgs: []string{
			handlers.KindDeployment,
			handlers.KindService,
			handlers.KindIngress,
			handlers.KindJob,
			handlers.KindPods,
			handlers.KindReplicaSets,
		},
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Delete(cmd.Context(), g.options(), args[0], namespace, args[1], selector)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace")
	cmd.Flags().StringVarP(&selector, "selector", "l", "", "Label selector for pods, e.g. application=api")

	return cmd
}
