package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// Namespace returns the namespace command group.
func Namespace(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namespace",
		Short: "Manage namespaces",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ensure NAME",
		Short: "Create a namespace unless it already exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.EnsureNamespace(cmd.Context(), g.options(), args[0])
		},
	})

	return cmd
}
