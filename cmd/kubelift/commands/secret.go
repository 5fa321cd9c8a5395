package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// Secret returns the secret command group.
func Secret(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage opaque secrets",
	}

	var (
		namespace string
		literals  []string
		fromFile  string
	)

	set := &cobra.Command{
		Use:   "set NAME",
		Short: "Replace a secret with the given keys",
		Long: `Set deletes the secret if it exists and creates it again with exactly
the given keys. Values from --from-file must be strings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.SetSecret(cmd.Context(), g.options(), namespace, args[0], literals, fromFile)
		},
	}
	set.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace")
	set.Flags().StringArrayVar(&literals, "from-literal", nil, "key=value pair (repeatable)")
	set.Flags().StringVar(&fromFile, "from-file", "", "YAML file with a flat key/value mapping")

	cmd.AddCommand(set)
	return cmd
}
