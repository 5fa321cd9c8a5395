package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// DNS returns the dns command group.
func DNS(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage Cloudflare DNS records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "upsert ZONE NAME TYPE CONTENT",
		Short:   "Create a record or update its content",
		Example: "  kubelift dns upsert example.com api.example.com CNAME lb.example.net",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.UpsertDNS(cmd.Context(), g.options(), args[0], args[1], args[2], args[3])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ZONE NAME",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.DeleteDNS(cmd.Context(), g.options(), args[0], args[1])
		},
	})

	return cmd
}
