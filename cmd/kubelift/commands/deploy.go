package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// Deploy returns the deploy command.
func Deploy(g *globalFlags) *cobra.Command {
	var file, namespace string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy an application described in a YAML file",
		Long: `Deploy creates everything an application needs in a namespace:

  - the namespace itself, unless it already exists
  - a deployment running the application image
  - a node port service selecting its pods
  - an ingress routing to the service

When the application sets "tls: true" the certificate and private key are
copied from the configured secret store into the "tls" secret first. When
the file has a "dns" section the record is created or updated in Cloudflare.

Example:
  kubelift deploy -f app.yaml -n shop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), g.options(), file, namespace)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Application file (required)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Target namespace (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("namespace")

	return cmd
}
