package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// TLS returns the tls command group.
func TLS(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tls",
		Short: "Manage the ingress TLS certificate",
	}

	var namespace string
	bootstrap := &cobra.Command{
		Use:   "bootstrap",
		Short: "Copy the certificate from the secret store into the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.BootstrapTLS(cmd.Context(), g.options(), namespace)
		},
	}
	bootstrap.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace")

	var certFile, keyFile string
	upload := &cobra.Command{
		Use:   "upload",
		Short: "Store a certificate and private key in the secret store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.UploadTLS(cmd.Context(), g.options(), certFile, keyFile)
		},
	}
	upload.Flags().StringVar(&certFile, "cert", "", "PEM certificate chain (required)")
	upload.Flags().StringVar(&keyFile, "key", "", "PEM private key (required)")
	_ = upload.MarkFlagRequired("cert")
	_ = upload.MarkFlagRequired("key")

	cmd.AddCommand(bootstrap, upload)
	return cmd
}
