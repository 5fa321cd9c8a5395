package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
)

// Probe returns the probe command.
func Probe() *cobra.Command {
	var expect, attempts int

	cmd := &cobra.Command{
		Use:   "probe URL",
		Short: "Print the HTTP status code of a URL",
		Long: `Probe sends a GET request and prints the status code. Redirects are
reported, not followed. With --expect the command fails on any other code;
with --attempts it retries with backoff until the expected code is seen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Probe(cmd.Context(), args[0], expect, attempts)
		},
	}

	cmd.Flags().IntVar(&expect, "expect", 0, "Expected status code")
	cmd.Flags().IntVar(&attempts, "attempts", 1, "Number of attempts (requires --expect)")

	return cmd
}
