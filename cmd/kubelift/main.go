// Package main is the entry point for the kubelift CLI.
//
// kubelift deploys applications to a Kubernetes cluster: namespaces,
// deployments, services, ingresses with TLS certificates copied from Vault
// or S3, batch jobs and opaque secrets. It can also maintain the Cloudflare
// DNS record pointing at an application.
//
// For detailed usage information, run:
//
//	kubelift --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/kubelift/cmd/kubelift/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
