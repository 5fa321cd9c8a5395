// Package handlers implements the business logic for kubelift CLI commands.
//
// Each exported function corresponds to one CLI command. Clients are created
// through package-level factory variables so tests can substitute fakes.
package handlers
