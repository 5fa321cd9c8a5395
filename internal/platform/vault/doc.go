// Package vault reads and writes application secrets in a HashiCorp Vault
// generic secret backend.
//
// Secrets live at secret/<environment>/<key> with the payload stored under
// the "value" field. A Session is opened once with a validated token and is
// then passed explicitly to whatever needs it.
package vault
