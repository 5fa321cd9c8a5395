// Package credentials resolves the bearer token used to talk to the
// Kubernetes API server.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultTokenFile is where Kubernetes mounts the service account token inside a pod.
const DefaultTokenFile = "/var/run/secrets/kubernetes.io/serviceaccount/token"

// LoadToken returns the explicit token when set, otherwise the contents of
// tokenFile (DefaultTokenFile when empty) with line breaks removed.
// A missing file is not an error: the empty string is returned instead.
func LoadToken(explicit, tokenFile string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if tokenFile == "" {
		tokenFile = DefaultTokenFile
	}

	// #nosec G304
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file %s: %w", tokenFile, err)
	}

	return stripLineBreaks(string(data)), nil
}

func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
}
