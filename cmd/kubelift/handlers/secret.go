package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SetSecret replaces the secret name with the given key/value pairs.
// literals are "key=value" pairs; fromFile is a YAML mapping whose values
// must all be strings. Literals win over file entries with the same key.
func SetSecret(ctx context.Context, opts Options, namespace, name string, literals []string, fromFile string) (err error) {
	data, err := secretData(literals, fromFile)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errors.New("no secret data given: use --from-literal or --from-file")
	}

	s, err := openSession(ctx, opts, false)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	secret, err := s.kube.ProvisionSecret(ctx, namespace, name, data)
	if err != nil {
		return err
	}
	printDone("secret %s/%s provisioned with %d keys", namespace, secret.Name, len(secret.Data))
	return nil
}

func secretData(literals []string, fromFile string) (map[string]any, error) {
	data := map[string]any{}

	if fromFile != "" {
		// #nosec G304
		raw, err := os.ReadFile(fromFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read secret file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse secret file: %w", err)
		}
	}

	for _, lit := range literals {
		key, value, ok := strings.Cut(lit, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid literal %q, expected key=value", lit)
		}
		data[key] = value
	}

	return data, nil
}
