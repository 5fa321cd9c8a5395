package vault

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/hashicorp/vault/api"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// valueField is the field of a secret that holds its payload.
const valueField = "value"

// ErrSecretNotFound is returned by Read when no value is stored under the key.
var ErrSecretNotFound = errors.New("vault secret not found")

// Config describes how to reach Vault.
type Config struct {
	// Address is the Vault server URL, e.g. https://vault.example.com:8200.
	Address string
	// Token authenticates every request.
	Token string
	// Environment selects the secret/<environment>/ subtree.
	Environment string
}

// Session is an authenticated connection to Vault.
type Session struct {
	logical     *api.Logical
	environment string
}

// Open creates a Session and validates the token with a lookup-self call.
// An invalid token fails here rather than on the first read.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Address == "" {
		return nil, errors.New("vault address is required")
	}
	if cfg.Token == "" {
		return nil, errors.New("vault token is required")
	}
	if cfg.Environment == "" {
		return nil, errors.New("vault environment is required")
	}

	apiCfg := api.DefaultConfig()
	if apiCfg.Error != nil {
		return nil, fmt.Errorf("failed to load vault defaults: %w", apiCfg.Error)
	}
	apiCfg.Address = cfg.Address

	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(cfg.Token)

	if _, err := client.Auth().Token().LookupSelfWithContext(ctx); err != nil {
		return nil, fmt.Errorf("vault authentication failed: %w", err)
	}

	log.FromContext(ctx).Info("Authenticated to vault using token based credentials",
		"address", cfg.Address, "environment", cfg.Environment)

	return &Session{logical: client.Logical(), environment: cfg.Environment}, nil
}

// Path returns the Vault path a key is stored at.
func (s *Session) Path(key string) string {
	return path.Join("secret", s.environment, key)
}

// Read returns the string stored under key.
func (s *Session) Read(ctx context.Context, key string) (string, error) {
	secret, err := s.logical.ReadWithContext(ctx, s.Path(key))
	if err != nil {
		return "", fmt.Errorf("failed to read vault secret %s: %w", key, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}

	raw, ok := secret.Data[valueField]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s holds %T, expected a string", key, raw)
	}
	return value, nil
}

// Write stores value under key, replacing any previous value.
func (s *Session) Write(ctx context.Context, key, value string) error {
	_, err := s.logical.WriteWithContext(ctx, s.Path(key), map[string]any{
		valueField: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write vault secret %s: %w", key, err)
	}

	log.FromContext(ctx).V(1).Info("Wrote vault secret", "path", s.Path(key))
	return nil
}
