package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for common errors. Settings that only
// some commands need, such as the API server host, are checked where they
// are used.
func (c *Config) Validate() error {
	if err := c.validateKubernetes(); err != nil {
		return fmt.Errorf("kubernetes: %w", err)
	}

	switch c.TLS.Source {
	case TLSSourceVault:
		if c.Vault.Enabled() {
			if err := c.validateVault(); err != nil {
				return fmt.Errorf("vault: %w", err)
			}
		}
	case TLSSourceS3:
		if err := c.validateS3(); err != nil {
			return fmt.Errorf("s3: %w", err)
		}
	default:
		return fmt.Errorf("tls: source must be %q or %q, got %q", TLSSourceVault, TLSSourceS3, c.TLS.Source)
	}

	return nil
}

func (c *Config) validateKubernetes() error {
	k := c.Kubernetes
	if k.Host != "" {
		u, err := url.Parse(k.Host)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("host %q must be an absolute URL", k.Host)
		}
	}
	if k.InsecureSkipTLSVerify && k.CAFile != "" {
		return errors.New("ca_file cannot be combined with insecure_skip_tls_verify")
	}
	return nil
}

func (c *Config) validateVault() error {
	v := c.Vault
	if v.Address == "" {
		return errors.New("address is required")
	}
	if v.Token == "" {
		return errors.New("token is required")
	}
	if v.Environment == "" {
		return errors.New("environment is required")
	}
	return nil
}

func (c *Config) validateS3() error {
	if c.S3.Region == "" {
		return errors.New("region is required")
	}
	if c.S3.Bucket == "" {
		return errors.New("bucket is required")
	}
	return nil
}
