package kube

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// SecretReader reads a single value from an external secret store.
type SecretReader interface {
	Read(ctx context.Context, key string) (string, error)
}

// TLS secret data keys expected by ingress controllers.
const (
	TLSCertKey       = "tls.crt"
	TLSPrivateKeyKey = "tls.key"
)

// TLSOptions names the secret store entries and the secret used for TLS bootstrap.
type TLSOptions struct {
	// CertificateKey is the secret store key holding the PEM certificate chain.
	CertificateKey string
	// PrivateKeyKey is the secret store key holding the PEM private key.
	PrivateKeyKey string
	// SecretName is the namespace secret the ingress references.
	SecretName string
}

// DefaultTLSOptions returns the options used when none are configured.
func DefaultTLSOptions() TLSOptions {
	return TLSOptions{
		CertificateKey: "SSL_CERTIFICATE",
		PrivateKeyKey:  "SSL_PRIVATE_KEY",
		SecretName:     "tls",
	}
}

func (o TLSOptions) withDefaults() TLSOptions {
	d := DefaultTLSOptions()
	if o.CertificateKey == "" {
		o.CertificateKey = d.CertificateKey
	}
	if o.PrivateKeyKey == "" {
		o.PrivateKeyKey = d.PrivateKeyKey
	}
	if o.SecretName == "" {
		o.SecretName = d.SecretName
	}
	return o
}

// BootstrapTLS reads the certificate and then the private key from the secret
// store and replaces the TLS secret of namespace with them. Errors are
// returned as produced by the failing step. Nothing is rolled back: if the
// secret was already replaced when a later step fails, it stays replaced.
func (c *client) BootstrapTLS(ctx context.Context, namespace string) error {
	if c.secrets == nil {
		return ErrNoSecretStore
	}

	logger := log.FromContext(ctx).WithValues("namespace", namespace, "secret", c.tls.SecretName)
	logger.V(1).Info("Reading TLS material from secret store",
		"certificateKey", c.tls.CertificateKey, "privateKeyKey", c.tls.PrivateKeyKey)

	cert, err := c.secrets.Read(ctx, c.tls.CertificateKey)
	if err != nil {
		return err
	}
	key, err := c.secrets.Read(ctx, c.tls.PrivateKeyKey)
	if err != nil {
		return err
	}

	_, err = c.ProvisionSecret(ctx, namespace, c.tls.SecretName, map[string]any{
		TLSCertKey:       cert,
		TLSPrivateKeyKey: key,
	})
	return err
}
