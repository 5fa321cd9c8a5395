package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/kubelift/internal/config"
)

// BootstrapTLS copies the certificate and key from the secret store into
// the TLS secret of namespace.
func BootstrapTLS(ctx context.Context, opts Options, namespace string) (err error) {
	s, err := openSession(ctx, opts, true)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	if err := s.kube.BootstrapTLS(ctx, namespace); err != nil {
		return err
	}
	printDone("secret %s/%s updated from %s", namespace, s.cfg.TLS.SecretName, s.cfg.TLS.Source)
	return nil
}

// UploadTLS writes a PEM certificate and private key to the secret store
// under the configured keys. No cluster access is needed.
func UploadTLS(ctx context.Context, opts Options, certFile, keyFile string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// #nosec G304
	cert, err := os.ReadFile(certFile)
	if err != nil {
		return fmt.Errorf("failed to read certificate: %w", err)
	}
	// #nosec G304
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}

	store, err := openSecretStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := store.Write(ctx, cfg.TLS.CertificateKey, string(cert)); err != nil {
		return err
	}
	if err := store.Write(ctx, cfg.TLS.PrivateKeyKey, string(key)); err != nil {
		return err
	}

	printDone("certificate and key uploaded to %s", describeSource(cfg))
	return nil
}

func describeSource(cfg *config.Config) string {
	if cfg.TLS.Source == config.TLSSourceS3 {
		return fmt.Sprintf("s3://%s/%s", cfg.S3.Bucket, cfg.S3.Prefix)
	}
	return fmt.Sprintf("vault (secret/%s)", cfg.Vault.Environment)
}
