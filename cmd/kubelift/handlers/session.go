package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/config"
	"github.com/imamik/kubelift/internal/kube"
	"github.com/imamik/kubelift/internal/platform/cloudflare"
	"github.com/imamik/kubelift/internal/platform/s3"
	"github.com/imamik/kubelift/internal/platform/vault"
)

// Options carries the global flags shared by all commands.
type Options struct {
	// ConfigPath is the config file; empty means kubelift.yaml if present.
	ConfigPath string
	// MetricsFile receives the operation counters in Prometheus text format.
	MetricsFile string
}

// secretStore is where TLS material is read from and uploaded to.
type secretStore interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
}

// dnsClient is the subset of the Cloudflare client used by the dns commands.
type dnsClient interface {
	GetZone(ctx context.Context, name string) (cloudflare.Zone, bool, error)
	UpsertDNSRecord(ctx context.Context, zoneID, name, recordType, content string) (cloudflare.Record, error)
	DeleteDNSRecord(ctx context.Context, zoneID, name string) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads the config file and environment overrides.
	loadConfig = func(path string) (*config.Config, error) {
		return config.Load(path, nil)
	}

	// newKubeClient creates the workload client.
	newKubeClient = kube.New

	// openVault opens an authenticated Vault session.
	openVault = func(ctx context.Context, cfg vault.Config) (secretStore, error) {
		return vault.Open(ctx, cfg)
	}

	// newS3Store creates a bucket backed secret store. The bucket must exist.
	newS3Store = func(ctx context.Context, cfg config.S3Config) (secretStore, error) {
		client, err := s3.NewClient(ctx, s3.Options{
			Endpoint:     cfg.Endpoint,
			Region:       cfg.Region,
			AccessKey:    cfg.AccessKey,
			SecretKey:    cfg.SecretKey,
			UsePathStyle: cfg.UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		return s3.OpenSecretSource(ctx, client, cfg.Bucket, cfg.Prefix)
	}

	// newDNSClient creates the Cloudflare client.
	newDNSClient = func(token string) dnsClient {
		return cloudflare.NewClient(token)
	}
)

// session holds what a command run needs: the loaded config, the workload
// client and the registry its operations are counted in.
type session struct {
	cfg         *config.Config
	kube        kube.Client
	registry    *prometheus.Registry
	metricsFile string
}

// openSession loads the config and builds the workload client. The secret
// store is only opened when withSecrets is set.
func openSession(ctx context.Context, opts Options, withSecrets bool) (*session, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry := prometheus.NewRegistry()
	kubeOpts := []kube.Option{
		kube.WithMetrics(kube.NewMetrics(registry)),
		kube.WithTLSOptions(kube.TLSOptions{
			CertificateKey: cfg.TLS.CertificateKey,
			PrivateKeyKey:  cfg.TLS.PrivateKeyKey,
			SecretName:     cfg.TLS.SecretName,
		}),
	}

	if withSecrets {
		store, err := openSecretStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		kubeOpts = append(kubeOpts, kube.WithSecretStore(store))
	}

	client, err := newKubeClient(kube.ClientConfig{
		Host:                  cfg.Kubernetes.Host,
		Token:                 cfg.Kubernetes.Token,
		TokenFile:             cfg.Kubernetes.TokenFile,
		InsecureSkipTLSVerify: cfg.Kubernetes.InsecureSkipTLSVerify,
		CAFile:                cfg.Kubernetes.CAFile,
	}, kubeOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return &session{cfg: cfg, kube: client, registry: registry, metricsFile: opts.MetricsFile}, nil
}

// close writes the collected metrics when a metrics file was requested.
func (s *session) close(ctx context.Context) error {
	if s.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.metricsFile, s.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	log.FromContext(ctx).V(1).Info("Wrote metrics", "path", s.metricsFile)
	return nil
}

// finish closes s and joins any close error into err.
func (s *session) finish(ctx context.Context, err error) error {
	return errors.Join(err, s.close(ctx))
}

func openSecretStore(ctx context.Context, cfg *config.Config) (secretStore, error) {
	switch cfg.TLS.Source {
	case config.TLSSourceS3:
		store, err := newS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 secret store: %w", err)
		}
		return store, nil
	default:
		if !cfg.Vault.Enabled() {
			return nil, errors.New("vault is not configured: set vault.address, vault.token and vault.environment")
		}
		store, err := openVault(ctx, vault.Config{
			Address:     cfg.Vault.Address,
			Token:       cfg.Vault.Token,
			Environment: cfg.Vault.Environment,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
