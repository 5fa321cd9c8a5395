package kube

import (
	"context"
	"errors"
	"fmt"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/imamik/kubelift/internal/credentials"
	"github.com/imamik/kubelift/internal/manifest"
)

// Client provides lifecycle operations for workload resources.
type Client interface {
	// EnsureNamespace returns the namespace, creating it when it does not exist.
	EnsureNamespace(ctx context.Context, name string) (*corev1.Namespace, error)

	// GetDeployment returns found == false when the deployment does not exist.
	GetDeployment(ctx context.Context, namespace, name string) (*extensionsv1beta1.Deployment, bool, error)

	// CreateDeployment creates a single-container deployment for app.
	// env is passed to the container unchanged.
	CreateDeployment(ctx context.Context, namespace, name string, app manifest.Application, env []corev1.EnvVar) (*extensionsv1beta1.Deployment, error)

	// DeleteDeployment deletes a deployment without orphaning its replica sets.
	DeleteDeployment(ctx context.Context, namespace, name string) error

	// GetService returns found == false when the service does not exist.
	GetService(ctx context.Context, namespace, name string) (*corev1.Service, bool, error)

	// CreateService exposes the pods of the named deployment on a node port.
	CreateService(ctx context.Context, namespace, name string, app manifest.Application) (*corev1.Service, error)

	// DeleteService deletes a service.
	DeleteService(ctx context.Context, namespace, name string) error

	// GetIngress returns found == false when the ingress does not exist.
	GetIngress(ctx context.Context, namespace, name string) (*extensionsv1beta1.Ingress, bool, error)

	// CreateIngress routes traffic to serviceName. When app.TLS is set the
	// TLS secret is bootstrapped first and referenced from the ingress.
	CreateIngress(ctx context.Context, namespace, serviceName string, app manifest.Application) (*extensionsv1beta1.Ingress, error)

	// DeleteIngress deletes an ingress.
	DeleteIngress(ctx context.Context, namespace, name string) error

	// GetJob returns found == false when the job does not exist.
	GetJob(ctx context.Context, namespace, name string) (*batchv1.Job, bool, error)

	// GetJobs lists the jobs of a namespace.
	GetJobs(ctx context.Context, namespace string) (*batchv1.JobList, bool, error)

	// CreateJob creates a single-container batch job.
	CreateJob(ctx context.Context, namespace, name string, job manifest.Job) (*batchv1.Job, error)

	// DeleteJob deletes a job.
	DeleteJob(ctx context.Context, namespace, name string) error

	// DeletePods deletes the pods of a namespace matching filter (all pods
	// when filter is nil) with a zero grace period. name is only used for logging.
	DeletePods(ctx context.Context, namespace, name string, filter *metav1.ListOptions) error

	// DeleteReplicaSets deletes every replica set labelled application=<name>.
	DeleteReplicaSets(ctx context.Context, namespace, name string) error

	// ProvisionSecret replaces the secret key with an Opaque secret holding data.
	// Every value in data must be a string.
	ProvisionSecret(ctx context.Context, namespace, key string, data map[string]any) (*corev1.Secret, error)

	// BootstrapTLS copies the certificate and private key from the secret
	// store into the TLS secret of namespace.
	BootstrapTLS(ctx context.Context, namespace string) error
}

// client implements the Client interface on top of typed client-go group clients.
type client struct {
	groupClients

	secrets SecretReader
	tls     TLSOptions
	metrics *Metrics
}

// Option configures a Client.
type Option func(*client)

// WithSecretStore sets the store the TLS certificate and key are read from.
func WithSecretStore(store SecretReader) Option {
	return func(c *client) {
		c.secrets = store
	}
}

// WithTLSOptions overrides the secret store keys and secret name used for TLS bootstrap.
// Empty fields keep their defaults.
func WithTLSOptions(opts TLSOptions) Option {
	return func(c *client) {
		c.tls = opts.withDefaults()
	}
}

// WithMetrics records every API operation in m.
func WithMetrics(m *Metrics) Option {
	return func(c *client) {
		c.metrics = m
	}
}

// New creates a Client for the API server described by cfg. The bearer
// token is resolved once here; ErrMissingToken is returned when there is none.
func New(cfg ClientConfig, opts ...Option) (Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("kubernetes host is required")
	}
	if cfg.InsecureSkipTLSVerify && cfg.CAFile != "" {
		return nil, errors.New("a CA file cannot be combined with insecure TLS verification")
	}

	token, err := credentials.LoadToken(cfg.Token, cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubernetes token: %w", err)
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	groups, err := newGroupClients(restConfigFor(cfg, token))
	if err != nil {
		return nil, err
	}

	return newClient(groups, opts...), nil
}

// NewFromClientset creates a Client from a pre-configured clientset.
// This is useful for testing with fake clients.
func NewFromClientset(clientset kubernetes.Interface, opts ...Option) Client {
	return newClient(groupClientsFrom(clientset), opts...)
}

func newClient(groups groupClients, opts ...Option) *client {
	c := &client{
		groupClients: groups,
		tls:          DefaultTLSOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
