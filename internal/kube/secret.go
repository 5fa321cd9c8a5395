package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/manifest"
)

// ProvisionSecret replaces the secret named key with a fresh Opaque secret.
// If the secret already exists, it is deleted and recreated so the stored
// keys are exactly those in data (no merge with previous contents).
// data is validated before any API call is made.
func (c *client) ProvisionSecret(ctx context.Context, namespace, key string, data map[string]any) (*corev1.Secret, error) {
	secret, err := manifest.Secret(namespace, key, data)
	if err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx).WithValues("namespace", namespace, "name", key)
	secrets := c.core.Secrets(namespace)
	t := target{kind: "Secret", namespace: namespace, name: key}

	_, found, err := get(ctx, c, t, func(ctx context.Context) (*corev1.Secret, error) {
		return secrets.Get(ctx, key, metav1.GetOptions{})
	})
	if err != nil {
		return nil, err
	}

	if found {
		logger.Info("Deleting existing secret")
		err := remove(ctx, c, t, "delete", func(ctx context.Context) error {
			return secrets.Delete(ctx, key, metav1.DeleteOptions{})
		})
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Creating secret", "keys", len(secret.Data))
	return create(ctx, c, t, func(ctx context.Context) (*corev1.Secret, error) {
		return secrets.Create(ctx, secret, metav1.CreateOptions{})
	})
}
