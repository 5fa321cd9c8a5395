package kube

import (
	"context"

	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/manifest"
)

func (c *client) GetIngress(ctx context.Context, namespace, name string) (*extensionsv1beta1.Ingress, bool, error) {
	t := target{kind: "Ingress", namespace: namespace, name: name}
	return get(ctx, c, t, func(ctx context.Context) (*extensionsv1beta1.Ingress, error) {
		return c.extensions.Ingresses(namespace).Get(ctx, name, metav1.GetOptions{})
	})
}

// CreateIngress builds the ingress first so that invalid input fails before
// the TLS secret is touched. A TLS bootstrap failure stops the ingress POST;
// a secret that was already replaced stays replaced.
func (c *client) CreateIngress(
	ctx context.Context,
	namespace, serviceName string,
	app manifest.Application,
) (*extensionsv1beta1.Ingress, error) {
	ing, err := manifest.Ingress(namespace, serviceName, app)
	if err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx).WithValues("namespace", namespace, "name", serviceName)

	if app.TLS {
		if err := c.BootstrapTLS(ctx, namespace); err != nil {
			return nil, err
		}
		manifest.AttachTLS(ing, c.tls.SecretName)
		logger.Info("Enabling TLS for ingress", "secret", c.tls.SecretName)
	}

	logger.Info("Creating ingress")

	t := target{kind: "Ingress", namespace: namespace, name: serviceName}
	return create(ctx, c, t, func(ctx context.Context) (*extensionsv1beta1.Ingress, error) {
		return c.extensions.Ingresses(namespace).Create(ctx, ing, metav1.CreateOptions{})
	})
}

func (c *client) DeleteIngress(ctx context.Context, namespace, name string) error {
	log.FromContext(ctx).Info("Deleting ingress", "namespace", namespace, "name", name)

	t := target{kind: "Ingress", namespace: namespace, name: name}
	return remove(ctx, c, t, "delete", func(ctx context.Context) error {
		return c.extensions.Ingresses(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	})
}
