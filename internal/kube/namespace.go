package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/manifest"
)

// EnsureNamespace returns the existing namespace or creates it. A second call
// for the same name issues no create.
func (c *client) EnsureNamespace(ctx context.Context, name string) (*corev1.Namespace, error) {
	ns, err := manifest.Namespace(name)
	if err != nil {
		return nil, err
	}

	t := target{kind: "Namespace", name: name}
	existing, found, err := get(ctx, c, t, func(ctx context.Context) (*corev1.Namespace, error) {
		return c.core.Namespaces().Get(ctx, name, metav1.GetOptions{})
	})
	if err != nil {
		return nil, err
	}
	if found {
		return existing, nil
	}

	log.FromContext(ctx).Info("Creating namespace", "name", name)
	return create(ctx, c, t, func(ctx context.Context) (*corev1.Namespace, error) {
		return c.core.Namespaces().Create(ctx, ns, metav1.CreateOptions{})
	})
}
