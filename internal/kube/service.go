package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/manifest"
)

func (c *client) GetService(ctx context.Context, namespace, name string) (*corev1.Service, bool, error) {
	t := target{kind: "Service", namespace: namespace, name: name}
	return get(ctx, c, t, func(ctx context.Context) (*corev1.Service, error) {
		return c.core.Services(namespace).Get(ctx, name, metav1.GetOptions{})
	})
}

func (c *client) CreateService(ctx context.Context, namespace, name string, app manifest.Application) (*corev1.Service, error) {
	svc, err := manifest.Service(namespace, name, app)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).Info("Creating service", "namespace", namespace, "name", name, "sessionAffinity", svc.Spec.SessionAffinity)

	t := target{kind: "Service", namespace: namespace, name: name}
	return create(ctx, c, t, func(ctx context.Context) (*corev1.Service, error) {
		return c.core.Services(namespace).Create(ctx, svc, metav1.CreateOptions{})
	})
}

func (c *client) DeleteService(ctx context.Context, namespace, name string) error {
	log.FromContext(ctx).Info("Deleting service", "namespace", namespace, "name", name)

	t := target{kind: "Service", namespace: namespace, name: name}
	return remove(ctx, c, t, "delete", func(ctx context.Context) error {
		return c.core.Services(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	})
}
