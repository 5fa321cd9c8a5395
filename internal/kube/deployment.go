package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/manifest"
	"github.com/imamik/kubelift/internal/util/ptr"
)

func (c *client) GetDeployment(ctx context.Context, namespace, name string) (*extensionsv1beta1.Deployment, bool, error) {
	t := target{kind: "Deployment", namespace: namespace, name: name}
	return get(ctx, c, t, func(ctx context.Context) (*extensionsv1beta1.Deployment, error) {
		return c.extensions.Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	})
}

func (c *client) CreateDeployment(
	ctx context.Context,
	namespace, name string,
	app manifest.Application,
	env []corev1.EnvVar,
) (*extensionsv1beta1.Deployment, error) {
	dep, err := manifest.Deployment(namespace, name, app, env)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).Info("Creating deployment", "namespace", namespace, "name", name, "image", dep.Spec.Template.Spec.Containers[0].Image)

	t := target{kind: "Deployment", namespace: namespace, name: name}
	return create(ctx, c, t, func(ctx context.Context) (*extensionsv1beta1.Deployment, error) {
		return c.extensions.Deployments(namespace).Create(ctx, dep, metav1.CreateOptions{})
	})
}

func (c *client) DeleteDeployment(ctx context.Context, namespace, name string) error {
	log.FromContext(ctx).Info("Deleting deployment", "namespace", namespace, "name", name)

	opts := metav1.DeleteOptions{
		//nolint:staticcheck // SA1019: extensions/v1beta1 defaults to orphaning, so dependents are requested explicitly
		OrphanDependents: ptr.Bool(false),
	}

	t := target{kind: "Deployment", namespace: namespace, name: name}
	return remove(ctx, c, t, "delete", func(ctx context.Context) error {
		return c.extensions.Deployments(namespace).Delete(ctx, name, opts)
	})
}
