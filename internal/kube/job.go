package kube

import (
	"context"

	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/manifest"
)

func (c *client) GetJob(ctx context.Context, namespace, name string) (*batchv1.Job, bool, error) {
	t := target{kind: "Job", namespace: namespace, name: name}
	return get(ctx, c, t, func(ctx context.Context) (*batchv1.Job, error) {
		return c.batch.Jobs(namespace).Get(ctx, name, metav1.GetOptions{})
	})
}

func (c *client) GetJobs(ctx context.Context, namespace string) (*batchv1.JobList, bool, error) {
	t := target{kind: "Job", namespace: namespace}
	return get(ctx, c, t, func(ctx context.Context) (*batchv1.JobList, error) {
		return c.batch.Jobs(namespace).List(ctx, metav1.ListOptions{})
	})
}

func (c *client) CreateJob(ctx context.Context, namespace, name string, job manifest.Job) (*batchv1.Job, error) {
	obj, err := manifest.BuildJob(namespace, name, job)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).Info("Creating batch job", "namespace", namespace, "name", name,
		"restartPolicy", obj.Spec.Template.Spec.RestartPolicy)

	t := target{kind: "Job", namespace: namespace, name: name}
	return create(ctx, c, t, func(ctx context.Context) (*batchv1.Job, error) {
		return c.batch.Jobs(namespace).Create(ctx, obj, metav1.CreateOptions{})
	})
}

func (c *client) DeleteJob(ctx context.Context, namespace, name string) error {
	log.FromContext(ctx).Info("Deleting job", "namespace", namespace, "name", name)

	t := target{kind: "Job", namespace: namespace, name: name}
	return remove(ctx, c, t, "delete", func(ctx context.Context) error {
		return c.batch.Jobs(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	})
}
