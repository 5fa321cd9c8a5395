package kube

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/util/labels"
	"github.com/imamik/kubelift/internal/util/ptr"
)

func (c *client) DeletePods(ctx context.Context, namespace, name string, filter *metav1.ListOptions) error {
	listOpts := metav1.ListOptions{}
	if filter != nil {
		listOpts = *filter
	}

	log.FromContext(ctx).Info("Deleting pods", "namespace", namespace, "name", name,
		"labelSelector", listOpts.LabelSelector, "fieldSelector", listOpts.FieldSelector)

	deleteOpts := metav1.DeleteOptions{GracePeriodSeconds: ptr.Int64(0)}

	t := target{kind: "Pod", namespace: namespace}
	return remove(ctx, c, t, "delete collection", func(ctx context.Context) error {
		return c.core.Pods(namespace).DeleteCollection(ctx, deleteOpts, listOpts)
	})
}

func (c *client) DeleteReplicaSets(ctx context.Context, namespace, name string) error {
	selector := labels.SelectorForApplication(name)

	log.FromContext(ctx).Info("Deleting replica sets", "namespace", namespace, "labelSelector", selector)

	t := target{kind: "ReplicaSet", namespace: namespace, name: name}
	return remove(ctx, c, t, "delete collection", func(ctx context.Context) error {
		return c.extensions.ReplicaSets(namespace).DeleteCollection(ctx,
			metav1.DeleteOptions{},
			metav1.ListOptions{LabelSelector: selector},
		)
	})
}
