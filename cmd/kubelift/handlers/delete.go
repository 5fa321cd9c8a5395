package handlers

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Delete removes a resource. For KindPods an empty selector deletes every
// pod of the namespace; for KindReplicaSets name is the application whose
// replica sets are removed.
func Delete(ctx context.Context, opts Options, kind, namespace, name, selector string) (err error) {
	s, err := openSession(ctx, opts, false)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	switch kind {
	case KindDeployment:
		err = s.kube.DeleteDeployment(ctx, namespace, name)
	case KindService:
		err = s.kube.DeleteService(ctx, namespace, name)
	case KindIngress:
		err = s.kube.DeleteIngress(ctx, namespace, name)
	case KindJob:
		err = s.kube.DeleteJob(ctx, namespace, name)
	case KindPods:
		var filter *metav1.ListOptions
		if selector != "" {
			filter = &metav1.ListOptions{LabelSelector: selector}
		}
		err = s.kube.DeletePods(ctx, namespace, name, filter)
	case KindReplicaSets:
		err = s.kube.DeleteReplicaSets(ctx, namespace, name)
	default:
		return fmt.Errorf("unsupported kind %q", kind)
	}
	if err != nil {
		return err
	}

	printDone("%s %s deleted", kind, name)
	return nil
}
