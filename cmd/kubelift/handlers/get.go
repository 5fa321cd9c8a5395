package handlers

import (
	"context"
	"fmt"
)

// Resource kinds accepted by Get and Delete.
const (
	KindDeployment  = "deployment"
	KindService     = "service"
	KindIngress     = "ingress"
	KindJob         = "job"
	KindJobs        = "jobs"
	KindPods        = "pods"
	KindReplicaSets = "replicasets"
)

// Get prints a resource as YAML, or a "not found" line when it does not exist.
// For KindJobs name is ignored and all jobs of the namespace are listed.
func Get(ctx context.Context, opts Options, kind, namespace, name string) (err error) {
	s, err := openSession(ctx, opts, false)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	var (
		obj   any
		found bool
	)
	switch kind {
	case KindDeployment:
		obj, found, err = s.kube.GetDeployment(ctx, namespace, name)
	case KindService:
		obj, found, err = s.kube.GetService(ctx, namespace, name)
	case KindIngress:
		obj, found, err = s.kube.GetIngress(ctx, namespace, name)
	case KindJob:
		obj, found, err = s.kube.GetJob(ctx, namespace, name)
	case KindJobs:
		obj, found, err = s.kube.GetJobs(ctx, namespace)
		name = "list"
	default:
		return fmt.Errorf("unsupported kind %q", kind)
	}
	if err != nil {
		return err
	}
	if !found {
		printNotFound(kind, namespace, name)
		return nil
	}
	return printYAML(obj)
}
