package handlers

import (
	"context"

	"github.com/imamik/kubelift/internal/manifest"
)

// RunJob creates a batch job running job.Command in job.Image.
func RunJob(ctx context.Context, opts Options, namespace, name string, job manifest.Job) (err error) {
	s, err := openSession(ctx, opts, false)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	created, err := s.kube.CreateJob(ctx, namespace, name, job)
	if err != nil {
		return err
	}

	printDone("job %s/%s created (restart policy %s)", namespace, created.Name,
		created.Spec.Template.Spec.RestartPolicy)
	return nil
}
