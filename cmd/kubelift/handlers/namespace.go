package handlers

import (
	"context"
)

// EnsureNamespace creates the namespace when it does not exist yet.
func EnsureNamespace(ctx context.Context, opts Options, name string) (err error) {
	s, err := openSession(ctx, opts, false)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	ns, err := s.kube.EnsureNamespace(ctx, name)
	if err != nil {
		return err
	}
	printDone("namespace %s ready", ns.Name)
	return nil
}
