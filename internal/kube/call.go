package kube

import "context"

// target identifies the resource an API call is about.
type target struct {
	kind      string
	namespace string
	name      string
}

func (t target) wrap(op string, err error) error {
	return &OperationError{
		Op:        op,
		Kind:      t.kind,
		Namespace: t.namespace,
		Name:      t.name,
		Err:       err,
	}
}

// get runs fn and folds an absent result into found == false.
func get[T any](ctx context.Context, c *client, t target, fn func(context.Context) (T, error)) (T, bool, error) {
	obj, err := fn(ctx)
	c.metrics.observe("get", t.kind, err)

	var zero T
	switch {
	case err == nil:
		return obj, true, nil
	case Classify(err) == ClassAbsent:
		return zero, false, nil
	default:
		return zero, false, t.wrap("get", err)
	}
}

func create[T any](ctx context.Context, c *client, t target, fn func(context.Context) (T, error)) (T, error) {
	obj, err := fn(ctx)
	c.metrics.observe("create", t.kind, err)
	if err != nil {
		var zero T
		return zero, t.wrap("create", err)
	}
	return obj, nil
}

func remove(ctx context.Context, c *client, t target, op string, fn func(context.Context) error) error {
	err := fn(ctx)
	c.metrics.observe(op, t.kind, err)
	if err != nil {
		return t.wrap(op, err)
	}
	return nil
}
