package kube

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrMissingToken is returned by New when neither an explicit token nor a
// token file is available.
var ErrMissingToken = errors.New("no kubernetes bearer token given and no token file present")

// ErrNoSecretStore is returned when TLS bootstrap is requested on a client
// built without a secret store.
var ErrNoSecretStore = errors.New("no secret store configured for TLS bootstrap")

// Class is the outcome of classifying a failed API call.
type Class int

const (
	// ClassFatal is any failure other than a missing resource.
	ClassFatal Class = iota
	// ClassAbsent means the server reported that the resource does not exist.
	ClassAbsent
)

func (c Class) String() string {
	switch c {
	case ClassAbsent:
		return "absent"
	default:
		return "fatal"
	}
}

// Classify decides whether err means "resource absent" or is fatal. The
// decision is based on the structured API status (reason NotFound or HTTP
// 404), never on the message text.
func Classify(err error) Class {
	if apierrors.IsNotFound(err) {
		return ClassAbsent
	}
	return ClassFatal
}

// IsAbsent reports whether err is a non-nil "not found" failure.
func IsAbsent(err error) bool {
	return err != nil && Classify(err) == ClassAbsent
}

// OperationError records which call failed. Err is the untouched error
// returned by client-go, so apierrors helpers keep working on it.
type OperationError struct {
	Op        string
	Kind      string
	Namespace string
	Name      string
	Err       error
}

func (e *OperationError) Error() string {
	target := e.Name
	switch {
	case e.Namespace != "" && e.Name != "":
		target = e.Namespace + "/" + e.Name
	case e.Namespace != "":
		target = "in namespace " + e.Namespace
	}
	return fmt.Sprintf("failed to %s %s %s: %v", e.Op, e.Kind, target, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
