// Package kube creates, inspects and deletes workload resources on a
// Kubernetes API server.
//
// A [Client] is bound to one API server endpoint and bearer token. Every
// get operation returns (object, found, error): a resource the server
// reports as missing yields found == false and a nil error, while every
// other failure is returned as a [*OperationError] wrapping the original
// client-go error. Create operations build their objects with the
// manifest package and POST them without a pre-existence check.
//
// Multi-step flows (namespace get-or-create, TLS secret bootstrap before
// ingress creation) run sequentially and are not transactional.
package kube
