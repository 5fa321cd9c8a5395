// Package manifest builds the typed Kubernetes objects submitted by the
// orchestrator.
//
// There is one builder per kind (Namespace, Deployment, Service, Ingress,
// Job, Secret). Every builder validates its input and returns a
// [*ValidationError] before anything is sent to the API server, so a
// malformed request never produces a half-populated object.
package manifest
