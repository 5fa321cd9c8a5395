package manifest

import (
	"sort"

	corev1 "k8s.io/api/core/v1"
)

// Application describes a long-running service. The same description
// drives the Deployment, Service and Ingress builders.
type Application struct {
	// Name is the container name and the value of the "application" pod label.
	Name     string `yaml:"name"`
	Image    string `yaml:"image"`
	Tag      string `yaml:"tag"`
	Port     int32  `yaml:"port"`
	Replicas *int32 `yaml:"replicas,omitempty"`

	// Limits is applied as both resource limits and requests.
	Limits Resources `yaml:"limits"`

	HealthCheck *HealthCheck `yaml:"healthCheck,omitempty"`

	// SessionAffinity pins clients to a pod by source IP.
	SessionAffinity bool `yaml:"sessionAffinity"`

	// TLS terminates HTTPS at the ingress using the "tls" secret.
	TLS bool `yaml:"tls"`

	Env map[string]string `yaml:"env,omitempty"`
}

// Resources holds CPU and memory quantities, e.g. "250m" and "256Mi".
type Resources struct {
	CPU    string `yaml:"cpu"`
	Memory string `yaml:"memory"`
}

// HealthCheck configures an HTTP liveness probe.
type HealthCheck struct {
	Path string `yaml:"path"`
	Port int32  `yaml:"port"`

	// Zero means "unspecified" and falls back to the defaults below.
	InitialDelaySeconds int32 `yaml:"initialDelaySeconds,omitempty"`
	TimeoutSeconds      int32 `yaml:"timeoutSeconds,omitempty"`
}

// Liveness probe defaults.
const (
	DefaultInitialDelaySeconds int32 = 5
	DefaultTimeoutSeconds      int32 = 1
)

// EnvVars converts Env into container environment variables, sorted by name
// so that the rendered manifest is stable.
func (a Application) EnvVars() []corev1.EnvVar {
	if len(a.Env) == 0 {
		return nil
	}
	names := make([]string, 0, len(a.Env))
	for name := range a.Env {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]corev1.EnvVar, 0, len(names))
	for _, name := range names {
		vars = append(vars, corev1.EnvVar{Name: name, Value: a.Env[name]})
	}
	return vars
}

// Job describes a run-to-completion batch workload.
type Job struct {
	Image   string            `yaml:"image"`
	Command []string          `yaml:"command"`
	Labels  map[string]string `yaml:"labels,omitempty"`

	// RestartPolicy defaults to Never. Only Never and OnFailure are valid for jobs.
	RestartPolicy corev1.RestartPolicy `yaml:"restartPolicy,omitempty"`
}
