package labels

import (
	k8slabels "k8s.io/apimachinery/pkg/labels"
)

// Standard label keys for workload resources.
const (
	// KeyApplication identifies the application a resource belongs to
	KeyApplication = "application"

	// KeyService ties pods to the service that selects them
	KeyService = "service"
)

// LabelBuilder provides a fluent interface for building workload labels.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a new label builder with the application label pre-set.
func NewLabelBuilder(application string) *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyApplication: application,
		},
	}
}

// WithService adds the service label used by service selectors.
func (lb *LabelBuilder) WithService(service string) *LabelBuilder {
	lb.labels[KeyService] = service
	return lb
}

// Merge adds all labels from the provided map.
// Existing keys are overwritten, so caller labels take precedence over defaults.
func (lb *LabelBuilder) Merge(extra map[string]string) *LabelBuilder {
	for k, v := range extra {
		lb.labels[k] = v
	}
	return lb
}

// Build returns a copy of the labels map.
// Returns a copy to prevent external mutations.
func (lb *LabelBuilder) Build() map[string]string {
	result := make(map[string]string, len(lb.labels))
	for k, v := range lb.labels {
		result[k] = v
	}
	return result
}

// SelectorForApplication returns a label selector string matching every
// resource of the given application, e.g. "application=api".
func SelectorForApplication(application string) string {
	return k8slabels.SelectorFromSet(k8slabels.Set{KeyApplication: application}).String()
}

// ServiceSelector returns the selector a Service uses to find its pods.
func ServiceSelector(service string) map[string]string {
	return map[string]string{KeyService: service}
}
