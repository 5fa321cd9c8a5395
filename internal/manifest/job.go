package manifest

import (
	"fmt"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/imamik/kubelift/internal/util/labels"
)

// DefaultJobRestartPolicy is used when the caller does not pick one.
const DefaultJobRestartPolicy = corev1.RestartPolicyNever

// BuildJob builds a batch/v1 Job with a single container. The pod template is
// labelled application=<name> plus job.Labels, where job.Labels wins on
// collision. job.RestartPolicy is the only source of the restart policy.
func BuildJob(namespace, name string, job Job) (*batchv1.Job, error) {
	const kind = "Job"

	if err := validateLabelName(kind, "metadata.namespace", namespace); err != nil {
		return nil, err
	}
	if err := validateLabelName(kind, "metadata.name", name); err != nil {
		return nil, err
	}
	if job.Image == "" {
		return nil, invalid(kind, "container.image", "must not be empty")
	}

	policy := job.RestartPolicy
	if policy == "" {
		policy = DefaultJobRestartPolicy
	}
	if policy != corev1.RestartPolicyNever && policy != corev1.RestartPolicyOnFailure {
		return nil, invalid(kind, "spec.template.spec.restartPolicy",
			fmt.Sprintf("%q is not supported, use %q or %q", policy, corev1.RestartPolicyNever, corev1.RestartPolicyOnFailure))
	}

	return &batchv1.Job{
		TypeMeta: metav1.TypeMeta{
			Kind:       kind,
			APIVersion: "batch/v1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: batchv1.JobSpec{
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Name:   name,
					Labels: labels.NewLabelBuilder(name).Merge(job.Labels).Build(),
				},
				Spec: corev1.PodSpec{
					RestartPolicy: policy,
					Containers: []corev1.Container{{
						Name:    name,
						Image:   job.Image,
						Command: job.Command,
					}},
				},
			},
		},
	}, nil
}
