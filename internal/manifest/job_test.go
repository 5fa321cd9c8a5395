package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

func TestJob(t *testing.T) {
	t.Parallel()

	job, err := BuildJob("batch", "migrate", Job{
		Image:   "registry.example.com/migrate:2",
		Command: []string{"/bin/migrate", "up"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Job", job.Kind)
	assert.Equal(t, "batch/v1", job.APIVersion)
	assert.Equal(t, "migrate", job.Name)
	assert.Equal(t, "migrate", job.Spec.Template.Name)
	assert.Equal(t, map[string]string{"application": "migrate"}, job.Spec.Template.Labels)
	assert.Equal(t, corev1.RestartPolicyNever, job.Spec.Template.Spec.RestartPolicy)

	require.Len(t, job.Spec.Template.Spec.Containers, 1)
	c := job.Spec.Template.Spec.Containers[0]
	assert.Equal(t, "migrate", c.Name)
	assert.Equal(t, "registry.example.com/migrate:2", c.Image)
	assert.Equal(t, []string{"/bin/migrate", "up"}, c.Command)
}

func TestJob_CustomLabelsWin(t *testing.T) {
	t.Parallel()

	job, err := BuildJob("batch", "migrate", Job{
		Image:  "migrate",
		Labels: map[string]string{"application": "override", "team": "data"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"application": "override", "team": "data"}, job.Spec.Template.Labels)
}

func TestJob_RestartPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		policy  corev1.RestartPolicy
		want    corev1.RestartPolicy
		wantErr bool
	}{
		{"default", "", corev1.RestartPolicyNever, false},
		{"never", corev1.RestartPolicyNever, corev1.RestartPolicyNever, false},
		{"on failure", corev1.RestartPolicyOnFailure, corev1.RestartPolicyOnFailure, false},
		{"always is rejected", corev1.RestartPolicyAlways, "", true},
		{"unknown is rejected", "Sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			job, err := BuildJob("batch", "migrate", Job{Image: "migrate", RestartPolicy: tt.policy})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, job.Spec.Template.Spec.RestartPolicy)
		})
	}
}

func TestJob_MissingImage(t *testing.T) {
	t.Parallel()

	_, err := BuildJob("batch", "migrate", Job{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container.image")
}
