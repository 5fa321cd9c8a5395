package manifest

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Namespace builds a bare Namespace object.
func Namespace(name string) (*corev1.Namespace, error) {
	if err := validateLabelName("Namespace", "metadata.name", name); err != nil {
		return nil, err
	}

	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Namespace",
			APIVersion: "v1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
	}, nil
}
