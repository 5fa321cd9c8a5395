package manifest

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/imamik/kubelift/internal/util/labels"
)

// Service builds a NodePort Service that selects the pods of the named
// deployment and exposes app.Port on the same container port.
func Service(namespace, name string, app Application) (*corev1.Service, error) {
	const kind = "Service"

	if err := validateLabelName(kind, "metadata.namespace", namespace); err != nil {
		return nil, err
	}
	if err := validateServiceName(kind, "metadata.name", name); err != nil {
		return nil, err
	}
	if err := validatePort(kind, "spec.ports.port", app.Port); err != nil {
		return nil, err
	}

	affinity := corev1.ServiceAffinityNone
	if app.SessionAffinity {
		affinity = corev1.ServiceAffinityClientIP
	}

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			Kind:       kind,
			APIVersion: "v1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeNodePort,
			Selector: labels.ServiceSelector(name),
			Ports: []corev1.ServicePort{{
				Port:       app.Port,
				TargetPort: intstr.FromInt32(app.Port),
			}},
			SessionAffinity: affinity,
		},
	}, nil
}
