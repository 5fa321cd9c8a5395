package manifest

import (
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// Ingress builds an extensions/v1beta1 Ingress whose default backend is
// serviceName on app.Port. TLS is attached separately with AttachTLS once
// the certificate secret exists.
func Ingress(namespace, serviceName string, app Application) (*extensionsv1beta1.Ingress, error) {
	const kind = "Ingress"

	if err := validateLabelName(kind, "metadata.namespace", namespace); err != nil {
		return nil, err
	}
	if err := validateServiceName(kind, "spec.backend.serviceName", serviceName); err != nil {
		return nil, err
	}
	if err := validatePort(kind, "spec.backend.servicePort", app.Port); err != nil {
		return nil, err
	}

	return &extensionsv1beta1.Ingress{
		TypeMeta: metav1.TypeMeta{
			Kind:       kind,
			APIVersion: "extensions/v1beta1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      serviceName,
			Namespace: namespace,
		},
		Spec: extensionsv1beta1.IngressSpec{
			Backend: &extensionsv1beta1.IngressBackend{
				ServiceName: serviceName,
				ServicePort: intstr.FromInt32(app.Port),
			},
		},
	}, nil
}

// AttachTLS replaces the ingress TLS block with a single entry referencing secretName.
func AttachTLS(ing *extensionsv1beta1.Ingress, secretName string) {
	ing.Spec.TLS = []extensionsv1beta1.IngressTLS{{SecretName: secretName}}
}
