package manifest

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/imamik/kubelift/internal/util/labels"
	"github.com/imamik/kubelift/internal/util/ptr"
)

// Deployment builds an extensions/v1beta1 Deployment running a single container
// of app. env is passed through to the container unchanged.
//
// Resource limits and requests are set to the same values. When app carries a
// health check, an HTTP liveness probe is attached.
func Deployment(namespace, name string, app Application, env []corev1.EnvVar) (*extensionsv1beta1.Deployment, error) {
	const kind = "Deployment"

	if err := validateLabelName(kind, "metadata.namespace", namespace); err != nil {
		return nil, err
	}
	if err := validateName(kind, "metadata.name", name); err != nil {
		return nil, err
	}
	if err := validateLabelName(kind, "container.name", app.Name); err != nil {
		return nil, err
	}
	if app.Image == "" {
		return nil, invalid(kind, "container.image", "must not be empty")
	}
	if err := validatePort(kind, "container.port", app.Port); err != nil {
		return nil, err
	}
	if app.Replicas != nil && *app.Replicas < 0 {
		return nil, invalid(kind, "spec.replicas", "must not be negative")
	}

	resources, err := buildResources(app.Limits)
	if err != nil {
		return nil, err
	}

	container := corev1.Container{
		Name:      app.Name,
		Image:     imageReference(app.Image, app.Tag),
		Ports:     []corev1.ContainerPort{{ContainerPort: app.Port}},
		Env:       env,
		Resources: resources,
	}

	if app.HealthCheck != nil {
		probe, err := buildLivenessProbe(*app.HealthCheck)
		if err != nil {
			return nil, err
		}
		container.LivenessProbe = probe
	}

	var replicas *int32
	if app.Replicas != nil {
		replicas = ptr.Int32(*app.Replicas)
	}

	return &extensionsv1beta1.Deployment{
		TypeMeta: metav1.TypeMeta{
			Kind:       kind,
			APIVersion: "extensions/v1beta1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: extensionsv1beta1.DeploymentSpec{
			Replicas: replicas,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels.NewLabelBuilder(app.Name).WithService(name).Build(),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{container},
				},
			},
		},
	}, nil
}

func imageReference(image, tag string) string {
	if tag == "" {
		return image
	}
	return image + ":" + tag
}

// buildResources parses the quantities once and uses them for both limits and requests.
func buildResources(limits Resources) (corev1.ResourceRequirements, error) {
	list := corev1.ResourceList{}

	if limits.CPU != "" {
		q, err := resource.ParseQuantity(limits.CPU)
		if err != nil {
			return corev1.ResourceRequirements{}, invalid("Deployment", "resources.cpu", fmt.Sprintf("%q: %v", limits.CPU, err))
		}
		list[corev1.ResourceCPU] = q
	}
	if limits.Memory != "" {
		q, err := resource.ParseQuantity(limits.Memory)
		if err != nil {
			return corev1.ResourceRequirements{}, invalid("Deployment", "resources.memory", fmt.Sprintf("%q: %v", limits.Memory, err))
		}
		list[corev1.ResourceMemory] = q
	}

	if len(list) == 0 {
		return corev1.ResourceRequirements{}, nil
	}

	return corev1.ResourceRequirements{
		Limits:   list,
		Requests: list.DeepCopy(),
	}, nil
}

func buildLivenessProbe(hc HealthCheck) (*corev1.Probe, error) {
	if hc.Path == "" {
		return nil, invalid("Deployment", "livenessProbe.httpGet.path", "must not be empty")
	}
	if err := validatePort("Deployment", "livenessProbe.httpGet.port", hc.Port); err != nil {
		return nil, err
	}

	initialDelay := hc.InitialDelaySeconds
	if initialDelay == 0 {
		initialDelay = DefaultInitialDelaySeconds
	}
	timeout := hc.TimeoutSeconds
	if timeout == 0 {
		timeout = DefaultTimeoutSeconds
	}

	return &corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			HTTPGet: &corev1.HTTPGetAction{
				Path: hc.Path,
				Port: intstr.FromInt32(hc.Port),
			},
		},
		InitialDelaySeconds: initialDelay,
		TimeoutSeconds:      timeout,
	}, nil
}
