package manifest

import (
	"fmt"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Secret builds an Opaque secret from data. Every value must be a string;
// any other type is rejected. Values are stored raw in Data and the API
// codec transmits them as single-line standard base64.
func Secret(namespace, name string, data map[string]any) (*corev1.Secret, error) {
	const kind = "Secret"

	if err := validateLabelName(kind, "metadata.namespace", namespace); err != nil {
		return nil, err
	}
	if err := validateName(kind, "metadata.name", name); err != nil {
		return nil, err
	}

	encoded, err := SecretData(data)
	if err != nil {
		return nil, err
	}

	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			Kind:       kind,
			APIVersion: "v1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: corev1.SecretTypeOpaque,
		Data: encoded,
	}, nil
}

// SecretData validates data and converts it into the Secret.Data form.
// Keys are checked in sorted order so the reported error is deterministic.
func SecretData(data map[string]any) (map[string][]byte, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string][]byte, len(data))
	for _, k := range keys {
		if errs := validation.IsConfigMapKey(k); len(errs) > 0 {
			return nil, invalid("Secret", "data", fmt.Sprintf("key %q: %s", k, strings.Join(errs, "; ")))
		}
		value, ok := data[k].(string)
		if !ok {
			return nil, invalid("Secret", "data", fmt.Sprintf("value of %q is %T, only string values are allowed", k, data[k]))
		}
		out[k] = []byte(value)
	}
	return out, nil
}
