package kube

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/scheme"
	batchv1client "k8s.io/client-go/kubernetes/typed/batch/v1"
	corev1client "k8s.io/client-go/kubernetes/typed/core/v1"
	extensionsv1beta1client "k8s.io/client-go/kubernetes/typed/extensions/v1beta1"
	"k8s.io/client-go/rest"
)

const userAgent = "kubelift"

// API group/versions the orchestrator talks to.
var (
	CoreV1            = schema.GroupVersion{Version: "v1"}
	ExtensionsV1beta1 = schema.GroupVersion{Group: "extensions", Version: "v1beta1"}
	BatchV1           = schema.GroupVersion{Group: "batch", Version: "v1"}
)

// groupClients holds one typed client per API group/version path prefix.
type groupClients struct {
	core       corev1client.CoreV1Interface
	extensions extensionsv1beta1client.ExtensionsV1beta1Interface
	batch      batchv1client.BatchV1Interface
}

// restConfigFor builds the shared transport settings: endpoint, bearer token,
// TLS policy and content type. Requests and responses are always JSON.
func restConfigFor(cfg ClientConfig, token string) *rest.Config {
	return &rest.Config{
		Host:        cfg.Host,
		BearerToken: token,
		ContentConfig: rest.ContentConfig{
			ContentType:        runtime.ContentTypeJSON,
			AcceptContentTypes: runtime.ContentTypeJSON,
		},
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: cfg.InsecureSkipTLSVerify,
			CAFile:   cfg.CAFile,
		},
		UserAgent: userAgent,
	}
}

// apiPathFor returns the URL prefix of a group: /api for the legacy core
// group and /apis for everything else.
func apiPathFor(gv schema.GroupVersion) string {
	if gv.Group == "" {
		return "/api"
	}
	return "/apis"
}

// groupClient returns a REST client bound to a single group/version path
// prefix, e.g. /apis/extensions/v1beta1.
func groupClient(base *rest.Config, gv schema.GroupVersion) (rest.Interface, error) {
	cfg := rest.CopyConfig(base)
	cfg.GroupVersion = &gv
	cfg.APIPath = apiPathFor(gv)
	cfg.NegotiatedSerializer = scheme.Codecs.WithoutConversion()

	client, err := rest.RESTClientFor(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client for %s: %w", gv, err)
	}
	return client, nil
}

func newGroupClients(base *rest.Config) (groupClients, error) {
	core, err := groupClient(base, CoreV1)
	if err != nil {
		return groupClients{}, err
	}
	extensions, err := groupClient(base, ExtensionsV1beta1)
	if err != nil {
		return groupClients{}, err
	}
	batch, err := groupClient(base, BatchV1)
	if err != nil {
		return groupClients{}, err
	}

	return groupClients{
		core:       corev1client.New(core),
		extensions: extensionsv1beta1client.New(extensions),
		batch:      batchv1client.New(batch),
	}, nil
}

func groupClientsFrom(clientset kubernetes.Interface) groupClients {
	return groupClients{
		core:       clientset.CoreV1(),
		extensions: clientset.ExtensionsV1beta1(),
		batch:      clientset.BatchV1(),
	}
}
