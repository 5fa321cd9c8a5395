package handlers

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/imamik/kubelift/internal/config"
	"github.com/imamik/kubelift/internal/kube"
	"github.com/imamik/kubelift/internal/platform/cloudflare"
	"github.com/imamik/kubelift/internal/platform/vault"
)

type memoryStore struct {
	values map[string]string
	writes []string
}

func (m *memoryStore) Read(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", errors.New("missing " + key)
	}
	return v, nil
}

func (m *memoryStore) Write(_ context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	m.writes = append(m.writes, key)
	return nil
}

type fakeDNS struct {
	zones   map[string]string
	upserts []string
	deletes []string
}

func (f *fakeDNS) GetZone(_ context.Context, name string) (cloudflare.Zone, bool, error) {
	id, ok := f.zones[name]
	return cloudflare.Zone{ID: id, Name: name}, ok, nil
}

func (f *fakeDNS) UpsertDNSRecord(_ context.Context, zoneID, name, recordType, content string) (cloudflare.Record, error) {
	f.upserts = append(f.upserts, strings.Join([]string{zoneID, name, recordType, content}, " "))
	return cloudflare.Record{Name: name, Type: recordType, Content: content}, nil
}

func (f *fakeDNS) DeleteDNSRecord(_ context.Context, zoneID, name string) error {
	f.deletes = append(f.deletes, zoneID+" "+name)
	return nil
}

type fixture struct {
	cfg       *config.Config
	clientset *fake.Clientset
	store     *memoryStore
	dns       *fakeDNS
	out       *bytes.Buffer
}

// setup replaces every factory with fakes. Tests using it must not run in parallel.
func setup(t *testing.T, objects ...runtime.Object) *fixture {
	t.Helper()

	cfg := &config.Config{
		Kubernetes: config.KubernetesConfig{Host: "https://10.0.0.1:6443", Token: "t"},
		Vault:      config.VaultConfig{Address: "https://vault:8200", Token: "s.t", Environment: "prod"},
		Cloudflare: config.CloudflareConfig{APIToken: "cf"},
	}
	cfg.SetDefaults()

	f := &fixture{
		cfg: cfg,
		//nolint:staticcheck // SA1019: NewSimpleClientset is sufficient for our testing needs
		clientset: fake.NewSimpleClientset(objects...),
		store:     &memoryStore{values: map[string]string{"SSL_CERTIFICATE": "CERT", "SSL_PRIVATE_KEY": "KEY"}},
		dns:       &fakeDNS{zones: map[string]string{"example.com": "zone-1"}},
		out:       &bytes.Buffer{},
	}

	origLoad, origKube, origVault, origDNS, origOut := loadConfig, newKubeClient, openVault, newDNSClient, stdout
	t.Cleanup(func() {
		loadConfig, newKubeClient, openVault, newDNSClient, stdout = origLoad, origKube, origVault, origDNS, origOut
	})

	loadConfig = func(string) (*config.Config, error) { return f.cfg, nil }
	newKubeClient = func(_ kube.ClientConfig, opts ...kube.Option) (kube.Client, error) {
		return kube.NewFromClientset(f.clientset, opts...), nil
	}
	openVault = func(context.Context, vault.Config) (secretStore, error) { return f.store, nil }
	newDNSClient = func(string) dnsClient { return f.dns }
	stdout = f.out

	return f
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEnsureNamespace(t *testing.T) {
	f := setup(t)

	require.NoError(t, EnsureNamespace(context.Background(), Options{}, "shop"))
	assert.Contains(t, f.out.String(), "namespace shop ready")

	_, err := f.clientset.CoreV1().Namespaces().Get(context.Background(), "shop", metav1.GetOptions{})
	assert.NoError(t, err)
}

func TestDeploy_WithTLSAndDNS(t *testing.T) {
	f := setup(t)
	file := writeTemp(t, "app.yaml", `
name: api
image: registry.example.com/api
tag: "1.0"
port: 8080
tls: true
dns:
  zone: example.com
  name: api.example.com
  content: lb.example.net
`)

	require.NoError(t, Deploy(context.Background(), Options{}, file, "shop"))

	ctx := context.Background()
	_, err := f.clientset.ExtensionsV1beta1().Deployments("shop").Get(ctx, "api", metav1.GetOptions{})
	require.NoError(t, err)
	_, err = f.clientset.CoreV1().Services("shop").Get(ctx, "api", metav1.GetOptions{})
	require.NoError(t, err)
	ing, err := f.clientset.ExtensionsV1beta1().Ingresses("shop").Get(ctx, "api", metav1.GetOptions{})
	require.NoError(t, err)
	require.Len(t, ing.Spec.TLS, 1)
	assert.Equal(t, "tls", ing.Spec.TLS[0].SecretName)

	secret, err := f.clientset.CoreV1().Secrets("shop").Get(ctx, "tls", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, []byte("CERT"), secret.Data["tls.crt"])

	assert.Equal(t, []string{"zone-1 api.example.com CNAME lb.example.net"}, f.dns.upserts)
	assert.Contains(t, f.out.String(), "ingress api created with TLS secret tls")
}

func TestDeploy_WithoutTLSSkipsSecretStore(t *testing.T) {
	setup(t)
	openVault = func(context.Context, vault.Config) (secretStore, error) {
		t.Fatal("secret store must not be opened")
		return nil, nil
	}
	file := writeTemp(t, "app.yaml", "name: web\nimage: nginx\nport: 80\n")

	require.NoError(t, Deploy(context.Background(), Options{}, file, "web"))
}

func TestDeploy_UnknownZone(t *testing.T) {
	setup(t)
	file := writeTemp(t, "app.yaml", `
name: web
image: nginx
port: 80
dns:
  zone: other.org
  name: web.other.org
  content: lb.example.net
`)

	err := Deploy(context.Background(), Options{}, file, "web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cloudflare zone found for other.org")
}

func TestGet(t *testing.T) {
	f := setup(t, &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "shop"}})

	require.NoError(t, Get(context.Background(), Options{}, KindService, "shop", "api"))
	assert.Contains(t, f.out.String(), "name: api")

	f.out.Reset()
	require.NoError(t, Get(context.Background(), Options{}, KindDeployment, "shop", "missing"))
	assert.Equal(t, "deployment shop/missing not found\n", f.out.String())

	err := Get(context.Background(), Options{}, "configmap", "shop", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported kind "configmap"`)
}

func TestDelete(t *testing.T) {
	f := setup(t, &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "shop"}})

	require.NoError(t, Delete(context.Background(), Options{}, KindService, "shop", "api", ""))
	assert.Contains(t, f.out.String(), "service api deleted")

	err := Delete(context.Background(), Options{}, KindService, "shop", "api", "")
	require.Error(t, err)
	assert.True(t, kube.IsAbsent(err))
}

func TestSetSecret(t *testing.T) {
	f := setup(t)
	file := writeTemp(t, "data.yaml", "username: admin\npassword: file\n")

	require.NoError(t, SetSecret(context.Background(), Options{}, "shop", "db",
		[]string{"password=literal"}, file))

	secret, err := f.clientset.CoreV1().Secrets("shop").Get(context.Background(), "db", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"username": []byte("admin"), "password": []byte("literal")}, secret.Data)
}

func TestSetSecret_NonStringFromFile(t *testing.T) {
	f := setup(t)
	file := writeTemp(t, "data.yaml", "port: 5432\n")

	err := SetSecret(context.Background(), Options{}, "shop", "db", nil, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only string values are allowed")
	assert.Empty(t, f.clientset.Actions())
}

func TestSetSecret_InvalidInput(t *testing.T) {
	setup(t)

	err := SetSecret(context.Background(), Options{}, "shop", "db", []string{"novalue"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")

	err = SetSecret(context.Background(), Options{}, "shop", "db", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no secret data given")
}

func TestBootstrapTLS(t *testing.T) {
	f := setup(t)

	require.NoError(t, BootstrapTLS(context.Background(), Options{}, "shop"))

	secret, err := f.clientset.CoreV1().Secrets("shop").Get(context.Background(), "tls", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, []byte("KEY"), secret.Data["tls.key"])
}

func TestBootstrapTLS_VaultNotConfigured(t *testing.T) {
	f := setup(t)
	f.cfg.Vault = config.VaultConfig{}

	err := BootstrapTLS(context.Background(), Options{}, "shop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault is not configured")
	assert.Empty(t, f.clientset.Actions())
}

func TestUploadTLS(t *testing.T) {
	f := setup(t)
	f.store.values = nil
	cert := writeTemp(t, "tls.crt", "PEM-CERT")
	key := writeTemp(t, "tls.key", "PEM-KEY")

	require.NoError(t, UploadTLS(context.Background(), Options{}, cert, key))

	assert.Equal(t, []string{"SSL_CERTIFICATE", "SSL_PRIVATE_KEY"}, f.store.writes)
	assert.Equal(t, "PEM-CERT", f.store.values["SSL_CERTIFICATE"])
	assert.Contains(t, f.out.String(), "vault (secret/prod)")
}

func TestDNS(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, UpsertDNS(ctx, Options{}, "example.com", "www.example.com", "A", "1.2.3.4"))
	require.NoError(t, DeleteDNS(ctx, Options{}, "example.com", "www.example.com"))

	assert.Equal(t, []string{"zone-1 www.example.com A 1.2.3.4"}, f.dns.upserts)
	assert.Equal(t, []string{"zone-1 www.example.com"}, f.dns.deletes)

	f.cfg.Cloudflare.APIToken = ""
	err := DeleteDNS(ctx, Options{}, "example.com", "www.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api token is not configured")
}

func TestMetricsFile(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "kubelift.prom")

	require.NoError(t, EnsureNamespace(context.Background(), Options{MetricsFile: path}, "shop"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `kubelift_operations_total{kind="Namespace",operation="create",result="success"} 1`)
}
