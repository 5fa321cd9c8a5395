package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubelift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
kubernetes:
  host: https://10.0.0.1:6443
  token: file-token
  ca_file: /etc/kubelift/ca.pem
vault:
  address: https://vault:8200
  token: s.abc
  environment: production
tls:
  secret_name: wildcard
cloudflare:
  api_token: cf-token
`)

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "https://10.0.0.1:6443", cfg.Kubernetes.Host)
	assert.Equal(t, "file-token", cfg.Kubernetes.Token)
	assert.Equal(t, "/etc/kubelift/ca.pem", cfg.Kubernetes.CAFile)
	assert.Equal(t, "production", cfg.Vault.Environment)
	assert.Equal(t, "cf-token", cfg.Cloudflare.APIToken)

	// defaults
	assert.Equal(t, TLSSourceVault, cfg.TLS.Source)
	assert.Equal(t, "wildcard", cfg.TLS.SecretName)
	assert.Equal(t, "SSL_CERTIFICATE", cfg.TLS.CertificateKey)
	assert.Equal(t, "SSL_PRIVATE_KEY", cfg.TLS.PrivateKeyKey)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
kubernetes:
  host: https://file:6443
  token: file-token
`)

	cfg, err := Load(path, envMap(map[string]string{
		EnvKubernetesHost:     "https://env:6443",
		EnvKubernetesToken:    "",
		EnvVaultAddress:       "https://vault:8200",
		EnvVaultToken:         "s.env",
		EnvVaultEnvironment:   "staging",
		EnvCloudflareAPIToken: "cf",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://env:6443", cfg.Kubernetes.Host)
	assert.Equal(t, "file-token", cfg.Kubernetes.Token, "empty env values do not override")
	assert.Equal(t, "staging", cfg.Vault.Environment)
	assert.Equal(t, "cf", cfg.Cloudflare.APIToken)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", envMap(map[string]string{
		EnvKubernetesHost: "https://10.0.0.1:6443",
		EnvAWSRegion:      "eu-central-1",
		EnvS3Endpoint:     "https://s3.example.com",
		EnvS3AccessKey:    "ak",
		EnvS3SecretKey:    "sk",
	}))
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.S3.Region)
	assert.Equal(t, "https://s3.example.com", cfg.S3.Endpoint)
	assert.Equal(t, "ak", cfg.S3.AccessKey)
	assert.Equal(t, "sk", cfg.S3.SecretKey)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), envMap(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestParse_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("kubernetes:\n  hots: https://typo:6443\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hots")
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("kubernetes: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestParse_WeakBool(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("kubernetes:\n  insecure_skip_tls_verify: \"true\"\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Kubernetes.InsecureSkipTLSVerify)
}
