package config

import "os"

// Environment variables that override file settings.
const (
	EnvKubernetesHost     = "KUBERNETES_HOST"
	EnvKubernetesToken    = "KUBERNETES_TOKEN"
	EnvVaultAddress       = "VAULT_ADDRESS"
	EnvVaultToken         = "VAULT_TOKEN"
	EnvVaultEnvironment   = "VAULT_ENVIRONMENT"
	EnvAWSRegion          = "AWS_REGION"
	EnvS3Endpoint         = "S3_ENDPOINT"
	EnvS3AccessKey        = "S3_ACCESS_KEY"
	EnvS3SecretKey        = "S3_SECRET_KEY"
	EnvCloudflareAPIToken = "CLOUDFLARE_API_TOKEN"
)

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings with the non-empty environment variables
// returned by lookup. A nil lookup uses os.LookupEnv.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	overrides := []struct {
		env   string
		field *string
	}{
		{EnvKubernetesHost, &c.Kubernetes.Host},
		{EnvKubernetesToken, &c.Kubernetes.Token},
		{EnvVaultAddress, &c.Vault.Address},
		{EnvVaultToken, &c.Vault.Token},
		{EnvVaultEnvironment, &c.Vault.Environment},
		{EnvAWSRegion, &c.S3.Region},
		{EnvS3Endpoint, &c.S3.Endpoint},
		{EnvS3AccessKey, &c.S3.AccessKey},
		{EnvS3SecretKey, &c.S3.SecretKey},
		{EnvCloudflareAPIToken, &c.Cloudflare.APIToken},
	}

	for _, o := range overrides {
		if val, ok := lookup(o.env); ok && val != "" {
			*o.field = val
		}
	}
}
