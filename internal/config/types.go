package config

// Config holds the kubelift configuration.
type Config struct {
	Kubernetes KubernetesConfig `mapstructure:"kubernetes" yaml:"kubernetes"`
	Vault      VaultConfig      `mapstructure:"vault" yaml:"vault"`
	TLS        TLSConfig        `mapstructure:"tls" yaml:"tls"`
	S3         S3Config         `mapstructure:"s3" yaml:"s3"`
	Cloudflare CloudflareConfig `mapstructure:"cloudflare" yaml:"cloudflare"`
}

// KubernetesConfig describes the API server connection.
type KubernetesConfig struct {
	// Host is the API server URL. Env: KUBERNETES_HOST.
	Host string `mapstructure:"host" yaml:"host"`

	// Token is the bearer token. Env: KUBERNETES_TOKEN.
	Token string `mapstructure:"token" yaml:"token"`

	// TokenFile is read when Token is empty.
	// Default: the in-cluster service account token.
	TokenFile string `mapstructure:"token_file" yaml:"token_file"`

	// InsecureSkipTLSVerify disables certificate verification.
	// Default: false
	InsecureSkipTLSVerify bool `mapstructure:"insecure_skip_tls_verify" yaml:"insecure_skip_tls_verify"`

	// CAFile is a PEM bundle for verifying the API server.
	CAFile string `mapstructure:"ca_file" yaml:"ca_file"`
}

// VaultConfig describes the Vault secret store.
type VaultConfig struct {
	Address     string `mapstructure:"address" yaml:"address"`         // Env: VAULT_ADDRESS
	Token       string `mapstructure:"token" yaml:"token"`             // Env: VAULT_TOKEN
	Environment string `mapstructure:"environment" yaml:"environment"` // Env: VAULT_ENVIRONMENT
}

// Enabled reports whether any Vault setting is present.
func (v VaultConfig) Enabled() bool {
	return v.Address != "" || v.Token != "" || v.Environment != ""
}

// TLS certificate sources.
const (
	TLSSourceVault = "vault"
	TLSSourceS3    = "s3"
)

// TLSConfig selects where the ingress certificate comes from.
type TLSConfig struct {
	// Source is "vault" or "s3".
	// Default: "vault"
	Source string `mapstructure:"source" yaml:"source"`

	// SecretName is the namespace secret the ingress references.
	// Default: "tls"
	SecretName string `mapstructure:"secret_name" yaml:"secret_name"`

	// CertificateKey and PrivateKeyKey name the entries in the source.
	// Default: "SSL_CERTIFICATE" and "SSL_PRIVATE_KEY"
	CertificateKey string `mapstructure:"certificate_key" yaml:"certificate_key"`
	PrivateKeyKey  string `mapstructure:"private_key_key" yaml:"private_key_key"`
}

// S3Config describes the object storage holding certificates.
type S3Config struct {
	Endpoint     string `mapstructure:"endpoint" yaml:"endpoint"`     // Env: S3_ENDPOINT
	Region       string `mapstructure:"region" yaml:"region"`         // Env: AWS_REGION
	AccessKey    string `mapstructure:"access_key" yaml:"access_key"` // Env: S3_ACCESS_KEY
	SecretKey    string `mapstructure:"secret_key" yaml:"secret_key"` // Env: S3_SECRET_KEY
	Bucket       string `mapstructure:"bucket" yaml:"bucket"`
	Prefix       string `mapstructure:"prefix" yaml:"prefix"`
	UsePathStyle bool   `mapstructure:"use_path_style" yaml:"use_path_style"`
}

// CloudflareConfig holds DNS API credentials.
type CloudflareConfig struct {
	APIToken string `mapstructure:"api_token" yaml:"api_token"` // Env: CLOUDFLARE_API_TOKEN
}
