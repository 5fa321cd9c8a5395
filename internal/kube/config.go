package kube

// ClientConfig describes how to reach the API server.
type ClientConfig struct {
	// Host is the API server URL, e.g. https://10.0.0.1:6443.
	Host string

	// Token is the bearer token. When empty it is read from TokenFile.
	Token string

	// TokenFile defaults to the in-cluster service account token.
	TokenFile string

	// InsecureSkipTLSVerify disables server certificate verification.
	// Certificates are verified unless this is set explicitly.
	InsecureSkipTLSVerify bool

	// CAFile is an optional PEM bundle used to verify the server certificate.
	CAFile string
}
