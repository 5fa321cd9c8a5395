package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imamik/kubelift/internal/manifest"
)

// DefaultDNSRecordType is used when an application file omits dns.type.
const DefaultDNSRecordType = "CNAME"

// AppFile is the document consumed by "kubelift deploy".
type AppFile struct {
	manifest.Application `yaml:",inline"`

	// DNS optionally points a host name at the ingress.
	DNS *DNSRecord `yaml:"dns,omitempty"`
}

// DNSRecord describes a record to create or update after deployment.
type DNSRecord struct {
	Zone    string `yaml:"zone"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Content string `yaml:"content"`
}

// LoadApplication reads an application file. Unknown keys are rejected.
func LoadApplication(path string) (*AppFile, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read application file: %w", err)
	}
	return ParseApplication(data)
}

// ParseApplication decodes application YAML and fills in DNS defaults.
func ParseApplication(data []byte) (*AppFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var app AppFile
	if err := dec.Decode(&app); err != nil {
		return nil, fmt.Errorf("failed to parse application: %w", err)
	}

	if app.Name == "" {
		return nil, errors.New("application name is required")
	}

	if app.DNS != nil {
		if app.DNS.Type == "" {
			app.DNS.Type = DefaultDNSRecordType
		}
		if app.DNS.Zone == "" || app.DNS.Name == "" || app.DNS.Content == "" {
			return nil, errors.New("dns requires zone, name and content")
		}
	}

	return &app, nil
}
