// Package cloudflare is a minimal Cloudflare API client for pointing
// application host names at the cluster ingress.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const baseURL = "https://api.cloudflare.com/client/v4"

// ErrRecordNotFound is returned when deleting a DNS record that does not exist.
var ErrRecordNotFound = errors.New("DNS record not found")

// Client is a minimal Cloudflare API client for DNS record management.
type Client struct {
	apiToken   string
	httpClient *http.Client
}

// Zone represents a Cloudflare zone.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Record represents a Cloudflare DNS record.
type Record struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl,omitempty"`
	Proxied *bool  `json:"proxied,omitempty"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Errors  []apiError      `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient creates a new Cloudflare API client.
func NewClient(apiToken string) *Client {
	return &Client{
		apiToken:   apiToken,
		httpClient: &http.Client{},
	}
}

// GetZone returns the zone called name. found is false when the account has no such zone.
func (c *Client) GetZone(ctx context.Context, name string) (Zone, bool, error) {
	query := url.Values{"name": {name}}

	var zones []Zone
	if err := c.call(ctx, http.MethodGet, "/zones?"+query.Encode(), nil, &zones); err != nil {
		return Zone{}, false, fmt.Errorf("get zone %s: %w", name, err)
	}
	if len(zones) == 0 {
		return Zone{}, false, nil
	}
	return zones[0], true, nil
}

// GetDNSRecord returns the first record called name in the zone.
func (c *Client) GetDNSRecord(ctx context.Context, zoneID, name string) (Record, bool, error) {
	query := url.Values{"name": {name}}

	var records []Record
	path := fmt.Sprintf("/zones/%s/dns_records?%s", zoneID, query.Encode())
	if err := c.call(ctx, http.MethodGet, path, nil, &records); err != nil {
		return Record{}, false, fmt.Errorf("get DNS record %s: %w", name, err)
	}
	if len(records) == 0 {
		return Record{}, false, nil
	}
	return records[0], true, nil
}

// UpsertDNSRecord creates the record when it does not exist. Otherwise only
// the content of the existing record is replaced; its type is kept.
func (c *Client) UpsertDNSRecord(ctx context.Context, zoneID, name, recordType, content string) (Record, error) {
	logger := log.FromContext(ctx).WithValues("zone", zoneID, "name", name)

	existing, found, err := c.GetDNSRecord(ctx, zoneID, name)
	if err != nil {
		return Record{}, err
	}

	var out Record
	if !found {
		logger.Info("Creating DNS record", "type", recordType, "content", content)
		record := Record{Type: recordType, Name: name, Content: content}
		if err := c.call(ctx, http.MethodPost, fmt.Sprintf("/zones/%s/dns_records", zoneID), record, &out); err != nil {
			return Record{}, fmt.Errorf("create DNS record %s: %w", name, err)
		}
		return out, nil
	}

	logger.Info("Updating DNS record", "id", existing.ID, "content", content)
	existing.Content = content
	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, existing.ID)
	if err := c.call(ctx, http.MethodPut, path, existing, &out); err != nil {
		return Record{}, fmt.Errorf("update DNS record %s: %w", name, err)
	}
	return out, nil
}

// DeleteDNSRecord deletes the record called name. ErrRecordNotFound is
// returned when there is none.
func (c *Client) DeleteDNSRecord(ctx context.Context, zoneID, name string) error {
	record, found, err := c.GetDNSRecord(ctx, zoneID, name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}

	log.FromContext(ctx).Info("Deleting DNS record", "zone", zoneID, "name", name, "id", record.ID)

	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, record.ID)
	if err := c.call(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete DNS record %s: %w", name, err)
	}
	return nil
}

// call sends body as JSON and decodes the result field of the response into out.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}

	var resp apiResponse
	if err := c.do(req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("API error: %s", errorMessages(resp.Errors))
	}
	if out == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("parse result: %w", err)
	}
	return nil
}

func errorMessages(errs []apiError) string {
	if len(errs) == 0 {
		return "unknown error"
	}
	var buf bytes.Buffer
	for i, e := range errs {
		if i > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "%d %s", e.Code, e.Message)
	}
	return buf.String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
