package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/kubelift/internal/config"
)

// UpsertDNS creates or updates a record in the Cloudflare zone.
func UpsertDNS(ctx context.Context, opts Options, zone, name, recordType, content string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return upsertRecord(ctx, cfg, config.DNSRecord{Zone: zone, Name: name, Type: recordType, Content: content})
}

// DeleteDNS deletes a record from the Cloudflare zone. A missing record is an error.
func DeleteDNS(ctx context.Context, opts Options, zone, name string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Cloudflare.APIToken == "" {
		return errors.New("cloudflare api token is not configured")
	}
	dns := newDNSClient(cfg.Cloudflare.APIToken)

	z, found, err := dns.GetZone(ctx, zone)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no cloudflare zone found for %s", zone)
	}

	if err := dns.DeleteDNSRecord(ctx, z.ID, name); err != nil {
		return err
	}
	printDone("dns record %s deleted", name)
	return nil
}
