package handlers

import (
	"context"
	"errors"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/config"
)

// loadApplication reads an application file (for testing injection).
var loadApplication = config.LoadApplication

// Deploy creates the namespace, deployment, service and ingress of the
// application described in file. The TLS secret is bootstrapped first when
// the application enables TLS, and a DNS record is upserted when the file
// has a dns section. Existing resources are not updated: a create that hits
// an existing object fails with the server's conflict error.
func Deploy(ctx context.Context, opts Options, file, namespace string) (err error) {
	app, err := loadApplication(file)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, opts, app.TLS)
	if err != nil {
		return err
	}
	defer func() { err = s.finish(ctx, err) }()

	logger := log.FromContext(ctx).WithValues("namespace", namespace, "application", app.Name)
	ctx = log.IntoContext(ctx, logger)

	if _, err := s.kube.EnsureNamespace(ctx, namespace); err != nil {
		return err
	}
	printDone("namespace %s ready", namespace)

	if _, err := s.kube.CreateDeployment(ctx, namespace, app.Name, app.Application, app.EnvVars()); err != nil {
		return err
	}
	printDone("deployment %s created", app.Name)

	if _, err := s.kube.CreateService(ctx, namespace, app.Name, app.Application); err != nil {
		return err
	}
	printDone("service %s created", app.Name)

	if _, err := s.kube.CreateIngress(ctx, namespace, app.Name, app.Application); err != nil {
		return err
	}
	if app.TLS {
		printDone("ingress %s created with TLS secret %s", app.Name, s.cfg.TLS.SecretName)
	} else {
		printDone("ingress %s created", app.Name)
	}

	if app.DNS != nil {
		if err := upsertRecord(ctx, s.cfg, *app.DNS); err != nil {
			return err
		}
	}

	return nil
}

func upsertRecord(ctx context.Context, cfg *config.Config, rec config.DNSRecord) error {
	if cfg.Cloudflare.APIToken == "" {
		return errors.New("cloudflare api token is not configured")
	}
	dns := newDNSClient(cfg.Cloudflare.APIToken)

	zone, found, err := dns.GetZone(ctx, rec.Zone)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no cloudflare zone found for %s", rec.Zone)
	}

	out, err := dns.UpsertDNSRecord(ctx, zone.ID, rec.Name, rec.Type, rec.Content)
	if err != nil {
		return err
	}
	printDone("dns record %s %s -> %s", out.Type, out.Name, out.Content)
	return nil
}
