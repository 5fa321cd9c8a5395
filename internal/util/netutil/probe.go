// Package netutil provides HTTP reachability checks for deployed applications.
package netutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/kubelift/internal/util/retry"
)

// DefaultProbeTimeout bounds a single probe request.
const DefaultProbeTimeout = 10 * time.Second

var probeClient = &http.Client{
	Timeout: DefaultProbeTimeout,
	// Redirects are reported, not followed.
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// StatusCode issues a GET to url and returns the response status code.
// Connection failures are returned as errors.
func StatusCode(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("invalid probe URL %q: %w", url, err)
	}

	resp, err := probeClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to probe %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// WaitForStatus probes url until it answers with want. Connection errors
// and other status codes are retried according to opts.
func WaitForStatus(ctx context.Context, url string, want int, opts ...retry.Option) error {
	if _, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil); err != nil {
		return fmt.Errorf("invalid probe URL %q: %w", url, err)
	}

	logger := log.FromContext(ctx).WithValues("url", url, "want", want)

	return retry.Do(ctx, func(ctx context.Context, attempt int) error {
		code, err := StatusCode(ctx, url)
		if err != nil {
			logger.V(1).Info("Probe failed", "attempt", attempt, "error", err.Error())
			return err
		}
		if code != want {
			logger.V(1).Info("Unexpected status", "attempt", attempt, "status", code)
			return fmt.Errorf("%s answered %d, want %d", url, code, want)
		}
		return nil
	}, opts...)
}
