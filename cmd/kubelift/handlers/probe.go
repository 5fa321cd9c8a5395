package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/imamik/kubelift/internal/util/netutil"
	"github.com/imamik/kubelift/internal/util/retry"
)

// Probe prints the HTTP status code of url. With attempts > 1 it retries
// until the status equals expect.
func Probe(ctx context.Context, url string, expect, attempts int) error {
	if attempts > 1 {
		if expect == 0 {
			return errors.New("retrying needs an expected status code")
		}
		if err := netutil.WaitForStatus(ctx, url, expect, retry.WithMaxAttempts(attempts)); err != nil {
			return err
		}
		printTitle(url)
		printField("status", strconv.Itoa(expect))
		return nil
	}

	code, err := netutil.StatusCode(ctx, url)
	if err != nil {
		return err
	}

	printTitle(url)
	printField("status", strconv.Itoa(code))
	if expect != 0 && code != expect {
		return fmt.Errorf("%s answered %d, want %d", url, code, expect)
	}
	return nil
}
