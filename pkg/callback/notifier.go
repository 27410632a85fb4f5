package callback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/Behyna/cc5mock/pkg/httpclient"
)

const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// Notifier performs the one outbound GET that tells a merchant about a 3DS result.
type Notifier interface {
	Notify(ctx context.Context, target string) Result
}

// Result is the outcome of a callback. Err is nil when the merchant answered,
// whatever the status code.
type Result struct {
	StatusCode int
	Duration   time.Duration
	Skipped    bool
	Err        error
}

func (r Result) OK() bool {
	return r.Err == nil && !r.Skipped
}

func (r Result) Outcome() string {
	switch {
	case r.Skipped:
		return OutcomeSkipped
	case r.Err != nil:
		return OutcomeFailed
	default:
		return OutcomeDelivered
	}
}

type notifier struct {
	client httpclient.HTTPClient
	config Config
}

func NewNotifier(cfg Config, client httpclient.HTTPClient) Notifier {
	return &notifier{client: client, config: cfg}
}

func (n *notifier) Notify(ctx context.Context, target string) Result {
	if !n.config.Enable {
		return Result{Skipped: true}
	}

	u, err := url.Parse(target)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Result{Err: fmt.Errorf("%w: %q", ErrInvalidURL, target)}
	}

	if n.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := n.client.Get(ctx, target, nil)
	duration := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Duration: duration, Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
		}

		return Result{Duration: duration, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	return Result{StatusCode: resp.StatusCode, Duration: duration}
}
