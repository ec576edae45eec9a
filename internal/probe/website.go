package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/hamed0406/sharewatch/internal/domain"
)

const (
	// DefaultTimeout bounds a single website probe attempt.
	DefaultTimeout = 10 * time.Second

	userAgent = "sharewatch-monitor/1.0"
)

// WebsiteChecker probes website targets with a bounded GET request.
// Any status below 500 counts as reachable; the probe checks that the
// endpoint answers, not that the application behind it is correct.
type WebsiteChecker struct {
	Client *http.Client
}

func NewWebsiteChecker(timeout time.Duration) *WebsiteChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &WebsiteChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

func (c *WebsiteChecker) Check(ctx context.Context, target domain.WebsiteTarget) domain.WebsiteResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return c.failure(target, start, 0, fmt.Sprintf("invalid URL: %v", err))
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return c.failure(target, start, 0, classifyTransportError(err))
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Milliseconds()
	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.WebsiteResult{
			Name:               target.DisplayName(),
			Status:             domain.StatusDown,
			StatusCode:         resp.StatusCode,
			ResponseTimeMillis: elapsed,
			Message:            fmt.Sprintf("HTTP %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Timestamp:          time.Now().UTC(),
		}
	}

	return domain.WebsiteResult{
		Name:               target.DisplayName(),
		Status:             domain.StatusUp,
		StatusCode:         resp.StatusCode,
		ResponseTimeMillis: elapsed,
		Message:            fmt.Sprintf("OK - %d", resp.StatusCode),
		Timestamp:          time.Now().UTC(),
	}
}

func (c *WebsiteChecker) failure(target domain.WebsiteTarget, start time.Time, code int, msg string) domain.WebsiteResult {
	return domain.WebsiteResult{
		Name:               target.DisplayName(),
		Status:             domain.StatusDown,
		StatusCode:         code,
		ResponseTimeMillis: time.Since(start).Milliseconds(),
		Message:            msg,
		Timestamp:          time.Now().UTC(),
	}
}

// classifyTransportError maps the common failure modes to stable messages
// so the snapshot reads the same regardless of Go version error text.
func classifyTransportError(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("DNS lookup failed for %s", dnsErr.Name)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "connection refused"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout waiting for response"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout waiting for response"
	}
	return err.Error()
}
