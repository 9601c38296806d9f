package util

import (
	"context"
	"fmt"
	"net/http"
)

// UserAgent is sent on every board request. Some boards return stripped-down
// markup (or a 403) to obvious bots.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// Get performs a rate-limited GET and fails on non-2xx statuses. The caller
// owns the response body on success.
func Get(ctx context.Context, hc *http.Client, limiter *HostLimiter, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	if limiter != nil {
		if err := limiter.WaitURL(ctx, url); err != nil {
			return nil, err
		}
	}

	res, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}
	return res, nil
}
