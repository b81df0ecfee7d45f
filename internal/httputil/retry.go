// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the protein service client.
package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/protein-info/internal/logging"
)

var logger = logging.Logger("httputil")

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// MaxRetryDelay caps both the computed backoff and a server Retry-After.
var MaxRetryDelay = 60 * time.Second

// DoWithRetry executes an HTTP request and retries only on HTTP 429 (Too Many
// Requests). Any other status, and every transport error, is returned after
// the first attempt.
//
// maxRetries is the number of additional attempts; 0 sends the request once.
// The wait before attempt n is the server's Retry-After (in seconds) when
// present, otherwise RetryBaseDelay doubled n times, capped at MaxRetryDelay.
// If the context is cancelled while waiting the function returns ctx.Err().
// After exhausting retries the last 429 response is returned so the caller
// can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		wait := retryDelay(resp.Header.Get("Retry-After"), attempt)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		logger.Info("rate limited, retrying",
			slog.String("url", req.URL.Redacted()),
			slog.Duration("wait", wait),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", maxRetries))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// retryDelay picks the wait before the next attempt.
func retryDelay(retryAfter string, attempt int) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && secs >= 0 {
		return min(time.Duration(secs)*time.Second, MaxRetryDelay)
	}
	backoff := RetryBaseDelay << attempt
	if backoff <= 0 || backoff > MaxRetryDelay {
		return MaxRetryDelay
	}
	return backoff
}
