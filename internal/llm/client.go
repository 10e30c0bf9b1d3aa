package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Client wraps a Generator with the failure policy the pipeline relies on:
// a per-attempt timeout, classification of backend errors into the
// package's sentinel kinds, and at most one retry on transient failures.
type Client struct {
	gen     Generator
	timeout time.Duration
	backoff time.Duration
}

func NewClient(gen Generator, timeout, backoff time.Duration) *Client {
	return &Client{gen: gen, timeout: timeout, backoff: backoff}
}

// GenerateText runs one generation. Transient failures (unavailable,
// timeout) are retried exactly once after a bounded backoff; auth failures
// and empty responses are surfaced immediately. Whitespace-only backend
// output counts as empty: the backend is untrusted and must not be assumed
// to produce anything in particular.
func (c *Client) GenerateText(ctx context.Context, prompt string, params Params) (string, error) {
	text, err := c.attempt(ctx, prompt, params)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, ErrUnavailable) && !errors.Is(err, ErrTimeout) {
		return "", err
	}

	select {
	case <-ctx.Done():
		// Caller gave up while we were backing off.
		return "", fmt.Errorf("%w: cancelled during retry backoff", ErrTimeout)
	case <-time.After(c.backoff):
	}

	return c.attempt(ctx, prompt, params)
}

func (c *Client) attempt(ctx context.Context, prompt string, params Params) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.gen.Generate(attemptCtx, prompt, params)
	if err != nil {
		return "", classify(err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// classify buckets an arbitrary backend error into one of the sentinel
// kinds. Backends report credential and availability problems as free-form
// messages, so string matching is the best signal available; anything
// unrecognized stays unclassified and is never retried.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "api key", "unauthorized", "unauthenticated", "permission denied", "401", "403"):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case containsAny(msg, "rate limit", "resource exhausted", "unavailable", "connection refused", "no such host", "429", "502", "503"):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case containsAny(msg, "deadline exceeded", "timeout", "timed out"):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return fmt.Errorf("generation failed: %w", err)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
