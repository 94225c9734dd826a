package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_push.go -package mocks github.com/Crimone/Scoparia/logic IPushSender

const (
	pushTimeoutSec = 30
	pushAttempts   = 3
)

// IPushSender delivers a notification to one webhook endpoint. The
// endpoint's `format` query parameter picks the body markup; it is
// stripped from the URL before the request goes out.
type IPushSender interface {
	Send(ctx context.Context, endpoint, title, body string) error
	FormatFor(endpoint string) string
}

type pushSender struct {
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	httpClient *http.Client
}

func NewPushSender(logger shared.ILogger, userAgent shared.IUserAgent) IPushSender {
	return &pushSender{
		logger:     logger,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: pushTimeoutSec * time.Second},
	}
}

// FormatFor returns the markup format requested by the endpoint URL,
// defaulting to markdown.
func (p *pushSender) FormatFor(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "markdown"
	}
	switch f := parsed.Query().Get("format"); f {
	case "html", "markdown", "text", "qqpush":
		return f
	default:
		return "markdown"
	}
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (p *pushSender) Send(ctx context.Context, endpoint, title, body string) error {

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid push endpoint: %w", err)
	}
	query := parsed.Query()
	query.Del("format")
	parsed.RawQuery = query.Encode()

	payload, err := json.Marshal(pushPayload{Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("failed to serialize push payload: %w", err)
	}

	// Endpoint URLs carry per-user tokens; only the host ever gets logged
	host, err := shared.GetHostName(endpoint)
	if err != nil {
		host = "<unparseable>"
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, parsed.String(), bytes.NewReader(payload))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			p.userAgent.AddUserAgent(req)

			resp, err := p.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("push request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return nil
			}
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			err = fmt.Errorf("push endpoint returned status %d: %s", resp.StatusCode, respBody)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return err
			}
			return retry.Unrecoverable(err)
		},
		retry.Attempts(pushAttempts),
		retry.Delay(time.Second),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(5*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Debugf("Retrying push to %s (attempt %d): %v", host, n+1, err)
		}),
	)
}
