package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_emailer.go -package mocks github.com/Crimone/Scoparia/logic IEmailSender

const (
	defaultEmailApiUrl = "https://api.brevo.com/v3/smtp/email"
	emailTimeoutSec    = 30
	emailAttempts      = 3
)

type IEmailSender interface {
	Send(ctx context.Context, toAddress, subject, htmlBody string) error
}

type emailSender struct {
	cfg        *shared.Config
	logger     shared.ILogger
	apiUrl     string
	httpClient *http.Client
}

func NewEmailSender(cfg *shared.Config, logger shared.ILogger) IEmailSender {
	apiUrl := cfg.Email.ApiUrl
	if apiUrl == "" {
		apiUrl = defaultEmailApiUrl
	}
	return &emailSender{
		cfg:        cfg,
		logger:     logger,
		apiUrl:     apiUrl,
		httpClient: &http.Client{Timeout: emailTimeoutSec * time.Second},
	}
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailPayload struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HtmlContent string         `json:"htmlContent"`
}

func (e *emailSender) Send(ctx context.Context, toAddress, subject, htmlBody string) error {

	payload := emailPayload{
		Sender:      emailAddress{Email: e.cfg.Email.FromAddress, Name: e.cfg.Email.FromName},
		To:          []emailAddress{{Email: toAddress}},
		Subject:     subject,
		HtmlContent: htmlBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize email payload: %w", err)
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiUrl, bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("api-key", e.cfg.Secrets.EmailApiKey)

			resp, err := e.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("email request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return nil
			}
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			err = fmt.Errorf("email API returned status %d: %s", resp.StatusCode, respBody)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return err
			}
			return retry.Unrecoverable(err)
		},
		retry.Attempts(emailAttempts),
		retry.Delay(time.Second),
		retry.MaxDelay(2*time.Minute),
		retry.MaxJitter(10*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			e.logger.Debugf("Retrying email send (attempt %d): %v", n+1, err)
		}),
	)
}
