// Package captcha verifies that a submission token was produced by a
// human, by calling the hCaptcha siteverify endpoint.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nichebay/domain-offer/pkg/config"
)

// VerifyURL is the hCaptcha siteverify endpoint.
const VerifyURL = "https://hcaptcha.com/siteverify"

// Verifier answers whether a challenge token belongs to a human. Errors
// mean the verification service was unavailable; callers treat them the
// same as a negative answer.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// Error kinds, distinguished for logging only. Callers never branch on
// them.
const (
	KindTransport = "transport"
	KindProtocol  = "protocol"
)

// VerifyError describes a failed verification round trip.
type VerifyError struct {
	Kind string
	Err  error
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("captcha verify (%s): %v", e.Kind, e.Err)
}

func (e *VerifyError) Unwrap() error { return e.Err }

// Client calls the verification provider with the configured secret and a
// connect timeout. One outbound POST per Verify call, no retries.
type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

// NewClient builds a Client from the captcha configuration. The connect
// phase of each call is bounded by cfg.TimeoutSeconds.
func NewClient(cfg config.Captcha) *Client {
	dialer := &net.Dialer{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
	return &Client{
		secret:    cfg.SecretKey,
		verifyURL: VerifyURL,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

type verifyResponse struct {
	Success bool `json:"success"`
}

// Verify posts the form-encoded {secret, response} pair to the provider
// and returns its success verdict.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	body := url.Values{
		"secret":   {c.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(body.Encode()))
	if err != nil {
		return false, &VerifyError{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &VerifyError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &VerifyError{Kind: KindProtocol, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return false, &VerifyError{Kind: KindProtocol, Err: err}
	}
	return vr.Success, nil
}
