// Package payment holds the client for the external payment provider. The
// surface is intentionally narrow: this core only creates payment intents;
// confirmation arrives through the booking payment-success operation.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/styledecor/booking-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

var ErrProviderUnavailable = errors.New("payment provider unavailable")

// Client calls the payment provider's HTTP API with the process-wide secret
// key loaded at startup.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: defaultTimeout},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// CreateIntent registers a pending payment with the provider and returns the
// client secret the caller completes the payment with. Provider or transport
// failures are surfaced as ErrProviderUnavailable; callers treat them as
// transient and may retry the whole request.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (*ports.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	return &ports.PaymentIntent{
		ID:           out.ID,
		ClientSecret: out.ClientSecret,
		Amount:       out.Amount,
		Currency:     out.Currency,
	}, nil
}
