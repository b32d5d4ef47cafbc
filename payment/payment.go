// Package payment wraps the card-charge provider behind a single call.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Charge is the provider's confirmation of a captured payment. Amount is
// echoed back by the provider and is the authoritative charged value.
type Charge struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// Charger executes exactly one charge attempt. Implementations must not
// retry internally: an ambiguous failure retried blind can double-bill.
type Charger interface {
	Charge(ctx context.Context, amount int, currency, token string) (Charge, error)
}

// chargeTimeout bounds a single provider round trip. A timeout is a failed
// charge from the caller's point of view even if the provider later settles.
const chargeTimeout = 15 * time.Second

// StripeClient charges cards through the Stripe charges API.
type StripeClient struct {
	Secret string
	APIURL string
	HTTP   *http.Client
}

func NewStripeClient(secret string) *StripeClient {
	return &StripeClient{
		Secret: secret,
		APIURL: "https://api.stripe.com/v1/charges",
		HTTP:   &http.Client{Timeout: chargeTimeout},
	}
}

type stripeChargeResponse struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Error    *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *StripeClient) Charge(ctx context.Context, amount int, currency, token string) (Charge, error) {
	if s.Secret == "" {
		return Charge{}, fmt.Errorf("stripe configuration missing")
	}

	form := url.Values{}
	form.Set("amount", strconv.Itoa(amount))
	form.Set("currency", strings.ToLower(currency))
	form.Set("source", token)

	ctx, cancel := context.WithTimeout(ctx, chargeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Charge{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.Secret)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return Charge{}, fmt.Errorf("failed to reach payment provider: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var out stripeChargeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Charge{}, fmt.Errorf("failed to parse provider response: %w", err)
	}
	if out.Error != nil {
		return Charge{}, fmt.Errorf("provider error: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return Charge{}, fmt.Errorf("provider API error (%d): %s", resp.StatusCode, string(body))
	}
	if out.Status != "succeeded" {
		return Charge{}, fmt.Errorf("charge not captured: status %q", out.Status)
	}

	return Charge{
		ID:       out.ID,
		Amount:   out.Amount,
		Currency: strings.ToUpper(out.Currency),
		Status:   out.Status,
	}, nil
}
