// Package payment talks to the NOWPayments-style crypto payment provider:
// payment creation, status polling and IPN signature verification.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/monopolygame/monopolybot/pkg/clients"
)

// Provider payment statuses.
const (
	StatusWaiting       = "waiting"
	StatusConfirming    = "confirming"
	StatusConfirmed     = "confirmed"
	StatusSending       = "sending"
	StatusPartiallyPaid = "partially_paid"
	StatusFinished      = "finished"
	StatusFailed        = "failed"
	StatusRefunded      = "refunded"
	StatusExpired       = "expired"
)

type CreatePaymentRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	PayCurrency      string  `json:"pay_currency"`
	OrderID          string  `json:"order_id"`
	OrderDescription string  `json:"order_description,omitempty"`
	IPNCallbackURL   string  `json:"ipn_callback_url,omitempty"`
}

// Payment is the provider's payment representation, shared by the create
// response, the status response and the IPN payload.
type Payment struct {
	PaymentID     string  `json:"payment_id"`
	PaymentStatus string  `json:"payment_status"`
	OrderID       string  `json:"order_id"`
	PriceAmount   float64 `json:"price_amount"`
	PriceCurrency string  `json:"price_currency"`
	PayAddress    string  `json:"pay_address"`
	PayAmount     float64 `json:"pay_amount"`
	PayCurrency   string  `json:"pay_currency"`
	ActuallyPaid  float64 `json:"actually_paid"`
	PaymentURL    string  `json:"payment_url,omitempty"`
}

type Client struct {
	baseURL   string
	apiKey    string
	ipnSecret string
	client    clients.HTTPClientI
}

func NewClient(baseURL, apiKey, ipnSecret string, httpClient clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		ipnSecret: ipnSecret,
		client:    httpClient,
	}
}

func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}
	return &payment, nil
}

func (c *Client) PaymentStatus(ctx context.Context, paymentID string) (*Payment, error) {
	headers := http.Header{}
	headers.Set("x-api-key", c.apiKey)

	statusCode, respBody, _, err := c.client.Get(c.baseURL+"/payment/"+paymentID, headers)
	if err != nil {
		return nil, fmt.Errorf("payment status request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("payment provider returned status %d", statusCode)
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment status: %w", err)
	}
	return &payment, nil
}
