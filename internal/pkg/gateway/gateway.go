package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"

	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/errors"
)

// Order is the gateway's order object, returned to the client verbatim.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Payment is the gateway's view of a payment attempt.
type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
}

const (
	PaymentStatusCaptured   = "captured"
	PaymentStatusAuthorized = "authorized"
)

type gatewayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Gateway is the payment-processor surface the reconciliation flow depends
// on. One implementation talks to the real processor, tests mock it.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (Order, error)
	FetchPayment(ctx context.Context, paymentID string) (Payment, error)
	CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (Payment, error)
	VerifySignature(orderID string, paymentID string, signature string) bool
	Configured() bool
}

type client struct {
	baseUrl    string
	keyID      string
	keySecret  string
	httpClient *circuit.HTTPClient
}

// New builds the gateway client once at process start; every handler that
// needs the gateway receives this instance.
func New(cfg *config.GatewayConfig, httpClient *circuit.HTTPClient) Gateway {
	return &client{
		baseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		httpClient: httpClient,
	}
}

func (c *client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

func (c *client) CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (Order, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", body, &order); err != nil {
		return Order{}, err
	}

	return order, nil
}

func (c *client) FetchPayment(ctx context.Context, paymentID string) (Payment, error) {
	var payment Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &payment); err != nil {
		return Payment{}, err
	}

	return payment, nil
}

func (c *client) CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (Payment, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	}

	var payment Payment
	if err := c.do(ctx, http.MethodPost, "/v1/payments/"+paymentID+"/capture", body, &payment); err != nil {
		return Payment{}, err
	}

	return payment, nil
}

// VerifySignature recomputes HMAC-SHA256(secret, orderID|paymentID) and
// compares it to the signature the client supplied.
func (c *client) VerifySignature(orderID string, paymentID string, signature string) bool {
	if signature == "" || c.keySecret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalServerError("error marshal gateway request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return errors.InternalServerError("error build gateway request")
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gwErr gatewayError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&gwErr); decodeErr == nil && gwErr.Error.Description != "" {
			return errors.BadRequest(gwErr.Error.Description)
		}
		return errors.BadRequest(fmt.Sprintf("gateway responded with status %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.InternalServerError("error decode gateway response")
		}
	}

	return nil
}

// IsAlreadyCaptured reports whether a capture failure means the payment was
// captured before we got there, which counts as a verified outcome.
func IsAlreadyCaptured(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "already been captured")
}
