package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// PayPalOptions - параметры клиента PayPal
type PayPalOptions struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	Retries      int
	RetryWait    time.Duration
}

// PayPalClient реализует domain.PaymentGateway поверх PayPal Orders API v2.
// Все запросы несут PayPal-Request-Id, поэтому их можно повторять.
type PayPalClient struct {
	baseURL string
	client  *retryablehttp.Client
	logger  *zap.Logger
}

// NewPayPalClient создает клиент PayPal с авторизацией client credentials
func NewPayPalClient(opts PayPalOptions, logger *zap.Logger) *PayPalClient {
	baseURL := strings.TrimRight(opts.BaseURL, "/")

	credentials := clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// Токен запрашивается тем же таймаутом, что и основные вызовы
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: opts.Timeout})
	httpClient := credentials.Client(tokenCtx)
	httpClient.Timeout = opts.Timeout

	client := retryablehttp.NewClient()
	client.HTTPClient = httpClient
	client.RetryMax = opts.Retries
	if opts.RetryWait > 0 {
		client.RetryWaitMin = opts.RetryWait
		client.RetryWaitMax = opts.RetryWait * 10
	}
	client.Logger = newRetryLogger(logger.Named("paypal"))
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &PayPalClient{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	ReferenceID string        `json:"reference_id,omitempty"`
	Amount      *paypalAmount `json:"amount,omitempty"`
	Payments    *struct {
		Captures []struct {
			Status string       `json:"status"`
			Amount paypalAmount `json:"amount"`
		} `json:"captures"`
	} `json:"payments,omitempty"`
}

type paypalOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
}

type paypalOrderResponse struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
}

type paypalErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details []struct {
		Issue string `json:"issue"`
	} `json:"details"`
}

// CreateOrder создает заказ PayPal на сумму и возвращает его идентификатор
func (c *PayPalClient) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, requestID string) (string, error) {
	body := paypalOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			ReferenceID: requestID,
			Amount: &paypalAmount{
				CurrencyCode: currency,
				Value:        amount.StringFixed(2),
			},
		}},
	}

	var result paypalOrderResponse
	if err := c.do(ctx, "/v2/checkout/orders", requestID, body, &result); err != nil {
		return "", fmt.Errorf("paypal client: failed to create order: %w", err)
	}

	if result.ID == "" {
		return "", fmt.Errorf("paypal client: create order response without id")
	}

	return result.ID, nil
}

// CaptureOrder списывает одобренный покупателем заказ PayPal
func (c *PayPalClient) CaptureOrder(ctx context.Context, orderRef string) (*domain.GatewayCapture, error) {
	var result paypalOrderResponse
	path := "/v2/checkout/orders/" + url.PathEscape(orderRef) + "/capture"
	if err := c.do(ctx, path, "capture-"+orderRef, struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("paypal client: failed to capture order %s: %w", orderRef, err)
	}

	capture := &domain.GatewayCapture{Status: result.Status, Amount: decimal.Zero}
	for _, unit := range result.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, captured := range unit.Payments.Captures {
			value, err := decimal.NewFromString(captured.Amount.Value)
			if err != nil {
				return nil, fmt.Errorf("paypal client: invalid captured amount %q: %w", captured.Amount.Value, err)
			}
			capture.Amount = capture.Amount.Add(value)
			capture.Currency = captured.Amount.CurrencyCode
		}
	}

	return capture, nil
}

func (c *PayPalClient) do(ctx context.Context, path, requestID string, body, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	req.Header.Set("PayPal-Request-Id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", domain.ErrGatewayUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		// Покупатель не одобрил платеж или заказ уже списан
		return fmt.Errorf("%w: %s", domain.ErrPaymentNotCompleted, describePayPalError(data))
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("status %d: %s", resp.StatusCode, describePayPalError(data))
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func describePayPalError(data []byte) string {
	var apiErr paypalErrorResponse
	if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Name == "" {
		return strings.TrimSpace(string(data))
	}
	if len(apiErr.Details) > 0 && apiErr.Details[0].Issue != "" {
		return apiErr.Name + ": " + apiErr.Details[0].Issue
	}
	return apiErr.Name + ": " + apiErr.Message
}
