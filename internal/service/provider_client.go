package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxResponseSize ограничивает чтение ответа поставщика
const maxResponseSize = 4 << 20

// ProviderOptions - параметры клиента поставщика
type ProviderOptions struct {
	BaseURL     string
	APIKey      string
	PollTimeout time.Duration
	PollRetries int
	RetryWait   time.Duration
}

// SMMProviderClient реализует domain.ProviderClient для SMM API v2:
// POST формы с полями key и action, ответ в JSON.
type SMMProviderClient struct {
	baseURL string
	apiKey  string

	// submitClient делает ровно одну попытку: повтор add создаст второй заказ
	submitClient *http.Client
	// pollClient повторяет безопасные запросы status и services
	pollClient *retryablehttp.Client
	logger     *zap.Logger
}

// NewSMMProviderClient создает клиент поставщика
func NewSMMProviderClient(opts ProviderOptions, logger *zap.Logger) *SMMProviderClient {
	poll := retryablehttp.NewClient()
	poll.HTTPClient.Timeout = opts.PollTimeout
	poll.RetryMax = opts.PollRetries
	poll.RetryWaitMin = opts.RetryWait
	poll.RetryWaitMax = opts.RetryWait * 10
	poll.Logger = newRetryLogger(logger)
	poll.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// 429 отдаем вызывающему как RateLimitError
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	poll.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &SMMProviderClient{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		apiKey:       opts.APIKey,
		submitClient: &http.Client{},
		pollClient:   poll,
		logger:       logger,
	}
}

type addResponse struct {
	Order json.RawMessage `json:"order"`
	Error string          `json:"error"`
}

type statusResponse struct {
	Status     string          `json:"status"`
	Charge     decimal.Decimal `json:"charge"`
	StartCount flexInt         `json:"start_count"`
	Remains    flexInt         `json:"remains"`
	Error      string          `json:"error"`
}

type serviceResponse struct {
	Service flexString      `json:"service"`
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`
	Min     flexInt         `json:"min"`
	Max     flexInt         `json:"max"`
}

// Submit отправляет заказ поставщику одной попыткой.
// Ошибки соединения возвращаются как ErrProviderUnreachable, таймауты как ErrProviderTimeout,
// 5xx и нечитаемые ответы как ErrProviderAmbiguous, отказ как *domain.ProviderRejectedError.
func (c *SMMProviderClient) Submit(ctx context.Context, req domain.SubmitRequest) (string, error) {
	form := url.Values{
		"key":      {c.apiKey},
		"action":   {"add"},
		"service":  {req.ServiceID},
		"link":     {req.Link},
		"quantity": {strconv.Itoa(req.Quantity)},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("provider client: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.submitClient.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		// Заказ не принят, повтор безопасен
		return "", fmt.Errorf("%w: %w", domain.ErrProviderUnreachable, domain.NewRateLimitError(retryAfter(resp)))
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("%w: status %d", domain.ErrProviderAmbiguous, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", classifyTransportError(err)
	}

	var result addResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", &domain.ProviderRejectedError{Reason: http.StatusText(resp.StatusCode)}
		}
		return "", fmt.Errorf("%w: failed to decode add response: %w", domain.ErrProviderAmbiguous, err)
	}

	if result.Error != "" {
		return "", &domain.ProviderRejectedError{Reason: result.Error}
	}

	ref := strings.Trim(string(bytes.TrimSpace(result.Order)), `"`)
	if ref == "" || ref == "null" {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", &domain.ProviderRejectedError{Reason: http.StatusText(resp.StatusCode)}
		}
		return "", fmt.Errorf("%w: response without order id", domain.ErrProviderAmbiguous)
	}

	return ref, nil
}

// Status запрашивает статус заказа у поставщика. Запрос повторяется при сбоях.
func (c *SMMProviderClient) Status(ctx context.Context, ref string) (*domain.ProviderStatus, error) {
	var result statusResponse
	if err := c.poll(ctx, url.Values{"action": {"status"}, "order": {ref}}, &result); err != nil {
		return nil, err
	}

	if result.Error != "" {
		return nil, &domain.ProviderRejectedError{Reason: result.Error}
	}
	if result.Status == "" {
		return nil, fmt.Errorf("provider client: empty status for order %s", ref)
	}

	return &domain.ProviderStatus{
		Status:     result.Status,
		Charge:     result.Charge,
		StartCount: result.StartCount.ptr(),
		Remains:    result.Remains.ptr(),
	}, nil
}

// Services возвращает прайс-лист поставщика
func (c *SMMProviderClient) Services(ctx context.Context) ([]domain.ProviderService, error) {
	var result []serviceResponse
	if err := c.poll(ctx, url.Values{"action": {"services"}}, &result); err != nil {
		return nil, err
	}

	services := make([]domain.ProviderService, 0, len(result))
	for _, s := range result {
		services = append(services, domain.ProviderService{
			ID:   string(s.Service),
			Name: s.Name,
			Rate: s.Rate,
			Min:  s.Min.value(),
			Max:  s.Max.value(),
		})
	}

	return services, nil
}

func (c *SMMProviderClient) poll(ctx context.Context, form url.Values, dst any) error {
	form.Set("key", c.apiKey)
	action := form.Get("action")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("provider client: failed to create %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.pollClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider client: %s request failed: %w", action, classifyTransportError(err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.NewRateLimitError(retryAfter(resp))
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("provider client: %s: %w: status %d", action, domain.ErrProviderUnreachable, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(dst); err != nil {
		return fmt.Errorf("provider client: failed to decode %s response: %w", action, err)
	}

	return nil
}

// flexInt принимает число как в виде 123, так и в виде "123"
type flexInt struct {
	v   int
	set bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	f.v, f.set = int(n), true
	return nil
}

func (f flexInt) ptr() *int {
	if !f.set {
		return nil
	}
	v := f.v
	return &v
}

func (f flexInt) value() int {
	return f.v
}

// flexString принимает идентификатор как строкой, так и числом
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid identifier %s: %w", data, err)
	}
	*f = flexString(n.String())
	return nil
}

// retryLogger передает сообщения retryablehttp в zap
type retryLogger struct {
	logger *zap.SugaredLogger
}

func newRetryLogger(logger *zap.Logger) retryablehttp.LeveledLogger {
	return &retryLogger{logger: logger.Named("provider").Sugar()}
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
