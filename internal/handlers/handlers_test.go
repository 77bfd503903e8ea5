package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/engagement-storefront/internal/domain"
	domainmocks "github.com/avc/engagement-storefront/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// authorized добавляет в запрос аккаунт, как это делает AuthMiddleware
func authorized(req *http.Request, accountID int64) *http.Request {
	ctx := context.WithValue(req.Context(), AccountIDKey, accountID)
	return req.WithContext(ctx)
}

// withURLParams добавляет параметры маршрута chi
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "buyer@example.com", "secret1").Return("token", nil).Once()

		body := `{"email":"buyer@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))

		var resp authResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "token", resp.Token)
	})

	t.Run("Account exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "buyer@example.com", "secret1").Return("", domain.ErrAccountExists).Once()

		body := `{"email":"buyer@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid email", func(t *testing.T) {
		body := `{"email":"not-an-email","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Weak password", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "buyer@example.com", "123").
			Return("", fmt.Errorf("%w: password is too short", domain.ErrInvalidInput)).Once()

		body := `{"email":"buyer@example.com","password":"123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp errorResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Error, "too short")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"email":}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Internal error is not exposed", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "buyer@example.com", "secret1").
			Return("", errors.New("auth service: failed to create account: connection refused")).Once()

		body := `{"email":"buyer@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "buyer@example.com", "secret1").Return("token", nil).Once()

		body := `{"email":"buyer@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "buyer@example.com", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		body := `{"email":"buyer@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing password", func(t *testing.T) {
		body := `{"email":"buyer@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrdersHandler_PlaceOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	placeReq := domain.PlaceOrderRequest{
		OrderID:   "ord-1",
		ServiceID: "1977",
		Link:      "https://facebook.com/mypage",
		Quantity:  1000,
	}
	body := `{"order_id":"ord-1","service_id":"1977","link":"https://facebook.com/mypage","quantity":1000}`
	order := &domain.Order{
		ID:          "ord-1",
		ServiceID:   "1977",
		Price:       decimal.RequireFromString("2.50"),
		Status:      domain.OrderStatusProcessing,
		SubmitState: domain.SubmitStateAcknowledged,
	}

	place := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.PlaceOrder(w, authorized(req, 1))
		return w
	}

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(&domain.PlaceOrderResult{Order: order}, nil).Once()

		w := place(body)
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp orderResponse
		decodeBody(t, w, &resp)
		require.NotNil(t, resp.Order)
		assert.Equal(t, domain.OrderStatusProcessing, resp.Order.Status)
		assert.False(t, resp.Replayed)
	})

	t.Run("Replay", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(&domain.PlaceOrderResult{Order: order, Replayed: true}, nil).Once()

		w := place(body)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp orderResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.Replayed)
	})

	t.Run("Order id from Idempotency-Key header", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(&domain.PlaceOrderResult{Order: order}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders",
			bytes.NewBufferString(`{"service_id":"1977","link":"https://facebook.com/mypage","quantity":1000}`))
		req.Header.Set("Idempotency-Key", "ord-1")
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, authorized(req, 1))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Pending confirmation", func(t *testing.T) {
		pending := *order
		pending.Status = domain.OrderStatusPendingPayment
		pending.SubmitState = domain.SubmitStateDispatched

		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(&domain.PlaceOrderResult{Order: &pending},
				fmt.Errorf("%w: %w", domain.ErrPendingConfirmation, domain.ErrProviderTimeout)).Once()

		w := place(body)
		assert.Equal(t, http.StatusAccepted, w.Code)

		var resp orderResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, pendingMessage, resp.Message)
		assert.Empty(t, resp.Error)
		assert.NotContains(t, w.Body.String(), "timeout")
	})

	t.Run("Cancelled while placing", func(t *testing.T) {
		cancelled := *order
		cancelled.Status = domain.OrderStatusCancelled
		cancelled.SubmitState = domain.SubmitStateRejected

		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(&domain.PlaceOrderResult{Order: &cancelled}, domain.ErrOrderCancelled).Once()

		w := place(body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrOrderCancelled.Error())
	})

	t.Run("Provider rejected", func(t *testing.T) {
		failed := *order
		failed.Status = domain.OrderStatusFailed
		failed.SubmitState = domain.SubmitStateRejected

		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(&domain.PlaceOrderResult{Order: &failed}, &domain.ProviderRejectedError{Reason: "Incorrect link"}).Once()

		w := place(body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp orderResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Error, "Incorrect link")
		assert.Equal(t, domain.OrderStatusFailed, resp.Order.Status)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).Return(nil, domain.ErrInsufficientFunds).Once()

		w := place(body)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Order owned by another account", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).Return(nil, domain.ErrOrderOwnedByAnother).Once()

		w := place(body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid link for service", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(nil, fmt.Errorf("%w: quantity 1000 outside 100..500", domain.ErrInvalidInput)).Once()

		w := place(body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp errorResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Error, "outside 100..500")
	})

	t.Run("Unknown service", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), placeReq).
			Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownService, "1977")).Once()

		w := place(body)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Validation failed", func(t *testing.T) {
		w := place(`{"order_id":"ord-1","service_id":"1977","link":"not a url","quantity":0}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp errorResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Error, "Link")
		assert.Contains(t, resp.Error, "Quantity")
	})

	t.Run("Missing order id", func(t *testing.T) {
		w := place(`{"service_id":"1977","link":"https://facebook.com/mypage","quantity":1000}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Unauthorized - no account ID in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("Refresh", func(t *testing.T) {
		order := &domain.Order{ID: "ord-1", Status: domain.OrderStatusCompleted}
		mockService.EXPECT().GetOrder(mock.Anything, int64(1), "ord-1", true).Return(order, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ord-1?refresh=true", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.GetOrder(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Order
		decodeBody(t, w, &result)
		assert.Equal(t, domain.OrderStatusCompleted, result.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().GetOrder(mock.Anything, int64(1), "missing", false).Return(nil, domain.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"orderID": "missing"})
		w := httptest.NewRecorder()

		handler.GetOrder(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrdersHandler_ListOrders(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		orders := []*domain.Order{{ID: "ord-1"}, {ID: "ord-2"}}
		mockService.EXPECT().ListOrders(mock.Anything, int64(1)).Return(orders, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, authorized(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var result []domain.Order
		decodeBody(t, w, &result)
		assert.Len(t, result, 2)
	})

	t.Run("No orders", func(t *testing.T) {
		mockService.EXPECT().ListOrders(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, authorized(req, 1))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Database error", func(t *testing.T) {
		mockService.EXPECT().ListOrders(mock.Anything, int64(1)).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, authorized(req, 1))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestOrdersHandler_CancelOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		cancelled := &domain.Order{ID: "ord-1", Status: domain.OrderStatusCancelled}
		mockService.EXPECT().CancelOrder(mock.Anything, int64(1), "ord-1").Return(cancelled, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ord-1/cancel", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.CancelOrder(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Already processing", func(t *testing.T) {
		mockService.EXPECT().CancelOrder(mock.Anything, int64(1), "ord-2").Return(nil, domain.ErrOrderNotCancellable).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ord-2/cancel", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"orderID": "ord-2"})
		w := httptest.NewRecorder()

		handler.CancelOrder(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	mockService := domainmocks.NewBalanceServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBalanceHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		balance := &domain.Balance{
			Current:   decimal.RequireFromString("10.00"),
			Held:      decimal.RequireFromString("2.50"),
			Available: decimal.RequireFromString("7.50"),
		}
		mockService.EXPECT().GetBalance(mock.Anything, int64(1)).Return(balance, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, authorized(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Balance
		decodeBody(t, w, &result)
		assert.True(t, balance.Current.Equal(result.Current))
		assert.True(t, balance.Available.Equal(result.Available))
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBalanceHandler_GetLedger(t *testing.T) {
	mockService := domainmocks.NewBalanceServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBalanceHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		entries := []*domain.LedgerEntry{
			{ID: 1, Amount: decimal.NewFromInt(10), Type: domain.LedgerEntryDeposit},
			{ID: 2, Amount: decimal.RequireFromString("-2.50"), Type: domain.LedgerEntryOrderDebit},
		}
		mockService.EXPECT().ListEntries(mock.Anything, int64(1)).Return(entries, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/ledger", nil)
		w := httptest.NewRecorder()

		handler.GetLedger(w, authorized(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var result []domain.LedgerEntry
		decodeBody(t, w, &result)
		require.Len(t, result, 2)
		assert.Equal(t, domain.LedgerEntryOrderDebit, result[1].Type)
	})

	t.Run("Empty", func(t *testing.T) {
		mockService.EXPECT().ListEntries(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/ledger", nil)
		w := httptest.NewRecorder()

		handler.GetLedger(w, authorized(req, 1))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestDepositsHandler(t *testing.T) {
	mockService := domainmocks.NewDepositServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewDepositsHandler(mockService, logger)

	ten := decimal.RequireFromString("10.00")
	amountArg := mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(ten) })

	t.Run("Create PayPal deposit", func(t *testing.T) {
		deposit := &domain.Deposit{ID: 1, Amount: ten, Method: domain.DepositMethodPayPal, ExternalRef: "PAY-1"}
		mockService.EXPECT().CreatePayPalDeposit(mock.Anything, int64(1), amountArg).Return(deposit, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deposits/paypal", bytes.NewBufferString(`{"amount":"10.00"}`))
		w := httptest.NewRecorder()

		handler.CreatePayPal(w, authorized(req, 1))
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.Deposit
		decodeBody(t, w, &result)
		assert.Equal(t, "PAY-1", result.ExternalRef)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		mockService.EXPECT().CreatePayPalDeposit(mock.Anything, int64(1), mock.Anything).
			Return(nil, fmt.Errorf("%w: -1", domain.ErrInvalidAmount)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deposits/paypal", bytes.NewBufferString(`{"amount":-1}`))
		w := httptest.NewRecorder()

		handler.CreatePayPal(w, authorized(req, 1))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Capture not completed", func(t *testing.T) {
		mockService.EXPECT().CapturePayPalDeposit(mock.Anything, int64(1), "PAY-1").
			Return(nil, domain.ErrPaymentNotCompleted).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deposits/paypal/PAY-1/capture", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"ref": "PAY-1"})
		w := httptest.NewRecorder()

		handler.CapturePayPal(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Gateway unavailable", func(t *testing.T) {
		mockService.EXPECT().CapturePayPalDeposit(mock.Anything, int64(1), "PAY-1").
			Return(nil, domain.ErrGatewayUnavailable).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deposits/paypal/PAY-1/capture", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"ref": "PAY-1"})
		w := httptest.NewRecorder()

		handler.CapturePayPal(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Create GCash deposit", func(t *testing.T) {
		instructions := &domain.GCashInstructions{
			Deposit:         &domain.Deposit{ID: 2, Amount: ten, Method: domain.DepositMethodGCash, ExternalRef: "GC-0123456789"},
			RecipientName:   "JE***L N.",
			RecipientNumber: "09678361036",
			AmountPHP:       decimal.NewFromInt(600),
		}
		mockService.EXPECT().CreateGCashDeposit(mock.Anything, int64(1), amountArg).Return(instructions, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deposits/gcash", bytes.NewBufferString(`{"amount":10}`))
		w := httptest.NewRecorder()

		handler.CreateGCash(w, authorized(req, 1))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "09678361036")
	})

	t.Run("QR code", func(t *testing.T) {
		mockService.EXPECT().GCashQRCode(mock.Anything, int64(1), int64(2)).Return([]byte("\x89PNG"), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/deposits/2/qr", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"depositID": "2"})
		w := httptest.NewRecorder()

		handler.QRCode(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", w.Body.String())
	})

	t.Run("QR code with bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/deposits/abc/qr", nil)
		req = withURLParams(authorized(req, 1), map[string]string{"depositID": "abc"})
		w := httptest.NewRecorder()

		handler.QRCode(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List deposits", func(t *testing.T) {
		mockService.EXPECT().ListDeposits(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/deposits", nil)
		w := httptest.NewRecorder()

		handler.ListDeposits(w, authorized(req, 1))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAdminHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	newHandler := func(t *testing.T) (*AdminHandler, *domainmocks.OrderAdminServiceMock, *domainmocks.BalanceServiceMock, *domainmocks.DepositAdminServiceMock, *domainmocks.CatalogServiceMock) {
		orders := domainmocks.NewOrderAdminServiceMock(t)
		balances := domainmocks.NewBalanceServiceMock(t)
		deposits := domainmocks.NewDepositAdminServiceMock(t)
		catalog := domainmocks.NewCatalogServiceMock(t)
		return NewAdminHandler(orders, balances, deposits, catalog, logger), orders, balances, deposits, catalog
	}

	t.Run("List orders needing review", func(t *testing.T) {
		handler, orders, _, _, _ := newHandler(t)

		needsReview := true
		filter := domain.OrderFilter{
			Statuses:    []domain.OrderStatus{domain.OrderStatusPendingPayment},
			NeedsReview: &needsReview,
			Limit:       20,
		}
		orders.EXPECT().ListAllOrders(mock.Anything, filter).Return([]*domain.Order{{ID: "ord-1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?status=pending_payment&needs_review=true&limit=20", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("List orders with bad filter", func(t *testing.T) {
		handler, _, _, _, _ := newHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?needs_review=maybe", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Confirm order", func(t *testing.T) {
		handler, orders, _, _, _ := newHandler(t)

		ref := "P123"
		confirmed := &domain.Order{ID: "ord-1", Status: domain.OrderStatusProcessing, UpstreamRef: &ref}
		orders.EXPECT().ConfirmOrder(mock.Anything, "ord-1", "P123").Return(confirmed, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ord-1/confirm", bytes.NewBufferString(`{"upstream_ref":"P123"}`))
		req = withURLParams(req, map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.ConfirmOrder(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Confirm with conflicting reference", func(t *testing.T) {
		handler, orders, _, _, _ := newHandler(t)

		orders.EXPECT().ConfirmOrder(mock.Anything, "ord-1", "P999").Return(nil, domain.ErrUpstreamRefConflict).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ord-1/confirm", bytes.NewBufferString(`{"upstream_ref":"P999"}`))
		req = withURLParams(req, map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.ConfirmOrder(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Confirm without reference", func(t *testing.T) {
		handler, _, _, _, _ := newHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ord-1/confirm", bytes.NewBufferString(`{}`))
		req = withURLParams(req, map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.ConfirmOrder(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Abandon order without body", func(t *testing.T) {
		handler, orders, _, _, _ := newHandler(t)

		cancelled := &domain.Order{ID: "ord-1", Status: domain.OrderStatusCancelled}
		orders.EXPECT().AbandonOrder(mock.Anything, "ord-1", "").Return(cancelled, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ord-1/abandon", nil)
		req = withURLParams(req, map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.AbandonOrder(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Reconcile order", func(t *testing.T) {
		handler, orders, _, _, _ := newHandler(t)

		orders.EXPECT().ReconcileOrder(mock.Anything, "ord-1").Return(&domain.Order{ID: "ord-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/ord-1/reconcile", nil)
		req = withURLParams(req, map[string]string{"orderID": "ord-1"})
		w := httptest.NewRecorder()

		handler.ReconcileOrder(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Debit account", func(t *testing.T) {
		handler, _, balances, _, _ := newHandler(t)

		minusFive := mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(-5)) })
		balances.EXPECT().Adjust(mock.Anything, int64(7), minusFive, "chargeback").
			Return(decimal.NewFromInt(15), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/accounts/7/debit",
			bytes.NewBufferString(`{"amount":"5","note":"chargeback"}`))
		req = withURLParams(req, map[string]string{"accountID": "7"})
		w := httptest.NewRecorder()

		handler.DebitAccount(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp adjustResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, int64(7), resp.AccountID)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(15)))
	})

	t.Run("Debit more than balance", func(t *testing.T) {
		handler, _, balances, _, _ := newHandler(t)

		balances.EXPECT().Adjust(mock.Anything, int64(7), mock.Anything, "").
			Return(decimal.Zero, domain.ErrInsufficientFunds).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/accounts/7/debit", bytes.NewBufferString(`{"amount":"500"}`))
		req = withURLParams(req, map[string]string{"accountID": "7"})
		w := httptest.NewRecorder()

		handler.DebitAccount(w, req)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Credit non-positive amount", func(t *testing.T) {
		handler, _, _, _, _ := newHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/accounts/7/credit", bytes.NewBufferString(`{"amount":"-5"}`))
		req = withURLParams(req, map[string]string{"accountID": "7"})
		w := httptest.NewRecorder()

		handler.CreditAccount(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Approve finalized deposit", func(t *testing.T) {
		handler, _, _, deposits, _ := newHandler(t)

		deposits.EXPECT().ApproveDeposit(mock.Anything, int64(3)).Return(nil, domain.ErrDepositFinalized).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/deposits/3/approve", nil)
		req = withURLParams(req, map[string]string{"depositID": "3"})
		w := httptest.NewRecorder()

		handler.ApproveDeposit(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Reject deposit", func(t *testing.T) {
		handler, _, _, deposits, _ := newHandler(t)

		rejected := &domain.Deposit{ID: 3, Status: domain.DepositStatusRejected, Note: "no transfer"}
		deposits.EXPECT().RejectDeposit(mock.Anything, int64(3), "no transfer").Return(rejected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/deposits/3/reject", bytes.NewBufferString(`{"reason":"no transfer"}`))
		req = withURLParams(req, map[string]string{"depositID": "3"})
		w := httptest.NewRecorder()

		handler.RejectDeposit(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("List pending deposits", func(t *testing.T) {
		handler, _, _, deposits, _ := newHandler(t)

		deposits.EXPECT().ListAllDeposits(mock.Anything, domain.DepositFilter{Status: domain.DepositStatusPending}).
			Return([]*domain.Deposit{{ID: 3}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/deposits?status=pending", nil)
		w := httptest.NewRecorder()

		handler.ListDeposits(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Refresh catalog", func(t *testing.T) {
		handler, _, _, _, catalog := newHandler(t)

		catalog.EXPECT().Refresh(mock.Anything).Return(nil).Once()
		catalog.EXPECT().Catalog().Return(&domain.Catalog{
			Services: []domain.EngagementService{{ID: "1977", Name: "Page likes", Rate: decimal.RequireFromString("3.00"), Min: 100, Max: 100000}},
		}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/catalog/refresh", nil)
		w := httptest.NewRecorder()

		handler.RefreshCatalog(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"service_id":"1977"`)
	})

	t.Run("Refresh catalog fails", func(t *testing.T) {
		handler, _, _, _, catalog := newHandler(t)

		catalog.EXPECT().Refresh(mock.Anything).Return(errors.New("provider down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/catalog/refresh", nil)
		w := httptest.NewRecorder()

		handler.RefreshCatalog(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestCatalogHandler_ListServices(t *testing.T) {
	mockService := domainmocks.NewCatalogServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCatalogHandler(mockService, logger)

	mockService.EXPECT().Catalog().Return(&domain.Catalog{
		Services: []domain.EngagementService{
			{ID: "1977", Name: "Facebook Page Likes", Rate: decimal.RequireFromString("2.50"), Min: 100, Max: 100000},
		},
		Discounts: []domain.DiscountTier{{MinQuantity: 5000, Rate: decimal.RequireFromString("0.2")}},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()

	handler.ListServices(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp catalogResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Facebook Page Likes", resp.Services[0].Name)
	assert.Equal(t, 5000, resp.Discounts[0].MinQuantity)
}

func TestHealthHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Healthy", func(t *testing.T) {
		handler := NewHealthHandler(logger, HealthCheck{Name: "database", Ping: func(context.Context) error { return nil }})

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["database"])
	})

	t.Run("Degraded", func(t *testing.T) {
		handler := NewHealthHandler(logger,
			HealthCheck{Name: "database", Ping: func(context.Context) error { return nil }},
			HealthCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }},
		)

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "unavailable", resp.Checks["redis"])

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("In-memory storage is always ready", func(t *testing.T) {
		handler := NewHealthHandler(logger)

		w := httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})
}
