package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultSubmitTimeout = 10 * time.Second
	defaultRetryBackoff  = 500 * time.Millisecond
	maxRetryBackoff      = 30 * time.Second
)

// OrderOptions - параметры отправки заказов поставщику
type OrderOptions struct {
	// SubmitTimeout ограничивает одну попытку отправки независимо от запроса покупателя
	SubmitTimeout time.Duration
	// SubmitRetries - число повторов, когда запрос не дошел до поставщика
	SubmitRetries int
	RetryBackoff  time.Duration
}

// OrderService реализует domain.OrderService и domain.OrderAdminService
type OrderService struct {
	orderRepo domain.OrderRepository
	catalog   domain.CatalogService
	provider  domain.ProviderClient
	opts      OrderOptions
	logger    *zap.Logger

	// polls объединяет одновременные опросы статуса одного заказа
	polls singleflight.Group
	// wait выдерживает паузу между повторами отправки
	wait func(ctx context.Context, d time.Duration) error
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	catalog domain.CatalogService,
	provider domain.ProviderClient,
	opts OrderOptions,
	logger *zap.Logger,
) *OrderService {
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = defaultSubmitTimeout
	}
	if opts.SubmitRetries < 0 {
		opts.SubmitRetries = 0
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = defaultRetryBackoff
	}

	return &OrderService{
		orderRepo: orderRepo,
		catalog:   catalog,
		provider:  provider,
		opts:      opts,
		logger:    logger,
		wait:      sleep,
	}
}

// PlaceOrder оформляет заказ: резервирует средства, отправляет заказ поставщику
// и списывает резерв после подтверждения. Повторный вызов с тем же идентификатором
// возвращает сохраненный заказ и не отправляет его снова.
//
// Для заказа, ожидающего подтверждения, и для отказа поставщика возвращаются
// и результат, и ошибка (ErrPendingConfirmation или *ProviderRejectedError).
func (s *OrderService) PlaceOrder(ctx context.Context, accountID int64, req domain.PlaceOrderRequest) (*domain.PlaceOrderResult, error) {
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: empty order id", domain.ErrInvalidInput)
	}

	existing, err := s.orderRepo.GetOrder(ctx, req.OrderID)
	switch {
	case err == nil:
		return s.replay(accountID, existing)
	case !errors.Is(err, domain.ErrOrderNotFound):
		return nil, fmt.Errorf("order service: failed to check order %q: %w", req.OrderID, err)
	}

	catalog := s.catalog.Catalog()
	svc, ok := catalog.Lookup(req.ServiceID)
	if !ok {
		s.logger.Warn("Order for unknown service", zap.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownService, req.ServiceID)
	}

	if err := svc.ValidateOrder(req.Link, req.Quantity); err != nil {
		return nil, err
	}

	price := catalog.Quote(svc, req.Quantity)
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: quantity %d is too small to price", domain.ErrInvalidInput, req.Quantity)
	}

	reserved, err := s.orderRepo.ReserveOrder(ctx, &domain.Order{
		ID:          req.OrderID,
		AccountID:   accountID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Link:        req.Link,
		Quantity:    req.Quantity,
		Price:       price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateOrderID):
			// Параллельный запрос с тем же идентификатором успел раньше
			existing, getErr := s.orderRepo.GetOrder(ctx, req.OrderID)
			if getErr != nil {
				return nil, fmt.Errorf("order service: failed to get order %q: %w", req.OrderID, getErr)
			}
			return s.replay(accountID, existing)
		case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrAccountNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to reserve order %q: %w", req.OrderID, err)
	}

	s.logger.Info("Order reserved",
		zap.String("order_id", reserved.ID),
		zap.Int64("account_id", accountID),
		zap.String("price", reserved.Price.StringFixed(2)),
	)

	order, err := s.dispatch(ctx, reserved)
	return &domain.PlaceOrderResult{Order: order}, err
}

func (s *OrderService) replay(accountID int64, order *domain.Order) (*domain.PlaceOrderResult, error) {
	if order.AccountID != accountID {
		return nil, domain.ErrOrderOwnedByAnother
	}
	return &domain.PlaceOrderResult{Order: order, Replayed: true}, outcome(order)
}

// outcome восстанавливает ошибку, с которой завершилось оформление заказа
func outcome(order *domain.Order) error {
	switch {
	case order.Status == domain.OrderStatusPendingPayment:
		return domain.ErrPendingConfirmation
	case order.Status == domain.OrderStatusCancelled:
		return domain.ErrOrderCancelled
	case order.Status == domain.OrderStatusFailed &&
		order.SubmitState == domain.SubmitStateRejected &&
		order.UpstreamRef == nil:
		return &domain.ProviderRejectedError{Reason: order.FailureReason}
	default:
		return nil
	}
}

// dispatch отправляет зарезервированный заказ поставщику.
// Отправка не прерывается отменой запроса покупателя.
func (s *OrderService) dispatch(callerCtx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx := context.WithoutCancel(callerCtx)
	logger := s.logger.With(zap.String("order_id", order.ID))

	req := domain.SubmitRequest{
		ServiceID: order.ServiceID,
		Link:      order.Link,
		Quantity:  order.Quantity,
		Token:     order.ID,
	}

	for attempt := 0; ; attempt++ {
		// Состояние DISPATCHED фиксируется до отправки: после сбоя сверка узнает,
		// что запрос мог дойти до поставщика
		ok, err := s.orderRepo.SetSubmitState(ctx, order.ID, domain.SubmitStateQueued, domain.SubmitStateDispatched)
		if err != nil {
			return order, fmt.Errorf("order service: failed to mark order %q dispatched: %w", order.ID, err)
		}
		if !ok {
			// Заказ отменен или уже отправляется в другом месте
			current, err := s.orderRepo.GetOrder(ctx, order.ID)
			if err != nil {
				return order, fmt.Errorf("order service: failed to get order %q: %w", order.ID, err)
			}
			return current, outcome(current)
		}

		ref, err := s.submit(ctx, req)
		if err == nil {
			return s.confirm(ctx, order, ref)
		}

		var rejected *domain.ProviderRejectedError
		switch {
		case errors.As(err, &rejected):
			failed, releaseErr := s.orderRepo.ReleaseOrder(ctx, order.ID, domain.OrderStatusFailed, rejected.Reason)
			if releaseErr != nil {
				return order, fmt.Errorf("order service: failed to release rejected order %q: %w", order.ID, releaseErr)
			}
			logger.Info("Order rejected by provider", zap.String("reason", rejected.Reason))
			return failed, rejected

		case errors.Is(err, domain.ErrProviderUnreachable):
			// Запрос не дошел до поставщика, заказ снова можно отправлять
			if _, stateErr := s.orderRepo.SetSubmitState(ctx, order.ID, domain.SubmitStateDispatched, domain.SubmitStateQueued); stateErr != nil {
				return order, fmt.Errorf("order service: failed to requeue order %q: %w", order.ID, stateErr)
			}
			order.SubmitState = domain.SubmitStateQueued

			if attempt >= s.opts.SubmitRetries {
				logger.Warn("Provider unreachable, order queued for reconciliation", zap.Error(err))
				return order, fmt.Errorf("%w: %w", domain.ErrPendingConfirmation, err)
			}

			wait := s.backoff(attempt, err)
			logger.Info("Provider unreachable, retrying",
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
			// Заказ уже в QUEUED: при отмене вызывающего его отправит сверка
			if waitErr := s.wait(callerCtx, wait); waitErr != nil {
				logger.Info("Retry abandoned, order queued for reconciliation", zap.Error(waitErr))
				return order, fmt.Errorf("%w: %w", domain.ErrPendingConfirmation, err)
			}

		default:
			order.SubmitState = domain.SubmitStateDispatched
			logger.Warn("Provider outcome unknown, order left for reconciliation", zap.Error(err))
			return order, fmt.Errorf("%w: %w", domain.ErrPendingConfirmation, err)
		}
	}
}

func (s *OrderService) submit(ctx context.Context, req domain.SubmitRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.SubmitTimeout)
	defer cancel()

	return s.provider.Submit(ctx, req)
}

// sleep ждет d или отмены ctx
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff возвращает паузу перед повтором: экспоненциальную или из Retry-After
func (s *OrderService) backoff(attempt int, err error) time.Duration {
	wait := s.opts.RetryBackoff << attempt
	if wait <= 0 || wait > maxRetryBackoff {
		wait = maxRetryBackoff
	}

	var rateLimitErr *domain.RateLimitError
	if errors.As(err, &rateLimitErr) && rateLimitErr.RetryAfter > wait {
		wait = min(rateLimitErr.RetryAfter, maxRetryBackoff)
	}

	return wait
}

func (s *OrderService) confirm(ctx context.Context, order *domain.Order, ref string) (*domain.Order, error) {
	confirmed, err := s.orderRepo.ConfirmOrder(ctx, order.ID, ref)
	if err != nil {
		// Поставщик принял заказ, но подтверждение не сохранено: заказ остается
		// DISPATCHED и попадет в сверку, ссылка нужна администратору
		s.logger.Error("Failed to confirm accepted order",
			zap.String("order_id", order.ID),
			zap.String("upstream_ref", ref),
			zap.Error(err),
		)
		order.SubmitState = domain.SubmitStateDispatched
		return order, fmt.Errorf("%w: order service: failed to confirm order %q: %w", domain.ErrPendingConfirmation, order.ID, err)
	}

	s.logger.Info("Order accepted by provider",
		zap.String("order_id", confirmed.ID),
		zap.String("upstream_ref", ref),
	)
	return confirmed, nil
}

// GetOrder получает заказ аккаунта. С refresh=true заказ в обработке
// сверяется со статусом поставщика; ошибка опроса не скрывает сохраненный заказ.
func (s *OrderService) GetOrder(ctx context.Context, accountID int64, orderID string, refresh bool) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}

	if !refresh || order.Status != domain.OrderStatusProcessing || order.UpstreamRef == nil {
		return order, nil
	}

	updated, err := s.poll(ctx, order)
	if err != nil {
		s.logger.Warn("Failed to refresh order status",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return order, nil
	}

	return updated, nil
}

func (s *OrderService) getOwnedOrder(ctx context.Context, accountID int64, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %q: %w", orderID, err)
	}

	// Чужой заказ неотличим от несуществующего
	if order.AccountID != accountID {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

// poll запрашивает статус у поставщика и применяет его к заказу
func (s *OrderService) poll(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	v, err, _ := s.polls.Do(order.ID, func() (interface{}, error) {
		status, err := s.provider.Status(ctx, *order.UpstreamRef)
		if err != nil {
			return nil, fmt.Errorf("order service: failed to poll order %q: %w", order.ID, err)
		}

		update := domain.ProviderUpdate{
			Status:     domain.MapProviderStatus(status.Status),
			StartCount: status.StartCount,
			Remains:    status.Remains,
		}
		if update.Status == domain.OrderStatusFailed {
			update.Reason = "provider reported " + status.Status
		}
		if status.Status == domain.ProviderStatusPartial {
			update.Partial = true
			update.Reason = "partial delivery"
		}

		updated, err := s.orderRepo.ApplyProviderUpdate(context.WithoutCancel(ctx), order.ID, update)
		if err != nil {
			return nil, fmt.Errorf("order service: failed to apply status to order %q: %w", order.ID, err)
		}

		if updated.Status != order.Status {
			s.logger.Info("Order status updated",
				zap.String("order_id", order.ID),
				zap.String("provider_status", status.Status),
				zap.String("status", string(updated.Status)),
			)
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	// Результат разделяется между ожидающими, отдаем каждому копию
	updated := *v.(*domain.Order)
	return &updated, nil
}

// ListOrders получает все заказы аккаунта
func (s *OrderService) ListOrders(ctx context.Context, accountID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, domain.OrderFilter{AccountID: &accountID})
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders for account %d: %w", accountID, err)
	}

	return orders, nil
}

// CancelOrder отменяет заказ, который еще не отправлен поставщику
func (s *OrderService) CancelOrder(ctx context.Context, accountID int64, orderID string) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.OrderStatusCancelled:
		return order, nil
	case domain.OrderStatusPendingPayment:
	default:
		return nil, domain.ErrOrderNotCancellable
	}

	// Отмена возможна, только пока запрос не ушел к поставщику
	ok, err := s.orderRepo.SetSubmitState(ctx, orderID, domain.SubmitStateQueued, domain.SubmitStateRejected)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to withdraw order %q: %w", orderID, err)
	}
	if !ok {
		return nil, domain.ErrOrderNotCancellable
	}

	cancelled, err := s.orderRepo.ReleaseOrder(ctx, orderID, domain.OrderStatusCancelled, "cancelled by buyer")
	if err != nil {
		return nil, fmt.Errorf("order service: failed to cancel order %q: %w", orderID, err)
	}

	s.logger.Info("Order cancelled by buyer", zap.String("order_id", orderID))
	return cancelled, nil
}

// ListAllOrders возвращает заказы всех аккаунтов по фильтру
func (s *OrderService) ListAllOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}

	return orders, nil
}

// ConfirmOrder вручную подтверждает заказ ссылкой поставщика и списывает резерв
func (s *OrderService) ConfirmOrder(ctx context.Context, orderID, upstreamRef string) (*domain.Order, error) {
	upstreamRef = strings.TrimSpace(upstreamRef)
	if upstreamRef == "" {
		return nil, fmt.Errorf("%w: empty upstream reference", domain.ErrInvalidInput)
	}

	order, err := s.orderRepo.ConfirmOrder(ctx, orderID, upstreamRef)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) ||
			errors.Is(err, domain.ErrUpstreamRefConflict) ||
			errors.Is(err, domain.ErrInvalidTransition) ||
			errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to confirm order %q: %w", orderID, err)
	}

	s.logger.Info("Order confirmed manually",
		zap.String("order_id", orderID),
		zap.String("upstream_ref", upstreamRef),
	)
	return order, nil
}

// AbandonOrder отменяет неподтвержденный заказ и снимает резерв
func (s *OrderService) AbandonOrder(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	if strings.TrimSpace(reason) == "" {
		reason = "abandoned by administrator"
	}

	order, err := s.orderRepo.ReleaseOrder(ctx, orderID, domain.OrderStatusCancelled, reason)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, domain.ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to abandon order %q: %w", orderID, err)
	}

	s.logger.Info("Order abandoned", zap.String("order_id", orderID), zap.String("reason", reason))
	return order, nil
}

// ReconcileOrder сверяет заказ немедленно, не дожидаясь фоновой сверки
func (s *OrderService) ReconcileOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %q: %w", orderID, err)
	}

	if err := s.Reconcile(ctx, order); err != nil && !errors.Is(err, domain.ErrPendingConfirmation) {
		return nil, err
	}

	order, err = s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get order %q: %w", orderID, err)
	}

	return order, nil
}

// Reconcile доводит заказ до известного состояния:
// QUEUED отправляется снова, DISPATCHED ищется у поставщика по идентификатору
// или помечается для ручной сверки, PROCESSING опрашивается.
func (s *OrderService) Reconcile(ctx context.Context, order *domain.Order) error {
	switch order.Status {
	case domain.OrderStatusProcessing:
		if order.UpstreamRef == nil {
			return nil
		}
		_, err := s.poll(ctx, order)
		return err
	case domain.OrderStatusPendingPayment:
	default:
		return nil
	}

	switch order.SubmitState {
	case domain.SubmitStateQueued:
		return s.redispatch(ctx, order)

	case domain.SubmitStateDispatched:
		return s.resolveDispatched(ctx, order)

	case domain.SubmitStateRejected:
		// Отмена прервалась между отзывом заказа и снятием резерва
		_, err := s.orderRepo.ReleaseOrder(ctx, order.ID, domain.OrderStatusCancelled, "cancelled by buyer")
		if err != nil {
			return fmt.Errorf("order service: failed to release withdrawn order %q: %w", order.ID, err)
		}
		return nil

	default:
		return s.flag(ctx, order, "inconsistent submission state "+string(order.SubmitState))
	}
}

func (s *OrderService) resolveDispatched(ctx context.Context, order *domain.Order) error {
	lookup, ok := s.provider.(domain.TokenLookup)
	if !ok {
		return s.flag(ctx, order, "provider outcome unknown")
	}

	ref, found, err := lookup.FindByToken(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("order service: failed to look up order %q: %w", order.ID, err)
	}

	if found {
		_, err := s.confirm(context.WithoutCancel(ctx), order, ref)
		return err
	}

	// Поставщик заказ не получал, отправка безопасна
	requeued, err := s.orderRepo.SetSubmitState(ctx, order.ID, domain.SubmitStateDispatched, domain.SubmitStateQueued)
	if err != nil {
		return fmt.Errorf("order service: failed to requeue order %q: %w", order.ID, err)
	}
	if !requeued {
		return nil
	}

	order.SubmitState = domain.SubmitStateQueued
	return s.redispatch(ctx, order)
}

func (s *OrderService) redispatch(ctx context.Context, order *domain.Order) error {
	_, err := s.dispatch(ctx, order)
	if errors.Is(err, domain.ErrProviderRejected) || errors.Is(err, domain.ErrOrderCancelled) {
		// Итог уже сохранен в заказе
		return nil
	}
	return err
}

func (s *OrderService) flag(ctx context.Context, order *domain.Order, reason string) error {
	if err := s.orderRepo.FlagForReview(ctx, order.ID, reason); err != nil {
		return fmt.Errorf("order service: failed to flag order %q: %w", order.ID, err)
	}

	s.logger.Warn("Order needs manual reconciliation",
		zap.String("order_id", order.ID),
		zap.String("reason", reason),
	)
	return nil
}
