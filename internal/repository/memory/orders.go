package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
)

func copyOrder(o *domain.Order) *domain.Order {
	copied := *o
	return &copied
}

// CreateOrder сохраняет заказ без проверки баланса
func (s *Store) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertOrder(order)
}

// GetOrder получает заказ по идентификатору
func (s *Store) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return copyOrder(order), nil
}

// ListOrders возвращает заказы по фильтру, новые первыми
func (s *Store) ListOrders(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []*domain.Order
	for _, o := range s.orders {
		if filter.AccountID != nil && o.AccountID != *filter.AccountID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, o.Status) {
			continue
		}
		if filter.NeedsReview != nil && o.NeedsReview != *filter.NeedsReview {
			continue
		}
		orders = append(orders, copyOrder(o))
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if filter.Limit > 0 && uint64(len(orders)) > filter.Limit {
		orders = orders[:filter.Limit]
	}

	return orders, nil
}

// SetStatus меняет статус заказа
func (s *Store) SetStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status == status {
		return nil
	}
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, status)
	}

	order.Status = status
	order.UpdatedAt = s.now()
	return nil
}

// SetUpstreamRef записывает ссылку поставщика один раз
func (s *Store) SetUpstreamRef(_ context.Context, orderID, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.UpstreamRef != nil {
		if *order.UpstreamRef == ref {
			return nil
		}
		return domain.ErrUpstreamRefConflict
	}
	if owner, taken := s.orderByRef[ref]; taken && owner != orderID {
		return domain.ErrUpstreamRefConflict
	}

	order.UpstreamRef = &ref
	order.UpdatedAt = s.now()
	s.orderByRef[ref] = orderID
	return nil
}

// SetSubmitState меняет состояние отправки заказа в PENDING_PAYMENT, если текущее равно from
func (s *Store) SetSubmitState(_ context.Context, orderID string, from, to domain.SubmitState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok || order.Status != domain.OrderStatusPendingPayment || order.SubmitState != from {
		return false, nil
	}

	order.SubmitState = to
	order.UpdatedAt = s.now()
	return true, nil
}

// ReserveOrder создает заказ, если доступный остаток покрывает его цену
func (s *Store) ReserveOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available, err := s.available(order.AccountID)
	if err != nil {
		return nil, err
	}
	if available.LessThan(order.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	reserved := *order
	reserved.Status = domain.OrderStatusPendingPayment
	reserved.SubmitState = domain.SubmitStateQueued
	return s.insertOrder(&reserved)
}

// ConfirmOrder списывает цену заказа и переводит его в PROCESSING
func (s *Store) ConfirmOrder(_ context.Context, orderID, upstreamRef string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if order.UpstreamRef != nil {
		if *order.UpstreamRef == upstreamRef {
			return copyOrder(order), nil
		}
		return nil, domain.ErrUpstreamRefConflict
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, domain.OrderStatusProcessing)
	}
	if owner, taken := s.orderByRef[upstreamRef]; taken && owner != orderID {
		return nil, domain.ErrUpstreamRefConflict
	}

	if order.Price.IsPositive() {
		_, err := s.applyBalanceChange(order.AccountID, order.Price.Neg(), domain.EntryMeta{
			Type:    domain.LedgerEntryOrderDebit,
			OrderID: &order.ID,
			Note:    order.ServiceName,
		})
		if err != nil {
			return nil, err
		}
	}

	order.Status = domain.OrderStatusProcessing
	order.SubmitState = domain.SubmitStateAcknowledged
	order.UpstreamRef = &upstreamRef
	order.NeedsReview = false
	order.UpdatedAt = s.now()
	s.orderByRef[upstreamRef] = orderID

	return copyOrder(order), nil
}

// ReleaseOrder снимает резерв без движения по счету
func (s *Store) ReleaseOrder(_ context.Context, orderID string, status domain.OrderStatus, reason string) (*domain.Order, error) {
	if status != domain.OrderStatusFailed && status != domain.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: release to %s", domain.ErrInvalidTransition, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status == status {
		return copyOrder(order), nil
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, status)
	}

	order.Status = status
	order.SubmitState = domain.SubmitStateRejected
	order.FailureReason = reason
	order.NeedsReview = false
	order.UpdatedAt = s.now()

	return copyOrder(order), nil
}

// ApplyProviderUpdate применяет статус поставщика к заказу в PROCESSING
func (s *Store) ApplyProviderUpdate(_ context.Context, orderID string, update domain.ProviderUpdate) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusProcessing || !order.Status.CanTransitionTo(update.Status) {
		return copyOrder(order), nil
	}

	if refund := order.RefundFor(update); refund.IsPositive() {
		_, err := s.applyBalanceChange(order.AccountID, refund, domain.EntryMeta{
			Type:    domain.LedgerEntryRefund,
			OrderID: &order.ID,
			Note:    update.Reason,
		})
		if err != nil {
			return nil, err
		}
	}
	if update.Status == domain.OrderStatusFailed {
		order.FailureReason = update.Reason
	}

	order.Status = update.Status
	if update.StartCount != nil {
		v := *update.StartCount
		order.StartCount = &v
	}
	if update.Remains != nil {
		v := *update.Remains
		order.Remains = &v
	}
	order.UpdatedAt = s.now()

	return copyOrder(order), nil
}

// FlagForReview помечает неподтвержденный заказ для ручной сверки
func (s *Store) FlagForReview(_ context.Context, orderID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return fmt.Errorf("%w: order is %s", domain.ErrInvalidTransition, order.Status)
	}

	order.NeedsReview = true
	order.FailureReason = reason
	order.UpdatedAt = s.now()
	return nil
}

// ListReconcilable возвращает заказы для фоновой сверки, самые давние первыми
func (s *Store) ListReconcilable(_ context.Context, olderThan time.Time, limit uint64) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []*domain.Order
	for _, o := range s.orders {
		if !o.UpdatedAt.Before(olderThan) {
			continue
		}
		pending := o.Status == domain.OrderStatusPendingPayment && !o.NeedsReview
		if pending || o.Status == domain.OrderStatusProcessing {
			orders = append(orders, copyOrder(o))
		}
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].UpdatedAt.Before(orders[j].UpdatedAt) })

	if limit > 0 && uint64(len(orders)) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

func (s *Store) insertOrder(order *domain.Order) (*domain.Order, error) {
	if _, ok := s.orders[order.ID]; ok {
		return nil, domain.ErrDuplicateOrderID
	}
	if _, ok := s.accounts[order.AccountID]; !ok {
		return nil, domain.ErrAccountNotFound
	}

	stored := copyOrder(order)
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.orders[stored.ID] = stored
	if stored.UpstreamRef != nil {
		s.orderByRef[*stored.UpstreamRef] = stored.ID
	}

	return copyOrder(stored), nil
}

func containsStatus(statuses []domain.OrderStatus, status domain.OrderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
