package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

var orderColumns = []string{
	"id", "account_id", "service_id", "service_name", "link", "quantity", "price",
	"status", "submit_state", "upstream_ref", "failure_reason", "needs_review",
	"start_count", "remains", "created_at", "updated_at",
}

const orderSelect = `SELECT id, account_id, service_id, service_name, link, quantity, price,
	status, submit_state, upstream_ref, failure_reason, needs_review,
	start_count, remains, created_at, updated_at
	FROM orders`

// CreateOrder сохраняет заказ без проверки баланса
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return insertOrder(ctx, r.db, order)
}

// GetOrder получает заказ по идентификатору
func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE id = $1`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %q: %w", orderID, err)
	}

	return order, nil
}

// ListOrders возвращает заказы по фильтру, новые первыми
func (r *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	query := psql.Select(orderColumns...).From("orders").OrderBy("created_at DESC")

	if filter.AccountID != nil {
		query = query.Where(sq.Eq{"account_id": *filter.AccountID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where(sq.Eq{"status": statuses})
	}
	if filter.NeedsReview != nil {
		query = query.Where(sq.Eq{"needs_review": *filter.NeedsReview})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return r.queryOrders(ctx, query)
}

// SetStatus меняет статус заказа. Повторная установка того же статуса ничего не делает.
func (r *OrderRepository) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for order %q: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return err
	}

	if order.Status == status {
		return nil
	}
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, status)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, orderID,
	); err != nil {
		return fmt.Errorf("repository: failed to update order %q status: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit order status: %w", err)
	}

	return nil
}

// SetUpstreamRef записывает ссылку поставщика один раз. Повтор с тем же значением ничего не делает.
func (r *OrderRepository) SetUpstreamRef(ctx context.Context, orderID, ref string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET upstream_ref = $1, updated_at = NOW()
		 WHERE id = $2 AND (upstream_ref IS NULL OR upstream_ref = $1)`,
		ref, orderID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUpstreamRefConflict
		}
		return fmt.Errorf("repository: failed to set upstream ref for order %q: %w", orderID, err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.GetOrder(ctx, orderID); err != nil {
			return err
		}
		return domain.ErrUpstreamRefConflict
	}

	return nil
}

// SetSubmitState меняет состояние отправки заказа в PENDING_PAYMENT, если текущее равно from
func (r *OrderRepository) SetSubmitState(ctx context.Context, orderID string, from, to domain.SubmitState) (bool, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET submit_state = $1, updated_at = NOW()
		 WHERE id = $2 AND submit_state = $3 AND status = $4`,
		to, orderID, from, domain.OrderStatusPendingPayment,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to set submit state for order %q: %w", orderID, err)
	}

	return result.RowsAffected() == 1, nil
}

// ReserveOrder создает заказ, если доступный остаток покрывает его цену.
// Баланс не меняется: резерв - это сумма цен заказов в PENDING_PAYMENT.
func (r *OrderRepository) ReserveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %q: %w", order.ID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	available, err := lockAvailable(ctx, tx, order.AccountID)
	if err != nil {
		return nil, err
	}

	if available.LessThan(order.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	order.Status = domain.OrderStatusPendingPayment
	order.SubmitState = domain.SubmitStateQueued
	created, err := insertOrder(ctx, tx, order)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order reservation: %w", err)
	}

	return created, nil
}

// ConfirmOrder списывает цену заказа, сохраняет ссылку поставщика и переводит заказ в PROCESSING
func (r *OrderRepository) ConfirmOrder(ctx context.Context, orderID, upstreamRef string) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %q: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UpstreamRef != nil {
		if *order.UpstreamRef == upstreamRef {
			return order, nil
		}
		return nil, domain.ErrUpstreamRefConflict
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, domain.OrderStatusProcessing)
	}

	// Блокировки всегда в порядке заказ -> аккаунт
	var balance decimal.Decimal
	if err := tx.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, order.AccountID,
	).Scan(&balance); err != nil {
		return nil, fmt.Errorf("repository: failed to lock account %d: %w", order.AccountID, err)
	}
	if balance.LessThan(order.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	if order.Price.IsPositive() {
		_, err = applyBalanceChange(ctx, tx, order.AccountID, order.Price.Neg(), domain.EntryMeta{
			Type:    domain.LedgerEntryOrderDebit,
			OrderID: &order.ID,
			Note:    order.ServiceName,
		})
		if err != nil {
			return nil, err
		}
	}

	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET status = $1, submit_state = $2, upstream_ref = $3, needs_review = FALSE, updated_at = NOW()
		 WHERE id = $4
		 RETURNING updated_at`,
		domain.OrderStatusProcessing, domain.SubmitStateAcknowledged, upstreamRef, orderID,
	).Scan(&order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUpstreamRefConflict
		}
		return nil, fmt.Errorf("repository: failed to confirm order %q: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order confirmation: %w", err)
	}

	order.Status = domain.OrderStatusProcessing
	order.SubmitState = domain.SubmitStateAcknowledged
	order.UpstreamRef = &upstreamRef
	order.NeedsReview = false

	return order, nil
}

// ReleaseOrder переводит заказ из PENDING_PAYMENT в FAILED или CANCELLED без движения по счету
func (r *OrderRepository) ReleaseOrder(ctx context.Context, orderID string, status domain.OrderStatus, reason string) (*domain.Order, error) {
	if status != domain.OrderStatusFailed && status != domain.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: release to %s", domain.ErrInvalidTransition, status)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %q: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, status)
	}

	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET status = $1, submit_state = $2, failure_reason = $3, needs_review = FALSE, updated_at = NOW()
		 WHERE id = $4
		 RETURNING updated_at`,
		status, domain.SubmitStateRejected, reason, orderID,
	).Scan(&order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to release order %q: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order release: %w", err)
	}

	order.Status = status
	order.SubmitState = domain.SubmitStateRejected
	order.FailureReason = reason
	order.NeedsReview = false

	return order, nil
}

// ApplyProviderUpdate применяет статус поставщика. Заказы не в PROCESSING не меняются.
func (r *OrderRepository) ApplyProviderUpdate(ctx context.Context, orderID string, update domain.ProviderUpdate) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %q: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusProcessing || !order.Status.CanTransitionTo(update.Status) {
		return order, nil
	}

	if refund := order.RefundFor(update); refund.IsPositive() {
		_, err = applyBalanceChange(ctx, tx, order.AccountID, refund, domain.EntryMeta{
			Type:    domain.LedgerEntryRefund,
			OrderID: &order.ID,
			Note:    update.Reason,
		})
		if err != nil {
			return nil, err
		}
	}

	reason := order.FailureReason
	if update.Status == domain.OrderStatusFailed {
		reason = update.Reason
	}

	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET status = $1, start_count = COALESCE($2, start_count), remains = COALESCE($3, remains),
		     failure_reason = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING start_count, remains, updated_at`,
		update.Status, update.StartCount, update.Remains, reason, orderID,
	).Scan(&order.StartCount, &order.Remains, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to apply provider status to order %q: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit provider status: %w", err)
	}

	order.Status = update.Status
	order.FailureReason = reason

	return order, nil
}

// FlagForReview помечает неподтвержденный заказ для ручной сверки
func (r *OrderRepository) FlagForReview(ctx context.Context, orderID, reason string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET needs_review = TRUE, failure_reason = $1, updated_at = NOW()
		 WHERE id = $2 AND status = $3`,
		reason, orderID, domain.OrderStatusPendingPayment,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to flag order %q: %w", orderID, err)
	}

	if result.RowsAffected() == 0 {
		order, err := r.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: order is %s", domain.ErrInvalidTransition, order.Status)
	}

	return nil
}

// ListReconcilable возвращает заказы для фоновой сверки: неподтвержденные без пометки
// и находящиеся в обработке, не менявшиеся с olderThan
func (r *OrderRepository) ListReconcilable(ctx context.Context, olderThan time.Time, limit uint64) ([]*domain.Order, error) {
	query := psql.Select(orderColumns...).
		From("orders").
		Where(sq.Lt{"updated_at": olderThan}).
		Where(sq.Or{
			sq.Eq{"status": string(domain.OrderStatusPendingPayment), "needs_review": false},
			sq.Eq{"status": string(domain.OrderStatusProcessing)},
		}).
		OrderBy("updated_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.queryOrders(ctx, query)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

func insertOrder(ctx context.Context, q DBTX, order *domain.Order) (*domain.Order, error) {
	created := *order
	err := q.QueryRow(ctx,
		`INSERT INTO orders (id, account_id, service_id, service_name, link, quantity, price, status, submit_state)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		order.ID, order.AccountID, order.ServiceID, order.ServiceName, order.Link, order.Quantity,
		order.Price, order.Status, order.SubmitState,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateOrderID
		}
		return nil, fmt.Errorf("repository: failed to create order %q: %w", order.ID, err)
	}

	return &created, nil
}

func lockOrder(ctx context.Context, q DBTX, orderID string) (*domain.Order, error) {
	order, err := scanOrder(q.QueryRow(ctx, orderSelect+` WHERE id = $1 FOR UPDATE`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock order %q: %w", orderID, err)
	}
	return order, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.AccountID, &o.ServiceID, &o.ServiceName, &o.Link, &o.Quantity, &o.Price,
		&o.Status, &o.SubmitState, &o.UpstreamRef, &o.FailureReason, &o.NeedsReview,
		&o.StartCount, &o.Remains, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}
