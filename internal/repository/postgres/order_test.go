package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimalArg сравнивает денежный аргумент запроса по значению
type decimalArg string

func (a decimalArg) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(decimal.RequireFromString(string(a)))
}

func testOrder(status domain.OrderStatus, state domain.SubmitState) *domain.Order {
	now := time.Now()
	return &domain.Order{
		ID:          "ord-1",
		AccountID:   1,
		ServiceID:   "1977",
		ServiceName: "Facebook Page Likes",
		Link:        "https://facebook.com/page",
		Quantity:    3000,
		Price:       decimal.RequireFromString("7.50"),
		Status:      status,
		SubmitState: state,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func orderRows(orders ...*domain.Order) *pgxmock.Rows {
	rows := pgxmock.NewRows(orderColumns)
	for _, o := range orders {
		rows.AddRow(o.ID, o.AccountID, o.ServiceID, o.ServiceName, o.Link, o.Quantity, o.Price.StringFixed(2),
			o.Status, o.SubmitState, o.UpstreamRef, o.FailureReason, o.NeedsReview,
			o.StartCount, o.Remains, o.CreatedAt, o.UpdatedAt)
	}
	return rows
}

func expectLockAccount(mock pgxmock.PgxPoolIface, accountID int64, balance, held string) {
	mock.ExpectQuery(`SELECT balance FROM accounts WHERE id = \$1 FOR UPDATE`).
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(balance))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(price\), 0\) FROM orders`).
		WithArgs(accountID, domain.OrderStatusPendingPayment).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(held))
}

func TestOrderRepository_ReserveOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := testOrder("", "")
		now := time.Now()

		mock.ExpectBegin()
		expectLockAccount(mock, 1, "10.00", "0")
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs("ord-1", int64(1), "1977", "Facebook Page Likes", "https://facebook.com/page", 3000,
				pgxmock.AnyArg(), domain.OrderStatusPendingPayment, domain.SubmitStateQueued).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectCommit()

		created, err := repo.ReserveOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPendingPayment, created.Status)
		assert.Equal(t, domain.SubmitStateQueued, created.SubmitState)
		assert.Equal(t, now, created.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient funds counts held orders", func(t *testing.T) {
		order := testOrder("", "")

		mock.ExpectBegin()
		expectLockAccount(mock, 1, "10.00", "6.00")
		mock.ExpectRollback()

		created, err := repo.ReserveOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, created)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate order id", func(t *testing.T) {
		order := testOrder("", "")

		mock.ExpectBegin()
		expectLockAccount(mock, 1, "10.00", "0")
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		_, err := repo.ReserveOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrDuplicateOrderID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Account not found", func(t *testing.T) {
		order := testOrder("", "")

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT balance FROM accounts`).
			WithArgs(int64(1)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.ReserveOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ConfirmOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pending := testOrder(domain.OrderStatusPendingPayment, domain.SubmitStateDispatched)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(pending))
		mock.ExpectQuery(`SELECT balance FROM accounts WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("10.00"))
		mock.ExpectQuery(`UPDATE accounts SET balance = balance \+ \$1`).
			WithArgs(pgxmock.AnyArg(), int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("2.50"))
		mock.ExpectExec(`INSERT INTO ledger_entries`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`UPDATE orders`).
			WithArgs(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged, "P123", "ord-1").
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
		mock.ExpectCommit()

		order, err := repo.ConfirmOrder(ctx, "ord-1", "P123")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusProcessing, order.Status)
		assert.Equal(t, domain.SubmitStateAcknowledged, order.SubmitState)
		require.NotNil(t, order.UpstreamRef)
		assert.Equal(t, "P123", *order.UpstreamRef)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Same reference is a no-op", func(t *testing.T) {
		ref := "P123"
		processing := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)
		processing.UpstreamRef = &ref

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(processing))
		mock.ExpectRollback()

		order, err := repo.ConfirmOrder(ctx, "ord-1", "P123")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusProcessing, order.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Different reference", func(t *testing.T) {
		ref := "P123"
		processing := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)
		processing.UpstreamRef = &ref

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(processing))
		mock.ExpectRollback()

		_, err := repo.ConfirmOrder(ctx, "ord-1", "P999")
		assert.ErrorIs(t, err, domain.ErrUpstreamRefConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cancelled order", func(t *testing.T) {
		cancelled := testOrder(domain.OrderStatusCancelled, domain.SubmitStateRejected)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(cancelled))
		mock.ExpectRollback()

		_, err := repo.ConfirmOrder(ctx, "ord-1", "P123")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.ConfirmOrder(ctx, "missing", "P123")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ReleaseOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Rejected by provider", func(t *testing.T) {
		pending := testOrder(domain.OrderStatusPendingPayment, domain.SubmitStateDispatched)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(pending))
		mock.ExpectQuery(`UPDATE orders`).
			WithArgs(domain.OrderStatusFailed, domain.SubmitStateRejected, "Incorrect link", "ord-1").
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
		mock.ExpectCommit()

		order, err := repo.ReleaseOrder(ctx, "ord-1", domain.OrderStatusFailed, "Incorrect link")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusFailed, order.Status)
		assert.Equal(t, "Incorrect link", order.FailureReason)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Processing order cannot be released", func(t *testing.T) {
		processing := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(processing))
		mock.ExpectRollback()

		_, err := repo.ReleaseOrder(ctx, "ord-1", domain.OrderStatusCancelled, "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid target status", func(t *testing.T) {
		_, err := repo.ReleaseOrder(ctx, "ord-1", domain.OrderStatusCompleted, "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestOrderRepository_ApplyProviderUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Failed refunds the price", func(t *testing.T) {
		processing := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(processing))
		mock.ExpectQuery(`UPDATE accounts SET balance = balance \+ \$1`).
			WithArgs(pgxmock.AnyArg(), int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("10.00"))
		mock.ExpectExec(`INSERT INTO ledger_entries`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`UPDATE orders`).
			WillReturnRows(pgxmock.NewRows([]string{"start_count", "remains", "updated_at"}).
				AddRow((*int)(nil), (*int)(nil), time.Now()))
		mock.ExpectCommit()

		order, err := repo.ApplyProviderUpdate(ctx, "ord-1", domain.ProviderUpdate{
			Status: domain.OrderStatusFailed,
			Reason: "Canceled",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusFailed, order.Status)
		assert.Equal(t, "Canceled", order.FailureReason)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Completed keeps balance", func(t *testing.T) {
		processing := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)
		remains := 0

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(processing))
		mock.ExpectQuery(`UPDATE orders`).
			WillReturnRows(pgxmock.NewRows([]string{"start_count", "remains", "updated_at"}).
				AddRow((*int)(nil), &remains, time.Now()))
		mock.ExpectCommit()

		order, err := repo.ApplyProviderUpdate(ctx, "ord-1", domain.ProviderUpdate{
			Status:  domain.OrderStatusCompleted,
			Remains: &remains,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		require.NotNil(t, order.Remains)
		assert.Equal(t, 0, *order.Remains)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Partial refunds undelivered share", func(t *testing.T) {
		processing := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)
		remains := 1000

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(processing))
		mock.ExpectQuery(`UPDATE accounts SET balance = balance \+ \$1`).
			WithArgs(decimalArg("2.50"), int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("5.00"))
		mock.ExpectExec(`INSERT INTO ledger_entries`).
			WithArgs(int64(1), pgxmock.AnyArg(), domain.LedgerEntryRefund, pgxmock.AnyArg(), (*int64)(nil), "partial delivery", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`UPDATE orders`).
			WillReturnRows(pgxmock.NewRows([]string{"start_count", "remains", "updated_at"}).
				AddRow((*int)(nil), &remains, time.Now()))
		mock.ExpectCommit()

		order, err := repo.ApplyProviderUpdate(ctx, "ord-1", domain.ProviderUpdate{
			Status:  domain.OrderStatusCompleted,
			Remains: &remains,
			Partial: true,
			Reason:  "partial delivery",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		assert.Empty(t, order.FailureReason)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Terminal status is not regressed", func(t *testing.T) {
		completed := testOrder(domain.OrderStatusCompleted, domain.SubmitStateAcknowledged)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(completed))
		mock.ExpectRollback()

		order, err := repo.ApplyProviderUpdate(ctx, "ord-1", domain.ProviderUpdate{Status: domain.OrderStatusFailed})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SetUpstreamRef(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET upstream_ref`).
			WithArgs("P123", "ord-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetUpstreamRef(ctx, "ord-1", "P123"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict with existing reference", func(t *testing.T) {
		ref := "P123"
		order := testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)
		order.UpstreamRef = &ref

		mock.ExpectExec(`UPDATE orders SET upstream_ref`).
			WithArgs("P999", "ord-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id = \$1`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(order))

		err := repo.SetUpstreamRef(ctx, "ord-1", "P999")
		assert.ErrorIs(t, err, domain.ErrUpstreamRefConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET upstream_ref`).
			WithArgs("P123", "missing").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		err := repo.SetUpstreamRef(ctx, "missing", "P123")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SetStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Same status is a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(testOrder(domain.OrderStatusCompleted, domain.SubmitStateAcknowledged)))
		mock.ExpectRollback()

		assert.NoError(t, repo.SetStatus(ctx, "ord-1", domain.OrderStatusCompleted))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Backward transition", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)))
		mock.ExpectRollback()

		err := repo.SetStatus(ctx, "ord-1", domain.OrderStatusPendingPayment)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Forward transition", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)))
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(domain.OrderStatusCompleted, "ord-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.SetStatus(ctx, "ord-1", domain.OrderStatusCompleted))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SetSubmitState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE orders SET submit_state`).
		WithArgs(domain.SubmitStateDispatched, "ord-1", domain.SubmitStateQueued, domain.OrderStatusPendingPayment).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE orders SET submit_state`).
		WithArgs(domain.SubmitStateDispatched, "ord-1", domain.SubmitStateQueued, domain.OrderStatusPendingPayment).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.SetSubmitState(ctx, "ord-1", domain.SubmitStateQueued, domain.SubmitStateDispatched)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetSubmitState(ctx, "ord-1", domain.SubmitStateQueued, domain.SubmitStateDispatched)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("By account", func(t *testing.T) {
		accountID := int64(1)
		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE account_id = \$1 ORDER BY created_at DESC`).
			WithArgs(accountID).
			WillReturnRows(orderRows(
				testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged),
				testOrder(domain.OrderStatusPendingPayment, domain.SubmitStateQueued),
			))

		orders, err := repo.ListOrders(ctx, domain.OrderFilter{AccountID: &accountID})
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.True(t, decimal.RequireFromString("7.50").Equal(orders[0].Price))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM orders`).
			WillReturnError(errors.New("database error"))

		orders, err := repo.ListOrders(ctx, domain.OrderFilter{})
		assert.Error(t, err)
		assert.Nil(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListReconcilable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	olderThan := time.Now().Add(-time.Minute)

	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE updated_at < \$1 AND (.+) ORDER BY updated_at ASC LIMIT 50`).
		WithArgs(olderThan, false, string(domain.OrderStatusPendingPayment), string(domain.OrderStatusProcessing)).
		WillReturnRows(orderRows(testOrder(domain.OrderStatusPendingPayment, domain.SubmitStateDispatched)))

	orders, err := repo.ListReconcilable(context.Background(), olderThan, 50)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.SubmitStateDispatched, orders[0].SubmitState)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FlagForReview(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET needs_review = TRUE`).
			WithArgs("no token lookup", "ord-1", domain.OrderStatusPendingPayment).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.FlagForReview(ctx, "ord-1", "no token lookup"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not pending", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET needs_review = TRUE`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id = \$1`).
			WithArgs("ord-1").
			WillReturnRows(orderRows(testOrder(domain.OrderStatusProcessing, domain.SubmitStateAcknowledged)))

		err := repo.FlagForReview(ctx, "ord-1", "late")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
