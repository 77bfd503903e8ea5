package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPendingPayment, OrderStatusProcessing, true},
		{OrderStatusPendingPayment, OrderStatusFailed, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusCompleted, false},
		{OrderStatusProcessing, OrderStatusCompleted, true},
		{OrderStatusProcessing, OrderStatusFailed, true},
		{OrderStatusProcessing, OrderStatusPendingPayment, false},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusProcessing, false},
		{OrderStatusFailed, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusCompleted, OrderStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPendingPayment.IsTerminal())
	assert.False(t, OrderStatusProcessing.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusFailed.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatus("UNKNOWN").Valid())
}

func TestMapProviderStatus(t *testing.T) {
	tests := map[string]OrderStatus{
		"Pending":     OrderStatusProcessing,
		"In progress": OrderStatusProcessing,
		"Processing":  OrderStatusProcessing,
		"Completed":   OrderStatusCompleted,
		"Partial":     OrderStatusCompleted,
		"Canceled":    OrderStatusFailed,
		"Cancelled":   OrderStatusFailed,
		"Refunded":    OrderStatusFailed,
		"":            OrderStatusProcessing,
	}

	for in, want := range tests {
		assert.Equal(t, want, MapProviderStatus(in), in)
	}
}

func TestProviderErrors(t *testing.T) {
	rejected := fmt.Errorf("submit: %w", &ProviderRejectedError{Reason: "Incorrect service ID"})

	assert.True(t, errors.Is(rejected, ErrProviderRejected))
	var target *ProviderRejectedError
	assert.True(t, errors.As(rejected, &target))
	assert.Equal(t, "Incorrect service ID", target.Reason)

	assert.True(t, IsAmbiguous(fmt.Errorf("x: %w", ErrProviderTimeout)))
	assert.True(t, IsAmbiguous(ErrProviderAmbiguous))
	assert.False(t, IsAmbiguous(ErrProviderUnreachable))
	assert.False(t, IsAmbiguous(rejected))
}
