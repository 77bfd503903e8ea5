package domain

// IsTerminal сообщает, что статус больше не меняется при опросе поставщика
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo проверяет допустимость перехода.
// Повторная установка того же статуса допустима и ничего не меняет.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}

	switch s {
	case OrderStatusPendingPayment:
		return next == OrderStatusProcessing || next == OrderStatusFailed || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusFailed
	default:
		return false
	}
}

// Valid проверяет, что статус известен
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusProcessing, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusFailed:
		return true
	default:
		return false
	}
}

// ProviderStatusPartial - заказ завершен поставщиком, но выполнен не полностью
const ProviderStatusPartial = "Partial"

// MapProviderStatus переводит статус поставщика в статус заказа.
// Неизвестные значения не меняют заказ в обработке.
func MapProviderStatus(status string) OrderStatus {
	switch status {
	case "Completed", ProviderStatusPartial:
		return OrderStatusCompleted
	case "Canceled", "Cancelled", "Refunded":
		return OrderStatusFailed
	default:
		return OrderStatusProcessing
	}
}
