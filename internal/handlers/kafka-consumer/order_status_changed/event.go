package order_status_changed

// statusChangedEvent сообщение топика смены статуса заказа.
type statusChangedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
