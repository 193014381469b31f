package domain

import "time"

// OrderStatus represents the processing state of an order.
type OrderStatus string

const (
	// OrderStatusPending is assigned to new orders that do not specify a status.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusCompleted indicates the order has been fulfilled.
	OrderStatusCompleted OrderStatus = "completed"
)

// IsKnown reports whether the status is one of the defined values.
// Unknown statuses are still accepted and stored.
func (s OrderStatus) IsKnown() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"productId" yaml:"productId"`
	Quantity  int     `json:"quantity"  yaml:"quantity"`
	Price     float64 `json:"price"     yaml:"price"`
}

// Order is a purchase placed by a user. UserID and ProductID references are
// not checked against the other stores.
type Order struct {
	ID        string      `json:"id"        yaml:"id"`
	UserID    string      `json:"userId"    yaml:"userId"`
	Items     []OrderItem `json:"items"     yaml:"items"`
	Total     float64     `json:"total"     yaml:"total"`
	Status    OrderStatus `json:"status"    yaml:"status"`
	CreatedAt time.Time   `json:"createdAt" yaml:"createdAt"`
}

// RecordID returns the store-assigned id.
func (o *Order) RecordID() string { return o.ID }

// SetRecordID sets the store-assigned id.
func (o *Order) SetRecordID(id string) { o.ID = id }

// OrderInput carries the fields of a create or update request.
// CreatedAt is deliberately absent: it is set once at creation.
type OrderInput struct {
	UserID *string      `json:"userId"`
	Items  []OrderItem  `json:"items"`
	Total  *float64     `json:"total"`
	Status *OrderStatus `json:"status"`
}

// NewOrder builds an order with the given id and creation time.
// Items default to an empty list, total to 0 and status to pending.
func NewOrder(id string, in OrderInput, createdAt time.Time) Order {
	order := Order{
		ID:        id,
		Items:     []OrderItem{},
		Status:    OrderStatusPending,
		CreatedAt: createdAt,
	}
	in.ApplyTo(&order)
	if order.Status == "" {
		order.Status = OrderStatusPending
	}
	return order
}

// ApplyTo overwrites the fields of order that are present in the input.
func (in OrderInput) ApplyTo(order *Order) {
	if in.UserID != nil {
		order.UserID = *in.UserID
	}
	if in.Items != nil {
		items := make([]OrderItem, len(in.Items))
		copy(items, in.Items)
		order.Items = items
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
}
