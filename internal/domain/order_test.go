package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewOrderDefaults(t *testing.T) {
	now := time.Date(2025, time.November, 7, 18, 18, 8, 0, time.UTC)

	order := NewOrder("4", OrderInput{UserID: strPtr("3")}, now)

	if order.Status != OrderStatusPending {
		t.Errorf("Expected status %q, got %q", OrderStatusPending, order.Status)
	}
	if order.Items == nil || len(order.Items) != 0 {
		t.Errorf("Expected empty non-nil items, got %#v", order.Items)
	}
	if order.Total != 0 {
		t.Errorf("Expected total 0, got %v", order.Total)
	}
	if !order.CreatedAt.Equal(now) {
		t.Errorf("Expected createdAt %v, got %v", now, order.CreatedAt)
	}
}

func TestNewOrderEmptyStatusFallsBackToPending(t *testing.T) {
	empty := OrderStatus("")
	order := NewOrder("1", OrderInput{Status: &empty}, time.Now())

	if order.Status != OrderStatusPending {
		t.Errorf("Expected status %q, got %q", OrderStatusPending, order.Status)
	}
}

func TestNewOrderKeepsSuppliedFields(t *testing.T) {
	status := OrderStatusProcessing
	in := OrderInput{
		UserID: strPtr("2"),
		Items:  []OrderItem{{ProductID: "4", Quantity: 1, Price: 100}},
		Total:  floatPtr(100),
		Status: &status,
	}

	order := NewOrder("5", in, time.Now())

	if order.Status != OrderStatusProcessing {
		t.Errorf("Expected status %q, got %q", OrderStatusProcessing, order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != "4" {
		t.Errorf("Expected supplied items, got %#v", order.Items)
	}

	// The order must not share the caller's slice.
	in.Items[0].ProductID = "changed"
	if order.Items[0].ProductID != "4" {
		t.Error("Expected order items to be copied")
	}
}

func TestOrderStatusIsKnown(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted} {
		if !s.IsKnown() {
			t.Errorf("Expected %q to be known", s)
		}
	}
	if OrderStatus("shipped").IsKnown() {
		t.Error("Expected shipped to be unknown")
	}
}

func TestOrderJSONFieldNames(t *testing.T) {
	order := Order{
		ID:        "1",
		UserID:    "1",
		Items:     []OrderItem{{ProductID: "1", Quantity: 2, Price: 3500}},
		Total:     7000,
		Status:    OrderStatusPending,
		CreatedAt: time.Date(2025, time.November, 7, 18, 18, 8, 792000000, time.UTC),
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := `{"id":"1","userId":"1","items":[{"productId":"1","quantity":2,"price":3500}],"total":7000,"status":"pending","createdAt":"2025-11-07T18:18:08.792Z"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}
