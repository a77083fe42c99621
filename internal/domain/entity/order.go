package entity

import (
	"slices"
	"time"
)

// OrderStatus is the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in workflow order
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// IsValid reports whether s is one of the known statuses
func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses() {
		if s == known {
			return true
		}
	}

	return false
}

// Customer holds the checkout contact and shipping details
type Customer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// OrderItem is a frozen copy of a cart line at checkout time
type OrderItem struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
	Total        int64  `json:"total"`
}

// Order is an immutable checkout snapshot; only Status changes afterwards.
type Order struct {
	ID        int64       `json:"id"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	Notes     string      `json:"notes"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Clone returns a copy that shares no slice with o
func (o Order) Clone() Order {
	o.Items = slices.Clone(o.Items)

	return o
}

// OrderInput is what checkout hands to the order store
type OrderInput struct {
	Customer Customer
	Items    []OrderItem
	Total    int64
	Notes    string
}

// OrderItemsFromCart snapshots cart lines into order items.
func OrderItemsFromCart(lines []CartLine) []OrderItem {
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductImage: line.Product.Image,
			Quantity:     line.Quantity,
			Price:        line.Product.Price,
			Total:        line.Subtotal(),
		})
	}

	return items
}
