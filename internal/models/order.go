package models

import "time"

// Order represents a finalized order. Items holds the cart-item ids the order
// was checked out from, in the order the caller supplied them. TotalAmount is
// computed at creation or update time and persisted.
type Order struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user" db:"user_id"`
	Items           []string  `json:"items"`
	TotalAmount     int       `json:"totalAmount" db:"total_amount"` // Amount in cents
	ShippingAddress string    `json:"shippingAddress" db:"shipping_address"`
	PaymentMethod   string    `json:"paymentMethod" db:"payment_method"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// TotalAmountInCurrency returns the total in currency units (e.g., KES)
func (o *Order) TotalAmountInCurrency() float64 {
	return float64(o.TotalAmount) / 100.0
}

// CheckoutRequest represents a checkout request. Items are cart-item ids,
// not book ids.
type CheckoutRequest struct {
	UserID          string   `json:"user"`
	Items           []string `json:"items"`
	ShippingAddress string   `json:"shippingAddress"`
	PaymentMethod   string   `json:"paymentMethod"`
}

// OrderItemUpdate carries caller-supplied quantity and price for one cart
// item when amending an order.
type OrderItemUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// OrderUpdateRequest represents an order amendment. Totals are computed from
// the caller-supplied quantity and price, not re-read from the catalog.
type OrderUpdateRequest struct {
	UserID          string            `json:"user"`
	Items           []OrderItemUpdate `json:"items"`
	ShippingAddress string            `json:"shippingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
}
