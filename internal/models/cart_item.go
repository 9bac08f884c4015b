package models

import "time"

// CartItem represents one line in the shopping cart: a book, a quantity and
// the price snapshotted when the book was first added. The cart is global —
// lines are keyed by book only, with no user scoping.
type CartItem struct {
	ID        string    `json:"id" db:"id"`
	BookID    string    `json:"book" db:"book_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     int       `json:"price" db:"price"` // Snapshot in cents, not re-derived
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Subtotal returns quantity times the snapshotted price
func (ci *CartItem) Subtotal() int {
	return ci.Quantity * ci.Price
}

// CartAddRequest represents an add-to-cart request
type CartAddRequest struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

// CartUpdateRequest represents a quantity update for an existing cart line
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}
