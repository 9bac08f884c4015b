package handlers

import (
	"net/http"

	"bookhaven/internal/models"

	"github.com/go-chi/chi/v5"
)

// CartService interface for cart operations
type CartService interface {
	AddItem(bookID string, quantity int) error
	RemoveItem(bookID string) error
	UpdateQuantity(bookID string, quantity int) error
}

// CartHandler handles shopping cart requests
type CartHandler struct {
	cart CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Routes mounts the cart endpoints
func (h *CartHandler) Routes(r chi.Router) {
	r.Post("/add", h.Add)
	r.Delete("/remove/{bookId}", h.Remove)
	r.Put("/update/{bookId}", h.UpdateQuantity)
}

// Add adds a book to the cart, or increments its existing line
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.CartAddRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.cart.AddItem(req.BookID, req.Quantity); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Item added to cart successfully")
}

// Remove deletes the cart line for a book; succeeds even when absent
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.RemoveItem(chi.URLParam(r, "bookId")); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Item removed from cart successfully")
}

// UpdateQuantity overwrites the quantity of an existing cart line
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.CartUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.cart.UpdateQuantity(chi.URLParam(r, "bookId"), req.Quantity); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Item quantity updated successfully")
}
