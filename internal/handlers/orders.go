package handlers

import (
	"net/http"

	"bookhaven/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// OrderService interface for checkout and order amendment
type OrderService interface {
	Checkout(req *models.CheckoutRequest) (*models.Order, []byte, error)
	Update(orderID string, req *models.OrderUpdateRequest) (*models.Order, []byte, error)
	Delete(orderID string) error
}

// OrderHandler handles checkout and order management requests
type OrderHandler struct {
	orders OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Routes mounts the order endpoints
func (h *OrderHandler) Routes(r chi.Router) {
	r.Post("/checkout", h.Checkout)
	r.Put("/update/{orderId}", h.Update)
	r.Delete("/delete/{orderId}", h.Delete)
}

// Checkout creates an order and streams its PDF receipt as the response body
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	order, receipt, err := h.orders.Checkout(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	streamReceipt(w, order.ID, receipt)
}

// Update amends an order and streams the re-rendered receipt
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.OrderUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	order, receipt, err := h.orders.Update(chi.URLParam(r, "orderId"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	streamReceipt(w, order.ID, receipt)
}

// Delete removes an order; succeeds even when the order does not exist
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(chi.URLParam(r, "orderId")); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Order deleted successfully")
}

// streamReceipt writes the rendered receipt as the response body. The happy
// path responds with the document itself, not a JSON envelope.
func streamReceipt(w http.ResponseWriter, orderID string, receipt []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="receipt-`+orderID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(receipt); err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to stream receipt")
	}
}
