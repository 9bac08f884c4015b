package services

import (
	"fmt"
	"time"

	"bookhaven/internal/models"
)

// OrderRepository interface for order data operations
type OrderRepository interface {
	Create(order *models.Order) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	Update(order *models.Order) error
	Delete(id string) error
}

// ReceiptRenderer renders the proof-of-purchase document streamed back to
// the client after checkout
type ReceiptRenderer interface {
	Render(data ReceiptData) ([]byte, error)
}

// OrderService handles checkout and order amendment. Cart items are not
// removed or marked consumed after checkout, so the same cart line can be
// checked out again; that matches the cart's documented lifecycle.
type OrderService struct {
	orders    OrderRepository
	users     UserRepository
	cartItems CartItemRepository
	books     BookRepository
	receipts  ReceiptRenderer
}

// NewOrderService creates a new order service
func NewOrderService(
	orders OrderRepository,
	users UserRepository,
	cartItems CartItemRepository,
	books BookRepository,
	receipts ReceiptRenderer,
) *OrderService {
	return &OrderService{
		orders:    orders,
		users:     users,
		cartItems: cartItems,
		books:     books,
		receipts:  receipts,
	}
}

// Checkout resolves the user and every referenced cart item and book,
// computes the total, persists the order, and renders the receipt. Nothing
// is persisted unless every resolution step succeeds.
func (s *OrderService) Checkout(req *models.CheckoutRequest) (*models.Order, []byte, error) {
	user, err := s.users.GetByID(req.UserID)
	if err != nil {
		return nil, nil, err
	}

	totalAmount := 0
	lines := make([]ReceiptLine, 0, len(req.Items))
	for _, itemID := range req.Items {
		cartItem, err := s.cartItems.GetByID(itemID)
		if err != nil {
			return nil, nil, fmt.Errorf("cart item %s: %w", itemID, err)
		}

		book, err := s.books.GetByID(cartItem.BookID)
		if err != nil {
			return nil, nil, fmt.Errorf("book %s: %w", cartItem.BookID, err)
		}

		lineTotal := cartItem.Quantity * book.Price
		totalAmount += lineTotal
		lines = append(lines, ReceiptLine{
			Title:     book.Title,
			Quantity:  cartItem.Quantity,
			UnitPrice: book.Price,
			LineTotal: lineTotal,
		})
	}

	order, err := s.orders.Create(&models.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		TotalAmount:     totalAmount,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return nil, nil, err
	}

	receipt, err := s.receipts.Render(ReceiptData{
		OrderID:         order.ID,
		Username:        user.Username,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		GeneratedAt:     time.Now(),
		Lines:           lines,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	return order, receipt, nil
}

// Update amends an order in place and re-renders its receipt. Totals come
// from the caller-supplied quantity and price, which are only checked for
// presence; receipt lines still show the book's current catalog price as the
// unit price, as the receipts always have.
func (s *OrderService) Update(orderID string, req *models.OrderUpdateRequest) (*models.Order, []byte, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByID(req.UserID)
	if err != nil {
		return nil, nil, err
	}

	totalAmount := 0
	itemIDs := make([]string, 0, len(req.Items))
	lines := make([]ReceiptLine, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity == 0 || item.Price == 0 {
			return nil, nil, models.NewValidationError("Invalid item format")
		}

		cartItem, err := s.cartItems.GetByID(item.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("cart item %s: %w", item.ID, err)
		}

		book, err := s.books.GetByID(cartItem.BookID)
		if err != nil {
			return nil, nil, fmt.Errorf("book %s: %w", cartItem.BookID, err)
		}

		lineTotal := item.Quantity * item.Price
		totalAmount += lineTotal
		itemIDs = append(itemIDs, item.ID)
		lines = append(lines, ReceiptLine{
			Title:     book.Title,
			Quantity:  item.Quantity,
			UnitPrice: book.Price,
			LineTotal: lineTotal,
		})
	}

	order.UserID = req.UserID
	order.Items = itemIDs
	order.TotalAmount = totalAmount
	order.ShippingAddress = req.ShippingAddress
	order.PaymentMethod = req.PaymentMethod

	if err := s.orders.Update(order); err != nil {
		return nil, nil, err
	}

	receipt, err := s.receipts.Render(ReceiptData{
		OrderID:         order.ID,
		Username:        user.Username,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		GeneratedAt:     time.Now(),
		Lines:           lines,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	return order, receipt, nil
}

// Delete removes an order. No existence check is performed; deleting an
// absent order still succeeds.
func (s *OrderService) Delete(orderID string) error {
	return s.orders.Delete(orderID)
}
