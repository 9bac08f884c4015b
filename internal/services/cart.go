package services

import (
	"errors"

	"bookhaven/internal/models"

	"github.com/google/uuid"
)

// CartItemRepository interface for cart data operations
type CartItemRepository interface {
	GetByID(id string) (*models.CartItem, error)
	GetByBookID(bookID string) (*models.CartItem, error)
	Create(bookID string, quantity, price int) (*models.CartItem, error)
	UpdateQuantity(bookID string, quantity int) error
	DeleteByBookID(bookID string) error
}

// CartService handles shopping cart business logic. The cart is global:
// there is one line per book, shared by all callers.
type CartService struct {
	cartItems CartItemRepository
	books     BookRepository
}

// NewCartService creates a new cart service
func NewCartService(cartItems CartItemRepository, books BookRepository) *CartService {
	return &CartService{cartItems: cartItems, books: books}
}

// AddItem adds a book to the cart. An existing line for the book has its
// quantity incremented; a new line snapshots the book's current price.
func (s *CartService) AddItem(bookID string, quantity int) error {
	if _, err := uuid.Parse(bookID); err != nil {
		return models.NewValidationError("Invalid bookId format")
	}

	book, err := s.books.GetByID(bookID)
	if err != nil {
		return err
	}

	item, err := s.cartItems.GetByBookID(bookID)
	if err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			_, err = s.cartItems.Create(bookID, quantity, book.Price)
			return err
		}
		return err
	}

	return s.cartItems.UpdateQuantity(bookID, item.Quantity+quantity)
}

// RemoveItem deletes the cart line for a book. Removing a book that is not
// in the cart still succeeds.
func (s *CartService) RemoveItem(bookID string) error {
	return s.cartItems.DeleteByBookID(bookID)
}

// UpdateQuantity overwrites the quantity of an existing cart line
func (s *CartService) UpdateQuantity(bookID string, quantity int) error {
	if _, err := s.cartItems.GetByBookID(bookID); err != nil {
		return err
	}
	return s.cartItems.UpdateQuantity(bookID, quantity)
}
