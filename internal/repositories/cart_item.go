package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"bookhaven/internal/models"

	"github.com/google/uuid"
)

// CartItemRepository handles cart line data operations. Lines are keyed by
// book id: the cart is global and holds at most one line per book.
type CartItemRepository struct {
	db *sql.DB
}

// NewCartItemRepository creates a new cart item repository
func NewCartItemRepository(db *sql.DB) *CartItemRepository {
	return &CartItemRepository{db: db}
}

const cartItemColumns = "id, book_id, quantity, price, created_at, updated_at"

// GetByID retrieves a cart line by its own id
func (r *CartItemRepository) GetByID(id string) (*models.CartItem, error) {
	query := fmt.Sprintf("SELECT %s FROM cart_items WHERE id = $1", cartItemColumns)

	item := &models.CartItem{}
	err := scanCartItem(r.db.QueryRow(query, id), item)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

// GetByBookID retrieves the cart line for a book, if one exists
func (r *CartItemRepository) GetByBookID(bookID string) (*models.CartItem, error) {
	query := fmt.Sprintf("SELECT %s FROM cart_items WHERE book_id = $1", cartItemColumns)

	item := &models.CartItem{}
	err := scanCartItem(r.db.QueryRow(query, bookID), item)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

// Create adds a new cart line with the price snapshotted from the book
func (r *CartItemRepository) Create(bookID string, quantity, price int) (*models.CartItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO cart_items (id, book_id, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, cartItemColumns)

	now := time.Now()
	item := &models.CartItem{}

	err := scanCartItem(r.db.QueryRow(query, uuid.New().String(), bookID, quantity, price, now, now), item)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}

	return item, nil
}

// UpdateQuantity overwrites the quantity of the cart line for a book
func (r *CartItemRepository) UpdateQuantity(bookID string, quantity int) error {
	result, err := r.db.Exec(
		"UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE book_id = $3",
		quantity, time.Now(), bookID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}
	if affected == 0 {
		return models.ErrCartItemNotFound
	}

	return nil
}

// DeleteByBookID removes the cart line for a book. Deleting a line that does
// not exist is not an error.
func (r *CartItemRepository) DeleteByBookID(bookID string) error {
	if _, err := r.db.Exec("DELETE FROM cart_items WHERE book_id = $1", bookID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func scanCartItem(s scanner, item *models.CartItem) error {
	return s.Scan(
		&item.ID,
		&item.BookID,
		&item.Quantity,
		&item.Price,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
