package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"bookhaven/internal/models"

	"github.com/google/uuid"
)

// OrderRepository handles order data operations. The order row and its
// cart-item references are written in one transaction so a failed write never
// leaves a partial order behind.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order with its item references, in caller order
func (r *OrderRepository) Create(order *models.Order) (*models.Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	order.ID = uuid.New().String()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err = tx.Exec(`
		INSERT INTO orders (id, user_id, total_amount, shipping_address, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.UserID, order.TotalAmount, order.ShippingAddress, order.PaymentMethod, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := insertOrderItems(tx, order.ID, order.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}

// GetByID retrieves an order with its item references
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	query := `
		SELECT id, user_id, total_amount, shipping_address, payment_method, created_at, updated_at
		FROM orders
		WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.ShippingAddress,
		&order.PaymentMethod,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := r.db.Query(
		"SELECT cart_item_id FROM order_items WHERE order_id = $1 ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, itemID)
	}

	return order, rows.Err()
}

// Update overwrites an order in place, replacing its item references
func (r *OrderRepository) Update(order *models.Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE orders
		SET user_id = $1, total_amount = $2, shipping_address = $3, payment_method = $4, updated_at = $5
		WHERE id = $6`,
		order.UserID, order.TotalAmount, order.ShippingAddress, order.PaymentMethod, time.Now(), order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}

	if _, err := tx.Exec("DELETE FROM order_items WHERE order_id = $1", order.ID); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}

	if err := insertOrderItems(tx, order.ID, order.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order update: %w", err)
	}

	return nil
}

// Delete removes an order by id. Deleting an order that does not exist is
// not an error, matching the delete route's behavior.
func (r *OrderRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM orders WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func insertOrderItems(tx *sql.Tx, orderID string, itemIDs []string) error {
	for i, itemID := range itemIDs {
		_, err := tx.Exec(
			"INSERT INTO order_items (order_id, cart_item_id, position) VALUES ($1, $2, $3)",
			orderID, itemID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}
