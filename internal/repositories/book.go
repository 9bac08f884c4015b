package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"bookhaven/internal/models"

	"github.com/google/uuid"
)

// BookRepository handles catalog data operations
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

const bookColumns = "id, title, author, price, description, image_url, created_at, updated_at"

// List returns every book in the catalog
func (r *BookRepository) List() ([]*models.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY created_at", bookColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		book := &models.Book{}
		if err := scanBook(rows, book); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

// GetByID retrieves a book by id
func (r *BookRepository) GetByID(id string) (*models.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE id = $1", bookColumns)

	book := &models.Book{}
	err := scanBook(r.db.QueryRow(query, id), book)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

// Create adds a book to the catalog
func (r *BookRepository) Create(req *models.BookCreateRequest) (*models.Book, error) {
	query := fmt.Sprintf(`
		INSERT INTO books (id, title, author, price, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, bookColumns)

	now := time.Now()
	book := &models.Book{}

	err := scanBook(r.db.QueryRow(
		query,
		uuid.New().String(),
		req.Title,
		req.Author,
		req.Price,
		req.Description,
		req.ImageURL,
		now,
		now,
	), book)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

// Update overwrites a book's title and price
func (r *BookRepository) Update(id string, req *models.BookUpdateRequest) (*models.Book, error) {
	query := fmt.Sprintf(`
		UPDATE books
		SET title = $1, price = $2, updated_at = $3
		WHERE id = $4
		RETURNING %s`, bookColumns)

	book := &models.Book{}
	err := scanBook(r.db.QueryRow(query, req.Title, req.Price, time.Now(), id), book)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return book, nil
}

// Delete removes a book from the catalog
func (r *BookRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if affected == 0 {
		return models.ErrBookNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(s scanner, book *models.Book) error {
	return s.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Price,
		&book.Description,
		&book.ImageURL,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}
