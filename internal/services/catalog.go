package services

import (
	"fmt"

	"bookhaven/internal/models"
)

// BookRepository interface for catalog data operations
type BookRepository interface {
	List() ([]*models.Book, error)
	GetByID(id string) (*models.Book, error)
	Create(req *models.BookCreateRequest) (*models.Book, error)
	Update(id string, req *models.BookUpdateRequest) (*models.Book, error)
	Delete(id string) error
}

// CatalogService handles catalog business logic
type CatalogService struct {
	books BookRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(books BookRepository) *CatalogService {
	return &CatalogService{books: books}
}

// ListBooks returns every book in the catalog
func (s *CatalogService) ListBooks() ([]*models.Book, error) {
	books, err := s.books.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// CreateBook validates and adds a book to the catalog
func (s *CatalogService) CreateBook(req *models.BookCreateRequest) (*models.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.books.Create(req)
}

// UpdateBook overwrites a book's title and price. Both are required.
func (s *CatalogService) UpdateBook(id string, req *models.BookUpdateRequest) (*models.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.books.Update(id, req)
}

// DeleteBook removes a book from the catalog
func (s *CatalogService) DeleteBook(id string) error {
	return s.books.Delete(id)
}
