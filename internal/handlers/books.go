package handlers

import (
	"net/http"

	"bookhaven/internal/models"

	"github.com/go-chi/chi/v5"
)

// CatalogService interface for catalog operations
type CatalogService interface {
	ListBooks() ([]*models.Book, error)
	CreateBook(req *models.BookCreateRequest) (*models.Book, error)
	UpdateBook(id string, req *models.BookUpdateRequest) (*models.Book, error)
	DeleteBook(id string) error
}

// BookHandler handles catalog requests
type BookHandler struct {
	catalog CatalogService
}

// NewBookHandler creates a new book handler
func NewBookHandler(catalog CatalogService) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// Routes mounts the catalog endpoints
func (h *BookHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns all books
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListBooks()
	if err != nil {
		handleError(w, err)
		return
	}

	if books == nil {
		books = []*models.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

// Create adds a new book to the catalog
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BookCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	book, err := h.catalog.CreateBook(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, book)
}

// Update overwrites a book's title and price
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.BookUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	book, err := h.catalog.UpdateBook(chi.URLParam(r, "id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// Delete removes a book from the catalog
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteBook(chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Book deleted successfully")
}
