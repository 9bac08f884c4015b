package models

import (
	"strings"
	"time"
)

// Book represents a book in the catalog
type Book struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Price       int       `json:"price" db:"price"` // Amount in cents
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageURL" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PriceInCurrency returns the price in currency units (e.g., KES)
func (b *Book) PriceInCurrency() float64 {
	return float64(b.Price) / 100.0
}

// BookCreateRequest represents the data needed to add a book to the catalog
type BookCreateRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
}

// BookUpdateRequest represents the data that can be updated for a book
type BookUpdateRequest struct {
	Title string `json:"title"`
	Price int    `json:"price"`
}

// Validate validates book creation data
func (req *BookCreateRequest) Validate() error {
	var details []string

	if strings.TrimSpace(req.Title) == "" {
		details = append(details, "Title is required")
	}
	if strings.TrimSpace(req.Author) == "" {
		details = append(details, "Author is required")
	}
	if req.Price < 0 {
		details = append(details, "Price must be zero or greater")
	}
	if strings.TrimSpace(req.Description) == "" {
		details = append(details, "Description is required")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		details = append(details, "Image URL is required")
	}

	if len(details) > 0 {
		return NewValidationError(details...)
	}
	return nil
}

// Validate validates book update data. Only title and price are updatable.
func (req *BookUpdateRequest) Validate() error {
	var details []string

	if strings.TrimSpace(req.Title) == "" {
		details = append(details, "Title is required")
	}
	if req.Price <= 0 {
		details = append(details, "Price is required")
	}

	if len(details) > 0 {
		return NewValidationError(details...)
	}
	return nil
}
