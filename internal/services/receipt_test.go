package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptService_Render(t *testing.T) {
	service := NewReceiptService()

	data := ReceiptData{
		OrderID:         "order-123",
		Username:        "jane",
		ShippingAddress: "42 Haven St, Kisumu",
		PaymentMethod:   "mpesa",
		GeneratedAt:     time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
		Lines: []ReceiptLine{
			{Title: "Dune", Quantity: 2, UnitPrice: 50000, LineTotal: 100000},
			{Title: "Emma (annotated)", Quantity: 1, UnitPrice: 30000, LineTotal: 30000},
		},
	}

	pdf, err := service.Render(data)
	require.NoError(t, err)

	body := string(pdf)
	assert.True(t, strings.HasPrefix(body, "%PDF-1.4"))
	assert.Contains(t, body, "%%EOF")
	assert.Contains(t, body, "Book Sale Receipt")
	assert.Contains(t, body, "Order ID: order-123")
	assert.Contains(t, body, "User: jane")
	assert.Contains(t, body, "Shipping Address: 42 Haven St, Kisumu")
	assert.Contains(t, body, "Payment Method: mpesa")
	assert.Contains(t, body, "Dune : 2 @ KES 500.00 Total KES 1000.00")
	assert.Contains(t, body, "Thank you jane for Buying from: Aindo Book Haven Stores")
}

func TestReceiptService_EscapesParentheses(t *testing.T) {
	service := NewReceiptService()

	pdf, err := service.Render(ReceiptData{
		OrderID:     "order-1",
		Username:    "jane",
		GeneratedAt: time.Now(),
		Lines:       []ReceiptLine{{Title: "Emma (annotated)", Quantity: 1, UnitPrice: 100, LineTotal: 100}},
	})
	require.NoError(t, err)

	assert.Contains(t, string(pdf), `Emma \(annotated\)`)
}
