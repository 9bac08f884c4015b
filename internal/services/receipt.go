package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// ReceiptLine is one purchased book on the receipt
type ReceiptLine struct {
	Title     string
	Quantity  int
	UnitPrice int // cents
	LineTotal int // cents
}

// ReceiptData is everything the rendered receipt shows
type ReceiptData struct {
	OrderID         string
	Username        string
	ShippingAddress string
	PaymentMethod   string
	GeneratedAt     time.Time
	Lines           []ReceiptLine
}

// ReceiptService renders proof-of-purchase documents. It writes a minimal
// single-page PDF directly so no external rendering dependency is needed.
type ReceiptService struct{}

// NewReceiptService creates a new receipt service
func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

// Render generates the receipt PDF for an order
func (s *ReceiptService) Render(data ReceiptData) ([]byte, error) {
	var buffer bytes.Buffer

	buffer.WriteString("%PDF-1.4\n")

	// Object 1: Catalog
	buffer.WriteString("1 0 obj\n<<\n/Type /Catalog\n/Pages 2 0 R\n>>\nendobj\n\n")

	// Object 2: Pages
	buffer.WriteString("2 0 obj\n<<\n/Type /Pages\n/Kids [3 0 R]\n/Count 1\n>>\nendobj\n\n")

	content := s.generateReceiptContent(data)
	contentStream := s.formatContentForPDF(content)

	// Object 3: Page
	buffer.WriteString("3 0 obj\n<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n")
	buffer.WriteString("/Contents 4 0 R\n/Resources <<\n/Font <<\n/F1 5 0 R\n/F2 6 0 R\n>>\n>>\n>>\nendobj\n\n")

	// Object 4: Content stream
	buffer.WriteString(fmt.Sprintf("4 0 obj\n<<\n/Length %d\n>>\nstream\n", len(contentStream)))
	buffer.WriteString(contentStream)
	buffer.WriteString("\nendstream\nendobj\n\n")

	// Object 5: Font (Helvetica)
	buffer.WriteString("5 0 obj\n<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>\nendobj\n\n")

	// Object 6: Font (Helvetica-Bold)
	buffer.WriteString("6 0 obj\n<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica-Bold\n>>\nendobj\n\n")

	buffer.WriteString("xref\n0 7\n")
	buffer.WriteString("0000000000 65535 f \n")
	buffer.WriteString("0000000010 00000 n \n")
	buffer.WriteString("0000000079 00000 n \n")
	buffer.WriteString("0000000136 00000 n \n")
	buffer.WriteString("0000000301 00000 n \n")
	buffer.WriteString("0000000380 00000 n \n")
	buffer.WriteString("0000000459 00000 n \n")
	buffer.WriteString("trailer\n<<\n/Size 7\n/Root 1 0 R\n>>\nstartxref\n538\n%%EOF\n")

	return buffer.Bytes(), nil
}

// generateReceiptContent creates the formatted text of the receipt
func (s *ReceiptService) generateReceiptContent(data ReceiptData) string {
	var content strings.Builder

	content.WriteString("Book Sale Receipt\n")
	content.WriteString("=================\n\n")

	content.WriteString(fmt.Sprintf("Date: %s\n", data.GeneratedAt.Format("1/2/2006")))
	content.WriteString(fmt.Sprintf("Time: %s\n", data.GeneratedAt.Format("3:04:05 PM")))
	content.WriteString(fmt.Sprintf("Order ID: %s\n", data.OrderID))
	content.WriteString(fmt.Sprintf("User: %s\n", data.Username))
	content.WriteString(fmt.Sprintf("Shipping Address: %s\n", data.ShippingAddress))
	content.WriteString(fmt.Sprintf("Payment Method: %s\n", data.PaymentMethod))
	content.WriteString("\n")

	content.WriteString("Books Purchased:\n")
	content.WriteString("----------------\n")
	for _, line := range data.Lines {
		content.WriteString(fmt.Sprintf("%s : %d @ KES %.2f Total KES %.2f\n",
			line.Title,
			line.Quantity,
			float64(line.UnitPrice)/100.0,
			float64(line.LineTotal)/100.0,
		))
	}

	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Thank you %s for Buying from: Aindo Book Haven Stores\n", data.Username))

	return content.String()
}

// formatContentForPDF converts receipt text into a PDF content stream,
// switching to the bold font for the header and section lines
func (s *ReceiptService) formatContentForPDF(content string) string {
	var stream strings.Builder

	stream.WriteString("BT\n")
	stream.WriteString("/F2 16 Tf\n")
	stream.WriteString("50 750 Td\n")

	currentFont := "F2"
	currentSize := 16

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "Book Sale Receipt") ||
			strings.Contains(line, "Books Purchased:") ||
			strings.Contains(line, "Thank you") {
			if currentFont != "F2" || currentSize != 14 {
				stream.WriteString("/F2 14 Tf\n")
				currentFont = "F2"
				currentSize = 14
			}
		} else {
			if currentFont != "F1" || currentSize != 10 {
				stream.WriteString("/F1 10 Tf\n")
				currentFont = "F1"
				currentSize = 10
			}
		}

		stream.WriteString(fmt.Sprintf("(%s) Tj\n", s.escapePDFString(line)))

		if line == "" {
			stream.WriteString("0 -8 Td\n")
		} else {
			stream.WriteString("0 -14 Td\n")
		}
	}

	stream.WriteString("ET\n")
	return stream.String()
}

// escapePDFString escapes the characters PDF string literals treat specially
func (s *ReceiptService) escapePDFString(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "(", "\\(")
	text = strings.ReplaceAll(text, ")", "\\)")
	return text
}
