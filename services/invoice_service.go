package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var taxRate = decimal.RequireFromString("0.10")

// InvoiceService renders a PDF invoice for a completed order. It is a
// pure read over the order snapshot: totals come from the attached
// cart line prices, so the document is stable no matter how the
// catalog changes afterwards.
type InvoiceService struct {
	Repo *repository.OrderRepository
	Dir  string
}

func NewInvoiceService(repo *repository.OrderRepository, dir string) *InvoiceService {
	return &InvoiceService{Repo: repo, Dir: dir}
}

type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// Totals computes the invoice amounts from the snapshotted line prices.
func Totals(items []entity.CartItem) InvoiceTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price)
	}
	tax := subtotal.Mul(taxRate)
	return InvoiceTotals{Subtotal: subtotal, Tax: tax, GrandTotal: subtotal.Add(tax)}
}

// InvoiceNumber is derived from the order id, so regenerating an
// invoice yields the same number every time.
func InvoiceNumber(orderID uint) string {
	return fmt.Sprintf("INV-%06d", orderID)
}

// Generate writes invoice-<orderID>.pdf under the configured directory
// and returns its path. Repeated calls rewrite the same file with the
// same totals.
func (s *InvoiceService) Generate(orderID uint) (string, error) {
	o, err := s.Repo.GetWithInvoiceData(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("order not found")
		}
		return "", apperr.Internal("load order", err)
	}
	if o.Restaurant.ID == 0 {
		return "", apperr.NotFound("restaurant not found")
	}
	if len(o.Items) == 0 {
		return "", apperr.NotFound("order has no line items")
	}

	totals := Totals(o.Items)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", apperr.Internal("create invoice dir", err)
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("invoice-%d.pdf", o.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Invoice No: "+InvoiceNumber(o.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Restaurant block
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Restaurant: "+o.Restaurant.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Address: "+o.Restaurant.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Phone: "+o.Restaurant.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Order metadata
	pdf.CellFormat(0, 6, fmt.Sprintf("Order ID: %d", o.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+o.CreatedAt.Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+string(o.Status), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Delivery Address: "+o.DeliveryAddress, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Item table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, it := range o.Items {
		// Unit price derived from the snapshot, so the document never
		// drifts when the catalog is repriced.
		unit := it.Price.Div(decimal.NewFromInt(int64(it.Quantity)))
		pdf.CellFormat(90, 7, it.MenuItem.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "$"+unit.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "$"+it.Price.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Subtotal: $"+totals.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Tax (10%): $"+totals.Tax.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Total: $"+totals.GrandTotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Payment info
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Payment Method: "+string(o.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Payment Status: "+string(o.PaymentStatus), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Footer
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Thank you for your order!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "For support, contact us at support@sryzen.com", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", apperr.Internal("write invoice", err)
	}
	return path, nil
}
