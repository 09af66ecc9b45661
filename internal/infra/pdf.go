package infra

// pdf.go generates the printable A4 invoice document with go-pdf/fpdf:
// company header, invoice number and dates, customer block, line item
// table, then subtotal / tax / discount / total.
//
// The output file is saved to storagePath/{invoice_number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mturke1996/al-fahed/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateInvoicePDF renders inv as an A4 PDF. The invoice must be hydrated
// with its Sale (including Items and their Products) and Customer.
// Returns the absolute path of the written file.
func GenerateInvoicePDF(inv *model.Invoice, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(storagePath, inv.InvoiceNumber+".pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "Al-Fahed Engineering Supplies", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 5, "Sales Invoice", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Invoice info
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW/2, 6, inv.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 6, "Issued: "+inv.CreatedAt.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Status: "+inv.Status, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Due: "+inv.DueDate.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Customer block
	if inv.Customer != nil {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Bill To", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, inv.Customer.Name, "", 1, "L", false, 0, "")
		if inv.Customer.Company != nil {
			pdf.CellFormat(contentW, 5, *inv.Customer.Company, "", 1, "L", false, 0, "")
		}
		if inv.Customer.Address != nil {
			pdf.CellFormat(contentW, 5, *inv.Customer.Address, "", 1, "L", false, 0, "")
		}
		if inv.Customer.TaxNumber != nil {
			pdf.CellFormat(contentW, 5, "Tax No. "+*inv.Customer.TaxNumber, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// Items table
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.20 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if inv.Sale != nil {
		for _, item := range inv.Sale.Items {
			name := ""
			if item.Product != nil {
				name = item.Product.Name
			}
			if len(name) > 40 {
				name = name[:39] + "…"
			}
			pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 6, item.Price.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(col4, 6, item.Total.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// Totals
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1+col2+col3, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, inv.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2+col3, 6, "Tax:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, inv.Tax.StringFixed(2), "", 1, "R", false, 0, "")
	if !inv.Discount.IsZero() {
		pdf.CellFormat(col1+col2+col3, 6, "Discount:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "-"+inv.Discount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, inv.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if inv.Notes != nil && *inv.Notes != "" {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, *inv.Notes, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
