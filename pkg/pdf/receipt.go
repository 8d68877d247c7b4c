package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/alisinasultani/citycenter-api/internal/ledger"
)

// Header is the building identity printed at the top of every receipt.
type Header struct {
	CompanyName string
	Address     string
	Phone       string
	FooterNote  string
}

// ReceiptRenderer renders ledger receipts as A5 PDF documents.
type ReceiptRenderer struct {
	fontPath string
	fontName string
}

// NewReceiptRenderer creates a renderer. fontPath may point at a TTF with
// Arabic script coverage; when empty the built-in Helvetica is used, which
// renders the numeric fields but not the Persian labels.
func NewReceiptRenderer(fontPath, fontName string) *ReceiptRenderer {
	if fontName == "" {
		fontName = "Receipt"
	}
	return &ReceiptRenderer{fontPath: fontPath, fontName: fontName}
}

func (r *ReceiptRenderer) font(pdf *gofpdf.Fpdf) string {
	if r.fontPath == "" {
		return "Helvetica"
	}
	pdf.AddUTF8Font(r.fontName, "", r.fontPath)
	return r.fontName
}

// Render lays out one receipt and returns the PDF bytes.
func (r *ReceiptRenderer) Render(header Header, receipt *ledger.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	font := r.font(pdf)

	pdf.SetFont(font, "", 18)
	pdf.CellFormat(0, 12, header.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont(font, "", 10)
	if header.Address != "" {
		pdf.CellFormat(0, 6, header.Address, "", 1, "C", false, 0, "")
	}
	if header.Phone != "" {
		pdf.CellFormat(0, 6, header.Phone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(font, "", 11)
	row := func(label, value string) {
		pdf.CellFormat(50, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, value, "1", 1, "R", false, 0, "")
	}

	row("Bill No", receipt.BillNumber)
	row("Period", receipt.PeriodLabel)
	row("Name", receipt.PayeeName)
	if receipt.FatherName != "" {
		row("Father Name", receipt.FatherName)
	}
	if receipt.Unit != "" {
		row("Unit", receipt.Unit)
	}
	pdf.Ln(4)

	row("Total", fmt.Sprintf("%.0f", receipt.Charge))
	row("Paid", fmt.Sprintf("%.0f", receipt.Taken))
	row("Balance", fmt.Sprintf("%.0f", receipt.Remainder))

	if receipt.Description != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, receipt.Description, "", "L", false)
	}

	if header.FooterNote != "" {
		pdf.Ln(8)
		pdf.SetFont(font, "", 9)
		pdf.CellFormat(0, 6, header.FooterNote, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
