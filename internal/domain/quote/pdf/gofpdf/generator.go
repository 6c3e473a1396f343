// Package gofpdf renders quotes as fixed-layout A4 documents: a branded
// header band and footer band on every page, the client block and metadata
// box on page one, a banded items table that flows across pages, a total row
// and an optional notes block.
package gofpdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"brasilup/salesflow/internal/domain/money"
	"brasilup/salesflow/internal/domain/quote"
)

const (
	pageWidth    = 210.0
	headerHeight = 42.0
	marginX      = 15.0
	bodyTop      = 52.0

	colDescription = 80.0
	colQuantity    = 30.0
	colUnitPrice   = 35.0
	colLineTotal   = 35.0
	rowHeight      = 9.0
	totalRowHeight = 11.0

	// rows that would cross this line move to a fresh page, keeping clear of
	// the footer band
	tableBreakY = 260.0
)

type Generator struct {
	logoPath string
}

// New builds a renderer. logoPath may be empty or point at a missing file; in
// both cases the header falls back to a text rendering of the company name.
func New(logoPath string) *Generator {
	return &Generator{logoPath: logoPath}
}

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Cotacao "+q.Number), false)
	// pin the document clock to the issue date so identical quotes produce
	// byte-identical files
	pdf.SetCreationDate(q.IssueDate.Time)
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetHeaderFunc(func() { g.drawHeader(pdf, tr, q) })
	pdf.SetFooterFunc(func() { drawFooter(pdf, tr, q) })

	pdf.AddPage()
	drawIdentity(pdf, tr, q)
	drawInfoBox(pdf, tr, q)
	endY := drawItems(pdf, tr, q)
	drawNotes(pdf, tr, q, endY)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	pdf.SetFillColor(232, 244, 252)
	pdf.Rect(0, 0, pageWidth, headerHeight, "F")
	pdf.SetFillColor(30, 90, 138)
	pdf.Rect(0, headerHeight, pageWidth, 2, "F")

	if g.logoUsable() {
		pdf.ImageOptions(g.logoPath, 145, 8, 50, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(30, 90, 138)
		pdf.SetXY(105, 14)
		pdf.CellFormat(90, 8, tr(q.Company.Name), "", 0, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(30, 90, 138)
	pdf.SetXY(marginX, 18)
	pdf.CellFormat(100, 6, tr(q.Company.Slogan), "", 0, "L", false, 0, "")
}

func (g *Generator) logoUsable() bool {
	if g.logoPath == "" {
		return false
	}
	_, err := os.Stat(g.logoPath)
	return err == nil
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	pdf.SetY(-25)
	top := pdf.GetY()
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(0, top, pageWidth, 30, "F")
	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(0, top, pageWidth, top)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(30, 90, 138)
	pdf.SetXY(0, -22)
	pdf.CellFormat(0, 4, tr(q.Company.Site), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(75, 85, 99)
	if q.Company.Email != "" {
		pdf.SetXY(0, -17)
		pdf.CellFormat(0, 4, tr(q.Company.Email), "", 0, "C", false, 0, "")
	}
	pdf.SetXY(0, -13)
	pdf.CellFormat(0, 4, tr(q.Company.Address), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(156, 163, 175)
	pdf.SetXY(0, -8)
	pdf.CellFormat(0, 4, fmt.Sprintf("Pagina %d", pdf.PageNo()), "", 0, "C", false, 0, "")
}

func drawIdentity(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 90, 138)
	pdf.SetXY(marginX, bodyTop)
	pdf.CellFormat(180, 8, tr("Cotacao n. "+q.Number), "", 0, "R", false, 0, "")

	pdf.SetXY(marginX, bodyTop)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(100, 6, tr(q.Client.Name), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(75, 85, 99)
	pdf.SetXY(marginX, bodyTop+7)
	pdf.CellFormat(100, 5, tr(q.Client.Address), "", 0, "L", false, 0, "")
	pdf.SetXY(marginX, bodyTop+12)
	pdf.CellFormat(100, 5, tr(q.Client.City+" "+q.Client.State), "", 0, "L", false, 0, "")
	pdf.SetXY(marginX, bodyTop+17)
	pdf.CellFormat(100, 5, q.Client.PostalCode, "", 0, "L", false, 0, "")
	pdf.SetXY(marginX, bodyTop+22)
	pdf.CellFormat(100, 5, "Brasil", "", 0, "L", false, 0, "")

	pdf.SetXY(marginX, bodyTop+28)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(20, 5, "CPF/CNPJ:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(80, 5, q.Client.TaxID, "", 0, "L", false, 0, "")
}

func drawInfoBox(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	top := bodyTop + 40
	pdf.SetFillColor(248, 250, 252)
	pdf.SetDrawColor(226, 232, 240)
	pdf.Rect(marginX, top, 180, 16, "FD")

	infoField(pdf, tr, 20, top+2, 55, "DATA DA COTACAO", q.IssueDate.String())
	infoField(pdf, tr, 80, top+2, 55, "EXPIRACAO", q.Expiration.String())
	infoField(pdf, tr, 140, top+2, 50, "VENDEDOR", q.Salesperson)
}

func infoField(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w float64, label, value string) {
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(w, 4, label, "", 0, "L", false, 0, "")

	pdf.SetXY(x, y+5)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(w, 5, tr(value), "", 0, "L", false, 0, "")
}

func drawTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(30, 90, 138)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetX(marginX)
	pdf.CellFormat(colDescription, rowHeight, "  DESCRICAO", "", 0, "L", true, 0, "")
	pdf.CellFormat(colQuantity, rowHeight, "QUANTIDADE", "", 0, "C", true, 0, "")
	pdf.CellFormat(colUnitPrice, rowHeight, "PRECO UNIT.", "", 0, "C", true, 0, "")
	pdf.CellFormat(colLineTotal, rowHeight, "VALOR", "", 1, "C", true, 0, "")
}

// drawItems lays out the banded item rows, flowing onto continuation pages
// with the table header repeated, then the inverted total row. Returns the Y
// position after the total row.
func drawItems(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) float64 {
	pdf.SetY(bodyTop + 58)
	drawTableHeader(pdf)

	setRowStyle := func() {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(55, 65, 81)
	}
	setRowStyle()

	for i, item := range q.Items {
		if pdf.GetY()+rowHeight > tableBreakY {
			pdf.AddPage()
			pdf.SetY(bodyTop)
			drawTableHeader(pdf)
			setRowStyle()
		}
		if i%2 == 0 {
			pdf.SetFillColor(248, 250, 252)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(marginX)
		pdf.CellFormat(colDescription, rowHeight, tr("  "+item.Description), "", 0, "L", true, 0, "")
		pdf.CellFormat(colQuantity, rowHeight, fmt.Sprintf("%d Un", item.Quantity), "", 0, "C", true, 0, "")
		pdf.CellFormat(colUnitPrice, rowHeight, money.FormatBRL(item.UnitPrice), "", 0, "C", true, 0, "")
		pdf.CellFormat(colLineTotal, rowHeight, money.FormatBRL(item.LineTotal), "", 1, "C", true, 0, "")
	}

	if pdf.GetY()+totalRowHeight > tableBreakY {
		pdf.AddPage()
		pdf.SetY(bodyTop)
	}
	pdf.SetFillColor(30, 90, 138)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginX)
	pdf.CellFormat(colDescription+colQuantity+colUnitPrice, totalRowHeight, "TOTAL", "", 0, "R", true, 0, "")
	pdf.CellFormat(colLineTotal, totalRowHeight, money.FormatBRL(q.Total), "", 1, "C", true, 0, "")
	return pdf.GetY()
}

func drawNotes(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote, y float64) {
	if q.Notes == "" {
		return
	}
	y += 8
	if y+20 > tableBreakY {
		pdf.AddPage()
		y = bodyTop
	}
	pdf.SetY(y)

	pdf.SetFillColor(255, 251, 235)
	pdf.SetDrawColor(245, 158, 11)
	pdf.SetTextColor(146, 64, 14)

	pdf.SetX(marginX)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(180, 7, "  INFORMACOES IMPORTANTES", "LTR", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetX(marginX)
	pdf.MultiCell(180, 5, tr("  "+q.Notes), "LBR", "L", true)
}
