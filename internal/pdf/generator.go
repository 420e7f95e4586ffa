package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

var (
	ErrNonPositiveTotal = errors.New("quotation total must be positive")
	ErrMissingIdentity  = errors.New("quotation number, client name and client email are required")
)

// RenderError wraps a failure while producing or writing the document. Callers
// must treat any render error as "no artifact produced".
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render quotation (%s): %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	maxY         = pageHeight - marginBottom

	lineHeight = 5.0
	rowHeight  = 8.0
	boxGap     = 5.0
	boxWidth   = (contentWidth - boxGap) / 2
)

const fontName = "Helvetica"

type Generator struct {
	currency string
}

func NewGenerator(currencyPrefix string) *Generator {
	return &Generator{currency: currencyPrefix}
}

// Generate lays out the quotation into a paginated A4 document and returns the
// PDF bytes. Each block checks its required height against the remaining page
// space before drawing and starts a new page if it cannot begin on the current
// one; table rows break per-row so no row is split across pages.
func (g *Generator) Generate(doc model.QuotationDocument) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	g.drawHeader(pdf, doc.Company)
	g.drawTitleAndInfoBoxes(pdf, doc.Quotation)
	g.drawProjectInfo(pdf, doc.Quotation)
	g.drawLineItemTable(pdf, doc.Quotation.LineItems)
	g.drawTotals(pdf, doc.Breakdown)
	g.drawWrappedBlock(pdf, "Payment Terms", doc.Quotation.PaymentTerms)
	if strings.TrimSpace(doc.Quotation.Notes) != "" {
		g.drawWrappedBlock(pdf, "Notes", doc.Quotation.Notes)
	}
	g.drawTerms(pdf, doc.Terms)
	g.drawFooter(pdf, doc.Company)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Stage: "output", Err: err}
	}
	return buf.Bytes(), nil
}

// Render writes the completed document to the caller-supplied sink. Nothing is
// written unless the whole document rendered successfully.
func (g *Generator) Render(doc model.QuotationDocument, w io.Writer) error {
	content, err := g.Generate(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return &RenderError{Stage: "write", Err: err}
	}
	return nil
}

func validateDocument(doc model.QuotationDocument) error {
	if doc.Breakdown.Total <= 0 {
		return ErrNonPositiveTotal
	}
	q := doc.Quotation
	if strings.TrimSpace(q.QuotationNumber) == "" ||
		strings.TrimSpace(q.ClientName) == "" ||
		strings.TrimSpace(q.ClientEmail) == "" {
		return ErrMissingIdentity
	}
	return nil
}

func (g *Generator) drawHeader(pdf *gofpdf.Fpdf, company model.CompanyInfo) {
	pdf.SetFont(fontName, "B", 18)
	pdf.SetTextColor(30, 60, 120)
	pdf.CellFormat(0, 10, company.Name, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont(fontName, "", 9)
	if company.Tagline != "" {
		pdf.CellFormat(0, 5, company.Tagline, "", 1, "L", false, 0, "")
	}
	contact := joinNonEmpty(" | ", company.Email, company.Phone, company.Website)
	if contact != "" {
		pdf.CellFormat(0, 5, contact, "", 1, "L", false, 0, "")
	}
	if company.Address != "" {
		pdf.CellFormat(0, 5, company.Address, "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetDrawColor(30, 60, 120)
	pdf.Line(marginLeft, pdf.GetY(), pageWidth-marginRight, pdf.GetY())
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(4)
}

func (g *Generator) drawTitleAndInfoBoxes(pdf *gofpdf.Fpdf, q model.Quotation) {
	pdf.SetFont(fontName, "B", 15)
	pdf.CellFormat(0, 10, "QUOTATION", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	left := []infoLine{
		{"Quotation No", q.QuotationNumber},
		{"Date Issued", formatDate(q.DateIssued)},
		{"Valid Until", formatDate(q.ValidUntil)},
		{"Revision", fmt.Sprintf("%d", q.Revision)},
	}
	right := []infoLine{
		{"Client", q.ClientName},
		{"Email", q.ClientEmail},
		{"Phone", safeValue(q.ClientPhone)},
		{"University", safeValue(q.University)},
		{"Course", safeValue(q.Course)},
	}

	startY := pdf.GetY()
	leftH := drawInfoBox(pdf, marginLeft, startY, "Quotation Details", left)
	rightH := drawInfoBox(pdf, marginLeft+boxWidth+boxGap, startY, "Client Details", right)

	tallest := leftH
	if rightH > tallest {
		tallest = rightH
	}
	pdf.SetXY(marginLeft, startY+tallest+4)
}

type infoLine struct {
	label string
	value string
}

func drawInfoBox(pdf *gofpdf.Fpdf, x, y float64, title string, lines []infoLine) float64 {
	height := 8 + float64(len(lines))*lineHeight + 3

	pdf.SetFillColor(245, 247, 250)
	pdf.Rect(x, y, boxWidth, height, "F")

	pdf.SetXY(x+3, y+2)
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(boxWidth-6, 6, title, "", 2, "L", false, 0, "")

	pdf.SetFont(fontName, "", 9)
	for _, line := range lines {
		pdf.SetX(x + 3)
		pdf.CellFormat(26, lineHeight, line.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(boxWidth-6-26, lineHeight, line.value, "", 2, "L", false, 0, "")
	}
	return height
}

func (g *Generator) drawProjectInfo(pdf *gofpdf.Fpdf, q model.Quotation) {
	pdf.SetFont(fontName, "", 9)
	descLines := pdf.SplitText(safeValue(q.Description), contentWidth)
	required := 8 + lineHeight + float64(len(descLines))*lineHeight + 4
	ensureSpace(pdf, required)

	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 8, "Project Information", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	pdf.CellFormat(0, lineHeight, fmt.Sprintf("Project Type: %s", safeValue(q.ProjectType)), "", 1, "L", false, 0, "")
	pdf.MultiCell(contentWidth, lineHeight, safeValue(q.Description), "", "L", false)
	pdf.Ln(4)
}

func (g *Generator) drawLineItemTable(pdf *gofpdf.Fpdf, items []model.LineItem) {
	// The table must at least start on the current page: header plus one row.
	ensureSpace(pdf, rowHeight*2)

	widths := []float64{95, 20, 32, 33}
	g.drawTableHeader(pdf, widths)

	pdf.SetFont(fontName, "", 9)
	for i, item := range items {
		if pdf.GetY()+rowHeight > maxY {
			pdf.AddPage()
			g.drawTableHeader(pdf, widths)
			pdf.SetFont(fontName, "", 9)
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 247, 250)
		pdf.CellFormat(widths[0], rowHeight, item.Description, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[2], rowHeight, g.money(item.UnitPrice), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[3], rowHeight, g.money(item.Amount()), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

func (g *Generator) drawTableHeader(pdf *gofpdf.Fpdf, widths []float64) {
	pdf.SetFont(fontName, "B", 9)
	pdf.SetFillColor(30, 60, 120)
	pdf.SetTextColor(255, 255, 255)
	headers := []string{"Description", "Qty", "Unit Price", "Amount"}
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], rowHeight, header, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func (g *Generator) drawTotals(pdf *gofpdf.Fpdf, breakdown model.QuotationBreakdown) {
	rows := 2 // subtotal + total
	if breakdown.DiscountAmount > 0 {
		rows++
	}
	if breakdown.TaxAmount > 0 {
		rows++
	}
	ensureSpace(pdf, float64(rows)*7+4)

	labelX := marginLeft + contentWidth - 80

	totalRow := func(label, value string, emphasis bool) {
		pdf.SetX(labelX)
		if emphasis {
			pdf.SetFont(fontName, "B", 11)
			pdf.SetFillColor(30, 60, 120)
			pdf.SetTextColor(255, 255, 255)
			pdf.CellFormat(45, 7, label, "", 0, "L", true, 0, "")
			pdf.CellFormat(35, 7, value, "", 1, "R", true, 0, "")
			pdf.SetTextColor(0, 0, 0)
			return
		}
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, value, "", 1, "R", false, 0, "")
	}

	totalRow("Subtotal", g.money(breakdown.Subtotal), false)
	if breakdown.DiscountAmount > 0 {
		totalRow("Discount", "-"+g.money(breakdown.DiscountAmount), false)
	}
	if breakdown.TaxAmount > 0 {
		totalRow("Tax", g.money(breakdown.TaxAmount), false)
	}
	totalRow("Total", g.money(breakdown.Total), true)
	pdf.Ln(4)
}

func (g *Generator) drawWrappedBlock(pdf *gofpdf.Fpdf, title, body string) {
	pdf.SetFont(fontName, "", 9)
	lines := pdf.SplitText(safeValue(body), contentWidth)
	required := 8 + float64(len(lines))*lineHeight + 4
	ensureSpace(pdf, required)

	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	pdf.MultiCell(contentWidth, lineHeight, safeValue(body), "", "L", false)
	pdf.Ln(4)
}

func (g *Generator) drawTerms(pdf *gofpdf.Fpdf, terms []string) {
	if len(terms) == 0 {
		return
	}

	pdf.SetFont(fontName, "", 8)
	required := 8.0
	for _, term := range terms {
		lines := pdf.SplitText(term, contentWidth-8)
		required += float64(len(lines)) * 4.5
	}
	ensureSpace(pdf, required+4)

	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 8, "Terms & Conditions", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 8)
	for i, term := range terms {
		pdf.CellFormat(8, 4.5, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		pdf.MultiCell(contentWidth-8, 4.5, term, "", "L", false)
	}
	pdf.Ln(4)
}

func (g *Generator) drawFooter(pdf *gofpdf.Fpdf, company model.CompanyInfo) {
	ensureSpace(pdf, lineHeight*2+2)
	pdf.SetFont(fontName, "I", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, lineHeight, "Thank you for considering "+company.Name+".", "", 1, "C", false, 0, "")
	contact := joinNonEmpty(" | ", company.Email, company.Phone)
	if contact != "" {
		pdf.CellFormat(0, lineHeight, contact, "", 1, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// ensureSpace starts a new page when the next block cannot begin within the
// usable area of the current one.
func ensureSpace(pdf *gofpdf.Fpdf, required float64) {
	if pdf.GetY()+required > maxY {
		pdf.AddPage()
	}
}

func (g *Generator) money(value float64) string {
	return fmt.Sprintf("%s%.2f", g.currency, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2 January 2006")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, sep)
}
