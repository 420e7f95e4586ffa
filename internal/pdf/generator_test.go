package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

func sampleDocument(itemCount int) model.QuotationDocument {
	issued := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	items := make([]model.LineItem, 0, itemCount)
	var subtotal float64
	for i := 0; i < itemCount; i++ {
		item := model.LineItem{
			Description: fmt.Sprintf("Milestone %d deliverable", i+1),
			Quantity:    1,
			UnitPrice:   50,
		}
		items = append(items, item)
		subtotal += item.Amount()
	}

	return model.QuotationDocument{
		Quotation: model.Quotation{
			QuotationNumber: "ZSP-202501-0042",
			Revision:        1,
			DateIssued:      issued,
			ValidUntil:      issued.AddDate(0, 0, 30),
			LineItems:       items,
			ClientName:      "Tariro Moyo",
			ClientEmail:     "tariro@example.com",
			ClientPhone:     "+263 77 000 0000",
			University:      "University of Zimbabwe",
			Course:          "BSc Computer Science",
			ProjectType:     "Final Year Project",
			Description:     "Inventory management system with reporting dashboard.",
			PaymentTerms:    "50% deposit on acceptance, balance on delivery.",
			Notes:           "Includes two revision rounds.",
		},
		Breakdown: model.QuotationBreakdown{
			Subtotal: subtotal,
			Total:    subtotal,
		},
		Company: model.CompanyInfo{
			Name:  "ZimScholar Projects",
			Email: "hello@zimscholar.co.zw",
			Phone: "+263 71 111 1111",
		},
		Terms: []string{
			"This quotation is valid until the date stated above.",
			"Work begins once the deposit has been received.",
		},
	}
}

// countPages counts page objects in the raw PDF; the page-tree object also
// matches "/Type /Page" so it is subtracted out.
func countPages(content []byte) int {
	return bytes.Count(content, []byte("/Type /Page")) - bytes.Count(content, []byte("/Type /Pages"))
}

func TestGenerateProducesSinglePagePDF(t *testing.T) {
	g := NewGenerator("$")

	content, err := g.Generate(sampleDocument(3))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	assert.Equal(t, 1, countPages(content))
}

func TestGenerateOverflowsToSecondPage(t *testing.T) {
	g := NewGenerator("$")

	content, err := g.Generate(sampleDocument(40))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, countPages(content), 2)
}

func TestGenerateRejectsNonPositiveTotal(t *testing.T) {
	g := NewGenerator("$")
	doc := sampleDocument(1)
	doc.Breakdown.Total = 0

	_, err := g.Generate(doc)
	require.ErrorIs(t, err, ErrNonPositiveTotal)
}

func TestGenerateRejectsMissingIdentity(t *testing.T) {
	g := NewGenerator("$")

	doc := sampleDocument(1)
	doc.Quotation.QuotationNumber = ""
	_, err := g.Generate(doc)
	require.ErrorIs(t, err, ErrMissingIdentity)

	doc = sampleDocument(1)
	doc.Quotation.ClientName = "   "
	_, err = g.Generate(doc)
	require.ErrorIs(t, err, ErrMissingIdentity)

	doc = sampleDocument(1)
	doc.Quotation.ClientEmail = ""
	_, err = g.Generate(doc)
	require.ErrorIs(t, err, ErrMissingIdentity)
}

func TestGenerateHandlesEmptyOptionalBlocks(t *testing.T) {
	g := NewGenerator("$")
	doc := sampleDocument(2)
	doc.Quotation.Notes = ""
	doc.Terms = nil

	content, err := g.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, countPages(content))
}

func TestRenderWritesToSink(t *testing.T) {
	g := NewGenerator("$")
	var sink bytes.Buffer

	err := g.Render(sampleDocument(2), &sink)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(sink.Bytes(), []byte("%PDF")))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWrapsSinkFailure(t *testing.T) {
	g := NewGenerator("$")

	err := g.Render(sampleDocument(2), failingWriter{})
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "write", renderErr.Stage)
}

func TestGenerateDeterministicLayoutAcrossCalls(t *testing.T) {
	g := NewGenerator("$")
	doc := sampleDocument(5)

	first, err := g.Generate(doc)
	require.NoError(t, err)
	second, err := g.Generate(doc)
	require.NoError(t, err)

	assert.Equal(t, countPages(first), countPages(second))
}
