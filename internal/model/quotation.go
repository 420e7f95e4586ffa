package model

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// LineItem is one billable entry within a quotation. Immutable once added;
// ordering is display-relevant only.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (li LineItem) Amount() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

type DiscountSpec struct {
	Value float64      `json:"value"`
	Type  DiscountType `json:"type"`
}

type TaxSpec struct {
	Rate float64 `json:"rate"`
}

// QuotationBreakdown is derived from line items + discount + tax and never
// persisted independently of its inputs.
type QuotationBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
}

type Quotation struct {
	ID              uuid.UUID    `json:"id"`
	QuoteRequestID  uuid.UUID    `json:"quote_request_id"`
	QuotationNumber string       `json:"quotation_number"`
	Revision        int          `json:"revision"`
	DateIssued      time.Time    `json:"date_issued"`
	ValidUntil      time.Time    `json:"valid_until"`
	LineItems       []LineItem   `json:"line_items"`
	Discount        DiscountSpec `json:"discount"`
	Tax             TaxSpec      `json:"tax"`
	Subtotal        float64      `json:"subtotal"`
	DiscountAmount  float64      `json:"discount_amount"`
	TaxAmount       float64      `json:"tax_amount"`
	Total           float64      `json:"total"`
	PaymentTerms    string       `json:"payment_terms"`
	Notes           string       `json:"notes"`
	ClientName      string       `json:"client_name"`
	ClientEmail     string       `json:"client_email"`
	ClientPhone     string       `json:"client_phone"`
	University      string       `json:"university"`
	Course          string       `json:"course"`
	ProjectType     string       `json:"project_type"`
	Description     string       `json:"description"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (q Quotation) Breakdown() QuotationBreakdown {
	return QuotationBreakdown{
		Subtotal:       q.Subtotal,
		DiscountAmount: q.DiscountAmount,
		TaxAmount:      q.TaxAmount,
		Total:          q.Total,
	}
}

// CompanyInfo is the issuer identity printed on every quotation document.
// Injected from configuration, never hardcoded in the renderer.
type CompanyInfo struct {
	Name    string
	Tagline string
	Email   string
	Phone   string
	Address string
	Website string
}

// QuotationDocument bundles everything the PDF renderer needs for one artifact.
type QuotationDocument struct {
	Quotation Quotation
	Breakdown QuotationBreakdown
	Company   CompanyInfo
	Terms     []string
}
