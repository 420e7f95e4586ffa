package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/config"
	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
	"github.com/Talent5/zimscholar-projects-sub000/internal/pricing"
)

type PDFGenerator interface {
	Generate(doc model.QuotationDocument) ([]byte, error)
}

// QuotationStore is the persistence surface the service needs; satisfied by
// repository.QuotationRepository.
type QuotationStore interface {
	Create(ctx context.Context, quotation model.Quotation) (*model.Quotation, error)
	Update(ctx context.Context, quotation model.Quotation) (*model.Quotation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error)
	GetByQuoteRequest(ctx context.Context, quoteRequestID uuid.UUID) (*model.Quotation, error)
	List(ctx context.Context) ([]model.Quotation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuoteRequestStore is the slice of the inquiry repository the service reads
// client details from.
type QuoteRequestStore interface {
	GetQuoteRequest(ctx context.Context, id uuid.UUID) (*model.QuoteRequest, error)
}

type QuotationService struct {
	quotations QuotationStore
	inquiries  QuoteRequestStore
	pdf        PDFGenerator
	cfg        *config.Config
	now        func() time.Time
}

func NewQuotationService(
	quotations QuotationStore,
	inquiries QuoteRequestStore,
	pdf PDFGenerator,
	cfg *config.Config,
) *QuotationService {
	return &QuotationService{
		quotations: quotations,
		inquiries:  inquiries,
		pdf:        pdf,
		cfg:        cfg,
		now:        time.Now,
	}
}

type LineItemInput struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

type QuotationInput struct {
	LineItems     []LineItemInput
	DiscountValue float64
	DiscountType  string
	TaxRate       float64
	ValidityDays  int
	PaymentTerms  string
	Notes         string
	Principal     model.Principal
}

type QuotationArtifact struct {
	FileName string
	Content  []byte
}

// Generate creates the quotation for a quote request: line items are filtered
// and priced, a quotation number is assigned, and the store moves the quote
// request to QUOTED atomically with the insert. The PDF itself is produced on
// demand via RenderPDF.
func (s *QuotationService) Generate(ctx context.Context, quoteRequestID uuid.UUID, input QuotationInput) (*model.Quotation, error) {
	if !(input.Principal.IsAdmin() || input.Principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if quoteRequestID == uuid.Nil {
		return nil, fmt.Errorf("%w: quote_request_id is required", ErrInvalidInput)
	}

	request, err := s.inquiries.GetQuoteRequest(ctx, quoteRequestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, discount, tax, err := s.normalize(input)
	if err != nil {
		return nil, err
	}
	breakdown, err := pricing.Calculate(items, discount, tax)
	if err != nil {
		return nil, err
	}

	issued := dateOnly(s.now())
	validityDays := input.ValidityDays
	if validityDays <= 0 {
		validityDays = s.cfg.Quotation.ValidityDays
	}
	paymentTerms := strings.TrimSpace(input.PaymentTerms)
	if paymentTerms == "" {
		paymentTerms = s.cfg.Quotation.DefaultPaymentTerms
	}

	quotation := model.Quotation{
		QuoteRequestID:  request.ID,
		QuotationNumber: newQuotationNumber(s.cfg.Quotation.NumberPrefix, issued),
		Revision:        1,
		DateIssued:      issued,
		ValidUntil:      issued.AddDate(0, 0, validityDays),
		LineItems:       pricing.FilterItems(items),
		Discount:        discount,
		Tax:             tax,
		Subtotal:        breakdown.Subtotal,
		DiscountAmount:  breakdown.DiscountAmount,
		TaxAmount:       breakdown.TaxAmount,
		Total:           breakdown.Total,
		PaymentTerms:    paymentTerms,
		Notes:           strings.TrimSpace(input.Notes),
		ClientName:      request.ClientName,
		ClientEmail:     request.ClientEmail,
		ClientPhone:     request.ClientPhone,
		University:      request.University,
		Course:          request.Course,
		ProjectType:     request.ProjectType,
		Description:     request.Description,
	}

	return s.quotations.Create(ctx, quotation)
}

// Edit recomputes the breakdown from the submitted inputs and persists a new
// revision. The quotation number never changes on edit.
func (s *QuotationService) Edit(ctx context.Context, id uuid.UUID, input QuotationInput) (*model.Quotation, error) {
	if !(input.Principal.IsAdmin() || input.Principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}

	existing, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, discount, tax, err := s.normalize(input)
	if err != nil {
		return nil, err
	}
	breakdown, err := pricing.Calculate(items, discount, tax)
	if err != nil {
		return nil, err
	}

	issued := dateOnly(s.now())
	validityDays := input.ValidityDays
	if validityDays <= 0 {
		validityDays = s.cfg.Quotation.ValidityDays
	}
	paymentTerms := strings.TrimSpace(input.PaymentTerms)
	if paymentTerms == "" {
		paymentTerms = existing.PaymentTerms
	}

	updated := *existing
	updated.DateIssued = issued
	updated.ValidUntil = issued.AddDate(0, 0, validityDays)
	updated.LineItems = pricing.FilterItems(items)
	updated.Discount = discount
	updated.Tax = tax
	updated.Subtotal = breakdown.Subtotal
	updated.DiscountAmount = breakdown.DiscountAmount
	updated.TaxAmount = breakdown.TaxAmount
	updated.Total = breakdown.Total
	updated.PaymentTerms = paymentTerms
	updated.Notes = strings.TrimSpace(input.Notes)

	saved, err := s.quotations.Update(ctx, updated)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *QuotationService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	err := s.quotations.Delete(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}

func (s *QuotationService) Get(ctx context.Context, id uuid.UUID) (*model.Quotation, error) {
	quotation, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return quotation, nil
}

func (s *QuotationService) GetByQuoteRequest(ctx context.Context, quoteRequestID uuid.UUID) (*model.Quotation, error) {
	quotation, err := s.quotations.GetByQuoteRequest(ctx, quoteRequestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return quotation, nil
}

func (s *QuotationService) List(ctx context.Context) ([]model.Quotation, error) {
	return s.quotations.List(ctx)
}

// RenderPDF produces the downloadable document for a stored quotation.
func (s *QuotationService) RenderPDF(ctx context.Context, id uuid.UUID) (*QuotationArtifact, error) {
	quotation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := model.QuotationDocument{
		Quotation: *quotation,
		Breakdown: quotation.Breakdown(),
		Company: model.CompanyInfo{
			Name:    s.cfg.Company.Name,
			Tagline: s.cfg.Company.Tagline,
			Email:   s.cfg.Company.Email,
			Phone:   s.cfg.Company.Phone,
			Address: s.cfg.Company.Address,
			Website: s.cfg.Company.Website,
		},
		Terms: s.cfg.Quotation.Terms,
	}

	content, err := s.pdf.Generate(doc)
	if err != nil {
		return nil, err
	}
	return &QuotationArtifact{
		FileName: buildFileName(quotation.QuotationNumber),
		Content:  content,
	}, nil
}

func (s *QuotationService) normalize(input QuotationInput) ([]model.LineItem, model.DiscountSpec, model.TaxSpec, error) {
	if input.DiscountValue < 0 {
		return nil, model.DiscountSpec{}, model.TaxSpec{}, fmt.Errorf("%w: discount value must not be negative", ErrInvalidInput)
	}
	if input.TaxRate < 0 {
		return nil, model.DiscountSpec{}, model.TaxSpec{}, fmt.Errorf("%w: tax rate must not be negative", ErrInvalidInput)
	}

	discountType := model.DiscountTypePercentage
	switch strings.ToLower(strings.TrimSpace(input.DiscountType)) {
	case "", "percentage":
	case "fixed":
		discountType = model.DiscountTypeFixed
	default:
		return nil, model.DiscountSpec{}, model.TaxSpec{}, fmt.Errorf("%w: invalid discount type", ErrInvalidInput)
	}

	items := make([]model.LineItem, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		items = append(items, model.LineItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return items,
		model.DiscountSpec{Value: input.DiscountValue, Type: discountType},
		model.TaxSpec{Rate: input.TaxRate},
		nil
}

func buildFileName(quotationNumber string) string {
	return fmt.Sprintf("quotation-%s.pdf", sanitizeFileName(quotationNumber))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
