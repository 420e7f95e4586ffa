package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/config"
	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type stubQuotationStore struct {
	existing *model.Quotation
	created  *model.Quotation
	updated  *model.Quotation
}

func (s *stubQuotationStore) Create(_ context.Context, quotation model.Quotation) (*model.Quotation, error) {
	s.created = &quotation
	saved := quotation
	saved.ID = uuid.New()
	return &saved, nil
}

// Update mirrors the store contract: the revision counter advances on every
// persisted update.
func (s *stubQuotationStore) Update(_ context.Context, quotation model.Quotation) (*model.Quotation, error) {
	s.updated = &quotation
	saved := quotation
	saved.Revision = quotation.Revision + 1
	return &saved, nil
}

func (s *stubQuotationStore) GetByID(_ context.Context, id uuid.UUID) (*model.Quotation, error) {
	if s.existing == nil || s.existing.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	found := *s.existing
	return &found, nil
}

func (s *stubQuotationStore) GetByQuoteRequest(_ context.Context, _ uuid.UUID) (*model.Quotation, error) {
	if s.existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	found := *s.existing
	return &found, nil
}

func (s *stubQuotationStore) List(_ context.Context) ([]model.Quotation, error) {
	return nil, nil
}

func (s *stubQuotationStore) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type stubQuoteRequestStore struct {
	request *model.QuoteRequest
}

func (s *stubQuoteRequestStore) GetQuoteRequest(_ context.Context, _ uuid.UUID) (*model.QuoteRequest, error) {
	if s.request == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.request, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Quotation: config.QuotationConfig{
			NumberPrefix:        "ZSP",
			CurrencyPrefix:      "$",
			ValidityDays:        30,
			DefaultPaymentTerms: "50% deposit on acceptance, balance on delivery.",
		},
	}
}

func testQuoteRequest() *model.QuoteRequest {
	return &model.QuoteRequest{
		ID:          uuid.New(),
		ClientName:  "Tariro Moyo",
		ClientEmail: "tariro@example.com",
		Description: "Inventory management system.",
		Status:      model.QuoteRequestStatusNew,
	}
}

func staffPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleStaff}
}

func TestGenerateDefaultsValidityFromConfig(t *testing.T) {
	store := &stubQuotationStore{}
	requests := &stubQuoteRequestStore{request: testQuoteRequest()}
	svc := NewQuotationService(store, requests, nil, testConfig())
	svc.now = func() time.Time {
		return time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
	}

	saved, err := svc.Generate(context.Background(), requests.request.ID, QuotationInput{
		LineItems: []LineItemInput{{Description: "Development", Quantity: 1, UnitPrice: 150}},
		Principal: staffPrincipal(),
	})
	require.NoError(t, err)

	issued := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, issued, saved.DateIssued)
	assert.Equal(t, issued.AddDate(0, 0, 30), saved.ValidUntil)
	assert.Equal(t, 1, saved.Revision)
	assert.Regexp(t, `^ZSP-202501-\d{4}$`, saved.QuotationNumber)
	assert.Equal(t, "50% deposit on acceptance, balance on delivery.", saved.PaymentTerms)
}

func TestGenerateHonoursRequestedValidity(t *testing.T) {
	store := &stubQuotationStore{}
	requests := &stubQuoteRequestStore{request: testQuoteRequest()}
	svc := NewQuotationService(store, requests, nil, testConfig())
	svc.now = func() time.Time {
		return time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
	}

	saved, err := svc.Generate(context.Background(), requests.request.ID, QuotationInput{
		LineItems:    []LineItemInput{{Description: "Development", Quantity: 1, UnitPrice: 150}},
		ValidityDays: 45,
		Principal:    staffPrincipal(),
	})
	require.NoError(t, err)

	issued := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, issued.AddDate(0, 0, 45), saved.ValidUntil)
}

func TestEditKeepsQuotationNumberAndBumpsRevision(t *testing.T) {
	existing := &model.Quotation{
		ID:              uuid.New(),
		QuoteRequestID:  uuid.New(),
		QuotationNumber: "ZSP-202501-0042",
		Revision:        2,
		PaymentTerms:    "Balance on delivery.",
		ClientName:      "Tariro Moyo",
		ClientEmail:     "tariro@example.com",
	}
	store := &stubQuotationStore{existing: existing}
	svc := NewQuotationService(store, &stubQuoteRequestStore{}, nil, testConfig())
	svc.now = func() time.Time {
		return time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	}

	saved, err := svc.Edit(context.Background(), existing.ID, QuotationInput{
		LineItems:     []LineItemInput{{Description: "Development", Quantity: 2, UnitPrice: 100}},
		DiscountValue: 10,
		Principal:     staffPrincipal(),
	})
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	assert.Equal(t, "ZSP-202501-0042", store.updated.QuotationNumber)
	assert.Equal(t, "ZSP-202501-0042", saved.QuotationNumber)
	assert.Equal(t, 3, saved.Revision)

	assert.Equal(t, 200.00, saved.Subtotal)
	assert.Equal(t, 20.00, saved.DiscountAmount)
	assert.Equal(t, 180.00, saved.Total)
	assert.Equal(t, "Balance on delivery.", saved.PaymentTerms)
}

func TestEditUnknownQuotationReturnsNotFound(t *testing.T) {
	svc := NewQuotationService(&stubQuotationStore{}, &stubQuoteRequestStore{}, nil, testConfig())

	_, err := svc.Edit(context.Background(), uuid.New(), QuotationInput{
		LineItems: []LineItemInput{{Description: "Development", Quantity: 1, UnitPrice: 150}},
		Principal: staffPrincipal(),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeDefaultsToPercentageDiscount(t *testing.T) {
	s := &QuotationService{}

	items, discount, tax, err := s.normalize(QuotationInput{
		LineItems:     []LineItemInput{{Description: "  Development  ", Quantity: 1, UnitPrice: 100}},
		DiscountValue: 10,
		TaxRate:       15,
	})
	require.NoError(t, err)

	assert.Equal(t, model.DiscountTypePercentage, discount.Type)
	assert.Equal(t, 10.0, discount.Value)
	assert.Equal(t, 15.0, tax.Rate)
	require.Len(t, items, 1)
	assert.Equal(t, "Development", items[0].Description)
}

func TestNormalizeAcceptsFixedDiscount(t *testing.T) {
	s := &QuotationService{}

	_, discount, _, err := s.normalize(QuotationInput{
		DiscountValue: 25,
		DiscountType:  "Fixed",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DiscountTypeFixed, discount.Type)
}

func TestNormalizeRejectsBadInputs(t *testing.T) {
	s := &QuotationService{}

	_, _, _, err := s.normalize(QuotationInput{DiscountValue: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, _, _, err = s.normalize(QuotationInput{TaxRate: -5})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, _, _, err = s.normalize(QuotationInput{DiscountType: "bogus"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildFileNameSanitizesNumber(t *testing.T) {
	assert.Equal(t, "quotation-ZSP-202501-0042.pdf", buildFileName("ZSP-202501-0042"))
	assert.Equal(t, "quotation-ZSP-2025-01-0042.pdf", buildFileName("ZSP/2025 01*0042"))
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, looksLikeEmail("tariro@example.com"))
	assert.False(t, looksLikeEmail("tariro"))
	assert.False(t, looksLikeEmail("@example.com"))
	assert.False(t, looksLikeEmail("tariro@"))
	assert.False(t, looksLikeEmail("tariro@localhost"))
}

func TestParseOptionalDate(t *testing.T) {
	parsed, err := parseOptionalDate("2025-06-01")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, 2025, parsed.Year())

	parsed, err = parseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = parseOptionalDate("first of June")
	require.Error(t, err)
}
