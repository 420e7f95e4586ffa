package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type ExcelGenerator interface {
	Generate(report model.RevenueReport) ([]byte, error)
}

// BillingStore is the persistence surface the service needs; satisfied by
// repository.BillingRepository.
type BillingStore interface {
	CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	CreatePayment(ctx context.Context, payment model.Payment) (*model.Payment, error)
	ListPayments(ctx context.Context, from, to time.Time) ([]model.Payment, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
	RevenueTotals(ctx context.Context, from, to time.Time) (float64, int64, error)
	MonthlyRevenue(ctx context.Context, from, to time.Time) ([]model.MonthlyRevenue, error)
}

// BillingService manages customers, payment records and the revenue roll-up.
type BillingService struct {
	repo  BillingStore
	excel ExcelGenerator
	now   func() time.Time
}

func NewBillingService(repo BillingStore, excel ExcelGenerator) *BillingService {
	return &BillingService{repo: repo, excel: excel, now: time.Now}
}

type CustomerInput struct {
	Name       string
	Email      string
	Phone      string
	University string
	Notes      string
}

func (s *BillingService) CreateCustomer(ctx context.Context, input CustomerInput, principal model.Principal) (*model.Customer, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !looksLikeEmail(input.Email) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	return s.repo.CreateCustomer(ctx, model.Customer{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		University: strings.TrimSpace(input.University),
		Notes:      strings.TrimSpace(input.Notes),
	})
}

func (s *BillingService) UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput, principal model.Principal) (*model.Customer, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !looksLikeEmail(input.Email) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	saved, err := s.repo.UpdateCustomer(ctx, model.Customer{
		ID:         id,
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		University: strings.TrimSpace(input.University),
		Notes:      strings.TrimSpace(input.Notes),
	})
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return saved, err
}

func (s *BillingService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *BillingService) DeleteCustomer(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOr(s.repo.DeleteCustomer(ctx, id))
}

type PaymentInput struct {
	CustomerID string
	Amount     float64
	Method     string
	Reference  string
	Notes      string
	PaidAt     string
}

func (s *BillingService) RecordPayment(ctx context.Context, input PaymentInput, principal model.Principal) (*model.Payment, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}

	customerID, err := uuid.Parse(strings.TrimSpace(input.CustomerID))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer_id", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Method) == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	paidAt := s.now()
	if strings.TrimSpace(input.PaidAt) != "" {
		parsed, err := parseOptionalDate(input.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid paid_at", ErrInvalidInput)
		}
		paidAt = *parsed
	}

	if _, err := s.repo.GetCustomer(ctx, customerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.repo.CreatePayment(ctx, model.Payment{
		CustomerID: customerID,
		Amount:     input.Amount,
		Method:     strings.ToLower(strings.TrimSpace(input.Method)),
		Reference:  strings.TrimSpace(input.Reference),
		Notes:      strings.TrimSpace(input.Notes),
		PaidAt:     paidAt,
	})
}

func (s *BillingService) ListPayments(ctx context.Context, from, to time.Time) ([]model.Payment, error) {
	from, to = s.normalizePeriod(from, to)
	return s.repo.ListPayments(ctx, from, to)
}

func (s *BillingService) DeletePayment(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOr(s.repo.DeletePayment(ctx, id))
}

// RevenueReport aggregates payments over the period into totals plus a
// calendar-month roll-up. A zero `from` defaults to twelve months back, a zero
// `to` to now; `to` is exclusive.
func (s *BillingService) RevenueReport(ctx context.Context, from, to time.Time) (*model.RevenueReport, error) {
	from, to = s.normalizePeriod(from, to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	total, count, err := s.repo.RevenueTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	monthly, err := s.repo.MonthlyRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPayments(ctx, from, to)
	if err != nil {
		return nil, err
	}

	average := 0.0
	if count > 0 {
		average = total / float64(count)
	}

	return &model.RevenueReport{
		From:         from,
		To:           to,
		TotalRevenue: total,
		PaymentCount: count,
		Average:      average,
		Monthly:      monthly,
		Payments:     payments,
	}, nil
}

type RevenueExport struct {
	FileName string
	Content  []byte
}

func (s *BillingService) ExportRevenueReport(ctx context.Context, from, to time.Time) (*RevenueExport, error) {
	report, err := s.RevenueReport(ctx, from, to)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("revenue-%s-%s.xlsx",
		report.From.Format("20060102"), report.To.Format("20060102"))
	return &RevenueExport{FileName: fileName, Content: content}, nil
}

func (s *BillingService) normalizePeriod(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	return from, to
}
