package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type stubBillingStore struct {
	total    float64
	count    int64
	monthly  []model.MonthlyRevenue
	payments []model.Payment

	from time.Time
	to   time.Time
}

func (s *stubBillingStore) CreateCustomer(_ context.Context, customer model.Customer) (*model.Customer, error) {
	saved := customer
	saved.ID = uuid.New()
	return &saved, nil
}

func (s *stubBillingStore) UpdateCustomer(_ context.Context, _ model.Customer) (*model.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBillingStore) GetCustomer(_ context.Context, _ uuid.UUID) (*model.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBillingStore) ListCustomers(_ context.Context) ([]model.Customer, error) {
	return nil, nil
}

func (s *stubBillingStore) DeleteCustomer(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *stubBillingStore) CreatePayment(_ context.Context, payment model.Payment) (*model.Payment, error) {
	saved := payment
	saved.ID = uuid.New()
	return &saved, nil
}

func (s *stubBillingStore) ListPayments(_ context.Context, from, to time.Time) ([]model.Payment, error) {
	return s.payments, nil
}

func (s *stubBillingStore) DeletePayment(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *stubBillingStore) RevenueTotals(_ context.Context, from, to time.Time) (float64, int64, error) {
	s.from, s.to = from, to
	return s.total, s.count, nil
}

func (s *stubBillingStore) MonthlyRevenue(_ context.Context, _, _ time.Time) ([]model.MonthlyRevenue, error) {
	return s.monthly, nil
}

type stubExcelGenerator struct{}

func (stubExcelGenerator) Generate(_ model.RevenueReport) ([]byte, error) {
	return []byte("workbook"), nil
}

func TestRevenueReportComputesAverage(t *testing.T) {
	store := &stubBillingStore{
		total: 750,
		count: 3,
		monthly: []model.MonthlyRevenue{
			{Month: "2025-01", Total: 250, Count: 1, Average: 250},
			{Month: "2025-03", Total: 500, Count: 2, Average: 250},
		},
	}
	svc := NewBillingService(store, nil)

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	report, err := svc.RevenueReport(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, 750.0, report.TotalRevenue)
	assert.Equal(t, int64(3), report.PaymentCount)
	assert.Equal(t, 250.0, report.Average)
	assert.Equal(t, from, report.From)
	assert.Equal(t, to, report.To)
	assert.Len(t, report.Monthly, 2)
}

func TestRevenueReportZeroPaymentsHasZeroAverage(t *testing.T) {
	svc := NewBillingService(&stubBillingStore{}, nil)

	report, err := svc.RevenueReport(context.Background(),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Average)
	assert.Equal(t, int64(0), report.PaymentCount)
}

func TestRevenueReportDefaultsPeriodToLastYear(t *testing.T) {
	store := &stubBillingStore{}
	svc := NewBillingService(store, nil)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	report, err := svc.RevenueReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, now, report.To)
	assert.Equal(t, now.AddDate(-1, 0, 0), report.From)
	// The queried window matches the reported one.
	assert.Equal(t, report.From, store.from)
	assert.Equal(t, report.To, store.to)
}

func TestRevenueReportRejectsInvertedPeriod(t *testing.T) {
	svc := NewBillingService(&stubBillingStore{}, nil)

	_, err := svc.RevenueReport(context.Background(),
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExportRevenueReportNamesFileByPeriod(t *testing.T) {
	svc := NewBillingService(&stubBillingStore{}, stubExcelGenerator{})

	export, err := svc.ExportRevenueReport(context.Background(),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "revenue-20250101-20250331.xlsx", export.FileName)
	assert.Equal(t, []byte("workbook"), export.Content)
}
