package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

const customerColumns = `
	id, name, email, COALESCE(phone, '') AS phone,
	COALESCE(university, '') AS university, COALESCE(notes, '') AS notes,
	created_at, updated_at
`

func (r *BillingRepository) CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	var saved model.Customer
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO customers (name, email, phone, university, notes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+customerColumns,
		customer.Name, customer.Email, customer.Phone, customer.University, customer.Notes,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *BillingRepository) UpdateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	var saved model.Customer
	err := r.db.WithContext(ctx).Raw(`
		UPDATE customers SET
			name = ?, email = ?, phone = ?, university = ?, notes = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING `+customerColumns,
		customer.Name, customer.Email, customer.Phone, customer.University,
		customer.Notes, customer.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *BillingRepository) GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+customerColumns+` FROM customers WHERE id = ?`, id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &customer, nil
}

func (r *BillingRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Raw(
		`SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`,
	).Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *BillingRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), "customers", id)
}

const paymentColumns = `
	p.id,
	p.customer_id,
	p.amount,
	p.method,
	COALESCE(p.reference, '') AS reference,
	COALESCE(p.notes, '') AS notes,
	p.paid_at,
	p.created_at,
	c.name AS customer_name
`

func (r *BillingRepository) CreatePayment(ctx context.Context, payment model.Payment) (*model.Payment, error) {
	var saved model.Payment
	err := r.db.WithContext(ctx).Raw(`
		WITH inserted AS (
			INSERT INTO payments (customer_id, amount, method, reference, notes, paid_at)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING *
		)
		SELECT `+paymentColumns+`
		FROM inserted p
		JOIN customers c ON c.id = p.customer_id
	`,
		payment.CustomerID, payment.Amount, payment.Method,
		payment.Reference, payment.Notes, payment.PaidAt,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *BillingRepository) ListPayments(ctx context.Context, from, to time.Time) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments p
		JOIN customers c ON c.id = p.customer_id
		WHERE p.paid_at >= ? AND p.paid_at < ?
		ORDER BY p.paid_at DESC
	`, from, to).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *BillingRepository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), "payments", id)
}

type revenueTotals struct {
	Total float64
	Count int64
}

func (r *BillingRepository) RevenueTotals(ctx context.Context, from, to time.Time) (float64, int64, error) {
	var totals revenueTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
	`, from, to).Scan(&totals).Error
	if err != nil {
		return 0, 0, err
	}
	return totals.Total, totals.Count, nil
}

func (r *BillingRepository) MonthlyRevenue(ctx context.Context, from, to time.Time) ([]model.MonthlyRevenue, error) {
	var buckets []model.MonthlyRevenue
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(paid_at, 'YYYY-MM') AS month,
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS count,
			COALESCE(AVG(amount), 0) AS average
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
		GROUP BY TO_CHAR(paid_at, 'YYYY-MM')
		ORDER BY month ASC
	`, from, to).Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}
