package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

type quotationRow struct {
	ID              uuid.UUID
	QuoteRequestID  uuid.UUID
	QuotationNumber string
	Revision        int
	DateIssued      time.Time
	ValidUntil      time.Time
	DiscountValue   float64
	DiscountType    string
	TaxRate         float64
	Subtotal        float64
	DiscountAmount  float64
	TaxAmount       float64
	Total           float64
	PaymentTerms    string
	Notes           string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	University      string
	Course          string
	ProjectType     string
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (row quotationRow) toModel() model.Quotation {
	return model.Quotation{
		ID:              row.ID,
		QuoteRequestID:  row.QuoteRequestID,
		QuotationNumber: row.QuotationNumber,
		Revision:        row.Revision,
		DateIssued:      row.DateIssued,
		ValidUntil:      row.ValidUntil,
		Discount: model.DiscountSpec{
			Value: row.DiscountValue,
			Type:  model.DiscountType(row.DiscountType),
		},
		Tax:            model.TaxSpec{Rate: row.TaxRate},
		Subtotal:       row.Subtotal,
		DiscountAmount: row.DiscountAmount,
		TaxAmount:      row.TaxAmount,
		Total:          row.Total,
		PaymentTerms:   row.PaymentTerms,
		Notes:          row.Notes,
		ClientName:     row.ClientName,
		ClientEmail:    row.ClientEmail,
		ClientPhone:    row.ClientPhone,
		University:     row.University,
		Course:         row.Course,
		ProjectType:    row.ProjectType,
		Description:    row.Description,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

const quotationColumns = `
	id,
	quote_request_id,
	quotation_number,
	revision,
	date_issued,
	valid_until,
	discount_value,
	discount_type,
	tax_rate,
	subtotal,
	discount_amount,
	tax_amount,
	total,
	COALESCE(payment_terms, '') AS payment_terms,
	COALESCE(notes, '') AS notes,
	client_name,
	client_email,
	COALESCE(client_phone, '') AS client_phone,
	COALESCE(university, '') AS university,
	COALESCE(course, '') AS course,
	COALESCE(project_type, '') AS project_type,
	COALESCE(description, '') AS description,
	created_at,
	updated_at
`

// Create persists the quotation with its line items and moves the owning
// quote request to QUOTED in the same transaction, so a quotation never exists
// against a request still marked NEW.
func (r *QuotationRepository) Create(ctx context.Context, quotation model.Quotation) (*model.Quotation, error) {
	var saved quotationRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO quotations (
				quote_request_id,
				quotation_number,
				revision,
				date_issued,
				valid_until,
				discount_value,
				discount_type,
				tax_rate,
				subtotal,
				discount_amount,
				tax_amount,
				total,
				payment_terms,
				notes,
				client_name,
				client_email,
				client_phone,
				university,
				course,
				project_type,
				description
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+quotationColumns,
			quotation.QuoteRequestID,
			quotation.QuotationNumber,
			quotation.Revision,
			quotation.DateIssued,
			quotation.ValidUntil,
			quotation.Discount.Value,
			string(quotation.Discount.Type),
			quotation.Tax.Rate,
			quotation.Subtotal,
			quotation.DiscountAmount,
			quotation.TaxAmount,
			quotation.Total,
			quotation.PaymentTerms,
			quotation.Notes,
			quotation.ClientName,
			quotation.ClientEmail,
			quotation.ClientPhone,
			quotation.University,
			quotation.Course,
			quotation.ProjectType,
			quotation.Description,
		).Scan(&saved).Error
		if err != nil {
			return err
		}
		if err := insertLineItems(tx, saved.ID, quotation.LineItems); err != nil {
			return err
		}
		return tx.Exec(
			`UPDATE quote_requests SET status = ? WHERE id = ?`,
			string(model.QuoteRequestStatusQuoted), quotation.QuoteRequestID,
		).Error
	})
	if err != nil {
		return nil, err
	}

	result := saved.toModel()
	result.LineItems = quotation.LineItems
	return &result, nil
}

// Update rewrites every mutable field and replaces the line-item set; the
// quotation number is immutable and the revision counter is advanced here.
func (r *QuotationRepository) Update(ctx context.Context, quotation model.Quotation) (*model.Quotation, error) {
	var saved quotationRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			UPDATE quotations SET
				revision = revision + 1,
				date_issued = ?,
				valid_until = ?,
				discount_value = ?,
				discount_type = ?,
				tax_rate = ?,
				subtotal = ?,
				discount_amount = ?,
				tax_amount = ?,
				total = ?,
				payment_terms = ?,
				notes = ?,
				client_name = ?,
				client_email = ?,
				client_phone = ?,
				university = ?,
				course = ?,
				project_type = ?,
				description = ?,
				updated_at = NOW()
			WHERE id = ?
			RETURNING `+quotationColumns,
			quotation.DateIssued,
			quotation.ValidUntil,
			quotation.Discount.Value,
			string(quotation.Discount.Type),
			quotation.Tax.Rate,
			quotation.Subtotal,
			quotation.DiscountAmount,
			quotation.TaxAmount,
			quotation.Total,
			quotation.PaymentTerms,
			quotation.Notes,
			quotation.ClientName,
			quotation.ClientEmail,
			quotation.ClientPhone,
			quotation.University,
			quotation.Course,
			quotation.ProjectType,
			quotation.Description,
			quotation.ID,
		).Scan(&saved).Error
		if err != nil {
			return err
		}
		if saved.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Exec(`DELETE FROM quotation_line_items WHERE quotation_id = ?`, saved.ID).Error; err != nil {
			return err
		}
		return insertLineItems(tx, saved.ID, quotation.LineItems)
	})
	if err != nil {
		return nil, err
	}

	result := saved.toModel()
	result.LineItems = quotation.LineItems
	return &result, nil
}

func insertLineItems(tx *gorm.DB, quotationID uuid.UUID, items []model.LineItem) error {
	for position, item := range items {
		err := tx.Exec(`
			INSERT INTO quotation_line_items (quotation_id, position, description, quantity, unit_price)
			VALUES (?, ?, ?, ?, ?)
		`, quotationID, position, item.Description, item.Quantity, item.UnitPrice).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *QuotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error) {
	var row quotationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+quotationColumns+` FROM quotations WHERE id = ?`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	items, err := r.listLineItems(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	result := row.toModel()
	result.LineItems = items
	return &result, nil
}

func (r *QuotationRepository) GetByQuoteRequest(ctx context.Context, quoteRequestID uuid.UUID) (*model.Quotation, error) {
	var row quotationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+quotationColumns+` FROM quotations WHERE quote_request_id = ? ORDER BY created_at DESC LIMIT 1`,
		quoteRequestID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	items, err := r.listLineItems(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	result := row.toModel()
	result.LineItems = items
	return &result, nil
}

func (r *QuotationRepository) List(ctx context.Context) ([]model.Quotation, error) {
	var rows []quotationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.Quotation, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *QuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM quotations WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuotationRepository) listLineItems(ctx context.Context, quotationID uuid.UUID) ([]model.LineItem, error) {
	var items []model.LineItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT description, quantity, unit_price
		FROM quotation_line_items
		WHERE quotation_id = ?
		ORDER BY position ASC
	`, quotationID).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
