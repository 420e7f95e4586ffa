package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) CreateContact(ctx context.Context, contact model.Contact) (*model.Contact, error) {
	var saved model.Contact
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contacts (name, email, phone, subject, message)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, name, email, COALESCE(phone, '') AS phone,
			COALESCE(subject, '') AS subject, message, status, created_at
	`, contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *InquiryRepository) ListContacts(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, COALESCE(phone, '') AS phone,
			COALESCE(subject, '') AS subject, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`).Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *InquiryRepository) UpdateContactStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE contacts SET status = ? WHERE id = ?`, string(status), id,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InquiryRepository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type quoteRequestRow struct {
	ID          uuid.UUID
	ClientName  string
	ClientEmail string
	ClientPhone string
	University  string
	Course      string
	ProjectType string
	Description string
	BudgetRange string
	Deadline    *time.Time
	Status      string
	CreatedAt   time.Time
}

func (row quoteRequestRow) toModel() model.QuoteRequest {
	return model.QuoteRequest{
		ID:          row.ID,
		ClientName:  row.ClientName,
		ClientEmail: row.ClientEmail,
		ClientPhone: row.ClientPhone,
		University:  row.University,
		Course:      row.Course,
		ProjectType: row.ProjectType,
		Description: row.Description,
		BudgetRange: row.BudgetRange,
		Deadline:    row.Deadline,
		Status:      model.QuoteRequestStatus(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}

const quoteRequestColumns = `
	id,
	client_name,
	client_email,
	COALESCE(client_phone, '') AS client_phone,
	COALESCE(university, '') AS university,
	COALESCE(course, '') AS course,
	COALESCE(project_type, '') AS project_type,
	COALESCE(description, '') AS description,
	COALESCE(budget_range, '') AS budget_range,
	deadline,
	status,
	created_at
`

func (r *InquiryRepository) CreateQuoteRequest(ctx context.Context, request model.QuoteRequest) (*model.QuoteRequest, error) {
	var row quoteRequestRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO quote_requests (
			client_name, client_email, client_phone, university, course,
			project_type, description, budget_range, deadline
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+quoteRequestColumns,
		request.ClientName, request.ClientEmail, request.ClientPhone,
		request.University, request.Course, request.ProjectType,
		request.Description, request.BudgetRange, request.Deadline,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	result := row.toModel()
	return &result, nil
}

func (r *InquiryRepository) GetQuoteRequest(ctx context.Context, id uuid.UUID) (*model.QuoteRequest, error) {
	var row quoteRequestRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT `+quoteRequestColumns+` FROM quote_requests WHERE id = ?`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	result := row.toModel()
	return &result, nil
}

func (r *InquiryRepository) ListQuoteRequests(ctx context.Context) ([]model.QuoteRequest, error) {
	var rows []quoteRequestRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT ` + quoteRequestColumns + ` FROM quote_requests ORDER BY created_at DESC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]model.QuoteRequest, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *InquiryRepository) UpdateQuoteRequestStatus(ctx context.Context, id uuid.UUID, status model.QuoteRequestStatus) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE quote_requests SET status = ? WHERE id = ?`, string(status), id,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InquiryRepository) DeleteQuoteRequest(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM quote_requests WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

const projectRequestColumns = `
	id,
	client_name,
	client_email,
	COALESCE(client_phone, '') AS client_phone,
	COALESCE(project_type, '') AS project_type,
	title,
	COALESCE(description, '') AS description,
	deadline,
	status,
	created_at
`

func (r *InquiryRepository) CreateProjectRequest(ctx context.Context, request model.ProjectRequest) (*model.ProjectRequest, error) {
	var saved model.ProjectRequest
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO project_requests (
			client_name, client_email, client_phone, project_type, title, description, deadline
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+projectRequestColumns,
		request.ClientName, request.ClientEmail, request.ClientPhone,
		request.ProjectType, request.Title, request.Description, request.Deadline,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *InquiryRepository) ListProjectRequests(ctx context.Context) ([]model.ProjectRequest, error) {
	var requests []model.ProjectRequest
	err := r.db.WithContext(ctx).Raw(
		`SELECT ` + projectRequestColumns + ` FROM project_requests ORDER BY created_at DESC`,
	).Scan(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *InquiryRepository) UpdateProjectRequestStatus(ctx context.Context, id uuid.UUID, status model.ProjectRequestStatus) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE project_requests SET status = ? WHERE id = ?`, string(status), id,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InquiryRepository) DeleteProjectRequest(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM project_requests WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
