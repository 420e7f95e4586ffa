package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
	"github.com/Talent5/zimscholar-projects-sub000/internal/repository"
)

type InquiryService struct {
	repo *repository.InquiryRepository
}

func NewInquiryService(repo *repository.InquiryRepository) *InquiryService {
	return &InquiryService{repo: repo}
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (s *InquiryService) SubmitContact(ctx context.Context, input ContactInput) (*model.Contact, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !looksLikeEmail(input.Email) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	return s.repo.CreateContact(ctx, model.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	})
}

func (s *InquiryService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.repo.ListContacts(ctx)
}

func (s *InquiryService) UpdateContactStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := parseContactStatus(status)
	if err != nil {
		return err
	}
	return notFoundOr(s.repo.UpdateContactStatus(ctx, id, parsed))
}

func (s *InquiryService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return notFoundOr(s.repo.DeleteContact(ctx, id))
}

type QuoteRequestInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	University  string
	Course      string
	ProjectType string
	Description string
	BudgetRange string
	Deadline    string
}

func (s *InquiryService) SubmitQuoteRequest(ctx context.Context, input QuoteRequestInput) (*model.QuoteRequest, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if !looksLikeEmail(input.ClientEmail) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: project description is required", ErrInvalidInput)
	}

	deadline, err := parseOptionalDate(input.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline", ErrInvalidInput)
	}

	return s.repo.CreateQuoteRequest(ctx, model.QuoteRequest{
		ClientName:  strings.TrimSpace(input.ClientName),
		ClientEmail: strings.TrimSpace(input.ClientEmail),
		ClientPhone: strings.TrimSpace(input.ClientPhone),
		University:  strings.TrimSpace(input.University),
		Course:      strings.TrimSpace(input.Course),
		ProjectType: strings.TrimSpace(input.ProjectType),
		Description: strings.TrimSpace(input.Description),
		BudgetRange: strings.TrimSpace(input.BudgetRange),
		Deadline:    deadline,
	})
}

func (s *InquiryService) ListQuoteRequests(ctx context.Context) ([]model.QuoteRequest, error) {
	return s.repo.ListQuoteRequests(ctx)
}

func (s *InquiryService) UpdateQuoteRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := parseQuoteRequestStatus(status)
	if err != nil {
		return err
	}
	return notFoundOr(s.repo.UpdateQuoteRequestStatus(ctx, id, parsed))
}

func (s *InquiryService) DeleteQuoteRequest(ctx context.Context, id uuid.UUID) error {
	return notFoundOr(s.repo.DeleteQuoteRequest(ctx, id))
}

type ProjectRequestInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	ProjectType string
	Title       string
	Description string
	Deadline    string
}

func (s *InquiryService) SubmitProjectRequest(ctx context.Context, input ProjectRequestInput) (*model.ProjectRequest, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if !looksLikeEmail(input.ClientEmail) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	deadline, err := parseOptionalDate(input.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline", ErrInvalidInput)
	}

	return s.repo.CreateProjectRequest(ctx, model.ProjectRequest{
		ClientName:  strings.TrimSpace(input.ClientName),
		ClientEmail: strings.TrimSpace(input.ClientEmail),
		ClientPhone: strings.TrimSpace(input.ClientPhone),
		ProjectType: strings.TrimSpace(input.ProjectType),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Deadline:    deadline,
	})
}

func (s *InquiryService) ListProjectRequests(ctx context.Context) ([]model.ProjectRequest, error) {
	return s.repo.ListProjectRequests(ctx)
}

func (s *InquiryService) UpdateProjectRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := parseProjectRequestStatus(status)
	if err != nil {
		return err
	}
	return notFoundOr(s.repo.UpdateProjectRequestStatus(ctx, id, parsed))
}

func (s *InquiryService) DeleteProjectRequest(ctx context.Context, id uuid.UUID) error {
	return notFoundOr(s.repo.DeleteProjectRequest(ctx, id))
}

func parseContactStatus(raw string) (model.ContactStatus, error) {
	switch model.ContactStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case model.ContactStatusNew:
		return model.ContactStatusNew, nil
	case model.ContactStatusRead:
		return model.ContactStatusRead, nil
	case model.ContactStatusResponded:
		return model.ContactStatusResponded, nil
	default:
		return "", fmt.Errorf("%w: invalid contact status", ErrInvalidInput)
	}
}

func parseQuoteRequestStatus(raw string) (model.QuoteRequestStatus, error) {
	switch model.QuoteRequestStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case model.QuoteRequestStatusNew:
		return model.QuoteRequestStatusNew, nil
	case model.QuoteRequestStatusQuoted:
		return model.QuoteRequestStatusQuoted, nil
	case model.QuoteRequestStatusAccepted:
		return model.QuoteRequestStatusAccepted, nil
	case model.QuoteRequestStatusDeclined:
		return model.QuoteRequestStatusDeclined, nil
	default:
		return "", fmt.Errorf("%w: invalid quote request status", ErrInvalidInput)
	}
}

func parseProjectRequestStatus(raw string) (model.ProjectRequestStatus, error) {
	switch model.ProjectRequestStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case model.ProjectRequestStatusPending:
		return model.ProjectRequestStatusPending, nil
	case model.ProjectRequestStatusInProgress:
		return model.ProjectRequestStatusInProgress, nil
	case model.ProjectRequestStatusCompleted:
		return model.ProjectRequestStatusCompleted, nil
	case model.ProjectRequestStatusCancelled:
		return model.ProjectRequestStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: invalid project request status", ErrInvalidInput)
	}
}

func notFoundOr(err error) error {
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognised date %q", raw)
}

func looksLikeEmail(value string) bool {
	value = strings.TrimSpace(value)
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	return strings.Contains(value[at+1:], ".")
}
