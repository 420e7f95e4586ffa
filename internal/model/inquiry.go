package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "NEW"
	ContactStatusRead      ContactStatus = "READ"
	ContactStatusResponded ContactStatus = "RESPONDED"
)

type QuoteRequestStatus string

const (
	QuoteRequestStatusNew      QuoteRequestStatus = "NEW"
	QuoteRequestStatusQuoted   QuoteRequestStatus = "QUOTED"
	QuoteRequestStatusAccepted QuoteRequestStatus = "ACCEPTED"
	QuoteRequestStatusDeclined QuoteRequestStatus = "DECLINED"
)

type ProjectRequestStatus string

const (
	ProjectRequestStatusPending    ProjectRequestStatus = "PENDING"
	ProjectRequestStatusInProgress ProjectRequestStatus = "IN_PROGRESS"
	ProjectRequestStatusCompleted  ProjectRequestStatus = "COMPLETED"
	ProjectRequestStatusCancelled  ProjectRequestStatus = "CANCELLED"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// QuoteRequest is a customer-submitted inquiry that a quotation is generated
// against.
type QuoteRequest struct {
	ID          uuid.UUID          `json:"id"`
	ClientName  string             `json:"client_name"`
	ClientEmail string             `json:"client_email"`
	ClientPhone string             `json:"client_phone"`
	University  string             `json:"university"`
	Course      string             `json:"course"`
	ProjectType string             `json:"project_type"`
	Description string             `json:"description"`
	BudgetRange string             `json:"budget_range"`
	Deadline    *time.Time         `json:"deadline"`
	Status      QuoteRequestStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ProjectRequest struct {
	ID          uuid.UUID            `json:"id"`
	ClientName  string               `json:"client_name"`
	ClientEmail string               `json:"client_email"`
	ClientPhone string               `json:"client_phone"`
	ProjectType string               `json:"project_type"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Deadline    *time.Time           `json:"deadline"`
	Status      ProjectRequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}
