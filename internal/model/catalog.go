package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is one service advertised on the public site.
type ServiceOffering struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PortfolioEntry struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ProjectType string    `json:"project_type"`
	University  string    `json:"university"`
	Summary     string    `json:"summary"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PricingPackage is a published price point; the features list is stored as
// one row per line in display order.
type PricingPackage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Period    string    `json:"period"`
	Features  []string  `json:"features"`
	Highlight bool      `json:"highlight"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
