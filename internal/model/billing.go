package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	University string    `json:"university"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Payment struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference"`
	Notes      string    `json:"notes"`
	PaidAt     time.Time `json:"paid_at"`
	CreatedAt  time.Time `json:"created_at"`

	CustomerName string `json:"customer_name"`
}

// MonthlyRevenue is one bucket of the revenue roll-up, keyed by calendar month.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Total   float64 `json:"total"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

type RevenueReport struct {
	From         time.Time        `json:"from"`
	To           time.Time        `json:"to"`
	TotalRevenue float64          `json:"total_revenue"`
	PaymentCount int64            `json:"payment_count"`
	Average      float64          `json:"average"`
	Monthly      []MonthlyRevenue `json:"monthly"`
	Payments     []Payment        `json:"payments"`
}
