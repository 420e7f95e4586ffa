package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contact_status') THEN
			CREATE TYPE contact_status AS ENUM ('NEW', 'READ', 'RESPONDED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quote_request_status') THEN
			CREATE TYPE quote_request_status AS ENUM ('NEW', 'QUOTED', 'ACCEPTED', 'DECLINED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'project_request_status') THEN
			CREATE TYPE project_request_status AS ENUM ('PENDING', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64),
		subject VARCHAR(255),
		message TEXT NOT NULL,
		status contact_status NOT NULL DEFAULT 'NEW',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS quote_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_name VARCHAR(255) NOT NULL,
		client_email VARCHAR(255) NOT NULL,
		client_phone VARCHAR(64),
		university VARCHAR(255),
		course VARCHAR(255),
		project_type VARCHAR(128),
		description TEXT,
		budget_range VARCHAR(64),
		deadline DATE,
		status quote_request_status NOT NULL DEFAULT 'NEW',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS project_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_name VARCHAR(255) NOT NULL,
		client_email VARCHAR(255) NOT NULL,
		client_phone VARCHAR(64),
		project_type VARCHAR(128),
		title VARCHAR(255) NOT NULL,
		description TEXT,
		deadline DATE,
		status project_request_status NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS quotations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		quote_request_id UUID NOT NULL REFERENCES quote_requests(id) ON DELETE CASCADE,
		quotation_number VARCHAR(64) NOT NULL,
		revision INTEGER NOT NULL DEFAULT 1,
		date_issued DATE NOT NULL,
		valid_until DATE NOT NULL,
		discount_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		discount_type VARCHAR(16) NOT NULL DEFAULT 'percentage',
		tax_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
		subtotal NUMERIC(18,2) NOT NULL,
		discount_amount NUMERIC(18,2) NOT NULL,
		tax_amount NUMERIC(18,2) NOT NULL,
		total NUMERIC(18,2) NOT NULL,
		payment_terms TEXT,
		notes TEXT,
		client_name VARCHAR(255) NOT NULL,
		client_email VARCHAR(255) NOT NULL,
		client_phone VARCHAR(64),
		university VARCHAR(255),
		course VARCHAR(255),
		project_type VARCHAR(128),
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotation_number ON quotations (quotation_number);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_quote_request_id ON quotations (quote_request_id);`,
	`CREATE TABLE IF NOT EXISTS quotation_line_items (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		quotation_id UUID NOT NULL REFERENCES quotations(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(18,2) NOT NULL CHECK (unit_price >= 0)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotation_line_items_quotation_id ON quotation_line_items (quotation_id);`,
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		summary TEXT,
		description TEXT,
		icon VARCHAR(128),
		sort_order INTEGER NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS portfolio_entries (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		project_type VARCHAR(128),
		university VARCHAR(255),
		summary TEXT,
		image_url TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS pricing_packages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		price NUMERIC(18,2) NOT NULL,
		period VARCHAR(64),
		features TEXT NOT NULL DEFAULT '',
		highlight BOOLEAN NOT NULL DEFAULT FALSE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64),
		university VARCHAR(255),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_customers_email ON customers (email);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		amount NUMERIC(18,2) NOT NULL CHECK (amount > 0),
		method VARCHAR(64) NOT NULL,
		reference VARCHAR(128),
		notes TEXT,
		paid_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_customer_id ON payments (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_paid_at ON payments (paid_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
