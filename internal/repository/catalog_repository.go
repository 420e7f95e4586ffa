package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const serviceColumns = `
	id, title, COALESCE(summary, '') AS summary, COALESCE(description, '') AS description,
	COALESCE(icon, '') AS icon, sort_order, active, created_at, updated_at
`

func (r *CatalogRepository) CreateService(ctx context.Context, svc model.ServiceOffering) (*model.ServiceOffering, error) {
	var saved model.ServiceOffering
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO services (title, summary, description, icon, sort_order, active)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+serviceColumns,
		svc.Title, svc.Summary, svc.Description, svc.Icon, svc.SortOrder, svc.Active,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, svc model.ServiceOffering) (*model.ServiceOffering, error) {
	var saved model.ServiceOffering
	err := r.db.WithContext(ctx).Raw(`
		UPDATE services SET
			title = ?, summary = ?, description = ?, icon = ?,
			sort_order = ?, active = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING `+serviceColumns,
		svc.Title, svc.Summary, svc.Description, svc.Icon,
		svc.SortOrder, svc.Active, svc.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *CatalogRepository) ListServices(ctx context.Context, activeOnly bool) ([]model.ServiceOffering, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	var services []model.ServiceOffering
	if err := r.db.WithContext(ctx).Raw(query).Scan(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), "services", id)
}

const portfolioColumns = `
	id, title, COALESCE(project_type, '') AS project_type, COALESCE(university, '') AS university,
	COALESCE(summary, '') AS summary, COALESCE(image_url, '') AS image_url,
	sort_order, active, created_at, updated_at
`

func (r *CatalogRepository) CreatePortfolioEntry(ctx context.Context, entry model.PortfolioEntry) (*model.PortfolioEntry, error) {
	var saved model.PortfolioEntry
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO portfolio_entries (title, project_type, university, summary, image_url, sort_order, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+portfolioColumns,
		entry.Title, entry.ProjectType, entry.University, entry.Summary,
		entry.ImageURL, entry.SortOrder, entry.Active,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CatalogRepository) UpdatePortfolioEntry(ctx context.Context, entry model.PortfolioEntry) (*model.PortfolioEntry, error) {
	var saved model.PortfolioEntry
	err := r.db.WithContext(ctx).Raw(`
		UPDATE portfolio_entries SET
			title = ?, project_type = ?, university = ?, summary = ?,
			image_url = ?, sort_order = ?, active = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING `+portfolioColumns,
		entry.Title, entry.ProjectType, entry.University, entry.Summary,
		entry.ImageURL, entry.SortOrder, entry.Active, entry.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *CatalogRepository) ListPortfolioEntries(ctx context.Context, activeOnly bool) ([]model.PortfolioEntry, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_entries`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	var entries []model.PortfolioEntry
	if err := r.db.WithContext(ctx).Raw(query).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CatalogRepository) DeletePortfolioEntry(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), "portfolio_entries", id)
}

type pricingPackageRow struct {
	ID        uuid.UUID
	Name      string
	Price     float64
	Period    string
	Features  string
	Highlight bool
	SortOrder int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Features are stored newline-separated in display order.
func (row pricingPackageRow) toModel() model.PricingPackage {
	var features []string
	for _, feature := range strings.Split(row.Features, "\n") {
		feature = strings.TrimSpace(feature)
		if feature != "" {
			features = append(features, feature)
		}
	}
	return model.PricingPackage{
		ID:        row.ID,
		Name:      row.Name,
		Price:     row.Price,
		Period:    row.Period,
		Features:  features,
		Highlight: row.Highlight,
		SortOrder: row.SortOrder,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

const pricingColumns = `
	id, name, price, COALESCE(period, '') AS period, features,
	highlight, sort_order, active, created_at, updated_at
`

func (r *CatalogRepository) CreatePricingPackage(ctx context.Context, pkg model.PricingPackage) (*model.PricingPackage, error) {
	var row pricingPackageRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO pricing_packages (name, price, period, features, highlight, sort_order, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+pricingColumns,
		pkg.Name, pkg.Price, pkg.Period, strings.Join(pkg.Features, "\n"),
		pkg.Highlight, pkg.SortOrder, pkg.Active,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	result := row.toModel()
	return &result, nil
}

func (r *CatalogRepository) UpdatePricingPackage(ctx context.Context, pkg model.PricingPackage) (*model.PricingPackage, error) {
	var row pricingPackageRow
	err := r.db.WithContext(ctx).Raw(`
		UPDATE pricing_packages SET
			name = ?, price = ?, period = ?, features = ?,
			highlight = ?, sort_order = ?, active = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING `+pricingColumns,
		pkg.Name, pkg.Price, pkg.Period, strings.Join(pkg.Features, "\n"),
		pkg.Highlight, pkg.SortOrder, pkg.Active, pkg.ID,
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

func (r *CatalogRepository) ListPricingPackages(ctx context.Context, activeOnly bool) ([]model.PricingPackage, error) {
	query := `SELECT ` + pricingColumns + ` FROM pricing_packages`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	var rows []pricingPackageRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]model.PricingPackage, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *CatalogRepository) DeletePricingPackage(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), "pricing_packages", id)
}

func deleteByID(db *gorm.DB, table string, id uuid.UUID) error {
	result := db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
