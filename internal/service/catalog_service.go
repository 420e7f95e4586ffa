package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
	"github.com/Talent5/zimscholar-projects-sub000/internal/repository"
)

// CatalogService manages the public marketing catalog: services, portfolio
// entries and pricing packages.
type CatalogService struct {
	repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

type ServiceInput struct {
	Title       string
	Summary     string
	Description string
	Icon        string
	SortOrder   int
	Active      *bool
}

func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput, principal model.Principal) (*model.ServiceOffering, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return s.repo.CreateService(ctx, model.ServiceOffering{
		Title:       strings.TrimSpace(input.Title),
		Summary:     strings.TrimSpace(input.Summary),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		SortOrder:   input.SortOrder,
		Active:      activeOrDefault(input.Active),
	})
}

func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput, principal model.Principal) (*model.ServiceOffering, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	saved, err := s.repo.UpdateService(ctx, model.ServiceOffering{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Summary:     strings.TrimSpace(input.Summary),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		SortOrder:   input.SortOrder,
		Active:      activeOrDefault(input.Active),
	})
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return saved, err
}

func (s *CatalogService) ListServices(ctx context.Context, includeInactive bool) ([]model.ServiceOffering, error) {
	return s.repo.ListServices(ctx, !includeInactive)
}

func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOr(s.repo.DeleteService(ctx, id))
}

type PortfolioInput struct {
	Title       string
	ProjectType string
	University  string
	Summary     string
	ImageURL    string
	SortOrder   int
	Active      *bool
}

func (s *CatalogService) CreatePortfolioEntry(ctx context.Context, input PortfolioInput, principal model.Principal) (*model.PortfolioEntry, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return s.repo.CreatePortfolioEntry(ctx, model.PortfolioEntry{
		Title:       strings.TrimSpace(input.Title),
		ProjectType: strings.TrimSpace(input.ProjectType),
		University:  strings.TrimSpace(input.University),
		Summary:     strings.TrimSpace(input.Summary),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SortOrder:   input.SortOrder,
		Active:      activeOrDefault(input.Active),
	})
}

func (s *CatalogService) UpdatePortfolioEntry(ctx context.Context, id uuid.UUID, input PortfolioInput, principal model.Principal) (*model.PortfolioEntry, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	saved, err := s.repo.UpdatePortfolioEntry(ctx, model.PortfolioEntry{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		ProjectType: strings.TrimSpace(input.ProjectType),
		University:  strings.TrimSpace(input.University),
		Summary:     strings.TrimSpace(input.Summary),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SortOrder:   input.SortOrder,
		Active:      activeOrDefault(input.Active),
	})
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return saved, err
}

func (s *CatalogService) ListPortfolioEntries(ctx context.Context, includeInactive bool) ([]model.PortfolioEntry, error) {
	return s.repo.ListPortfolioEntries(ctx, !includeInactive)
}

func (s *CatalogService) DeletePortfolioEntry(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOr(s.repo.DeletePortfolioEntry(ctx, id))
}

type PricingPackageInput struct {
	Name      string
	Price     float64
	Period    string
	Features  []string
	Highlight bool
	SortOrder int
	Active    *bool
}

func (s *CatalogService) CreatePricingPackage(ctx context.Context, input PricingPackageInput, principal model.Principal) (*model.PricingPackage, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return s.repo.CreatePricingPackage(ctx, model.PricingPackage{
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		Period:    strings.TrimSpace(input.Period),
		Features:  trimAll(input.Features),
		Highlight: input.Highlight,
		SortOrder: input.SortOrder,
		Active:    activeOrDefault(input.Active),
	})
}

func (s *CatalogService) UpdatePricingPackage(ctx context.Context, id uuid.UUID, input PricingPackageInput, principal model.Principal) (*model.PricingPackage, error) {
	if !(principal.IsAdmin() || principal.IsStaff()) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	saved, err := s.repo.UpdatePricingPackage(ctx, model.PricingPackage{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		Period:    strings.TrimSpace(input.Period),
		Features:  trimAll(input.Features),
		Highlight: input.Highlight,
		SortOrder: input.SortOrder,
		Active:    activeOrDefault(input.Active),
	})
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return saved, err
}

func (s *CatalogService) ListPricingPackages(ctx context.Context, includeInactive bool) ([]model.PricingPackage, error) {
	return s.repo.ListPricingPackages(ctx, !includeInactive)
}

func (s *CatalogService) DeletePricingPackage(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOr(s.repo.DeletePricingPackage(ctx, id))
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}
