package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Talent5/zimscholar-projects-sub000/internal/http/middleware"
	"github.com/Talent5/zimscholar-projects-sub000/internal/service"
)

type serviceRequest struct {
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
	Active      *bool  `json:"active"`
}

func (h *Handler) listPublicServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) listAllServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context(), true)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) createService(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.catalog.CreateService(c.Request.Context(), service.ServiceInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		Active:      req.Active,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) updateService(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.catalog.UpdateService(c.Request.Context(), id, service.ServiceInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		Active:      req.Active,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) deleteService(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteService(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type portfolioRequest struct {
	Title       string `json:"title" binding:"required"`
	ProjectType string `json:"project_type"`
	University  string `json:"university"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
	Active      *bool  `json:"active"`
}

func (h *Handler) listPublicPortfolio(c *gin.Context) {
	entries, err := h.catalog.ListPortfolioEntries(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) listAllPortfolio(c *gin.Context) {
	entries, err := h.catalog.ListPortfolioEntries(c.Request.Context(), true)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) createPortfolioEntry(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.catalog.CreatePortfolioEntry(c.Request.Context(), service.PortfolioInput{
		Title:       req.Title,
		ProjectType: req.ProjectType,
		University:  req.University,
		Summary:     req.Summary,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		Active:      req.Active,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) updatePortfolioEntry(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.catalog.UpdatePortfolioEntry(c.Request.Context(), id, service.PortfolioInput{
		Title:       req.Title,
		ProjectType: req.ProjectType,
		University:  req.University,
		Summary:     req.Summary,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		Active:      req.Active,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) deletePortfolioEntry(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeletePortfolioEntry(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type pricingPackageRequest struct {
	Name      string   `json:"name" binding:"required"`
	Price     float64  `json:"price"`
	Period    string   `json:"period"`
	Features  []string `json:"features"`
	Highlight bool     `json:"highlight"`
	SortOrder int      `json:"sort_order"`
	Active    *bool    `json:"active"`
}

func (h *Handler) listPublicPricing(c *gin.Context) {
	packages, err := h.catalog.ListPricingPackages(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *Handler) listAllPricing(c *gin.Context) {
	packages, err := h.catalog.ListPricingPackages(c.Request.Context(), true)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *Handler) createPricingPackage(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req pricingPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pkg, err := h.catalog.CreatePricingPackage(c.Request.Context(), service.PricingPackageInput{
		Name:      req.Name,
		Price:     req.Price,
		Period:    req.Period,
		Features:  req.Features,
		Highlight: req.Highlight,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *Handler) updatePricingPackage(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req pricingPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pkg, err := h.catalog.UpdatePricingPackage(c.Request.Context(), id, service.PricingPackageInput{
		Name:      req.Name,
		Price:     req.Price,
		Period:    req.Period,
		Features:  req.Features,
		Highlight: req.Highlight,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) deletePricingPackage(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeletePricingPackage(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
