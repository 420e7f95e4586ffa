package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Talent5/zimscholar-projects-sub000/internal/pdf"
	"github.com/Talent5/zimscholar-projects-sub000/internal/pricing"
	"github.com/Talent5/zimscholar-projects-sub000/internal/service"
)

type Handler struct {
	inquiries  *service.InquiryService
	catalog    *service.CatalogService
	quotations *service.QuotationService
	billing    *service.BillingService
	log        zerolog.Logger
}

func NewHandler(
	inquiries *service.InquiryService,
	catalog *service.CatalogService,
	quotations *service.QuotationService,
	billing *service.BillingService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		inquiries:  inquiries,
		catalog:    catalog,
		quotations: quotations,
		billing:    billing,
		log:        log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrNoLineItems),
		errors.Is(err, pricing.ErrNonPositiveTotal),
		errors.Is(err, pdf.ErrNonPositiveTotal),
		errors.Is(err, pdf.ErrMissingIdentity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return time.Time{}, true
	}
	layouts := []string{time.RFC3339, "2006-01-02"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
	return time.Time{}, false
}
