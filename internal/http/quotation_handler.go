package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Talent5/zimscholar-projects-sub000/internal/http/middleware"
	"github.com/Talent5/zimscholar-projects-sub000/internal/service"
)

type lineItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type quotationRequest struct {
	LineItems     []lineItemRequest `json:"line_items" binding:"required"`
	DiscountValue float64           `json:"discount_value"`
	DiscountType  string            `json:"discount_type"`
	TaxRate       float64           `json:"tax_rate"`
	ValidityDays  int               `json:"validity_days"`
	PaymentTerms  string            `json:"payment_terms"`
	Notes         string            `json:"notes"`
}

func (req quotationRequest) toInput() service.QuotationInput {
	items := make([]service.LineItemInput, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		items = append(items, service.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return service.QuotationInput{
		LineItems:     items,
		DiscountValue: req.DiscountValue,
		DiscountType:  req.DiscountType,
		TaxRate:       req.TaxRate,
		ValidityDays:  req.ValidityDays,
		PaymentTerms:  req.PaymentTerms,
		Notes:         req.Notes,
	}
}

func (h *Handler) generateQuotation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	quoteRequestID, ok := parseID(c)
	if !ok {
		return
	}

	var req quotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := req.toInput()
	input.Principal = principal

	quotation, err := h.quotations.Generate(c.Request.Context(), quoteRequestID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quotation)
}

func (h *Handler) getQuotationForRequest(c *gin.Context) {
	quoteRequestID, ok := parseID(c)
	if !ok {
		return
	}
	quotation, err := h.quotations.GetByQuoteRequest(c.Request.Context(), quoteRequestID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotation)
}

func (h *Handler) listQuotations(c *gin.Context) {
	quotations, err := h.quotations.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotations)
}

func (h *Handler) getQuotation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	quotation, err := h.quotations.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotation)
}

func (h *Handler) editQuotation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req quotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := req.toInput()
	input.Principal = principal

	quotation, err := h.quotations.Edit(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotation)
}

func (h *Handler) deleteQuotation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.quotations.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) downloadQuotationPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	artifact, err := h.quotations.RenderPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+artifact.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", artifact.Content)
}
