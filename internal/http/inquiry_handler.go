package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Talent5/zimscholar-projects-sub000/internal/http/middleware"
	"github.com/Talent5/zimscholar-projects-sub000/internal/service"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.inquiries.SubmitContact(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.inquiries.ListContacts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateContactStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.inquiries.UpdateContactStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteContact(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok || !principal.IsAdmin() {
		h.handleError(c, service.ErrPermissionDenied)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.inquiries.DeleteContact(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type quoteRequestRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone"`
	University  string `json:"university"`
	Course      string `json:"course"`
	ProjectType string `json:"project_type"`
	Description string `json:"description" binding:"required"`
	BudgetRange string `json:"budget_range"`
	Deadline    string `json:"deadline"`
}

func (h *Handler) submitQuoteRequest(c *gin.Context) {
	var req quoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.inquiries.SubmitQuoteRequest(c.Request.Context(), service.QuoteRequestInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		University:  req.University,
		Course:      req.Course,
		ProjectType: req.ProjectType,
		Description: req.Description,
		BudgetRange: req.BudgetRange,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *Handler) listQuoteRequests(c *gin.Context) {
	requests, err := h.inquiries.ListQuoteRequests(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) updateQuoteRequestStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.inquiries.UpdateQuoteRequestStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteQuoteRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok || !principal.IsAdmin() {
		h.handleError(c, service.ErrPermissionDenied)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.inquiries.DeleteQuoteRequest(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type projectRequestRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ProjectType string `json:"project_type"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

func (h *Handler) submitProjectRequest(c *gin.Context) {
	var req projectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.inquiries.SubmitProjectRequest(c.Request.Context(), service.ProjectRequestInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ProjectType: req.ProjectType,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *Handler) listProjectRequests(c *gin.Context) {
	requests, err := h.inquiries.ListProjectRequests(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) updateProjectRequestStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.inquiries.UpdateProjectRequestStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteProjectRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok || !principal.IsAdmin() {
		h.handleError(c, service.ErrPermissionDenied)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.inquiries.DeleteProjectRequest(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
