package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string, allowedOrigins []string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public site surface: catalog reads and inquiry intake.
	api.GET("/services", handler.listPublicServices)
	api.GET("/portfolio", handler.listPublicPortfolio)
	api.GET("/pricing", handler.listPublicPricing)
	api.POST("/contacts", handler.submitContact)
	api.POST("/quote-requests", handler.submitQuoteRequest)
	api.POST("/project-requests", handler.submitProjectRequest)

	admin := api.Group("/admin")
	admin.Use(authMiddleware)

	admin.GET("/contacts", handler.listContacts)
	admin.PATCH("/contacts/:id/status", handler.updateContactStatus)
	admin.DELETE("/contacts/:id", handler.deleteContact)

	admin.GET("/quote-requests", handler.listQuoteRequests)
	admin.PATCH("/quote-requests/:id/status", handler.updateQuoteRequestStatus)
	admin.DELETE("/quote-requests/:id", handler.deleteQuoteRequest)
	admin.POST("/quote-requests/:id/quotation", handler.generateQuotation)
	admin.GET("/quote-requests/:id/quotation", handler.getQuotationForRequest)

	admin.GET("/project-requests", handler.listProjectRequests)
	admin.PATCH("/project-requests/:id/status", handler.updateProjectRequestStatus)
	admin.DELETE("/project-requests/:id", handler.deleteProjectRequest)

	admin.GET("/quotations", handler.listQuotations)
	admin.GET("/quotations/:id", handler.getQuotation)
	admin.PUT("/quotations/:id", handler.editQuotation)
	admin.DELETE("/quotations/:id", handler.deleteQuotation)
	admin.GET("/quotations/:id/pdf", handler.downloadQuotationPDF)

	admin.GET("/services", handler.listAllServices)
	admin.POST("/services", handler.createService)
	admin.PUT("/services/:id", handler.updateService)
	admin.DELETE("/services/:id", handler.deleteService)

	admin.GET("/portfolio", handler.listAllPortfolio)
	admin.POST("/portfolio", handler.createPortfolioEntry)
	admin.PUT("/portfolio/:id", handler.updatePortfolioEntry)
	admin.DELETE("/portfolio/:id", handler.deletePortfolioEntry)

	admin.GET("/pricing", handler.listAllPricing)
	admin.POST("/pricing", handler.createPricingPackage)
	admin.PUT("/pricing/:id", handler.updatePricingPackage)
	admin.DELETE("/pricing/:id", handler.deletePricingPackage)

	admin.GET("/customers", handler.listCustomers)
	admin.POST("/customers", handler.createCustomer)
	admin.PUT("/customers/:id", handler.updateCustomer)
	admin.DELETE("/customers/:id", handler.deleteCustomer)

	admin.GET("/payments", handler.listPayments)
	admin.POST("/payments", handler.recordPayment)
	admin.DELETE("/payments/:id", handler.deletePayment)

	admin.GET("/revenue", handler.revenueReport)
	admin.GET("/revenue/export", handler.exportRevenueReport)

	return router
}
