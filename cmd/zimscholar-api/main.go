package main

import (
	"fmt"
	"os"

	"github.com/Talent5/zimscholar-projects-sub000/internal/auth"
	"github.com/Talent5/zimscholar-projects-sub000/internal/config"
	"github.com/Talent5/zimscholar-projects-sub000/internal/db"
	"github.com/Talent5/zimscholar-projects-sub000/internal/excel"
	httphandler "github.com/Talent5/zimscholar-projects-sub000/internal/http"
	"github.com/Talent5/zimscholar-projects-sub000/internal/http/middleware"
	"github.com/Talent5/zimscholar-projects-sub000/internal/logger"
	"github.com/Talent5/zimscholar-projects-sub000/internal/pdf"
	"github.com/Talent5/zimscholar-projects-sub000/internal/repository"
	"github.com/Talent5/zimscholar-projects-sub000/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	inquiryRepo := repository.NewInquiryRepository(database)
	catalogRepo := repository.NewCatalogRepository(database)
	quotationRepo := repository.NewQuotationRepository(database)
	billingRepo := repository.NewBillingRepository(database)

	pdfGenerator := pdf.NewGenerator(cfg.Quotation.CurrencyPrefix)
	excelGenerator := excel.NewGenerator()

	inquiryService := service.NewInquiryService(inquiryRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	quotationService := service.NewQuotationService(quotationRepo, inquiryRepo, pdfGenerator, cfg)
	billingService := service.NewBillingService(billingRepo, excelGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(inquiryService, catalogService, quotationService, billingService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting zimscholar api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
