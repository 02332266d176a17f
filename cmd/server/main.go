package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"billforge/internal/config"
	"billforge/internal/email/noop"
	"billforge/internal/email/ses"
	"billforge/internal/handler"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/repository/memory"
	"billforge/internal/repository/postgres"
	"billforge/internal/router"
	"billforge/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Catalogue backend: built-in products by default, postgres when
	// configured.
	var db *sqlx.DB
	var catalogueRepo port.CatalogueRepository
	switch cfg.Catalogue.Source {
	case "postgres":
		db, err = postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		catalogueRepo = postgres.NewCatalogueRepo(db)
	default:
		catalogueRepo = memory.NewCatalogueRepo()
	}

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	var sender port.EmailSender
	if cfg.Email.Provider == "ses" {
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		sender = noop.NewNoopSender()
	}

	// Initialize services
	store := memory.NewInvoiceStore()
	invoiceSvc := service.NewInvoiceService(
		store,
		catalogueRepo,
		renderer,
		cfg.Share.PreviewURL,
		cfg.Upload.MaxLogoSizeMB<<20,
	)
	catalogueSvc := service.NewCatalogueService(catalogueRepo)
	exportSvc := service.NewExportService(invoiceSvc, renderer, sender)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	previewH := handler.NewPreviewHandler(invoiceSvc, renderer)
	exportH := handler.NewExportHandler(exportSvc)
	catalogueH := handler.NewCatalogueHandler(catalogueSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, invoiceH, previewH, exportH, catalogueH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
