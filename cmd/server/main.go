package main

import (
	"fmt"
	"log"

	"billforge/internal/config"
	"billforge/internal/email/noop"
	"billforge/internal/email/ses"
	"billforge/internal/handler"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/repository/postgres"
	"billforge/internal/router"
	"billforge/internal/service"
	fsstorage "billforge/internal/storage/fs"
	s3storage "billforge/internal/storage/s3"
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

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	poRepo := postgres.NewPurchaseOrderRepo(db)
	clientRepo := postgres.NewClientRepo(db)

	// Object storage is only needed when templates come from S3 or archival
	// is enabled.
	var objectStorage port.ObjectStorage
	if cfg.Templates.Source == "s3" || cfg.Archive.Enabled {
		objectStorage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Template source
	var templates port.TemplateStore
	switch cfg.Templates.Source {
	case "s3":
		templates = s3storage.NewTemplateStore(objectStorage, cfg.Templates.Bucket, cfg.Templates.Prefix)
	default:
		templates = fsstorage.NewTemplateStore(cfg.Templates.Dir)
	}

	// Render pipeline
	converter := render.NewLibreOffice(cfg.Converter.Binary, cfg.Converter.Timeout())
	pipeline := render.NewPipeline(templates, converter)

	// Email delivery
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Rendered-document archival
	var archiver *service.Archiver
	if cfg.Archive.Enabled {
		archiver = service.NewArchiver(objectStorage, cfg.Archive.Bucket, cfg.Archive.Prefix)
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, pipeline, emailSender, archiver)
	poSvc := service.NewPurchaseOrderService(poRepo, pipeline, emailSender, archiver)
	clientSvc := service.NewClientService(clientRepo)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	poH := handler.NewPurchaseOrderHandler(poSvc)
	clientH := handler.NewClientHandler(clientSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, invoiceH, poH, clientH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
