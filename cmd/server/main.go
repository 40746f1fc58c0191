package main

import (
	"fmt"
	"log"

	"nuamx/internal/config"
	"nuamx/internal/events"
	"nuamx/internal/fx"
	"nuamx/internal/handler"
	"nuamx/internal/port"
	"nuamx/internal/repository/postgres"
	"nuamx/internal/resolver"
	"nuamx/internal/router"
	"nuamx/internal/service"
	s3storage "nuamx/internal/storage/s3"
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
	ratingRepo := postgres.NewRatingRepo(db)
	fxRateRepo := postgres.NewFxRateRepo(db)

	// Initialize the event publisher. The pipeline works without a broker.
	var publisher port.EventPublisher
	if cfg.Events.Enabled {
		publisher, err = events.NewRedisPublisher(&cfg.Events)
		if err != nil {
			log.Printf("event broker unreachable, falling back to noop publisher: %v", err)
			publisher = events.NewNoopPublisher()
		}
	} else {
		publisher = events.NewNoopPublisher()
	}
	defer publisher.Close()

	// Initialize the optional workbook archive
	var archive port.ObjectStorage
	if cfg.Archive.Enabled {
		archive, err = s3storage.NewS3Client(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize archive storage: %w", err)
		}
	}

	// Build the resolution cascade: local cache first, then the configured
	// external endpoints in order.
	sources := []port.NameSource{resolver.NewLocalCacheSource(ratingRepo)}
	for _, endpoint := range cfg.Resolver.Endpoints {
		sources = append(sources, resolver.NewHTTPSource(endpoint, cfg.Resolver.Timeout()))
	}
	cascade := resolver.NewCascade(sources, cfg.Resolver.Concurrency)

	// Initialize services
	converter := fx.NewConverter(fxRateRepo)
	batchSvc := service.NewBatchService(ratingRepo, converter, publisher, archive, cfg.Archive.Bucket)
	ratingSvc := service.NewRatingService(ratingRepo)
	resolveSvc := service.NewResolveService(ratingRepo, cascade, publisher, cfg.Resolver.DefaultLimit)
	reportSvc := service.NewReportService(ratingRepo)

	// Initialize handlers
	batchH := handler.NewBatchHandler(batchSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	resolveH := handler.NewResolveHandler(resolveSvc)
	reportH := handler.NewReportHandler(reportSvc)
	templateH := handler.NewTemplateHandler()
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(batchH, ratingH, resolveH, reportH, templateH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
