package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/groceryhub/grocery-backend/internal/config"
	"github.com/groceryhub/grocery-backend/internal/es"
	"github.com/groceryhub/grocery-backend/internal/httpserver"
	"github.com/groceryhub/grocery-backend/internal/models"
	"github.com/groceryhub/grocery-backend/internal/mykafka"
	"github.com/groceryhub/grocery-backend/internal/repo"
	pkgdb "github.com/groceryhub/grocery-backend/pkg/db"
	"github.com/groceryhub/grocery-backend/pkg/logging"
	loggingmw "github.com/groceryhub/grocery-backend/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(
		&models.UnitOfMeasure{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
	} else {
		log.Println("notice: KAFKA_BROKERS not set, domain events disabled")
	}

	r := repo.New(db)

	deps := &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Repo: r},
		OrderHandler:   &httpserver.OrderHTTP{Repo: r},
		UOMHandler:     &httpserver.UnitOfMeasureHTTP{Repo: r},
		ReportHandler:  &httpserver.ReportHTTP{Repo: r},
	}
	if producer != nil {
		deps.ProductHandler.Producer = producer
		deps.OrderHandler.Producer = producer
	}

	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		deps.ProductHandler.Indexer = es.NewIndexer(esClient, cfg.ESIndex)
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient, Index: cfg.ESIndex}
	} else {
		log.Println("notice: ES_URL not set, fulltext search disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(middleware.CORS())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
