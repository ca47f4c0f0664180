package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"covid-dashboard-service/internal/config"
	csvSource "covid-dashboard-service/internal/dataset/adapters/csvfile"
	pgSource "covid-dashboard-service/internal/dataset/adapters/postgres"
	datasetDomain "covid-dashboard-service/internal/dataset/core/domain"
	datasetPorts "covid-dashboard-service/internal/dataset/core/ports"
	datasetUsecase "covid-dashboard-service/internal/dataset/core/usecase"

	"covid-dashboard-service/internal/insights/adapters/datasetreader"
	insightsHttp "covid-dashboard-service/internal/insights/adapters/http/fiber"
	insightsUsecase "covid-dashboard-service/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "covid-dashboard-service/docs"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	initLog(cfg.LogLevel)

	// Dataset source: Postgres when a DSN is configured, CSV files otherwise.
	var source datasetPorts.DatasetSourcePort
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}

		source = pgSource.NewSource(pgSource.NewSQLDB(db))
		log.Info("dataset source: postgres")
	} else {
		source = csvSource.NewSource(cfg.TrendCSV, cfg.CountriesCSV)
		log.WithFields(log.Fields{
			"trend":     cfg.TrendCSV,
			"countries": cfg.CountriesCSV,
		}).Info("dataset source: csv files")
	}

	// Load both tables up front. A missing input means no dashboard at all,
	// not a partial one.
	loadDataset := datasetUsecase.NewLoadDatasetUseCase(source)
	dataset, err := loadDataset.Execute(context.Background())
	if err != nil {
		if errors.Is(err, datasetDomain.ErrResourceNotFound) {
			log.Fatalf("dataset not found: %v (run the batch job and point the service at its output)", err)
		}
		log.Fatalf("failed to load dataset: %v", err)
	}

	log.WithFields(log.Fields{
		"trend_days": len(dataset.Trend),
		"countries":  len(dataset.Countries),
	}).Info("dataset loaded")

	// View-model usecases over the cached dataset.
	reader := datasetreader.NewReader(loadDataset)
	handler := insightsHttp.NewDashboardHandler(
		insightsUsecase.NewListContinentsUseCase(reader),
		insightsUsecase.NewGetSummaryUseCase(reader),
		insightsUsecase.NewGetRankingUseCase(reader),
		insightsUsecase.NewGetMapUseCase(reader),
		insightsUsecase.NewGetCorrelationUseCase(reader),
		insightsUsecase.NewGetTrendUseCase(reader),
	)

	app := fiber.New()

	app.Get("/dashboard/continents", handler.ListContinents)
	app.Get("/dashboard/summary", handler.GetSummary)
	app.Get("/dashboard/top-countries", handler.GetTopCountries)
	app.Get("/dashboard/map", handler.GetMap)
	app.Get("/dashboard/correlation", handler.GetCorrelation)
	app.Get("/dashboard/trend", handler.GetTrend)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Errorf("fiber stopped: %v", err)
		}
	}()

	log.Infof("server started on %s", cfg.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("fiber shutdown error: %v", err)
	}

	log.Info("server exiting")
}

func initLog(level string) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
}
