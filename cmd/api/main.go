package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/infrastructure/database/postgres"
	"github.com/vfg2006/frontrow-invoice-api/infrastructure/repository"
	"github.com/vfg2006/frontrow-invoice-api/internal/api"
	"github.com/vfg2006/frontrow-invoice-api/internal/config"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"github.com/vfg2006/frontrow-invoice-api/internal/scheduler"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/exporting"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/generating"
	"github.com/vfg2006/frontrow-invoice-api/pkg/log"
	"github.com/vfg2006/frontrow-invoice-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, closeCatalog := storeCatalog(ctx, cfg)
	defer closeCatalog()

	baselines, err := catalog.ListBaselines()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as baselines das lojas")
	}

	storeRepo, err := repository.NewStoreMetricsRepositoryFromCatalog(catalog)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o catálogo de lojas")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	generator := generating.NewService(baselines, nil)

	dashboardService := dashboarding.NewService(storeRepo, generator, dashboarding.Options{
		SimulatedLatency: cfg.Refresh.SimulatedLatency,
		Metrics:          metrics.NewRefreshMetrics(registry),
	})

	// Carga inicial com o período padrão
	initialRange := domain.DefaultDateRange(time.Now(), cfg.Refresh.LookbackDays)
	if _, err := dashboardService.RefreshAll(ctx, initialRange, metrics.TriggerStartup); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial de métricas")
	} else {
		logrus.WithField("date_range", initialRange.String()).Info("Carga inicial de métricas concluída")
	}

	exportService := exporting.NewService(
		dashboardService,
		cfg.Export.FilenamePrefix,
		metrics.NewExportMetrics(registry),
		nil,
	)

	autoRefreshService := scheduler.NewAutoRefreshService(dashboardService, cfg)
	if err := autoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de métricas")
	} else {
		logrus.Info("Agendador de atualização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		exportService,
		autoRefreshService,
		registry,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// storeCatalog escolhe a origem do catálogo de lojas
func storeCatalog(ctx context.Context, cfg *config.Config) (repository.StoreCatalog, func()) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		logrus.Info("Usando catálogo de lojas embutido")
		return repository.NewSeedStoreCatalog(), func() {}
	}

	pgConn := pgconn(ctx, cfg.Database)
	return repository.NewPostgresStoreCatalog(pgConn), func() { _ = pgConn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
