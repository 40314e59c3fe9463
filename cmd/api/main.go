package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/kpiboard/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/kpiboard/metrics-dashboard-api/infrastructure/repository"
	"github.com/kpiboard/metrics-dashboard-api/internal/api"
	"github.com/kpiboard/metrics-dashboard-api/internal/bootstrap"
	"github.com/kpiboard/metrics-dashboard-api/internal/config"
	"github.com/kpiboard/metrics-dashboard-api/internal/scheduler"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/authenticating"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/entries"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/registry"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	metricRepo := repository.NewMetricDefinitionRepository(pgConn)
	monthlyRepo := repository.NewMonthlyEntryRepository(pgConn)
	customRepo := repository.NewCustomMetricEntryRepository(pgConn)

	// Hub de eventos de mudança consumido pelo stream do dashboard
	hub := watch.NewHub()

	aggregatingService := aggregating.NewService(metricRepo, monthlyRepo, customRepo, hub)
	registryService := registry.NewService(metricRepo, monthlyRepo, customRepo, hub)
	entryService := entries.NewService(monthlyRepo, customRepo, metricRepo, aggregatingService, hub)

	seeder := bootstrap.NewInitializer(metricRepo, monthlyRepo, aggregatingService, cfg)
	authenticator := authenticating.NewService(userRepo, seeder, cfg)

	// Reconciliação periódica das métricas derivadas
	recomputeSyncService := scheduler.NewRecomputeSyncService(metricRepo, aggregatingService, cfg)
	if err := recomputeSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de métricas")
	} else {
		logrus.Info("Agendador de reconciliação de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		registryService,
		entryService,
		authenticator,
		hub,
		recomputeSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
