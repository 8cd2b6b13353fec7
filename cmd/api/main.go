package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-radar-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/lead-radar-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/lead-radar-api/infrastructure/repository"
	"github.com/vfg2006/lead-radar-api/internal/api"
	"github.com/vfg2006/lead-radar-api/internal/config"
	"github.com/vfg2006/lead-radar-api/internal/scheduler"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
	"github.com/vfg2006/lead-radar-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-radar-api/internal/usecases/prospecting"
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

	// As tabelas de classificação são obrigatórias; sem elas o pipeline
	// não pode rodar
	tax, err := taxonomy.Load(cfg.Taxonomy.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as tabelas de classificação")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	adRecordRepo := repository.NewAdRecordRepository(pgConn)
	scoreRepo := repository.NewAdvertiserScoreRepository(pgConn)
	runRepo := repository.NewPipelineRunRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	adLibraryClient := adlibraryclient.NewClient(cfg)
	adLibraryIntegrator := adlibrary.New(cfg, adLibraryClient)

	prospectingService := prospecting.NewService(scoreRepo, runRepo)

	// Inicializa os agendadores de sincronização e de scoring
	adLibrarySyncService := scheduler.NewAdLibrarySyncService(
		adLibraryIntegrator,
		adRecordRepo,
		cfg,
	)

	pipelineRunService := scheduler.NewPipelineRunService(
		adRecordRepo,
		scoreRepo,
		runRepo,
		tax,
		cfg,
	)

	// Inicia os agendadores em background
	if err := adLibrarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do dataset de anúncios")
	} else {
		logrus.Info("Agendador de sincronização do dataset de anúncios iniciado com sucesso")
	}

	if err := pipelineRunService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline de scoring")
	} else {
		logrus.Info("Agendador do pipeline de scoring iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		prospectingService,
		authenticator,
		adLibrarySyncService, // Serviço de sincronização do dataset
		pipelineRunService,   // Serviço do pipeline de scoring
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
