package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/appleclient"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository"
	"github.com/vfg2006/app-rank-navi-api/internal/api"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/scheduler"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/analyzing"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/ingesting"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/querying"
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

	appRepo := repository.NewAppRepository(pgConn)
	rankingRepo := repository.NewRankingRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	appleClient := appleclient.NewClient(cfg)
	llmClient := llmclient.NewClient(cfg)

	ingestingService := ingesting.NewService(appleClient, appRepo, rankingRepo, cfg)
	queryingService := querying.NewService(appRepo, rankingRepo)
	analyzingService := analyzing.NewService(llmClient, rankingRepo, cfg)

	// Inicializa o agendador da coleta diária de rankings
	rankingSyncService := scheduler.NewRankingSyncService(ingestingService, cfg)

	if err := rankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de rankings")
	} else {
		logrus.Info("Agendador de sincronização de rankings iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		queryingService,
		ingestingService,
		analyzingService,
		authenticator,
		rankingSyncService,
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
