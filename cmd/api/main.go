package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/api"
	"github.com/zakcom/sales-tracker-api/internal/config"
	"github.com/zakcom/sales-tracker-api/internal/scheduler"
	"github.com/zakcom/sales-tracker-api/internal/usecases/authenticating"
	"github.com/zakcom/sales-tracker-api/internal/usecases/catalog"
	"github.com/zakcom/sales-tracker-api/internal/usecases/dashboarding"
	"github.com/zakcom/sales-tracker-api/internal/usecases/selling"
	"github.com/zakcom/sales-tracker-api/internal/usecases/targeting"
	"github.com/zakcom/sales-tracker-api/internal/usecases/visiting"
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
	packageRepo := repository.NewPackageRepository(pgConn)
	prospectRepo := repository.NewProspectRepository(pgConn)
	visitRepo := repository.NewVisitRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	dashboardService := dashboarding.NewService(userRepo, saleRepo, visitRepo, targetRepo, cfg)
	visitService := visiting.NewService(visitRepo, prospectRepo)
	saleService := selling.NewService(saleRepo, customerRepo, packageRepo, prospectRepo)
	packageService := catalog.NewService(packageRepo)
	targetService := targeting.NewService(targetRepo, userRepo)

	// Inicializa o agendador que recalcula o progresso das metas mensais
	targetProgressSyncService := scheduler.NewTargetProgressSyncService(
		targetRepo,
		saleRepo,
		visitRepo,
		cfg,
	)

	if err := targetProgressSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de progresso de metas")
	} else {
		logrus.Info("Agendador de progresso de metas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		visitService,
		saleService,
		packageService,
		targetService,
		authenticator,
		targetProgressSyncService,
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
