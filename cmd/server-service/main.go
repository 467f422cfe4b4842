package main

import (
	"Deployer_Microservice/internal/server-service/api/handler"
	"Deployer_Microservice/internal/server-service/api/routes"
	"Deployer_Microservice/internal/server-service/config"
	"Deployer_Microservice/internal/server-service/queue"
	"Deployer_Microservice/internal/server-service/repository"
	"Deployer_Microservice/internal/server-service/service"
	"Deployer_Microservice/pkg/infra"
	"Deployer_Microservice/pkg/logger"
	"Deployer_Microservice/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// set up logger
	zapLogger, fileSyncer, err := logger.NewServiceLogger("server-service", appConfig.Server.LogLevel, appConfig.Server.LogDir)
	if err != nil {
		log.Fatal(fmt.Sprintf("set up logger error: %v", err))
	}
	defer zapLogger.Sync()
	logger.ReloadOnSignal(ctx, fileSyncer, zapLogger)

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         appConfig.Postgres.Host,
		Port:         appConfig.Postgres.Port,
		User:         appConfig.Postgres.User,
		Password:     appConfig.Postgres.Password,
		DBName:       appConfig.Postgres.DBName,
		MaxOpenConns: appConfig.Postgres.MaxOpenConns,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if appConfig.Postgres.ApplySchema {
		if err = repository.EnsureSchema(ctx, db); err != nil {
			zapLogger.Fatal("failed to apply database schema", zap.Error(err))
		}
		zapLogger.Info("database schema applied")
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}
	indexCtx, cancelIndex := context.WithTimeout(ctx, 30*time.Second)
	err = infra.EnsureIndex(indexCtx, esClient, repository.ConnectionTestIndexName, repository.ConnectionTestIndexMapping)
	cancelIndex()
	if err != nil {
		zapLogger.Fatal("failed to create connection test index", zap.Error(err))
	}

	kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ConnectionTestTopic)
	defer kafkaWriter.Close()

	// set up dependencies
	serverRepo := repository.NewCachedServerRepository(redisClient, repository.NewServerRepository(db), appConfig.Redis.CacheTTL)
	projectRepo := repository.NewProjectRepository(db)
	connectionResultRepo := repository.NewConnectionResultRepository(esClient)
	connectionTestQueue := queue.NewConnectionTestQueue(kafkaWriter)
	serverService := service.NewServerService(serverRepo, projectRepo, connectionResultRepo, connectionTestQueue)
	serverHandler := handler.NewServerHandler(handler.NewLogger(zapLogger), serverService)

	m := middleware.NewScopeMiddleware()

	// release servers whose connection test result never came back
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Server.StaleTestCron, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel2()
		released, e := serverService.ReleaseStaleTests(ctx2, appConfig.Server.StaleTestTimeout)
		if e != nil {
			zapLogger.Error("failed to release stale connection tests", zap.Error(e))
			return
		}
		if released > 0 {
			zapLogger.Warn("released servers stuck in testing", zap.Int("count", released))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for stale connection tests", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zapLogger))

	routes.SetUpServerRoutes(r, serverHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down server...")
	cronCtx := cronJob.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	select {
	case <-cronCtx.Done():
	case <-shutdownCtx.Done():
	}
	zapLogger.Info("server exiting")
}
