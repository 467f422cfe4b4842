package main

import (
	"Deployer_Microservice/internal/server-service/repository"
	test_result_consumer "Deployer_Microservice/internal/test-result-consumer"
	"Deployer_Microservice/pkg/infra"
	"Deployer_Microservice/pkg/logger"
	"Deployer_Microservice/pkg/mail"
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := test_result_consumer.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// set up logger
	zapLogger, fileSyncer, err := logger.NewServiceLogger("test-result-consumer", appConfig.Server.LogLevel, appConfig.Server.LogDir)
	if err != nil {
		log.Fatal(fmt.Sprintf("set up logger error: %v", err))
	}
	defer zapLogger.Sync()
	logger.ReloadOnSignal(ctx, fileSyncer, zapLogger)

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
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

	// set up redis, status changes must evict the server-service cache
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

	serverRepo := repository.NewCachedServerRepository(redisClient, repository.NewServerRepository(db), appConfig.Redis.CacheTTL)
	resultRepo := repository.NewConnectionResultRepository(esClient)

	var mailSender mail.Sender
	if appConfig.Mail.Enabled() {
		mailSender = mail.NewMailSender(mail.Config{
			Host:     appConfig.Mail.Host,
			Port:     appConfig.Mail.Port,
			Email:    appConfig.Mail.Email,
			Password: appConfig.Mail.Password,
		})
	} else {
		zapLogger.Warn("mail is not configured, failure notices are disabled")
	}

	consumers := make([]test_result_consumer.ResultConsumer, appConfig.Kafka.ConsumerCnt)
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i] = test_result_consumer.NewResultConsumer(infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.ConsumerTopic),
			serverRepo, resultRepo, mailSender, appConfig.Mail.AdminMailAddress, zapLogger)
		consumers[i].Start()
	}

	<-ctx.Done()
	zapLogger.Info("shutting down server...")
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i].Stop()
	}
	zapLogger.Info("server exiting")
}
