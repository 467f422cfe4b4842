package main

import (
	connection_tester "Deployer_Microservice/internal/connection-tester"
	"Deployer_Microservice/pkg/infra"
	"Deployer_Microservice/pkg/logger"
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := connection_tester.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// set up logger
	zapLogger, fileSyncer, err := logger.NewServiceLogger("connection-tester", appConfig.Server.LogLevel, appConfig.Server.LogDir)
	if err != nil {
		log.Fatal(fmt.Sprintf("set up logger error: %v", err))
	}
	defer zapLogger.Sync()
	logger.ReloadOnSignal(ctx, fileSyncer, zapLogger)

	// set up ssh
	signer, err := connection_tester.LoadSigner(appConfig.SSH.PrivateKeyPath)
	if err != nil {
		zapLogger.Fatal("failed to load ssh private key", zap.Error(err))
	}
	hostKeyCallback, err := connection_tester.LoadHostKeyCallback(appConfig.SSH.KnownHostsPath)
	if err != nil {
		zapLogger.Fatal("failed to load known hosts", zap.Error(err))
	}
	if appConfig.SSH.KnownHostsPath == "" {
		zapLogger.Warn("SSH_KNOWN_HOSTS_PATH is not set, host keys are not verified")
	}
	prober := connection_tester.NewSSHProber(connection_tester.ProberConfig{
		Signer:          signer,
		HostKeyCallback: hostKeyCallback,
		MaxRetries:      appConfig.Server.MaxRetries,
		InitialBackoff:  appConfig.Server.InitialBackoff,
		DialTimeout:     appConfig.Server.DialTimeout,
	})

	kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ProducerTopic)
	defer kafkaWriter.Close()

	consumers := make([]connection_tester.Consumer, appConfig.Kafka.ConsumerCnt)
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i] = connection_tester.NewConsumer(infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.ConsumerTopic),
			kafkaWriter, prober, zapLogger)
		consumers[i].Start()
	}
	zapLogger.Info(fmt.Sprintf("started %d consumers on topic %s", appConfig.Kafka.ConsumerCnt, appConfig.Kafka.ConsumerTopic))

	<-ctx.Done()
	zapLogger.Info("shutting down server...")
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i].Stop()
	}
	zapLogger.Info("server exiting")
}
