package test_result_consumer

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"Deployer_Microservice/internal/server-service/repository"
	"Deployer_Microservice/pkg/infra"
	"Deployer_Microservice/pkg/mail"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type ResultConsumer interface {
	Start()
	Stop()
}

type resultConsumer struct {
	kafkaReader infra.KafkaReader
	serverRepo  repository.ServerRepository
	resultRepo  repository.ConnectionResultRepository
	mailSender  mail.Sender
	adminEmail  string
	logger      *zap.Logger
	wg          sync.WaitGroup
}

func (r *resultConsumer) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			m, err := r.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("resultConsumer.Start: %w", err)
				r.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if m.Value == nil {
				r.commit(ctx, m)
				cancel()
				continue
			}
			var result model.ConnectionTestResult
			if err = json.Unmarshal(m.Value, &result); err != nil {
				err = fmt.Errorf("resultConsumer.Start: %w", err)
				r.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				r.commit(ctx, m)
				cancel()
				continue
			}
			if result.ServerID == "" || (result.Status != model.ServerStatusSuccessful && result.Status != model.ServerStatusFailed) {
				r.logger.Error("dropping invalid connection test result", zap.String("server_id", result.ServerID), zap.String("status", result.Status))
				r.commit(ctx, m)
				cancel()
				continue
			}
			if err = r.applyResult(ctx, result); err != nil {
				cancel()
				err = fmt.Errorf("resultConsumer.Start: %w", err)
				r.logger.Log(zap.ErrorLevel, "failed to apply connection test result", zap.Error(err), zap.String("server_id", result.ServerID))
				continue
			}
			r.commit(ctx, m)
			cancel()
		}
	}()
}

func (r *resultConsumer) commit(ctx context.Context, m kafka.Message) {
	if err := r.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("resultConsumer.commit: %w", err)
		r.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
	}
}

// applyResult moves the server out of testing and indexes the result. A server that is no longer
// testing keeps its status but the result is still indexed. The failure notice goes out with the
// status change, before indexing.
func (r *resultConsumer) applyResult(ctx context.Context, result model.ConnectionTestResult) error {
	changed, err := r.serverRepo.FinishServerTesting(ctx, result.ServerID, result.Status)
	if err != nil && !apperrors.IsNotFound(err) {
		return fmt.Errorf("resultConsumer.applyResult: %w", err)
	}
	if !changed {
		r.logger.Info("server is not testing, status left unchanged", zap.String("server_id", result.ServerID), zap.String("job_id", result.JobID))
	}
	if changed && result.Status == model.ServerStatusFailed {
		r.sendFailureNotice(ctx, result)
	}
	if err = r.resultRepo.SaveResult(ctx, result); err != nil {
		return fmt.Errorf("resultConsumer.applyResult: %w", err)
	}
	return nil
}

func (r *resultConsumer) sendFailureNotice(ctx context.Context, result model.ConnectionTestResult) {
	if r.mailSender == nil || r.adminEmail == "" {
		return
	}
	serverName := result.ServerID
	if server, err := r.serverRepo.GetServerById(ctx, result.ServerID); err == nil {
		serverName = fmt.Sprintf("%s (%s@%s:%d)", server.Name, server.User, server.IpAddress, server.Port)
	}
	err := r.mailSender.Send(mail.Message{
		To:      []string{r.adminEmail},
		Subject: fmt.Sprintf("Connection test failed for server %s", serverName),
		TextBody: fmt.Sprintf("Connection test %s for server %s failed after %d attempt(s) at %s.\n\nError: %s\n",
			result.JobID, serverName, result.Attempts, result.TestedAt.Format(time.RFC3339), result.Error),
	})
	if err != nil {
		r.logger.Warn("failed to send connection test failure notice", zap.Error(err), zap.String("server_id", result.ServerID))
	}
}

func (r *resultConsumer) Stop() {
	if err := r.kafkaReader.Close(); err != nil {
		r.logger.Warn("failed to close kafka reader", zap.Error(err))
	}
	r.wg.Wait()
}

// NewResultConsumer sends failure notices to adminEmail when mailSender is not nil.
func NewResultConsumer(reader infra.KafkaReader, serverRepo repository.ServerRepository, resultRepo repository.ConnectionResultRepository,
	mailSender mail.Sender, adminEmail string, logger *zap.Logger) ResultConsumer {
	return &resultConsumer{
		kafkaReader: reader,
		serverRepo:  serverRepo,
		resultRepo:  resultRepo,
		mailSender:  mailSender,
		adminEmail:  adminEmail,
		logger:      logger,
	}
}
