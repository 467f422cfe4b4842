package connection_tester

import (
	"Deployer_Microservice/internal/server-service/model"
	"Deployer_Microservice/pkg/infra"
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

const processTimeout = 2 * time.Minute

type Consumer interface {
	Start()
	// Stop closes the kafka reader and waits for the consume loop to return. The writer stays open.
	Stop()
}

type consumer struct {
	kafkaReader infra.KafkaReader
	kafkaWriter infra.KafkaWriter
	prober      Prober
	logger      *zap.Logger
	wg          sync.WaitGroup
}

func (c *consumer) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
			if m.Value == nil {
				c.commit(ctx, m)
				cancel()
				continue
			}
			var job model.ConnectionTestJob
			if err = json.Unmarshal(m.Value, &job); err != nil {
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				c.commit(ctx, m)
				cancel()
				continue
			}
			if err = c.performConnectionTest(ctx, job); err != nil {
				cancel()
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to perform connection test", zap.Error(err), zap.String("server_id", job.ServerID))
				continue
			}
			c.commit(ctx, m)
			cancel()
		}
	}()
}

func (c *consumer) commit(ctx context.Context, m kafka.Message) {
	if err := c.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("consumer.commit: %w", err)
		c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
	}
}

func (c *consumer) performConnectionTest(ctx context.Context, job model.ConnectionTestJob) error {
	result := model.ConnectionTestResult{
		JobID:    job.JobID,
		ServerID: job.ServerID,
		Status:   model.ServerStatusSuccessful,
	}
	res, err := c.prober.Probe(ctx, job)
	switch {
	case err != nil:
		result.Status = model.ServerStatusFailed
		result.Error = err.Error()
		result.TestedAt = time.Now().UTC()
	default:
		if res.Error != nil {
			result.Status = model.ServerStatusFailed
			result.Error = res.Error.Error()
		}
		result.Attempts = res.Attempts
		result.LatencyMs = res.Latency.Milliseconds()
		result.TestedAt = res.Timestamp.UTC()
	}
	c.logger.Info("connection test finished",
		zap.String("server_id", job.ServerID),
		zap.String("job_id", job.JobID),
		zap.String("status", result.Status),
		zap.Int("attempts", result.Attempts),
	)

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("consumer.performConnectionTest: %w", err)
	}
	err = c.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(job.ServerID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("consumer.performConnectionTest: %w", err)
	}
	return nil
}

func (c *consumer) Stop() {
	if err := c.kafkaReader.Close(); err != nil {
		c.logger.Warn("failed to close kafka reader", zap.Error(err))
	}
	c.wg.Wait()
}

func NewConsumer(reader infra.KafkaReader, writer infra.KafkaWriter, prober Prober, logger *zap.Logger) Consumer {
	return &consumer{
		kafkaReader: reader,
		kafkaWriter: writer,
		prober:      prober,
		logger:      logger,
	}
}
