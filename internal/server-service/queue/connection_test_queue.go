package queue

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"Deployer_Microservice/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type ConnectionTestQueue interface {
	EnqueueConnectionTest(ctx context.Context, server model.Server) error
}

type connectionTestQueue struct {
	writer infra.KafkaWriter
	now    func() time.Time
}

func (q *connectionTestQueue) EnqueueConnectionTest(ctx context.Context, server model.Server) error {
	job := model.ConnectionTestJob{
		JobID:     uuid.NewString(),
		ServerID:  server.ID,
		Name:      server.Name,
		User:      server.User,
		IpAddress: server.IpAddress,
		Port:      server.Port,
		Path:      server.Path,
		QueuedAt:  q.now().UTC(),
	}
	b, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("ConnectionTestQueue.EnqueueConnectionTest: %w", apperrors.NewQueueError(server.ID, err))
	}
	err = q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(server.ID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("ConnectionTestQueue.EnqueueConnectionTest: %w", apperrors.NewQueueError(server.ID, err))
	}
	return nil
}

func NewConnectionTestQueue(writer infra.KafkaWriter) ConnectionTestQueue {
	return &connectionTestQueue{
		writer: writer,
		now:    time.Now,
	}
}
