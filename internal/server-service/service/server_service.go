package service

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"Deployer_Microservice/internal/server-service/queue"
	"Deployer_Microservice/internal/server-service/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultServerPort     = 22
	createConflictRetries = 3
)

type ServerService interface {
	// CreateServer validates server and appends it to its project. With addCommands it is attached
	// to every command of the project as well.
	CreateServer(ctx context.Context, server model.Server, addCommands bool) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServerById(ctx context.Context, id string) (model.Server, error)
	QueryByName(ctx context.Context, name string) ([]model.Server, error)
	GetProjectServers(ctx context.Context, projectId string) ([]model.Server, error)
	UpdateServer(ctx context.Context, id string, update ServerUpdate) (model.Server, error)
	DeleteServer(ctx context.Context, id string) error
	ReorderServers(ctx context.Context, projectId string, serverIds []string) error
	// QueueForTesting dispatches a connection test unless one is already outstanding. It reports
	// whether a job was enqueued by this call.
	QueueForTesting(ctx context.Context, id string) (bool, error)
	GetServerTestHistory(ctx context.Context, id string, limit int) ([]model.ConnectionTestResult, error)
	ReleaseStaleTests(ctx context.Context, olderThan time.Duration) (int, error)
}

// ServerUpdate holds the mutable columns of a server, nil fields are left unchanged.
type ServerUpdate struct {
	Name       *string
	User       *string
	IpAddress  *string
	Port       *int
	Path       *string
	DeployCode *bool
}

type serverService struct {
	serverRepository           repository.ServerRepository
	projectRepository          repository.ProjectRepository
	connectionResultRepository repository.ConnectionResultRepository
	connectionTestQueue        queue.ConnectionTestQueue
}

func (s *serverService) CreateServer(ctx context.Context, server model.Server, addCommands bool) (model.Server, error) {
	if server.Port == 0 {
		server.Port = defaultServerPort
	}
	if err := validateServer(server); err != nil {
		return server, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	server.ID = ""
	server.Status = model.ServerStatusUntested

	var err error
	for attempt := 1; attempt <= createConflictRetries; attempt++ {
		var created model.Server
		created, err = s.serverRepository.CreateServer(ctx, server, addCommands)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, apperrors.ErrServerOrderConflict) {
			break
		}
	}
	return server, fmt.Errorf("ServerService.CreateServer: %w", err)
}

func validateServer(server model.Server) error {
	required := []struct {
		field string
		value string
	}{
		{"project_id", server.ProjectID},
		{"name", server.Name},
		{"user", server.User},
		{"ip_address", server.IpAddress},
		{"path", server.Path},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperrors.NewValidationError(r.field, "is required")
		}
	}
	return validatePort(server.Port)
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return apperrors.NewValidationError("port", "must be between 1 and 65535")
	}
	return nil
}

func (s *serverService) GetServers(ctx context.Context) ([]model.Server, error) {
	servers, err := s.serverRepository.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServers: %w", err)
	}
	return servers, nil
}

func (s *serverService) GetServerById(ctx context.Context, id string) (model.Server, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return server, fmt.Errorf("ServerService.GetServerById: %w", err)
	}
	return server, nil
}

func (s *serverService) QueryByName(ctx context.Context, name string) ([]model.Server, error) {
	servers, err := s.serverRepository.QueryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("ServerService.QueryByName: %w", err)
	}
	return servers, nil
}

func (s *serverService) GetProjectServers(ctx context.Context, projectId string) ([]model.Server, error) {
	if _, err := s.projectRepository.GetById(ctx, projectId); err != nil {
		return nil, fmt.Errorf("ServerService.GetProjectServers: %w", err)
	}
	servers, err := s.serverRepository.GetProjectServers(ctx, projectId)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetProjectServers: %w", err)
	}
	return servers, nil
}

func (s *serverService) UpdateServer(ctx context.Context, id string, update ServerUpdate) (model.Server, error) {
	fields, err := update.fields()
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	updatedServer, err := s.serverRepository.UpdateServer(ctx, id, fields)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	return updatedServer, nil
}

func (u ServerUpdate) fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	strs := []struct {
		column string
		value  *string
	}{
		{"name", u.Name},
		{"user", u.User},
		{"ip_address", u.IpAddress},
		{"path", u.Path},
	}
	for _, str := range strs {
		if str.value == nil {
			continue
		}
		if strings.TrimSpace(*str.value) == "" {
			return nil, apperrors.NewValidationError(str.column, "must not be empty")
		}
		fields[str.column] = *str.value
	}
	if u.Port != nil {
		if err := validatePort(*u.Port); err != nil {
			return nil, err
		}
		fields["port"] = *u.Port
	}
	if u.DeployCode != nil {
		fields["deploy_code"] = *u.DeployCode
	}
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("body", "no field to update")
	}
	return fields, nil
}

func (s *serverService) DeleteServer(ctx context.Context, id string) error {
	err := s.serverRepository.DeleteServerById(ctx, id)
	if err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	return nil
}

// ReorderServers expects serverIds to list every server of the project exactly once.
func (s *serverService) ReorderServers(ctx context.Context, projectId string, serverIds []string) error {
	servers, err := s.GetProjectServers(ctx, projectId)
	if err != nil {
		return fmt.Errorf("ServerService.ReorderServers: %w", err)
	}
	seen := make(map[string]struct{}, len(serverIds))
	for _, id := range serverIds {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("ServerService.ReorderServers: %w", apperrors.NewValidationError("server_ids", "contains duplicates"))
		}
		seen[id] = struct{}{}
	}
	if len(serverIds) != len(servers) {
		return fmt.Errorf("ServerService.ReorderServers: %w", apperrors.NewValidationError("server_ids", "must list every server of the project"))
	}
	for _, server := range servers {
		if _, ok := seen[server.ID]; !ok {
			return fmt.Errorf("ServerService.ReorderServers: %w", apperrors.NewValidationError("server_ids", "must list every server of the project"))
		}
	}
	if err = s.serverRepository.ReorderServers(ctx, projectId, serverIds); err != nil {
		return fmt.Errorf("ServerService.ReorderServers: %w", err)
	}
	return nil
}

func (s *serverService) QueueForTesting(ctx context.Context, id string) (bool, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return false, fmt.Errorf("ServerService.QueueForTesting: %w", err)
	}
	if server.IsTesting() {
		return false, nil
	}
	marked, err := s.serverRepository.MarkServerTesting(ctx, id)
	if err != nil {
		return false, fmt.Errorf("ServerService.QueueForTesting: %w", err)
	}
	if !marked {
		// another caller switched the server to testing first
		return false, nil
	}

	previousStatus := server.Status
	server.Status = model.ServerStatusTesting
	if err = s.connectionTestQueue.EnqueueConnectionTest(ctx, server); err != nil {
		var queueErr *apperrors.QueueError
		if !errors.As(err, &queueErr) {
			err = apperrors.NewQueueError(id, err)
		}
		if _, e := s.serverRepository.FinishServerTesting(context.WithoutCancel(ctx), id, previousStatus); e != nil {
			err = errors.Join(err, fmt.Errorf("restore status %s: %w", previousStatus, e))
		}
		return false, fmt.Errorf("ServerService.QueueForTesting: %w", err)
	}
	return true, nil
}

func (s *serverService) GetServerTestHistory(ctx context.Context, id string, limit int) ([]model.ConnectionTestResult, error) {
	if _, err := s.serverRepository.GetServerById(ctx, id); err != nil {
		return nil, fmt.Errorf("ServerService.GetServerTestHistory: %w", err)
	}
	results, err := s.connectionResultRepository.GetServerResults(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServerTestHistory: %w", err)
	}
	return results, nil
}

func (s *serverService) ReleaseStaleTests(ctx context.Context, olderThan time.Duration) (int, error) {
	ids, err := s.serverRepository.ResetStaleTestingServers(ctx, olderThan)
	if err != nil {
		return len(ids), fmt.Errorf("ServerService.ReleaseStaleTests: %w", err)
	}
	return len(ids), nil
}

func NewServerService(serverRepository repository.ServerRepository, projectRepository repository.ProjectRepository,
	connectionResultRepository repository.ConnectionResultRepository, connectionTestQueue queue.ConnectionTestQueue) ServerService {
	return &serverService{
		serverRepository:           serverRepository,
		projectRepository:          projectRepository,
		connectionResultRepository: connectionResultRepository,
		connectionTestQueue:        connectionTestQueue,
	}
}
