package repository

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const serverOrderConstraint = "servers_project_id_order_key"

type ServerRepository interface {
	// CreateServer appends the server to the end of its project's order. When addCommands is set
	// the server is also attached to every command of the project.
	CreateServer(ctx context.Context, server model.Server, addCommands bool) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServerById(ctx context.Context, serverId string) (model.Server, error)
	GetProjectServers(ctx context.Context, projectId string) ([]model.Server, error)
	QueryByName(ctx context.Context, name string) ([]model.Server, error)
	UpdateServer(ctx context.Context, serverId string, fields map[string]interface{}) (model.Server, error)
	DeleteServerById(ctx context.Context, serverId string) error
	ReorderServers(ctx context.Context, projectId string, serverIds []string) error
	// MarkServerTesting switches the server to testing unless it already is. It reports whether
	// this call made the switch.
	MarkServerTesting(ctx context.Context, serverId string) (bool, error)
	// FinishServerTesting moves a testing server to status. It reports false when the server was
	// not testing.
	FinishServerTesting(ctx context.Context, serverId string, status string) (bool, error)
	// ResetStaleTestingServers moves servers stuck in testing longer than olderThan back to untested
	// and returns their ids.
	ResetStaleTestingServers(ctx context.Context, olderThan time.Duration) ([]string, error)
}

type serverRepository struct {
	db       *gorm.DB
	servers  baseRepository[model.Server]
	projects baseRepository[model.Project]
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server, addCommands bool) (model.Server, error) {
	if !isValidID(server.ProjectID) {
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrProjectNotFound)
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the project row lock serializes order assignment per project
		if _, err := s.projects.lockById(tx, server.ProjectID); err != nil {
			return err
		}

		var last model.Server
		result := tx.Where("project_id = ?", server.ProjectID).Order(`"order" DESC`).Take(&last)
		switch {
		case result.Error == nil:
			server.Order = last.Order + 1
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			server.Order = 0
		default:
			return apperrors.NewStorageError("select max order", result.Error)
		}

		if err := tx.Create(&server).Error; err != nil {
			return err
		}

		if addCommands {
			err := tx.Exec(`INSERT INTO command_servers (command_id, server_id) SELECT c.id, s.id FROM commands c JOIN servers s ON s.project_id = c.project_id WHERE s.id = ? ON CONFLICT DO NOTHING`, server.ID).Error
			if err != nil {
				return apperrors.NewStorageError("attach server to commands", err)
			}
		}
		return nil
	})
	if err != nil {
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", classifyWriteError("insert server", err))
	}
	return server, nil
}

func (s *serverRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Order("name").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", apperrors.NewStorageError("select servers", result.Error))
	}
	return servers, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId string) (model.Server, error) {
	server, err := s.servers.GetById(ctx, serverId)
	if err != nil {
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", err)
	}
	return server, nil
}

func (s *serverRepository) GetProjectServers(ctx context.Context, projectId string) ([]model.Server, error) {
	servers := make([]model.Server, 0)
	if !isValidID(projectId) {
		return servers, nil
	}
	result := s.db.WithContext(ctx).Where("project_id = ?", projectId).Order(`"order"`).Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetProjectServers: %w", apperrors.NewStorageError("select project servers", result.Error))
	}
	return servers, nil
}

func (s *serverRepository) QueryByName(ctx context.Context, name string) ([]model.Server, error) {
	servers := make([]model.Server, 0)
	result := s.db.WithContext(ctx).Where("name ILIKE ?", "%"+escapeLike(name)+"%").Order("name").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.QueryByName: %w", apperrors.NewStorageError("select servers by name", result.Error))
	}
	return servers, nil
}

func (s *serverRepository) UpdateServer(ctx context.Context, serverId string, fields map[string]interface{}) (model.Server, error) {
	var server model.Server
	if !isValidID(serverId) {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	result := s.db.WithContext(ctx).Model(&server).Clauses(clause.Returning{}).Where("id = ?", serverId).Updates(fields)
	if result.Error != nil {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.NewStorageError("update server", result.Error))
	}
	if result.RowsAffected == 0 {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	return server, nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId string) error {
	if !isValidID(serverId) {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.NewStorageError("delete server", result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) ReorderServers(ctx context.Context, projectId string, serverIds []string) error {
	if !isValidID(projectId) {
		return fmt.Errorf("ServerRepository.ReorderServers: %w", apperrors.ErrProjectNotFound)
	}
	for _, id := range serverIds {
		if !isValidID(id) {
			return fmt.Errorf("ServerRepository.ReorderServers: %w", apperrors.ErrServerNotFound)
		}
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.projects.lockById(tx, projectId); err != nil {
			return err
		}
		for i, id := range serverIds {
			result := tx.Model(&model.Server{}).Where("id = ? AND project_id = ?", id, projectId).Update("order", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.ErrServerNotFound
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ServerRepository.ReorderServers: %w", classifyWriteError("update server order", err))
	}
	return nil
}

func (s *serverRepository) MarkServerTesting(ctx context.Context, serverId string) (bool, error) {
	if !isValidID(serverId) {
		return false, fmt.Errorf("ServerRepository.MarkServerTesting: %w", apperrors.ErrServerNotFound)
	}
	result := s.db.WithContext(ctx).Model(&model.Server{}).
		Where("id = ? AND status <> ?", serverId, model.ServerStatusTesting).
		Update("status", model.ServerStatusTesting)
	if result.Error != nil {
		return false, fmt.Errorf("ServerRepository.MarkServerTesting: %w", apperrors.NewStorageError("update server status", result.Error))
	}
	return result.RowsAffected > 0, nil
}

func (s *serverRepository) FinishServerTesting(ctx context.Context, serverId string, status string) (bool, error) {
	if !isValidID(serverId) {
		return false, fmt.Errorf("ServerRepository.FinishServerTesting: %w", apperrors.ErrServerNotFound)
	}
	result := s.db.WithContext(ctx).Model(&model.Server{}).
		Where("id = ? AND status = ?", serverId, model.ServerStatusTesting).
		Update("status", status)
	if result.Error != nil {
		return false, fmt.Errorf("ServerRepository.FinishServerTesting: %w", apperrors.NewStorageError("update server status", result.Error))
	}
	return result.RowsAffected > 0, nil
}

func (s *serverRepository) ResetStaleTestingServers(ctx context.Context, olderThan time.Duration) ([]string, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Model(&servers).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("status = ? AND updated_at < ?", model.ServerStatusTesting, time.Now().Add(-olderThan)).
		Update("status", model.ServerStatusUntested)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.ResetStaleTestingServers: %w", apperrors.NewStorageError("reset stale testing servers", result.Error))
	}
	ids := make([]string, len(servers))
	for i, server := range servers {
		ids[i] = server.ID
	}
	return ids, nil
}

// classifyWriteError keeps domain errors as they are and turns everything else into a StorageError.
func classifyWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == serverOrderConstraint {
		return apperrors.ErrServerOrderConflict
	}
	var storageErr *apperrors.StorageError
	if apperrors.IsNotFound(err) || errors.As(err, &storageErr) {
		return err
	}
	return apperrors.NewStorageError(op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db:       db,
		servers:  newBaseRepository[model.Server](db, apperrors.ErrServerNotFound),
		projects: newBaseRepository[model.Project](db, apperrors.ErrProjectNotFound),
	}
}
