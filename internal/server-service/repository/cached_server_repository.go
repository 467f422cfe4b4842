package repository

import (
	"Deployer_Microservice/internal/server-service/model"
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type cachedServerRepository struct {
	redis    *redis.Client
	repo     ServerRepository
	cacheTTL time.Duration
}

func (*cachedServerRepository) getServerCachedKey(id string) string {
	return fmt.Sprintf("server:%s", id)
}

func (c *cachedServerRepository) getServerCachedKeys(ids []string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.getServerCachedKey(id)
	}
	return keys
}

// invalidate drops the keys before a write, evict drops them again once the write succeeded.
func (c *cachedServerRepository) invalidate(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.redis.Del(ctx, c.getServerCachedKeys(ids)...).Err(); err != nil {
		return fmt.Errorf("cachedServerRepository.invalidate: %w", err)
	}
	return nil
}

func (c *cachedServerRepository) evict(ctx context.Context, ids ...string) {
	if len(ids) == 0 {
		return
	}
	_ = c.redis.Del(ctx, c.getServerCachedKeys(ids)...).Err()
}

func (c *cachedServerRepository) CreateServer(ctx context.Context, server model.Server, addCommands bool) (model.Server, error) {
	return c.repo.CreateServer(ctx, server, addCommands)
}

func (c *cachedServerRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	return c.repo.GetServers(ctx)
}

func (c *cachedServerRepository) GetServerById(ctx context.Context, serverId string) (model.Server, error) {
	key := c.getServerCachedKey(serverId)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var server model.Server
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&server); e == nil && !server.IsTesting() {
			return server, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return model.Server{}, fmt.Errorf("cachedServerRepository.GetServerById: %w", err)
	}

	server, err := c.repo.GetServerById(ctx, serverId)
	if err != nil {
		return server, err
	}
	// testing servers are always read from the database
	if server.IsTesting() {
		return server, nil
	}
	var buf bytes.Buffer
	if err = gob.NewEncoder(&buf).Encode(server); err != nil {
		return server, fmt.Errorf("cachedServerRepository.GetServerById: %w", err)
	}
	// a failed cache fill only costs the next reader a database round trip
	_ = c.redis.Set(ctx, key, buf.Bytes(), c.cacheTTL).Err()
	return server, nil
}

func (c *cachedServerRepository) GetProjectServers(ctx context.Context, projectId string) ([]model.Server, error) {
	return c.repo.GetProjectServers(ctx, projectId)
}

func (c *cachedServerRepository) QueryByName(ctx context.Context, name string) ([]model.Server, error) {
	return c.repo.QueryByName(ctx, name)
}

func (c *cachedServerRepository) UpdateServer(ctx context.Context, serverId string, fields map[string]interface{}) (model.Server, error) {
	if err := c.invalidate(ctx, serverId); err != nil {
		return model.Server{}, fmt.Errorf("cachedServerRepository.UpdateServer: %w", err)
	}
	server, err := c.repo.UpdateServer(ctx, serverId, fields)
	if err != nil {
		return server, err
	}
	c.evict(ctx, serverId)
	return server, nil
}

func (c *cachedServerRepository) DeleteServerById(ctx context.Context, serverId string) error {
	if err := c.invalidate(ctx, serverId); err != nil {
		return fmt.Errorf("cachedServerRepository.DeleteServerById: %w", err)
	}
	if err := c.repo.DeleteServerById(ctx, serverId); err != nil {
		return err
	}
	c.evict(ctx, serverId)
	return nil
}

func (c *cachedServerRepository) ReorderServers(ctx context.Context, projectId string, serverIds []string) error {
	if err := c.invalidate(ctx, serverIds...); err != nil {
		return fmt.Errorf("cachedServerRepository.ReorderServers: %w", err)
	}
	if err := c.repo.ReorderServers(ctx, projectId, serverIds); err != nil {
		return err
	}
	c.evict(ctx, serverIds...)
	return nil
}

func (c *cachedServerRepository) MarkServerTesting(ctx context.Context, serverId string) (bool, error) {
	if err := c.invalidate(ctx, serverId); err != nil {
		return false, fmt.Errorf("cachedServerRepository.MarkServerTesting: %w", err)
	}
	marked, err := c.repo.MarkServerTesting(ctx, serverId)
	if err != nil {
		return marked, err
	}
	c.evict(ctx, serverId)
	return marked, nil
}

func (c *cachedServerRepository) FinishServerTesting(ctx context.Context, serverId string, status string) (bool, error) {
	if err := c.invalidate(ctx, serverId); err != nil {
		return false, fmt.Errorf("cachedServerRepository.FinishServerTesting: %w", err)
	}
	finished, err := c.repo.FinishServerTesting(ctx, serverId, status)
	if err != nil {
		return finished, err
	}
	c.evict(ctx, serverId)
	return finished, nil
}

func (c *cachedServerRepository) ResetStaleTestingServers(ctx context.Context, olderThan time.Duration) ([]string, error) {
	ids, err := c.repo.ResetStaleTestingServers(ctx, olderThan)
	if err != nil || len(ids) == 0 {
		return ids, err
	}
	if err = c.invalidate(ctx, ids...); err != nil {
		return ids, fmt.Errorf("cachedServerRepository.ResetStaleTestingServers: %w", err)
	}
	return ids, nil
}

func NewCachedServerRepository(redis *redis.Client, repo ServerRepository, cacheTTL time.Duration) ServerRepository {
	return &cachedServerRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
