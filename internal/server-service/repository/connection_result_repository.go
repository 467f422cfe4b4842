package repository

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"
)

const ConnectionTestIndexName = "server_connection_tests"

// ConnectionTestIndexMapping is the mapping ConnectionTestIndexName is created with.
const ConnectionTestIndexMapping = `{
  "mappings": {
    "properties": {
      "job_id":     {"type": "keyword"},
      "server_id":  {"type": "keyword"},
      "status":     {"type": "keyword"},
      "error":      {"type": "text"},
      "attempts":   {"type": "integer"},
      "latency_ms": {"type": "long"},
      "tested_at":  {"type": "date"}
    }
  }
}`

type ConnectionResultRepository interface {
	SaveResult(ctx context.Context, result model.ConnectionTestResult) error
	// GetServerResults returns the latest results of a server, newest first.
	GetServerResults(ctx context.Context, serverID string, limit int) ([]model.ConnectionTestResult, error)
}

type connectionResultRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esConnectionResultsResponse struct {
	Hits struct {
		Hits []struct {
			Source model.ConnectionTestResult `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *connectionResultRepository) SaveResult(ctx context.Context, result model.ConnectionTestResult) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		return fmt.Errorf("ConnectionResultRepository.SaveResult encode document: %w", err)
	}
	opts := []func(*esapi.IndexRequest){r.es.Index.WithContext(ctx)}
	if result.JobID != "" {
		// redelivered results overwrite the same document
		opts = append(opts, r.es.Index.WithDocumentID(result.JobID))
	}
	res, err := r.es.Index(ConnectionTestIndexName, &buf, opts...)
	if err != nil {
		return fmt.Errorf("ConnectionResultRepository.SaveResult: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("ConnectionResultRepository.SaveResult: %w", decodeEsError(res.StatusCode, res.Body))
	}
	return nil
}

func (r *connectionResultRepository) GetServerResults(ctx context.Context, serverID string, limit int) ([]model.ConnectionTestResult, error) {
	query := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"server_id": serverID,
			},
		},
		"sort": []map[string]interface{}{
			{
				"tested_at": map[string]interface{}{
					"order": "desc",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("ConnectionResultRepository.GetServerResults encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(ConnectionTestIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("ConnectionResultRepository.GetServerResults: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("ConnectionResultRepository.GetServerResults: %w", decodeEsError(res.StatusCode, res.Body))
	}

	var searchRes esConnectionResultsResponse
	if err = json.NewDecoder(res.Body).Decode(&searchRes); err != nil {
		return nil, fmt.Errorf("ConnectionResultRepository.GetServerResults decode response body: %w", err)
	}
	results := make([]model.ConnectionTestResult, 0, len(searchRes.Hits.Hits))
	for _, hit := range searchRes.Hits.Hits {
		results = append(results, hit.Source)
	}
	return results, nil
}

func decodeEsError(statusCode int, body io.Reader) error {
	var e esErrorResponse
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(statusCode, e.Error.Type, e.Error.Reason)
}

func NewConnectionResultRepository(esClient *elasticsearch.Client) ConnectionResultRepository {
	return &connectionResultRepository{
		es: esClient,
	}
}
