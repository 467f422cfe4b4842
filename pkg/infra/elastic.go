package infra

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

type ElasticsearchConfig struct {
	Addresses []string
}

func NewElasticSearchConnection(cfg ElasticsearchConfig) (*elasticsearch.Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
	})

	if err != nil {
		return nil, fmt.Errorf("NewElasticSearchConnection: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("NewElasticSearchConnection: %w", err)
	}
	res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("NewElasticSearchConnection: ping returned %s", res.Status())
	}
	return es, nil
}

// EnsureIndex creates index with the given mapping unless it already exists.
func EnsureIndex(ctx context.Context, es *elasticsearch.Client, index string, mapping string) error {
	res, err := es.Indices.Exists([]string{index}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("EnsureIndex: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = es.Indices.Create(index,
		es.Indices.Create.WithContext(ctx),
		es.Indices.Create.WithBody(strings.NewReader(mapping)))
	if err != nil {
		return fmt.Errorf("EnsureIndex: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("EnsureIndex: create index %s: %s", index, res.String())
	}
	return nil
}
