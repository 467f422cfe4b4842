package repository

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Response *http.Response
	Err      error
	Request  *http.Request
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Request = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, *mockRoundTripper, error) {
	if err != nil {
		transport := &mockRoundTripper{Err: err}
		client, e := elasticsearch.NewClient(elasticsearch.Config{
			Transport: transport,
		})
		return client, transport, e
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	transport := &mockRoundTripper{
		Response: &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		},
	}
	client, e := elasticsearch.NewClient(elasticsearch.Config{
		Transport: transport,
	})
	return client, transport, e
}

const esErrorBody = `{
	"error": {
		"type": "index_not_found_exception",
		"reason": "no such index [server_connection_tests]"
	}
}`

func TestConnectionResultRepository_SaveResult(t *testing.T) {
	result := model.ConnectionTestResult{
		JobID:     "job-1",
		ServerID:  "server-1",
		Status:    model.ServerStatusSuccessful,
		Attempts:  1,
		LatencyMs: 42,
		TestedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		expectErr      bool
		expectEsErr    bool
	}{
		{
			name:           "Success",
			mockStatusCode: http.StatusCreated,
			mockBody:       `{"_index":"server_connection_tests","_id":"job-1","result":"created"}`,
		},
		{
			name:      "Error - transport error",
			mockErr:   errors.New("network connection failed"),
			expectErr: true,
		},
		{
			name:           "Error - Elasticsearch API returns an error",
			mockStatusCode: http.StatusNotFound,
			mockBody:       esErrorBody,
			expectErr:      true,
			expectEsErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, transport, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewConnectionResultRepository(client)
			err = repo.SaveResult(context.Background(), result)

			if !tc.expectErr {
				assert.NoError(t, err)
				require.NotNil(t, transport.Request)
				assert.Equal(t, http.MethodPut, transport.Request.Method)
				assert.Equal(t, "/server_connection_tests/_doc/job-1", transport.Request.URL.Path)
				return
			}
			assert.Error(t, err)
			var esErr *apperrors.ElasticSearchError
			assert.Equal(t, tc.expectEsErr, errors.As(err, &esErr))
		})
	}
}

func TestConnectionResultRepository_GetServerResults(t *testing.T) {
	successBody := `{
		"hits": {
			"hits": [
				{ "_source": { "job_id": "job-2", "server_id": "server-1", "status": "failed", "error": "connection refused", "attempts": 1, "latency_ms": 3, "tested_at": "2025-06-01T11:00:00Z" } },
				{ "_source": { "job_id": "job-1", "server_id": "server-1", "status": "successful", "attempts": 2, "latency_ms": 40, "tested_at": "2025-06-01T10:00:00Z" } }
			]
		}
	}`

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         []model.ConnectionTestResult
		expectErr      bool
	}{
		{
			name:           "Success Should return results newest first",
			mockStatusCode: http.StatusOK,
			mockBody:       successBody,
			output: []model.ConnectionTestResult{
				{JobID: "job-2", ServerID: "server-1", Status: "failed", Error: "connection refused", Attempts: 1, LatencyMs: 3, TestedAt: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)},
				{JobID: "job-1", ServerID: "server-1", Status: "successful", Attempts: 2, LatencyMs: 40, TestedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:           "Success - no results",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"hits":{"hits":[]}}`,
			output:         []model.ConnectionTestResult{},
		},
		{
			name:      "Error - transport error",
			mockErr:   errors.New("network connection failed"),
			expectErr: true,
		},
		{
			name:           "Error - Elasticsearch API returns an error",
			mockStatusCode: http.StatusNotFound,
			mockBody:       esErrorBody,
			expectErr:      true,
		},
		{
			name:           "Error - Failed to decode Elasticsearch error response",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       `{"error": "invalid json"`,
			expectErr:      true,
		},
		{
			name:           "Error - Failed to decode success response",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"hits": "invalid json"`,
			expectErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewConnectionResultRepository(client)
			got, err := repo.GetServerResults(context.Background(), "server-1", 20)

			if tc.expectErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			require.Len(t, got, len(tc.output))
			for i := range tc.output {
				assert.True(t, tc.output[i].TestedAt.Equal(got[i].TestedAt))
				got[i].TestedAt = tc.output[i].TestedAt
			}
			assert.Equal(t, tc.output, got)
		})
	}
}
