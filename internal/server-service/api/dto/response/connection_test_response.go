package response

import (
	"Deployer_Microservice/internal/server-service/model"
	"time"
)

type ConnectionTestResponse struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Attempts  int       `json:"attempts"`
	LatencyMs int64     `json:"latency_ms"`
	TestedAt  time.Time `json:"tested_at"`
}

func NewConnectionTestResponses(results []model.ConnectionTestResult) []ConnectionTestResponse {
	res := make([]ConnectionTestResponse, 0, len(results))
	for _, r := range results {
		res = append(res, ConnectionTestResponse{
			JobID:     r.JobID,
			Status:    r.Status,
			Error:     r.Error,
			Attempts:  r.Attempts,
			LatencyMs: r.LatencyMs,
			TestedAt:  r.TestedAt,
		})
	}
	return res
}
