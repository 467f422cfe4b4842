package model

import "time"

// ConnectionTestJob is published for every server queued for a connection test.
type ConnectionTestJob struct {
	JobID     string    `json:"job_id"`
	ServerID  string    `json:"server_id"`
	Name      string    `json:"name"`
	User      string    `json:"user"`
	IpAddress string    `json:"ip_address"`
	Port      int       `json:"port"`
	Path      string    `json:"path"`
	QueuedAt  time.Time `json:"queued_at"`
}

type ConnectionTestResult struct {
	JobID     string    `json:"job_id"`
	ServerID  string    `json:"server_id"`
	Status    string    `json:"status"` // successful or failed
	Error     string    `json:"error,omitempty"`
	Attempts  int       `json:"attempts"`
	LatencyMs int64     `json:"latency_ms"`
	TestedAt  time.Time `json:"tested_at"`
}
