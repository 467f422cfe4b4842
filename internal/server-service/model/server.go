package model

import "time"

const (
	ServerStatusSuccessful = "successful"
	ServerStatusUntested   = "untested"
	ServerStatusFailed     = "failed"
	ServerStatusTesting    = "testing"
)

type Server struct {
	ID         string `gorm:"default:(-)"`
	Name       string
	User       string
	IpAddress  string
	Port       int
	Path       string
	ProjectID  string
	Order      int
	DeployCode bool
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s Server) IsTesting() bool {
	return s.Status == ServerStatusTesting
}

func IsValidServerStatus(status string) bool {
	switch status {
	case ServerStatusSuccessful, ServerStatusUntested, ServerStatusFailed, ServerStatusTesting:
		return true
	}
	return false
}
