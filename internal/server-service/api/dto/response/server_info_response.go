package response

import (
	"Deployer_Microservice/internal/server-service/model"
	"time"
)

type ServerInfoResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	User       string    `json:"user"`
	IpAddress  string    `json:"ip_address"`
	Port       int       `json:"port"`
	Path       string    `json:"path"`
	ProjectID  string    `json:"project_id"`
	Order      int       `json:"order"`
	DeployCode bool      `json:"deploy_code"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewServerInfoResponse(server model.Server) ServerInfoResponse {
	return ServerInfoResponse{
		ID:         server.ID,
		Name:       server.Name,
		User:       server.User,
		IpAddress:  server.IpAddress,
		Port:       server.Port,
		Path:       server.Path,
		ProjectID:  server.ProjectID,
		Order:      server.Order,
		DeployCode: server.DeployCode,
		Status:     server.Status,
		CreatedAt:  server.CreatedAt,
		UpdatedAt:  server.UpdatedAt,
	}
}

func NewServerInfoResponses(servers []model.Server) []ServerInfoResponse {
	res := make([]ServerInfoResponse, 0, len(servers))
	for _, server := range servers {
		res = append(res, NewServerInfoResponse(server))
	}
	return res
}
