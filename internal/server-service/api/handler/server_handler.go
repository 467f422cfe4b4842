package handler

import (
	"Deployer_Microservice/internal/server-service/api/dto/request"
	"Deployer_Microservice/internal/server-service/api/dto/response"
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"
	"Deployer_Microservice/internal/server-service/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type ServerHandler interface {
	CreateServer() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	QueueForTesting() gin.HandlerFunc
	GetServerTestHistory() gin.HandlerFunc
	GetProjectServers() gin.HandlerFunc
	ReorderProjectServers() gin.HandlerFunc
	ExportProjectServers() gin.HandlerFunc
}

type serverHandler struct {
	logger        Logger
	serverService service.ServerService
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "uuid":
		return fmt.Sprintf("The %s field is not a valid uuid", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("The %s field must contain at least %s element", err.Field(), err.Param())
	case "ip|hostname_rfc1123":
		return fmt.Sprintf("The %s field is not a valid ip address or host name", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *serverHandler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: s.formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

// handleError writes the status matching err and logs anything that is not a client error.
func (s *serverHandler) handleError(c *gin.Context, err error, errDescription string) {
	var validationErr *apperrors.ValidationError
	var queueErr *apperrors.QueueError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: validationErr.Error(),
		})
	case errors.Is(err, apperrors.ErrServerNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Server not found",
		})
	case errors.Is(err, apperrors.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Project not found",
		})
	case errors.Is(err, apperrors.ErrServerOrderConflict):
		c.JSON(http.StatusConflict, response.Response{
			Message: "Server order changed concurrently, please retry",
		})
	case errors.As(err, &queueErr):
		s.logger.LoggingError(c, err, errDescription, zap.WarnLevel)
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Message: "Connection test queue is unavailable",
		})
	default:
		s.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateServerRequest
		if !s.bindJSON(c, &req) {
			return
		}
		newServer := model.Server{
			Name:       req.Name,
			User:       req.User,
			IpAddress:  req.IpAddress,
			Path:       req.Path,
			ProjectID:  req.ProjectID,
			DeployCode: true,
		}
		if req.Port != nil {
			newServer.Port = *req.Port
		}
		if req.DeployCode != nil {
			newServer.DeployCode = *req.DeployCode
		}
		res, err := s.serverService.CreateServer(c, newServer, req.AddCommands)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.CreateServer: %w", err), "failed to create server")
			return
		}
		c.JSON(http.StatusCreated, response.NewServerInfoResponse(res))
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var servers []model.Server
		var err error
		if name, ok := c.GetQuery("name"); ok {
			servers, err = s.serverService.QueryByName(c, name)
		} else {
			servers, err = s.serverService.GetServers(c)
		}
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.GetServers: %w", err), "failed to get servers")
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponses(servers))
	}
}

func (s *serverHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		server, err := s.serverService.GetServerById(c, id)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.GetServer: %w", err), fmt.Sprintf("failed to get server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponse(server))
	}
}

func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateServerRequest
		if !s.bindJSON(c, &req) {
			return
		}
		id := c.Param("id")
		updatedServer, err := s.serverService.UpdateServer(c, id, service.ServerUpdate{
			Name:       req.Name,
			User:       req.User,
			IpAddress:  req.IpAddress,
			Port:       req.Port,
			Path:       req.Path,
			DeployCode: req.DeployCode,
		})
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.UpdateServer: %w", err), fmt.Sprintf("failed to update server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponse(updatedServer))
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.serverService.DeleteServer(c, id); err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.DeleteServer: %w", err), fmt.Sprintf("failed to delete server %s", id))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *serverHandler) QueueForTesting() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		queued, err := s.serverService.QueueForTesting(c, id)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.QueueForTesting: %w", err), fmt.Sprintf("failed to queue connection test for server %s", id))
			return
		}
		res := response.QueueForTestingResponse{
			Queued:  queued,
			Message: "Connection test queued",
		}
		if !queued {
			res.Message = "Connection test already in progress"
		}
		c.JSON(http.StatusAccepted, res)
	}
}

func (s *serverHandler) GetServerTestHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}
		id := c.Param("id")
		results, err := s.serverService.GetServerTestHistory(c, id, limit)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.GetServerTestHistory: %w", err), fmt.Sprintf("failed to get connection tests of server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewConnectionTestResponses(results))
	}
}

func (s *serverHandler) GetProjectServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId := c.Param("id")
		servers, err := s.serverService.GetProjectServers(c, projectId)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.GetProjectServers: %w", err), fmt.Sprintf("failed to get servers of project %s", projectId))
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponses(servers))
	}
}

func (s *serverHandler) ReorderProjectServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReorderServersRequest
		if !s.bindJSON(c, &req) {
			return
		}
		projectId := c.Param("id")
		if err := s.serverService.ReorderServers(c, projectId, req.ServerIDs); err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.ReorderProjectServers: %w", err), fmt.Sprintf("failed to reorder servers of project %s", projectId))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Servers reordered",
		})
	}
}

func (s *serverHandler) ExportProjectServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId := c.Param("id")
		servers, err := s.serverService.GetProjectServers(c, projectId)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.ExportProjectServers: %w", err), fmt.Sprintf("failed to export servers of project %s", projectId))
			return
		}
		file, err := s.generateExcelFile(servers)
		if err != nil {
			s.handleError(c, fmt.Errorf("ServerHandler.ExportProjectServers: %w", err), fmt.Sprintf("failed to export servers of project %s", projectId))
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("servers-%s-%s.xlsx", projectId, time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		c.Status(http.StatusOK)
		if err = file.Write(c.Writer); err != nil {
			s.logger.LoggingError(c, fmt.Errorf("ServerHandler.ExportProjectServers: %w", err), "failed to write export file", zap.ErrorLevel)
		}
	}
}

var exportHeaders = []interface{}{"order", "id", "name", "user", "ip_address", "port", "path", "deploy_code", "status", "created_at", "updated_at"}

func (s *serverHandler) generateExcelFile(servers []model.Server) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeaders); err != nil {
		f.Close()
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.Order,
			server.ID,
			server.Name,
			server.User,
			server.IpAddress,
			server.Port,
			server.Path,
			server.DeployCode,
			server.Status,
			server.CreatedAt.Format("2006-01-02 15:04:05"),
			server.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func NewServerHandler(logger Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		logger:        logger,
		serverService: serverService,
	}
}
