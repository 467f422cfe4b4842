package routes

import (
	"Deployer_Microservice/internal/server-service/api/handler"
	"Deployer_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeServersRead   = "servers:read"
	ScopeServersCreate = "servers:create"
	ScopeServersUpdate = "servers:update"
	ScopeServersDelete = "servers:delete"
)

func SetUpServerRoutes(r *gin.Engine, handler handler.ServerHandler, m middleware.ScopeMiddleware) {
	serverRoutes := r.Group("/servers")
	serverRoutes.POST("", m.RequireScope(ScopeServersCreate), handler.CreateServer())
	serverRoutes.GET("", m.RequireScope(ScopeServersRead), handler.GetServers())
	serverRoutes.GET("/:id", m.RequireScope(ScopeServersRead), handler.GetServer())
	serverRoutes.PATCH("/:id", m.RequireScope(ScopeServersUpdate), handler.UpdateServer())
	serverRoutes.DELETE("/:id", m.RequireScope(ScopeServersDelete), handler.DeleteServer())
	serverRoutes.POST("/:id/test", m.RequireScope(ScopeServersUpdate), handler.QueueForTesting())
	serverRoutes.GET("/:id/tests", m.RequireScope(ScopeServersRead), handler.GetServerTestHistory())

	projectRoutes := r.Group("/projects/:id/servers")
	projectRoutes.GET("", m.RequireScope(ScopeServersRead), handler.GetProjectServers())
	projectRoutes.PUT("/order", m.RequireScope(ScopeServersUpdate), handler.ReorderProjectServers())
	projectRoutes.GET("/export", m.RequireScope(ScopeServersRead), handler.ExportProjectServers())
}
