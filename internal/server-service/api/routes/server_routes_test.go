package routes

import (
	mockhandler "Deployer_Microservice/internal/server-service/mocks/api/handler"
	"Deployer_Microservice/pkg/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpServerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockServerHandler(ctrl)
	mockMiddleware := middleware.NewMockScopeMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	statusHandler := func(status int) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Status(status)
		}
	}
	requiredScopes := make(map[string]int)
	mockMiddleware.EXPECT().RequireScope(gomock.Any()).DoAndReturn(func(scope string) gin.HandlerFunc {
		requiredScopes[scope]++
		return func(c *gin.Context) {
			c.Next()
		}
	}).AnyTimes()

	mockHandler.EXPECT().CreateServer().Return(statusHandler(http.StatusCreated))
	mockHandler.EXPECT().GetServers().Return(statusHandler(http.StatusOK))
	mockHandler.EXPECT().GetServer().Return(statusHandler(http.StatusOK))
	mockHandler.EXPECT().UpdateServer().Return(statusHandler(http.StatusOK))
	mockHandler.EXPECT().DeleteServer().Return(statusHandler(http.StatusNoContent))
	mockHandler.EXPECT().QueueForTesting().Return(statusHandler(http.StatusAccepted))
	mockHandler.EXPECT().GetServerTestHistory().Return(statusHandler(http.StatusPartialContent))
	mockHandler.EXPECT().GetProjectServers().Return(statusHandler(http.StatusNonAuthoritativeInfo))
	mockHandler.EXPECT().ReorderProjectServers().Return(statusHandler(http.StatusResetContent))
	mockHandler.EXPECT().ExportProjectServers().Return(statusHandler(http.StatusMultiStatus))

	SetUpServerRoutes(r, mockHandler, mockMiddleware)

	assert.Equal(t, map[string]int{
		ScopeServersCreate: 1,
		ScopeServersRead:   5,
		ScopeServersUpdate: 3,
		ScopeServersDelete: 1,
	}, requiredScopes)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"Create Server Route", http.MethodPost, "/servers", http.StatusCreated},
		{"Get Servers Route", http.MethodGet, "/servers?name=web", http.StatusOK},
		{"Get Server Route", http.MethodGet, "/servers/some-id", http.StatusOK},
		{"Update Server Route", http.MethodPatch, "/servers/some-id", http.StatusOK},
		{"Delete Server Route", http.MethodDelete, "/servers/some-id", http.StatusNoContent},
		{"Queue For Testing Route", http.MethodPost, "/servers/some-id/test", http.StatusAccepted},
		{"Test History Route", http.MethodGet, "/servers/some-id/tests", http.StatusPartialContent},
		{"Project Servers Route", http.MethodGet, "/projects/project-id/servers", http.StatusNonAuthoritativeInfo},
		{"Reorder Route", http.MethodPut, "/projects/project-id/servers/order", http.StatusResetContent},
		{"Export Route", http.MethodGet, "/projects/project-id/servers/export", http.StatusMultiStatus},
		{"Unknown Route", http.MethodGet, "/servers/some-id/uptime", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
