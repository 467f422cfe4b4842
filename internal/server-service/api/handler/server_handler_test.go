package handler

import (
	"Deployer_Microservice/internal/server-service/api/dto/request"
	apperrors "Deployer_Microservice/internal/server-service/errors"
	mockservice "Deployer_Microservice/internal/server-service/mocks/service"
	"Deployer_Microservice/internal/server-service/model"
	"Deployer_Microservice/internal/server-service/service"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testProjectID = "2b0f7e3c-3c1d-4c9e-9d3e-6b8f2f8f5a10"

func setupTestContext(t *testing.T, method, url string, body io.Reader, params ...gin.Param) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	return w, c
}

func jsonBody(body interface{}) io.Reader {
	if bodyStr, ok := body.(string); ok {
		return strings.NewReader(bodyStr)
	}
	b, _ := json.Marshal(body)
	return bytes.NewReader(b)
}

func newTestHandler(t *testing.T) (ServerHandler, *mockservice.MockServerService) {
	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockServerService(ctrl)
	return NewServerHandler(NewLogger(zap.NewNop()), mockService), mockService
}

func TestServerHandler_CreateServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	port := 2222

	serverReq := request.CreateServerRequest{
		Name:        "web-1",
		User:        "deploy",
		IpAddress:   "10.0.0.5",
		Port:        &port,
		Path:        "/var/www/app",
		ProjectID:   testProjectID,
		AddCommands: true,
	}
	serverModel := model.Server{
		Name:       "web-1",
		User:       "deploy",
		IpAddress:  "10.0.0.5",
		Port:       2222,
		Path:       "/var/www/app",
		ProjectID:  testProjectID,
		DeployCode: true,
	}
	createdServer := serverModel
	createdServer.ID = "server-1"
	createdServer.Order = 2
	createdServer.Status = model.ServerStatusUntested

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockServerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Server Created",
			body: serverReq,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().CreateServer(gomock.Any(), serverModel, true).Return(createdServer, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"order":2`,
		},
		{
			name: "Success host name and defaults",
			body: `{"name":"web-2","user":"deploy","ip_address":"web-2.internal","path":"/srv","project_id":"` + testProjectID + `","deploy_code":false}`,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().CreateServer(gomock.Any(), model.Server{
					Name:       "web-2",
					User:       "deploy",
					IpAddress:  "web-2.internal",
					Path:       "/srv",
					ProjectID:  testProjectID,
					DeployCode: false,
				}, false).Return(model.Server{ID: "server-2"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"server-2"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"name": "web-1"`,
			setupMocks:     func(mockService *mockservice.MockServerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name:           "Error Validation Failed (required field)",
			body:           request.CreateServerRequest{User: "deploy"},
			setupMocks:     func(mockService *mockservice.MockServerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Name field is required"`,
		},
		{
			name: "Error Validation Failed (project id)",
			body: request.CreateServerRequest{
				Name: "web-1", User: "deploy", IpAddress: "10.0.0.5", Path: "/srv", ProjectID: "project-1",
			},
			setupMocks:     func(mockService *mockservice.MockServerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The ProjectID field is not a valid uuid"`,
		},
		{
			name: "Error Project Not Found",
			body: serverReq,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().CreateServer(gomock.Any(), serverModel, true).Return(model.Server{}, apperrors.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Project not found"`,
		},
		{
			name: "Error Order Conflict",
			body: serverReq,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().CreateServer(gomock.Any(), serverModel, true).Return(model.Server{}, apperrors.ErrServerOrderConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Server order changed concurrently, please retry"`,
		},
		{
			name: "Error Service Validation",
			body: serverReq,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().CreateServer(gomock.Any(), serverModel, true).Return(model.Server{}, apperrors.NewValidationError("path", "is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid path: is required"`,
		},
		{
			name: "Error Internal Server Error",
			body: serverReq,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().CreateServer(gomock.Any(), serverModel, true).Return(model.Server{}, errors.New("unexpected db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newTestHandler(t)
			tc.setupMocks(mockService)

			w, c := setupTestContext(t, http.MethodPost, "/servers", jsonBody(tc.body))
			handler.CreateServer()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestServerHandler_GetServers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serversList := []model.Server{
		{ID: "1", Name: "ServerA"},
		{ID: "2", Name: "ServerB"},
	}

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockServerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Get all servers",
			url:  "/servers",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().GetServers(gomock.Any()).Return(serversList, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"1","name":"ServerA"`,
		},
		{
			name: "Success Query by name",
			url:  "/servers?name=serv",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueryByName(gomock.Any(), "serv").Return(serversList, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"2","name":"ServerB"`,
		},
		{
			name: "Success Query by name without match",
			url:  "/servers?name=db",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueryByName(gomock.Any(), "db").Return([]model.Server{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Error Service fails",
			url:  "/servers",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().GetServers(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newTestHandler(t)
			tc.setupMocks(mockService)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)
			handler.GetServers()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestServerHandler_GetServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().GetServerById(gomock.Any(), "server-1").Return(model.Server{ID: "server-1", Status: model.ServerStatusTesting}, nil)

		w, c := setupTestContext(t, http.MethodGet, "/servers/server-1", nil, gin.Param{Key: "id", Value: "server-1"})
		handler.GetServer()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"testing"`)
	})

	t.Run("Error not found", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().GetServerById(gomock.Any(), "server-1").Return(model.Server{}, apperrors.ErrServerNotFound)

		w, c := setupTestContext(t, http.MethodGet, "/servers/server-1", nil, gin.Param{Key: "id", Value: "server-1"})
		handler.GetServer()(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Server not found"`)
	})
}

func TestServerHandler_UpdateServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	name := "web-renamed"

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockServerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"name":"web-renamed"}`,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().UpdateServer(gomock.Any(), "server-1", service.ServerUpdate{Name: &name}).
					Return(model.Server{ID: "server-1", Name: name}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"web-renamed"`,
		},
		{
			name:           "Error invalid port",
			body:           `{"port":0}`,
			setupMocks:     func(mockService *mockservice.MockServerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Port field must be greater than or equal to 1"`,
		},
		{
			name: "Error nothing to update",
			body: `{}`,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().UpdateServer(gomock.Any(), "server-1", service.ServerUpdate{}).
					Return(model.Server{}, apperrors.NewValidationError("body", "no field to update"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid body: no field to update"`,
		},
		{
			name: "Error server not found",
			body: `{"name":"web-renamed"}`,
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().UpdateServer(gomock.Any(), "server-1", gomock.Any()).Return(model.Server{}, apperrors.ErrServerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Server not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newTestHandler(t)
			tc.setupMocks(mockService)

			w, c := setupTestContext(t, http.MethodPatch, "/servers/server-1", jsonBody(tc.body), gin.Param{Key: "id", Value: "server-1"})
			handler.UpdateServer()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestServerHandler_DeleteServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().DeleteServer(gomock.Any(), "server-1").Return(nil)

		w, c := setupTestContext(t, http.MethodDelete, "/servers/server-1", nil, gin.Param{Key: "id", Value: "server-1"})
		handler.DeleteServer()(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error not found", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().DeleteServer(gomock.Any(), "server-1").Return(apperrors.ErrServerNotFound)

		w, c := setupTestContext(t, http.MethodDelete, "/servers/server-1", nil, gin.Param{Key: "id", Value: "server-1"})
		handler.DeleteServer()(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServerHandler_QueueForTesting(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockServerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success job queued",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueueForTesting(gomock.Any(), "server-1").Return(true, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `{"queued":true,"message":"Connection test queued"}`,
		},
		{
			name: "Success test already outstanding",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueueForTesting(gomock.Any(), "server-1").Return(false, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `{"queued":false,"message":"Connection test already in progress"}`,
		},
		{
			name: "Error queue unavailable",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueueForTesting(gomock.Any(), "server-1").Return(false, apperrors.NewQueueError("server-1", errors.New("broker down")))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"message":"Connection test queue is unavailable"}`,
		},
		{
			name: "Error server not found",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueueForTesting(gomock.Any(), "server-1").Return(false, apperrors.ErrServerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Server not found"}`,
		},
		{
			name: "Error storage",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().QueueForTesting(gomock.Any(), "server-1").Return(false, apperrors.NewStorageError("update server status", errors.New("timeout")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newTestHandler(t)
			tc.setupMocks(mockService)

			w, c := setupTestContext(t, http.MethodPost, "/servers/server-1/test", nil, gin.Param{Key: "id", Value: "server-1"})
			handler.QueueForTesting()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestServerHandler_GetServerTestHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	results := []model.ConnectionTestResult{
		{JobID: "job-1", ServerID: "server-1", Status: model.ServerStatusFailed, Error: "connection refused", Attempts: 1, TestedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	}

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockServerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success default limit",
			url:  "/servers/server-1/tests",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().GetServerTestHistory(gomock.Any(), "server-1", 20).Return(results, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"error":"connection refused"`,
		},
		{
			name: "Success limit is capped",
			url:  "/servers/server-1/tests?limit=500",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().GetServerTestHistory(gomock.Any(), "server-1", 100).Return([]model.ConnectionTestResult{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Error limit is not a number",
			url:            "/servers/server-1/tests?limit=ten",
			setupMocks:     func(mockService *mockservice.MockServerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Limit must be an integer"`,
		},
		{
			name: "Error elasticsearch fails",
			url:  "/servers/server-1/tests",
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().GetServerTestHistory(gomock.Any(), "server-1", 20).Return(nil, apperrors.NewElasticSearchError(500, "exception", "boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newTestHandler(t)
			tc.setupMocks(mockService)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil, gin.Param{Key: "id", Value: "server-1"})
			handler.GetServerTestHistory()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestServerHandler_GetProjectServers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().GetProjectServers(gomock.Any(), testProjectID).Return([]model.Server{{ID: "a", Order: 0}, {ID: "b", Order: 1}}, nil)

		w, c := setupTestContext(t, http.MethodGet, "/projects/"+testProjectID+"/servers", nil, gin.Param{Key: "id", Value: testProjectID})
		handler.GetProjectServers()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "b", body[1]["id"])
		assert.Equal(t, float64(1), body[1]["order"])
	})

	t.Run("Error project not found", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().GetProjectServers(gomock.Any(), testProjectID).Return(nil, apperrors.ErrProjectNotFound)

		w, c := setupTestContext(t, http.MethodGet, "/projects/"+testProjectID+"/servers", nil, gin.Param{Key: "id", Value: testProjectID})
		handler.GetProjectServers()(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServerHandler_ReorderProjectServers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockServerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: request.ReorderServersRequest{ServerIDs: []string{"b", "a"}},
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().ReorderServers(gomock.Any(), testProjectID, []string{"b", "a"}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Servers reordered"`,
		},
		{
			name:           "Error empty list",
			body:           `{"server_ids":[]}`,
			setupMocks:     func(mockService *mockservice.MockServerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The ServerIDs field must contain at least 1 element"`,
		},
		{
			name: "Error incomplete list",
			body: request.ReorderServersRequest{ServerIDs: []string{"a"}},
			setupMocks: func(mockService *mockservice.MockServerService) {
				mockService.EXPECT().ReorderServers(gomock.Any(), testProjectID, []string{"a"}).
					Return(apperrors.NewValidationError("server_ids", "must list every server of the project"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid server_ids: must list every server of the project"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newTestHandler(t)
			tc.setupMocks(mockService)

			w, c := setupTestContext(t, http.MethodPut, "/projects/"+testProjectID+"/servers/order", jsonBody(tc.body), gin.Param{Key: "id", Value: testProjectID})
			handler.ReorderProjectServers()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestServerHandler_ExportProjectServers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().GetProjectServers(gomock.Any(), testProjectID).Return([]model.Server{
			{ID: "a", Name: "web-1", Order: 0, Port: 22, Status: model.ServerStatusSuccessful},
			{ID: "b", Name: "web-2", Order: 1, Port: 2222, Status: model.ServerStatusUntested},
		}, nil)

		w, c := setupTestContext(t, http.MethodGet, "/projects/"+testProjectID+"/servers/export", nil, gin.Param{Key: "id", Value: testProjectID})
		handler.ExportProjectServers()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"servers-"+testProjectID)

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Servers")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"order", "id", "name"}, rows[0][:3])
		assert.Equal(t, []string{"1", "b", "web-2"}, rows[2][:3])
	})

	t.Run("Error project not found", func(t *testing.T) {
		handler, mockService := newTestHandler(t)
		mockService.EXPECT().GetProjectServers(gomock.Any(), testProjectID).Return(nil, apperrors.ErrProjectNotFound)

		w, c := setupTestContext(t, http.MethodGet, "/projects/"+testProjectID+"/servers/export", nil, gin.Param{Key: "id", Value: testProjectID})
		handler.ExportProjectServers()(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
