package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"acs/database"
	"acs/handlers"
	"acs/middleware"
	"acs/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(store database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	r := gin.New()
	r.Use(middleware.RequestID())
	routes.RegisterRoutes(r,
		handlers.NewServiceHandler(store, logger),
		handlers.NewBookingHandler(store, logger),
		handlers.NewSystemHandler(store, logger),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func validServicePayload() map[string]interface{} {
	return map[string]interface{}{
		"title":         "Food Pantry Pickup",
		"description":   "Weekly food parcels for families in need",
		"category":      "Food",
		"location":      "Springfield",
		"provider_name": "Springfield Central Church",
	}
}

func createService(t *testing.T, r *gin.Engine, payload map[string]interface{}) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/services", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]string
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp["id"])
	return resp["id"]
}
