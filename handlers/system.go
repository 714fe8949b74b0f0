package handlers

import (
	"net/http"
	"os"

	"acs/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemHandler serves the liveness, diagnostic and schema endpoints.
type SystemHandler struct {
	Store  database.Store
	Logger *zap.Logger
}

func NewSystemHandler(store database.Store, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{Store: store, Logger: logger}
}

// RootHandler is the liveness endpoint.
func (h *SystemHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Adventist Community Services API running"})
}

// TestHandler reports backend and database connectivity for quick
// deployment checks.
func (h *SystemHandler) TestHandler(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = h.Store.DatabaseName()
	response["connection_status"] = "Connected"

	collections, err := h.Store.CollectionNames(c.Request.Context())
	if err != nil {
		h.Logger.Warn("diagnostic: listing collections failed", zap.Error(err))
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
	} else {
		response["collections"] = collections
		response["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, response)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
