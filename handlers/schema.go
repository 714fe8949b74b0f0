package handlers

import (
	"net/http"

	"acs/models"

	"github.com/gin-gonic/gin"
)

// GetSchemaHandler lists the entity types and their field names, used
// by admin tooling to build forms.
func (h *SystemHandler) GetSchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.Schemas())
}
