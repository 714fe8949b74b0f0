package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"acs/database"
	"acs/models"
	"acs/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServiceHandler serves the /api/services endpoints.
type ServiceHandler struct {
	Store  database.Store
	Logger *zap.Logger
}

func NewServiceHandler(store database.Store, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Store: store, Logger: logger}
}

// CreateServiceHandler validates the payload and inserts a new service.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	svc, err := input.Validate()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), err.Error())
		return
	}

	id, err := h.Store.CreateDocument(c.Request.Context(), database.ServiceCollection, svc)
	if err != nil {
		h.Logger.Error("failed to create service", zap.Error(err))
		utils.JSONError(c, utils.StatusForError(err), utils.TruncateDetail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListServicesHandler returns services matching the optional text query
// and category filter.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	filter := BuildServiceFilter(c.Query("q"), c.Query("category"))

	docs, err := h.Store.GetDocuments(c.Request.Context(), database.ServiceCollection, filter)
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONError(c, utils.StatusForError(err), utils.TruncateDetail(err.Error()))
		return
	}

	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.SerializeDoc(d))
	}
	c.JSON(http.StatusOK, out)
}

// GetServiceHandler returns a single service by its identifier.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("service_id")

	doc, err := h.Store.GetDocumentByID(c.Request.Context(), database.ServiceCollection, id)
	if errors.Is(err, utils.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		if utils.StatusForError(err) == http.StatusInternalServerError {
			h.Logger.Error("failed to get service", zap.String("id", id), zap.Error(err))
		}
		utils.JSONError(c, utils.StatusForError(err), utils.TruncateDetail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SerializeDoc(doc))
}

// BuildServiceFilter translates the q/category query parameters into a
// document filter: q is a case-insensitive substring match across
// title, description, tags, category and location; category is an
// anchored case-insensitive match. Both combine with logical AND.
func BuildServiceFilter(q, category string) bson.M {
	filter := bson.M{}
	if q != "" {
		// QuoteMeta keeps the query a substring search rather than a
		// user-supplied pattern.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
			{"tags": pattern},
			{"category": pattern},
			{"location": pattern},
		}
	}
	if category != "" {
		filter["category"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(category) + "$",
			Options: "i",
		}
	}
	return filter
}
