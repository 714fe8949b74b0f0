package handlers

import (
	"errors"
	"net/http"

	"acs/database"
	"acs/models"
	"acs/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// BookingHandler serves the /api/bookings endpoints.
type BookingHandler struct {
	Store  database.Store
	Logger *zap.Logger
}

func NewBookingHandler(store database.Store, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Store: store, Logger: logger}
}

// CreateBookingHandler validates the payload, verifies the referenced
// service exists, then inserts the booking. The existence check and the
// insert are not atomic; nothing deletes services today, so the gap is
// harmless.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	booking, err := input.Validate()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), err.Error())
		return
	}

	_, err = h.Store.GetDocumentByID(c.Request.Context(), database.ServiceCollection, booking.ServiceID)
	if errors.Is(err, utils.ErrInvalidID) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service_id")
		return
	}
	if errors.Is(err, utils.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Service not found for booking")
		return
	}
	if err != nil {
		h.Logger.Error("failed to verify service for booking", zap.String("service_id", booking.ServiceID), zap.Error(err))
		utils.JSONError(c, utils.StatusForError(err), utils.TruncateDetail(err.Error()))
		return
	}

	id, err := h.Store.CreateDocument(c.Request.Context(), database.BookingCollection, booking)
	if err != nil {
		h.Logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, utils.StatusForError(err), utils.TruncateDetail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListBookingsHandler returns bookings, optionally narrowed by
// service_id and status.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := bson.M{}
	if serviceID := c.Query("service_id"); serviceID != "" {
		filter["service_id"] = serviceID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	docs, err := h.Store.GetDocuments(c.Request.Context(), database.BookingCollection, filter)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, utils.StatusForError(err), utils.TruncateDetail(err.Error()))
		return
	}

	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.SerializeDoc(d))
	}
	c.JSON(http.StatusOK, out)
}
