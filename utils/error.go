package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Sentinel errors for store-level failures. Handlers never inspect
// driver errors directly; the store wraps them into one of these.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID indicates an identifier that is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrStorage indicates a connectivity or backend failure.
	ErrStorage = errors.New("storage failure")
)

// FieldViolation describes a single failed constraint on an input field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every violated field constraint of a payload.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	msg := "validation failed:"
	for _, v := range e.Violations {
		msg += " " + v.Field + " (" + v.Reason + ");"
	}
	return msg
}

// StatusForError is the single point of translation from error kind to
// HTTP status. Anything unrecognized is treated as a backend failure.
func StatusForError(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// TruncateDetail limits backend error text leaked into responses.
func TruncateDetail(msg string) string {
	const max = 80
	if len(msg) > max {
		return msg[:max]
	}
	return msg
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, detail string) {
	Logger := GetLogger()
	Logger.Warn("request failed", zap.Int("status", status), zap.String("detail", detail))
	c.JSON(status, gin.H{"detail": detail})
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"detail": "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
