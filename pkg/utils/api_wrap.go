package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrScenarioNotFound),
		errors.Is(err, ErrPersonaNotFound),
		errors.Is(err, ErrConversationNotFound),
		errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRoomNameRequired),
		errors.Is(err, ErrParticipantRequired),
		errors.Is(err, ErrUnsupportedFileType),
		errors.Is(err, ErrEmptyDocument):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingCredentials):
		// Deployment problem, not a user problem; technical detail allowed.
		log.Printf("Configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrStoreUnavailable):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
