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
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrLineupNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrProfileRequired):
		RespondError(c, http.StatusBadRequest, "Please upload a profile picture")
	case errors.Is(err, ErrLineupLocked):
		RespondError(c, http.StatusConflict, "Lineup is locked within 24 hours of the Mass")
	case errors.Is(err, ErrLineupNotOwned):
		RespondError(c, http.StatusForbidden, "Only the member who submitted this lineup may edit it")
	case errors.Is(err, ErrLineupNotPending):
		RespondError(c, http.StatusConflict, "The next scheduled lineup is not pending")
	case errors.Is(err, ErrInvalidFileType):
		RespondError(c, http.StatusBadRequest, "Please upload PDF or Word documents only")
	case errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusBadRequest, "Reset code is invalid or has expired")
	case errors.Is(err, ErrPasswordMismatch):
		RespondError(c, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrStorageError):
		log.Printf("Storage error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
