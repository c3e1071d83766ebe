package dto

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/pkg/errors"
)

// APIResponse is the common envelope for JSON API responses.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorDTO   `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ErrorDTO carries error information to API clients.
type ErrorDTO struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Description string            `json:"description,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
}

// SuccessResponse builds a success envelope.
func SuccessResponse(data interface{}, requestID string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}

// ErrorResponse builds an error envelope.
func ErrorResponse(err error, requestID string) *APIResponse {
	var errorDTO *ErrorDTO

	switch e := err.(type) {
	case *errors.AppError:
		errorDTO = &ErrorDTO{
			Code:        string(e.Code),
			Message:     e.Message,
			Description: e.Description,
			Details:     e.Details,
		}
	default:
		errorDTO = &ErrorDTO{
			Code:    string(errors.ErrInternalServer.Code),
			Message: "Internal server error",
		}
	}

	return &APIResponse{
		Success:   false,
		Error:     errorDTO,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}

// SendSuccess writes a success envelope with the given HTTP status.
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse(data, c.GetString("request_id")))
}

// SendError writes an error envelope, mapping AppError to its HTTP status
// and anything else to 500.
func SendError(c *gin.Context, err error) {
	status := errors.ErrInternalServer.HTTPStatus
	if appErr, ok := err.(*errors.AppError); ok {
		status = appErr.HTTPStatus
	}
	c.JSON(status, ErrorResponse(err, c.GetString("request_id")))
}
