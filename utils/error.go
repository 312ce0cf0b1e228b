package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FieldError names one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an error that knows how it should be presented to the client.
type AppError struct {
	Code    string
	Message string
	Status  int
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code and Message so sentinel AppErrors keep working with
// errors.Is after Wrap.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// Wrap returns a copy of e carrying cause.
func (e *AppError) Wrap(cause error) *AppError {
	cp := *e
	cp.Err = cause
	return &cp
}

func NewAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

func NewValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
		Status:  http.StatusNotFound,
	}
}

func NewConflict(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	CodeInvalidUserType    = "INVALID_USER_TYPE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeWorkerUnavailable  = "WORKER_UNAVAILABLE"
	CodeSkillMismatch      = "SKILL_MISMATCH"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeAlreadyFinal       = "ALREADY_FINAL"
	CodeAlreadyRated       = "ALREADY_RATED"
	CodeAlreadyPaid        = "ALREADY_PAID"
	CodePaymentIncomplete  = "PAYMENT_INCOMPLETE"
	CodeInternal           = "INTERNAL_ERROR"
)

var (
	ErrUnauthorized = NewAppError(CodeUnauthorized, "Not authorized", http.StatusUnauthorized)
	ErrForbidden    = NewAppError(CodeForbidden, "Access denied", http.StatusForbidden)
)

// ErrorBody is the JSON envelope for every error response.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

type ErrorInfo struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// RespondError writes err as JSON. Anything that is not an AppError, or is
// an internal one, is logged in full and reported with a generic message.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternal(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		GetLogger().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	} else {
		GetLogger().Debug("request rejected",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}

	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Error: ErrorInfo{
		Code:    appErr.Code,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	}})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", r), zap.Stack("stack"))
				RespondError(c, fmt.Errorf("panic: %v", r))
			}
		}()
		c.Next()
	}
}
