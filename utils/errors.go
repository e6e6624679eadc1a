package utils

import (
	"fmt"
	"net/http"
)

// AppError membawa kode HTTP bersama pesan error
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func BadRequestError(format string, args ...interface{}) *AppError {
	return NewAppError(http.StatusBadRequest, format, args...)
}

func NotFoundError(format string, args ...interface{}) *AppError {
	return NewAppError(http.StatusNotFound, format, args...)
}

func ConflictError(format string, args ...interface{}) *AppError {
	return NewAppError(http.StatusConflict, format, args...)
}
