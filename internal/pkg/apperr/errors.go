package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeEmptyUpload          = "EMPTY_UPLOAD"
	CodePayloadTooLarge      = "PAYLOAD_TOO_LARGE"
	CodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	CodePersistenceFailed    = "PERSISTENCE_FAILED"
	CodeInternalError        = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrValidationFailed is returned when a required field is missing or malformed.
	ErrValidationFailed = New(fiber.StatusBadRequest, CodeValidationFailed, "validation failed: some or all fields are missing or malformed")

	// ErrEmptyUpload is returned when an upload contains no payload.
	ErrEmptyUpload = New(fiber.StatusBadRequest, CodeEmptyUpload, "no image was uploaded")

	// ErrPayloadTooLarge is returned when an upload exceeds the size limit.
	ErrPayloadTooLarge = New(fiber.StatusRequestEntityTooLarge, CodePayloadTooLarge, "image must be at most 5 MiB")

	// ErrUnsupportedMediaType is returned when an upload is of a disallowed type.
	ErrUnsupportedMediaType = New(fiber.StatusUnsupportedMediaType, CodeUnsupportedMediaType, "invalid format: use JPG, PNG, GIF or WebP")

	// ErrPersistenceFailed is returned when the storage backend fails.
	ErrPersistenceFailed = New(fiber.StatusInternalServerError, CodePersistenceFailed, "storage backend failure")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	// copy ErrValidationFailed as e
	e := *ErrValidationFailed
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
