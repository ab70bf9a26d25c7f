// Package errors provides the application error taxonomy for the estatedesk API.
// Every failure that reaches a client is rendered from an AppError so that
// responses share one shape and internal details stay in the logs.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Error kinds. The kind is used as the AppError code.
const (
	KindBadRequest          = "BAD_REQUEST"
	KindUnauthorized        = "UNAUTHORIZED"
	KindForbidden           = "FORBIDDEN"
	KindNotFound            = "NOT_FOUND"
	KindMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	KindTooManyRequests     = "TOO_MANY_REQUESTS"
	KindInternalServerError = "INTERNAL_SERVER_ERROR"
	KindUnknownError        = "UNKNOWN_ERROR"
	KindFileTooLarge        = "FILE_TOO_LARGE"
	KindUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
)

var statusByKind = map[string]int{
	KindBadRequest:          http.StatusBadRequest,
	KindUnauthorized:        http.StatusUnauthorized,
	KindForbidden:           http.StatusForbidden,
	KindNotFound:            http.StatusNotFound,
	KindMethodNotAllowed:    http.StatusMethodNotAllowed,
	KindTooManyRequests:     http.StatusTooManyRequests,
	KindInternalServerError: http.StatusInternalServerError,
	KindUnknownError:        http.StatusInternalServerError,
	KindFileTooLarge:        http.StatusRequestEntityTooLarge,
	KindUnsupportedFileType: http.StatusUnprocessableEntity,
}

// StatusFor returns the HTTP status for an error kind. Unknown kinds map to 500.
func StatusFor(kind string) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional metadata, and an
// optional internal error that is never sent to clients.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	MetaData   any
	Internal   error
}

// Response is the JSON body written for every error.
type Response struct {
	Title      string `json:"title"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	MetaData   any    `json:"metaData,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Title is the status-derived heading of the error, e.g. "Not Found".
func (e *AppError) Title() string {
	if title := http.StatusText(e.StatusCode); title != "" {
		return title
	}
	return http.StatusText(http.StatusInternalServerError)
}

// Response converts the error into its wire representation.
func (e *AppError) Response() Response {
	return Response{
		Title:      e.Title(),
		StatusCode: e.StatusCode,
		Message:    e.Message,
		Code:       e.Code,
		MetaData:   e.MetaData,
	}
}

// New creates an AppError of the given kind.
func New(kind, message string) *AppError {
	return &AppError{Code: kind, Message: message, StatusCode: StatusFor(kind)}
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		MetaData:   sentinel.MetaData,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		MetaData:   sentinel.MetaData,
		Internal:   sentinel.Internal,
	}
}

// WithMessagef is WithMessage with a format string.
func WithMessagef(sentinel *AppError, format string, args ...any) *AppError {
	return WithMessage(sentinel, fmt.Sprintf(format, args...))
}

// WithMetaData returns a copy of the error carrying extra response metadata.
func WithMetaData(sentinel *AppError, metaData any) *AppError {
	e := *sentinel
	e.MetaData = metaData
	return &e
}

// Generic errors, one per kind.
var (
	ErrBadRequest       = New(KindBadRequest, "Bad request")
	ErrUnauthorized     = New(KindUnauthorized, "Authentication required")
	ErrForbidden        = New(KindForbidden, "Access denied")
	ErrNotFound         = New(KindNotFound, "Resource not found")
	ErrMethodNotAllowed = New(KindMethodNotAllowed, "Method not allowed")
	ErrTooManyRequests  = New(KindTooManyRequests, "Too many requests, please try again later")
	ErrInternalServer   = New(KindInternalServerError, "Something went wrong")
	ErrUnknown          = New(KindUnknownError, "An unknown error occurred")
)

// Datastore constraint errors.
var (
	ErrDuplicateRecord    = New(KindBadRequest, "A record with the same unique value already exists")
	ErrReferenceViolation = New(KindBadRequest, "Referenced record does not exist or is still in use")
)

// Authentication errors.
var (
	ErrNoToken            = New(KindUnauthorized, "No token provided")
	ErrInvalidCredentials = New(KindUnauthorized, "Invalid credentials")
	ErrTokenNotInStore    = New(KindForbidden, "Invalid token: Token doesn't exist")
)

// User errors.
var (
	ErrUserNotFound   = New(KindNotFound, "User not found")
	ErrDuplicateEmail = New(KindBadRequest, "A user with this email already exists")
)

// Investor, agent and property errors.
var (
	ErrInvestorNotFound = New(KindNotFound, "Investor not found")
	ErrAgentNotFound    = New(KindNotFound, "Agent not found")
	ErrPropertyNotFound = New(KindNotFound, "Property not found")
)

// Investment errors.
var (
	ErrInvestmentNotFound  = New(KindNotFound, "Investment not found")
	ErrInsufficientBalance = New(KindBadRequest, "Investor does not have enough balance")
	ErrRedeemedUpdate      = New(KindBadRequest, "Cannot update a redeemed investment")
	ErrRedeemedDelete      = New(KindBadRequest, "Cannot delete a redeemed investment")
	ErrInvestmentRedeemed  = New(KindBadRequest, "Investment is already redeemed")
	ErrMaturityBelowAmount = New(KindBadRequest, "Value on maturity cannot be less than amount")
)

// Expense errors.
var (
	ErrExpenseNotFound            = New(KindNotFound, "Expense not found")
	ErrMaintenanceExpenseNotFound = New(KindNotFound, "Maintenance expense not found")
	ErrInvalidPaidAmount          = New(KindBadRequest, "Paid amount must be a positive number")
)

// Document errors.
var (
	ErrDocumentNotFound    = New(KindNotFound, "Document not found")
	ErrFileTooLarge        = New(KindFileTooLarge, "File too large. Maximum size is 5MB.")
	ErrUnsupportedFileType = New(KindUnsupportedFileType, "Upload failed. Only png, jpg, jpeg, pdf files allowed.")
	ErrNoFilesUploaded     = New(KindBadRequest, "No files uploaded")
)

// FromDB classifies a datastore error. AppErrors pass through untouched;
// anything unrecognised becomes an internal error that keeps the cause.
func FromDB(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(ErrNotFound, err)
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(ErrDuplicateRecord, err)
	case stderrors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(ErrReferenceViolation, err)
	}
	return Wrap(ErrInternalServer, err)
}

// NotFoundOr maps a missing record to the given sentinel and classifies
// everything else with FromDB.
func NotFoundOr(err error, sentinel *AppError) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return FromDB(err)
}

// Classify converts any error into an AppError suitable for rendering.
func Classify(err error) *AppError {
	var appErr *AppError
	if stderrors.As(FromDB(err), &appErr) {
		return appErr
	}
	return ErrUnknown
}
