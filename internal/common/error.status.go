package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status codes used across the API.
const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// User-facing messages. The admin surface is German, so these are too.
const (
	MsgSuccess = "Aktion erfolgreich"

	MsgBadRequest      = "Ungültige Anfrage"
	MsgUnauthorized    = "Bitte anmelden"
	MsgNotFound        = "Nicht gefunden"
	MsgInternalError   = "Interner Fehler"
	MsgValidationError = "Ungültige Daten"
	MsgDatabaseError   = "Fehler beim Zugriff auf die Datenbank"

	MsgSessionMissing = "Keine aktive Sitzung"
	MsgSessionExpired = "Sitzung abgelaufen"
	MsgSessionInvalid = "Sitzung ungültig"
)

// ErrorCode classifies an error for clients and logs.
type ErrorCode struct {
	Code        string // stable identifier, e.g. AUTH_001
	Category    string // coarse grouping, e.g. Authentication
	SubCategory string
	Description string
}

var (
	// System errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "internal server error",
	}

	// Authentication errors (AUTH_xxx)
	ErrCodeAuthSession = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Session",
		Description: "session token error",
	}
	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "credential check failed",
	}

	// Validation errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "invalid input data",
	}
	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "malformed input data",
	}

	// Database errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "General",
		Description: "database error",
	}
	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "database connection error",
	}
	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Query",
		Description: "database query error",
	}
)

// Error carries an error code, a user-facing message and the HTTP status the
// handler layer should respond with.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is against other *common.Error values by comparing the
// stable code and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == t.Code.Code && e.Message == t.Message
}

// NewError builds a *common.Error as an error value.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Sentinel errors. Services return these; handlers map them to responses.
var (
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Benutzername oder Passwort falsch", StatusUnauthorized, nil)
	ErrSessionMissing     = NewError(ErrCodeAuthSession, MsgSessionMissing, StatusUnauthorized, nil)
	ErrSessionExpired     = NewError(ErrCodeAuthSession, MsgSessionExpired, StatusUnauthorized, nil)
	ErrSessionInvalid     = NewError(ErrCodeAuthSession, MsgSessionInvalid, StatusUnauthorized, nil)

	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgBadRequest, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Pflichtfeld fehlt", StatusBadRequest, nil)

	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Eintrag existiert bereits", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, nil)
)

// ConvertMongoError translates a MongoDB driver error into the common error
// taxonomy. ErrNotFound passes through untouched so callers can match on it.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return ErrConnection
	}
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
