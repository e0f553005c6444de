package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be reported with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError = New(http.StatusForbidden, "You don't have the required permissions")
	LoggedOutError = New(http.StatusUnauthorized, "session is logged out")
)

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// fromError keeps a nil error nil so callers can wrap unconditionally.
func fromError(code int, err error, prefix string) error {
	if err == nil {
		return nil
	}

	return New(code, prefix+err.Error())
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err, "")
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// NotFound reports a missing entity; the message is the entity name.
func NotFound(entityName string) error {
	return New(http.StatusNotFound, entityName)
}

func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err, "")
}

// StorageWrite reports a persistence failure. The mutation that caused it was not applied.
func StorageWrite(err error) error {
	return fromError(http.StatusInsufficientStorage, err, "failed to persist changes: ")
}

// GetCode returns the status carried by err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsValidation(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}
