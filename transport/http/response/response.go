package response

import (
	"encoding/json"
	"net/http"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/logger"

	"github.com/rs/zerolog/log"
)

// Data wraps every successful read.
type Data[T any] struct {
	Data T `json:"data"`
}

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

// Applied reports whether a write changed anything.
type Applied struct {
	Message string `json:"message"`
	Applied bool   `json:"applied"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	writeJSON(writer, code, Message{Message: message})
}

// WithApplied sends message when the write took effect and a no-change notice otherwise.
// Both are 200: a write aimed at a missing record is not an error.
func WithApplied(writer http.ResponseWriter, applied bool, message string) {
	if !applied {
		message = constant.ResponseMessageNoChange
	}

	writeJSON(writer, http.StatusOK, Applied{Message: message, Applied: applied})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	writeJSON(writer, code, Data[any]{Data: payload})
}

// WithContent sends an already rendered body.
func WithContent(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithError maps err to its failure code. Server-side failures are logged here so
// handlers only need to pass them on.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("request failed")
	}

	writeJSON(writer, code, Error{Error: err.Error()})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func writeJSON(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	WithContent(writer, code, constant.ContentTypeJSON, body)
}
