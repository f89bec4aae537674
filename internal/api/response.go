package api

import (
	stderrors "errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/pkg/errors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *apiError `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body envelope, logger *zap.Logger) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.Error("Failed to marshal JSON response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.Warn("Failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, envelope{Status: "success", Data: data}, h.logger)
}

// respondError renders err with the status and code it carries.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.StatusOf(err)
	code := errors.CodeOf(err)
	message := "Internal server error"

	var ie *errors.InsightError
	if stderrors.As(err, &ie) {
		message = ie.Message
	}

	fields := []zap.Field{
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.String("path", r.URL.Path),
		zap.String("code", code),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Info("Request rejected", fields...)
	}

	respondJSON(w, status, envelope{
		Status: "error",
		Error:  &apiError{Code: code, Message: message},
	}, h.logger)
}
