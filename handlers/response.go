package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"mptransport/services"
)

const maxBodyBytes = 1 << 20

// ApiResponse is the envelope of every JSON response.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, ApiResponse{Success: true, Message: message, Data: data})
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and answered with a generic message.
func respondError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	switch {
	case errors.Is(err, services.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	default:
		log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, ApiResponse{Success: false, Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &services.ValidationError{Message: "request body is required"}
		}
		return &services.ValidationError{Message: fmt.Sprintf("invalid request payload: %v", err)}
	}
	return nil
}

func required(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &services.ValidationError{Field: name, Message: "is required"}
	}
	return value, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &services.ValidationError{Field: "id", Message: "must be a positive number"}
	}
	return id, nil
}

// deleted answers a delete: 404 when nothing was removed.
func deleted(w http.ResponseWriter, log logrus.FieldLogger, what, key string, found bool, err error) {
	if err != nil {
		respondError(w, log, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Error: what + " " + key + " not found"})
		return
	}
	ok(w, http.StatusOK, what+" deleted successfully", nil)
}
