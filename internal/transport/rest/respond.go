package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string               `json:"error"`
	Field   string               `json:"field,omitempty"`
	Reason  string               `json:"reason,omitempty"`
	Details []fieldErrorResponse `json:"details,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

// handleError maps service errors onto HTTP statuses. Only unexpected
// failures are logged; the rest are ordinary client outcomes.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		stageErr   *domain.StageIncompleteError
		validErr   *domain.ValidationError
		publishErr *domain.PublishError
	)

	switch {
	case errors.As(err, &stageErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "stage_incomplete", Field: stageErr.Field})
	case errors.Is(err, domain.ErrStageIncomplete):
		writeError(w, http.StatusUnprocessableEntity, "stage_incomplete")
	case errors.As(err, &validErr):
		resp := errorResponse{Error: "validation_failed"}
		for _, fe := range validErr.Errors {
			resp.Details = append(resp.Details, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation_failed", Reason: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotConnected):
		writeError(w, http.StatusConflict, "not_connected")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "conflict")
	case errors.As(err, &publishErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "publish_failed", Reason: publishErr.Reason})
	case errors.Is(err, domain.ErrExternal):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "publish_failed", Reason: err.Error()})
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "storage_failure")
	}
}

// decodeJSON reads a bounded JSON body into dst. Malformed input becomes a
// validation error so handleError answers 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		default:
			return domain.NewValidationError("body", "invalid JSON: "+err.Error())
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

// pathInt parses an integer path segment.
func pathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

// queryInt parses an optional integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}
