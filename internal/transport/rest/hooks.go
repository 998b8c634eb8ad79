package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/postcal-backend/internal/service/hooks"
)

type hooksService interface {
	GetHooks(ctx context.Context) ([]string, error)
	SaveHooks(ctx context.Context, input hooks.SaveHooksInput) ([]string, error)
}

// HooksHandler serves the hooks list.
type HooksHandler struct {
	svc hooksService
	log *slog.Logger
}

// NewHooksHandler creates a HooksHandler.
func NewHooksHandler(svc hooksService, logger *slog.Logger) *HooksHandler {
	return &HooksHandler{svc: svc, log: logger.With("handler", "hooks")}
}

// Get handles GET /api/hooks.
func (h *HooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetHooks(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hooksPayload{Items: items})
}

// Save handles PUT /api/hooks. The body replaces the whole list.
func (h *HooksHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req hooksPayload
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.SaveHooks(r.Context(), hooks.SaveHooksInput{Items: req.Items})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hooksPayload{Items: items})
}
