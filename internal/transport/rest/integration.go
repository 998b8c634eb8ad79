package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/postcal-backend/internal/service/integration"
)

type integrationService interface {
	Status(ctx context.Context) (*integration.Status, error)
	AuthorizeURL(ctx context.Context) (*integration.Authorization, error)
	Connect(ctx context.Context, code string) (*integration.Status, error)
	Disconnect(ctx context.Context) error
}

// IntegrationHandler serves the LinkedIn connection endpoints.
type IntegrationHandler struct {
	svc integrationService
	log *slog.Logger
}

// NewIntegrationHandler creates an IntegrationHandler.
func NewIntegrationHandler(svc integrationService, logger *slog.Logger) *IntegrationHandler {
	return &IntegrationHandler{svc: svc, log: logger.With("handler", "integration")}
}

// Status handles GET /api/integrations/linkedin.
func (h *IntegrationHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIntegrationStatusResponse(st))
}

// Authorize handles GET /api/integrations/linkedin/authorize. The client
// keeps the returned state and compares it with the one on the callback.
func (h *IntegrationHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	auth, err := h.svc.AuthorizeURL(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authorizationResponse{URL: auth.URL, State: auth.State})
}

// Callback handles POST /api/integrations/linkedin/callback.
func (h *IntegrationHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req callbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	st, err := h.svc.Connect(r.Context(), req.Code)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIntegrationStatusResponse(st))
}

// Disconnect handles DELETE /api/integrations/linkedin.
func (h *IntegrationHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Disconnect(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
