package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/history"
)

type historyService interface {
	DayHistory(ctx context.Context, date string, limit int) ([]domain.AuditRecord, error)
	Activity(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error)
}

// HistoryHandler serves the audit trail.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// Day returns the changes of one day.
// GET /api/days/{date}/history?limit=50
func (h *HistoryHandler) Day(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", history.DefaultLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.DayHistory(r.Context(), r.PathValue("date"), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditRecordResponses(records))
}

// Activity returns the user's recent changes across all entities.
// GET /api/activity?limit=50&offset=0
func (h *HistoryHandler) Activity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", history.DefaultLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.Activity(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditRecordResponses(records))
}
