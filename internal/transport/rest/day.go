package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
)

type dayService interface {
	GetDay(ctx context.Context, date string) (*domain.DayRecord, error)
	ListDays(ctx context.Context, from, to string) ([]*domain.DayRecord, error)
	ListMonth(ctx context.Context, year int, month time.Month) (*workflow.MonthView, error)
	UpdateDay(ctx context.Context, date string, input workflow.UpdateDayInput) (*workflow.Result, error)
	Advance(ctx context.Context, date string) (*workflow.Result, error)
	Retreat(ctx context.Context, date string) (*workflow.Result, error)
	Publish(ctx context.Context, date string) (*workflow.Result, error)
	SelectFromMatrix(ctx context.Context, date string, row, col int) (*workflow.Result, error)
	Dereference(ctx context.Context, date string) (*workflow.Result, error)
	Share(ctx context.Context, date string) (*workflow.ShareResult, error)
}

// DayHandler serves the calendar day endpoints.
type DayHandler struct {
	svc dayService
	log *slog.Logger
}

// NewDayHandler creates a DayHandler.
func NewDayHandler(svc dayService, logger *slog.Logger) *DayHandler {
	return &DayHandler{svc: svc, log: logger.With("handler", "day")}
}

// List handles GET /api/days?from=&to=.
func (h *DayHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, err := h.svc.ListDays(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponses(days))
}

// Month handles GET /api/months/{year}/{month}.
func (h *DayHandler) Month(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := pathInt(r, "month")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.ListMonth(r.Context(), year, time.Month(month))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMonthResponse(view))
}

// Get handles GET /api/days/{date}. A date never touched is returned in
// its initial state.
func (h *DayHandler) Get(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.GetDay(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(day))
}

// Update handles PATCH /api/days/{date}.
func (h *DayHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.UpdateDay(r.Context(), r.PathValue("date"), req.toInput())
	h.writeResult(w, r, res, err)
}

// Advance handles POST /api/days/{date}/advance.
func (h *DayHandler) Advance(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Advance(r.Context(), r.PathValue("date"))
	h.writeResult(w, r, res, err)
}

// Retreat handles POST /api/days/{date}/retreat.
func (h *DayHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Retreat(r.Context(), r.PathValue("date"))
	h.writeResult(w, r, res, err)
}

// Publish handles POST /api/days/{date}/publish.
func (h *DayHandler) Publish(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Publish(r.Context(), r.PathValue("date"))
	h.writeResult(w, r, res, err)
}

// SelectFromMatrix handles PUT /api/days/{date}/matrix-ref.
func (h *DayHandler) SelectFromMatrix(w http.ResponseWriter, r *http.Request) {
	var req matrixRefRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var errs []domain.FieldError
	if req.Row == nil {
		errs = append(errs, domain.FieldError{Field: "row", Message: "required"})
	}
	if req.Col == nil {
		errs = append(errs, domain.FieldError{Field: "col", Message: "required"})
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	res, err := h.svc.SelectFromMatrix(r.Context(), r.PathValue("date"), *req.Row, *req.Col)
	h.writeResult(w, r, res, err)
}

// Dereference handles DELETE /api/days/{date}/matrix-ref.
func (h *DayHandler) Dereference(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Dereference(r.Context(), r.PathValue("date"))
	h.writeResult(w, r, res, err)
}

// Share handles POST /api/days/{date}/share.
func (h *DayHandler) Share(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Share(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{Day: toDayResponse(res.Day), PostID: res.PostID})
}

func (h *DayHandler) writeResult(w http.ResponseWriter, r *http.Request, res *workflow.Result, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMutationResponse(res))
}
