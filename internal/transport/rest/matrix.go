package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/matrix"
)

type matrixService interface {
	GetMatrix(ctx context.Context) (*domain.Matrix, error)
	SaveGrid(ctx context.Context, input matrix.SaveGridInput) (*domain.Matrix, error)
	AddRow(ctx context.Context) (*domain.Matrix, error)
	AddColumn(ctx context.Context) (*domain.Matrix, error)
	DeleteRow(ctx context.Context, index int) (*domain.Matrix, error)
	DeleteColumn(ctx context.Context, index int) (*domain.Matrix, error)
	UpdateHeader(ctx context.Context, input matrix.UpdateHeaderInput) (*domain.Matrix, error)
	UpdateCell(ctx context.Context, input matrix.UpdateCellInput) (*domain.Matrix, error)
}

// MatrixHandler serves the content matrix endpoints. Every mutation
// answers with the whole grid.
type MatrixHandler struct {
	svc matrixService
	log *slog.Logger
}

// NewMatrixHandler creates a MatrixHandler.
func NewMatrixHandler(svc matrixService, logger *slog.Logger) *MatrixHandler {
	return &MatrixHandler{svc: svc, log: logger.With("handler", "matrix")}
}

// Get handles GET /api/matrix.
func (h *MatrixHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetMatrix(r.Context())
	h.writeMatrix(w, r, m, err)
}

// Save handles PUT /api/matrix.
func (h *MatrixHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveGridRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.SaveGrid(r.Context(), matrix.SaveGridInput{
		ColHeaders: req.ColHeaders,
		RowHeaders: req.RowHeaders,
		Cells:      req.Cells,
	})
	h.writeMatrix(w, r, m, err)
}

// AddRow handles POST /api/matrix/rows.
func (h *MatrixHandler) AddRow(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.AddRow(r.Context())
	h.writeMatrix(w, r, m, err)
}

// AddColumn handles POST /api/matrix/columns.
func (h *MatrixHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.AddColumn(r.Context())
	h.writeMatrix(w, r, m, err)
}

// DeleteRow handles DELETE /api/matrix/rows/{index}.
func (h *MatrixHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	index, err := pathInt(r, "index")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.DeleteRow(r.Context(), index)
	h.writeMatrix(w, r, m, err)
}

// DeleteColumn handles DELETE /api/matrix/columns/{index}.
func (h *MatrixHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	index, err := pathInt(r, "index")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.DeleteColumn(r.Context(), index)
	h.writeMatrix(w, r, m, err)
}

// UpdateHeader handles PUT /api/matrix/headers/{kind}/{index}.
func (h *MatrixHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	index, err := pathInt(r, "index")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.UpdateHeader(r.Context(), matrix.UpdateHeaderInput{
		Kind:  domain.HeaderKind(r.PathValue("kind")),
		Index: index,
		Text:  req.Text,
	})
	h.writeMatrix(w, r, m, err)
}

// UpdateCell handles PUT /api/matrix/cells/{row}/{col}.
func (h *MatrixHandler) UpdateCell(w http.ResponseWriter, r *http.Request) {
	row, err := pathInt(r, "row")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	col, err := pathInt(r, "col")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.UpdateCell(r.Context(), matrix.UpdateCellInput{Row: row, Col: col, Text: req.Text})
	h.writeMatrix(w, r, m, err)
}

func (h *MatrixHandler) writeMatrix(w http.ResponseWriter, r *http.Request, m *domain.Matrix, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatrixResponse(m))
}
