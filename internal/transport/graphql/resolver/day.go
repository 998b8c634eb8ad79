package resolver

import (
	"context"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/dataloader"
)

// MatrixCell is the matrix cell a day is linked to, as it reads now.
type MatrixCell struct {
	Row        int
	Col        int
	Text       string
	RowHeader  string
	ColHeader  string
	LastUsedOn *string
}

// MatrixCell returns nil when the day is not linked or the linked cell no
// longer exists.
func (r *DayResolver) MatrixCell(ctx context.Context, day *domain.DayRecord) (*MatrixCell, error) {
	if day.MatrixRef == nil {
		return nil, nil
	}

	m, err := r.matrixOf(ctx, day)
	if err != nil || m == nil {
		return nil, err
	}

	ref := *day.MatrixRef
	text, ok := m.Cell(ref.Row, ref.Col)
	if !ok || ref.Row >= len(m.RowHeaders) || ref.Col >= len(m.ColHeaders) {
		return nil, nil
	}

	cell := &MatrixCell{
		Row:       ref.Row,
		Col:       ref.Col,
		Text:      text,
		RowHeader: m.RowHeaders[ref.Row],
		ColHeader: m.ColHeaders[ref.Col],
	}
	if used, ok := m.CellUsage[ref.Key()]; ok {
		cell.LastUsedOn = &used
	}
	return cell, nil
}

// matrixOf loads the owner's matrix through the request loaders, so a month
// of linked days costs one read. Outside the loader middleware it asks the
// matrix service.
func (r *DayResolver) matrixOf(ctx context.Context, day *domain.DayRecord) (*domain.Matrix, error) {
	if loaders := dataloader.FromContext(ctx); loaders != nil {
		return loaders.MatrixByUserID.Load(ctx, day.UserID)()
	}
	return r.matrix.GetMatrix(ctx)
}
