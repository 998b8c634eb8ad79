package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// SentinelHeader is the label given to freshly added rows and columns.
const SentinelHeader = "Edit me"

var defaultColumns = []string{
	"Actionable", "Motivational", "Analytical", "Contrarian", "Observational", "Listicle",
}

// Matrix is the user's content-idea grid: themes as columns, categories as
// rows. Cells is row-major and always matches the header dimensions.
type Matrix struct {
	UserID     uuid.UUID
	ColHeaders []string
	RowHeaders []string
	Cells      [][]string
	CellUsage  map[string]string // "row-col" -> date of the last publish that used the cell
	UpdatedAt  time.Time
}

// DefaultMatrix returns the single-row, six-column starting template.
func DefaultMatrix(userID uuid.UUID) *Matrix {
	return &Matrix{
		UserID:     userID,
		ColHeaders: slices.Clone(defaultColumns),
		RowHeaders: []string{SentinelHeader},
		Cells:      [][]string{make([]string, len(defaultColumns))},
		CellUsage:  map[string]string{},
	}
}

// Validate checks that the grid is rectangular and at least 1x1.
func (m *Matrix) Validate() error {
	if len(m.RowHeaders) == 0 {
		return NewValidationError("rowHeaders", "at least one row required")
	}
	if len(m.ColHeaders) == 0 {
		return NewValidationError("colHeaders", "at least one column required")
	}
	if len(m.Cells) != len(m.RowHeaders) {
		return NewValidationError("cells", fmt.Sprintf("expected %d rows, got %d", len(m.RowHeaders), len(m.Cells)))
	}
	for i, row := range m.Cells {
		if len(row) != len(m.ColHeaders) {
			return NewValidationError("cells", fmt.Sprintf("row %d: expected %d columns, got %d", i, len(m.ColHeaders), len(row)))
		}
	}
	return nil
}

// Cell returns the text at (row, col). ok is false if the cell does not exist.
func (m *Matrix) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(m.Cells) {
		return "", false
	}
	if col < 0 || col >= len(m.Cells[row]) {
		return "", false
	}
	return m.Cells[row][col], true
}

// AddColumn appends a sentinel-labelled empty column. It refuses when the
// last column is already a blank sentinel column.
func (m *Matrix) AddColumn() error {
	last := len(m.ColHeaders) - 1
	if last >= 0 && m.ColHeaders[last] == SentinelHeader && m.columnEmpty(last) {
		return ErrEmptyColumnExists
	}
	m.ColHeaders = append(m.ColHeaders, SentinelHeader)
	for i := range m.Cells {
		m.Cells[i] = append(m.Cells[i], "")
	}
	return nil
}

// AddRow appends a sentinel-labelled empty row. It refuses when the last
// row is already a blank sentinel row.
func (m *Matrix) AddRow() error {
	last := len(m.RowHeaders) - 1
	if last >= 0 && m.RowHeaders[last] == SentinelHeader && m.rowEmpty(last) {
		return ErrEmptyRowExists
	}
	m.RowHeaders = append(m.RowHeaders, SentinelHeader)
	m.Cells = append(m.Cells, make([]string, len(m.ColHeaders)))
	return nil
}

// DeleteColumn removes the header and the matching cell of every row.
func (m *Matrix) DeleteColumn(index int) error {
	if index < 0 || index >= len(m.ColHeaders) {
		return NewValidationError("index", "column out of range")
	}
	if len(m.ColHeaders) <= 1 {
		return ErrLastColumn
	}
	m.ColHeaders = slices.Delete(m.ColHeaders, index, index+1)
	for i := range m.Cells {
		m.Cells[i] = slices.Delete(m.Cells[i], index, index+1)
	}
	return nil
}

// DeleteRow removes the header and the row of cells.
func (m *Matrix) DeleteRow(index int) error {
	if index < 0 || index >= len(m.RowHeaders) {
		return NewValidationError("index", "row out of range")
	}
	if len(m.RowHeaders) <= 1 {
		return ErrLastRow
	}
	m.RowHeaders = slices.Delete(m.RowHeaders, index, index+1)
	m.Cells = slices.Delete(m.Cells, index, index+1)
	return nil
}

// UpdateHeader sets the label of a row or column header.
func (m *Matrix) UpdateHeader(kind HeaderKind, index int, text string) error {
	var headers []string
	switch kind {
	case HeaderKindRow:
		headers = m.RowHeaders
	case HeaderKindColumn:
		headers = m.ColHeaders
	default:
		return NewValidationError("kind", "must be row or col")
	}
	if index < 0 || index >= len(headers) {
		return NewValidationError("index", "header out of range")
	}
	headers[index] = text
	return nil
}

// UpdateCell sets the text of a single cell.
func (m *Matrix) UpdateCell(row, col int, text string) error {
	if _, ok := m.Cell(row, col); !ok {
		return NewValidationError("cell", "out of range")
	}
	m.Cells[row][col] = text
	return nil
}

// ReplaceGrid swaps headers and cells in one step. The usage ledger is kept.
func (m *Matrix) ReplaceGrid(colHeaders, rowHeaders []string, cells [][]string) error {
	next := &Matrix{
		ColHeaders: slices.Clone(colHeaders),
		RowHeaders: slices.Clone(rowHeaders),
		Cells:      make([][]string, len(cells)),
	}
	for i, row := range cells {
		next.Cells[i] = slices.Clone(row)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	m.ColHeaders, m.RowHeaders, m.Cells = next.ColHeaders, next.RowHeaders, next.Cells
	return nil
}

// RecordUsage marks the cell as consumed on date. Last write wins.
func (m *Matrix) RecordUsage(ref MatrixRef, date string) {
	if m.CellUsage == nil {
		m.CellUsage = map[string]string{}
	}
	m.CellUsage[ref.Key()] = date
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		UserID:     m.UserID,
		ColHeaders: slices.Clone(m.ColHeaders),
		RowHeaders: slices.Clone(m.RowHeaders),
		Cells:      make([][]string, len(m.Cells)),
		CellUsage:  make(map[string]string, len(m.CellUsage)),
		UpdatedAt:  m.UpdatedAt,
	}
	for i, row := range m.Cells {
		c.Cells[i] = slices.Clone(row)
	}
	for k, v := range m.CellUsage {
		c.CellUsage[k] = v
	}
	return c
}

func (m *Matrix) columnEmpty(col int) bool {
	for _, row := range m.Cells {
		if col < len(row) && row[col] != "" {
			return false
		}
	}
	return true
}

func (m *Matrix) rowEmpty(row int) bool {
	if row >= len(m.Cells) {
		return true
	}
	for _, cell := range m.Cells[row] {
		if cell != "" {
			return false
		}
	}
	return true
}
