package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO calendar date format used as the day record key.
const DateLayout = "2006-01-02"

// ParseDate validates an ISO date string (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must be YYYY-MM-DD")
	}
	return t, nil
}

// MatrixRef is a weak reference from a day to a matrix cell. It is a plain
// coordinate: the cell may have moved or disappeared since it was taken.
type MatrixRef struct {
	Row int
	Col int
}

// Key returns the cell usage ledger key ("row-col").
func (r MatrixRef) Key() string {
	return fmt.Sprintf("%d-%d", r.Row, r.Col)
}

// DayRecord is the planning entity for one calendar date.
type DayRecord struct {
	UserID    uuid.UUID
	Date      string
	Status    Status
	Topic     string
	Notes     []string
	FinalText string
	Format    *PostFormat
	Rule      *PostRule
	MatrixRef *MatrixRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDayRecord returns an unsaved record in the first workflow stage.
func NewDayRecord(userID uuid.UUID, date string) *DayRecord {
	return &DayRecord{
		UserID: userID,
		Date:   date,
		Status: StatusChooseTopic,
		Notes:  []string{},
	}
}

// IsLocked reports whether the record reached the terminal stage. Locked
// records accept no further mutation.
func (d *DayRecord) IsLocked() bool {
	return d.Status.IsTerminal()
}

// CheckMutable returns ErrLocked for a posted record.
func (d *DayRecord) CheckMutable() error {
	if d.IsLocked() {
		return ErrLocked
	}
	return nil
}

// HasNotes reports whether at least one note is non-blank.
func (d *DayRecord) HasNotes() bool {
	return slices.ContainsFunc(d.Notes, func(n string) bool {
		return strings.TrimSpace(n) != ""
	})
}

// StageComplete checks the precondition for leaving the current status.
func (d *DayRecord) StageComplete() error {
	switch d.Status {
	case StatusChooseTopic:
		if strings.TrimSpace(d.Topic) == "" {
			return &StageIncompleteError{Status: d.Status, Field: "topic"}
		}
	case StatusThinkOfText:
		if !d.HasNotes() {
			return &StageIncompleteError{Status: d.Status, Field: "notes"}
		}
	case StatusPolishText, StatusSchedule:
		if strings.TrimSpace(d.FinalText) == "" {
			return &StageIncompleteError{Status: d.Status, Field: "finalText"}
		}
	}
	return nil
}

// Clone returns a deep copy of the record.
func (d *DayRecord) Clone() *DayRecord {
	c := *d
	c.Notes = slices.Clone(d.Notes)
	if c.Notes == nil {
		c.Notes = []string{}
	}
	if d.Format != nil {
		f := *d.Format
		c.Format = &f
	}
	if d.Rule != nil {
		r := *d.Rule
		c.Rule = &r
	}
	if d.MatrixRef != nil {
		ref := *d.MatrixRef
		c.MatrixRef = &ref
	}
	return &c
}
