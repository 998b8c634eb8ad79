package workflow

import (
	"context"
	"slices"
	"strings"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// UpdateDay edits the day's fields. Nil input fields are left as they are.
// Editing the topic by hand detaches the day from its matrix cell.
func (s *Service) UpdateDay(ctx context.Context, date string, input UpdateDayInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, date, "updated", domain.AuditActionUpdate, func(ctx context.Context, day *domain.DayRecord) (map[string]any, error) {
		changes := map[string]any{}

		if input.Topic != nil {
			topic := strings.TrimSpace(*input.Topic)
			if topic != day.Topic {
				changes["topic"] = diff(day.Topic, topic)
				day.Topic = topic
				if day.MatrixRef != nil {
					changes["matrix_ref"] = diff(day.MatrixRef.Key(), nil)
					day.MatrixRef = nil
				}
			}
		}

		if input.Notes != nil {
			notes := slices.Clone(*input.Notes)
			if notes == nil {
				notes = []string{}
			}
			if !slices.Equal(notes, day.Notes) {
				changes["notes"] = diff(len(day.Notes), len(notes))
				day.Notes = notes
			}
		}

		if input.FinalText != nil && *input.FinalText != day.FinalText {
			changes["final_text"] = diff(len(day.FinalText), len(*input.FinalText))
			day.FinalText = *input.FinalText
		}

		if input.Format != nil {
			var next *domain.PostFormat
			if *input.Format != "" {
				f := *input.Format
				next = &f
			}
			if !equalPtr(day.Format, next) {
				changes["format"] = diff(derefOrNil(day.Format), derefOrNil(next))
				day.Format = next
			}
		}

		if input.Rule != nil {
			var next *domain.PostRule
			if *input.Rule != "" {
				r := *input.Rule
				next = &r
			}
			if !equalPtr(day.Rule, next) {
				changes["rule"] = diff(derefOrNil(day.Rule), derefOrNil(next))
				day.Rule = next
			}
		}

		return changes, nil
	})
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func derefOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
