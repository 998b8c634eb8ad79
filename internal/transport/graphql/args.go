package graphql

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/resolver"
)

// Arguments arrive already validated against the schema. Literals decode to
// int64; variables may also arrive as json.Number or float64.

func argString(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func argInt(args map[string]any, name string) (int, error) {
	n, ok := toInt(args[name])
	if !ok {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func argOptionalInt(args map[string]any, name string) (*int, error) {
	if args[name] == nil {
		return nil, nil
	}
	n, err := argInt(args, name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return toInt(i)
	}
	return 0, false
}

// updateDayInput reads the UpdateDayInput object. A key that is absent, or
// null for the text fields, leaves the value alone; null format or rule
// clears it.
func updateDayInput(raw any) (resolver.UpdateDayInput, error) {
	var in resolver.UpdateDayInput

	fields, ok := raw.(map[string]any)
	if !ok {
		return in, domain.NewValidationError("input", "required")
	}

	in.Topic = optionalString(fields, "topic")
	in.FinalText = optionalString(fields, "finalText")

	if v, ok := fields["notes"]; ok && v != nil {
		notes, err := stringList(v)
		if err != nil {
			return in, err
		}
		in.Notes = &notes
	}

	for key, dst := range map[string]**string{"format": &in.Format, "rule": &in.Rule} {
		v, sent := fields[key]
		if !sent {
			continue
		}
		s, _ := v.(string)
		*dst = &s
	}

	return in, nil
}

func optionalString(fields map[string]any, key string) *string {
	s, ok := fields[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func stringList(v any) ([]string, error) {
	switch items := v.(type) {
	case []string:
		return items, nil
	case string:
		return []string{items}, nil
	case []any:
		out := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, domain.NewValidationError(fmt.Sprintf("notes[%d]", i), "must be a string")
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, domain.NewValidationError("notes", "must be a list of strings")
}
