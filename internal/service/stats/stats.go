// Package stats derives read-only figures from a set of day records.
package stats

import (
	"math"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// RuleCount is the number of days in one 70/20/10 bucket and its share of
// all days that have a rule.
type RuleCount struct {
	Count      int
	Percentage int
}

// RuleStats summarises the content mix of a set of days.
type RuleStats struct {
	Total  int
	Rule70 RuleCount
	Rule20 RuleCount
	Rule10 RuleCount
}

// ComputeRuleStats counts days per rule. Days without a rule are ignored.
// Percentages are rounded to the nearest integer and are 0 when no day has
// a rule, so they may not add up to exactly 100.
func ComputeRuleStats(days []*domain.DayRecord) RuleStats {
	var s RuleStats
	for _, d := range days {
		if d == nil || d.Rule == nil {
			continue
		}
		switch *d.Rule {
		case domain.PostRule70:
			s.Rule70.Count++
		case domain.PostRule20:
			s.Rule20.Count++
		case domain.PostRule10:
			s.Rule10.Count++
		default:
			continue
		}
		s.Total++
	}

	s.Rule70.Percentage = percentage(s.Rule70.Count, s.Total)
	s.Rule20.Percentage = percentage(s.Rule20.Count, s.Total)
	s.Rule10.Percentage = percentage(s.Rule10.Count, s.Total)
	return s
}

// StatusBreakdown counts days per workflow stage. Every stage is present in
// the result, with zero when no day is in it.
func StatusBreakdown(days []*domain.DayRecord) map[domain.Status]int {
	out := make(map[domain.Status]int, len(domain.Statuses()))
	for _, st := range domain.Statuses() {
		out[st] = 0
	}
	for _, d := range days {
		if d == nil || !d.Status.IsValid() {
			continue
		}
		out[d.Status]++
	}
	return out
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}
