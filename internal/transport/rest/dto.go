package rest

import (
	"time"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/integration"
	"github.com/heartmarshall/postcal-backend/internal/service/stats"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
)

// ---------------------------------------------------------------------------
// Days
// ---------------------------------------------------------------------------

type matrixRefResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type dayResponse struct {
	Date      string             `json:"date"`
	Status    string             `json:"status"`
	Topic     string             `json:"topic"`
	Notes     []string           `json:"notes"`
	FinalText string             `json:"finalText"`
	Format    *string            `json:"format"`
	Rule      *string            `json:"rule"`
	MatrixRef *matrixRefResponse `json:"matrixRef"`
	Locked    bool               `json:"locked"`
	CreatedAt *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

type mutationResponse struct {
	Day     dayResponse `json:"day"`
	Changed bool        `json:"changed"`
}

type shareResponse struct {
	Day    dayResponse `json:"day"`
	PostID string      `json:"postId"`
}

type ruleCountResponse struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

type ruleStatsResponse struct {
	Total  int               `json:"total"`
	Rule70 ruleCountResponse `json:"rule70"`
	Rule20 ruleCountResponse `json:"rule20"`
	Rule10 ruleCountResponse `json:"rule10"`
}

type monthResponse struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	Days            []dayResponse     `json:"days"`
	Stats           ruleStatsResponse `json:"stats"`
	StatusBreakdown map[string]int    `json:"statusBreakdown"`
}

// updateDayRequest is a partial edit: absent fields are left alone.
type updateDayRequest struct {
	Topic     *string   `json:"topic"`
	Notes     *[]string `json:"notes"`
	FinalText *string   `json:"finalText"`
	Format    *string   `json:"format"`
	Rule      *string   `json:"rule"`
}

type matrixRefRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func toDayResponse(d *domain.DayRecord) dayResponse {
	notes := d.Notes
	if notes == nil {
		notes = []string{}
	}
	resp := dayResponse{
		Date:      d.Date,
		Status:    d.Status.String(),
		Topic:     d.Topic,
		Notes:     notes,
		FinalText: d.FinalText,
		Locked:    d.IsLocked(),
		CreatedAt: timePtr(d.CreatedAt),
		UpdatedAt: timePtr(d.UpdatedAt),
	}
	if d.Format != nil {
		s := d.Format.String()
		resp.Format = &s
	}
	if d.Rule != nil {
		s := d.Rule.String()
		resp.Rule = &s
	}
	if d.MatrixRef != nil {
		resp.MatrixRef = &matrixRefResponse{Row: d.MatrixRef.Row, Col: d.MatrixRef.Col}
	}
	return resp
}

func toDayResponses(days []*domain.DayRecord) []dayResponse {
	out := make([]dayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, toDayResponse(d))
	}
	return out
}

func toMutationResponse(res *workflow.Result) mutationResponse {
	return mutationResponse{Day: toDayResponse(res.Day), Changed: res.Changed}
}

func toRuleStatsResponse(s stats.RuleStats) ruleStatsResponse {
	return ruleStatsResponse{
		Total:  s.Total,
		Rule70: ruleCountResponse(s.Rule70),
		Rule20: ruleCountResponse(s.Rule20),
		Rule10: ruleCountResponse(s.Rule10),
	}
}

func toMonthResponse(v *workflow.MonthView) monthResponse {
	breakdown := make(map[string]int, len(v.StatusBreakdown))
	for st, n := range v.StatusBreakdown {
		breakdown[st.String()] = n
	}
	return monthResponse{
		Year:            v.Year,
		Month:           int(v.Month),
		Days:            toDayResponses(v.Days),
		Stats:           toRuleStatsResponse(v.Stats),
		StatusBreakdown: breakdown,
	}
}

func (req updateDayRequest) toInput() workflow.UpdateDayInput {
	in := workflow.UpdateDayInput{
		Topic:     req.Topic,
		Notes:     req.Notes,
		FinalText: req.FinalText,
	}
	if req.Format != nil {
		f := domain.PostFormat(*req.Format)
		in.Format = &f
	}
	if req.Rule != nil {
		r := domain.PostRule(*req.Rule)
		in.Rule = &r
	}
	return in
}

// ---------------------------------------------------------------------------
// Matrix
// ---------------------------------------------------------------------------

type matrixResponse struct {
	ColHeaders []string          `json:"colHeaders"`
	RowHeaders []string          `json:"rowHeaders"`
	Cells      [][]string        `json:"cells"`
	CellUsage  map[string]string `json:"cellUsage"`
	UpdatedAt  *time.Time        `json:"updatedAt,omitempty"`
}

type saveGridRequest struct {
	ColHeaders []string   `json:"colHeaders"`
	RowHeaders []string   `json:"rowHeaders"`
	Cells      [][]string `json:"cells"`
}

type textRequest struct {
	Text string `json:"text"`
}

func toMatrixResponse(m *domain.Matrix) matrixResponse {
	usage := m.CellUsage
	if usage == nil {
		usage = map[string]string{}
	}
	return matrixResponse{
		ColHeaders: m.ColHeaders,
		RowHeaders: m.RowHeaders,
		Cells:      m.Cells,
		CellUsage:  usage,
		UpdatedAt:  timePtr(m.UpdatedAt),
	}
}

// ---------------------------------------------------------------------------
// Hooks
// ---------------------------------------------------------------------------

type hooksPayload struct {
	Items []string `json:"items"`
}

// ---------------------------------------------------------------------------
// Integration
// ---------------------------------------------------------------------------

type integrationStatusResponse struct {
	Provider    string     `json:"provider"`
	Configured  bool       `json:"configured"`
	Connected   bool       `json:"connected"`
	MemberID    string     `json:"memberId,omitempty"`
	ConnectedAt *time.Time `json:"connectedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

type authorizationResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type callbackRequest struct {
	Code string `json:"code"`
}

func toIntegrationStatusResponse(s *integration.Status) integrationStatusResponse {
	return integrationStatusResponse{
		Provider:    domain.ProviderLinkedIn,
		Configured:  s.Configured,
		Connected:   s.Connected,
		MemberID:    s.MemberID,
		ConnectedAt: s.ConnectedAt,
		ExpiresAt:   s.ExpiresAt,
	}
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

type auditRecordResponse struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entityType"`
	EntityKey  string         `json:"entityKey"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditRecordResponses(records []domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, 0, len(records))
	for _, rec := range records {
		changes := rec.Changes
		if changes == nil {
			changes = map[string]any{}
		}
		out = append(out, auditRecordResponse{
			ID:         rec.ID.String(),
			EntityType: rec.EntityType.String(),
			EntityKey:  rec.EntityKey,
			Action:     rec.Action.String(),
			Changes:    changes,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
