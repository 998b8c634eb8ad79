package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/stats"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/resolver"
)

// ---------------------------------------------------------------------------
// Roots
// ---------------------------------------------------------------------------

type queryObject struct{ res *resolver.Resolver }

func (queryObject) typeName() string { return "Query" }

func (o queryObject) resolve(ctx context.Context, field string, args map[string]any) (any, error) {
	q := o.res.Query()
	switch field {
	case "day":
		day, err := q.Day(ctx, argString(args, "date"))
		return o.day(day), err
	case "days":
		days, err := q.Days(ctx, argString(args, "from"), argString(args, "to"))
		if err != nil {
			return nil, err
		}
		return o.days(days), nil
	case "month":
		year, err := argInt(args, "year")
		if err != nil {
			return nil, err
		}
		month, err := argInt(args, "month")
		if err != nil {
			return nil, err
		}
		view, err := q.Month(ctx, year, month)
		if err != nil {
			return nil, err
		}
		return monthObject{o.res, view}, nil
	case "matrix":
		m, err := q.Matrix(ctx)
		if err != nil || m == nil {
			return nil, err
		}
		return matrixObject{m}, nil
	case "hooks":
		return q.Hooks(ctx)
	case "dayHistory":
		limit, err := argOptionalInt(args, "limit")
		if err != nil {
			return nil, err
		}
		records, err := q.DayHistory(ctx, argString(args, "date"), limit)
		if err != nil {
			return nil, err
		}
		out := make([]object, len(records))
		for i, rec := range records {
			out[i] = auditEntryObject{rec}
		}
		return out, nil
	}
	return nil, unknownField(o, field)
}

func (o queryObject) day(day *domain.DayRecord) any {
	if day == nil {
		return nil
	}
	return dayObject{o.res, day}
}

func (o queryObject) days(days []*domain.DayRecord) []object {
	out := make([]object, len(days))
	for i, d := range days {
		out[i] = dayObject{o.res, d}
	}
	return out
}

type mutationObject struct{ res *resolver.Resolver }

func (mutationObject) typeName() string { return "Mutation" }

func (o mutationObject) resolve(ctx context.Context, field string, args map[string]any) (any, error) {
	m := o.res.Mutation()
	date := argString(args, "date")

	var (
		res *workflow.Result
		err error
	)
	switch field {
	case "updateDay":
		input, inputErr := updateDayInput(args["input"])
		if inputErr != nil {
			return nil, inputErr
		}
		res, err = m.UpdateDay(ctx, date, input)
	case "advanceDay":
		res, err = m.AdvanceDay(ctx, date)
	case "retreatDay":
		res, err = m.RetreatDay(ctx, date)
	case "publishDay":
		res, err = m.PublishDay(ctx, date)
	case "selectFromMatrix":
		row, rowErr := argInt(args, "row")
		if rowErr != nil {
			return nil, rowErr
		}
		col, colErr := argInt(args, "col")
		if colErr != nil {
			return nil, colErr
		}
		res, err = m.SelectFromMatrix(ctx, date, row, col)
	case "dereferenceDay":
		res, err = m.DereferenceDay(ctx, date)
	default:
		return nil, unknownField(o, field)
	}

	if err != nil || res == nil {
		return nil, err
	}
	return payloadObject{o.res, res}, nil
}

// ---------------------------------------------------------------------------
// Days
// ---------------------------------------------------------------------------

type dayObject struct {
	res *resolver.Resolver
	day *domain.DayRecord
}

func (dayObject) typeName() string { return "Day" }

func (o dayObject) resolve(ctx context.Context, field string, _ map[string]any) (any, error) {
	d := o.day
	switch field {
	case "date":
		return d.Date, nil
	case "status":
		return d.Status.String(), nil
	case "topic":
		return d.Topic, nil
	case "notes":
		if d.Notes == nil {
			return []string{}, nil
		}
		return d.Notes, nil
	case "finalText":
		return d.FinalText, nil
	case "format":
		if d.Format == nil {
			return nil, nil
		}
		return d.Format.String(), nil
	case "rule":
		if d.Rule == nil {
			return nil, nil
		}
		return d.Rule.String(), nil
	case "matrixRef":
		if d.MatrixRef == nil {
			return nil, nil
		}
		return matrixRefObject{*d.MatrixRef}, nil
	case "matrixCell":
		cell, err := o.res.Day().MatrixCell(ctx, d)
		if err != nil || cell == nil {
			return nil, err
		}
		return matrixCellObject{cell}, nil
	case "locked":
		return d.IsLocked(), nil
	case "createdAt":
		return timestamp(d.CreatedAt), nil
	case "updatedAt":
		return timestamp(d.UpdatedAt), nil
	}
	return nil, unknownField(o, field)
}

type payloadObject struct {
	res    *resolver.Resolver
	result *workflow.Result
}

func (payloadObject) typeName() string { return "DayPayload" }

func (o payloadObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "day":
		return dayObject{o.res, o.result.Day}, nil
	case "changed":
		return o.result.Changed, nil
	}
	return nil, unknownField(o, field)
}

type monthObject struct {
	res  *resolver.Resolver
	view *workflow.MonthView
}

func (monthObject) typeName() string { return "Month" }

func (o monthObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "year":
		return o.view.Year, nil
	case "month":
		return int(o.view.Month), nil
	case "days":
		return queryObject{o.res}.days(o.view.Days), nil
	case "stats":
		return ruleStatsObject{o.view.Stats}, nil
	case "statusBreakdown":
		statuses := domain.Statuses()
		out := make([]object, len(statuses))
		for i, st := range statuses {
			out[i] = statusCountObject{status: st, count: o.view.StatusBreakdown[st]}
		}
		return out, nil
	}
	return nil, unknownField(o, field)
}

type ruleStatsObject struct{ stats stats.RuleStats }

func (ruleStatsObject) typeName() string { return "RuleStats" }

func (o ruleStatsObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "total":
		return o.stats.Total, nil
	case "rule70":
		return ruleCountObject{o.stats.Rule70}, nil
	case "rule20":
		return ruleCountObject{o.stats.Rule20}, nil
	case "rule10":
		return ruleCountObject{o.stats.Rule10}, nil
	}
	return nil, unknownField(o, field)
}

type ruleCountObject struct{ count stats.RuleCount }

func (ruleCountObject) typeName() string { return "RuleCount" }

func (o ruleCountObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "count":
		return o.count.Count, nil
	case "percentage":
		return o.count.Percentage, nil
	}
	return nil, unknownField(o, field)
}

type statusCountObject struct {
	status domain.Status
	count  int
}

func (statusCountObject) typeName() string { return "StatusCount" }

func (o statusCountObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "status":
		return o.status.String(), nil
	case "count":
		return o.count, nil
	}
	return nil, unknownField(o, field)
}

// ---------------------------------------------------------------------------
// Matrix
// ---------------------------------------------------------------------------

type matrixObject struct{ m *domain.Matrix }

func (matrixObject) typeName() string { return "Matrix" }

func (o matrixObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "colHeaders":
		return o.m.ColHeaders, nil
	case "rowHeaders":
		return o.m.RowHeaders, nil
	case "cells":
		return o.m.Cells, nil
	case "updatedAt":
		return timestamp(o.m.UpdatedAt), nil
	}
	return nil, unknownField(o, field)
}

type matrixRefObject struct{ ref domain.MatrixRef }

func (matrixRefObject) typeName() string { return "MatrixRef" }

func (o matrixRefObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "row":
		return o.ref.Row, nil
	case "col":
		return o.ref.Col, nil
	}
	return nil, unknownField(o, field)
}

type matrixCellObject struct{ cell *resolver.MatrixCell }

func (matrixCellObject) typeName() string { return "MatrixCell" }

func (o matrixCellObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	c := o.cell
	switch field {
	case "row":
		return c.Row, nil
	case "col":
		return c.Col, nil
	case "text":
		return c.Text, nil
	case "rowHeader":
		return c.RowHeader, nil
	case "colHeader":
		return c.ColHeader, nil
	case "lastUsedOn":
		return c.LastUsedOn, nil
	}
	return nil, unknownField(o, field)
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

type auditEntryObject struct{ rec domain.AuditRecord }

func (auditEntryObject) typeName() string { return "AuditEntry" }

func (o auditEntryObject) resolve(_ context.Context, field string, _ map[string]any) (any, error) {
	switch field {
	case "action":
		return o.rec.Action.String(), nil
	case "changes":
		changes := o.rec.Changes
		if changes == nil {
			changes = map[string]any{}
		}
		raw, err := json.Marshal(changes)
		if err != nil {
			return nil, fmt.Errorf("marshal audit changes: %w", err)
		}
		return string(raw), nil
	case "createdAt":
		return o.rec.CreatedAt.UTC().Format(time.RFC3339), nil
	}
	return nil, unknownField(o, field)
}

// timestamp renders t as RFC 3339, or null for a record never stored.
func timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func unknownField(o object, field string) error {
	return fmt.Errorf("graphql: %s has no field %q", o.typeName(), field)
}
