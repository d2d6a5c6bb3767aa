package postgres

import (
	"context"
	"fmt"
	"shifts/pkg/domain"
	"shifts/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	shiftsTable = "shifts"
)

// availableShiftExpressions translates the filter into the WHERE clause shared
// by the paged and the count queries. The exclusion predicate is only emitted
// when there is something to exclude.
func availableShiftExpressions(filter storage.AvailableShiftFilter) []exp.Expression {
	w := []exp.Expression{
		goqu.I("facility_id").Eq(int64(filter.FacilityID)),
		goqu.I("profession").Eq(string(filter.Profession)),
		goqu.I("worker_id").IsNull(),
		goqu.I("is_deleted").IsFalse(),
		goqu.I("start").Gte(filter.Start),
		goqu.I("end").Lte(filter.End),
	}
	if len(filter.ExcludeIDs) > 0 {
		ids := make([]int64, 0, len(filter.ExcludeIDs))
		for _, id := range filter.ExcludeIDs {
			ids = append(ids, int64(id))
		}
		w = append(w, goqu.I("id").NotIn(ids))
	}

	return w
}

// overlappingStartExpression matches shifts whose start falls inside the window,
// accepting the window bounds in either order.
func overlappingStartExpression(windowStart, windowEnd time.Time) exp.Expression {
	return goqu.Or(
		goqu.And(
			goqu.I("start").Lte(windowStart),
			goqu.I("start").Gte(windowEnd),
		),
		goqu.And(
			goqu.I("start").Gte(windowStart),
			goqu.I("start").Lte(windowEnd),
		),
	)
}

// ClaimedShifts returns the non-deleted shifts claimed by the worker inside
// [start, end], ordered by start.
func (p *PgSQL) ClaimedShifts(ctx context.Context,
	workerID domain.WorkerID,
	start, end time.Time) ([]domain.Shift, error) {
	var rows []PgShift
	if err := p.Builder.From(shiftsTable).
		Where(
			goqu.I("worker_id").Eq(int64(workerID)),
			goqu.I("is_deleted").IsFalse(),
			goqu.I("start").Gte(start),
			goqu.I("end").Lte(end),
		).
		Order(goqu.I("start").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch claimed shifts from pg: %w", err)
	}

	return pgShiftsToDomain(rows), nil
}

// OverlappingAvailableShiftIDs returns the IDs of available shifts at the
// facility starting within the given window.
func (p *PgSQL) OverlappingAvailableShiftIDs(ctx context.Context,
	facilityID domain.FacilityID,
	windowStart, windowEnd time.Time) ([]domain.ShiftID, error) {
	var ids []int64
	if err := p.Builder.From(shiftsTable).
		Select("id").
		Where(
			goqu.I("facility_id").Eq(int64(facilityID)),
			goqu.I("worker_id").IsNull(),
			goqu.I("is_deleted").IsFalse(),
			overlappingStartExpression(windowStart, windowEnd),
		).
		Order(goqu.I("id").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch overlapping shifts from pg: %w", err)
	}

	out := make([]domain.ShiftID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ShiftID(id))
	}

	return out, nil
}

// FindAndCountAvailableShifts returns a page of available shifts ordered by
// start and end, together with the total number of shifts matching filter.
// Both statements share one snapshot so the page and the total agree.
func (p *PgSQL) FindAndCountAvailableShifts(ctx context.Context,
	filter storage.AvailableShiftFilter,
	skip, take uint) (storage.ShiftPage, error) {
	if take == 0 {
		return storage.ShiftPage{}, storage.ErrEmptyPage
	}

	w := availableShiftExpressions(filter)

	var (
		rows  []PgShift
		total int64
	)
	err := p.snapshot(ctx, func(tx *PgSQL) error {
		if err := tx.Builder.From(shiftsTable).
			Where(w...).
			Order(goqu.I("start").Asc(), goqu.I("end").Asc(), goqu.I("id").Asc()).
			Offset(skip).
			Limit(take).
			Executor().ScanStructsContext(ctx, &rows); err != nil {
			return fmt.Errorf("could not fetch available shifts from pg: %w", err)
		}

		var err error
		if total, err = tx.Builder.From(shiftsTable).Where(w...).CountContext(ctx); err != nil {
			return fmt.Errorf("could not count available shifts in pg: %w", err)
		}

		return nil
	})
	if err != nil {
		return storage.ShiftPage{}, err
	}

	return storage.ShiftPage{
		Shifts:     pgShiftsToDomain(rows),
		TotalCount: total,
	}, nil
}
