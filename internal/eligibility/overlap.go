package eligibility

import (
	"context"
	"fmt"
	"shifts/pkg/domain"
	"shifts/pkg/logger"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ConflictingShiftIDs returns the IDs of available shifts at the facility that
// start inside a shift the worker already claimed in [start, end].
//
// One lookup is issued per claimed shift and they run concurrently. The result
// keeps the order of claimed shifts and is not deduplicated. The first failing
// lookup fails the whole call and cancels the rest.
func (e eligibility) ConflictingShiftIDs(ctx context.Context,
	facilityID domain.FacilityID,
	workerID domain.WorkerID,
	start, end time.Time) ([]domain.ShiftID, error) {
	ctx, span := e.tracer.Start(ctx, "ConflictingShiftIDs")
	defer span.End()

	claimed, err := e.storage.ClaimedShifts(ctx, workerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not get claimed shifts: %w", err)
	}
	span.SetAttributes(attribute.Int("shifts.claimed", len(claimed)))
	if len(claimed) == 0 {
		return nil, nil
	}

	results := make([][]domain.ShiftID, len(claimed))
	g, gctx := errgroup.WithContext(ctx)
	if e.options.MaxConcurrentOverlapQueries > 0 {
		g.SetLimit(e.options.MaxConcurrentOverlapQueries)
	}
	for i, shift := range claimed {
		g.Go(func() error {
			ids, err := e.storage.OverlappingAvailableShiftIDs(gctx, facilityID, shift.Start, shift.End)
			if err != nil {
				return fmt.Errorf("could not get shifts overlapping shift %d: %w", shift.ID, err)
			}
			results[i] = ids

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var conflicting []domain.ShiftID
	for _, ids := range results {
		conflicting = append(conflicting, ids...)
	}
	logger.Debug(ctx, "computed conflicting shifts",
		zap.Int("claimed", len(claimed)), zap.Int("conflicting", len(conflicting)))
	span.SetAttributes(attribute.Int("shifts.conflicting", len(conflicting)))

	return conflicting, nil
}
