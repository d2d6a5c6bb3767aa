package eligibility

import (
	"context"
	"shifts/pkg/domain"
	"shifts/pkg/storage"
	"time"
)

// Shifts is a page of available shifts grouped by their calendar dates.
type Shifts = domain.PagedResult[[]domain.ShiftBucket]

//go:generate mockgen -package mockeligibility -source=interface.go -destination=mock/mockeligibility.go *
type Eligibility interface {
	FindEligibleShifts(ctx context.Context,
		facilityID domain.FacilityID,
		workerID domain.WorkerID,
		startDate, endDate string,
		pagination domain.Pagination) (Shifts, error)
	ConflictingShiftIDs(ctx context.Context,
		facilityID domain.FacilityID,
		workerID domain.WorkerID,
		start, end time.Time) ([]domain.ShiftID, error)
	FindAvailable(ctx context.Context, filter storage.AvailableShiftFilter, pagination domain.Pagination) (Shifts, error)
}
