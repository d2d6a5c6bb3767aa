package storage

import (
	"shifts/pkg/domain"
	"time"
)

// AvailableShiftFilter selects the available shifts a worker may claim. The
// same value is used for the paged query and for the count query so both
// always agree on the matching set.
type AvailableShiftFilter struct {
	// FacilityID restricts shifts to a single facility.
	FacilityID domain.FacilityID
	// Profession restricts shifts to those posted for this profession.
	Profession domain.Profession
	// Start is the lower bound for the shift start (inclusive).
	Start time.Time
	// End is the upper bound for the shift end (inclusive).
	End time.Time
	// ExcludeIDs lists shifts to leave out. An empty list excludes nothing and
	// must not produce any exclusion predicate.
	ExcludeIDs []domain.ShiftID
}

// ShiftPage is a page of shifts along with the total number of matching shifts.
type ShiftPage struct {
	// Shifts contains the current page ordered by start then end.
	Shifts []domain.Shift
	// TotalCount is the number of shifts matching the filter, ignoring paging.
	TotalCount int64
}
