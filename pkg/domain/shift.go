package domain

import "time"

// ShiftID uniquely identifies a shift.
type ShiftID int64

// Shift is a block of work posted by a facility. A shift without a worker is
// available; a shift with a worker is claimed.
type Shift struct {
	// ID is the unique identifier of the shift.
	ID ShiftID `json:"id"`
	// FacilityID is the facility that posted the shift.
	FacilityID FacilityID `json:"facilityId"`
	// WorkerID is the worker who claimed the shift, nil while the shift is available.
	WorkerID *WorkerID `json:"workerId"`
	// Start is the beginning of the shift.
	Start time.Time `json:"start"`
	// End is the end of the shift.
	End time.Time `json:"end"`
	// Profession is the profession required to work the shift.
	Profession Profession `json:"profession"`
	// IsDeleted marks soft-deleted shifts which are never matched nor returned.
	IsDeleted bool `json:"isDeleted"`
}

// ShiftBucket groups shifts sharing the same UTC calendar start and end dates.
type ShiftBucket struct {
	// Start is the UTC calendar date (yyyy-MM-dd) the shifts start on.
	Start string `json:"start"`
	// End is the UTC calendar date (yyyy-MM-dd) the shifts end on.
	End string `json:"end"`
	// Shifts are the shifts of the bucket, in page order.
	Shifts []Shift `json:"shifts"`
}
