package eligibility

import "errors"

// Classified rejections returned by FindEligibleShifts. They are always wrapped
// in a serrors kind, so callers can match either the rejection or the kind.
var (
	// ErrWorkerNotEligible is returned when the worker does not exist or is inactive.
	ErrWorkerNotEligible = errors.New("worker not eligible")
	// ErrFacilityNotEligible is returned when the facility does not exist or is inactive.
	ErrFacilityNotEligible = errors.New("facility not eligible")
	// ErrRequirementsUnmet is returned when the worker lacks a document the facility requires.
	ErrRequirementsUnmet = errors.New("facility requirements unmet")
)
