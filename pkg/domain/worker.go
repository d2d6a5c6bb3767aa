package domain

// WorkerID uniquely identifies a worker.
type WorkerID int64

// Profession is the professional category of a worker. A worker can only
// claim shifts posted for the same profession.
type Profession string

const (
	// ProfessionCNA is a Certified Nursing Assistant.
	ProfessionCNA Profession = "CNA"
	// ProfessionLVN is a Licensed Vocational Nurse.
	ProfessionLVN Profession = "LVN"
	// ProfessionRN is a Registered Nurse.
	ProfessionRN Profession = "RN"
)

// Worker is a healthcare professional that can claim shifts at facilities.
type Worker struct {
	// ID is the unique identifier of the worker.
	ID WorkerID `json:"id"`
	// Name is the display name of the worker.
	Name string `json:"name"`
	// IsActive is false for workers that must not be offered any shift.
	IsActive bool `json:"isActive"`
	// Profession determines which shifts the worker may claim.
	Profession Profession `json:"profession"`
}
