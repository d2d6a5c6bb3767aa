package domain

// FacilityID uniquely identifies a healthcare facility.
type FacilityID int64

// DocumentID uniquely identifies a document type (license, certificate, ...).
type DocumentID int64

// Facility is a healthcare facility posting shifts.
type Facility struct {
	ID       FacilityID `json:"id"`
	Name     string     `json:"name"`
	IsActive bool       `json:"isActive"`
}

// Document is a type of document a worker can hold, e.g. a state license.
type Document struct {
	ID       DocumentID `json:"id"`
	Name     string     `json:"name"`
	IsActive bool       `json:"isActive"`
}

// FacilityRequirement links a facility to a document every worker needs to
// hold before claiming shifts there.
type FacilityRequirement struct {
	ID         int64      `json:"id"`
	FacilityID FacilityID `json:"facilityId"`
	DocumentID DocumentID `json:"documentId"`
}
