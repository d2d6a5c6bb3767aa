package postgres

import (
	"database/sql"
	"shifts/pkg/domain"
	"time"
)

type PgWorker struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	IsActive   bool   `db:"is_active"`
	Profession string `db:"profession"`
}

func (p *PgWorker) ToDomain() *domain.Worker {
	return &domain.Worker{
		ID:         domain.WorkerID(p.ID),
		Name:       p.Name,
		IsActive:   p.IsActive,
		Profession: domain.Profession(p.Profession),
	}
}

type PgFacility struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}

func (p *PgFacility) ToDomain() *domain.Facility {
	return &domain.Facility{
		ID:       domain.FacilityID(p.ID),
		Name:     p.Name,
		IsActive: p.IsActive,
	}
}

type PgFacilityRequirement struct {
	ID         int64 `db:"id"`
	FacilityID int64 `db:"facility_id"`
	DocumentID int64 `db:"document_id"`
}

func (p *PgFacilityRequirement) ToDomain() *domain.FacilityRequirement {
	return &domain.FacilityRequirement{
		ID:         p.ID,
		FacilityID: domain.FacilityID(p.FacilityID),
		DocumentID: domain.DocumentID(p.DocumentID),
	}
}

type PgShift struct {
	ID         int64         `db:"id"`
	FacilityID int64         `db:"facility_id"`
	WorkerID   sql.NullInt64 `db:"worker_id"`
	Start      time.Time     `db:"start"`
	End        time.Time     `db:"end"`
	Profession string        `db:"profession"`
	IsDeleted  bool          `db:"is_deleted"`
}

func (p *PgShift) ToDomain() domain.Shift {
	var workerID *domain.WorkerID
	if p.WorkerID.Valid {
		id := domain.WorkerID(p.WorkerID.Int64)
		workerID = &id
	}

	return domain.Shift{
		ID:         domain.ShiftID(p.ID),
		FacilityID: domain.FacilityID(p.FacilityID),
		WorkerID:   workerID,
		Start:      p.Start.UTC(),
		End:        p.End.UTC(),
		Profession: domain.Profession(p.Profession),
		IsDeleted:  p.IsDeleted,
	}
}

func pgShiftsToDomain(shifts []PgShift) []domain.Shift {
	out := make([]domain.Shift, 0, len(shifts))
	for i := range shifts {
		out = append(out, shifts[i].ToDomain())
	}

	return out
}
