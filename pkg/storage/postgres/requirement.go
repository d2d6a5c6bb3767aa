package postgres

import (
	"context"
	"fmt"
	"shifts/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	documentsTable            = "documents"
	documentWorkersTable      = "document_workers"
	facilityRequirementsTable = "facility_requirements"
)

// FirstMissingRequirement returns the first requirement of the facility whose
// document is active and not held by the worker. Only a single row is fetched
// since callers only need to know whether anything is missing.
func (p *PgSQL) FirstMissingRequirement(ctx context.Context,
	facilityID domain.FacilityID,
	workerID domain.WorkerID) (*domain.FacilityRequirement, error) {
	held := p.Builder.From(documentWorkersTable).
		Select("document_id").
		Where(goqu.I("worker_id").Eq(int64(workerID)))

	var row PgFacilityRequirement
	found, err := p.Builder.From(goqu.T(facilityRequirementsTable).As("fr")).
		Select(
			goqu.I("fr.id").As("id"),
			goqu.I("fr.facility_id").As("facility_id"),
			goqu.I("fr.document_id").As("document_id"),
		).
		InnerJoin(goqu.T(documentsTable).As("d"), goqu.On(goqu.I("d.id").Eq(goqu.I("fr.document_id")))).
		Where(
			goqu.I("fr.facility_id").Eq(int64(facilityID)),
			goqu.I("d.is_active").IsTrue(),
			goqu.I("fr.document_id").NotIn(held),
		).
		Order(goqu.I("fr.id").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch missing facility requirements: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
