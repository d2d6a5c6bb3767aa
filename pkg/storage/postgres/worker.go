package postgres

import (
	"context"
	"fmt"
	"shifts/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	workersTable    = "workers"
	facilitiesTable = "facilities"
)

// WorkerByID returns a worker by its ID, or nil when no such worker exists.
func (p *PgSQL) WorkerByID(ctx context.Context, id domain.WorkerID) (*domain.Worker, error) {
	var row PgWorker
	found, err := p.Builder.From(workersTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch worker by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// FacilityByID returns a facility by its ID, or nil when no such facility exists.
func (p *PgSQL) FacilityByID(ctx context.Context, id domain.FacilityID) (*domain.Facility, error) {
	var row PgFacility
	found, err := p.Builder.From(facilitiesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch facility by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
