package postgres_test

import (
	"context"
	"shifts/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_WorkerByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	exec(t, pgSQL, `INSERT INTO workers (id, name, is_active, profession) VALUES (1, 'Ana', true, 'RN'), (2, 'Bo', false, 'CNA')`)

	w, err := pgSQL.WorkerByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, &domain.Worker{ID: 1, Name: "Ana", IsActive: true, Profession: domain.ProfessionRN}, w)

	inactive, err := pgSQL.WorkerByID(ctx, 2)
	require.NoError(t, err)
	require.False(t, inactive.IsActive)

	missing, err := pgSQL.WorkerByID(ctx, 404)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_FacilityByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	exec(t, pgSQL, `INSERT INTO facilities (id, name, is_active) VALUES (10, 'General', true)`)

	f, err := pgSQL.FacilityByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, &domain.Facility{ID: 10, Name: "General", IsActive: true}, f)

	missing, err := pgSQL.FacilityByID(ctx, 11)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_FirstMissingRequirement(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	exec(t, pgSQL, `INSERT INTO workers (id, name, is_active, profession) VALUES (1, 'Ana', true, 'RN')`)
	exec(t, pgSQL, `INSERT INTO facilities (id, name, is_active) VALUES (10, 'General', true), (20, 'Clinic', true),
		(30, 'Hospice', true)`)
	exec(t, pgSQL, `INSERT INTO documents (id, name, is_active) VALUES (1, 'License', true), (2, 'TB test', true),
		(3, 'Retired form', false)`)
	exec(t, pgSQL, `INSERT INTO document_workers (worker_id, document_id) VALUES (1, 1)`)
	exec(t, pgSQL, `INSERT INTO facility_requirements (id, facility_id, document_id) VALUES
		(100, 10, 1),
		(101, 10, 2),
		(200, 20, 1),
		(300, 30, 3)`)

	t.Run("worker lacks a document", func(t *testing.T) {
		req, err := pgSQL.FirstMissingRequirement(ctx, 10, 1)
		require.NoError(t, err)
		require.NotNil(t, req)
		require.EqualValues(t, 101, req.ID)
		require.EqualValues(t, 2, req.DocumentID)
	})

	t.Run("worker holds every document", func(t *testing.T) {
		req, err := pgSQL.FirstMissingRequirement(ctx, 20, 1)
		require.NoError(t, err)
		require.Nil(t, req)
	})

	t.Run("inactive documents are not required", func(t *testing.T) {
		req, err := pgSQL.FirstMissingRequirement(ctx, 30, 1)
		require.NoError(t, err)
		require.Nil(t, req)
	})

	t.Run("facility without requirements", func(t *testing.T) {
		req, err := pgSQL.FirstMissingRequirement(ctx, 404, 1)
		require.NoError(t, err)
		require.Nil(t, req)
	})
}
