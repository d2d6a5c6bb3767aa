// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"shifts/pkg/domain"
	"time"
)

// WorkerStorage provides read access to workers.
type WorkerStorage interface {
	// WorkerByID returns the worker with the given ID, or nil when it does not exist.
	WorkerByID(ctx context.Context, ID domain.WorkerID) (*domain.Worker, error)
}

// FacilityStorage provides read access to facilities.
type FacilityStorage interface {
	// FacilityByID returns the facility with the given ID, or nil when it does not exist.
	FacilityByID(ctx context.Context, ID domain.FacilityID) (*domain.Facility, error)
}

// RequirementStorage provides read access to facility document requirements.
type RequirementStorage interface {
	// FirstMissingRequirement returns one requirement of the facility, bound to an
	// active document, that the worker does not hold. It returns nil when the
	// worker meets every requirement. Only existence is probed, so at most one
	// requirement is ever returned.
	FirstMissingRequirement(ctx context.Context,
		facilityID domain.FacilityID,
		workerID domain.WorkerID) (*domain.FacilityRequirement, error)
}

// ShiftStorage provides read access to shifts. Soft-deleted shifts are
// excluded from every query.
type ShiftStorage interface {
	// ClaimedShifts returns the shifts claimed by the worker that start at or
	// after start and end at or before end.
	ClaimedShifts(ctx context.Context, workerID domain.WorkerID, start, end time.Time) ([]domain.Shift, error)
	// OverlappingAvailableShiftIDs returns the IDs of the available shifts of the
	// facility whose start lies between windowStart and windowEnd, in either order.
	OverlappingAvailableShiftIDs(ctx context.Context,
		facilityID domain.FacilityID,
		windowStart, windowEnd time.Time) ([]domain.ShiftID, error)
	// FindAndCountAvailableShifts returns one page of the shifts matching filter,
	// ordered by start then end, together with the number of shifts matching
	// filter across all pages.
	FindAndCountAvailableShifts(ctx context.Context, filter AvailableShiftFilter, skip, take uint) (ShiftPage, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	WorkerStorage
	FacilityStorage
	RequirementStorage
	ShiftStorage
}

// TxOptions tune a transaction started through Storage.
type TxOptions struct {
	// ReadOnly makes the database reject writes issued inside the transaction.
	ReadOnly bool
	// Snapshot pins every statement of the transaction to the snapshot taken by
	// its first statement, so related reads agree with each other.
	Snapshot bool
}

// ReadSnapshot is used by reads spanning several statements that must observe
// the same data.
var ReadSnapshot = TxOptions{ReadOnly: true, Snapshot: true} //nolint: gochecknoglobals

// TxStorage is an AllStorage bound to an open transaction. It is unusable once
// Commit or Rollback returns.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root, non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin opens a transaction configured by opts.
	Begin(ctx context.Context, opts TxOptions) (TxStorage, error)
	// WithTx runs cb inside a transaction configured by opts. The transaction is
	// committed when cb returns nil and rolled back otherwise.
	WithTx(ctx context.Context, opts TxOptions, cb func(storage AllStorage) error) error
}
