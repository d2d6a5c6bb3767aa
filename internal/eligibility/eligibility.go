package eligibility

import (
	"context"
	"fmt"
	"math"
	"shifts/internal/config"
	"shifts/pkg/domain"
	"shifts/pkg/logger"
	"shifts/pkg/serrors"
	"shifts/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "shifts/internal/eligibility"

// Options configure paging defaults and how much work a single lookup may fan out.
type Options struct {
	// DefaultPageSize is applied when the caller omits a page size.
	DefaultPageSize int
	// MaxConcurrentOverlapQueries caps the overlap queries running at once for
	// a single lookup. Zero or less means every claimed shift is queried at once.
	MaxConcurrentOverlapQueries int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultPageSize:             cfg.Eligibility.DefaultPageSize,
		MaxConcurrentOverlapQueries: cfg.Eligibility.MaxConcurrentOverlapQueries,
	}
}

// eligibility is the concrete implementation of the Eligibility interface.
type eligibility struct {
	options Options
	storage storage.AllStorage
	tracer  trace.Tracer
}

// FindEligibleShifts runs the eligibility rules for the worker at the facility
// and returns the page of shifts the worker may claim within the date range.
//
// Rules run in a fixed order and stop at the first failure: the worker must
// exist and be active, then the facility, then the worker must hold every
// active document the facility requires. Shifts overlapping one the worker
// already claimed are excluded from the result.
func (e eligibility) FindEligibleShifts(ctx context.Context,
	facilityID domain.FacilityID,
	workerID domain.WorkerID,
	startDate, endDate string,
	pagination domain.Pagination) (Shifts, error) {
	ctx, span := e.tracer.Start(ctx, "FindEligibleShifts", trace.WithAttributes(
		attribute.Int64("facility.id", int64(facilityID)),
		attribute.Int64("worker.id", int64(workerID)),
	))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.Int64("facilityId", int64(facilityID)), zap.Int64("workerId", int64(workerID)))

	res, err := e.findEligibleShifts(ctx, facilityID, workerID, startDate, endDate, pagination)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return Shifts{}, err
	}
	span.SetAttributes(attribute.Int64("shifts.total", res.TotalCount))

	return res, nil
}

func (e eligibility) findEligibleShifts(ctx context.Context,
	facilityID domain.FacilityID,
	workerID domain.WorkerID,
	startDate, endDate string,
	pagination domain.Pagination) (Shifts, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return Shifts{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid start date")
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return Shifts{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid end date")
	}
	pagination, err = e.pagination(pagination)
	if err != nil {
		return Shifts{}, err
	}

	worker, err := e.storage.WorkerByID(ctx, workerID)
	if err != nil {
		return Shifts{}, fmt.Errorf("could not get worker: %w", err)
	}
	if worker == nil || !worker.IsActive {
		logger.Debug(ctx, "worker is not eligible", zap.Bool("found", worker != nil))

		return Shifts{}, serrors.Wrap(serrors.ErrNotFound, ErrWorkerNotEligible,
			"worker not found, please check the provided identifier and try again")
	}

	facility, err := e.storage.FacilityByID(ctx, facilityID)
	if err != nil {
		return Shifts{}, fmt.Errorf("could not get facility: %w", err)
	}
	if facility == nil || !facility.IsActive {
		logger.Debug(ctx, "facility is not eligible", zap.Bool("found", facility != nil))

		return Shifts{}, serrors.Wrap(serrors.ErrNotFound, ErrFacilityNotEligible,
			"facility not found, please check the provided identifier and try again")
	}

	missing, err := e.storage.FirstMissingRequirement(ctx, facilityID, workerID)
	if err != nil {
		return Shifts{}, fmt.Errorf("could not check facility requirements: %w", err)
	}
	if missing != nil {
		logger.Debug(ctx, "worker misses a facility requirement", zap.Int64("documentId", int64(missing.DocumentID)))

		return Shifts{}, serrors.Wrap(serrors.ErrBadRequest, ErrRequirementsUnmet,
			"worker does not meet the requirements of the facility")
	}

	excluded, err := e.ConflictingShiftIDs(ctx, facilityID, workerID, start, end)
	if err != nil {
		return Shifts{}, err
	}

	return e.FindAvailable(ctx, storage.AvailableShiftFilter{
		FacilityID: facilityID,
		Profession: worker.Profession,
		Start:      start,
		End:        end,
		ExcludeIDs: excluded,
	}, pagination)
}

// pagination applies defaults and rejects pages that cannot be served.
func (e eligibility) pagination(p domain.Pagination) (domain.Pagination, error) {
	p = p.WithDefaults(e.options.DefaultPageSize)
	if p.Page < 1 {
		return p, serrors.With(serrors.ErrBadRequest, "page must be greater than or equal to 1")
	}
	if p.PageSize < 1 {
		return p, serrors.With(serrors.ErrBadRequest, "page size must be greater than or equal to 1")
	}
	// Page*PageSize bounds both the offset and offset+limit, and keeps Page+1 representable.
	if p.Page > (math.MaxInt-1)/p.PageSize {
		return p, serrors.With(serrors.ErrBadRequest, "page is out of range")
	}

	return p, nil
}

// New creates a new Eligibility instance backed by the provided storage and
// configured with the given options.
func New(storage storage.AllStorage, options Options) Eligibility {
	return &eligibility{
		options: options,
		storage: storage,
		tracer:  otel.Tracer(tracerName),
	}
}
