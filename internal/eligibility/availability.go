package eligibility

import (
	"context"
	"fmt"
	"shifts/pkg/domain"
	"shifts/pkg/storage"
)

// FindAvailable returns one page of unclaimed, non-deleted shifts matching the
// filter, grouped by their UTC start and end dates.
func (e eligibility) FindAvailable(ctx context.Context,
	filter storage.AvailableShiftFilter,
	pagination domain.Pagination) (Shifts, error) {
	ctx, span := e.tracer.Start(ctx, "FindAvailable")
	defer span.End()

	pagination, err := e.pagination(pagination)
	if err != nil {
		return Shifts{}, err
	}

	page, err := e.storage.FindAndCountAvailableShifts(ctx, filter,
		uint(pagination.Skip()), uint(pagination.PageSize)) //nolint: gosec
	if err != nil {
		return Shifts{}, fmt.Errorf("could not find available shifts: %w", err)
	}

	return NewPagedResult(GroupShifts(page.Shifts), page.TotalCount, pagination), nil
}

// GroupShifts buckets shifts by their UTC start and end calendar dates. Buckets
// appear in the order their first shift appears, and shifts keep their
// relative order inside a bucket.
func GroupShifts(shifts []domain.Shift) []domain.ShiftBucket {
	buckets := make([]domain.ShiftBucket, 0)
	index := make(map[[2]string]int)
	for _, shift := range shifts {
		key := [2]string{shift.Start.UTC().Format(DateLayout), shift.End.UTC().Format(DateLayout)}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, domain.ShiftBucket{Start: key[0], End: key[1]})
		}
		buckets[i].Shifts = append(buckets[i].Shifts, shift)
	}

	return buckets
}

// NewPagedResult wraps data with the paging metadata derived from totalCount.
// NextPage is not clamped to the last page.
func NewPagedResult[T any](data T, totalCount int64, pagination domain.Pagination) domain.PagedResult[T] {
	var totalPages int64
	if pagination.PageSize > 0 {
		size := int64(pagination.PageSize)
		totalPages = (totalCount + size - 1) / size
	}

	return domain.PagedResult[T]{
		Data:       data,
		TotalCount: totalCount,
		PageNumber: pagination.Page,
		TotalPages: totalPages,
		NextPage:   pagination.Page + 1,
	}
}
