package eligibility_test

import (
	"context"
	"errors"
	"shifts/internal/eligibility"
	"shifts/pkg/domain"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEligibility_ConflictingShiftIDs_NoClaimedShifts(t *testing.T) {
	st, e := newTestEligibility(t, eligibility.Options{})
	st.EXPECT().ClaimedShifts(gomock.Any(), workerID, rangeStart, rangeEnd).Return([]domain.Shift{}, nil)

	ids, err := e.ConflictingShiftIDs(context.Background(), facilityID, workerID, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Nil(t, ids)
}

func TestEligibility_ConflictingShiftIDs_KeepsClaimedOrder(t *testing.T) {
	st, e := newTestEligibility(t, eligibility.Options{})
	first := shiftAt(1, rangeStart.Add(time.Hour), rangeStart.Add(9*time.Hour))
	second := shiftAt(2, rangeStart.Add(25*time.Hour), rangeStart.Add(33*time.Hour))
	secondDone := make(chan struct{})

	st.EXPECT().ClaimedShifts(gomock.Any(), workerID, rangeStart, rangeEnd).Return([]domain.Shift{first, second}, nil)
	// the first lookup finishes last
	st.EXPECT().OverlappingAvailableShiftIDs(gomock.Any(), facilityID, first.Start, first.End).DoAndReturn(
		func(ctx context.Context, _ domain.FacilityID, _, _ time.Time) ([]domain.ShiftID, error) {
			select {
			case <-secondDone:
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			return []domain.ShiftID{10, 11}, nil
		},
	)
	st.EXPECT().OverlappingAvailableShiftIDs(gomock.Any(), facilityID, second.Start, second.End).DoAndReturn(
		func(context.Context, domain.FacilityID, time.Time, time.Time) ([]domain.ShiftID, error) {
			defer close(secondDone)

			return []domain.ShiftID{11, 12}, nil
		},
	)

	ids, err := e.ConflictingShiftIDs(context.Background(), facilityID, workerID, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Equal(t, []domain.ShiftID{10, 11, 11, 12}, ids)
}

func TestEligibility_ConflictingShiftIDs_LookupFails(t *testing.T) {
	st, e := newTestEligibility(t, eligibility.Options{})
	first := shiftAt(1, rangeStart.Add(time.Hour), rangeStart.Add(9*time.Hour))
	second := shiftAt(2, rangeStart.Add(25*time.Hour), rangeStart.Add(33*time.Hour))
	boom := errors.New("statement timeout")

	st.EXPECT().ClaimedShifts(gomock.Any(), workerID, rangeStart, rangeEnd).Return([]domain.Shift{first, second}, nil)
	st.EXPECT().OverlappingAvailableShiftIDs(gomock.Any(), facilityID, first.Start, first.End).
		Return([]domain.ShiftID{10}, nil).AnyTimes()
	st.EXPECT().OverlappingAvailableShiftIDs(gomock.Any(), facilityID, second.Start, second.End).
		Return(nil, boom)

	ids, err := e.ConflictingShiftIDs(context.Background(), facilityID, workerID, rangeStart, rangeEnd)
	require.ErrorIs(t, err, boom)
	require.Nil(t, ids)
}

func TestEligibility_ConflictingShiftIDs_ClaimedShiftsFails(t *testing.T) {
	st, e := newTestEligibility(t, eligibility.Options{})
	boom := errors.New("connection refused")
	st.EXPECT().ClaimedShifts(gomock.Any(), workerID, rangeStart, rangeEnd).Return(nil, boom)

	_, err := e.ConflictingShiftIDs(context.Background(), facilityID, workerID, rangeStart, rangeEnd)
	require.ErrorIs(t, err, boom)
}

func TestEligibility_ConflictingShiftIDs_Limit(t *testing.T) {
	st, e := newTestEligibility(t, eligibility.Options{MaxConcurrentOverlapQueries: 1})
	claimed := make([]domain.Shift, 0, 4)
	for i := range 4 {
		start := rangeStart.Add(time.Duration(i) * 24 * time.Hour)
		claimed = append(claimed, shiftAt(domain.ShiftID(i+1), start, start.Add(8*time.Hour)))
	}

	var inFlight, peak atomic.Int32
	st.EXPECT().ClaimedShifts(gomock.Any(), workerID, rangeStart, rangeEnd).Return(claimed, nil)
	st.EXPECT().OverlappingAvailableShiftIDs(gomock.Any(), facilityID, gomock.Any(), gomock.Any()).Times(4).DoAndReturn(
		func(_ context.Context, _ domain.FacilityID, start, _ time.Time) ([]domain.ShiftID, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			return []domain.ShiftID{domain.ShiftID(start.Day())}, nil
		},
	)

	ids, err := e.ConflictingShiftIDs(context.Background(), facilityID, workerID, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Equal(t, []domain.ShiftID{1, 2, 3, 4}, ids)
	require.Equal(t, int32(1), peak.Load())
}
