package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"shifts/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	require.Equal(t, "loading worker: db down", serrors.Wrap(serrors.ErrInternal, base, "loading worker").Error())
	require.Equal(t, "worker 3 is inactive", serrors.With(serrors.ErrNotFound, "worker %d is inactive", 3).Error())
	require.Equal(t, "db down", serrors.Wrap(serrors.ErrInternal, base, "").Error())
	require.Equal(t, "BAD_REQUEST", serrors.KindOnly(serrors.ErrBadRequest).Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	notEligible := errors.New("not eligible")
	e := serrors.Wrap(serrors.ErrNotFound, notEligible, "worker not found")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, notEligible)
	require.NotErrorIs(t, e, serrors.ErrBadRequest)

	// matching survives further wrapping
	wrapped := fmt.Errorf("find eligible shifts: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrNotFound)
	require.ErrorIs(t, wrapped, notEligible)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "invalid start date")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "invalid start date", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "semantic", err: serrors.With(serrors.ErrNotFound, "gone"), want: serrors.ErrNotFound},
		{name: "wrapped semantic", err: fmt.Errorf("ctx: %w", serrors.KindOnly(serrors.ErrBadRequest)),
			want: serrors.ErrBadRequest},
		{name: "bare kind", err: serrors.ErrNotFound, want: serrors.ErrNotFound},
		{name: "plain", err: errors.New("connection reset"), want: serrors.ErrInternal},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: serrors.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "invalid end date",
		serrors.MessageOf(serrors.Wrap(serrors.ErrBadRequest, errors.New("parse"), "invalid end date")))
	require.Equal(t, "NOT_FOUND", serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound)))
	// causes of plain errors are never exposed
	require.Equal(t, "INTERNAL", serrors.MessageOf(errors.New("password authentication failed")))
}
