package domain_test

import (
	"shifts/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagination_WithDefaults(t *testing.T) {
	tests := []struct {
		name            string
		in              domain.Pagination
		defaultPageSize int
		want            domain.Pagination
	}{
		{name: "empty", in: domain.Pagination{}, defaultPageSize: 25, want: domain.Pagination{Page: 1, PageSize: 25}},
		{name: "invalid default", in: domain.Pagination{}, defaultPageSize: 0, want: domain.Pagination{Page: 1, PageSize: 10}},
		{name: "explicit", in: domain.Pagination{Page: 3, PageSize: 5}, defaultPageSize: 25,
			want: domain.Pagination{Page: 3, PageSize: 5}},
		// negative values are left for validation
		{name: "negative", in: domain.Pagination{Page: -1, PageSize: -2}, defaultPageSize: 25,
			want: domain.Pagination{Page: -1, PageSize: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.WithDefaults(tt.defaultPageSize))
		})
	}
}

func TestPagination_Skip(t *testing.T) {
	require.Equal(t, 0, domain.Pagination{Page: 1, PageSize: 10}.Skip())
	require.Equal(t, 20, domain.Pagination{Page: 3, PageSize: 10}.Skip())
}
