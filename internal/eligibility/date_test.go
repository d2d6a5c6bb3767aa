package eligibility_test

import (
	"shifts/internal/eligibility"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		err   bool
	}{
		{name: "calendar date", value: "2023-02-01", want: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "utc date-time", value: "2023-02-01T17:35:22Z", want: time.Date(2023, 2, 1, 17, 35, 22, 0, time.UTC)},
		{name: "offset date-time", value: "2023-02-01T22:00:00-05:00", want: time.Date(2023, 2, 2, 3, 0, 0, 0, time.UTC)},
		{name: "fractional seconds", value: "2023-02-01T17:35:22.5Z",
			want: time.Date(2023, 2, 1, 17, 35, 22, 500000000, time.UTC)},
		{name: "local date-time", value: "2023-02-01T17:35:22", want: time.Date(2023, 2, 1, 17, 35, 22, 0, time.UTC)},
		{name: "empty", value: "", err: true},
		{name: "not a date", value: "tomorrow", err: true},
		{name: "us format", value: "02/01/2023", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eligibility.ParseDate(tt.value)
			if tt.err {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			require.Equal(t, time.UTC, got.Location())
		})
	}
}
