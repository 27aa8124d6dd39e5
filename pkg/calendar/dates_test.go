package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLooseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-06-01", "2024-06-01", false},
		{"01/06/2024", "2024-06-01", false},
		{"01.06.2024", "2024-06-01", false},
		{`01\06\2024`, "2024-06-01", false},
		{"01-06-2024", "2024-06-01", false},
		{"29/02/2024", "2024-02-29", false}, // leap day
		{"2024-02-31", "", true},
		{"31/02/2024", "", true},
		{"29/02/2023", "", true}, // not a leap year
		{"", "", true},
		{"yesterday", "", true},
		{"01/06", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseLooseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ToISODay(d))
		})
	}
}

func TestAddDays(t *testing.T) {
	d, err := ParseLooseDate("2024-06-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-09-29", ToISODay(AddDays(d, 120)))
	assert.Equal(t, "2024-05-31", ToISODay(AddDays(d, -1)))
	assert.Equal(t, "2024-06-01", ToISODay(AddDays(d, 0)))

	// month and year rollovers
	nye, _ := time.Parse("2006-01-02", "2023-12-31")
	assert.Equal(t, "2024-01-01", ToISODay(AddDays(nye, 1)))
}

func TestClampISO(t *testing.T) {
	assert.Equal(t, "2024-06-01", ClampISO("2024-05-20", "2024-06-01", "2024-09-29"))
	assert.Equal(t, "2024-09-29", ClampISO("2024-10-05", "2024-06-01", "2024-09-29"))
	assert.Equal(t, "2024-07-15", ClampISO("2024-07-15", "2024-06-01", "2024-09-29"))
}
