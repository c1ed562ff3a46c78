package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMassDateTime(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		massTime string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "schedule label",
			date:     "2025-03-16",
			massTime: "9:00 AM",
			want:     time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "afternoon label",
			date:     "2025-03-16",
			massTime: "4:30 pm",
			want:     time.Date(2025, 3, 16, 16, 30, 0, 0, time.UTC),
		},
		{
			name:     "24 hour input",
			date:     "2025-03-16",
			massTime: "18:00",
			want:     time.Date(2025, 3, 16, 18, 0, 0, 0, time.UTC),
		},
		{
			name:     "with seconds",
			date:     "2025-03-16",
			massTime: "18:00:30",
			want:     time.Date(2025, 3, 16, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "empty time is midnight",
			date: "2025-03-16",
			want: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "padded input",
			date:     " 2025-03-16 ",
			massTime: " 9:00 AM ",
			want:     time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "bad date",
			date:    "16/03/2025",
			wantErr: true,
		},
		{
			name:     "bad time",
			date:     "2025-03-16",
			massTime: "around nine",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMassDateTime(tt.date, tt.massTime)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestIsValidMassDate(t *testing.T) {
	assert.True(t, IsValidMassDate("2025-03-16"))
	assert.True(t, IsValidMassDate(" 2025-03-16 "))
	assert.False(t, IsValidMassDate("16/03/2025"))
	assert.False(t, IsValidMassDate("2025-13-40"))
	assert.False(t, IsValidMassDate("next sunday"))
	assert.False(t, IsValidMassDate(""))
}

func TestIsValidMassTime(t *testing.T) {
	assert.True(t, IsValidMassTime("9:00 AM"))
	assert.True(t, IsValidMassTime("4:30 pm"))
	assert.True(t, IsValidMassTime("18:00"))
	assert.True(t, IsValidMassTime("18:00:30"))
	assert.False(t, IsValidMassTime("around nine"))
	assert.False(t, IsValidMassTime(""))
}

func TestCanMutateBoundary(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scheduledAt time.Time
		want        bool
	}{
		{"exactly 24h out is editable", now.Add(24 * time.Hour), true},
		{"one minute inside the window", now.Add(24*time.Hour - time.Minute), false},
		{"one second inside the window", now.Add(24*time.Hour - time.Second), false},
		{"well outside the window", now.Add(7 * 24 * time.Hour), true},
		{"already past", now.Add(-time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.scheduledAt, now))
		})
	}
}
