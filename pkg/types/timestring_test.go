package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "08:00"},
		{input: "17:30"},
		{input: "00:00"},
		{input: "23:59"},
		{input: "24:00", wantErr: true},
		{input: "8:00", wantErr: true},
		{input: "10:60", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_At(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 2, 11, 18, 45, 12, 0, loc)

	at, err := TimeString("10:00").At(date)
	require.NoError(t, err)

	// Компонента времени даты отбрасывается, часовой пояс сохраняется
	assert.Equal(t, time.Date(2026, 2, 11, 10, 0, 0, 0, loc), at)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("14:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("17:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("14:00").IsAfter("11:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 2, 11, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}
