package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "zero padded", input: "09:30", want: 570},
		{name: "not padded hour", input: "9:30", want: 570},
		{name: "not padded minute", input: "10:5", want: 605},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "surrounding spaces", input: " 08:00 ", want: 480},
		{name: "empty", input: "", wantErr: true},
		{name: "one field", input: "0930", wantErr: true},
		{name: "three fields", input: "09:30:00", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "negative", input: "-1:00", wantErr: true},
		{name: "three digit field", input: "009:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00", FormatTime(0))
	assert.Equal(t, "09:05", FormatTime(545))
	assert.Equal(t, "23:59", FormatTime(1439))
	assert.Equal(t, "24:00", FormatTime(1440))
	assert.Equal(t, "10:30", FormatTime(630.9))

	assert.Equal(t, NotAvailable, FormatTime(-1))
	assert.Equal(t, NotAvailable, FormatTime(math.NaN()))
	assert.Equal(t, NotAvailable, FormatTime(math.Inf(1)))
	assert.Equal(t, NotAvailable, FormatTime(math.Inf(-1)))
}

func TestFormatTimeString(t *testing.T) {
	assert.Equal(t, "09:00", FormatTimeString("9:0"))
	assert.Equal(t, NotAvailable, FormatTimeString(""))
	assert.Equal(t, NotAvailable, FormatTimeString("later"))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		got, err := ParseTime(FormatTime(float64(m)))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestFormatTimePreservesOrdering(t *testing.T) {
	prev := FormatTime(0)
	for m := 1; m <= MinutesPerDay; m++ {
		cur := FormatTime(float64(m))
		require.Less(t, prev, cur)
		prev = cur
	}
}

func TestDurationMinutes(t *testing.T) {
	d, err := DurationMinutes("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	d, err = DurationMinutes("22:00", "01:00")
	require.NoError(t, err)
	assert.Equal(t, -1260, d)

	_, err = DurationMinutes("9", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestGenerateTimeSlots(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "11:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)

	slots, err = GenerateTimeSlots("09:00", "10:00", 45)
	require.NoError(t, err)
	assert.Equal(t, []TimeString{"09:00", "09:45"}, slots)

	slots, err = GenerateTimeSlots("10:00", "10:00", 15)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = GenerateTimeSlots("00:00", "24:00", 60)
	require.NoError(t, err)
	assert.Len(t, slots, 24)
	assert.Equal(t, TimeString("23:00"), slots[23])

	_, err = GenerateTimeSlots("09:00", "10:00", 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = GenerateTimeSlots("09:00", "10:00", -15)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = GenerateTimeSlots("nine", "10:00", 15)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeStringHelpers(t *testing.T) {
	ts, err := NewTimeStringFromString("7:5")
	require.NoError(t, err)
	assert.Equal(t, TimeString("07:05"), ts)

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:05"), next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:00"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))

	assert.True(t, TimeString("").IsZero())
	assert.Equal(t, TimeString("14:45"), NewTimeString(time.Date(2025, 1, 1, 14, 45, 12, 0, time.UTC)))
}

func TestTimeStringScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("17:00")))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("08:15").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:15", v)

	_, err = TimeString("8h").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
