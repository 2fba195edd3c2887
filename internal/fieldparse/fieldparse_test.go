package fieldparse

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 17, 45, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDate(t *testing.T) {
	today := day(2025, 3, 10)
	cases := []struct {
		name string
		in   any
		want time.Time
	}{
		{"iso", "2024-01-15", day(2024, 1, 15)},
		{"iso with time", "2024-01-15 22:30:00", day(2024, 1, 15)},
		{"rfc3339", "2024-01-15T22:30:00Z", day(2024, 1, 15)},
		{"day first", "15/01/2024", day(2024, 1, 15)},
		{"slashes", "2024/01/15", day(2024, 1, 15)},
		{"trailing junk", "2024-01-15 aprox", day(2024, 1, 15)},
		{"time.Time", time.Date(2023, 7, 4, 9, 0, 0, 0, time.UTC), day(2023, 7, 4)},
		{"excel serial", float64(45306), day(2024, 1, 15)},
		{"bad", "bad-date", today},
		{"undefined", "undefined", today},
		{"empty", "", today},
		{"nil", nil, today},
		{"bool", true, today},
		{"negative", float64(-5), today},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Date(tc.in, now))
		})
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want models.TimeOfDay
	}{
		{"hh:mm", "22:30", models.TimeOfDay{Hour: 22, Minute: 30}},
		{"h:mm", "7:05", models.TimeOfDay{Hour: 7, Minute: 5}},
		{"seconds", "08:15:59", models.TimeOfDay{Hour: 8, Minute: 15}},
		{"range suffix", "14:00-15:00", models.TimeOfDay{Hour: 14}},
		{"range suffix with spaces", "14:20 - 15:00", models.TimeOfDay{Hour: 14, Minute: 20}},
		{"iso datetime", "2024-01-15T22:30:00", models.TimeOfDay{Hour: 22, Minute: 30}},
		{"pm", "10:30 pm", models.TimeOfDay{Hour: 22, Minute: 30}},
		{"excel fraction", 0.5, models.TimeOfDay{Hour: 12}},
		{"undefined", "undefined", models.TimeOfDay{}},
		{"empty", "", models.TimeOfDay{}},
		{"nil", nil, models.TimeOfDay{}},
		{"garbage", "noche", models.TimeOfDay{}},
		{"out of range", "25:61", models.TimeOfDay{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Time(tc.in))
		})
	}
}

func TestCoordinate(t *testing.T) {
	cases := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"float", -76.53, -76.53, true},
		{"string", "3.26", 3.26, true},
		{"comma decimal", "3,26", 3.26, true},
		{"json number", json.Number("-76.5"), -76.5, true},
		{"int", 4, 4, true},
		{"out of range still parses", "999", 999, true},
		{"undefined", "undefined", 0, false},
		{"empty", " ", 0, false},
		{"nil", nil, 0, false},
		{"text", "norte", 0, false},
		{"nan", math.NaN(), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Coordinate(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestValidatePoint(t *testing.T) {
	require.NoError(t, ValidatePoint(-76.53, 3.26))
	require.NoError(t, ValidatePoint(180, -90))

	err := ValidatePoint(-76.53, 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Contains(t, err.Error(), "latitude: 999")
	assert.Contains(t, err.Error(), "longitude: -76.53")

	var rangeErr *CoordinateRangeError
	require.ErrorAs(t, ValidatePoint(-180.01, 0), &rangeErr)
	assert.Equal(t, -180.01, rangeErr.Longitude)
}

func TestText(t *testing.T) {
	assert.Equal(t, "Centro", Text("  Centro ", models.DefaultLocality))
	assert.Equal(t, models.DefaultLocality, Text(nil, models.DefaultLocality))
	assert.Equal(t, models.DefaultLocality, Text("undefined", models.DefaultLocality))
	assert.Equal(t, "12345", Text(float64(12345), ""))
	assert.Equal(t, "7", Text(7, ""))
}
