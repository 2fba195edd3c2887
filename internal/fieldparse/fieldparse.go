// Package fieldparse разбирает слабо типизированные значения из таблиц и JSON.
// Ни одна функция пакета не паникует и не возвращает ошибку разбора наружу:
// при неудаче используется документированное значение по умолчанию.
package fieldparse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"3 PM",
	"3PM",
}

// Date возвращает календарную дату без времени (UTC).
// Пустое значение, "undefined" или неразборчивая строка дают текущую дату now.
func Date(v any, now time.Time) time.Time {
	today := truncateDate(now)

	switch val := v.(type) {
	case nil:
		return today
	case time.Time:
		if val.IsZero() {
			return today
		}
		return truncateDate(val)
	case string:
		if d, ok := parseDateString(val); ok {
			return d
		}
		return today
	}

	// Числа трактуем как серийную дату Excel
	if serial, ok := number(v); ok && serial >= 1 && serial < 2958466 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return truncateDate(t)
		}
	}
	return today
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDate(t), true
		}
	}
	// "2024-01-15 ночь" -> "2024-01-15"
	if head, _, found := strings.Cut(s, " "); found {
		return parseDateString(head)
	}
	if head, _, found := strings.Cut(s, "T"); found && head != s {
		return parseDateString(head)
	}
	return time.Time{}, false
}

// Time возвращает время суток; по умолчанию полночь.
// Суффикс диапазона ("14:00-15:00") отбрасывается.
func Time(v any) models.TimeOfDay {
	midnight := models.TimeOfDay{}

	switch val := v.(type) {
	case nil:
		return midnight
	case time.Time:
		return models.TimeOfDay{Hour: val.Hour(), Minute: val.Minute()}
	case string:
		if t, ok := parseTimeString(val); ok {
			return t
		}
		return midnight
	}

	// Excel хранит время как долю суток
	if f, ok := number(v); ok && f >= 0 && f < 1 {
		minutes := int(math.Round(f * 24 * 60))
		if minutes >= 24*60 {
			minutes = 24*60 - 1
		}
		return models.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
	}
	return midnight
}

func parseTimeString(s string) (models.TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return models.TimeOfDay{}, false
	}

	// Полная дата-время (ISO) разбирается до обрезки по "-"
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, true
		}
	}

	head, _, _ := strings.Cut(s, "-")
	head = strings.TrimSpace(head)

	upper := strings.ToUpper(head)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return models.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, true
		}
	}

	if !strings.Contains(head, ":") {
		return models.TimeOfDay{}, false
	}
	parts := strings.Split(head, ":")
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.TimeOfDay{}, false
	}
	m := 0
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		m, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return models.TimeOfDay{}, false
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return models.TimeOfDay{}, false
	}
	return models.TimeOfDay{Hour: h, Minute: m}, true
}

// Coordinate разбирает долготу или широту. Допускает десятичную запятую.
// Возвращает false, если значение отсутствует или не является числом.
func Coordinate(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if isBlank(s) {
			return 0, false
		}
		v = strings.ReplaceAll(s, ",", ".")
	}
	f, ok := number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoordinateRangeError координаты вне допустимого диапазона
type CoordinateRangeError struct {
	Latitude  float64
	Longitude float64
}

func (e *CoordinateRangeError) Error() string {
	return fmt.Sprintf("coordinates out of range (latitude: %s, longitude: %s)",
		strconv.FormatFloat(e.Latitude, 'f', -1, 64),
		strconv.FormatFloat(e.Longitude, 'f', -1, 64))
}

func (e *CoordinateRangeError) Unwrap() error { return models.ErrValidation }

// ValidatePoint проверяет долготу в [-180,180] и широту в [-90,90]
func ValidatePoint(lon, lat float64) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return &CoordinateRangeError{Latitude: lat, Longitude: lon}
	}
	return nil
}

// Text возвращает строковое представление значения или def, если значение пустое
func Text(v any, def string) string {
	var s string
	switch val := v.(type) {
	case nil:
		return def
	case string:
		s = val
	case float64:
		if math.IsNaN(val) {
			return def
		}
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		s = fmt.Sprint(val)
	}
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return def
	}
	return s
}

func number(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	return 0, false
}

func isBlank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "undefined", "null", "none", "nan":
		return true
	}
	return false
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
