package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLocality подставляется, если барио не указано
	DefaultLocality = "Sin especificar"
	// DefaultStatus начальный статус инцидента
	DefaultStatus = "Abierto"
)

// GeoPoint точка в WGS84 (SRID 4326)
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// TimeOfDay время происшествия без даты
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String возвращает время в формате HH:MM
func (t TimeOfDay) String() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("15:04")
}

// Incident зарегистрированное происшествие
type Incident struct {
	ID             uuid.UUID `json:"id"`
	ExternalID     string    `json:"external_id"`
	CategoryTypeID int64     `json:"category_type_id"`
	Category       string    `json:"category"`
	Subcategory    *string   `json:"subcategory,omitempty"`
	OccurrenceDate time.Time `json:"occurrence_date"`
	OccurrenceTime TimeOfDay `json:"occurrence_time"`
	Locality       string    `json:"locality"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Location       *GeoPoint `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CategoryType каноническая категория происшествия
type CategoryType struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory,omitempty"`
	IsCrime     bool    `json:"is_crime"`
}
