package models

import "time"

// NationalCrimeStat строка национальной статистики (данные Минобороны)
type NationalCrimeStat struct {
	ID                     int64     `json:"id"`
	Department             string    `json:"department"`
	Municipality           string    `json:"municipality"`
	NormalizedMunicipality string    `json:"normalized_municipality"`
	OccurrenceDate         time.Time `json:"occurrence_date"`
	Year                   int       `json:"year"`
	Month                  int       `json:"month"`
	CrimeType              string    `json:"crime_type"`
	Modality               string    `json:"modality,omitempty"`
	Quantity               int       `json:"quantity"`
	SourceFile             string    `json:"source_file"`
	DedupKey               string    `json:"dedup_key"`
	IngestedAt             time.Time `json:"ingested_at"`
}

// NationalStatSummary местные значения против среднего по муниципалитетам страны
type NationalStatSummary struct {
	CrimeType   string  `json:"crime_type"`
	Local       int     `json:"local"`
	NationalAvg float64 `json:"national_avg"`
}

// NationalStatsReport сравнение муниципалитета со страной за год
type NationalStatsReport struct {
	Municipality string                `json:"municipality"`
	Year         int                   `json:"year"`
	Data         []NationalStatSummary `json:"data"`
}
