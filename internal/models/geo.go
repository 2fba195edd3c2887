package models

import "time"

// Tier уровень доступа вызывающего
type Tier string

const (
	TierPublic        Tier = "public"
	TierInstitutional Tier = "institutional"
)

// GeoFilter параметры выборки для карты
type GeoFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string
}

// PointGeometry геометрия GeoJSON Point, координаты [lon, lat]
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureProperties свойства точки на карте
type FeatureProperties struct {
	ID          string  `json:"id"`
	Date        string  `json:"fecha"`
	Category    string  `json:"categoria"`
	Subcategory *string `json:"subcategoria"`
	Locality    string  `json:"barrio"`
	Description string  `json:"descripcion"`
}

// Feature GeoJSON Feature
type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection GeoJSON FeatureCollection с отметкой режима
type FeatureCollection struct {
	Type     string    `json:"type"`
	Mode     Tier      `json:"mode"`
	Features []Feature `json:"features"`
}
