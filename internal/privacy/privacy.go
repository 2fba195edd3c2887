// Package privacy преобразует инциденты в точки карты в зависимости от уровня доступа.
package privacy

import (
	"math/rand/v2"

	"github.com/shenikar/crime_observatory/internal/models"
)

const (
	// DefaultJitterDegrees около 50 м на экваторе
	DefaultJitterDegrees = 0.0005

	RedactedID          = "REDACTED"
	ReservedDescription = "RESERVED"
)

// Filter строит GeoJSON для публичного или институционального режима.
// Шум берется из глобального генератора math/rand/v2 при каждом вызове и ничем не кэшируется.
type Filter struct {
	jitter float64
	noise  func() float64
}

// NewFilter создает фильтр с заданной амплитудой шума в градусах
func NewFilter(jitterDegrees float64) *Filter {
	if jitterDegrees <= 0 {
		jitterDegrees = DefaultJitterDegrees
	}
	return &Filter{jitter: jitterDegrees, noise: rand.Float64}
}

// Jitter максимальное смещение по каждой оси
func (f *Filter) Jitter() float64 {
	return f.jitter
}

// Collection преобразует инциденты с координатами в FeatureCollection.
// Инциденты без точки пропускаются.
func (f *Filter) Collection(incidents []*models.Incident, tier models.Tier) *models.FeatureCollection {
	features := make([]models.Feature, 0, len(incidents))
	for _, inc := range incidents {
		if inc == nil || inc.Location == nil {
			continue
		}
		features = append(features, f.feature(inc, tier))
	}
	return &models.FeatureCollection{
		Type:     "FeatureCollection",
		Mode:     tier,
		Features: features,
	}
}

func (f *Filter) feature(inc *models.Incident, tier models.Tier) models.Feature {
	lon, lat := inc.Location.Longitude, inc.Location.Latitude
	props := models.FeatureProperties{
		ID:          inc.ID.String(),
		Date:        inc.OccurrenceDate.Format("2006-01-02"),
		Category:    inc.Category,
		Subcategory: inc.Subcategory,
		Locality:    inc.Locality,
		Description: inc.Description,
	}

	if tier != models.TierInstitutional {
		lon += f.offset()
		lat += f.offset()
		props.ID = RedactedID
		props.Description = ReservedDescription
	}

	return models.Feature{
		Type: "Feature",
		Geometry: models.PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{lon, lat},
		},
		Properties: props,
	}
}

// offset равномерно в [-jitter, +jitter]
func (f *Filter) offset() float64 {
	return (f.noise()*2 - 1) * f.jitter
}
