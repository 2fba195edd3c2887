package privacy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIncidents() []*models.Incident {
	sub := "ARMA BLANCA"
	return []*models.Incident{
		{
			ID:             uuid.New(),
			Category:       "HURTO A PERSONAS",
			Subcategory:    &sub,
			OccurrenceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Locality:       "Centro",
			Description:    "Victim identified by name",
			Location:       &models.GeoPoint{Longitude: -76.53, Latitude: 3.26},
		},
		{
			ID:       uuid.New(),
			Category: "HOMICIDIO",
			Locality: "El Jardin",
		},
	}
}

func TestCollection_Institutional(t *testing.T) {
	f := NewFilter(DefaultJitterDegrees)
	incidents := sampleIncidents()

	fc := f.Collection(incidents, models.TierInstitutional)

	assert.Equal(t, models.TierInstitutional, fc.Mode)
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1) // без координат не попадает на карту
	feat := fc.Features[0]
	assert.Equal(t, incidents[0].ID.String(), feat.Properties.ID)
	assert.Equal(t, "Victim identified by name", feat.Properties.Description)
	assert.Equal(t, [2]float64{-76.53, 3.26}, feat.Geometry.Coordinates)
	assert.Equal(t, "2024-01-15", feat.Properties.Date)
}

func TestCollection_PublicRedactsAndJitters(t *testing.T) {
	f := NewFilter(DefaultJitterDegrees)
	incidents := sampleIncidents()

	fc := f.Collection(incidents, models.TierPublic)

	assert.Equal(t, models.TierPublic, fc.Mode)
	require.Len(t, fc.Features, 1)
	feat := fc.Features[0]
	assert.Equal(t, RedactedID, feat.Properties.ID)
	assert.Equal(t, ReservedDescription, feat.Properties.Description)
	assert.Equal(t, "HURTO A PERSONAS", feat.Properties.Category)
	assert.Equal(t, "ARMA BLANCA", *feat.Properties.Subcategory)
	assert.Equal(t, "Centro", feat.Properties.Locality)
	assert.InDelta(t, -76.53, feat.Geometry.Coordinates[0], DefaultJitterDegrees)
	assert.InDelta(t, 3.26, feat.Geometry.Coordinates[1], DefaultJitterDegrees)
}

func TestCollection_PublicOffsetIsBounded(t *testing.T) {
	f := &Filter{jitter: 0.001, noise: func() float64 { return 0.999999 }}
	fc := f.Collection(sampleIncidents(), models.TierPublic)
	assert.InDelta(t, -76.53+0.001, fc.Features[0].Geometry.Coordinates[0], 1e-8)

	f.noise = func() float64 { return 0 }
	fc = f.Collection(sampleIncidents(), models.TierPublic)
	assert.InDelta(t, 3.26-0.001, fc.Features[0].Geometry.Coordinates[1], 1e-12)
}

func TestCollection_RepeatedPublicQueriesDiffer(t *testing.T) {
	f := NewFilter(DefaultJitterDegrees)
	incidents := sampleIncidents()

	first := f.Collection(incidents, models.TierPublic).Features[0].Geometry.Coordinates
	second := f.Collection(incidents, models.TierPublic).Features[0].Geometry.Coordinates

	assert.NotEqual(t, first, second)
}

func TestNewFilter_DefaultsJitter(t *testing.T) {
	assert.Equal(t, DefaultJitterDegrees, NewFilter(0).Jitter())
	assert.Equal(t, 0.002, NewFilter(0.002).Jitter())
}
