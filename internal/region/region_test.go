package region

import (
	"math"
	"testing"

	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	regions := Seed()
	require.Len(t, regions, 21)
	assert.Equal(t, "Stockholms län", regions[0].Name.SV)
	assert.Equal(t, "Stockholm County", regions[0].Name.EN)
	assert.InDelta(t, 59.3293, regions[0].Latitude, 1e-9)
	assert.Equal(t, "Södermanlands län", regions[20].Name.SV)
}

func TestInfer_CountyAndAlias(t *testing.T) {
	in := NewInferrer(Seed())

	r := in.Infer("Störning i mobilnätet", "Skåne län")
	require.NotNil(t, r)
	assert.Equal(t, "Skåne län", r.Name.SV)

	r = in.Infer("Planerat arbete i Göteborg")
	require.NotNil(t, r)
	assert.Equal(t, "Västra Götalands län", r.Name.SV)

	r = in.Infer("outage in stockholm county")
	require.NotNil(t, r)
	assert.Equal(t, "Stockholms län", r.Name.SV)

	assert.Nil(t, in.Infer("Ingen plats nämnd"))
	assert.Nil(t, in.Infer(""))
}

func TestInfer_LongestNameWins(t *testing.T) {
	in := NewInferrer([]models.Region{
		{ID: 1, Name: models.BilingualText{SV: "Borg", EN: "Borg"}},
		{ID: 2, Name: models.BilingualText{SV: "Borgholm", EN: "Borgholm"}},
	})

	r := in.Infer("Avbrott i Borgholm")
	require.NotNil(t, r)
	assert.Equal(t, int64(2), r.ID)

	r = in.Infer("Avbrott i Borg")
	require.NotNil(t, r)
	assert.Equal(t, int64(1), r.ID)
}

func TestByName(t *testing.T) {
	in := NewInferrer(Seed())

	r := in.ByName("uppsala län")
	require.NotNil(t, r)
	assert.Equal(t, "Uppsala län", r.Name.SV)

	r = in.ByName("Malmö")
	require.NotNil(t, r)
	assert.Equal(t, "Skåne län", r.Name.SV)

	assert.Nil(t, in.ByName(""))
}

func TestNearest(t *testing.T) {
	in := NewInferrer(Seed())

	// Центр Стокгольма
	r := in.Nearest(59.33, 18.07, 150)
	require.NotNil(t, r)
	assert.Equal(t, "Stockholms län", r.Name.SV)

	// Берлин слишком далеко
	assert.Nil(t, in.Nearest(52.52, 13.40, 150))
}

func TestBoundingBox(t *testing.T) {
	// Подготовка
	lat, lon, km := 59.3293, 18.0686, 100.0

	// Действие
	box := BoundingBox(lat, lon, km)

	// Проверки: точки на окружности по всем направлениям попадают в прямоугольник
	assert.InDelta(t, km, Haversine(lat, lon, box.MaxLat, lon), 0.5)
	assert.InDelta(t, km, Haversine(lat, lon, box.MinLat, lon), 0.5)
	assert.Greater(t, Haversine(lat, lon, lat, box.MaxLon), km)
	assert.Greater(t, Haversine(lat, lon, lat, box.MinLon), km)
	for bearing := 0.0; bearing < 360; bearing += 15 {
		pLat, pLon := destination(lat, lon, km*0.999, bearing)
		assert.GreaterOrEqual(t, pLat, box.MinLat, "bearing %v", bearing)
		assert.LessOrEqual(t, pLat, box.MaxLat, "bearing %v", bearing)
		assert.GreaterOrEqual(t, pLon, box.MinLon, "bearing %v", bearing)
		assert.LessOrEqual(t, pLon, box.MaxLon, "bearing %v", bearing)
	}
}

func TestBoundingBox_PoleAndAntimeridian(t *testing.T) {
	polar := BoundingBox(89.5, 18.0, 100)
	assert.Equal(t, 90.0, polar.MaxLat)
	assert.Equal(t, -180.0, polar.MinLon)
	assert.Equal(t, 180.0, polar.MaxLon)

	wrapped := BoundingBox(65.0, 179.9, 50)
	assert.Equal(t, -180.0, wrapped.MinLon)
	assert.Equal(t, 180.0, wrapped.MaxLon)
	assert.Less(t, wrapped.MinLat, 65.0)
}

// destination - точка на расстоянии km от исходной по азимуту bearing (градусы)
func destination(lat, lon, km, bearing float64) (float64, float64) {
	rad := math.Pi / 180
	d := km / earthRadiusKm
	b := bearing * rad
	lat1, lon1 := lat*rad, lon*rad
	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(b))
	lon2 := lon1 + math.Atan2(math.Sin(b)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))
	return lat2 / rad, lon2 / rad
}

func TestHaversine(t *testing.T) {
	assert.InDelta(t, 0, Haversine(59.0, 18.0, 59.0, 18.0), 1e-9)
	// Стокгольм - Гётеборг, около 400 км
	assert.InDelta(t, 398, Haversine(59.3293, 18.0686, 57.7089, 11.9746), 5)
}
