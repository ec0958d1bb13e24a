// Package region сопоставляет свободный текст и координаты со шведскими ленами.
package region

import (
	"math"
	"sort"
	"strings"

	"github.com/shenikar/telecom_outage_system/internal/models"
)

const earthRadiusKm = 6371.0

type candidate struct {
	needle string
	idx    int
}

// Inferrer ищет регион по названию или синониму. Безопасен для конкурентного чтения.
type Inferrer struct {
	regions    []models.Region
	candidates []candidate
}

// NewInferrer строит индекс по шведским и английским названиям и синонимам.
// Более длинные названия проверяются первыми, при равной длине сохраняется порядок списка.
func NewInferrer(regions []models.Region) *Inferrer {
	in := &Inferrer{regions: append([]models.Region(nil), regions...)}
	seen := make(map[string]bool)
	for i, r := range in.regions {
		names := append([]string{r.Name.SV, r.Name.EN}, r.Aliases...)
		for _, n := range names {
			n = strings.ToLower(strings.TrimSpace(n))
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			in.candidates = append(in.candidates, candidate{needle: n, idx: i})
		}
	}
	sort.SliceStable(in.candidates, func(i, j int) bool {
		return len(in.candidates[i].needle) > len(in.candidates[j].needle)
	})
	return in
}

// Regions возвращает справочник, по которому построен индекс
func (in *Inferrer) Regions() []models.Region {
	return in.regions
}

// Infer объединяет тексты и возвращает первый регион, чье название встречается в них.
// nil, если совпадений нет.
func (in *Inferrer) Infer(texts ...string) *models.Region {
	joined := strings.ToLower(strings.Join(texts, " "))
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	for _, c := range in.candidates {
		if strings.Contains(joined, c.needle) {
			r := in.regions[c.idx]
			return &r
		}
	}
	return nil
}

// ByName ищет регион по точному названию, иначе падает обратно на Infer
func (in *Inferrer) ByName(name string) *models.Region {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return nil
	}
	for _, c := range in.candidates {
		if c.needle == n {
			r := in.regions[c.idx]
			return &r
		}
	}
	return in.Infer(name)
}

// Nearest возвращает регион с ближайшим центроидом в пределах maxKm
func (in *Inferrer) Nearest(lat, lon, maxKm float64) *models.Region {
	best := -1
	bestDist := math.MaxFloat64
	for i, r := range in.regions {
		d := Haversine(lat, lon, r.Latitude, r.Longitude)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > maxKm {
		return nil
	}
	r := in.regions[best]
	return &r
}

// BoundingBox возвращает прямоугольник, гарантированно содержащий круг радиусом km вокруг точки.
// Если круг касается полюса или пересекает 180-й меридиан, долгота не ограничивается.
func BoundingBox(lat, lon, km float64) models.BoundingBox {
	dLat := km / earthRadiusKm * 180 / math.Pi
	box := models.BoundingBox{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLon: -180,
		MaxLon: 180,
	}

	// градус долготы короче всего на ближней к полюсу границе
	edge := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	if edge >= 90 {
		return box
	}
	dLon := dLat / math.Cos(edge*math.Pi/180)
	if lon-dLon < -180 || lon+dLon > 180 {
		return box
	}
	box.MinLon, box.MaxLon = lon-dLon, lon+dLon
	return box
}

// Haversine - расстояние между двумя точками в километрах
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
