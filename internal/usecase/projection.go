package usecase

import (
	"math"

	"proconnect/internal/domain"
)

// Canvas bounds in percent of the map container.
const (
	canvasMinX = 10.0
	canvasMaxX = 90.0
	canvasMinY = 15.0
	canvasMaxY = 85.0
)

// Marker is a pod pin on the map canvas; X and Y are percentages.
type Marker struct {
	PodID    string  `json:"pod_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Members  int     `json:"members"`
	IsActive bool    `json:"is_active"`
}

// Projection is an equirectangular mapping from the bounding box of a set of
// points onto the canvas, north up.
type Projection struct {
	minLat, maxLat float64
	minLng, maxLng float64
}

func NewProjection(points []domain.GeoPoint) Projection {
	if len(points) == 0 {
		return Projection{}
	}
	p := Projection{
		minLat: points[0].Lat, maxLat: points[0].Lat,
		minLng: points[0].Lng, maxLng: points[0].Lng,
	}
	for _, pt := range points[1:] {
		p.minLat = math.Min(p.minLat, pt.Lat)
		p.maxLat = math.Max(p.maxLat, pt.Lat)
		p.minLng = math.Min(p.minLng, pt.Lng)
		p.maxLng = math.Max(p.maxLng, pt.Lng)
	}
	return p
}

// Point returns the canvas position of g. A zero-width span on either axis
// maps to the centre of that axis; points outside the box are clamped.
func (p Projection) Point(g domain.GeoPoint) (x, y float64) {
	x = (canvasMinX + canvasMaxX) / 2
	y = (canvasMinY + canvasMaxY) / 2
	if span := p.maxLng - p.minLng; span > 0 {
		x = canvasMinX + (canvasMaxX-canvasMinX)*clamp01((g.Lng-p.minLng)/span)
	}
	if span := p.maxLat - p.minLat; span > 0 {
		y = canvasMinY + (canvasMaxY-canvasMinY)*clamp01((p.maxLat-g.Lat)/span)
	}
	return round2(x), round2(y)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
