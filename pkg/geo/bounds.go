package geo

// Bounds - ограничивающий прямоугольник для набора точек на карте.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// BoundsFor вычисляет ограничивающий прямоугольник по точкам [lat, lon]
// с отступом paddingDeg по каждой стороне. Возвращает false при пустом наборе.
func BoundsFor(points [][2]float64, paddingDeg float64) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinLat: points[0][0],
		MaxLat: points[0][0],
		MinLon: points[0][1],
		MaxLon: points[0][1],
	}
	for _, p := range points[1:] {
		if p[0] < b.MinLat {
			b.MinLat = p[0]
		}
		if p[0] > b.MaxLat {
			b.MaxLat = p[0]
		}
		if p[1] < b.MinLon {
			b.MinLon = p[1]
		}
		if p[1] > b.MaxLon {
			b.MaxLon = p[1]
		}
	}

	b.MinLat -= paddingDeg
	b.MaxLat += paddingDeg
	b.MinLon -= paddingDeg
	b.MaxLon += paddingDeg
	return b, true
}
