package geo

import (
	"fmt"
	"math"
)

// Точность координат: 5 знаков после запятой (~1.1 м).
const precisionFactor = 100000

// Радиус Земли в километрах.
const earthRadiusKm = 6371

// Round5 округляет координату до 5 знаков после запятой.
// Операция идемпотентна: Round5(Round5(x)) == Round5(x).
func Round5(v float64) float64 {
	return math.Round(v*precisionFactor) / precisionFactor
}

// RoundPoint округляет пару координат до 5 знаков после запятой.
// Применяется ко всем координатам, приходящим от пользователя,
// до сохранения, отображения или передачи наружу.
func RoundPoint(lat, lon float64) (float64, float64) {
	return Round5(lat), Round5(lon)
}

// FormatPoint форматирует пару координат как человекочитаемую строку.
// Используется как запасной адрес, когда обратное геокодирование недоступно.
func FormatPoint(lat, lon float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lon)
}

// DistanceKm возвращает расстояние между двумя точками в километрах (гаверсинус).
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
