package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория инцидента. Закрытый набор из 8 значений.
type Category string

const (
	CategoryShooting   Category = "shooting"
	CategoryMedical    Category = "medical"
	CategoryFire       Category = "fire"
	CategoryAccident   Category = "accident"
	CategoryAssault    Category = "assault"
	CategorySuspicious Category = "suspicious"
	CategoryTheft      Category = "theft"
	CategoryOther      Category = "other"
)

// Categories - все допустимые категории в фиксированном порядке.
var Categories = []Category{
	CategoryShooting,
	CategoryMedical,
	CategoryFire,
	CategoryAccident,
	CategoryAssault,
	CategorySuspicious,
	CategoryTheft,
	CategoryOther,
}

// categoryColors - цвет маркера на карте для каждой категории.
var categoryColors = map[Category]string{
	CategoryShooting:   "#DC2626",
	CategoryMedical:    "#F59E0B",
	CategoryFire:       "#EF4444",
	CategoryAccident:   "#FBBF24",
	CategoryAssault:    "#7C3AED",
	CategorySuspicious: "#3B82F6",
	CategoryTheft:      "#8B5CF6",
	CategoryOther:      "#6B7280",
}

// Valid сообщает, входит ли категория в закрытый набор.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// MarkerColor возвращает цвет маркера для категории.
// Неизвестная категория получает цвет категории "other".
func (c Category) MarkerColor() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}

// Incident - анонимное сообщение об инциденте. Записи только добавляются,
// после создания не изменяются.
type Incident struct {
	ID            uuid.UUID `json:"id"`
	Category      Category  `json:"category"`
	Description   *string   `json:"description"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	LocationLabel string    `json:"location_label"`
	CreatedAt     time.Time `json:"created_at"`
}

// CategoryCount - количество инцидентов в категории за окно видимости.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}
