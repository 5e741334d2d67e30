package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.Valid(), "категория %s должна быть валидной", category)
	}

	assert.False(t, Category("earthquake").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Fire").Valid()) // Регистр имеет значение
}

func TestCategory_MarkerColor(t *testing.T) {
	assert.Equal(t, "#DC2626", CategoryShooting.MarkerColor())
	assert.Equal(t, "#EF4444", CategoryFire.MarkerColor())
	assert.Equal(t, "#6B7280", CategoryOther.MarkerColor())

	// Неизвестная категория получает цвет "other"
	assert.Equal(t, "#6B7280", Category("volcano").MarkerColor())
}

func TestCategory_ColorsAreDistinct(t *testing.T) {
	seen := make(map[string]Category)
	for _, category := range Categories {
		color := category.MarkerColor()
		if prev, ok := seen[color]; ok {
			t.Fatalf("категории %s и %s используют один цвет %s", prev, category, color)
		}
		seen[color] = category
	}
}
