package domain

import (
	"fmt"
	"strings"
)

// MaxIngredientSlots is the number of indexed ingredient/measure pairs in a TheMealDB record
const MaxIngredientSlots = 20

// Meal is a raw TheMealDB record. Field values are strings or null.
type Meal map[string]any

// Field returns the string value of key, or "" when absent, null or not a string
func (m Meal) Field(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// IngredientField returns strIngredientN
func (m Meal) IngredientField(slot int) string {
	return m.Field(fmt.Sprintf("strIngredient%d", slot))
}

// MeasureField returns strMeasureN
func (m Meal) MeasureField(slot int) string {
	return m.Field(fmt.Sprintf("strMeasure%d", slot))
}

// ID returns idMeal trimmed
func (m Meal) ID() string {
	return strings.TrimSpace(m.Field("idMeal"))
}

// MealsResponse is the envelope of both search.php and lookup.php.
// "meals": null decodes to a nil slice.
type MealsResponse struct {
	Meals []Meal `json:"meals"`
}
