package mealdb

import (
	"fmt"
	"strings"

	"github.com/recipebox/backend/internal/domain"
)

// TheMealDB field names
const (
	FieldID           = "idMeal"
	FieldName         = "strMeal"
	FieldThumbnail    = "strMealThumb"
	FieldInstructions = "strInstructions"
	FieldVideo        = "strYoutube"
)

// MapToSummary converts a raw meal to a search card.
// A record without id or name is a parse failure.
func MapToSummary(meal domain.Meal) (domain.RecipeSummary, error) {
	id := meal.ID()
	name := strings.TrimSpace(meal.Field(FieldName))
	if id == "" || name == "" {
		return domain.RecipeSummary{}, fmt.Errorf("%w: record missing %s or %s", domain.ErrParseFailure, FieldID, FieldName)
	}

	return domain.RecipeSummary{
		ID:           id,
		Name:         name,
		ThumbnailURL: strings.TrimSpace(meal.Field(FieldThumbnail)),
	}, nil
}

// MapToSummaries converts every meal of a search response
func MapToSummaries(meals []domain.Meal) ([]domain.RecipeSummary, error) {
	summaries := make([]domain.RecipeSummary, 0, len(meals))
	for _, meal := range meals {
		summary, err := MapToSummary(meal)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// MapToDetail converts a raw lookup record to our domain RecipeDetail model
func MapToDetail(meal domain.Meal) (*domain.RecipeDetail, error) {
	summary, err := MapToSummary(meal)
	if err != nil {
		return nil, err
	}

	return &domain.RecipeDetail{
		ID:           summary.ID,
		Name:         summary.Name,
		ThumbnailURL: summary.ThumbnailURL,
		Ingredients:  ExtractIngredients(meal),
		Instructions: meal.Field(FieldInstructions),
		VideoURL:     strings.TrimSpace(meal.Field(FieldVideo)),
	}, nil
}

// ExtractIngredients flattens slots 1..20 in order.
// A slot is kept only when its ingredient name is non-blank; the measure may be empty.
func ExtractIngredients(meal domain.Meal) []domain.Ingredient {
	ingredients := make([]domain.Ingredient, 0, domain.MaxIngredientSlots)

	for slot := 1; slot <= domain.MaxIngredientSlots; slot++ {
		name := strings.TrimSpace(meal.IngredientField(slot))
		if name == "" {
			continue
		}
		ingredients = append(ingredients, domain.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(meal.MeasureField(slot)),
		})
	}

	return ingredients
}
