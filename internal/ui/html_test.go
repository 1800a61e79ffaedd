package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/recipebox/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, page Page) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, page))
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc, html
}

func TestRenderHTML_ResultCards(t *testing.T) {
	page := Page{
		Query:  "soup",
		Active: PanelResults,
		Results: PanelView{Cards: []Card{
			{ID: "1", Name: "Lentil Soup", ThumbnailURL: "https://img.example/1.jpg"},
			{ID: "2", Name: "Tomato Soup", ThumbnailURL: "https://img.example/2.jpg"},
		}},
	}

	doc, _ := renderDoc(t, page)

	cards := doc.Find("#results .recipe-card")
	assert.Equal(t, 2, cards.Length())
	assert.Equal(t, "Lentil Soup", strings.TrimSpace(cards.First().Find("h3").Text()))
	src, _ := cards.First().Find("img").Attr("src")
	assert.Equal(t, "https://img.example/1.jpg", src)
	assert.Equal(t, "View Details", strings.TrimSpace(cards.First().Find(".details-btn").Text()))
	assert.Equal(t, "Favorite", strings.TrimSpace(cards.First().Find(".favorite-btn").Text()))

	value, _ := doc.Find("#searchInput").Attr("value")
	assert.Equal(t, "soup", value)

	assert.False(t, doc.Find(".results-section").HasClass("hidden"))
	assert.True(t, doc.Find(".favorites-section").HasClass("hidden"))
	assert.Equal(t, 0, doc.Find("#recipeModal").Length())
}

func TestRenderHTML_Placeholders(t *testing.T) {
	doc, _ := renderDoc(t, Page{
		Active:    PanelFavorites,
		Results:   PanelView{Placeholder: PromptMessage},
		Favorites: PanelView{Placeholder: NoFavoritesMessage},
	})

	assert.Equal(t, PromptMessage, doc.Find("#results .placeholder-text").Text())
	assert.Equal(t, NoFavoritesMessage, doc.Find("#favorites .placeholder-text").Text())
	assert.True(t, doc.Find(".results-section").HasClass("hidden"))
	assert.False(t, doc.Find(".favorites-section").HasClass("hidden"))
	assert.Equal(t, "Back to Results", strings.TrimSpace(doc.Find("#viewFavoritesBtn").Text()))
}

func TestRenderHTML_FavoriteCardsOfferRemove(t *testing.T) {
	doc, _ := renderDoc(t, Page{
		Active:    PanelFavorites,
		Favorites: PanelView{Cards: []Card{{ID: "52977", Name: "Corba", ThumbnailURL: "c.jpg", Favorite: true}}},
	})

	card := doc.Find("#favorites .recipe-card")
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Remove", strings.TrimSpace(card.Find(".favorite-btn").Text()))

	id, _ := card.Find(`form[action="/favorites/toggle"] input[name="id"]`).Attr("value")
	assert.Equal(t, "52977", id)
	thumb, _ := card.Find(`input[name="thumb"]`).Attr("value")
	assert.Equal(t, "c.jpg", thumb)
}

func TestRenderHTML_Modal(t *testing.T) {
	page := Page{
		Active: PanelResults,
		Modal: ModalView{Open: true, Recipe: domain.RecipeDetail{
			ID:           "52977",
			Name:         "Corba",
			ThumbnailURL: "https://img.example/corba.jpg",
			Ingredients: []domain.Ingredient{
				{Name: "Salt", Measure: "1 tsp"},
				{Name: "Pepper", Measure: ""},
			},
			Instructions: "Simmer gently.",
			VideoURL:     "https://www.youtube.com/watch?v=VVnZd8A84z4",
		}},
	}

	doc, _ := renderDoc(t, page)

	modal := doc.Find("#recipeModal")
	require.Equal(t, 1, modal.Length())
	assert.Equal(t, "Corba", modal.Find("h2").Text())

	items := modal.Find("ul.ingredients li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Salt - 1 tsp", items.Eq(0).Text())
	assert.Equal(t, "Pepper", items.Eq(1).Text())

	assert.Equal(t, "Simmer gently.", modal.Find(".instructions").Text())
	href, _ := modal.Find("a.video-link").Attr("href")
	assert.Equal(t, "https://www.youtube.com/watch?v=VVnZd8A84z4", href)

	target, _ := modal.Find(`form[action="/modal/dismiss"] button`).Attr("value")
	assert.Equal(t, BackdropTarget, target)

	page.Modal.Recipe.VideoURL = ""
	doc, _ = renderDoc(t, page)
	assert.Equal(t, 0, doc.Find("a.video-link").Length())
}

func TestRenderHTML_EscapesRecipeContent(t *testing.T) {
	hostile := `<script>alert("x")</script>`
	page := Page{
		Query:   hostile,
		Active:  PanelResults,
		Alert:   hostile,
		Results: PanelView{Cards: []Card{{ID: `1" onclick="x`, Name: hostile, ThumbnailURL: "javascript:alert(1)"}}},
		Modal: ModalView{Open: true, Recipe: domain.RecipeDetail{
			ID:           "1",
			Name:         hostile,
			Instructions: `<img src=x onerror=alert(1)>`,
			Ingredients:  []domain.Ingredient{{Name: hostile}},
		}},
	}

	doc, html := renderDoc(t, page)

	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, 0, doc.Find(".instructions img").Length())
	assert.NotContains(t, html, hostile)
	assert.Equal(t, hostile, doc.Find("#results .recipe-card h3").Text())
	assert.Equal(t, `<img src=x onerror=alert(1)>`, doc.Find(".instructions").Text())

	src, _ := doc.Find("#results .recipe-card img").Attr("src")
	assert.NotContains(t, src, "javascript:")

	_, hasOnclick := doc.Find("#results .recipe-card").Attr("onclick")
	assert.False(t, hasOnclick)
}

func TestRenderHTML_Alert(t *testing.T) {
	doc, _ := renderDoc(t, Page{Active: PanelResults, Alert: DetailsErrorMessage})
	assert.Equal(t, DetailsErrorMessage, doc.Find(".alert").Text())

	doc, _ = renderDoc(t, Page{Active: PanelResults})
	assert.Equal(t, 0, doc.Find(".alert").Length())
}
