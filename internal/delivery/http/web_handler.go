package http

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/backend/internal/domain"
	"github.com/recipebox/backend/internal/infrastructure/export"
	"github.com/recipebox/backend/internal/ui"
)

// Index renders the current page
func (h *Handler) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := ui.RenderHTML(&buf, h.session.Snapshot()); err != nil {
		log.Printf("[Web] Render failed: %v", err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Search handles the search form
func (h *Handler) Search(c *gin.Context) {
	h.session.Search(c.Request.Context(), c.PostForm("q"))
	backToIndex(c)
}

// ViewDetails opens the recipe modal
func (h *Handler) ViewDetails(c *gin.Context) {
	h.session.ViewDetails(c.Request.Context(), c.PostForm("id"))
	backToIndex(c)
}

// CloseModal handles the modal close button
func (h *Handler) CloseModal(c *gin.Context) {
	h.session.CloseModal()
	backToIndex(c)
}

// DismissModal handles clicks on the modal overlay
func (h *Handler) DismissModal(c *gin.Context) {
	h.session.DismissModal(c.PostForm("target"))
	backToIndex(c)
}

// ToggleFavorite handles the Favorite and Remove buttons
func (h *Handler) ToggleFavorite(c *gin.Context) {
	h.session.ToggleFavorite(c.Request.Context(), domain.FavoriteEntry{
		ID:           c.PostForm("id"),
		Name:         c.PostForm("name"),
		ThumbnailURL: c.PostForm("thumb"),
	})
	backToIndex(c)
}

// ToggleView switches between results and favorites
func (h *Handler) ToggleView(c *gin.Context) {
	h.session.ToggleView(c.Request.Context())
	backToIndex(c)
}

// ExportFavorites downloads the favorites as a spreadsheet
func (h *Handler) ExportFavorites(c *gin.Context) {
	entries, err := h.favorites.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteFavoritesXLSX(&buf, entries); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="favorites.xlsx"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}

// backToIndex answers a form post with a redirect to the page, so reloads do not resubmit
func backToIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
