package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/recipebox/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteFavoritesXLSX(t *testing.T) {
	entries := []domain.FavoriteEntry{
		{ID: "52977", Name: "Corba", ThumbnailURL: "https://img.example/corba.jpg"},
		{ID: "52978", Name: "Kumpir", ThumbnailURL: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFavoritesXLSX(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{FavoritesSheet}, f.GetSheetList())

	rows, err := f.GetRows(FavoritesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "thumbnail"}, rows[0])
	assert.Equal(t, []string{"52977", "Corba", "https://img.example/corba.jpg"}, rows[1])
	assert.Equal(t, "Kumpir", rows[2][1])
}

func TestWriteFavoritesXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFavoritesXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(FavoritesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSaveFavoritesXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "favorites.xlsx")

	require.NoError(t, SaveFavoritesXLSX(path, []domain.FavoriteEntry{{ID: "1", Name: "Soup"}}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue(FavoritesSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Soup", cell)
}
