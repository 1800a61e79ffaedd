package export

import (
	"fmt"
	"io"

	"github.com/recipebox/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

// FavoritesSheet is the worksheet holding the exported favorites
const FavoritesSheet = "Favorites"

// ContentTypeXLSX is served with the workbook download
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var favoritesHeader = []interface{}{"id", "name", "thumbnail"}

// WriteFavoritesXLSX writes entries as a workbook, one row per favorite in stored order
func WriteFavoritesXLSX(w io.Writer, entries []domain.FavoriteEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FavoritesSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(FavoritesSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", favoritesHeader); err != nil {
		return err
	}
	for i, entry := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{entry.ID, entry.Name, entry.ThumbnailURL}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

// SaveFavoritesXLSX writes the workbook to path
func SaveFavoritesXLSX(path string, entries []domain.FavoriteEntry) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := WriteFavoritesXLSX(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
