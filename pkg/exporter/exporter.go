// Package exporter writes collected records to a styled xlsx workbook:
// one sheet, a bold header row, one row per record, column widths sized
// to content. Row order is whatever order the records arrive in.
package exporter

import (
	"fmt"
	"strconv"

	"github.com/Ziink4/Jerk/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Specs"

// Write saves records to path. The header row is fixed; missing fields
// leave their cells blank.
func Write(path string, records []models.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	widths := make([]float64, len(models.ColumnNames))
	for col, name := range models.ColumnNames {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		widths[col] = cellWidth(name)
	}

	for i, record := range records {
		for col, value := range record.Row() {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
			if w := cellWidth(value); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to compute column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := styleHeader(f); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func styleHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(models.ColumnNames), 1)
	if err != nil {
		return fmt.Errorf("failed to compute header range: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

// cellWidth estimates a column width from a cell value, clamped so one
// long model name does not blow up the sheet.
func cellWidth(value interface{}) float64 {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case int:
		text = strconv.Itoa(v)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		text = fmt.Sprint(v)
	}

	width := float64(len(text)) + 2
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}
	return width
}
