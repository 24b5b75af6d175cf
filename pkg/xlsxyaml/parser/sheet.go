// Package parser reads worksheets and yaml documents into the shared models.
package parser

import (
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads the text of a worksheet. Row 1 becomes the header row and
// rows 2..N the data rows; the width and height come from the bounding box of
// populated cells. A sheet without any populated cell is malformed.
func ReadSheet(f *excelize.File, sheetName string) (*models.TableSheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	_, maxRow, _, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return nil, models.NewMalformedError(sheetName, "sheet has no populated cells")
	}

	cols := maxCol + 1
	sheet := &models.TableSheet{
		Name:    sheetName,
		Headers: padRow(rows[0], cols),
		Columns: cols,
	}
	for rowIdx := 1; rowIdx <= maxRow; rowIdx++ {
		sheet.Rows = append(sheet.Rows, models.Row(padRow(rows[rowIdx], cols)))
	}

	return sheet, nil
}

// padRow copies row into a slice of exactly width cells.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
