package parser

import (
	"strings"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
)

// MinColumns is the narrowest sheet either read mode accepts.
const MinColumns = 2

// isBlank reports whether s is empty or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Headers returns the non-blank header cells in column order.
func Headers(sheet *models.TableSheet) []models.Header {
	var headers []models.Header
	for col, name := range sheet.Headers {
		if isBlank(name) {
			continue
		}
		headers = append(headers, models.Header{Column: col, Name: name})
	}
	return headers
}

// FixedPairs reads columns 1 and 2 as (key, text) pairs. Rows with either
// cell blank are skipped.
func FixedPairs(sheet *models.TableSheet) ([]models.Pair, error) {
	if err := checkWidth(sheet); err != nil {
		return nil, err
	}

	var pairs []models.Pair
	for _, row := range sheet.Rows {
		key, text := row.Cell(0), row.Cell(1)
		if isBlank(key) || isBlank(text) {
			continue
		}
		pairs = append(pairs, models.Pair{Key: key, Text: text})
	}
	return pairs, nil
}

// KeyedRows reads every data row whose column 1 is non-blank as a mapping of
// header name to cell text. Blank cells and blank-header columns are left out.
// With omitKeyColumn the header of column 1 is not part of the mapping.
func KeyedRows(sheet *models.TableSheet, omitKeyColumn bool) ([]models.KeyedRow, error) {
	if err := checkWidth(sheet); err != nil {
		return nil, err
	}

	headers := Headers(sheet)
	var result []models.KeyedRow
	for _, row := range sheet.Rows {
		key := row.Cell(0)
		if isBlank(key) {
			continue
		}

		keyed := models.KeyedRow{Key: key}
		for _, h := range headers {
			if omitKeyColumn && h.Column == 0 {
				continue
			}
			text := row.Cell(h.Column)
			if isBlank(text) {
				continue
			}
			keyed.Cells = append(keyed.Cells, models.Cell{Header: h.Name, Text: text})
		}
		result = append(result, keyed)
	}
	return result, nil
}

func checkWidth(sheet *models.TableSheet) error {
	if sheet.Columns < MinColumns {
		return models.NewMalformedError(sheet.Name, "expected at least %d columns, found %d", MinColumns, sheet.Columns)
	}
	return nil
}
