package xlsxyaml

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/parser"
)

type testSheet struct {
	name  string
	cells [][]string
}

// newWorkbook builds an xlsx file in memory with the given sheets.
func newWorkbook(t *testing.T, sheets ...testSheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.cells {
			for c, v := range row {
				if v == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellStr(s.name, cell, v))
			}
		}
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func writeFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

func readDocument(t *testing.T, fs afero.Fs, path string) *models.Document {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	doc, err := parser.ParseDocument(path, data)
	require.NoError(t, err)
	return doc
}

func readRows(t *testing.T, fs afero.Fs, path, sheet string) [][]string {
	t.Helper()
	file, err := fs.Open(path)
	require.NoError(t, err)
	defer file.Close()

	f, err := excelize.OpenReader(file)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func sheetNames(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	file, err := fs.Open(path)
	require.NoError(t, err)
	defer file.Close()

	f, err := excelize.OpenReader(file)
	require.NoError(t, err)
	defer f.Close()
	return f.GetSheetList()
}

func mustParse(t *testing.T, src string) *models.Document {
	t.Helper()
	doc, err := parser.ParseDocument("expected", []byte(src))
	require.NoError(t, err)
	return doc
}
