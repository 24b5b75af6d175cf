package output

import (
	"io"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/document"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

// Columns holds the header labels of a two-column sheet.
type Columns struct {
	Key  string
	Text string
}

// DefaultColumns returns the header labels written by default.
func DefaultColumns() Columns {
	return Columns{Key: "Key", Text: "文本"}
}

// maxRows is the number of rows a worksheet holds.
var maxRows = excelize.TotalRows

// rowsNeeded counts the rows WriteEntries fills, header and separators included.
func rowsNeeded(entries []models.Entry) int {
	rows := 1 + len(entries)
	for i := 1; i < len(entries); i++ {
		if entries[i].Group != entries[i-1].Group {
			rows++
		}
	}
	return rows
}

// WriteEntries writes the header row and then one row per entry, starting at
// row 2. One blank row separates entries of different top-level groups.
// Nothing is written when the entries do not fit in one sheet.
func WriteEntries(f *excelize.File, sheet string, cols Columns, entries []models.Entry) error {
	if n := rowsNeeded(entries); n > maxRows {
		return models.NewMalformedError(sheet, "needs %d rows, a sheet holds %d", n, maxRows)
	}

	if err := f.SetCellStr(sheet, "A1", cols.Key); err != nil {
		return err
	}
	if err := f.SetCellStr(sheet, "B1", cols.Text); err != nil {
		return err
	}

	row := 2
	for i, e := range entries {
		if i > 0 && e.Group != entries[i-1].Group {
			row++
		}
		keyCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		textCell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, keyCell, e.Key); err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, textCell, document.CellText(e)); err != nil {
			return err
		}
		row++
	}

	return nil
}

// Workbook collects worksheets for a generated file. The first added sheet
// takes over the default sheet of a new excelize file.
type Workbook struct {
	f      *excelize.File
	opts   excelize.Options
	sheets []string
}

// NewWorkbook creates an empty workbook.
func NewWorkbook(opts excelize.Options) *Workbook {
	return &Workbook{f: excelize.NewFile(opts), opts: opts}
}

// AddSheet creates a worksheet named name and fills it with entries.
// An invalid or already used name is malformed input. When the entries
// cannot be written the sheet is removed again and the workbook is left as
// it was.
func (w *Workbook) AddSheet(name string, cols Columns, entries []models.Entry) error {
	if len(w.sheets) == 0 {
		if err := w.f.SetSheetName(w.f.GetSheetName(0), name); err != nil {
			return models.NewMalformedError(name, "invalid sheet name: %v", err)
		}
	} else {
		idx, err := w.f.GetSheetIndex(name)
		if err != nil {
			return models.NewMalformedError(name, "invalid sheet name: %v", err)
		}
		if idx != -1 {
			return models.NewMalformedError(name, "duplicate sheet name")
		}
		if _, err := w.f.NewSheet(name); err != nil {
			return models.NewMalformedError(name, "invalid sheet name: %v", err)
		}
	}

	if err := WriteEntries(w.f, name, cols, entries); err != nil {
		return multierr.Append(err, w.discard(name))
	}
	w.sheets = append(w.sheets, name)
	return nil
}

// discard drops a sheet that was created but not recorded. The default sheet
// cannot be deleted, so a failed first sheet starts over with a new file.
func (w *Workbook) discard(name string) error {
	if len(w.sheets) == 0 {
		old := w.f
		w.f = excelize.NewFile(w.opts)
		return old.Close()
	}
	return w.f.DeleteSheet(name)
}

// Sheets returns the names of the added sheets in order.
func (w *Workbook) Sheets() []string {
	return append([]string(nil), w.sheets...)
}

// WriteTo saves the workbook to wr.
func (w *Workbook) WriteTo(wr io.Writer) (int64, error) {
	return w.f.WriteTo(wr)
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}
