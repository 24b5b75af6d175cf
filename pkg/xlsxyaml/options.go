// Package xlsxyaml converts localization workbooks to yaml documents and back.
package xlsxyaml

import (
	"fmt"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/output"
	"github.com/xuri/excelize/v2"
)

// ReadMode selects how worksheet rows become document entries.
type ReadMode string

const (
	// ReadHeaderKeyed maps every row key to a node of header -> cell text.
	ReadHeaderKeyed ReadMode = "header"
	// ReadFixedColumns reads columns 1 and 2 as dotted key and text.
	ReadFixedColumns ReadMode = "fixed"
)

// SheetSelection selects which worksheets of a workbook are converted.
type SheetSelection string

const (
	// AllSheets converts every sheet into "{book}_{sheet}.yaml".
	AllSheets SheetSelection = "all"
	// FirstSheet converts the first sheet into "{book}.yaml".
	FirstSheet SheetSelection = "first"
)

// WriteMode selects how yaml documents are laid out as workbooks.
type WriteMode string

const (
	// WriteMerged writes every document as one sheet of a single workbook.
	WriteMerged WriteMode = "merged"
	// WritePerFile writes every document into its own "{name}.xlsx".
	WritePerFile WriteMode = "per-file"
)

const (
	// DefaultYAMLDir is the output folder of the xlsx to yaml direction.
	DefaultYAMLDir = "语言包"
	// DefaultXLSXDir is the output folder of the yaml to xlsx direction.
	DefaultXLSXDir = "生成的Excel文件"
	// DefaultMergedName is the workbook written in WriteMerged mode.
	DefaultMergedName = "合并的Yaml数据.xlsx"
)

// Options configures both conversion directions.
type Options struct {
	// ReadMode specifies how sheet rows are read.
	ReadMode ReadMode
	// Sheets specifies which sheets are converted.
	Sheets SheetSelection
	// OmitKeyColumn leaves the key column out of header-keyed row nodes.
	OmitKeyColumn bool
	// WriteMode specifies the workbook layout of the yaml to xlsx direction.
	WriteMode WriteMode
	// Columns are the header labels of generated sheets.
	Columns output.Columns
	// YAMLDir is the output folder for yaml files, relative to the input folder unless absolute.
	YAMLDir string
	// XLSXDir is the output folder for workbooks, relative to the input folder unless absolute.
	XLSXDir string
	// MergedName is the file name of the merged workbook.
	MergedName string
	// Workbook is passed to excelize whenever a workbook is opened or created.
	Workbook excelize.Options
}

// DefaultOptions returns the default options: header-keyed reading of all
// sheets and a single merged workbook.
func DefaultOptions() Options {
	return Options{
		ReadMode:   ReadHeaderKeyed,
		Sheets:     AllSheets,
		WriteMode:  WriteMerged,
		Columns:    output.DefaultColumns(),
		YAMLDir:    DefaultYAMLDir,
		XLSXDir:    DefaultXLSXDir,
		MergedName: DefaultMergedName,
	}
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ReadMode == "" {
		o.ReadMode = d.ReadMode
	}
	if o.Sheets == "" {
		o.Sheets = d.Sheets
	}
	if o.WriteMode == "" {
		o.WriteMode = d.WriteMode
	}
	if o.Columns.Key == "" {
		o.Columns.Key = d.Columns.Key
	}
	if o.Columns.Text == "" {
		o.Columns.Text = d.Columns.Text
	}
	if o.YAMLDir == "" {
		o.YAMLDir = d.YAMLDir
	}
	if o.XLSXDir == "" {
		o.XLSXDir = d.XLSXDir
	}
	if o.MergedName == "" {
		o.MergedName = d.MergedName
	}
	return o
}

// Validate reports unknown mode values.
func (o Options) Validate() error {
	switch o.ReadMode {
	case "", ReadHeaderKeyed, ReadFixedColumns:
	default:
		return fmt.Errorf("invalid read mode: %s (must be header or fixed)", o.ReadMode)
	}
	switch o.Sheets {
	case "", AllSheets, FirstSheet:
	default:
		return fmt.Errorf("invalid sheet selection: %s (must be all or first)", o.Sheets)
	}
	switch o.WriteMode {
	case "", WriteMerged, WritePerFile:
	default:
		return fmt.Errorf("invalid write mode: %s (must be merged or per-file)", o.WriteMode)
	}
	return nil
}
