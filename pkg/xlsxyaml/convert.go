package xlsxyaml

import (
	"bytes"
	"io"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/document"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/output"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/parser"
	"github.com/xuri/excelize/v2"
)

// ConvertWorkbook builds one document per selected sheet of the workbook read
// from r. name identifies the workbook in errors. A failure to read r is an
// I/O failure; bytes that are not a workbook are malformed input.
func ConvertWorkbook(name string, r io.Reader, opts Options) ([]models.SheetDocument, error) {
	opts = opts.withDefaults()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewConversionError(name, "", "open", ioError("read", name, err))
	}

	f, err := excelize.OpenReader(bytes.NewReader(data), opts.Workbook)
	if err != nil {
		return nil, NewConversionError(name, "", "open", models.NewMalformedError(name, "invalid xlsx: %v", err))
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if opts.Sheets == FirstSheet && len(sheetList) > 1 {
		sheetList = sheetList[:1]
	}

	docs := make([]models.SheetDocument, 0, len(sheetList))
	for _, sheetName := range sheetList {
		sheet, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, NewConversionError(name, sheetName, "read", err)
		}

		doc, err := BuildDocument(sheet, opts)
		if err != nil {
			return nil, NewConversionError(name, sheetName, "build", err)
		}

		docs = append(docs, models.SheetDocument{Sheet: sheetName, Document: doc})
	}

	return docs, nil
}

// BuildDocument turns a sheet into a document using opts.ReadMode.
func BuildDocument(sheet *models.TableSheet, opts Options) (*models.Document, error) {
	if opts.ReadMode == ReadFixedColumns {
		pairs, err := parser.FixedPairs(sheet)
		if err != nil {
			return nil, err
		}
		return document.FromPairs(pairs)
	}

	rows, err := parser.KeyedRows(sheet, opts.OmitKeyColumn)
	if err != nil {
		return nil, err
	}
	return document.FromKeyedRows(rows)
}

// RenderDocument returns the yaml text written for doc.
func RenderDocument(doc *models.Document) ([]byte, error) {
	return output.RenderYAML(doc)
}

// ConvertDocument parses yaml data and flattens it into sheet entries.
// name identifies the document in errors.
func ConvertDocument(name string, data []byte) ([]models.Entry, error) {
	doc, err := parser.ParseDocument(name, data)
	if err != nil {
		return nil, NewConversionError(name, "", "read", err)
	}
	return document.Flatten(doc), nil
}
