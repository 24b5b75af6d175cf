package models

// Entry is one flattened document value.
type Entry struct {
	// Key is the dotted path of the value.
	Key string
	// Value is a scalar or a sequence.
	Value Value
	// Group is the 0-based index of the top-level key the entry belongs to.
	Group int
}

// SheetDocument is the document built from one worksheet.
type SheetDocument struct {
	// Sheet is the worksheet name.
	Sheet string
	// Document is the built document.
	Document *Document
}
