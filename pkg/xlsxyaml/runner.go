package xlsxyaml

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/output"
)

const (
	xlsxExt = ".xlsx"
	yamlExt = ".yaml"
	// lockPrefix starts the owner files Excel keeps next to open workbooks.
	lockPrefix = "~$"
)

// Runner converts every matching file of one directory. Files are processed
// one at a time in name order; a failing file is recorded and skipped.
type Runner struct {
	fs     afero.Fs
	dir    string
	opts   Options
	logger *zap.Logger
}

// NewRunner creates a Runner for dir. A nil logger discards log output.
func NewRunner(fs afero.Fs, dir string, opts Options, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		fs:     fs,
		dir:    dir,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// ToYAML converts every workbook of the directory into yaml files.
func (r *Runner) ToYAML() (*Report, error) {
	report, inputs, err := r.prepare(xlsxExt, r.opts.YAMLDir)
	if err != nil || report.NoInput {
		return report, err
	}

	for _, in := range inputs {
		r.logger.Info("processing file", zap.String("path", in))
		res := r.workbookToYAML(in, report.OutputDir)
		r.logResult(res)
		report.Files = append(report.Files, res)
	}

	r.logDone(report)
	return report, nil
}

// ToXLSX converts every yaml document of the directory into worksheets.
func (r *Runner) ToXLSX() (*Report, error) {
	report, inputs, err := r.prepare(yamlExt, r.opts.XLSXDir)
	if err != nil || report.NoInput {
		return report, err
	}

	if r.opts.WriteMode == WritePerFile {
		for _, in := range inputs {
			r.logger.Info("processing file", zap.String("path", in))
			res := r.documentToWorkbook(in, report.OutputDir)
			r.logResult(res)
			report.Files = append(report.Files, res)
		}
	} else {
		report.Files = r.documentsToMergedWorkbook(inputs, report.OutputDir)
	}

	r.logDone(report)
	return report, nil
}

// prepare lists the inputs and creates the output folder when there is
// anything to convert.
func (r *Runner) prepare(ext, outDir string) (*Report, []string, error) {
	report := &Report{Dir: r.dir}

	inputs, err := r.findInputs(ext)
	if err != nil {
		return report, nil, err
	}
	if len(inputs) == 0 {
		report.NoInput = true
		r.logger.Info("no input files found", zap.String("dir", r.dir), zap.String("ext", ext))
		return report, nil, nil
	}

	report.OutputDir = r.resolve(outDir)
	if err := r.ensureDir(report.OutputDir); err != nil {
		return report, nil, err
	}
	return report, inputs, nil
}

func (r *Runner) workbookToYAML(in, outDir string) FileResult {
	res := FileResult{Input: in}

	f, err := r.fs.Open(in)
	if err != nil {
		res.Err = ioError("open", in, err)
		return res
	}
	defer f.Close()

	docs, err := ConvertWorkbook(in, f, r.opts)
	if err != nil {
		res.Err = err
		return res
	}

	// Render everything before writing so a failing sheet leaves no output.
	base := baseName(in)
	rendered := make(map[string][]byte, len(docs))
	var paths []string
	for _, d := range docs {
		text, err := RenderDocument(d.Document)
		if err != nil {
			res.Err = NewConversionError(in, d.Sheet, "render", err)
			return res
		}
		name := base + "_" + d.Sheet + yamlExt
		if r.opts.Sheets == FirstSheet {
			name = base + yamlExt
		}
		path := filepath.Join(outDir, name)
		rendered[path] = text
		paths = append(paths, path)
	}

	for i, path := range paths {
		if err := afero.WriteFile(r.fs, path, rendered[path], 0o644); err != nil {
			res.Err = ioError("write", path, err)
			return res
		}
		res.Outputs = append(res.Outputs, path)
		r.logger.Info("sheet written", zap.String("sheet", docs[i].Sheet), zap.String("output", path))
	}

	return res
}

func (r *Runner) readEntries(in string) ([]models.Entry, error) {
	data, err := afero.ReadFile(r.fs, in)
	if err != nil {
		return nil, ioError("read", in, err)
	}
	return ConvertDocument(in, data)
}

func (r *Runner) documentToWorkbook(in, outDir string) FileResult {
	res := FileResult{Input: in}

	entries, err := r.readEntries(in)
	if err != nil {
		res.Err = err
		return res
	}

	wb := output.NewWorkbook(r.opts.Workbook)
	defer wb.Close()

	sheet := baseName(in)
	if err := wb.AddSheet(sheet, r.opts.Columns, entries); err != nil {
		res.Err = NewConversionError(in, sheet, "sheet", err)
		return res
	}

	path := filepath.Join(outDir, sheet+xlsxExt)
	if err := r.saveWorkbook(wb, path); err != nil {
		res.Err = err
		return res
	}
	res.Outputs = []string{path}
	return res
}

func (r *Runner) documentsToMergedWorkbook(inputs []string, outDir string) []FileResult {
	wb := output.NewWorkbook(r.opts.Workbook)
	defer wb.Close()

	results := make([]FileResult, 0, len(inputs))
	for _, in := range inputs {
		r.logger.Info("processing file", zap.String("path", in))
		res := FileResult{Input: in}

		entries, err := r.readEntries(in)
		if err == nil {
			sheet := baseName(in)
			if err = wb.AddSheet(sheet, r.opts.Columns, entries); err != nil {
				err = NewConversionError(in, sheet, "sheet", err)
			} else {
				r.logger.Info("document added to workbook", zap.String("path", in), zap.String("sheet", sheet))
			}
		}
		res.Err = err
		if err != nil {
			r.logResult(res)
		}
		results = append(results, res)
	}

	if len(wb.Sheets()) == 0 {
		return results
	}

	path := filepath.Join(outDir, r.opts.MergedName)
	saveErr := r.saveWorkbook(wb, path)
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if saveErr != nil {
			results[i].Err = saveErr
			continue
		}
		results[i].Outputs = []string{path}
	}
	if saveErr != nil {
		r.logger.Error("saving workbook failed", zap.String("output", path), zap.Error(saveErr))
	} else {
		r.logger.Info("workbook written", zap.String("output", path), zap.Strings("sheets", wb.Sheets()))
	}
	return results
}

func (r *Runner) saveWorkbook(wb *output.Workbook, path string) (err error) {
	f, err := r.fs.Create(path)
	if err != nil {
		return ioError("create", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = ioError("close", path, closeErr)
		}
	}()

	if _, err := wb.WriteTo(f); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// findInputs lists the files of the directory with extension ext, sorted by
// name. Directories and Excel lock files are skipped.
func (r *Runner) findInputs(ext string) ([]string, error) {
	infos, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		return nil, ioError("list", r.dir, err)
	}

	var files []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || strings.HasPrefix(name, lockPrefix) {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ext) {
			files = append(files, filepath.Join(r.dir, name))
		}
	}
	return files, nil
}

func (r *Runner) ensureDir(dir string) error {
	exists, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return ioError("stat", dir, err)
	}
	if exists {
		return nil
	}
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return ioError("mkdir", dir, err)
	}
	r.logger.Info("created output folder", zap.String("dir", dir))
	return nil
}

func (r *Runner) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(r.dir, dir)
}

func (r *Runner) logResult(res FileResult) {
	if res.Err != nil {
		r.logger.Error("conversion failed", zap.String("path", res.Input), zap.Error(res.Err))
		return
	}
	r.logger.Info("file converted", zap.String("path", res.Input), zap.Strings("outputs", res.Outputs))
}

func (r *Runner) logDone(report *Report) {
	r.logger.Info("all files processed",
		zap.Int("files", len(report.Files)),
		zap.Int("failed", len(report.Failed())),
		zap.String("output_dir", report.OutputDir),
	)
}

// baseName returns the file name of path without its extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
