package xlsxyaml

import "go.uber.org/multierr"

// FileResult is the outcome of converting one input file.
type FileResult struct {
	// Input is the path of the input file.
	Input string
	// Outputs are the files written for Input.
	Outputs []string
	// Err is the failure, if any. A failed input writes no output of its own.
	Err error
}

// Report summarizes a batch run.
type Report struct {
	// Dir is the scanned input directory.
	Dir string
	// OutputDir is the directory outputs were written to. Empty when NoInput is set.
	OutputDir string
	// NoInput is set when the directory had no matching input files.
	NoInput bool
	// Files holds one result per input, in processing order.
	Files []FileResult
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Err combines the errors of all failed files, or returns nil.
func (r *Report) Err() error {
	var err error
	for _, f := range r.Failed() {
		err = multierr.Append(err, f.Err)
	}
	return err
}
