// Package main provides the CLI entry point for xlsxyaml.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml"
	"go.uber.org/zap"
)

type flags struct {
	dir           string
	outputDir     string
	mode          string
	firstSheet    bool
	omitKeyColumn bool
	perFile       bool
	mergedName    string
	keyHeader     string
	textHeader    string
	logLevel      string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsxyaml",
		Short: "Convert localization workbooks to yaml and back",
		Long: `xlsxyaml converts every workbook of a folder into yaml language packs,
or every yaml document of a folder back into worksheets.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(newToYAMLCmd(out), newToXLSXCmd(out))
	return rootCmd
}

func newToYAMLCmd(out io.Writer) *cobra.Command {
	var fl flags
	cmd := &cobra.Command{
		Use:   "to-yaml",
		Short: "Convert every *.xlsx of the folder into yaml files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, out, &fl, func(r *xlsxyaml.Runner) (*xlsxyaml.Report, error) {
				return r.ToYAML()
			})
		},
	}
	addCommonFlags(cmd, &fl, xlsxyaml.DefaultYAMLDir)
	cmd.Flags().StringVar(&fl.mode, "mode", string(xlsxyaml.ReadHeaderKeyed), "Read mode: header or fixed")
	cmd.Flags().BoolVar(&fl.firstSheet, "first-sheet", false, "Convert only the first sheet into {book}.yaml")
	cmd.Flags().BoolVar(&fl.omitKeyColumn, "omit-key-column", false, "Leave the key column out of header-keyed entries")
	return cmd
}

func newToXLSXCmd(out io.Writer) *cobra.Command {
	var fl flags
	cmd := &cobra.Command{
		Use:   "to-xlsx",
		Short: "Convert every *.yaml of the folder into worksheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, out, &fl, func(r *xlsxyaml.Runner) (*xlsxyaml.Report, error) {
				return r.ToXLSX()
			})
		},
	}
	addCommonFlags(cmd, &fl, xlsxyaml.DefaultXLSXDir)
	cmd.Flags().BoolVar(&fl.perFile, "per-file", false, "Write one workbook per yaml file instead of a merged one")
	cmd.Flags().StringVar(&fl.mergedName, "merged-name", xlsxyaml.DefaultMergedName, "File name of the merged workbook")
	cmd.Flags().StringVar(&fl.keyHeader, "key-header", "Key", "Header of the key column")
	cmd.Flags().StringVar(&fl.textHeader, "text-header", "文本", "Header of the text column")
	return cmd
}

func addCommonFlags(cmd *cobra.Command, fl *flags, outputDir string) {
	cmd.Flags().StringVar(&fl.dir, "dir", ".", "Folder scanned for input files; its .env file supplies XLSXYAML_* defaults")
	cmd.Flags().StringVarP(&fl.outputDir, "output-dir", "o", outputDir, "Output folder, relative to --dir unless absolute")
	cmd.Flags().StringVar(&fl.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, out io.Writer, fl *flags, convert func(*xlsxyaml.Runner) (*xlsxyaml.Report, error)) error {
	if err := applyEnv(cmd.Flags(), loadEnv(envDir(cmd.Flags()))); err != nil {
		return err
	}

	logger, err := newLogger(out, fl.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts := fl.options()
	if err := opts.Validate(); err != nil {
		return err
	}

	logger.Info("scanning folder", zap.String("dir", fl.dir))
	report, err := convert(xlsxyaml.NewRunner(afero.NewOsFs(), fl.dir, opts, logger))
	if err != nil {
		return err
	}
	if report.NoInput {
		return nil
	}
	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(failed), len(report.Files), report.Err())
	}
	return nil
}

func (fl *flags) options() xlsxyaml.Options {
	opts := xlsxyaml.DefaultOptions()
	if fl.mode != "" {
		opts.ReadMode = xlsxyaml.ReadMode(fl.mode)
	}
	if fl.firstSheet {
		opts.Sheets = xlsxyaml.FirstSheet
	}
	opts.OmitKeyColumn = fl.omitKeyColumn
	if fl.perFile {
		opts.WriteMode = xlsxyaml.WritePerFile
	}
	if fl.mergedName != "" {
		opts.MergedName = fl.mergedName
	}
	if fl.keyHeader != "" {
		opts.Columns.Key = fl.keyHeader
	}
	if fl.textHeader != "" {
		opts.Columns.Text = fl.textHeader
	}
	opts.YAMLDir = fl.outputDir
	opts.XLSXDir = fl.outputDir
	return opts
}
