package xlsxyaml

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const workDir = "/work"

func TestRunnerNoInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(workDir, 0o755))
	writeFile(t, fs, filepath.Join(workDir, "readme.txt"), []byte("hi"))

	r := NewRunner(fs, workDir, DefaultOptions(), nil)

	report, err := r.ToYAML()
	require.NoError(t, err)
	assert.True(t, report.NoInput)
	assert.NoError(t, report.Err())
	exists, _ := afero.DirExists(fs, filepath.Join(workDir, DefaultYAMLDir))
	assert.False(t, exists)

	report, err = r.ToXLSX()
	require.NoError(t, err)
	assert.True(t, report.NoInput)
	exists, _ = afero.DirExists(fs, filepath.Join(workDir, DefaultXLSXDir))
	assert.False(t, exists)
}

func TestRunnerMissingDir(t *testing.T) {
	r := NewRunner(afero.NewMemMapFs(), "/nowhere", DefaultOptions(), nil)

	_, err := r.ToYAML()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIOFailure)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "/nowhere", ioErr.Path)
}

func TestRunnerToYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	good := newWorkbook(t, spellsSheet, testSheet{name: "Menu", cells: [][]string{
		{"Key", "Text"},
		{"Menu.Start", "Start"},
	}})
	bad := newWorkbook(t, spellsSheet, testSheet{name: "Blank"})
	writeFile(t, fs, filepath.Join(workDir, "a.xlsx"), good)
	writeFile(t, fs, filepath.Join(workDir, "b.XLSX"), bad)
	writeFile(t, fs, filepath.Join(workDir, "~$a.xlsx"), []byte("lock"))
	writeFile(t, fs, filepath.Join(workDir, "sub", "c.xlsx"), good)

	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRunner(fs, workDir, DefaultOptions(), zap.New(core))

	report, err := r.ToYAML()
	require.NoError(t, err)

	outDir := filepath.Join(workDir, DefaultYAMLDir)
	assert.Equal(t, outDir, report.OutputDir)
	require.Len(t, report.Files, 2)

	a := report.Files[0]
	assert.Equal(t, filepath.Join(workDir, "a.xlsx"), a.Input)
	require.NoError(t, a.Err)
	assert.Equal(t, []string{
		filepath.Join(outDir, "a_Spells.yaml"),
		filepath.Join(outDir, "a_Menu.yaml"),
	}, a.Outputs)

	menu := readDocument(t, fs, filepath.Join(outDir, "a_Menu.yaml"))
	assert.True(t, mustParse(t, "Menu:\n  Start:\n    Key: Menu.Start\n    Text: Start\n").Equal(menu))

	spells, err := afero.ReadFile(fs, filepath.Join(outDir, "a_Spells.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(spells), "\n\nReimuBlockW:\n")

	// b.XLSX fails as a whole: its valid first sheet is not written either.
	b := report.Files[1]
	assert.ErrorIs(t, b.Err, ErrMalformedInput)
	assert.Empty(t, b.Outputs)
	exists, _ := afero.Exists(fs, filepath.Join(outDir, "b_Spells.yaml"))
	assert.False(t, exists)

	assert.ErrorIs(t, report.Err(), ErrMalformedInput)
	assert.Len(t, report.Failed(), 1)

	assert.Equal(t, 2, logs.FilterMessage("processing file").Len())
	assert.Equal(t, 1, logs.FilterMessage("created output folder").Len())
	failed := logs.FilterMessage("conversion failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, filepath.Join(workDir, "b.XLSX"), failed[0].ContextMap()["path"])
}

func TestRunnerToYAMLFirstSheet(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(workDir, "lang.xlsx"), newWorkbook(t,
		testSheet{name: "UI", cells: [][]string{{"Key", "文本"}, {"title", "Hello"}}},
		testSheet{name: "Blank"},
	))

	opts := DefaultOptions()
	opts.ReadMode = ReadFixedColumns
	opts.Sheets = FirstSheet
	opts.YAMLDir = "/out"

	report, err := NewRunner(fs, workDir, opts, nil).ToYAML()
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, []string{"/out/lang.yaml"}, report.Files[0].Outputs)
	data, err := afero.ReadFile(fs, "/out/lang.yaml")
	require.NoError(t, err)
	assert.Equal(t, "title: Hello\n", string(data))
}

func TestRunnerToXLSXMerged(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(workDir, "ui.yaml"), []byte("menu:\n  start: Start\n  quit: Quit\ntitle: Hello\n"))
	writeFile(t, fs, filepath.Join(workDir, "items.yaml"), []byte("sword:\n  tags:\n    - sharp\n    - steel\n"))
	writeFile(t, fs, filepath.Join(workDir, "broken.yaml"), []byte("- not\n- a mapping\n"))

	report, err := NewRunner(fs, workDir, DefaultOptions(), nil).ToXLSX()
	require.NoError(t, err)
	require.Len(t, report.Files, 3)

	merged := filepath.Join(workDir, DefaultXLSXDir, DefaultMergedName)
	assert.ErrorIs(t, report.Files[0].Err, ErrMalformedInput)
	assert.Empty(t, report.Files[0].Outputs)
	assert.Equal(t, []string{merged}, report.Files[1].Outputs)
	assert.Equal(t, []string{merged}, report.Files[2].Outputs)

	assert.Equal(t, []string{"items", "ui"}, sheetNames(t, fs, merged))

	rows := readRows(t, fs, merged, "ui")
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Key", "文本"}, rows[0])
	assert.Equal(t, []string{"menu.start", "Start"}, rows[1])
	assert.Equal(t, []string{"menu.quit", "Quit"}, rows[2])
	assert.Empty(t, rows[3])
	assert.Equal(t, []string{"title", "Hello"}, rows[4])

	rows = readRows(t, fs, merged, "items")
	assert.Equal(t, []string{"sword.tags", "- sharp\n- steel"}, rows[1])
}

func TestRunnerToXLSXSelfAlias(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(workDir, "cyclic.yaml"), []byte("a: &x\n  b: *x\n"))
	writeFile(t, fs, filepath.Join(workDir, "ui.yaml"), []byte("title: Hello\n"))

	report, err := NewRunner(fs, workDir, DefaultOptions(), nil).ToXLSX()
	require.NoError(t, err)
	require.Len(t, report.Files, 2)

	merged := filepath.Join(workDir, DefaultXLSXDir, DefaultMergedName)
	assert.ErrorIs(t, report.Files[0].Err, ErrMalformedInput)
	assert.Empty(t, report.Files[0].Outputs)
	require.NoError(t, report.Files[1].Err)
	assert.Equal(t, []string{merged}, report.Files[1].Outputs)

	assert.Equal(t, []string{"ui"}, sheetNames(t, fs, merged))
	assert.Equal(t, [][]string{{"Key", "文本"}, {"title", "Hello"}}, readRows(t, fs, merged, "ui"))
}

func TestRunnerToXLSXMergedAllFailed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(workDir, "broken.yaml"), []byte("key: [unclosed\n"))

	report, err := NewRunner(fs, workDir, DefaultOptions(), nil).ToXLSX()
	require.NoError(t, err)
	assert.Error(t, report.Err())

	exists, _ := afero.Exists(fs, filepath.Join(workDir, DefaultXLSXDir, DefaultMergedName))
	assert.False(t, exists)
}

func TestRunnerToXLSXPerFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(workDir, "ui.yaml"), []byte("title: Hello\n"))

	opts := DefaultOptions()
	opts.WriteMode = WritePerFile
	opts.Columns.Text = "Text"

	report, err := NewRunner(fs, workDir, opts, nil).ToXLSX()
	require.NoError(t, err)
	require.NoError(t, report.Err())

	out := filepath.Join(workDir, DefaultXLSXDir, "ui.xlsx")
	assert.Equal(t, []string{out}, report.Files[0].Outputs)
	assert.Equal(t, [][]string{{"Key", "Text"}, {"title", "Hello"}}, readRows(t, fs, out, "ui"))
}

func TestRunnerRoundTrip(t *testing.T) {
	sources := map[string]string{
		"spells": `
ReimuAttackR:
  Name: Fantasy Seal
  Description: |-
    Throws homing orbs.
    Hits twice.
  FlavorText:
    - bright
    - loud
ReimuBlockW:
  Name: Barrier
`,
		"ui": `
menu:
  start: Start
  options:
    sound: Sound
title: Hello
`,
	}

	fs := afero.NewMemMapFs()
	for name, src := range sources {
		writeFile(t, fs, filepath.Join(workDir, name+".yaml"), []byte(src))
	}

	report, err := NewRunner(fs, workDir, DefaultOptions(), nil).ToXLSX()
	require.NoError(t, err)
	require.NoError(t, report.Err())

	// Feed the merged workbook back in fixed two-column mode.
	data, err := afero.ReadFile(fs, filepath.Join(workDir, DefaultXLSXDir, DefaultMergedName))
	require.NoError(t, err)
	writeFile(t, fs, "/back/merged.xlsx", data)

	opts := DefaultOptions()
	opts.ReadMode = ReadFixedColumns
	report, err = NewRunner(fs, "/back", opts, nil).ToYAML()
	require.NoError(t, err)
	require.NoError(t, report.Err())

	for name, src := range sources {
		got := readDocument(t, fs, filepath.Join("/back", DefaultYAMLDir, "merged_"+name+".yaml"))
		assert.True(t, mustParse(t, src).Equal(got), "document %s", name)
	}
}
