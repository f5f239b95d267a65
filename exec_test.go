package glyphcanvas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSymbols = []Symbol{
	{Name: "letter.a", Char: 'A'},
	{Name: "space", Char: ' '},
	{Name: "Moon.Stars", Char: 'O'},
	{Name: "private.use", Char: 0x100000},
}

func testOps(t *testing.T) *Ops {
	t.Helper()

	names := make([]string, len(testSymbols))
	chars := make([]rune, len(testSymbols))
	for i, s := range testSymbols {
		names[i], chars[i] = s.Name, s.Char
	}

	return &Ops{
		FontsDir:   writeFonts(t),
		SourcesDir: writeSources(t, "1.0", names, chars),
		OutDir:     filepath.Join(t.TempDir(), "symbols"),
		Weights:    []string{"regular", "bold", "black"},
		Workers:    4,
	}
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	return files
}

func TestExec_GenerateAllWeights(t *testing.T) {
	assert := assert.New(t)
	op := testOps(t)

	report, err := NewProcessor().Execute(op)
	require.NoError(t, err)

	assert.Equal("1.0", report.Version)
	assert.Equal([]string{"regular", "bold"}, report.Weights)
	assert.Equal(4, report.Symbols)
	assert.Equal(4, report.Written)
	assert.Equal(4, report.Skipped)
	assert.Equal(0, report.Failed)

	assert.ElementsMatch([]string{
		"letter_a.svg",
		"letter_a-bold.svg",
		"moon_stars.svg",
		"moon_stars-bold.svg",
	}, listFiles(t, op.OutDir))

	data, err := os.ReadFile(filepath.Join(op.OutDir, "moon_stars-bold.svg"))
	require.NoError(t, err)

	doc := string(data)
	assert.Contains(doc, `viewBox="0 0 24 24"`)
	assert.Contains(doc, "<title>Moon.Stars</title>")
	assert.Contains(doc, `fill="currentColor"`)
	assert.Contains(doc, `transform="matrix(`)
	assert.NotContains(doc, "NaN")
	assert.NotContains(doc, "Inf")
}

func TestExec_IconList(t *testing.T) {
	assert := assert.New(t)
	op := testOps(t)

	op.IconList = filepath.Join(t.TempDir(), "icons.txt")
	require.NoError(t, os.WriteFile(op.IconList, []byte("Moon.Stars\nunknown.icon\n"), 0644))

	report, err := NewProcessor().Execute(op)
	require.NoError(t, err)
	assert.Equal(1, report.Symbols)
	assert.ElementsMatch([]string{"moon_stars.svg", "moon_stars-bold.svg"}, listFiles(t, op.OutDir))
}

func TestExec_UnmatchedIconListFallsBackToAll(t *testing.T) {
	op := testOps(t)

	op.IconList = filepath.Join(t.TempDir(), "icons.txt")
	require.NoError(t, os.WriteFile(op.IconList, []byte("unknown.icon\n"), 0644))

	report, err := NewProcessor().Execute(op)
	require.NoError(t, err)
	assert.Equal(t, len(testSymbols), report.Symbols)
	assert.Equal(t, 4, report.Written)
}

func TestExec_Previews(t *testing.T) {
	assert := assert.New(t)
	op := testOps(t)
	op.Weights = []string{"bold"}

	p := NewProcessor()
	p.Preview = true
	p.Sheet = true
	p.PreviewSize = 32

	report, err := p.Execute(op)
	require.NoError(t, err)
	assert.Equal(2, report.Written)

	assert.ElementsMatch([]string{
		"letter_a-bold.png",
		"moon_stars-bold.png",
		"sheet-bold.png",
	}, listFiles(t, previewDir(op.OutDir)))
}

func TestExec_FatalPreconditions(t *testing.T) {
	assert := assert.New(t)

	op := testOps(t)
	op.SourcesDir = t.TempDir()
	_, err := NewProcessor().Execute(op)
	assert.True(errors.Is(err, ErrNoVersions))

	op = testOps(t)
	require.NoError(t, os.Remove(filepath.Join(op.SourcesDir, "1.0", NamesFile)))
	_, err = NewProcessor().Execute(op)
	assert.True(errors.Is(err, ErrMissingData))

	op = testOps(t)
	op.Weights = []string{"thin"}
	_, err = NewProcessor().Execute(op)
	assert.True(errors.Is(err, ErrNoFonts))

	op = testOps(t)
	op.Version = "9.9"
	_, err = NewProcessor().Execute(op)
	assert.Error(err)
}

func TestExec_InvalidOptions(t *testing.T) {
	op := testOps(t)

	for _, p := range []*Processor{
		{CanvasSize: 0, RenderSize: 100},
		{CanvasSize: 24, Padding: -1, RenderSize: 100},
		{CanvasSize: 24, Padding: 12, RenderSize: 100},
		{CanvasSize: 24, Padding: 2, RenderSize: 0},
		{CanvasSize: 24, Padding: 2, RenderSize: 100, Precision: -1},
		{CanvasSize: 24, Padding: 2, RenderSize: 100, Preview: true, PreviewSize: 64, PreviewColor: "red"},
	} {
		_, err := p.Execute(op)
		assert.Error(t, err)
	}
	_, err := os.Stat(op.OutDir)
	assert.True(t, os.IsNotExist(err))
}

func TestExec_RenderFitsCanvas(t *testing.T) {
	assert := assert.New(t)

	faces, err := LoadFonts(writeFonts(t), []string{"regular"})
	require.NoError(t, err)

	p := NewProcessor()
	rs, err := p.Render(faces[0], Symbol{Name: "Moon.Stars", Char: 'l'})
	require.NoError(t, err)
	assert.Equal("moon_stars.svg", rs.FileName())
	assert.True(strings.HasPrefix(rs.PathData, "M"))

	outline, err := faces[0].Glyph('l', p.RenderSize)
	require.NoError(t, err)
	x0, y0 := rs.Transform.Apply(outline.Bounds.MinX, outline.Bounds.MinY)
	x1, y1 := rs.Transform.Apply(outline.Bounds.MaxX, outline.Bounds.MaxY)

	// 'l' is taller than wide: the height fills the padded area.
	assert.InDelta(2, y0, 1e-6)
	assert.InDelta(22, y1, 1e-6)
	assert.Greater(x0, 2.0)
	assert.Less(x1, 22.0)
	assert.InDelta(x0, 24-x1, 1e-6)
}
