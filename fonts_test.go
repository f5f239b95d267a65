package glyphcanvas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// writeFonts creates a fonts directory holding the Go fonts
// named after the regular and bold weights.
func writeFonts(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Bold.ttf"), gobold.TTF, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("Go fonts"), 0644))
	return dir
}

func TestFonts_ExpandWeights(t *testing.T) {
	assert := assert.New(t)

	weights, err := ExpandWeights("regular")
	assert.NoError(err)
	assert.Equal([]string{"regular"}, weights)

	weights, err = ExpandWeights(" Bold, regular,bold ")
	assert.NoError(err)
	assert.Equal([]string{"bold", "regular"}, weights)

	weights, err = ExpandWeights("bold,all")
	assert.NoError(err)
	assert.Equal(Weights, weights)

	weights, err = ExpandWeights("")
	assert.NoError(err)
	assert.Equal([]string{"regular"}, weights)

	_, err = ExpandWeights("regular,extrabold")
	assert.Error(err)
}

func TestFonts_FindFontFile(t *testing.T) {
	assert := assert.New(t)
	dir := writeFonts(t)

	path, err := FindFontFile(dir, "bold")
	assert.NoError(err)
	assert.Equal(filepath.Join(dir, "Go-Bold.ttf"), path)

	// "semibold" must not match the bold font.
	_, err = FindFontFile(dir, "semibold")
	assert.Error(err)
}

func TestFonts_LoadFontsDropsMissingWeights(t *testing.T) {
	assert := assert.New(t)
	dir := writeFonts(t)

	faces, err := LoadFonts(dir, []string{"black", "bold", "light", "regular"})
	require.NoError(t, err)
	require.Len(t, faces, 2)
	assert.Equal("bold", faces[0].Weight)
	assert.Equal("regular", faces[1].Weight)
}

func TestFonts_NoFontsLoaded(t *testing.T) {
	dir := writeFonts(t)

	_, err := LoadFonts(dir, []string{"thin", "heavy"})
	assert.True(t, errors.Is(err, ErrNoFonts))

	_, err = LoadFonts(filepath.Join(dir, "missing"), []string{"regular"})
	assert.True(t, errors.Is(err, ErrNoFonts))
}
