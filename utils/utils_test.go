package utils

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestUtils_ShouldDetectFontContent(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("font/ttf", DetectContentType(goregular.TTF))
	assert.True(IsFontContent(goregular.TTF))
	assert.False(IsFontContent([]byte("moon.stars\nsun.max\n")))
	assert.False(IsFontContent([]byte("\x89PNG\x0D\x0A\x1A\x0A")))
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"regular", "bold"}, "bold"))
	assert.False(t, Contains([]string{"regular", "bold"}, "black"))
}

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5.5, Max(1.0, 5.5))
	assert.Equal(20, Clamp(64, 1, 20))
	assert.Equal(1, Clamp(-3, 1, 20))
	assert.Equal(3.5, Abs(-3.5))
}

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	col, err := HexToRGBA("#ff8000")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, col)

	col, err = HexToRGBA("fff")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, col)
	assert.Equal("#ffffff", RGBAToHex(col))

	_, err = HexToRGBA("#12345")
	assert.Error(err)
	_, err = HexToRGBA("#zzzzzz")
	assert.Error(err)
}

func TestUtils_DecorateText(t *testing.T) {
	defer EnableColors(true)

	EnableColors(true)
	assert.Equal(t, ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))

	EnableColors(false)
	assert.Equal(t, "failed", DecorateText("failed", ErrorMessage))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_SpinnerStopMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond, false)
	s.Start()
	s.SetMessage("still working")
	time.Sleep(5 * time.Millisecond)
	s.StopMsg = "done"
	s.Stop()
	s.Stop()

	assert.True(t, strings.HasSuffix(buf.String(), "done"))
}
