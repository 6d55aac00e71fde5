package playing

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorWell       = color.RGBA{12, 12, 24, 255}
	colorGrid       = color.RGBA{40, 40, 60, 255}
	colorGhost      = color.RGBA{255, 255, 255, 60}
	colorPreviewBox = color.RGBA{40, 40, 60, 255}
	colorUnknown    = color.RGBA{128, 128, 128, 255}
	colorPause      = color.RGBA{0, 0, 0, 128}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
)

// parseColor converts a "#rrggbb" catalog color to RGBA
func parseColor(hex string) (color.RGBA, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// cellColor returns the draw color for hex, caching parsed values.
// Unparseable colors draw grey.
func (p *Playing) cellColor(hex string) color.RGBA {
	if c, ok := p.palette[hex]; ok {
		return c
	}
	c, ok := parseColor(hex)
	if !ok {
		c = colorUnknown
	}
	p.palette[hex] = c
	return c
}
