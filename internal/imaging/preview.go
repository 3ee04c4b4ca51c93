package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// EnergyHeatmap renders an energy grid as a false-color image: low energy in
// deep blue through green to red at the grid's maximum. Cells are normalized
// against the maximum present, so a flat grid renders entirely blue.
func EnergyHeatmap(energy [][]int, scale float64) (*PreviewResult, error) {
	height := len(energy)
	if height == 0 || len(energy[0]) == 0 {
		return nil, fmt.Errorf("empty energy grid")
	}
	width := len(energy[0])

	maxEnergy := 0
	for _, row := range energy {
		for _, e := range row {
			if e > maxEnergy {
				maxEnergy = e
			}
		}
	}

	heat := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 0.0
			if maxEnergy > 0 {
				t = float64(energy[y][x]) / float64(maxEnergy)
			}
			// Hue 240 (blue) down to 0 (red) as energy rises.
			r, g, b := colorful.Hsv(240*(1-t), 1, 1).RGB255()
			heat.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return newPreview(heat, scale)
}

// SeamOverlay draws a seam onto a copy of the image in the given hex color,
// with an optional annotation rendered in the top-left corner. The input
// buffer is not modified.
func SeamOverlay(img *carve.Image, seam carve.Seam, colorHex, annotation string, scale float64) (*PreviewResult, error) {
	seamColor, err := parseHexColor(colorHex)
	if err != nil {
		seamColor = color.RGBA{255, 0, 0, 255} // Default: opaque red
	}

	canvas := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	draw.Draw(canvas, canvas.Bounds(), img.ToImage(), image.Point{}, draw.Src)

	for _, c := range seam {
		if c.Row >= 0 && c.Row < img.Height && c.Col >= 0 && c.Col < img.Width {
			canvas.SetRGBA(c.Col, c.Row, seamColor)
		}
	}

	if annotation != "" {
		drawAnnotation(canvas, 4, 14, annotation, seamColor)
	}

	return newPreview(canvas, scale)
}

// drawAnnotation renders text at (x, y) using the fixed 7x13 basic font.
func drawAnnotation(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
