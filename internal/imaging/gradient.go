package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// DefaultBlurRadius is the Gaussian pre-blur applied before the Sobel pass
// when the caller does not choose one. A light blur keeps sensor noise and
// JPEG artifacts from registering as structure worth preserving.
const DefaultBlurRadius = 1.0

// SobelGradient builds the production gradient filter for the carving core:
// an optional Gaussian blur (skipped when blurRadius <= 0) followed by a
// Sobel edge-response pass. The returned buffer has the interleaved
// four-channel layout carve.EnergyMap expects, one response per channel.
func SobelGradient(blurRadius float64) carve.GradientFunc {
	return func(img *carve.Image) ([]uint8, error) {
		var src image.Image = img.ToImage()
		if blurRadius > 0 {
			src = blur.Gaussian(src, blurRadius)
		}
		responses := effect.Sobel(src)
		return flattenRGBA(responses), nil
	}
}

// flattenRGBA copies an RGBA image into a tightly packed width*height*4
// buffer, dropping any row padding the stride may carry.
func flattenRGBA(img *image.RGBA) []uint8 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if img.Stride == width*4 && len(img.Pix) == width*height*4 {
		return append([]uint8(nil), img.Pix...)
	}

	flat := make([]uint8, width*height*4)
	for row := 0; row < height; row++ {
		src := img.Pix[row*img.Stride : row*img.Stride+width*4]
		copy(flat[row*width*4:], src)
	}
	return flat
}
