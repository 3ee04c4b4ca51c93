package carve

import (
	"fmt"
	"image"
	"image/draw"
)

// Image is a flat, row-major NRGBA pixel buffer: four interleaved 8-bit
// samples (red, green, blue, alpha) per pixel, len(Pix) == Width*Height*4.
//
// The buffer is the unit the carving pipeline operates on. Only RemoveSeam
// produces an Image with a different width; every other operation treats the
// buffer as read-only.
type Image struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewImage allocates a zeroed image buffer of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// FromImage converts any image.Image into a carving buffer, normalizing to
// non-premultiplied RGBA samples. The source image is not retained.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	return &Image{
		Pix:    nrgba.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

// ToImage exposes the buffer as a standard *image.NRGBA sharing the same
// backing pixels. Mutating the returned image mutates the buffer.
func (m *Image) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// Clone returns a deep copy of the image buffer.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &Image{Pix: pix, Width: m.Width, Height: m.Height}
}

// Validate checks the buffer-shape invariant: non-negative dimensions and
// len(Pix) == Width*Height*4.
func (m *Image) Validate() error {
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedBuffer, m.Width, m.Height)
	}
	if len(m.Pix) != m.Width*m.Height*4 {
		return fmt.Errorf("%w: have %d bytes, want %d (%dx%dx4)",
			ErrMalformedBuffer, len(m.Pix), m.Width*m.Height*4, m.Width, m.Height)
	}
	return nil
}

// offset returns the flat index of the first sample of pixel (row, col).
func (m *Image) offset(row, col int) int {
	return (row*m.Width + col) * 4
}
