package carve

import "fmt"

// EnergyMap converts a gradient-response buffer into a height x width grid of
// per-pixel energy scores.
//
// The gradient buffer must have the same interleaved four-channel layout as an
// image buffer of the given dimensions; it is typically produced by an edge
// detection filter over the current image. Each cell's energy is the plain sum
// of the pixel's first three channels (alpha ignored), so values can exceed
// 255; no normalization or clamping is applied. Higher energy means stronger
// local contrast and a more expensive pixel to remove.
func EnergyMap(gradient []uint8, width, height int) ([][]int, error) {
	if len(gradient) != width*height*4 {
		return nil, fmt.Errorf("%w: gradient has %d bytes, want %d (%dx%dx4)",
			ErrMalformedBuffer, len(gradient), width*height*4, width, height)
	}

	energy := make([][]int, height)
	for row := 0; row < height; row++ {
		energy[row] = make([]int, width)
		for col := 0; col < width; col++ {
			off := (row*width + col) * 4
			energy[row][col] = int(gradient[off]) + int(gradient[off+1]) + int(gradient[off+2])
		}
	}
	return energy, nil
}
