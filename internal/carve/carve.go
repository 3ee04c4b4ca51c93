package carve

import (
	"fmt"
	"math"
)

// GradientFunc produces a gradient-response buffer for an image: the same
// interleaved four-channel layout and dimensions as the image's own buffer,
// where higher channel values mean stronger local contrast. The production
// implementation wraps an edge-detection filter; tests inject synthetic
// buffers to drive the search deterministically.
type GradientFunc func(*Image) ([]uint8, error)

// StepFunc observes one completed carve step: the 1-based step number, the
// seam that was removed, and the narrowed image. The image must be treated as
// read-only; the next step consumes it.
type StepFunc func(step int, seam Seam, img *Image)

// Carver composes the carving pipeline: gradient filter, energy map, seam
// search, seam removal. The zero value is not usable; Gradient must be set.
//
// A Carver holds no per-image state and may be shared, but individual carve
// calls are synchronous and must not run concurrently on the same image.
type Carver struct {
	// Gradient supplies edge responses for the current image each step.
	// Energy is recomputed fresh every iteration; nothing is cached.
	Gradient GradientFunc

	// OnStep, if non-nil, is called after every successful seam removal.
	OnStep StepFunc
}

// CarveOne performs a single carve step: compute the gradient and energy for
// the image, find the minimum-energy seam, and remove it. Returns the
// narrowed image and the seam that was removed. The input image is never
// modified, so a failed step leaves the caller's data intact.
func (c *Carver) CarveOne(img *Image) (*Image, Seam, error) {
	seam, err := c.findSeam(img)
	if err != nil {
		return nil, nil, err
	}
	out, err := RemoveSeam(img, seam)
	if err != nil {
		return nil, nil, err
	}
	return out, seam, nil
}

// NextSeam computes the seam the next carve step would remove, without
// removing it.
func (c *Carver) NextSeam(img *Image) (Seam, error) {
	return c.findSeam(img)
}

// Carve removes floor(width*fraction) seams, feeding each step's output into
// the next, and returns the final narrowed image.
//
// The count is clamped to width-1 so the image never degenerates to zero
// width; a fraction of zero (or one floor-ing to zero removals) returns the
// input image unchanged. Negative fractions are rejected with ErrBadReduction.
func (c *Carver) Carve(img *Image, fraction float64) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if fraction < 0 || math.IsNaN(fraction) {
		return nil, fmt.Errorf("%w: %v", ErrBadReduction, fraction)
	}

	n := int(float64(img.Width) * fraction)
	if n > img.Width-1 {
		n = img.Width - 1
	}
	if n == 0 {
		return img, nil
	}

	cur := img
	for step := 1; step <= n; step++ {
		next, seam, err := c.CarveOne(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d of %d: %w", step, n, err)
		}
		if c.OnStep != nil {
			c.OnStep(step, seam, next)
		}
		cur = next
	}
	return cur, nil
}

// findSeam validates the image, runs the gradient filter, and searches the
// resulting energy grid.
func (c *Carver) findSeam(img *Image) (Seam, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.Width <= 1 || img.Height <= 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateImage, img.Width, img.Height)
	}

	gradient, err := c.Gradient(img)
	if err != nil {
		return nil, fmt.Errorf("gradient filter: %w", err)
	}
	energy, err := EnergyMap(gradient, img.Width, img.Height)
	if err != nil {
		return nil, err
	}
	return FindSeam(energy)
}
