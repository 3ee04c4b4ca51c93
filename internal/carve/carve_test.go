package carve

import (
	"bytes"
	"errors"
	"testing"
)

// identityGradient treats the image's own samples as edge responses. It is
// deterministic and content-dependent, so successive carve steps see
// different energy grids, like a real filter.
func identityGradient(img *Image) ([]uint8, error) {
	return append([]uint8(nil), img.Pix...), nil
}

func TestCarveOne(t *testing.T) {
	c := &Carver{Gradient: identityGradient}
	img := testImage(6, 4)

	out, seam, err := c.CarveOne(img)
	if err != nil {
		t.Fatalf("CarveOne failed: %v", err)
	}

	if out.Width != 5 || out.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 5x4", out.Width, out.Height)
	}
	if len(seam) != 4 {
		t.Errorf("seam length: got %d, want 4", len(seam))
	}
	if err := out.Validate(); err != nil {
		t.Errorf("output invariant: %v", err)
	}
}

func TestCarve_MatchesRepeatedSingleSteps(t *testing.T) {
	const steps = 3
	img := testImage(8, 5)

	// N explicit single steps.
	c := &Carver{Gradient: identityGradient}
	manual := img
	for i := 0; i < steps; i++ {
		next, _, err := c.CarveOne(manual)
		if err != nil {
			t.Fatalf("CarveOne step %d failed: %v", i+1, err)
		}
		manual = next
	}

	// One loop call removing the same count: floor(8 * 0.4) = 3.
	looped, err := c.Carve(img, 0.4)
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	if looped.Width != manual.Width || !bytes.Equal(looped.Pix, manual.Pix) {
		t.Errorf("loop and single steps diverge: %dx%d vs %dx%d",
			looped.Width, looped.Height, manual.Width, manual.Height)
	}
}

func TestCarve_ZeroReduction(t *testing.T) {
	c := &Carver{Gradient: identityGradient}
	img := testImage(5, 5)
	before := append([]uint8(nil), img.Pix...)

	out, err := c.Carve(img, 0)
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}
	if out.Width != 5 || !bytes.Equal(out.Pix, before) {
		t.Error("zero reduction changed the image")
	}

	// A fraction small enough to floor to zero removals is also a no-op.
	out, err = c.Carve(img, 0.1)
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}
	if out.Width != 5 {
		t.Errorf("width: got %d, want 5", out.Width)
	}
}

func TestCarve_FullReductionClamped(t *testing.T) {
	c := &Carver{Gradient: identityGradient}

	for _, fraction := range []float64{1.0, 1.5, 100} {
		out, err := c.Carve(testImage(6, 4), fraction)
		if err != nil {
			t.Fatalf("Carve(%v) failed: %v", fraction, err)
		}
		if out.Width != 1 {
			t.Errorf("Carve(%v): width %d, want 1 (clamped to width-1 removals)", fraction, out.Width)
		}
		if out.Height != 4 {
			t.Errorf("Carve(%v): height %d, want 4", fraction, out.Height)
		}
	}
}

func TestCarve_NegativeReduction(t *testing.T) {
	c := &Carver{Gradient: identityGradient}
	if _, err := c.Carve(testImage(5, 5), -0.2); !errors.Is(err, ErrBadReduction) {
		t.Errorf("got %v, want ErrBadReduction", err)
	}
}

func TestCarve_DegenerateImages(t *testing.T) {
	c := &Carver{Gradient: identityGradient}

	tests := []struct {
		name string
		img  *Image
	}{
		{"width 1", testImage(1, 5)},
		{"height 1", testImage(5, 1)},
		{"empty", NewImage(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := c.CarveOne(tt.img)
			if !errors.Is(err, ErrDegenerateImage) {
				t.Errorf("got %v, want ErrDegenerateImage", err)
			}
		})
	}
}

func TestCarve_MalformedImage(t *testing.T) {
	c := &Carver{Gradient: identityGradient}
	img := &Image{Pix: make([]uint8, 7), Width: 2, Height: 2}

	if _, _, err := c.CarveOne(img); !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("CarveOne: got %v, want ErrMalformedBuffer", err)
	}
	if _, err := c.Carve(img, 0.5); !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("Carve: got %v, want ErrMalformedBuffer", err)
	}
}

func TestCarve_ShortGradientRejected(t *testing.T) {
	c := &Carver{Gradient: func(img *Image) ([]uint8, error) {
		return make([]uint8, 4), nil
	}}

	if _, _, err := c.CarveOne(testImage(4, 4)); !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("got %v, want ErrMalformedBuffer", err)
	}
}

func TestCarve_OnStepObserver(t *testing.T) {
	var steps []int
	var widths []int
	c := &Carver{
		Gradient: identityGradient,
		OnStep: func(step int, seam Seam, img *Image) {
			steps = append(steps, step)
			widths = append(widths, img.Width)
		},
	}

	if _, err := c.Carve(testImage(8, 3), 0.5); err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	if len(steps) != 4 {
		t.Fatalf("observer calls: got %d, want 4", len(steps))
	}
	for i := range steps {
		if steps[i] != i+1 {
			t.Errorf("step %d reported as %d", i+1, steps[i])
		}
		if widths[i] != 8-(i+1) {
			t.Errorf("step %d width: got %d, want %d", i+1, widths[i], 8-(i+1))
		}
	}
}
