package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// createContrastImage builds an image split into a black left half and a
// white right half, giving a single strong vertical edge at the midline.
func createContrastImage(width, height int) *carve.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return carve.FromImage(img)
}

func createFlatImage(width, height int, c color.Color) *carve.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return carve.FromImage(img)
}

func TestSobelGradient_BufferShape(t *testing.T) {
	img := createContrastImage(20, 12)

	gradient, err := SobelGradient(DefaultBlurRadius)(img)
	if err != nil {
		t.Fatalf("gradient failed: %v", err)
	}
	if len(gradient) != 20*12*4 {
		t.Fatalf("buffer length: got %d, want %d", len(gradient), 20*12*4)
	}

	// The buffer must be consumable by the energy mapper.
	if _, err := carve.EnergyMap(gradient, 20, 12); err != nil {
		t.Errorf("EnergyMap rejected gradient buffer: %v", err)
	}
}

func TestSobelGradient_EdgeResponse(t *testing.T) {
	img := createContrastImage(40, 20)

	gradient, err := SobelGradient(0)(img)
	if err != nil {
		t.Fatalf("gradient failed: %v", err)
	}
	energy, err := carve.EnergyMap(gradient, 40, 20)
	if err != nil {
		t.Fatalf("EnergyMap failed: %v", err)
	}

	// Response at the contrast boundary must dominate flat regions.
	edge := energy[10][20]
	flat := energy[10][5]
	if edge <= flat {
		t.Errorf("edge energy %d not greater than flat-region energy %d", edge, flat)
	}
	if edge == 0 {
		t.Error("no response at a strong vertical edge")
	}
}

func TestSobelGradient_FlatImage(t *testing.T) {
	img := createFlatImage(16, 16, color.RGBA{120, 130, 140, 255})

	gradient, err := SobelGradient(0)(img)
	if err != nil {
		t.Fatalf("gradient failed: %v", err)
	}
	energy, err := carve.EnergyMap(gradient, 16, 16)
	if err != nil {
		t.Fatalf("EnergyMap failed: %v", err)
	}

	// Interior of a flat image has no gradient. Borders are excluded: edge
	// padding at the image boundary can register a small response.
	if energy[8][8] != 0 {
		t.Errorf("interior energy of flat image: got %d, want 0", energy[8][8])
	}
}

func TestSobelGradient_BlurSoftensResponse(t *testing.T) {
	img := createContrastImage(40, 20)

	sharp, err := SobelGradient(0)(img)
	if err != nil {
		t.Fatalf("sharp gradient failed: %v", err)
	}
	blurred, err := SobelGradient(3.0)(img)
	if err != nil {
		t.Fatalf("blurred gradient failed: %v", err)
	}

	sharpEnergy, _ := carve.EnergyMap(sharp, 40, 20)
	blurredEnergy, _ := carve.EnergyMap(blurred, 40, 20)

	// Blur spreads the edge response across neighboring columns.
	nearEdge := blurredEnergy[10][17]
	if nearEdge == 0 {
		t.Error("blur did not spread edge response to neighboring columns")
	}
	if sharpEnergy[10][20] == 0 {
		t.Error("sharp pass lost the edge entirely")
	}
}

func TestSobelGradient_DrivesCarver(t *testing.T) {
	img := createContrastImage(12, 8)
	c := &carve.Carver{Gradient: SobelGradient(DefaultBlurRadius)}

	out, seam, err := c.CarveOne(img)
	if err != nil {
		t.Fatalf("CarveOne failed: %v", err)
	}
	if out.Width != 11 || out.Height != 8 {
		t.Errorf("dimensions: got %dx%d, want 11x8", out.Width, out.Height)
	}
	if len(seam) != 8 {
		t.Errorf("seam length: got %d, want 8", len(seam))
	}
}
