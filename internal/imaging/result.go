package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// PreviewResult contains a rendered preview encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CarveResult describes the outcome of a carving run.
type CarveResult struct {
	OriginalWidth  int    `json:"original_width"`
	OriginalHeight int    `json:"original_height"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	SeamsRemoved   int    `json:"seams_removed"`
	SavedPath      string `json:"saved_path,omitempty"`
	ImageBase64    string `json:"image_base64,omitempty"`
	MimeType       string `json:"mime_type,omitempty"`
}

// StepResult describes a single carve step: the seam that was removed and
// the image's dimensions after removal.
type StepResult struct {
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	SeamEnergy  int        `json:"seam_energy"`
	Seam        carve.Seam `json:"seam"`
	SavedPath   string     `json:"saved_path,omitempty"`
	ImageBase64 string     `json:"image_base64,omitempty"`
	MimeType    string     `json:"mime_type,omitempty"`
}

// EncodePNG renders an image to a base64-encoded PNG string.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// newPreview scales an image if requested and wraps it in a PreviewResult.
// scale values of 0 and 1 leave the image at its native size.
func newPreview(img image.Image, scale float64) (*PreviewResult, error) {
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	encoded, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// SaveImage writes an image to disk, picking the encoder from the file
// extension (.png, .jpg, .gif, ...).
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
