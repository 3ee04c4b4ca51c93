package carve

import "fmt"

// RemoveSeam returns a copy of the image one pixel narrower, with the seam's
// pixel deleted from every row. The input image is never modified; on any
// validation failure it is returned untouched alongside the error.
//
// The seam must cover rows 0..Height-1 exactly once, in order, with in-bounds
// columns that differ by at most one between consecutive rows. Rather than
// splicing the original buffer in place (which would force back-to-front
// offset bookkeeping), the output buffer is built fresh: for each row the
// samples left of the seam pixel and right of it are copied as two runs.
func RemoveSeam(img *Image, seam Seam) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.Width <= 1 || img.Height <= 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateImage, img.Width, img.Height)
	}
	if err := validateSeam(seam, img.Width, img.Height); err != nil {
		return nil, err
	}

	out := NewImage(img.Width-1, img.Height)
	for row := 0; row < img.Height; row++ {
		src := img.Pix[img.offset(row, 0) : img.offset(row, 0)+img.Width*4]
		dst := out.Pix[out.offset(row, 0) : out.offset(row, 0)+out.Width*4]
		cut := seam[row].Col * 4
		copy(dst[:cut], src[:cut])
		copy(dst[cut:], src[cut+4:])
	}
	return out, nil
}

// validateSeam checks the seam covers every row exactly once, in row order,
// with in-bounds columns and |column delta| <= 1 between consecutive rows.
func validateSeam(seam Seam, width, height int) error {
	if len(seam) != height {
		return fmt.Errorf("%w: %d cells for %d rows", ErrInvalidSeam, len(seam), height)
	}
	for row, c := range seam {
		if c.Row != row {
			return fmt.Errorf("%w: cell %d has row %d, want %d", ErrInvalidSeam, row, c.Row, row)
		}
		if c.Col < 0 || c.Col >= width {
			return fmt.Errorf("%w: row %d column %d outside width %d", ErrInvalidSeam, row, c.Col, width)
		}
		if row > 0 {
			delta := c.Col - seam[row-1].Col
			if delta < -1 || delta > 1 {
				return fmt.Errorf("%w: rows %d-%d jump %d columns", ErrInvalidSeam, row-1, row, delta)
			}
		}
	}
	return nil
}
