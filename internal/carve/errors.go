package carve

import "errors"

var (
	// ErrMalformedBuffer reports a pixel or gradient buffer whose length does
	// not match the declared width*height*4 shape.
	ErrMalformedBuffer = errors.New("carve: buffer length inconsistent with dimensions")

	// ErrDegenerateImage reports an image too small to carve (width or height
	// of one pixel or less).
	ErrDegenerateImage = errors.New("carve: image too small to carve")

	// ErrNoSeam reports that the seam search exhausted its frontier without
	// reaching the bottom row. A well-formed non-empty grid always admits a
	// seam, so this signals an internal fault or a malformed grid, never a
	// condition to retry.
	ErrNoSeam = errors.New("carve: no seam found")

	// ErrBadReduction reports a negative width-reduction fraction.
	ErrBadReduction = errors.New("carve: reduction fraction must not be negative")

	// ErrInvalidSeam reports a seam that does not cover every row exactly
	// once with in-bounds, path-connected columns.
	ErrInvalidSeam = errors.New("carve: invalid seam")
)
