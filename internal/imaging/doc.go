// Package imaging connects the carving core to real images.
//
// It supplies the pieces the core deliberately leaves external: loading and
// caching decoded images, the edge-detection filter that produces gradient
// responses (Gaussian blur followed by a Sobel pass, both from bild), saving
// carved output, and base64-PNG previews of the energy grid and of a pending
// seam.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner;
// X increases rightward and Y increases downward, matching the carve package.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are pure and
// may be called concurrently on different images.
package imaging
