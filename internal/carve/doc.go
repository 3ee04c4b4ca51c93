// Package carve implements content-aware image narrowing (seam carving).
//
// A carve step narrows an image by one pixel column: it scores every pixel
// with an "energy" value derived from a gradient-response buffer, finds the
// connected top-to-bottom path of minimum total energy, and removes that
// path's pixel from every row. Repeating the step shrinks the image while
// preserving high-contrast structure better than uniform scaling or cropping.
//
// # Pipeline
//
// One step runs three stages, composed by Carver:
//
//	image -> gradient filter -> EnergyMap -> FindSeam -> RemoveSeam -> narrower image
//
// The gradient filter is an injected capability (GradientFunc): the package
// never computes edge responses itself, so the core can be exercised with
// synthetic energy inputs. A production filter built on Sobel lives in the
// imaging package.
//
// # Search behavior
//
// FindSeam preserves two deliberate quirks of the reference implementation:
// the search enters the grid at the middle of the top row rather than its
// cheapest cell, and moves only diagonally (down-left or down-right, never
// straight down). Ties in accumulated cost resolve in discovery order.
// Callers that depend on exact seam choices depend on both behaviors.
//
// # Error model
//
// Every operation validates its inputs before touching pixel data and either
// returns a fully consistent result or a sentinel error (ErrMalformedBuffer,
// ErrDegenerateImage, ErrNoSeam, ErrBadReduction) with the caller's image
// unmodified. The package never logs and never retries.
//
// # Concurrency
//
// Steps are synchronous and not re-entrant: do not invoke CarveOne or Carve
// concurrently on the same image. Distinct images may be carved in parallel.
package carve
