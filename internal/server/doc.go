// Package server implements the MCP (Model Context Protocol) server exposing
// seam-carving tools over stdin/stdout.
//
// The server speaks JSON-RPC 2.0, one message per line: requests arrive on
// stdin, responses leave on stdout, and all logging goes to stderr so it
// never corrupts the protocol stream.
//
// # Supported Methods
//
//   - initialize: protocol handshake, reports server info and capabilities
//   - notifications/initialized: client acknowledgment (no response)
//   - tools/list: enumerate the available tools and their JSON schemas
//   - tools/call: execute a tool with JSON arguments
//   - ping: liveness check
//
// # Tools
//
//   - image_info: dimensions, format, and file size of an image
//   - carve_image: remove a fractional share of an image's width seam by seam
//   - carve_step: remove exactly one seam and report its coordinates
//   - energy_map: false-color preview of the current energy grid
//   - seam_preview: the image with the next seam highlighted, nothing removed
//
// # Error Handling
//
// Tool execution failures return JSON-RPC error -32000 with the underlying
// error text; malformed parameters return -32602; unknown methods -32601.
// Carving errors are signaled by the carve package's sentinel errors and
// surface verbatim so callers can distinguish degenerate inputs from internal
// faults.
package server
