// Package render turns the stored N-dimensional lines of a scene into 2-D
// segments on a square drawing surface, and defines the Surface interface
// that backends (SVG, DXF, raster) implement.
//
// Segments are recomputed from the authoritative coordinates on every call;
// nothing projected is cached between frames.
package render
