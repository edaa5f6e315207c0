// UI layout math tends to be written directly against a toolkit's own
// geometry types, which makes the interesting parts (pixel-grid snapping,
// rect placement, angles) hard to reuse and hard to test. This subpackage
// keeps those parts on plain float64 logical coordinates instead.
//
// The geom subpackage defines the [Point], [Vector], [Size], [Rect] and
// [Insets] value types used throughout elayout, alongside the pixel-grid
// snapping functions (see [RoundToPixel]) and the [Angle] type.
//
// Coordinates are logical units, with the y axis growing downwards as in
// [image] and Ebitengine. Device pixels only enter the picture through
// scale factors: a scale of 2 means two device pixels per logical unit,
// and a scale of 0 means "no pixel grid" (snapping becomes a no-op).
package geom
