// A small subpackage for unit interpolation, the "how far along are
// we" values that drive transitions, scrubbing and any layout that
// morphs between two states.
//
// The central type is [Value], a float64 conceptually within [0, 1].
// Values are mapped onto output ranges with [Value.Interpolate](),
// shaped with easing curves (see [Curve]) and renormalized against
// sub-ranges when a single progress value drives several staggered
// effects.
//
// This subpackage is pure math and does not depend on the rest of
// elayout.
package interp
