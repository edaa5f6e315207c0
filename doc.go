// elayout is a package of frame-based layout helpers for Golang UIs,
// designed to be used mainly with the Ebitengine game engine.
//
// Instead of a constraint solver or a retained layout tree, elayout
// gives you a handful of direct operations over sibling frames:
//   - [Distribute]() lays out a mix of views and fixed or flexible
//     spacers along an axis.
//   - [Spread]() divides an axis into equal slots with fixed margins.
//   - [Align]() moves one view so a named [Position] of it lands on a
//     named position of another view.
//   - [AspectRatio] fits and fills sizes and rects.
//
// A minimal usage example:
//   panel := elayout.NewNode()
//   panel.SetFrame(geom.XYWH(0, 0, 320, 64))
//   for _, icon := range icons { panel.AddChild(icon) }
//   elayout.Distribute(panel, elayout.Horizontal, []elayout.DistributionItem{
//       elayout.Flexible(1), elayout.Item(icons[0]),
//       elayout.Flexible(1), elayout.Item(icons[1]),
//       elayout.Flexible(1),
//   })
//
// All the operations respect layout [Direction] (right-to-left layouts
// mirror horizontally) and snap results to the device pixel grid of
// each view's scale factor, so hairline misalignments don't creep in
// on fractional-scale displays.
//
// Layout runs synchronously on whatever goroutine owns the view tree,
// typically Ebitengine's game update; nothing in this package is safe
// for concurrent use over a shared tree.
package elayout
