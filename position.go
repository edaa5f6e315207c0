package elayout

import "github.com/tacusan/elayout/geom"

// A named location within a rect: one of the four corners, the four
// edge centers or the center itself.
//
// Positions come in two families. The physical family names edges
// directly ([TopLeft], [RightCenter], ...). The direction-relative
// family uses leading/trailing instead of left/right ([TopLeading],
// [TrailingCenter], ...) and must be resolved against a layout
// [Direction] before it can name a concrete point; see
// [Position.Resolve]().
type Position uint8

// Physical positions.
const (
	TopLeft      Position = iota // (minX, minY)
	TopCenter                    // (midX, minY)
	TopRight                     // (maxX, minY)
	LeftCenter                   // (minX, midY)
	Center                       // (midX, midY)
	RightCenter                  // (maxX, midY)
	BottomLeft                   // (minX, maxY)
	BottomCenter                 // (midX, maxY)
	BottomRight                  // (maxX, maxY)
)

// Direction-relative positions. In a [LeftToRight] layout leading
// resolves to left; in a [RightToLeft] layout it resolves to right.
const (
	TopLeading     Position = iota + 9
	TopTrailing
	LeadingCenter
	TrailingCenter
	BottomLeading
	BottomTrailing
)

// Returns whether the position belongs to the direction-relative
// family (leading/trailing) and needs resolving before use.
func (self Position) IsRelative() bool {
	return self >= TopLeading
}

// Maps a direction-relative position to the physical position it
// refers to under the given layout direction. Physical positions
// are returned unchanged.
func (self Position) Resolve(direction Direction) Position {
	if !self.IsRelative() {
		if self > BottomRight { panic("invalid position") }
		return self
	}

	ltr := (direction == LeftToRight)
	switch self {
	case TopLeading:
		if ltr { return TopLeft }
		return TopRight
	case TopTrailing:
		if ltr { return TopRight }
		return TopLeft
	case LeadingCenter:
		if ltr { return LeftCenter }
		return RightCenter
	case TrailingCenter:
		if ltr { return RightCenter }
		return LeftCenter
	case BottomLeading:
		if ltr { return BottomLeft }
		return BottomRight
	case BottomTrailing:
		if ltr { return BottomRight }
		return BottomLeft
	default:
		panic("invalid position")
	}
}

// Returns the point the position names within the given rect.
//
// This function panics if the position is direction-relative: the
// caller must resolve it first, since only it knows which layout
// direction applies.
func (self Position) PointIn(rect geom.Rect) geom.Point {
	switch self {
	case TopLeft      : return rect.Min
	case TopCenter    : return geom.Point{ X: rect.MidX(),  Y: rect.Min.Y }
	case TopRight     : return geom.Point{ X: rect.Max.X,   Y: rect.Min.Y }
	case LeftCenter   : return geom.Point{ X: rect.Min.X,   Y: rect.MidY() }
	case Center       : return rect.Center()
	case RightCenter  : return geom.Point{ X: rect.Max.X,   Y: rect.MidY() }
	case BottomLeft   : return geom.Point{ X: rect.Min.X,   Y: rect.Max.Y }
	case BottomCenter : return geom.Point{ X: rect.MidX(),  Y: rect.Max.Y }
	case BottomRight  : return rect.Max
	default:
		if self.IsRelative() { panic("unresolved direction-relative position") }
		panic("invalid position")
	}
}

// Returns the mirrored position. Mirroring never crosses families:
// physical positions swap left and right, direction-relative ones
// swap leading and trailing.
func (self Position) Reflected(horizontally, vertically bool) Position {
	out := self
	if horizontally {
		switch out {
		case TopLeft        : out = TopRight
		case TopRight       : out = TopLeft
		case LeftCenter     : out = RightCenter
		case RightCenter    : out = LeftCenter
		case BottomLeft     : out = BottomRight
		case BottomRight    : out = BottomLeft
		case TopLeading     : out = TopTrailing
		case TopTrailing    : out = TopLeading
		case LeadingCenter  : out = TrailingCenter
		case TrailingCenter : out = LeadingCenter
		case BottomLeading  : out = BottomTrailing
		case BottomTrailing : out = BottomLeading
		case TopCenter, Center, BottomCenter: // self-mirroring
		default:
			panic("invalid position")
		}
	}
	if vertically {
		switch out {
		case TopLeft        : out = BottomLeft
		case BottomLeft     : out = TopLeft
		case TopCenter      : out = BottomCenter
		case BottomCenter   : out = TopCenter
		case TopRight       : out = BottomRight
		case BottomRight    : out = TopRight
		case TopLeading     : out = BottomLeading
		case BottomLeading  : out = TopLeading
		case TopTrailing    : out = BottomTrailing
		case BottomTrailing : out = TopTrailing
		case LeftCenter, Center, RightCenter, LeadingCenter, TrailingCenter:
		default:
			panic("invalid position")
		}
	}
	return out
}

// Returns a textual representation of the position.
func (self Position) String() string {
	switch self {
	case TopLeft        : return "TopLeft"
	case TopCenter      : return "TopCenter"
	case TopRight       : return "TopRight"
	case LeftCenter     : return "LeftCenter"
	case Center         : return "Center"
	case RightCenter    : return "RightCenter"
	case BottomLeft     : return "BottomLeft"
	case BottomCenter   : return "BottomCenter"
	case BottomRight    : return "BottomRight"
	case TopLeading     : return "TopLeading"
	case TopTrailing    : return "TopTrailing"
	case LeadingCenter  : return "LeadingCenter"
	case TrailingCenter : return "TrailingCenter"
	case BottomLeading  : return "BottomLeading"
	case BottomTrailing : return "BottomTrailing"
	default:
		return "InvalidPosition"
	}
}
