package elayout

import "github.com/tacusan/elayout/geom"

// A node displaying an image. With Ebitengine the source is an
// *ebiten.Image; on the gtxt build it is a stdlib [image.Image].
// Boxes without a source are treated as invisible by [Collapse]().
type ImageBox struct {
	Node
	Source SourceImage
}

// Creates an image box for the given source image, which may be nil.
func NewImageBox(source SourceImage) *ImageBox {
	box := &ImageBox{ Source: source }
	box.alpha = 1
	box.owner = box
	return box
}

// Returns the source image's size, shrunk to fit the given
// constraint while preserving its aspect ratio. Sourceless boxes
// have no natural size. Implements [Sizer].
func (self *ImageBox) NaturalSize(max geom.Size) geom.Size {
	size := sourceImageSize(self.Source)
	if size.Empty() { return geom.Size{} }

	overWidth  := (max.Width  > 0 && size.Width  > max.Width)
	overHeight := (max.Height > 0 && size.Height > max.Height)
	if !overWidth && !overHeight { return size }

	bound := max
	if bound.Width  <= 0 { bound.Width  = size.Width  }
	if bound.Height <= 0 { bound.Height = size.Height }
	return RatioOf(size).SizeToFit(bound, 0) // snapping deferred to SizeToFit()
}
