//go:build gtxt

package elayout

import "image"
import stdraw "image/draw"

import "golang.org/x/image/draw"

import "github.com/tacusan/elayout/geom"

type SourceImage = image.Image

// Without Ebitengine there is no visual transform model; nodes carry
// an empty placeholder so code compiles identically on both builds.
type Transform struct{}

// Without Ebitengine there is no display to query, so detached roots
// default to a 1:1 pixel grid.
func displayScale() float64 { return 1 }

func sourceImageSize(source SourceImage) geom.Size {
	if source == nil { return geom.Size{} }
	bounds := source.Bounds()
	return geom.Size{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}
}

// Draws the box's source image into the target, scaled to the box's
// frame. The gtxt version ignores transforms and alpha blending
// subtleties; it exists mostly for tests and headless tools.
func (self *ImageBox) Draw(target stdraw.Image) {
	if self.Source == nil || self.Hidden() || self.Alpha() == 0 { return }
	if sourceImageSize(self.Source).Empty() { return }

	origin := absoluteOrigin(self) // already includes the box's own frame origin
	size := self.Frame().Size()
	targetRect := image.Rect(
		int(origin.Dx), int(origin.Dy),
		int(origin.Dx + size.Width), int(origin.Dy + size.Height),
	)
	draw.ApproxBiLinear.Scale(target, targetRect, self.Source, self.Source.Bounds(), stdraw.Over, nil)
}

// Frame origin in root coordinates, accumulated through the parent
// chain.
func absoluteOrigin(view View) geom.Vector {
	origin := geom.Vector{}
	for view != nil {
		min := view.Frame().Min
		origin.Dx += min.X
		origin.Dy += min.Y
		view = view.Parent()
	}
	return origin
}
