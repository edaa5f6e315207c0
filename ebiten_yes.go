//go:build !gtxt

package elayout

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tacusan/elayout/geom"

// Aliases to allow compiling the package without Ebitengine (gtxt
// version).
//
// Without Ebitengine, SourceImage defaults to [image.Image].
type SourceImage = *ebiten.Image

// The visual transform carried by nodes. Layout ignores it entirely
// (frames are untransformed by definition); it only matters when
// drawing.
//
// Without Ebitengine, Transform defaults to an empty struct.
type Transform = ebiten.GeoM

// Master scale factor reported by detached root nodes that have no
// explicit scale of their own.
func displayScale() float64 {
	return ebiten.DeviceScaleFactor()
}

func sourceImageSize(source SourceImage) geom.Size {
	if source == nil { return geom.Size{} }
	width, height := source.Size()
	return geom.Size{ Width: float64(width), Height: float64(height) }
}

// Draws the box's source image into the target, scaled to the box's
// frame, with the node's visual transform and alpha applied. The
// frame is interpreted in the coordinate space of the target, i.e.
// the box's absolute position is the sum of its ancestors' frame
// origins.
func (self *ImageBox) Draw(target *ebiten.Image) {
	if self.Source == nil || self.Hidden() || self.Alpha() == 0 { return }
	size := sourceImageSize(self.Source)
	if size.Empty() { return }

	frame := self.Frame()
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(frame.Width()/size.Width, frame.Height()/size.Height)
	transform := self.Transform()
	opts.GeoM.Concat(transform)
	origin := absoluteOrigin(self)
	opts.GeoM.Translate(origin.Dx, origin.Dy)
	opts.ColorM.Scale(1, 1, 1, self.Alpha())
	target.DrawImage(self.Source, &opts)
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
