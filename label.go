package elayout

import "golang.org/x/image/font"

import "github.com/tacusan/elayout/geom"

// A node holding a single line of text. The label doesn't render
// itself (pair it with your text renderer of choice); it exists so
// text participates in layout: labels know their natural size from
// their font face, and [Collapse]() treats empty labels as invisible.
type Label struct {
	Node
	text string
	face font.Face
}

// Creates a label with the given text and font face.
func NewLabel(text string, face font.Face) *Label {
	label := &Label{ text: text, face: face }
	label.alpha = 1
	label.owner = label
	return label
}

// Returns the label's text.
func (self *Label) Text() string { return self.text }

// Changes the label's text. The frame is not updated automatically;
// call [SizeToFit]() if the label should hug its new content.
func (self *Label) SetText(text string) { self.text = text }

// Returns the label's font face, possibly nil.
func (self *Label) Face() font.Face { return self.face }

// Changes the label's font face.
func (self *Label) SetFace(face font.Face) { self.face = face }

// Returns the measured size of the label's text, capped by the
// given constraint. Labels without text or without a face have no
// natural size. Implements [Sizer].
func (self *Label) NaturalSize(max geom.Size) geom.Size {
	if self.text == "" || self.face == nil { return geom.Size{} }

	metrics := self.face.Metrics()
	size := geom.Size{
		Width:  fixedToFloat(font.MeasureString(self.face, self.text)),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
	if max.Width  > 0 && size.Width  > max.Width  { size.Width  = max.Width  }
	if max.Height > 0 && size.Height > max.Height { size.Height = max.Height }
	return size
}
