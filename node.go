package elayout

import "github.com/tacusan/elayout/geom"

// The built-in [View] implementation: a plain rectangular node in a
// tree of siblings. Nodes don't draw anything by themselves; they
// exist to be sized, positioned and distributed, and to parent other
// nodes. See [Label] and [ImageBox] for nodes with content.
//
// The zero value is not usable directly; create nodes with [NewNode]().
type Node struct {
	frame    geom.Rect
	parent   View
	children []View

	transform Transform
	alpha     float64
	scale     float64 // 0 = inherit, negative = no pixel grid
	direction Direction
	hidden       bool
	directionSet bool

	// outer view when the node is embedded in another type, so parent
	// links point to the [Label] or [ImageBox] instead of its inner
	// node; set by the concrete constructors
	owner View
}

// Unexported hooks that let the tree operations work through [View]
// values while keeping the hierarchy mutation logic in one place.
type adoptable interface {
	setParent(parent View)
}
type childRemover interface {
	removeChild(child View)
}

// Creates a fully opaque, visible node with a zero frame.
func NewNode() *Node {
	return &Node{ alpha: 1 }
}

// Returns the node's untransformed frame in its parent's coordinate
// space.
func (self *Node) Frame() geom.Rect { return self.frame }

// Sets the node's untransformed frame. The visual transform, if any,
// is unaffected.
func (self *Node) SetFrame(frame geom.Rect) { self.frame = frame }

// Returns the node's parent view, or nil if the node is detached.
func (self *Node) Parent() View { return self.parent }

// Returns the node's children. The returned slice is the node's own;
// treat it as read-only.
func (self *Node) Children() []View { return self.children }

// Appends the given view as the node's last child, detaching it from
// its previous parent first if needed. This function panics if the
// child's type doesn't support reparenting (any type embedding [Node]
// does) or if adding would create a cycle.
func (self *Node) AddChild(child View) {
	target, canAdopt := child.(adoptable)
	if !canAdopt { panic("child view doesn't support reparenting") }
	for ancestor := self.asView(); ancestor != nil; ancestor = ancestor.Parent() {
		if ancestor == child { panic("can't add an ancestor as a child") }
	}

	if child.Parent() != nil { detach(child) }
	target.setParent(self.asView())
	self.children = append(self.children, child)
}

// Detaches the node from its parent. Detached nodes are considered
// invisible by [Collapse]() and can't take part in distributions.
func (self *Node) RemoveFromParent() {
	if self.parent == nil { return }
	detach(self.asView())
}

func (self *Node) asView() View {
	if self.owner != nil { return self.owner }
	return self
}

func detach(child View) {
	remover, canRemove := child.Parent().(childRemover)
	if canRemove { remover.removeChild(child) }
	child.(adoptable).setParent(nil)
}

func (self *Node) setParent(parent View) {
	self.parent = parent
}

func (self *Node) removeChild(child View) {
	for i, current := range self.children {
		if current != child { continue }
		self.children = append(self.children[ : i], self.children[i + 1 : ]...)
		return
	}
}

// Returns whether the node is hidden. Hidden nodes keep their frame
// but are skipped by [Collapse]().
func (self *Node) Hidden() bool { return self.hidden }

// Hides or shows the node.
func (self *Node) SetHidden(hidden bool) { self.hidden = hidden }

// Returns the node's opacity within [0, 1].
func (self *Node) Alpha() float64 { return self.alpha }

// Changes the node's opacity. Fully transparent nodes are treated
// like hidden ones by [Collapse]().
func (self *Node) SetAlpha(alpha float64) {
	if alpha < 0 { alpha = 0 }
	if alpha > 1 { alpha = 1 }
	self.alpha = alpha
}

// Returns the node's visual transform. Layout operations ignore it;
// it only applies when drawing.
func (self *Node) Transform() Transform { return self.transform }

// Replaces the node's visual transform.
func (self *Node) SetTransform(transform Transform) { self.transform = transform }

// Returns the node's layout direction. Unless explicitly set, the
// direction is inherited from the parent chain, defaulting to
// [LeftToRight] for detached roots.
func (self *Node) LayoutDirection() Direction {
	if self.directionSet { return self.direction }
	if self.parent != nil { return self.parent.LayoutDirection() }
	return LeftToRight
}

// Fixes the node's layout direction, stopping inheritance.
func (self *Node) SetLayoutDirection(direction Direction) {
	self.direction = direction
	self.directionSet = true
}

// Returns the node's pixel-snapping scale factor. Unless explicitly
// set, the scale is inherited from the parent chain; detached roots
// report the display scale of the host (1 without Ebitengine).
// Negative explicit scales report 0, i.e. "no pixel grid".
func (self *Node) Scale() float64 {
	if self.scale < 0 { return 0 }
	if self.scale > 0 { return self.scale }
	if self.parent != nil { return self.parent.Scale() }
	return displayScale()
}

// Overrides the node's scale factor. Zero restores inheritance and
// negative values disable pixel snapping for the node.
func (self *Node) SetScale(scale float64) {
	self.scale = scale
}
