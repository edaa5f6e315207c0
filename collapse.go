package elayout

// Collapsing is the pre-filter companion to [Distribute](): it takes
// a raw distribution list and removes the entries that shouldn't
// consume space right now, so call sites can declare one layout and
// let visibility drive it.

// Returns a copy of the items list with semantically invisible views
// removed: detached views, hidden nodes, fully transparent nodes,
// labels without text and image boxes without a source.
//
// Dropping a view can leave two spacers adjacent; such runs are
// merged keeping the largest fixed length and the largest flexible
// weight per run. Fixed spacers left at either end of the result are
// dropped too, since with nothing beyond them they no longer space
// anything.
//
// The input slice is never modified.
func Collapse(items []DistributionItem) []DistributionItem {
	// drop invisible views
	visible := make([]DistributionItem, 0, len(items))
	for _, item := range items {
		viewItem, isView := item.(ViewItem)
		if isView && !isVisibleForLayout(viewItem.View) { continue }
		visible = append(visible, item)
	}

	// merge adjacent spacers of the same kind, keeping the larger
	merged := visible[ : 0 : 0]
	for _, item := range visible {
		if len(merged) == 0 {
			merged = append(merged, item)
			continue
		}
		last := merged[len(merged) - 1]
		switch typedItem := item.(type) {
		case Fixed:
			if prev, same := last.(Fixed); same {
				if typedItem > prev { merged[len(merged) - 1] = typedItem }
				continue
			}
		case Flexible:
			if prev, same := last.(Flexible); same {
				if typedItem > prev { merged[len(merged) - 1] = typedItem }
				continue
			}
		}
		merged = append(merged, item)
	}

	// trim fixed spacers at the ends
	for len(merged) > 0 {
		if _, isFixed := merged[0].(Fixed); !isFixed { break }
		merged = merged[1 : ]
	}
	for len(merged) > 0 {
		if _, isFixed := merged[len(merged) - 1].(Fixed); !isFixed { break }
		merged = merged[ : len(merged) - 1]
	}
	return merged
}

// Optional visibility capabilities checked by [Collapse](). All the
// node types in this package implement the relevant ones.
type hider interface { Hidden() bool }
type fader interface { Alpha() float64 }

func isVisibleForLayout(view View) bool {
	if view.Parent() == nil { return false }
	if h, ok := view.(hider); ok && h.Hidden() { return false }
	if f, ok := view.(fader); ok && f.Alpha() == 0 { return false }
	switch typedView := view.(type) {
	case *Label    : if typedView.Text() == "" { return false }
	case *ImageBox : if typedView.Source == nil { return false }
	}
	return true
}
