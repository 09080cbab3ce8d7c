package service

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// Split divides target — which must be a non-minibuffer leaf — into two
// adjacent siblings. size, when non-nil, is the new size (in screen
// cells) target keeps; when nil it defaults to half of target's relevant
// dimension, rounded up for a horizontal split so the left window absorbs
// the separator column. horizontal selects the split axis: true puts the
// two windows side by side (an h-combination, dividing width); false
// stacks them top/bottom (a v-combination, dividing height).
//
// The new sibling is inserted as target.Next, views the same buffer as
// target (via BindBuffer, so it gets its own pointm/start markers), and is
// returned.
func Split(t *model.Tree, cfg value.Config, src buffer.Source, target model.Handle, size *int, horizontal bool) (model.Handle, error) {
	targetNode := t.Node(target)
	scr := t.Screen(targetNode.Screen)

	if scr.Minibuffer == target {
		return model.NoHandle, value.ErrMinibufferOperation
	}
	if scr.NoSplit {
		return model.NoHandle, value.ErrUnsplittableScreen
	}

	var dim, minDim int
	if horizontal {
		dim, minDim = targetNode.Width, cfg.WindowMinWidth
	} else {
		dim, minDim = targetNode.Height, cfg.WindowMinHeight
	}

	sz := dim / 2
	if size != nil {
		sz = *size
	} else if horizontal && dim%2 != 0 {
		sz++ // left half absorbs the separator column
	}
	remainder := dim - sz
	if sz < minDim || remainder < minDim {
		return model.NoHandle, value.ErrMinSizeViolation
	}

	desiredKind := model.VCombination
	if horizontal {
		desiredKind = model.HCombination
	}

	parent := targetNode.Parent
	if parent == model.NoHandle || t.Node(parent).Kind != desiredKind {
		parent = MakeDummyParent(t, target, desiredKind)
		targetNode = t.Node(target) // MakeDummyParent mutated target's links
	}

	newLeaf := t.NewLeaf(targetNode.Screen)
	newNode := t.Node(newLeaf)

	newNode.Parent = parent
	newNode.Next = targetNode.Next
	if newNode.Next != model.NoHandle {
		t.Node(newNode.Next).Prev = newLeaf
	}
	newNode.Prev = target
	targetNode.Next = newLeaf

	if horizontal {
		newNode.Top, newNode.Height = targetNode.Top, targetNode.Height
		newNode.Width = dim - sz
		targetNode.Width = sz
		newNode.Left = targetNode.Left + sz
	} else {
		newNode.Left, newNode.Width = targetNode.Left, targetNode.Width
		newNode.Height = dim - sz
		targetNode.Height = sz
		newNode.Top = targetNode.Top + sz
	}

	t.WindowsOrBuffersChanged++

	if err := BindBuffer(t, src, newLeaf, targetNode.BufferID); err != nil {
		return model.NoHandle, err
	}

	return newLeaf, nil
}

// Delete removes w from the display, donating its space to a sibling and
// collapsing its parent if that leaves a single child. If w was selected,
// the next window (by canonical order, excluding minibuffers) is
// selected first. Returns ErrMinibufferOperation for the minibuffer window
// and ErrSoleOrdinaryWindow when w is the screen's last ordinary window —
// on a screen with a minibuffer that window's Parent is the minibuffer
// v-combination, not NoHandle, so the check counts ordinary leaves rather
// than testing Parent directly (invariant 5: a screen always keeps at
// least one ordinary window).
func Delete(t *model.Tree, cfg value.Config, src buffer.Source, w model.Handle) error {
	n := t.Node(w)
	scr := t.Screen(n.Screen)

	if scr.Minibuffer == w {
		return value.ErrMinibufferOperation
	}
	if soleOrdinaryLeaf(t, scr, w) {
		return value.ErrSoleOrdinaryWindow
	}

	parent := n.Parent
	parentNode := t.Node(parent)

	t.WindowsOrBuffersChanged++

	if scr.Selected == w {
		order := ScreenOrder{Screens: t.Screens()}
		next := Next(t, w, value.MiniBufferNever, order, false)
		if err := Select(t, src, next); err != nil {
			return err
		}
		scr = t.Screen(n.Screen)
	}

	if n.IsLeaf() {
		unshowBuffer(t, src, w)
		if n.Pointm != nil {
			src.UnchainMarker(n.Pointm)
		}
		if n.Start != nil {
			src.UnchainMarker(n.Start)
		}
		n.Pointm, n.Start = nil, nil
		n.BufferID = ""
	}

	prevSib, nextSib := n.Prev, n.Next
	Unlink(t, w)

	sib := prevSib
	if sib == model.NoHandle {
		sib = nextSib
		sibNode := t.Node(sib)
		sibNode.Top, sibNode.Left = n.Top, n.Left
	}

	switch parentNode.Kind {
	case model.VCombination:
		if err := SetHeight(t, cfg, src, sib, t.Node(sib).Height+n.Height, true); err != nil {
			return err
		}
	case model.HCombination:
		if err := SetWidth(t, cfg, src, sib, t.Node(sib).Width+n.Width, true); err != nil {
			return err
		}
	}

	t.Free(w)

	onlyChild := parentNode.FirstChild()
	if onlyChild != model.NoHandle && t.Node(onlyChild).Next == model.NoHandle {
		ReplaceNode(t, parent, onlyChild)
		t.Free(parent)
	}

	return nil
}

// soleOrdinaryLeaf reports whether w is the only non-minibuffer leaf on its
// screen, in which case deleting it would leave the screen with no
// ordinary window at all.
func soleOrdinaryLeaf(t *model.Tree, scr *model.Screen, w model.Handle) bool {
	for _, l := range t.Leaves(scr.Root) {
		if l != w && l != scr.Minibuffer {
			return false
		}
	}
	return true
}

// DeleteOtherWindows deletes every ordinary window on w's screen except w
// itself, wherever it sits in the tree; the screen's minibuffer window is
// kept.
func DeleteOtherWindows(t *model.Tree, cfg value.Config, src buffer.Source, w model.Handle) error {
	scr := t.Screen(t.Node(w).Screen)
	for {
		leaves := t.Leaves(scr.Root)
		victim := model.NoHandle
		for _, l := range leaves {
			if l != w && l != scr.Minibuffer {
				victim = l
				break
			}
		}
		if victim == model.NoHandle {
			break
		}
		if err := Delete(t, cfg, src, victim); err != nil {
			return err
		}
	}
	return Select(t, src, w)
}

// DeleteWindowsOn deletes every window (across every screen in order)
// showing buf.
func DeleteWindowsOn(t *model.Tree, cfg value.Config, src buffer.Source, buf buffer.ID) error {
	for {
		victim := model.NoHandle
		for _, scrH := range t.Screens() {
			scr := t.Screen(scrH)
			for _, l := range t.Leaves(scr.Root) {
				if t.Node(l).BufferID == buf {
					victim = l
					break
				}
			}
			if victim != model.NoHandle {
				break
			}
		}
		if victim == model.NoHandle {
			return nil
		}
		if err := Delete(t, cfg, src, victim); err != nil {
			return err
		}
	}
}

// ReplaceBufferInWindows returns every window (across every screen in
// order) showing buf. It does not rebind them: callers supply the
// replacement via BindBuffer themselves.
func ReplaceBufferInWindows(t *model.Tree, buf buffer.ID) []model.Handle {
	var affected []model.Handle
	for _, scrH := range t.Screens() {
		scr := t.Screen(scrH)
		for _, l := range t.Leaves(scr.Root) {
			if t.Node(l).BufferID == buf {
				affected = append(affected, l)
			}
		}
	}
	return affected
}
