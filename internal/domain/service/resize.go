package service

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// apportion redistributes a total of oldTotal, split across sizes, into a
// new total of newTotal, preserving relative proportions. It is the shifted-
// add rounding rule: each cumulative old boundary opos maps to
// ((opos*newTotal)<<1 + oldTotal) / (oldTotal<<1), which always lands the
// final boundary exactly on newTotal regardless of rounding along the way.
// The returned slice always sums to newTotal.
func apportion(oldTotal, newTotal int, sizes []int) []int {
	out := make([]int, len(sizes))
	if oldTotal <= 0 {
		// Nothing to apportion proportionally to; hand everything to the
		// last slot so the sum still comes out exact.
		if len(out) > 0 {
			out[len(out)-1] = newTotal
		}
		return out
	}
	lastBot, lastOBot := 0, 0
	for i, s := range sizes {
		opos := lastOBot + s
		pos := (((opos * newTotal) << 1) + oldTotal) / (oldTotal << 1)
		out[i] = pos - lastBot
		lastBot = pos
		lastOBot = opos
	}
	return out
}

// SetHeight sets node's height to newHeight and, if node is a combination,
// apportions the change across its children so the subtree stays internally
// consistent (v-combinations split the delta proportionally across
// children; h-combinations simply propagate the same height to each child,
// since height is the shared dimension along that axis).
//
// When nodelete is false and the new height would put node below the
// configured minimum, node is deleted instead (unless it is a screen's
// root, which has no parent to donate space back to). Children that end up
// below the minimum are handled with a two-pass scheme: the first pass
// forces nodelete so no child vanishes mid-apportionment, and — only when
// the caller's own nodelete was false — a second pass re-applies each
// child's just-computed height with nodelete false, so oversquashed children
// are deleted now that every sibling's geometry is final.
func SetHeight(t *model.Tree, cfg value.Config, src buffer.Source, node model.Handle, newHeight int, nodelete bool) error {
	n := t.Node(node)

	if !nodelete && newHeight < cfg.WindowMinHeight && n.Parent != model.NoHandle {
		return Delete(t, cfg, src, node)
	}

	oldHeight := n.Height
	n.Height = newHeight

	switch n.Kind {
	case model.HCombination:
		for c := n.HChild; c != model.NoHandle; c = t.Node(c).Next {
			t.Node(c).Top = n.Top
			if err := SetHeight(t, cfg, src, c, newHeight, true); err != nil {
				return err
			}
		}
	case model.VCombination:
		var children []model.Handle
		var heights []int
		for c := n.VChild; c != model.NoHandle; c = t.Node(c).Next {
			children = append(children, c)
			heights = append(heights, t.Node(c).Height)
		}
		newHeights := apportion(oldHeight, newHeight, heights)

		top := n.Top
		for i, c := range children {
			t.Node(c).Top = top
			if err := SetHeight(t, cfg, src, c, newHeights[i], true); err != nil {
				return err
			}
			top += newHeights[i]
		}
		if !nodelete {
			for _, c := range children {
				if !t.Valid(c) {
					continue
				}
				if err := SetHeight(t, cfg, src, c, t.Node(c).Height, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SetWidth is SetHeight's mirror along the horizontal axis: v-combinations
// (stacked top/bottom) propagate width unchanged to every child, while
// h-combinations (side by side) apportion the change across children's
// widths.
func SetWidth(t *model.Tree, cfg value.Config, src buffer.Source, node model.Handle, newWidth int, nodelete bool) error {
	n := t.Node(node)

	if !nodelete && newWidth < cfg.WindowMinWidth && n.Parent != model.NoHandle {
		return Delete(t, cfg, src, node)
	}

	oldWidth := n.Width
	n.Width = newWidth

	switch n.Kind {
	case model.VCombination:
		for c := n.VChild; c != model.NoHandle; c = t.Node(c).Next {
			t.Node(c).Left = n.Left
			if err := SetWidth(t, cfg, src, c, newWidth, true); err != nil {
				return err
			}
		}
	case model.HCombination:
		var children []model.Handle
		var widths []int
		for c := n.HChild; c != model.NoHandle; c = t.Node(c).Next {
			children = append(children, c)
			widths = append(widths, t.Node(c).Width)
		}
		newWidths := apportion(oldWidth, newWidth, widths)

		left := n.Left
		for i, c := range children {
			t.Node(c).Left = left
			if err := SetWidth(t, cfg, src, c, newWidths[i], true); err != nil {
				return err
			}
			left += newWidths[i]
		}
		if !nodelete {
			for _, c := range children {
				if !t.Valid(c) {
					continue
				}
				if err := SetWidth(t, cfg, src, c, t.Node(c).Width, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ChangeHeight grows (positive delta) or shrinks (negative delta) the
// selected window interactively, donating/reclaiming the difference from
// its next-or-previous sibling along the chosen axis: height when
// widthflag is false, width when true. It walks up from the selected
// window to the nearest ancestor whose parent combines along that axis (a
// v-combination for height, an h-combination for width) — that ancestor,
// not necessarily the selected leaf itself, is what actually grows.
//
// The requested delta is clamped so it can never eat into another
// combination's share (when the walked-to node has a same-axis parent) or
// push a screen's sole non-minibuffer window, or the minibuffer itself,
// below the configured minimum (when there is no such parent — the clamp
// is against the walked-to node's next-or-previous sibling instead).
func ChangeHeight(t *model.Tree, cfg value.Config, src buffer.Source, selected model.Handle, delta int, widthflag bool) error {
	axis := model.VCombination
	minSize := cfg.WindowMinHeight
	if widthflag {
		axis = model.HCombination
		minSize = cfg.WindowMinWidth
	}

	size := func(h model.Handle) int {
		if widthflag {
			return t.Node(h).Width
		}
		return t.Node(h).Height
	}

	w := selected
	var parent model.Handle
	for {
		n := t.Node(w)
		parent = n.Parent
		if parent == model.NoHandle {
			if widthflag {
				return value.ErrNoSuchSibling
			}
			break
		}
		if t.Node(parent).Kind == axis {
			break
		}
		w = parent
	}

	cur := size(w)
	if cur+delta < minSize && t.Node(w).Parent != model.NoHandle {
		return Delete(t, cfg, src, w)
	}

	var maxDelta int
	if parent != model.NoHandle {
		maxDelta = size(parent) - cur
	} else {
		sib := t.Node(w).Next
		if sib == model.NoHandle {
			sib = t.Node(w).Prev
		}
		if sib == model.NoHandle {
			return value.ErrSoleOrdinaryWindow
		}
		maxDelta = size(sib) - minSize
	}
	if delta > maxDelta {
		delta = maxDelta
	}

	apply := func(h model.Handle, sz int, nodelete bool) error {
		if widthflag {
			return SetWidth(t, cfg, src, h, sz, nodelete)
		}
		return SetHeight(t, cfg, src, h, sz, nodelete)
	}
	setBeg := func(h model.Handle, beg int) {
		if widthflag {
			t.Node(h).Left = beg
		} else {
			t.Node(h).Top = beg
		}
	}
	getBeg := func(h model.Handle) int {
		if widthflag {
			return t.Node(h).Left
		}
		return t.Node(h).Top
	}

	setRaw := func(h model.Handle, sz int) {
		if widthflag {
			t.Node(h).Width = sz
		} else {
			t.Node(h).Height = sz
		}
	}

	next := t.Node(w).Next
	prev := t.Node(w).Prev

	switch {
	case next != model.NoHandle && size(next)-delta >= minSize:
		if err := apply(next, size(next)-delta, false); err != nil {
			return err
		}
		if err := apply(w, cur+delta, false); err != nil {
			return err
		}
		setBeg(next, getBeg(next)+delta)

	case prev != model.NoHandle && size(prev)-delta >= minSize:
		if err := apply(prev, size(prev)-delta, false); err != nil {
			return err
		}
		setBeg(w, getBeg(w)-delta)
		if err := apply(w, cur+delta, false); err != nil {
			return err
		}

	default:
		// Neither sibling alone can absorb delta: inflate w and its
		// parent by delta1, then shrink the parent back to its original
		// size so the proportional apportionment lands w at exactly
		// cur+delta, taking the difference out of the siblings.
		if parent == model.NoHandle {
			return value.ErrMinSizeViolation
		}
		opht := size(parent)
		var delta1 int
		if opht <= cur+delta {
			delta1 = opht * opht * 2
		} else {
			delta1 = (delta * opht * 100) / ((opht - cur - delta) * 100)
		}
		setRaw(parent, opht+delta1)
		if err := apply(w, cur+delta1, false); err != nil {
			return err
		}
		if err := apply(parent, opht, false); err != nil {
			return err
		}
	}

	return nil
}
