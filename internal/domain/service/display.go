package service

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// Override, when non-nil, lets a host intercept DisplayBuffer entirely
// (spec's "if override function is set, delegate" step 1). It receives the
// same arguments DisplayBuffer was called with and returns the window to
// use, or NoHandle to fall through to the built-in policy.
type Override func(t *model.Tree, buf buffer.ID, notThisWindow bool) model.Handle

// DisplayBuffer chooses (and binds buf into) a window to show buf in,
// following spec §4.G's policy in order: an install-time override, the
// selected window (unless notThisWindow), any window already showing buf,
// a fresh screen (AutoNewScreen), a pop-up split of the largest full-width
// window or the LRU window (PopUpWindows), or finally just the LRU window.
// selectedScreen identifies which screen's "selected window" and "root" the
// policy should reason about.
func DisplayBuffer(t *model.Tree, cfg value.Config, src buffer.Source, selectedScreen model.Handle, buf buffer.ID, notThisWindow bool, override Override) (model.Handle, error) {
	if override != nil {
		if w := override(t, buf, notThisWindow); w != model.NoHandle {
			return w, BindBuffer(t, src, w, buf)
		}
	}

	scr := t.Screen(selectedScreen)

	if !notThisWindow {
		if sel := t.Node(scr.Selected); sel != nil && sel.IsLeaf() && sel.BufferID == buf {
			return scr.Selected, nil
		}
	}

	for _, scrH := range t.Screens() {
		s := t.Screen(scrH)
		for _, l := range t.Leaves(s.Root) {
			if t.Node(l).BufferID != buf {
				continue
			}
			if notThisWindow && l == scr.Selected {
				continue
			}
			return l, BindBuffer(t, src, l, buf)
		}
	}

	if cfg.AutoNewScreen {
		newScr := t.NewScreen(model.Screen{Width: scr.Width, Height: scr.Height})
		leaf := t.NewLeaf(newScr)
		n := t.Node(leaf)
		n.Left, n.Top, n.Width, n.Height = 0, 0, scr.Width, scr.Height
		s := t.Screen(newScr)
		s.Root, s.Selected = leaf, leaf
		if err := BindBuffer(t, src, leaf, buf); err != nil {
			return model.NoHandle, err
		}
		return leaf, nil
	}

	if cfg.PopUpWindows {
		if largest := GetLargestWindow(t, selectedScreen, true); largest != model.NoHandle {
			ln := t.Node(largest)
			if ln.Height >= cfg.SplitHeightThreshold {
				w, err := Split(t, cfg, src, largest, nil, false)
				if err != nil {
					return model.NoHandle, err
				}
				return w, BindBuffer(t, src, w, buf)
			}
		}

		lru := GetLRUWindow(t, selectedScreen)
		if lru == model.NoHandle {
			lru = scr.Root
		}
		if lru == scr.Selected || lru == scr.Root {
			w, err := Split(t, cfg, src, lru, nil, false)
			if err != nil {
				return model.NoHandle, err
			}
			return w, BindBuffer(t, src, w, buf)
		}
		return lru, BindBuffer(t, src, lru, buf)
	}

	lru := GetLRUWindow(t, selectedScreen)
	if lru == model.NoHandle {
		return model.NoHandle, value.ErrNoSuchSibling
	}
	return lru, BindBuffer(t, src, lru, buf)
}

// eligible reports whether a leaf counts toward LRU/largest-window search:
// not a minibuffer, not dedicated.
func eligible(t *model.Tree, l model.Handle) bool {
	n := t.Node(l)
	scr := t.Screen(n.Screen)
	if scr.Minibuffer == l {
		return false
	}
	return !n.Dedicated
}

// GetLRUWindow returns the least-recently-used eligible leaf on scr, ties
// broken by lowest UseTime (the first one found, since ties are
// indistinguishable). Returns NoHandle if no eligible leaf exists.
func GetLRUWindow(t *model.Tree, scrH model.Handle) model.Handle {
	scr := t.Screen(scrH)
	best := model.NoHandle
	bestUse := 0
	for _, l := range t.Leaves(scr.Root) {
		if !eligible(t, l) {
			continue
		}
		u := t.Node(l).UseTime
		if best == model.NoHandle || u < bestUse {
			best, bestUse = l, u
		}
	}
	return best
}

// GetLargestWindow returns the largest eligible leaf on scr by area
// (width*height). If fullWidthOnly is set, only leaves spanning the
// screen's full width are considered.
func GetLargestWindow(t *model.Tree, scrH model.Handle, fullWidthOnly bool) model.Handle {
	scr := t.Screen(scrH)
	best := model.NoHandle
	bestArea := -1
	for _, l := range t.Leaves(scr.Root) {
		if !eligible(t, l) {
			continue
		}
		n := t.Node(l)
		if fullWidthOnly && n.Width != scr.Width {
			continue
		}
		if a := n.Area(); a > bestArea {
			best, bestArea = l, a
		}
	}
	return best
}

// GetBufferWindow returns the first window (searching scrH's screen, then
// every other screen in order) showing buf, or NoHandle.
func GetBufferWindow(t *model.Tree, scrH model.Handle, buf buffer.ID) model.Handle {
	scr := t.Screen(scrH)
	for _, l := range t.Leaves(scr.Root) {
		if t.Node(l).BufferID == buf {
			return l
		}
	}
	for _, other := range t.Screens() {
		if other == scrH {
			continue
		}
		s := t.Screen(other)
		for _, l := range t.Leaves(s.Root) {
			if t.Node(l).BufferID == buf {
				return l
			}
		}
	}
	return model.NoHandle
}
