package service

import (
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// ScreenOrder gives the cyclic ordering traversal uses when all_screens is
// set: Next/Previous wrap from one screen's minibuffer to the next (or
// previous) screen's root. Screens is the arena's screen list in creation
// order, which callers may reorder to reflect on-screen stacking if their
// host cares; traversal only needs a total cyclic order.
type ScreenOrder struct {
	Screens []model.Handle
}

func (so ScreenOrder) next(cur model.Handle) model.Handle {
	return so.step(cur, 1)
}

func (so ScreenOrder) prev(cur model.Handle) model.Handle {
	return so.step(cur, -1)
}

func (so ScreenOrder) step(cur model.Handle, dir int) model.Handle {
	if len(so.Screens) == 0 {
		return cur
	}
	idx := -1
	for i, s := range so.Screens {
		if s == cur {
			idx = i
			break
		}
	}
	if idx == -1 {
		return cur
	}
	n := len(so.Screens)
	next := ((idx+dir)%n + n) % n
	return so.Screens[next]
}

// Walk performs a pre-order, leaves-only visit of the subtree rooted at
// root, calling visit for each leaf. Walk stops early if visit returns
// false. This is the "visitor with predicate-and-action" component C
// mentions: callers compose predicate-then-action by returning false from
// visit once they've found/acted on what they need.
func Walk(t *model.Tree, root model.Handle, visit func(model.Handle) bool) {
	walk(t, root, visit)
}

// walk is Walk's recursive helper; it returns false once visit has asked to
// stop, so the caller's enclosing loop (over siblings, or over Walk's own
// recursion) can short-circuit.
func walk(t *model.Tree, h model.Handle, visit func(model.Handle) bool) bool {
	if h == model.NoHandle {
		return true
	}
	n := t.Node(h)
	if n.IsLeaf() {
		return visit(h)
	}
	for c := n.FirstChild(); c != model.NoHandle; c = t.Node(c).Next {
		if !walk(t, c, visit) {
			return false
		}
	}
	return true
}

// acceptable reports whether w (a just-landed-on leaf) satisfies policy,
// mirroring window.c's next-window exit condition: a minibuffer leaf is
// accepted if the policy says to always include it, or if it's the active
// minibuffer and the policy accepts active minibuffers, or if it's the
// only window on its screen (a minibuffer-only screen can't be avoided).
func acceptable(t *model.Tree, w model.Handle, policy value.MiniBufferPolicy, minibufActive bool) bool {
	scr := t.Screen(t.Node(w).Screen)
	isMini := scr != nil && scr.Minibuffer == w
	if !isMini {
		return true
	}
	if policy == value.MiniBufferIncludeAlways {
		return true
	}
	if scr.Root == scr.Minibuffer {
		return true // minibuffer-only screen: nothing else to land on
	}
	if policy == value.MiniBufferIncludeIfActive && minibufActive {
		return true
	}
	return false
}

// Next returns the next leaf after w in canonical order: pre-order over
// each screen's tree, wrapping through the minibuffer, optionally
// continuing into further screens. minibufActive should reflect whether a
// minibuffer is currently being read (minibuf_level > 0) for
// MiniBufferIncludeIfActive to behave correctly.
func Next(t *model.Tree, w model.Handle, policy value.MiniBufferPolicy, order ScreenOrder, minibufActive bool) model.Handle {
	for {
		cur := w
		var tem model.Handle
		for {
			tem = t.Node(cur).Next
			if tem != model.NoHandle {
				break
			}
			parent := t.Node(cur).Parent
			if parent != model.NoHandle {
				cur = parent
				continue
			}
			scr := t.Node(cur).Screen
			nextScr := order.next(scr)
			tem = t.Screen(nextScr).Root
			break
		}
		w = tem
		for t.Node(w).IsCombination() {
			w = t.Node(w).FirstChild()
		}
		if acceptable(t, w, policy, minibufActive) {
			return w
		}
	}
}

// Previous is Next's mirror: climbs via Prev, and on descending into a
// combination takes its last child rather than first.
func Previous(t *model.Tree, w model.Handle, policy value.MiniBufferPolicy, order ScreenOrder, minibufActive bool) model.Handle {
	for {
		cur := w
		var tem model.Handle
		for {
			tem = t.Node(cur).Prev
			if tem != model.NoHandle {
				break
			}
			parent := t.Node(cur).Parent
			if parent != model.NoHandle {
				cur = parent
				continue
			}
			scr := t.Node(cur).Screen
			prevScr := order.prev(scr)
			tem = t.Screen(prevScr).Root
			break
		}
		w = tem
		for t.Node(w).IsCombination() {
			last := t.Node(w).FirstChild()
			for t.Node(last).Next != model.NoHandle {
				last = t.Node(last).Next
			}
			w = last
		}
		if acceptable(t, w, policy, minibufActive) {
			return w
		}
	}
}
