// Package service implements the window tree's mutation, traversal,
// split/delete, resize, buffer-binding, display-buffer, scroll and
// snapshot algorithms (spec components B through I). Every function takes
// the arena (*model.Tree) and any other collaborators explicitly; nothing
// here touches a package-level global.
package service

import (
	"github.com/phoenix-tui/wintree/internal/domain/model"
)

// ReplaceNode rewires every reference to old so it points at replacement
// instead, and copies old's geometry onto replacement. It does not touch
// old's children — callers that are discarding old's subtree must do that
// themselves.
func ReplaceNode(t *model.Tree, old, replacement model.Handle) {
	oldNode := t.Node(old)
	newNode := t.Node(replacement)

	newNode.Left, newNode.Top = oldNode.Left, oldNode.Top
	newNode.Width, newNode.Height = oldNode.Width, oldNode.Height
	newNode.Parent = oldNode.Parent
	newNode.Prev = oldNode.Prev
	newNode.Next = oldNode.Next
	newNode.Screen = oldNode.Screen

	if oldNode.Prev != model.NoHandle {
		t.Node(oldNode.Prev).Next = replacement
	}
	if oldNode.Next != model.NoHandle {
		t.Node(oldNode.Next).Prev = replacement
	}
	if oldNode.Parent != model.NoHandle {
		parent := t.Node(oldNode.Parent)
		if parent.FirstChild() == old {
			parent.SetFirstChild(replacement)
		}
	}

	scr := t.Screen(oldNode.Screen)
	if scr != nil && scr.Root == old {
		scr.Root = replacement
	}
}

// MakeDummyParent lifts leaf into a freshly created combination node of the
// given orientation: the combination takes leaf's old place (via
// ReplaceNode), and leaf becomes its sole child with empty Prev/Next. Used
// by Split to interpose an orientation change above a leaf whose current
// parent has the wrong axis (or who has no parent at all).
func MakeDummyParent(t *model.Tree, leaf model.Handle, orientation model.Kind) model.Handle {
	leafNode := t.Node(leaf)
	comb := t.NewCombination(orientation, leafNode.Screen)

	ReplaceNode(t, leaf, comb)

	combNode := t.Node(comb)
	combNode.SetFirstChild(leaf)

	leafNode.Parent = comb
	leafNode.Prev = model.NoHandle
	leafNode.Next = model.NoHandle

	return comb
}

// Unlink removes h from its sibling list and, if it was its parent's first
// child, updates the parent's child pointer to the next sibling. Geometry
// is left untouched; the caller donates h's space to a sibling separately
// (see splitdelete.go's Delete).
func Unlink(t *model.Tree, h model.Handle) {
	n := t.Node(h)

	if n.Prev != model.NoHandle {
		t.Node(n.Prev).Next = n.Next
	}
	if n.Next != model.NoHandle {
		t.Node(n.Next).Prev = n.Prev
	}
	if n.Parent != model.NoHandle {
		parent := t.Node(n.Parent)
		if parent.FirstChild() == h {
			parent.SetFirstChild(n.Next)
		}
	}

	n.Prev = model.NoHandle
	n.Next = model.NoHandle
}

// SiblingCount counts parent's children by walking its child list; a count
// of one marks a degenerate (one-child) combination. Returns 0 for NoHandle.
func SiblingCount(t *model.Tree, parent model.Handle) int {
	if parent == model.NoHandle {
		return 0
	}
	count := 0
	for c := t.Node(parent).FirstChild(); c != model.NoHandle; c = t.Node(c).Next {
		count++
	}
	return count
}
