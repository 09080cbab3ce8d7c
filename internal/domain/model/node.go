// Package model defines the window tree's node and screen records and the
// arena that owns them.
//
// Design:
//   - A single Node shape serves leaves and combinations; the discriminant
//     is Kind, enforced by the constructors in this package
//     (Tree.NewLeaf, Tree.NewCombination) rather than left to callers to
//     get right.
//   - Cross-node references (Parent, Prev, Next, HChild, VChild) are
//     Handles — stable integer indices into a Tree's node slice — not
//     pointers. This avoids an ownership cycle at the memory-management
//     level (parent<->child, prev<->next) and matches the arena-of-nodes
//     style used for UI trees elsewhere in this codebase's ancestry.
package model

import "github.com/phoenix-tui/wintree/buffer"

// Handle is a stable reference to a Node within a Tree. Handles are slot
// indices, so the zero value names the arena's first slot; use NoHandle
// for "absent".
type Handle int

// NoHandle represents an absent reference (nil pointer equivalent).
const NoHandle Handle = -1

// Kind discriminates the three node shapes the tree invariants allow:
// exactly one of Leaf, HCombination or VCombination per node.
type Kind int

const (
	// Leaf nodes display a buffer and have no children.
	Leaf Kind = iota
	// HCombination nodes tile children left-to-right; children share Top/Height.
	HCombination
	// VCombination nodes tile children top-to-bottom; children share Left/Width.
	VCombination
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case HCombination:
		return "h-combination"
	case VCombination:
		return "v-combination"
	default:
		return "unknown"
	}
}

// Node is a window tree node: a leaf viewing a buffer, or a combination
// tiling its children along one axis. See Kind for the discriminant.
type Node struct {
	Kind Kind

	// Identity.
	Sequence int // monotonic, unique per process/arena
	UseTime  int // bumped on Select, used for LRU

	// Geometry, in screen cells.
	Left, Top, Width, Height int

	// Topology.
	Parent, Prev, Next, HChild, VChild Handle

	// Screen back-reference.
	Screen Handle

	// Leaf-only content. Zero values on combinations.
	BufferID        buffer.ID
	Start           buffer.Marker
	Pointm          buffer.Marker
	HScroll         int
	DisplayTable    any
	Dedicated       bool
	StartAtLineBeg  bool
	ForceStart      bool

	// Redisplay hints, leaf-only but harmless to carry on combinations.
	LastModified   int
	WindowEndPos   int
	WindowEndVPos  int
	UpdateModeLine bool
	LastPointX     int
	LastPointY     int
}

// IsLeaf reports whether n displays a buffer (has no children).
func (n *Node) IsLeaf() bool { return n.Kind == Leaf }

// IsCombination reports whether n is an internal node.
func (n *Node) IsCombination() bool { return n.Kind == HCombination || n.Kind == VCombination }

// FirstChild returns the combination's sole child-list head (HChild or
// VChild, whichever applies), or NoHandle on a leaf.
func (n *Node) FirstChild() Handle {
	switch n.Kind {
	case HCombination:
		return n.HChild
	case VCombination:
		return n.VChild
	default:
		return NoHandle
	}
}

// SetFirstChild writes the combination's child-list head for its
// orientation. No-op on a leaf.
func (n *Node) SetFirstChild(h Handle) {
	switch n.Kind {
	case HCombination:
		n.HChild = h
	case VCombination:
		n.VChild = h
	}
}

// Right returns the node's right edge (Left + Width).
func (n *Node) Right() int { return n.Left + n.Width }

// Bottom returns the node's bottom edge (Top + Height).
func (n *Node) Bottom() int { return n.Top + n.Height }

// Area is used by the largest-window search in the display-buffer policy.
func (n *Node) Area() int { return n.Width * n.Height }
