package model

// Screen is the external-to-windows surface a tree of windows tiles. It is
// a thin record owned by the arena alongside its nodes; the redisplay,
// terminal driver and command dispatch collaborators are not modeled here.
type Screen struct {
	Width, Height int
	Root          Handle
	Minibuffer    Handle
	Selected      Handle
	WantsModeline bool
	NoSplit       bool
}

// Tree is the arena that owns every Node and Screen reachable from it,
// addressed by Handle. A single Tree may host multiple Screens so that
// traversal can span screens (spec §4.C's all_screens option).
type Tree struct {
	// nodes holds one *Node per slot. It is a slice of pointers, not of
	// Node values, so that appending new nodes (growing the slice) never
	// invalidates a *Node obtained from an earlier Node(h) call — handles
	// and the pointers they resolve to stay stable for a slot's lifetime.
	nodes       []*Node
	freeNodes   []Handle
	screens     []*Screen
	freeScreens []Handle

	nextSequence int
	nextUseTime  int

	// WindowsOrBuffersChanged is a write-only increment signal for the
	// redisplay collaborator: any topology or buffer-binding change must
	// bump it.
	WindowsOrBuffersChanged int
}

// NewTree creates an empty arena.
func NewTree() *Tree {
	return &Tree{}
}

// Node returns a pointer into the arena's backing slice for h. The pointer
// is invalidated by nothing this package does (node slots are never
// reallocated to a different index), but callers must not retain it across
// a call that might append new nodes if they also hold the Tree by value
// elsewhere — always access via *Tree.
func (t *Tree) Node(h Handle) *Node {
	if h == NoHandle {
		return nil
	}
	return t.nodes[h]
}

// Valid reports whether h addresses a live node.
func (t *Tree) Valid(h Handle) bool {
	if h == NoHandle || int(h) < 0 || int(h) >= len(t.nodes) {
		return false
	}
	for _, f := range t.freeNodes {
		if f == h {
			return false
		}
	}
	return true
}

// newNode allocates a node slot, reusing a freed one if available.
func (t *Tree) newNode(n Node) Handle {
	t.nextSequence++
	n.Sequence = t.nextSequence
	if len(t.freeNodes) > 0 {
		h := t.freeNodes[len(t.freeNodes)-1]
		t.freeNodes = t.freeNodes[:len(t.freeNodes)-1]
		*t.nodes[h] = n
		return h
	}
	t.nodes = append(t.nodes, &n)
	return Handle(len(t.nodes) - 1)
}

// freeNode returns a node slot to the free list. Callers must have already
// unchained its markers and unlinked it from the tree.
func (t *Tree) freeNode(h Handle) {
	*t.nodes[h] = Node{}
	t.freeNodes = append(t.freeNodes, h)
}

// NewLeaf allocates a fresh leaf node with zero geometry, belonging to
// screen scr. It carries no buffer binding yet; callers bind one via the
// bind-buffer service.
func (t *Tree) NewLeaf(scr Handle) Handle {
	return t.newNode(Node{Kind: Leaf, Parent: NoHandle, Prev: NoHandle, Next: NoHandle,
		HChild: NoHandle, VChild: NoHandle, Screen: scr})
}

// NewCombination allocates a fresh, childless combination node of the
// given orientation (HCombination or VCombination), belonging to screen
// scr. Combinations are not valid on their own until they have >= 2
// children; NewCombination exists for mutate.go's MakeDummyParent.
func (t *Tree) NewCombination(kind Kind, scr Handle) Handle {
	return t.newNode(Node{Kind: kind, Parent: NoHandle, Prev: NoHandle, Next: NoHandle,
		HChild: NoHandle, VChild: NoHandle, Screen: scr})
}

// BumpUseTime returns the next value for Node.UseTime, used by Select.
func (t *Tree) BumpUseTime() int {
	t.nextUseTime++
	return t.nextUseTime
}

// NewScreen registers a screen and returns its handle. The caller is
// responsible for populating Root/Minibuffer/Selected once the initial
// tree is built.
func (t *Tree) NewScreen(s Screen) Handle {
	if len(t.freeScreens) > 0 {
		h := t.freeScreens[len(t.freeScreens)-1]
		t.freeScreens = t.freeScreens[:len(t.freeScreens)-1]
		*t.screens[h] = s
		return h
	}
	t.screens = append(t.screens, &s)
	return Handle(len(t.screens) - 1)
}

// Screen returns a pointer to the screen record for h.
func (t *Tree) Screen(h Handle) *Screen {
	if h == NoHandle {
		return nil
	}
	return t.screens[h]
}

// Screens returns every live screen handle, in creation order. A freed
// screen is skipped.
func (t *Tree) Screens() []Handle {
	out := make([]Handle, 0, len(t.screens))
	for i := range t.screens {
		h := Handle(i)
		if t.screenValid(h) {
			out = append(out, h)
		}
	}
	return out
}

func (t *Tree) screenValid(h Handle) bool {
	for _, f := range t.freeScreens {
		if f == h {
			return false
		}
	}
	return true
}

// Free releases a node's slot back to the arena. It does not touch
// siblings/parent/children links; callers (delete/replace in
// internal/domain/service) must have already detached it.
func (t *Tree) Free(h Handle) {
	t.freeNode(h)
}

// Leaves returns every leaf reachable from root, in pre-order.
func (t *Tree) Leaves(root Handle) []Handle {
	var out []Handle
	var walk func(Handle)
	walk = func(h Handle) {
		if h == NoHandle {
			return
		}
		n := t.Node(h)
		if n.IsLeaf() {
			out = append(out, h)
			return
		}
		for c := n.FirstChild(); c != NoHandle; c = t.Node(c).Next {
			walk(c)
		}
	}
	walk(root)
	return out
}
