package service

import (
	"github.com/google/uuid"

	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// SnapshotNode is one serialized node — leaf or combination — from a
// pre-order walk of a screen's window tree. ParentIdx/PrevIdx are indices
// back into the enclosing Snapshot.Nodes slice (-1 for "none"), which is
// how the flat sequence encodes the tree's links.
type SnapshotNode struct {
	BufferID       buffer.ID
	Start          int
	Pointm         int
	Left, Top      int
	Width, Height  int
	HScroll        int
	DisplayTable   any
	StartAtLineBeg bool
	Dedicated      bool

	ParentIdx int
	PrevIdx   int
}

// Snapshot is a serialized configuration of one screen's window tree,
// restorable later with Restore. ID is a random identifier (not the
// tree's monotonic Sequence counter, which Restore does not attempt to
// reproduce) so that multiple saved snapshots can be told apart.
type Snapshot struct {
	ID uuid.UUID

	ScreenWidth, ScreenHeight int
	SelectedIdx               int
	MinibufferIdx             int

	Nodes []SnapshotNode
}

// TakeSnapshot serializes scrH's window tree into a Snapshot.
func TakeSnapshot(t *model.Tree, scrH model.Handle) Snapshot {
	scr := t.Screen(scrH)

	var nodes []SnapshotNode
	selectedIdx := -1
	minibufferIdx := -1

	var walk func(h model.Handle, parentIdx, prevIdx int) int
	walk = func(h model.Handle, parentIdx, prevIdx int) int {
		n := t.Node(h)
		idx := len(nodes)
		nodes = append(nodes, SnapshotNode{
			Left:           n.Left,
			Top:            n.Top,
			Width:          n.Width,
			Height:         n.Height,
			HScroll:        n.HScroll,
			DisplayTable:   n.DisplayTable,
			StartAtLineBeg: n.StartAtLineBeg,
			Dedicated:      n.Dedicated,
			ParentIdx:      parentIdx,
			PrevIdx:        prevIdx,
		})
		if n.IsLeaf() {
			sn := &nodes[idx]
			sn.BufferID = n.BufferID
			if n.Pointm != nil {
				sn.Pointm = n.Pointm.Position()
			}
			if n.Start != nil {
				sn.Start = n.Start.Position()
			}
		}
		if h == scr.Selected {
			selectedIdx = idx
		}
		if scr.Minibuffer != model.NoHandle && h == scr.Minibuffer {
			minibufferIdx = idx
		}

		prev := -1
		for c := n.FirstChild(); c != model.NoHandle; c = t.Node(c).Next {
			prev = walk(c, idx, prev)
		}
		return idx
	}
	walk(scr.Root, -1, -1)

	return Snapshot{
		ID:            uuid.New(),
		ScreenWidth:   scr.Width,
		ScreenHeight:  scr.Height,
		SelectedIdx:   selectedIdx,
		MinibufferIdx: minibufferIdx,
		Nodes:         nodes,
	}
}

// Restore replaces scrH's entire window tree with the one recorded in
// snap. It rejects with ErrScreenSizeMismatch if scrH's current dimensions
// differ from the snapshot's. Every existing leaf is torn down first
// (markers unchained, buffers unshown); the recorded sequence is then
// rebuilt node-for-node. The format itself carries no combination-kind
// tag: whether a node is a leaf is inferred from whether any other entry
// names it as a parent, and a combination's orientation is inferred by
// comparing its first child's recorded width to its own (equal widths
// mean the parent stacked children vertically, i.e. a v-combination).
// For each reconstructed leaf: if its recorded buffer is still alive, its
// markers are reinstalled against it; otherwise the first available live
// buffer is substituted, or the leaf is left unbound if none exists.
// Finally the recorded selected window is reselected, and scr.Minibuffer is
// repointed at the rebuilt minibuffer leaf (or cleared if the snapshot
// predates a minibuffer) rather than left dangling at the handle freed by
// freeSubtree.
func Restore(t *model.Tree, src buffer.Source, scrH model.Handle, snap Snapshot) error {
	scr := t.Screen(scrH)
	if scr.Width != snap.ScreenWidth || scr.Height != snap.ScreenHeight {
		return value.ErrScreenSizeMismatch
	}

	for _, l := range t.Leaves(scr.Root) {
		n := t.Node(l)
		unshowBuffer(t, src, l)
		if n.Pointm != nil {
			src.UnchainMarker(n.Pointm)
		}
		if n.Start != nil {
			src.UnchainMarker(n.Start)
		}
	}
	freeSubtree(t, scr.Root)

	// A node is a leaf iff no entry names it as a parent.
	isInternal := make([]bool, len(snap.Nodes))
	firstChildIdx := make([]int, len(snap.Nodes))
	for i := range firstChildIdx {
		firstChildIdx[i] = -1
	}
	for i, sn := range snap.Nodes {
		if sn.ParentIdx < 0 {
			continue
		}
		isInternal[sn.ParentIdx] = true
		if sn.PrevIdx < 0 {
			firstChildIdx[sn.ParentIdx] = i
		}
	}

	handles := make([]model.Handle, len(snap.Nodes))
	for i, sn := range snap.Nodes {
		if !isInternal[i] {
			handles[i] = t.NewLeaf(scrH)
			continue
		}
		kind := model.HCombination
		if j := firstChildIdx[i]; j >= 0 && snap.Nodes[j].Width == sn.Width {
			kind = model.VCombination
		}
		handles[i] = t.NewCombination(kind, scrH)
	}

	for i, sn := range snap.Nodes {
		h := handles[i]
		n := t.Node(h)
		n.Left, n.Top, n.Width, n.Height = sn.Left, sn.Top, sn.Width, sn.Height
		n.HScroll = sn.HScroll
		n.DisplayTable = sn.DisplayTable
		n.StartAtLineBeg = sn.StartAtLineBeg
		n.Dedicated = sn.Dedicated

		n.Parent = model.NoHandle
		if sn.ParentIdx >= 0 {
			n.Parent = handles[sn.ParentIdx]
		}
		n.Prev, n.Next = model.NoHandle, model.NoHandle
		if sn.PrevIdx >= 0 {
			n.Prev = handles[sn.PrevIdx]
			t.Node(n.Prev).Next = h
		} else if n.Parent != model.NoHandle {
			t.Node(n.Parent).SetFirstChild(h)
		}
	}

	for i, sn := range snap.Nodes {
		if isInternal[i] {
			continue
		}
		h := handles[i]
		n := t.Node(h)

		bufID := sn.BufferID
		if buf, ok := src.Lookup(bufID); !ok || !buf.Alive() {
			if alt, ok := src.FirstAlive(); ok {
				bufID = alt
			} else {
				continue
			}
		}
		n.BufferID = bufID
		n.Start = src.CreateMarker(bufID, sn.Start)
		n.Pointm = src.CreateMarker(bufID, sn.Pointm)
	}

	scr.Root = handles[0]
	if snap.SelectedIdx >= 0 {
		scr.Selected = handles[snap.SelectedIdx]
	}
	scr.Minibuffer = model.NoHandle
	if snap.MinibufferIdx >= 0 {
		scr.Minibuffer = handles[snap.MinibufferIdx]
	}
	t.WindowsOrBuffersChanged++
	return nil
}

// freeSubtree releases every node of the subtree rooted at h back to the
// arena, children first.
func freeSubtree(t *model.Tree, h model.Handle) {
	if h == model.NoHandle {
		return
	}
	n := t.Node(h)
	for c := n.FirstChild(); c != model.NoHandle; {
		next := t.Node(c).Next
		freeSubtree(t, c)
		c = next
	}
	t.Free(h)
}
