// Package buffer declares the small, external-collaborator interfaces the
// window tree depends on: buffers, markers and the text-motion oracle.
//
// None of these are implemented here as a text editor — the window tree
// subsystem only ever consumes them through the interfaces below, per the
// "Out of scope" collaborators in the subsystem's specification. Memory
// provides a minimal reference implementation good enough for tests and
// the demo command; production hosts plug in their own.
package buffer

// ID identifies a buffer. It is opaque to the window tree: only equality
// and liveness (via Source.Lookup) matter to it.
type ID string

// Marker is a position in a buffer that tracks edits made around it.
// The window tree never stores raw offsets for start/point because
// edits would invalidate them; it stores markers instead.
type Marker interface {
	// Buffer returns the buffer this marker is chained to.
	Buffer() ID
	// Position returns the marker's current character offset.
	Position() int
	// SetPosition relocates the marker within its buffer.
	SetPosition(pos int)
}

// Buffer is the subset of buffer-module behavior the window tree needs.
type Buffer interface {
	ID() ID
	// Alive reports whether the buffer has not been killed.
	Alive() bool
	// Point is the buffer's own notion of "current cursor" — used to seed
	// a new window's pointm marker and to persist a window's point back
	// when it stops being displayed anywhere.
	Point() int
	SetPoint(pos int)
	// BegV and ZV bound the currently-accessible (narrowed) region.
	BegV() int
	ZV() int
	// ModTime is the buffer's modification counter (BUF_MODIFF). A
	// window's cached layout is valid iff its LastModified >= ModTime.
	ModTime() int
	// LastWindowStart/SetLastWindowStart persist the viewport origin of
	// the most recent window that showed this buffer, for reuse when the
	// buffer is displayed again in a fresh window.
	LastWindowStart() int
	SetLastWindowStart(pos int)
}

// Source is the buffer list / marker factory collaborator.
type Source interface {
	// Lookup resolves a buffer by ID. ok is false only if the buffer never
	// existed; a killed buffer is still returned, with Alive() false.
	Lookup(id ID) (buf Buffer, ok bool)
	// CreateMarker chains a new marker to buf at pos.
	CreateMarker(buf ID, pos int) Marker
	// UnchainMarker detaches m from its buffer's marker chain. Required
	// on window destruction so the buffer does not hold a back-reference
	// to a dead window.
	UnchainMarker(m Marker)
	// FirstAlive returns some live buffer, in an implementation-defined
	// but stable order, for restore's last-resort substitution when a
	// snapshot names a buffer that no longer exists. ok is false if no
	// buffer is alive.
	FirstAlive() (id ID, ok bool)
}

// MotionOracle is the text-motion collaborator used by scrolling.
type MotionOracle interface {
	// VerticalMotion moves `lines` screen lines (positive = forward) from
	// `from` in buf, honoring buf's wrapping/display-table rules which
	// this package has no visibility into. It reports the resulting
	// position and how many lines were actually traversed (which may be
	// fewer than requested at a buffer boundary), and whether the motion
	// started at, or landed past, the beginning/end of the buffer.
	VerticalMotion(buf ID, from int, lines int) Motion
}

// Motion is the result of a VerticalMotion call.
type Motion struct {
	Pos            int
	LinesMoved     int
	AtBufferStart  bool
	PastBufferEnd  bool
	StartsAtLineBeg bool
}
