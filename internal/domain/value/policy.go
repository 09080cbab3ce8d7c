package value

// MiniBufferPolicy controls whether traversal (component C) may land on a
// screen's minibuffer window.
type MiniBufferPolicy int

const (
	// MiniBufferNever excludes the minibuffer from traversal entirely.
	MiniBufferNever MiniBufferPolicy = iota
	// MiniBufferIncludeAlways always includes the minibuffer.
	MiniBufferIncludeAlways
	// MiniBufferIncludeIfActive includes the minibuffer only when it is
	// the active minibuffer (minibuf_level > 0).
	MiniBufferIncludeIfActive
)

// Axis identifies which dimension an operation concerns: width along an
// h-combination's axis, or height along a v-combination's axis.
type Axis int

const (
	// Vertical concerns height, apportioned by v-combinations.
	Vertical Axis = iota
	// Horizontal concerns width, apportioned by h-combinations.
	Horizontal
)

// Side identifies which sibling donates or absorbs space.
type Side int

// Scope controls how far get_lru_window/get_largest_window/
// get_buffer_window search: just the current screen, or every screen.
type Scope int

const (
	// ScopeSelectedScreen restricts the search to the current screen.
	ScopeSelectedScreen Scope = iota
	// ScopeAllScreens searches every live screen.
	ScopeAllScreens
)

const (
	// SidePrev refers to the preceding sibling.
	SidePrev Side = iota
	// SideNext refers to the following sibling.
	SideNext
)
