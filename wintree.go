// Package wintree partitions a rectangular screen into a binary tree of
// tiled windows, each viewing one text buffer, with splitting, resizing,
// deletion, navigation, selection, scrolling and snapshot/restore — the
// windowing model Emacs calls window.c, generalized to an ordinary Go
// library.
//
// The buffer/marker module, redisplay engine, text-motion, key
// dispatch and terminal driver are external collaborators: wintree only
// ever consumes them through the small interfaces in package buffer.
// Package buffer also ships buffer.Memory, an in-memory reference
// implementation good enough for tests and the demo command — it is not
// a text editor.
//
// # Quick Start
//
//	src := buffer.NewMemory()
//	src.CreateBuffer("scratch", "hello\nworld\n")
//
//	tree := wintree.New(src, src, wintree.DefaultConfig())
//	root := tree.NewScreen(80, 24, true)
//	tree.SetBuffer(root, "scratch")
//
//	right, err := tree.Split(root, nil, true)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tree.SetBuffer(right, "scratch")
package wintree

import (
	"github.com/phoenix-tui/wintree/api"
	"github.com/phoenix-tui/wintree/buffer"
)

// Tree is the window tree: every operation in the subsystem's external
// interface is a method on it. A Tree is not safe for concurrent use from
// multiple goroutines.
type Tree = api.Context

// Config collects the mutable, externally visible configuration
// variables: window_min_height/width, pop_up_windows,
// split_height_threshold, next_screen_context_lines, auto_new_screen.
type Config = api.Config

// Handle addresses a window or, via a separate namespace implied by
// context, a screen. Handles are arena slot indices, so the zero value
// names the first slot; use NoHandle for "absent".
type Handle = api.Handle

// NoHandle represents an absent window/screen reference.
const NoHandle = api.NoHandle

// Snapshot is a serialized window configuration produced by
// Tree.CurrentWindowConfiguration and consumed by
// Tree.SetWindowConfiguration.
type Snapshot = api.Snapshot

// MiniBufferPolicy controls whether traversal may land on a screen's
// minibuffer window.
type MiniBufferPolicy = api.MiniBufferPolicy

const (
	MiniBufferNever           = api.MiniBufferNever
	MiniBufferIncludeAlways   = api.MiniBufferIncludeAlways
	MiniBufferIncludeIfActive = api.MiniBufferIncludeIfActive
)

// Scope controls how far a window search looks: just the current screen,
// or every screen.
type Scope = api.Scope

const (
	ScopeSelectedScreen = api.ScopeSelectedScreen
	ScopeAllScreens     = api.ScopeAllScreens
)

// Error sentinels for the subsystem's signaled conditions. Compare with
// errors.Is.
var (
	ErrArgumentTypeMismatch = api.ErrArgumentTypeMismatch
	ErrNoSuchSibling        = api.ErrNoSuchSibling
	ErrMinSizeViolation     = api.ErrMinSizeViolation
	ErrSoleOrdinaryWindow   = api.ErrSoleOrdinaryWindow
	ErrMinibufferOperation  = api.ErrMinibufferOperation
	ErrDedicatedWindow      = api.ErrDedicatedWindow
	ErrDeletedWindow        = api.ErrDeletedWindow
	ErrBeginningOfBuffer    = api.ErrBeginningOfBuffer
	ErrEndOfBuffer          = api.ErrEndOfBuffer
	ErrScreenSizeMismatch   = api.ErrScreenSizeMismatch
	ErrUnsplittableScreen   = api.ErrUnsplittableScreen
)

// New creates an empty window tree with no screens. Call NewScreen to
// add one. src supplies buffer lookup and marker creation; motion
// supplies vertical text motion for scrolling.
func New(src buffer.Source, motion buffer.MotionOracle, cfg Config) *Tree {
	return api.NewContext(src, motion, cfg)
}

// DefaultConfig returns the subsystem's documented defaults:
// window_min_height=4, window_min_width=10, pop_up_windows=true,
// split_height_threshold=500, next_screen_context_lines=2,
// auto_new_screen=false.
func DefaultConfig() Config {
	return api.DefaultConfig()
}
