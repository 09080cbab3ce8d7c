// Package api exposes the window tree as a single stateful Context: every
// operation from the subsystem's external interface is a method on it, so
// a host only ever holds one object instead of wiring the arena,
// configuration and buffer collaborator together itself.
package api

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/service"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	Handle = model.Handle
	Config = value.Config
	Snapshot = service.Snapshot
	MiniBufferPolicy = value.MiniBufferPolicy
	Scope = value.Scope
	Override = service.Override
)

const (
	NoHandle = model.NoHandle

	MiniBufferNever           = value.MiniBufferNever
	MiniBufferIncludeAlways   = value.MiniBufferIncludeAlways
	MiniBufferIncludeIfActive = value.MiniBufferIncludeIfActive

	ScopeSelectedScreen = value.ScopeSelectedScreen
	ScopeAllScreens     = value.ScopeAllScreens
)

var (
	ErrArgumentTypeMismatch = value.ErrArgumentTypeMismatch
	ErrNoSuchSibling        = value.ErrNoSuchSibling
	ErrMinSizeViolation     = value.ErrMinSizeViolation
	ErrSoleOrdinaryWindow   = value.ErrSoleOrdinaryWindow
	ErrMinibufferOperation  = value.ErrMinibufferOperation
	ErrDedicatedWindow      = value.ErrDedicatedWindow
	ErrDeletedWindow        = value.ErrDeletedWindow
	ErrBeginningOfBuffer    = value.ErrBeginningOfBuffer
	ErrEndOfBuffer          = value.ErrEndOfBuffer
	ErrScreenSizeMismatch   = value.ErrScreenSizeMismatch
	ErrUnsplittableScreen   = value.ErrUnsplittableScreen
)

// Context bundles everything an operation needs: the node/screen arena,
// the buffer-list collaborator, the text-motion oracle scrolling needs,
// runtime configuration, an optional display-buffer override hook, and
// which screen is presently "the" selected one (a host with several
// visible screens still only ever has one current selection at a time,
// matching Emacs's single `selected_window`/`minibuf_window` globals —
// here made explicit context fields instead, per the window tree's design
// notes on avoiding true package-level globals).
//
// Context is not safe for concurrent use from multiple goroutines: every
// method mutates shared arena state.
type Context struct {
	Tree   *model.Tree
	Source buffer.Source
	Motion buffer.MotionOracle
	Config value.Config

	// DisplayOverride, when set, lets a host intercept DisplayBuffer
	// before the built-in policy runs.
	DisplayOverride Override

	currentScreen model.Handle
}

// DefaultConfig returns the subsystem's documented configuration defaults.
func DefaultConfig() Config {
	return value.DefaultConfig()
}

// NewContext creates an empty Context with no screens. Use NewScreen to
// add one.
func NewContext(src buffer.Source, motion buffer.MotionOracle, cfg value.Config) *Context {
	return &Context{
		Tree:          model.NewTree(),
		Source:        src,
		Motion:        motion,
		Config:        cfg.Normalize(),
		currentScreen: model.NoHandle,
	}
}

// NewScreen creates a screen of the given dimensions (with a minibuffer
// row unless withMinibuffer is false), makes it the current screen, and
// returns its ordinary root leaf — callers typically follow with SetBuffer
// to bind a buffer into it.
func (ctx *Context) NewScreen(width, height int, withMinibuffer bool) Handle {
	scrH := service.NewScreen(ctx.Tree, width, height, withMinibuffer)
	ctx.currentScreen = scrH
	return ctx.Tree.Screen(scrH).Selected
}

// CurrentScreen returns the screen currently holding the selected window.
func (ctx *Context) CurrentScreen() Handle {
	return ctx.currentScreen
}

func (ctx *Context) screenOrder() service.ScreenOrder {
	return service.ScreenOrder{Screens: ctx.Tree.Screens()}
}
