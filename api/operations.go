package api

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/service"
)

// --- Create/inspect ---------------------------------------------------

// SelectedWindow returns the current screen's selected leaf.
func (ctx *Context) SelectedWindow() Handle {
	if ctx.currentScreen == model.NoHandle {
		return model.NoHandle
	}
	return ctx.Tree.Screen(ctx.currentScreen).Selected
}

// MinibufferWindow returns the current screen's minibuffer leaf, or
// NoHandle if it has none.
func (ctx *Context) MinibufferWindow() Handle {
	if ctx.currentScreen == model.NoHandle {
		return model.NoHandle
	}
	return ctx.Tree.Screen(ctx.currentScreen).Minibuffer
}

// IsWindow reports whether h addresses a live node.
func (ctx *Context) IsWindow(h Handle) bool {
	return ctx.Tree.Valid(h)
}

// IsMinibuffer reports whether w is its screen's minibuffer window.
func (ctx *Context) IsMinibuffer(w Handle) bool {
	n := ctx.Tree.Node(w)
	if n == nil {
		return false
	}
	scr := ctx.Tree.Screen(n.Screen)
	return scr.Minibuffer == w
}

// BufferOf returns the buffer w displays, or ok=false for a combination or
// an unbound leaf.
func (ctx *Context) BufferOf(w Handle) (buffer.ID, bool) {
	n := ctx.Tree.Node(w)
	if n == nil || !n.IsLeaf() || n.BufferID == "" {
		return "", false
	}
	return n.BufferID, true
}

// Height returns w's height in screen rows.
func (ctx *Context) Height(w Handle) int { return ctx.Tree.Node(w).Height }

// Width returns w's width in screen columns.
func (ctx *Context) Width(w Handle) int { return ctx.Tree.Node(w).Width }

// HScroll returns w's horizontal scroll offset.
func (ctx *Context) HScroll(w Handle) int { return ctx.Tree.Node(w).HScroll }

// Edges returns w's bounding box as (left, top, right, bottom).
func (ctx *Context) Edges(w Handle) (left, top, right, bottom int) {
	n := ctx.Tree.Node(w)
	return n.Left, n.Top, n.Right(), n.Bottom()
}

// PointOf returns w's current cursor position (its pointm marker).
func (ctx *Context) PointOf(w Handle) int {
	n := ctx.Tree.Node(w)
	if n.Pointm == nil {
		return 0
	}
	return n.Pointm.Position()
}

// StartOf returns w's viewport origin (its start marker).
func (ctx *Context) StartOf(w Handle) int {
	n := ctx.Tree.Node(w)
	if n.Start == nil {
		return 0
	}
	return n.Start.Position()
}

// EndOf returns the buffer position of w's last visible line, as recorded
// by the most recent redisplay (WindowEndPos).
func (ctx *Context) EndOf(w Handle) int { return ctx.Tree.Node(w).WindowEndPos }

// IsDedicated reports whether w refuses automatic buffer reassignment.
func (ctx *Context) IsDedicated(w Handle) bool { return ctx.Tree.Node(w).Dedicated }

// DisplayTable returns w's display table, or nil if none is set.
func (ctx *Context) DisplayTable(w Handle) any { return ctx.Tree.Node(w).DisplayTable }

// PositionVisible reports whether pos is within w's current viewport.
func (ctx *Context) PositionVisible(pos int, w Handle) bool {
	return service.Visible(ctx.Tree, ctx.Motion, w, pos)
}

// WindowFromCoordinates returns the leaf containing screen position
// (x, y) on scr, and whether that position falls on its mode line (the
// bottom row of a leaf that wants one). Returns NoHandle if no leaf
// contains the point.
func (ctx *Context) WindowFromCoordinates(scr Handle, x, y int) (Handle, bool) {
	s := ctx.Tree.Screen(scr)
	for _, l := range ctx.Tree.Leaves(s.Root) {
		n := ctx.Tree.Node(l)
		if x < n.Left || x >= n.Right() || y < n.Top || y >= n.Bottom() {
			continue
		}
		onModeline := s.WantsModeline && y == n.Bottom()-1
		return l, onModeline
	}
	return model.NoHandle, false
}

// --- Mutate -------------------------------------------------------------

// SetHScroll sets w's horizontal scroll offset.
func (ctx *Context) SetHScroll(w Handle, n int) {
	if n < 0 {
		n = 0
	}
	ctx.Tree.Node(w).HScroll = n
}

// SetPoint moves w's cursor to pos, and updates its buffer's own point to
// match.
func (ctx *Context) SetPoint(w Handle, pos int) error {
	n := ctx.Tree.Node(w)
	if !n.IsLeaf() || n.Pointm == nil {
		return ErrArgumentTypeMismatch
	}
	n.Pointm.SetPosition(pos)
	if buf, ok := ctx.Source.Lookup(n.BufferID); ok {
		buf.SetPoint(pos)
	}
	return nil
}

// SetStart moves w's viewport origin to pos. If noforce is set,
// ForceStart is cleared so redisplay is free to adjust start again on the
// next pass; noforce=false pins it exactly, matching window.c's
// set_window_start force argument (inverted here to Go's "noforce"
// naming, since the common case is NOT forcing).
func (ctx *Context) SetStart(w Handle, pos int, noforce bool) {
	n := ctx.Tree.Node(w)
	if n.Start != nil {
		n.Start.SetPosition(pos)
	}
	n.ForceStart = !noforce
	n.StartAtLineBeg = false
}

// SetBuffer binds buf into w.
func (ctx *Context) SetBuffer(w Handle, buf buffer.ID) error {
	return service.BindBuffer(ctx.Tree, ctx.Source, w, buf)
}

// SetBufferDedicated sets or clears w's dedicated flag.
func (ctx *Context) SetBufferDedicated(w Handle, dedicated bool) {
	ctx.Tree.Node(w).Dedicated = dedicated
}

// SetDisplayTable installs dt as w's display table.
func (ctx *Context) SetDisplayTable(w Handle, dt any) {
	ctx.Tree.Node(w).DisplayTable = dt
}

// Split divides w into two windows along the given axis. See
// service.Split for the full size/axis contract.
func (ctx *Context) Split(w Handle, size *int, horizontal bool) (Handle, error) {
	return service.Split(ctx.Tree, ctx.Config, ctx.Source, w, size, horizontal)
}

// Delete removes w, donating its space to a sibling.
func (ctx *Context) Delete(w Handle) error {
	return service.Delete(ctx.Tree, ctx.Config, ctx.Source, w)
}

// DeleteOtherWindows deletes every window on w's screen except w.
func (ctx *Context) DeleteOtherWindows(w Handle) error {
	return service.DeleteOtherWindows(ctx.Tree, ctx.Config, ctx.Source, w)
}

// DeleteWindowsOn deletes every window, on every screen, showing buf.
func (ctx *Context) DeleteWindowsOn(buf buffer.ID) error {
	return service.DeleteWindowsOn(ctx.Tree, ctx.Config, ctx.Source, buf)
}

// ReplaceBufferInWindows returns every window currently showing buf, for
// the caller to rebind via SetBuffer (buf itself is presumed about to be
// killed).
func (ctx *Context) ReplaceBufferInWindows(buf buffer.ID) []Handle {
	return service.ReplaceBufferInWindows(ctx.Tree, buf)
}

// Enlarge grows the selected window by n rows (or, if side, n columns).
func (ctx *Context) Enlarge(n int, side bool) error {
	return service.ChangeHeight(ctx.Tree, ctx.Config, ctx.Source, ctx.SelectedWindow(), n, side)
}

// Shrink shrinks the selected window by n rows (or, if side, n columns).
func (ctx *Context) Shrink(n int, side bool) error {
	return service.ChangeHeight(ctx.Tree, ctx.Config, ctx.Source, ctx.SelectedWindow(), -n, side)
}

// ScrollUp scrolls the selected window forward.
func (ctx *Context) ScrollUp(n *int) error {
	return service.ScrollUp(ctx.Tree, ctx.Config, ctx.Source, ctx.Motion, ctx.SelectedWindow(), n)
}

// ScrollDown scrolls the selected window backward.
func (ctx *Context) ScrollDown(n *int) error {
	return service.ScrollDown(ctx.Tree, ctx.Config, ctx.Source, ctx.Motion, ctx.SelectedWindow(), n)
}

// ScrollLeft shifts the selected window's horizontal scroll right by n
// columns (default width-2), revealing text further right.
func (ctx *Context) ScrollLeft(n *int) error {
	return ctx.scrollHorizontal(n, 1)
}

// ScrollRight is ScrollLeft's mirror, revealing text further left.
func (ctx *Context) ScrollRight(n *int) error {
	return ctx.scrollHorizontal(n, -1)
}

func (ctx *Context) scrollHorizontal(n *int, dir int) error {
	w := ctx.SelectedWindow()
	node := ctx.Tree.Node(w)
	if node == nil || !node.IsLeaf() {
		return ErrArgumentTypeMismatch
	}
	cols := node.Width - 2
	if n != nil {
		cols = *n
	}
	next := node.HScroll + dir*cols
	if next < 0 {
		next = 0
	}
	node.HScroll = next
	return nil
}

// ScrollOtherWindow scrolls the next window in canonical order (the
// conventional "other window" target when the selected window is a
// minibuffer being read).
func (ctx *Context) ScrollOtherWindow(n *int) error {
	other := service.Next(ctx.Tree, ctx.SelectedWindow(), MiniBufferNever, ctx.screenOrder(), false)
	return service.ScrollUp(ctx.Tree, ctx.Config, ctx.Source, ctx.Motion, other, n)
}

// Recenter repositions the selected window's viewport around point.
func (ctx *Context) Recenter(n *int) error {
	return service.Recenter(ctx.Tree, ctx.Source, ctx.Motion, ctx.SelectedWindow(), n)
}

// MoveToWindowLine moves point to the given screen row of the selected
// window's viewport.
func (ctx *Context) MoveToWindowLine(n int) error {
	return service.MoveToWindowLine(ctx.Tree, ctx.Source, ctx.Motion, ctx.SelectedWindow(), n)
}

// --- Navigate -------------------------------------------------------------

// NextWindow returns the leaf after w in canonical order. w defaults to
// the selected window when NoHandle.
func (ctx *Context) NextWindow(w Handle, policy MiniBufferPolicy, allScreens bool) Handle {
	if w == model.NoHandle {
		w = ctx.SelectedWindow()
	}
	return service.Next(ctx.Tree, w, policy, ctx.screenOrderFor(allScreens), ctx.minibufActive())
}

// PreviousWindow is NextWindow's mirror.
func (ctx *Context) PreviousWindow(w Handle, policy MiniBufferPolicy, allScreens bool) Handle {
	if w == model.NoHandle {
		w = ctx.SelectedWindow()
	}
	return service.Previous(ctx.Tree, w, policy, ctx.screenOrderFor(allScreens), ctx.minibufActive())
}

// OtherWindow moves the selection n steps forward (or, if negative,
// backward) in canonical order and selects the result.
func (ctx *Context) OtherWindow(n int, allScreens bool) error {
	w := ctx.SelectedWindow()
	order := ctx.screenOrderFor(allScreens)
	if n >= 0 {
		for i := 0; i < n; i++ {
			w = service.Next(ctx.Tree, w, MiniBufferIncludeIfActive, order, ctx.minibufActive())
		}
	} else {
		for i := 0; i < -n; i++ {
			w = service.Previous(ctx.Tree, w, MiniBufferIncludeIfActive, order, ctx.minibufActive())
		}
	}
	return ctx.SelectWindow(w)
}

// SelectWindow makes w the selected window, updating the current screen
// if w belongs to a different one.
func (ctx *Context) SelectWindow(w Handle) error {
	if err := service.Select(ctx.Tree, ctx.Source, w); err != nil {
		return err
	}
	ctx.currentScreen = ctx.Tree.Node(w).Screen
	return nil
}

// GetBufferWindow finds a window showing buf, searching scope.
func (ctx *Context) GetBufferWindow(buf buffer.ID, scope Scope) Handle {
	if scope == ScopeAllScreens {
		return service.GetBufferWindow(ctx.Tree, ctx.currentScreen, buf)
	}
	scr := ctx.currentScreen
	for _, l := range ctx.Tree.Leaves(ctx.Tree.Screen(scr).Root) {
		if ctx.Tree.Node(l).BufferID == buf {
			return l
		}
	}
	return model.NoHandle
}

// GetLRUWindow returns the least-recently-used eligible leaf within scope.
func (ctx *Context) GetLRUWindow(scope Scope) Handle {
	return ctx.reduceOverScope(scope, service.GetLRUWindow, func(a, b Handle) Handle {
		if a == model.NoHandle {
			return b
		}
		if b == model.NoHandle {
			return a
		}
		if ctx.Tree.Node(b).UseTime < ctx.Tree.Node(a).UseTime {
			return b
		}
		return a
	})
}

// GetLargestWindow returns the largest eligible leaf within scope.
func (ctx *Context) GetLargestWindow(scope Scope) Handle {
	return ctx.reduceOverScope(scope, func(t *model.Tree, scr Handle) Handle {
		return service.GetLargestWindow(t, scr, false)
	}, func(a, b Handle) Handle {
		if a == model.NoHandle {
			return b
		}
		if b == model.NoHandle {
			return a
		}
		if ctx.Tree.Node(b).Area() > ctx.Tree.Node(a).Area() {
			return b
		}
		return a
	})
}

func (ctx *Context) reduceOverScope(scope Scope, perScreen func(*model.Tree, Handle) Handle, better func(a, b Handle) Handle) Handle {
	if scope == ScopeSelectedScreen {
		return perScreen(ctx.Tree, ctx.currentScreen)
	}
	best := model.NoHandle
	for _, scrH := range ctx.Tree.Screens() {
		best = better(best, perScreen(ctx.Tree, scrH))
	}
	return best
}

// DisplayBuffer chooses (and binds buf into) a window to show buf,
// following the configured policy and DisplayOverride hook.
func (ctx *Context) DisplayBuffer(buf buffer.ID, notThisWindow bool) (Handle, error) {
	return service.DisplayBuffer(ctx.Tree, ctx.Config, ctx.Source, ctx.currentScreen, buf, notThisWindow, ctx.DisplayOverride)
}

// --- Configuration --------------------------------------------------------

// CurrentWindowConfiguration snapshots the current screen's window tree.
func (ctx *Context) CurrentWindowConfiguration() Snapshot {
	return service.TakeSnapshot(ctx.Tree, ctx.currentScreen)
}

// SetWindowConfiguration restores a previously taken snapshot onto the
// current screen.
func (ctx *Context) SetWindowConfiguration(snap Snapshot) error {
	return service.Restore(ctx.Tree, ctx.Source, ctx.currentScreen, snap)
}

// IsWindowConfiguration reports whether x is a Snapshot.
func (ctx *Context) IsWindowConfiguration(x any) bool {
	_, ok := x.(Snapshot)
	return ok
}

// SaveWindowExcursion runs body with the current screen's configuration
// and selected window snapshotted, restoring them afterward — even if
// body panics, via defer/recover-rethrow, matching Go's idiomatic
// translation of an unwind-protect-guarded save/restore.
func (ctx *Context) SaveWindowExcursion(body func() error) (err error) {
	snap := ctx.CurrentWindowConfiguration()

	defer func() {
		restoreErr := ctx.SetWindowConfiguration(snap)
		if r := recover(); r != nil {
			panic(r)
		}
		if err == nil {
			err = restoreErr
		}
	}()

	return body()
}

func (ctx *Context) screenOrderFor(allScreens bool) service.ScreenOrder {
	if !allScreens {
		return service.ScreenOrder{Screens: []Handle{ctx.currentScreen}}
	}
	return ctx.screenOrder()
}

func (ctx *Context) minibufActive() bool {
	mb := ctx.MinibufferWindow()
	if mb == model.NoHandle {
		return false
	}
	return ctx.SelectedWindow() == mb
}
