package service

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// Visible reports whether pos falls within w's current viewport — between
// its start marker and the position reached by moving the window's height
// forward from there.
func Visible(t *model.Tree, motion buffer.MotionOracle, w model.Handle, pos int) bool {
	leaf := t.Node(w)
	if !leaf.IsLeaf() || leaf.BufferID == "" || leaf.Start == nil {
		return false
	}
	startPos := leaf.Start.Position()
	end := motion.VerticalMotion(leaf.BufferID, startPos, leaf.Height)
	return pos >= startPos && pos < end.Pos
}

// Scroll moves leaf w's viewport by n screen lines (positive scrolls
// forward/down, negative backward/up). If point is not currently visible
// within the viewport, it is recentered to half a window-height above
// point first, matching window.c's Fscroll_up/Fscroll_down when point has
// wandered off-screen between commands. Returns ErrBeginningOfBuffer when
// scrolling backward is already at the buffer's start, or ErrEndOfBuffer
// when scrolling forward would move past the buffer's end.
func Scroll(t *model.Tree, src buffer.Source, motion buffer.MotionOracle, w model.Handle, n int) error {
	leaf := t.Node(w)
	if !leaf.IsLeaf() || leaf.BufferID == "" {
		return value.ErrArgumentTypeMismatch
	}
	buf, ok := src.Lookup(leaf.BufferID)
	if !ok {
		return value.ErrArgumentTypeMismatch
	}

	startPos := leaf.Start.Position()
	pointPos := leaf.Pointm.Position()
	height := leaf.Height

	end := motion.VerticalMotion(leaf.BufferID, startPos, height)
	visible := pointPos >= startPos && pointPos < end.Pos
	if !visible {
		recentered := motion.VerticalMotion(leaf.BufferID, pointPos, -height/2)
		startPos = recentered.Pos
	}

	m := motion.VerticalMotion(leaf.BufferID, startPos, n)

	if n < 0 && startPos <= buf.BegV() {
		return value.ErrBeginningOfBuffer
	}
	if n > 0 && m.PastBufferEnd {
		return value.ErrEndOfBuffer
	}

	newStart := m.Pos
	leaf.Start.SetPosition(newStart)
	leaf.StartAtLineBeg = m.StartsAtLineBeg

	if pointPos < newStart {
		down := motion.VerticalMotion(leaf.BufferID, newStart, 1)
		pointPos = down.Pos
	}
	leaf.Pointm.SetPosition(pointPos)
	buf.SetPoint(pointPos)

	leaf.LastModified = buf.ModTime()
	return nil
}

// ScrollUp scrolls w forward. When n is nil, the default is the window's
// height minus the configured overlap (next_screen_context_lines), so
// consecutive full-window scrolls keep a few lines of context in view.
func ScrollUp(t *model.Tree, cfg value.Config, src buffer.Source, motion buffer.MotionOracle, w model.Handle, n *int) error {
	lines := t.Node(w).Height - cfg.NextScreenContextLines
	if n != nil {
		lines = *n
	}
	return Scroll(t, src, motion, w, lines)
}

// ScrollDown is ScrollUp's mirror, moving the viewport backward.
func ScrollDown(t *model.Tree, cfg value.Config, src buffer.Source, motion buffer.MotionOracle, w model.Handle, n *int) error {
	lines := t.Node(w).Height - cfg.NextScreenContextLines
	if n != nil {
		lines = *n
	}
	return Scroll(t, src, motion, w, -lines)
}

// Recenter repositions w's viewport so point's line lands at screen row n
// (default height/2; a negative n counts rows from the bottom), updating
// start and setting ForceStart so redisplay honors the new start exactly
// rather than reusing its own idea of where the viewport begins.
func Recenter(t *model.Tree, src buffer.Source, motion buffer.MotionOracle, w model.Handle, n *int) error {
	leaf := t.Node(w)
	if !leaf.IsLeaf() || leaf.BufferID == "" {
		return value.ErrArgumentTypeMismatch
	}

	row := leaf.Height / 2
	if n != nil {
		row = *n
		if row < 0 {
			row = leaf.Height + row
		}
	}

	pointPos := leaf.Pointm.Position()
	m := motion.VerticalMotion(leaf.BufferID, pointPos, -row)

	leaf.Start.SetPosition(m.Pos)
	leaf.StartAtLineBeg = m.StartsAtLineBeg
	leaf.ForceStart = true

	return nil
}

// MoveToWindowLine moves point to screen row n of w's current viewport
// (negative n counts from the bottom, as with Recenter), clamped to the
// buffer's accessible range.
func MoveToWindowLine(t *model.Tree, src buffer.Source, motion buffer.MotionOracle, w model.Handle, n int) error {
	leaf := t.Node(w)
	if !leaf.IsLeaf() || leaf.BufferID == "" {
		return value.ErrArgumentTypeMismatch
	}
	buf, ok := src.Lookup(leaf.BufferID)
	if !ok {
		return value.ErrArgumentTypeMismatch
	}

	row := n
	if row < 0 {
		row = leaf.Height + row
	}

	startPos := leaf.Start.Position()
	m := motion.VerticalMotion(leaf.BufferID, startPos, row)

	pos := m.Pos
	if pos < buf.BegV() {
		pos = buf.BegV()
	}
	if pos > buf.ZV() {
		pos = buf.ZV()
	}
	leaf.Pointm.SetPosition(pos)
	buf.SetPoint(pos)
	return nil
}
