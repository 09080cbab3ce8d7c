package service

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// BindBuffer binds leaf w to buf, replacing whatever it showed before. buf
// must be alive. If w is dedicated to a different buffer, BindBuffer
// refuses with ErrDedicatedWindow rather than displacing it. Otherwise the
// previous buffer (if any) is unshown, a fresh pointm marker is created at
// buf's current point, a fresh start marker is created at buf's last
// recorded window-start, start_at_line_beg and last_modified are reset so
// redisplay treats the window as freshly (re)bound, and
// Tree.WindowsOrBuffersChanged is bumped.
func BindBuffer(t *model.Tree, src buffer.Source, w model.Handle, buf buffer.ID) error {
	n := t.Node(w)
	if !n.IsLeaf() {
		return value.ErrArgumentTypeMismatch
	}

	newBuf, ok := src.Lookup(buf)
	if !ok || !newBuf.Alive() {
		return value.ErrDeletedWindow
	}
	if n.Dedicated && n.BufferID != "" && n.BufferID != buf {
		return value.ErrDedicatedWindow
	}

	if n.BufferID != "" && n.BufferID != buf {
		unshowBuffer(t, src, w)
		if n.Pointm != nil {
			src.UnchainMarker(n.Pointm)
		}
		if n.Start != nil {
			src.UnchainMarker(n.Start)
		}
	}

	n.BufferID = buf
	n.Pointm = src.CreateMarker(buf, newBuf.Point())
	n.Start = src.CreateMarker(buf, newBuf.LastWindowStart())
	n.StartAtLineBeg = true
	n.LastModified = 0

	t.WindowsOrBuffersChanged++
	return nil
}

// unshowBuffer persists a soon-to-be-unbound leaf's viewport and point back
// onto its buffer: start becomes the buffer's last_window_start, and pointm
// becomes the buffer's own point provided no other live window is currently
// displaying (and selected-in) that buffer — if one is, that window's point
// is more authoritative and w's is discarded.
func unshowBuffer(t *model.Tree, src buffer.Source, w model.Handle) {
	n := t.Node(w)
	if n.BufferID == "" {
		return
	}
	buf, ok := src.Lookup(n.BufferID)
	if !ok {
		return
	}
	if n.Start != nil {
		buf.SetLastWindowStart(n.Start.Position())
	}

	otherSelected := false
	for _, scrH := range t.Screens() {
		scr := t.Screen(scrH)
		if scr.Selected == w {
			continue
		}
		if sel := t.Node(scr.Selected); sel != nil && sel.IsLeaf() && sel.BufferID == n.BufferID {
			otherSelected = true
			break
		}
	}
	if !otherSelected && n.Pointm != nil {
		buf.SetPoint(n.Pointm.Position())
	}
}

// Select makes w the selected window of its screen (and, implicitly, of
// the whole tree — only one screen's selection is ever "the" selection
// from a host's point of view, but every screen remembers its own). w must
// be a leaf. Select persists the previously-selected leaf's point from its
// buffer, bumps w's use-time, updates the screen's Selected field, and
// clips w's point to its buffer's visible range [BegV, ZV].
func Select(t *model.Tree, src buffer.Source, w model.Handle) error {
	n := t.Node(w)
	if n == nil || !n.IsLeaf() {
		return value.ErrArgumentTypeMismatch
	}

	scr := t.Screen(n.Screen)
	prev := scr.Selected
	if prev != model.NoHandle && prev != w {
		if pn := t.Node(prev); pn != nil && pn.IsLeaf() && pn.BufferID != "" && pn.Pointm != nil {
			if buf, ok := src.Lookup(pn.BufferID); ok {
				pn.Pointm.SetPosition(buf.Point())
			}
		}
	}

	scr.Selected = w
	n.UseTime = t.BumpUseTime()

	if n.BufferID != "" {
		if buf, ok := src.Lookup(n.BufferID); ok && n.Pointm != nil {
			pos := n.Pointm.Position()
			if pos < buf.BegV() {
				pos = buf.BegV()
			}
			if pos > buf.ZV() {
				pos = buf.ZV()
			}
			n.Pointm.SetPosition(pos)
			buf.SetPoint(pos)
		}
	}

	return nil
}
