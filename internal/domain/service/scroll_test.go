package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/wintree/internal/domain/value"
)

func TestVisible(t *testing.T) {
	tree, src, scrH, _ := newFixture(40, 20)
	scr := tree.Screen(scrH)
	w := scr.Selected

	assert.True(t, Visible(tree, src, w, 0))
	assert.False(t, Visible(tree, src, w, -1))
}

func TestScroll(t *testing.T) {
	t.Run("moves the viewport forward by n lines", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected
		n := tree.Node(w)

		require.NoError(t, Scroll(tree, src, src, w, 1))

		assert.Equal(t, 4, n.Start.Position())
		assert.Equal(t, 8, n.Pointm.Position())
	})

	t.Run("reports end of buffer when the viewport is already past the end", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected

		err := ScrollUp(tree, cfg, src, src, w, nil)
		assert.ErrorIs(t, err, value.ErrEndOfBuffer)
	})

	t.Run("reports beginning of buffer when scrolling back past the start", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected

		err := Scroll(tree, src, src, w, -5)
		assert.ErrorIs(t, err, value.ErrBeginningOfBuffer)
	})

	t.Run("recenters around point first when point has wandered off-screen", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected
		n := tree.Node(w)

		n.Start.SetPosition(100000)
		n.Pointm.SetPosition(4)

		require.NoError(t, Scroll(tree, src, src, w, 0))
		assert.LessOrEqual(t, n.Start.Position(), 4)
	})
}

func TestScrollUpDown(t *testing.T) {
	t.Run("default n is window height minus the configured overlap", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected

		err := ScrollUp(tree, cfg, src, src, w, nil)
		assert.ErrorIs(t, err, value.ErrEndOfBuffer)
	})

	t.Run("an explicit n overrides the default", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected
		n := tree.Node(w)

		one, two := 1, 2
		require.NoError(t, ScrollUp(tree, cfg, src, src, w, &one))
		assert.Equal(t, 4, n.Start.Position())

		require.NoError(t, ScrollUp(tree, cfg, src, src, w, &two))
		assert.Equal(t, 14, n.Start.Position())
	})
}

func TestRecenter(t *testing.T) {
	tree, src, scrH, _ := newFixture(40, 20)
	scr := tree.Screen(scrH)
	w := scr.Selected
	n := tree.Node(w)

	require.NoError(t, Recenter(tree, src, src, w, nil))

	assert.Equal(t, 0, n.Start.Position())
	assert.True(t, n.ForceStart)
}

func TestMoveToWindowLine(t *testing.T) {
	t.Run("moves point to the given screen row of the current viewport", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected
		n := tree.Node(w)

		require.NoError(t, MoveToWindowLine(tree, src, src, w, 3))
		assert.Equal(t, 14, n.Pointm.Position())
	})

	t.Run("a negative row counts from the bottom of the window", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		scr := tree.Screen(scrH)
		w := scr.Selected
		n := tree.Node(w)

		require.NoError(t, MoveToWindowLine(tree, src, src, w, -3))
		assert.GreaterOrEqual(t, n.Pointm.Position(), 0)
	})
}
