package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

func TestSplit(t *testing.T) {
	t.Run("vertical split divides height and shares the buffer", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		sibling, err := Split(tree, cfg, src, orig, nil, false)
		require.NoError(t, err)

		origNode, sibNode := tree.Node(orig), tree.Node(sibling)
		assert.Equal(t, origNode.BufferID, sibNode.BufferID)
		assert.Equal(t, origNode.Height+sibNode.Height, 19) // screen height minus minibuffer row
		assert.Equal(t, origNode.Width, sibNode.Width)
		assert.Equal(t, origNode.Next, sibling)
		assert.Equal(t, sibNode.Prev, orig)
	})

	t.Run("horizontal split divides width and shares the top", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(80, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		sibling, err := Split(tree, cfg, src, orig, nil, true)
		require.NoError(t, err)

		origNode, sibNode := tree.Node(orig), tree.Node(sibling)
		assert.Equal(t, origNode.Top, sibNode.Top)
		assert.Equal(t, origNode.Height, sibNode.Height)
		assert.Equal(t, 80, origNode.Width+sibNode.Width)
	})

	t.Run("rejects split of the minibuffer", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)

		_, err := Split(tree, cfg, src, scr.Minibuffer, nil, false)
		assert.ErrorIs(t, err, value.ErrMinibufferOperation)
	})

	t.Run("rejects a split that would violate the minimum size", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 5)
		scr := tree.Screen(scrH)

		_, err := Split(tree, cfg, src, scr.Selected, nil, false)
		assert.ErrorIs(t, err, value.ErrMinSizeViolation)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deleting a window donates its space to its sibling", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		sibling, err := Split(tree, cfg, src, orig, nil, false)
		require.NoError(t, err)
		origHeight := tree.Node(orig).Height

		require.NoError(t, Delete(tree, cfg, src, sibling))

		assert.Greater(t, tree.Node(orig).Height, origHeight)
		assert.Equal(t, 19, tree.Node(orig).Height)
		assert.Equal(t, scr.Minibuffer, tree.Node(orig).Next)
	})

	t.Run("deleting the selected window selects the next window", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		sibling, err := Split(tree, cfg, src, orig, nil, false)
		require.NoError(t, err)
		require.NoError(t, Select(tree, src, sibling))

		require.NoError(t, Delete(tree, cfg, src, sibling))

		assert.Equal(t, orig, tree.Screen(scrH).Selected)
	})

	t.Run("rejects deleting the sole ordinary window", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)

		err := Delete(tree, cfg, src, scr.Selected)
		assert.ErrorIs(t, err, value.ErrSoleOrdinaryWindow)
	})

	t.Run("rejects deleting the minibuffer", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)

		err := Delete(tree, cfg, src, scr.Minibuffer)
		assert.ErrorIs(t, err, value.ErrMinibufferOperation)
	})

	t.Run("collapses a degenerate parent down to the surviving child", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		sibling, err := Split(tree, cfg, src, orig, nil, true)
		require.NoError(t, err)
		parent := tree.Node(orig).Parent
		require.NotEqual(t, model.NoHandle, parent)

		require.NoError(t, Delete(tree, cfg, src, sibling))

		assert.Equal(t, scr.Root, tree.Node(orig).Parent)
		assert.False(t, tree.Valid(parent))
	})
}

func TestDeleteOtherWindows(t *testing.T) {
	tree, src, scrH, cfg := newFixture(40, 20)
	scr := tree.Screen(scrH)
	orig := scr.Selected

	_, err := Split(tree, cfg, src, orig, nil, false)
	require.NoError(t, err)
	third, err := Split(tree, cfg, src, orig, nil, true)
	require.NoError(t, err)
	_ = third

	require.NoError(t, DeleteOtherWindows(tree, cfg, src, orig))

	leaves := tree.Leaves(scr.Root)
	assert.ElementsMatch(t, []model.Handle{orig, scr.Minibuffer}, leaves)
	assert.Equal(t, orig, scr.Selected)
}

func TestDeleteWindowsOn(t *testing.T) {
	tree, src, scrH, cfg := newFixture(40, 20)
	scr := tree.Screen(scrH)
	orig := scr.Selected

	sibling, err := Split(tree, cfg, src, orig, nil, false)
	require.NoError(t, err)
	src.CreateBuffer("second", "a\nb\n")
	require.NoError(t, BindBuffer(tree, src, sibling, "second"))

	require.NoError(t, DeleteWindowsOn(tree, cfg, src, "scratch"))

	leaves := tree.Leaves(scr.Root)
	assert.ElementsMatch(t, []model.Handle{sibling, scr.Minibuffer}, leaves)
	for _, l := range leaves {
		assert.NotEqual(t, buffer.ID("scratch"), tree.Node(l).BufferID)
	}
}
