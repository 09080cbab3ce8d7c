package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
)

func TestDisplayBuffer(t *testing.T) {
	t.Run("reuses the selected window when it already shows the buffer", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)

		w, err := DisplayBuffer(tree, cfg, src, scrH, "scratch", false, nil)
		require.NoError(t, err)
		assert.Equal(t, scr.Selected, w)
	})

	t.Run("reuses a window elsewhere already showing the buffer", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		sibling, err := Split(tree, cfg, src, orig, nil, false)
		require.NoError(t, err)

		w, err := DisplayBuffer(tree, cfg, src, scrH, "scratch", true, nil)
		require.NoError(t, err)
		assert.Equal(t, sibling, w)
	})

	t.Run("splits the largest full-width window above the threshold", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(80, 600)
		cfg.SplitHeightThreshold = 100
		scr := tree.Screen(scrH)
		orig := scr.Selected
		src.CreateBuffer("second", "x\n")

		w, err := DisplayBuffer(tree, cfg, src, scrH, "second", true, nil)
		require.NoError(t, err)
		assert.NotEqual(t, orig, w)
		assert.Equal(t, buffer.ID("second"), tree.Node(w).BufferID)
	})

	t.Run("an override hook short-circuits the built-in policy", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		src.CreateBuffer("second", "x\n")

		called := false
		override := func(t *model.Tree, buf buffer.ID, notThisWindow bool) model.Handle {
			called = true
			return scr.Selected
		}
		w, err := DisplayBuffer(tree, cfg, src, scrH, "second", false, override)
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, scr.Selected, w)
		assert.Equal(t, buffer.ID("second"), tree.Node(w).BufferID)
	})
}

func TestGetLRUWindow(t *testing.T) {
	tree, src, scrH, cfg := newFixture(40, 20)
	scr := tree.Screen(scrH)
	orig := scr.Selected

	sibling, err := Split(tree, cfg, src, orig, nil, false)
	require.NoError(t, err)
	require.NoError(t, Select(tree, src, sibling))
	require.NoError(t, Select(tree, src, orig))

	assert.Equal(t, sibling, GetLRUWindow(tree, scrH))
}

func TestGetLargestWindow(t *testing.T) {
	tree, src, scrH, cfg := newFixture(40, 20)
	orig := tree.Screen(scrH).Selected

	_, err := Split(tree, cfg, src, orig, nil, false)
	require.NoError(t, err)
	require.NoError(t, ChangeHeight(tree, cfg, src, orig, 3, false))

	assert.Equal(t, orig, GetLargestWindow(tree, scrH, true))
}

func TestGetBufferWindow(t *testing.T) {
	tree, src, scrH, cfg := newFixture(40, 20)
	orig := tree.Screen(scrH).Selected
	src.CreateBuffer("second", "x\n")

	sibling, err := Split(tree, cfg, src, orig, nil, false)
	require.NoError(t, err)
	require.NoError(t, BindBuffer(tree, src, sibling, "second"))

	assert.Equal(t, sibling, GetBufferWindow(tree, scrH, "second"))
}
