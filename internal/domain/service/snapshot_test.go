package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/wintree/internal/domain/value"
)

func TestTakeSnapshotRestore(t *testing.T) {
	t.Run("round-trips a split layout, preserving geometry and selection", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		size := 15
		sibling, err := Split(tree, cfg, src, orig, &size, true)
		require.NoError(t, err)
		require.NoError(t, Select(tree, src, sibling))

		snap := TakeSnapshot(tree, scrH)
		assert.Equal(t, 40, snap.ScreenWidth)
		assert.Equal(t, 20, snap.ScreenHeight)
		assert.Len(t, snap.Nodes, 5) // root v-comb + h-comb + orig + sibling + minibuffer

		require.NoError(t, Restore(tree, src, scrH, snap))

		leaves := tree.Leaves(scr.Root)
		assert.Len(t, leaves, 3) // orig + sibling + minibuffer

		widths := map[int]bool{}
		for _, l := range leaves {
			widths[tree.Node(l).Width] = true
		}
		assert.Equal(t, map[int]bool{15: true, 25: true, 40: true}, widths)

		sel := tree.Node(scr.Selected)
		require.NotNil(t, sel)
		assert.Equal(t, "scratch", string(sel.BufferID))

		require.True(t, tree.Valid(scr.Minibuffer))
		assert.Contains(t, leaves, scr.Minibuffer)
		assert.NotEqual(t, scr.Selected, scr.Minibuffer)
	})

	t.Run("rejects a snapshot whose screen size no longer matches", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		snap := TakeSnapshot(tree, scrH)

		otherH := NewScreen(tree, 80, 24, true)
		err := Restore(tree, src, otherH, snap)
		assert.ErrorIs(t, err, value.ErrScreenSizeMismatch)
	})

	t.Run("substitutes the first live buffer when the recorded one is gone", func(t *testing.T) {
		tree, src, scrH, _ := newFixture(40, 20)
		snap := TakeSnapshot(tree, scrH)

		src.Kill("scratch")
		src.CreateBuffer("fallback", "x\n")

		require.NoError(t, Restore(tree, src, scrH, snap))

		scr := tree.Screen(scrH)
		leaves := tree.Leaves(scr.Root)
		require.Len(t, leaves, 2) // ordinary leaf + minibuffer, neither showing "scratch" anymore
		for _, l := range leaves {
			assert.Equal(t, "fallback", string(tree.Node(l).BufferID))
		}
	})

	t.Run("a vertical split leaves every leaf full width in the restored tree", func(t *testing.T) {
		tree, src, scrH, cfg := newFixture(40, 20)
		scr := tree.Screen(scrH)
		orig := scr.Selected

		_, err := Split(tree, cfg, src, orig, nil, false)
		require.NoError(t, err)

		snap := TakeSnapshot(tree, scrH)
		require.NoError(t, Restore(tree, src, scrH, snap))

		leaves := tree.Leaves(scr.Root)
		require.Len(t, leaves, 3)

		heightSum := 0
		for _, l := range leaves {
			assert.Equal(t, 40, tree.Node(l).Width)
			heightSum += tree.Node(l).Height
		}
		assert.Equal(t, 20, heightSum)
	})
}
