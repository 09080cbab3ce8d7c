package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/wintree/api"
	"github.com/phoenix-tui/wintree/buffer"
)

func newContext() (*api.Context, *buffer.Memory) {
	src := buffer.NewMemory()
	src.CreateBuffer("B", "alpha\nbeta\ngamma\n")
	ctx := api.NewContext(src, src, api.DefaultConfig())
	return ctx, src
}

// Scenario 1: splitting a screen's sole ordinary leaf yields a v-combination
// of two leaves sharing the original buffer.
func TestScenario_SplitSingleLeaf(t *testing.T) {
	ctx, _ := newContext()
	root := ctx.NewScreen(80, 24, true)
	require.NoError(t, ctx.SetBuffer(root, "B"))

	sibling, err := ctx.Split(root, nil, false)
	require.NoError(t, err)

	assert.Equal(t, 11, ctx.Height(root))
	assert.Equal(t, 12, ctx.Height(sibling))

	rootBuf, _ := ctx.BufferOf(root)
	sibBuf, _ := ctx.BufferOf(sibling)
	assert.Equal(t, buffer.ID("B"), rootBuf)
	assert.Equal(t, buffer.ID("B"), sibBuf)
}

// Scenario 2: enlarging the top leaf of an even v-combination split borrows
// exactly the requested rows from its sibling.
func TestScenario_EnlargeTopLeaf(t *testing.T) {
	ctx, _ := newContext()
	root := ctx.NewScreen(80, 24, false)
	require.NoError(t, ctx.SetBuffer(root, "B"))

	bottom, err := ctx.Split(root, nil, false)
	require.NoError(t, err)
	require.Equal(t, 12, ctx.Height(root))
	require.Equal(t, 12, ctx.Height(bottom))

	require.NoError(t, ctx.SelectWindow(root))
	require.NoError(t, ctx.Enlarge(3, false))

	assert.Equal(t, 15, ctx.Height(root))
	assert.Equal(t, 9, ctx.Height(bottom))
}

// Scenario 3: shrinking the top leaf below window_min_height deletes it and
// collapses the now-degenerate parent down to the surviving leaf.
func TestScenario_ShrinkBelowMinimumDeletes(t *testing.T) {
	src := buffer.NewMemory()
	src.CreateBuffer("B", "x\n")
	cfg := api.DefaultConfig()
	cfg.WindowMinHeight = 3
	ctx := api.NewContext(src, src, cfg)

	root := ctx.NewScreen(80, 7, false)
	require.NoError(t, ctx.SetBuffer(root, "B"))

	bottom, err := ctx.Split(root, nil, false)
	require.NoError(t, err)
	require.Equal(t, 3, ctx.Height(root))
	require.Equal(t, 4, ctx.Height(bottom))

	// Raise the minimum after splitting so that shrinking root by one row
	// drops it below window_min_height.
	ctx.Config.WindowMinHeight = 4

	require.NoError(t, ctx.SelectWindow(root))
	require.NoError(t, ctx.Shrink(1, false))

	assert.False(t, ctx.IsWindow(root))
	assert.True(t, ctx.IsWindow(bottom))
	assert.Equal(t, bottom, ctx.Tree.Screen(ctx.CurrentScreen()).Root)
	assert.Equal(t, bottom, ctx.SelectedWindow())
	assert.Equal(t, 7, ctx.Height(bottom))
}

// Scenario 5: restoring a just-taken snapshot after arbitrary mutation
// reproduces the captured topology, geometry and marker positions exactly.
func TestScenario_RestoreAfterArbitraryMutation(t *testing.T) {
	ctx, _ := newContext()
	root := ctx.NewScreen(80, 24, true)
	require.NoError(t, ctx.SetBuffer(root, "B"))

	right, err := ctx.Split(root, nil, true)
	require.NoError(t, err)
	require.NoError(t, ctx.SetPoint(right, 2))

	snap := ctx.CurrentWindowConfiguration()
	leftWidthBefore, rightWidthBefore := ctx.Width(root), ctx.Width(right)
	pointBefore := ctx.PointOf(right)

	_, err = ctx.Split(root, nil, false)
	require.NoError(t, err)
	require.NoError(t, ctx.Delete(right))

	require.NoError(t, ctx.SetWindowConfiguration(snap))

	leaves := ctx.Tree.Leaves(ctx.Tree.Screen(ctx.CurrentScreen()).Root)
	assert.Len(t, leaves, 3) // left leaf, right leaf, minibuffer

	restoredLeft, restoredRight := api.NoHandle, api.NoHandle
	for _, l := range leaves {
		if ctx.IsMinibuffer(l) {
			continue
		}
		if left, _, _, _ := ctx.Edges(l); left == 0 {
			restoredLeft = l
		} else {
			restoredRight = l
		}
	}
	require.NotEqual(t, api.NoHandle, restoredLeft)
	require.NotEqual(t, api.NoHandle, restoredRight)
	assert.Equal(t, leftWidthBefore, ctx.Width(restoredLeft))
	assert.Equal(t, rightWidthBefore, ctx.Width(restoredRight))
	assert.Equal(t, pointBefore, ctx.PointOf(restoredRight))
}

// Scenario 6: get_lru_window returns the eligible leaf with the smallest
// use_time.
func TestScenario_GetLRUWindow(t *testing.T) {
	ctx, _ := newContext()
	root := ctx.NewScreen(80, 24, true)
	require.NoError(t, ctx.SetBuffer(root, "B"))

	w2, err := ctx.Split(root, nil, false)
	require.NoError(t, err)

	require.NoError(t, ctx.SelectWindow(root))
	require.NoError(t, ctx.SelectWindow(w2))
	require.NoError(t, ctx.SelectWindow(root))

	assert.Equal(t, w2, ctx.GetLRUWindow(api.ScopeSelectedScreen))
}

func TestSaveWindowExcursion(t *testing.T) {
	ctx, _ := newContext()
	root := ctx.NewScreen(80, 24, true)
	require.NoError(t, ctx.SetBuffer(root, "B"))

	before := ctx.CurrentWindowConfiguration()

	err := ctx.SaveWindowExcursion(func() error {
		_, splitErr := ctx.Split(root, nil, false)
		return splitErr
	})
	require.NoError(t, err)

	after := ctx.CurrentWindowConfiguration()
	assert.Equal(t, len(before.Nodes), len(after.Nodes))
}

func TestSplitRejectsMinibuffer(t *testing.T) {
	ctx, _ := newContext()
	ctx.NewScreen(80, 24, true)

	_, err := ctx.Split(ctx.MinibufferWindow(), nil, false)
	assert.ErrorIs(t, err, api.ErrMinibufferOperation)
}
