package service

import "github.com/phoenix-tui/wintree/internal/domain/model"

// NewScreen registers a screen of the given dimensions and builds its
// initial window tree: a single ordinary leaf filling the screen, plus
// (if withMinibuffer) a one-row minibuffer leaf along the bottom, the two
// combined under a v-combination root. Neither leaf is bound to a buffer
// yet — callers bind one via BindBuffer/DisplayBuffer before selecting the
// screen for use. The ordinary leaf is returned as the screen's initially
// selected window.
func NewScreen(t *model.Tree, width, height int, withMinibuffer bool) model.Handle {
	scrH := t.NewScreen(model.Screen{Width: width, Height: height})

	miniHeight := 0
	if withMinibuffer {
		miniHeight = 1
	}

	ordH := t.NewLeaf(scrH)
	ord := t.Node(ordH)
	ord.Left, ord.Top, ord.Width, ord.Height = 0, 0, width, height-miniHeight

	scr := t.Screen(scrH)
	if !withMinibuffer {
		scr.Root, scr.Selected, scr.Minibuffer = ordH, ordH, model.NoHandle
		return scrH
	}

	miniH := t.NewLeaf(scrH)
	mini := t.Node(miniH)
	mini.Left, mini.Top, mini.Width, mini.Height = 0, height-1, width, 1

	root := t.NewCombination(model.VCombination, scrH)
	rn := t.Node(root)
	rn.Left, rn.Top, rn.Width, rn.Height = 0, 0, width, height
	rn.SetFirstChild(ordH)

	ord.Parent, ord.Prev, ord.Next = root, model.NoHandle, miniH
	mini.Parent, mini.Prev, mini.Next = root, ordH, model.NoHandle

	scr.Root, scr.Selected, scr.Minibuffer = root, ordH, miniH
	return scrH
}
