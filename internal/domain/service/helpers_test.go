package service

import (
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
	"github.com/phoenix-tui/wintree/internal/domain/value"
)

// newFixture builds a tree with one screen (with minibuffer) of the given
// size, its ordinary leaf bound to a buffer, ready for split/delete/resize
// tests.
func newFixture(width, height int) (*model.Tree, *buffer.Memory, model.Handle, value.Config) {
	src := buffer.NewMemory()
	src.CreateBuffer("scratch", "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\n")

	t := model.NewTree()
	scrH := NewScreen(t, width, height, true)
	scr := t.Screen(scrH)

	if err := BindBuffer(t, src, scr.Selected, "scratch"); err != nil {
		panic(err)
	}
	if err := Select(t, src, scr.Selected); err != nil {
		panic(err)
	}

	return t, src, scrH, value.DefaultConfig()
}
