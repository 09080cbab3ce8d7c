// Command wintreedemo is a terminal demo of the wintree window tree: it
// renders a screen of tiled windows over a handful of sample buffers and
// lets you split, delete, resize, scroll and switch between them.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/phoenix-tui/wintree/buffer"
)

func main() {
	src := buffer.NewMemory()
	names := []string{"scratch", "README", "notes"}
	src.CreateBuffer(buffer.ID(names[0]), "Welcome to the wintree demo.\n\nctrl+v / ctrl+s split, ctrl+w delete,\ntab switches windows, ctrl+b picks a buffer.\n")
	src.CreateBuffer(buffer.ID(names[1]), "# wintree\n\nA window-tree library: split, resize, scroll,\nnavigate and snapshot a tiling layout of buffers.\n")
	src.CreateBuffer(buffer.ID(names[2]), "TODO\n- wire a real editor behind buffer.Source\n- persist window configurations across sessions\n")

	// Seed the initial screen from the real terminal size rather than
	// waiting on bubbletea's first WindowSizeMsg, so the very first frame
	// already shows the tiled layout instead of a "sizing..." placeholder.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	m := newModel(src, names, width, height)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "wintreedemo:", err)
		os.Exit(1)
	}
}
