package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/domain/model"
)

// TextSource supplies buffer content for the window body area. It is a
// narrower, demo-only interface than buffer.Source: the window tree proper
// never needs buffer text, only markers and metadata.
type TextSource interface {
	Lines(id buffer.ID) []string
}

var (
	selectedModeLine = lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("62")).Bold(true)
	plainModeLine    = lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("238"))
	miniStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Screen renders every leaf of scrH to a single multi-line string. When
// the screen wants mode-lines, each ordinary window gets a one-row
// mode-line along its bottom edge, tinted for the selected window; the
// minibuffer (if present) gets a plain line. No borders are drawn. text supplies
// buffer content; a leaf with no bound buffer, or one text has nothing
// for, renders as blank.
func Screen(t *model.Tree, text TextSource, scrH model.Handle) string {
	scr := t.Screen(scrH)
	grid := newGrid(scr.Width, scr.Height)

	for _, h := range t.Leaves(scr.Root) {
		n := t.Node(h)
		selected := h == scr.Selected
		if h == scr.Minibuffer {
			drawMinibuffer(grid, n, text)
			continue
		}
		drawWindow(grid, n, text, selected, scr.WantsModeline)
	}

	return grid.String()
}

func drawWindow(g *grid, n *model.Node, text TextSource, selected, wantsModeline bool) {
	bodyHeight := n.Height
	if wantsModeline {
		bodyHeight--
	}

	var lines []string
	if n.BufferID != "" {
		lines = text.Lines(n.BufferID)
	}
	startLine, _ := lineCol(lines, n.Start)

	for row := 0; row < bodyHeight; row++ {
		idx := startLine + row
		content := ""
		if idx >= 0 && idx < len(lines) {
			content = lines[idx]
		}
		g.put(n.Left, n.Top+row, n.Width, content)
	}

	if wantsModeline {
		style := plainModeLine
		if selected {
			style = selectedModeLine
		}
		label := string(n.BufferID)
		if label == "" {
			label = "*empty*"
		}
		g.putStyled(n.Left, n.Top+bodyHeight, n.Width, " "+label, style)
	}
}

func drawMinibuffer(g *grid, n *model.Node, text TextSource) {
	content := ""
	if n.BufferID != "" {
		if lines := text.Lines(n.BufferID); len(lines) > 0 {
			content = lines[0]
		}
	}
	g.putStyled(n.Left, n.Top, n.Width, content, miniStyle)
}

func lineCol(lines []string, m buffer.Marker) (line, col int) {
	if m == nil || len(lines) == 0 {
		return 0, 0
	}
	pos := m.Position()
	for i, l := range lines {
		if pos <= len(l) {
			return i, pos
		}
		pos -= len(l) + 1
	}
	return len(lines) - 1, 0
}

// grid is a fixed-size canvas assembled row by row from the horizontally
// adjacent, non-overlapping segments each window writes into it. Segments
// are kept separate (rather than written into one mutable []rune row) so
// each carries its own lipgloss style without one window's styling
// bleeding into its neighbor's cells on the same screen row.
type grid struct {
	width, height int
	rows          [][]segment
}

type segment struct {
	x, width int
	rendered string
}

func newGrid(width, height int) *grid {
	return &grid{width: width, height: height, rows: make([][]segment, height)}
}

func (g *grid) put(x, y, width int, s string) {
	g.putStyled(x, y, width, s, lipgloss.NewStyle())
}

func (g *grid) putStyled(x, y, width int, s string, style lipgloss.Style) {
	if y < 0 || y >= g.height || width <= 0 {
		return
	}
	if x+width > g.width {
		width = g.width - x
	}
	text := PadRight(Truncate(s, width), width)
	g.rows[y] = append(g.rows[y], segment{x: x, width: width, rendered: style.Render(text)})
}

func (g *grid) String() string {
	lines := make([]string, g.height)
	for y, segs := range g.rows {
		sort.Slice(segs, func(i, j int) bool { return segs[i].x < segs[j].x })
		var b strings.Builder
		cur := 0
		for _, s := range segs {
			if s.x > cur {
				b.WriteString(strings.Repeat(" ", s.x-cur))
			}
			b.WriteString(s.rendered)
			cur = s.x + s.width
		}
		if cur < g.width {
			b.WriteString(strings.Repeat(" ", g.width-cur))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
