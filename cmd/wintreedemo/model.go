package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/phoenix-tui/wintree"
	"github.com/phoenix-tui/wintree/buffer"
	"github.com/phoenix-tui/wintree/internal/render"
)

// model is the demo's bubbletea Model: a thin Elm-architecture shell around
// a wintree.Tree. All window topology, selection and scrolling state lives
// in the tree; model only adds the terminal size and the buffer-picker
// overlay.
type model struct {
	tree *wintree.Tree
	src  *buffer.Memory
	scr  wintree.Handle

	width, height int

	keys KeyMap

	pickerOpen  bool
	pickerInput textinput.Model
	pickerNames []string

	status string
	err    error
}

func newModel(src *buffer.Memory, names []string, width, height int) model {
	tree := wintree.New(src, src, wintree.DefaultConfig())

	ti := textinput.New()
	ti.Placeholder = "buffer name"
	ti.Prompt = "switch-to-buffer: "

	m := model{
		tree:        tree,
		src:         src,
		scr:         wintree.NoHandle,
		keys:        DefaultKeyMap(),
		pickerInput: ti,
		pickerNames: names,
	}
	if width > 0 && height > 0 {
		m.width, m.height = width, height
		root := tree.NewScreen(width, height, true)
		if len(names) > 0 {
			m.err = tree.SetBuffer(root, buffer.ID(names[0]))
		}
		m.scr = tree.CurrentScreen()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.scr == wintree.NoHandle {
			root := m.tree.NewScreen(msg.Width, msg.Height, true)
			if len(m.pickerNames) > 0 {
				m.err = m.tree.SetBuffer(root, buffer.ID(m.pickerNames[0]))
			}
			m.scr = m.tree.CurrentScreen()
		}
		return m, nil

	case tea.KeyMsg:
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pickerOpen = false
		return m, nil
	case "enter":
		query := m.pickerInput.Value()
		matches := fuzzy.Find(query, m.pickerNames)
		if len(matches) > 0 {
			buf, err := m.tree.DisplayBuffer(buffer.ID(matches[0].Str), false)
			if err != nil {
				m.err = err
			} else {
				m.err = m.tree.SelectWindow(buf)
			}
		}
		m.pickerOpen = false
		m.pickerInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.pickerInput, cmd = m.pickerInput.Update(msg)
	return m, cmd
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Picker):
		m.pickerOpen = true
		m.pickerInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.SplitRight):
		m.splitAndCopyBuffer(true)
		return m, nil

	case key.Matches(msg, m.keys.SplitBelow):
		m.splitAndCopyBuffer(false)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.err = m.tree.Delete(m.tree.SelectedWindow())
		return m, nil

	case key.Matches(msg, m.keys.DeleteOthers):
		m.err = m.tree.DeleteOtherWindows(m.tree.SelectedWindow())
		return m, nil

	case key.Matches(msg, m.keys.Other):
		m.err = m.tree.OtherWindow(1, false)
		return m, nil

	case key.Matches(msg, m.keys.Enlarge):
		m.err = m.tree.Enlarge(1, false)
		return m, nil

	case key.Matches(msg, m.keys.Shrink):
		m.err = m.tree.Shrink(1, false)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.err = m.tree.ScrollUp(nil)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.err = m.tree.ScrollDown(nil)
		return m, nil
	}
	return m, nil
}

func (m *model) splitAndCopyBuffer(horizontal bool) {
	selected := m.tree.SelectedWindow()
	buf, ok := m.tree.BufferOf(selected)

	newWin, err := m.tree.Split(selected, nil, horizontal)
	if err != nil {
		m.err = err
		return
	}
	if ok {
		m.err = m.tree.SetBuffer(newWin, buf)
	}
	m.err = m.tree.SelectWindow(newWin)
}

func (m model) View() string {
	if m.scr == wintree.NoHandle {
		return "sizing..."
	}

	frame := render.Screen(m.tree.Tree, m.src, m.scr)

	if m.pickerOpen {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Render(m.pickerInput.View())
		frame = overlayBottom(frame, box)
	}

	if m.err != nil {
		frame += fmt.Sprintf("\nerror: %v", m.err)
		m.err = nil
	}
	return frame
}

// overlayBottom appends box below frame, matching the navi demo's habit of
// stacking a modal input line under the main view rather than compositing
// it mid-screen.
func overlayBottom(frame, box string) string {
	var b strings.Builder
	b.WriteString(frame)
	b.WriteString("\n")
	b.WriteString(box)
	return b.String()
}
