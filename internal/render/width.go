// Package render draws a window tree to a terminal-sized grid of cells: it
// measures mode-line and buffer text with grapheme awareness and lays out
// window body rows, mode-lines and the minibuffer line, styled with
// lipgloss. It is consumed by
// cmd/wintreedemo; the window tree itself never imports it.
package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// StringWidth returns s's visual width in terminal cells, correctly
// handling emoji, CJK and combining characters. Plain ASCII and the
// overwhelming majority of real mode-line/buffer text takes the O(1)
// uniwidth fast path; grapheme clustering only runs when s contains a
// joiner, variation selector, emoji modifier or combining mark.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	if !hasComplexUnicode(s) {
		return uniwidth.StringWidth(s)
	}
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += clusterWidth(gr.Str())
	}
	return width
}

// hasComplexUnicode reports whether s contains a rune that can only be
// measured correctly by grapheme-clustering rather than per-rune width.
func hasComplexUnicode(s string) bool {
	for _, r := range s {
		switch {
		case r == 0x200D: // zero-width joiner
			return true
		case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
			return true
		case r >= 0x1F3FB && r <= 0x1F3FF: // emoji skin-tone modifiers
			return true
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc): // combining marks
			return true
		}
	}
	return false
}

// clusterWidth is the visual width of a single grapheme cluster: the width
// of its base rune, since modifiers, ZWJ members and combining marks after
// the first rune contribute no additional columns.
func clusterWidth(cluster string) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return 0
	}
	if len(runes) == 1 {
		return runewidth.RuneWidth(runes[0])
	}
	return runewidth.RuneWidth(runes[0])
}

// Truncate shortens s to fit within width cells, respecting grapheme
// cluster boundaries so a wide character is never split in half. Returns s
// unchanged if it already fits.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}
	var out []rune
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := clusterWidth(cluster)
		if used+w > width {
			break
		}
		out = append(out, []rune(cluster)...)
		used += w
	}
	return string(out)
}

// PadRight pads s with trailing spaces to exactly width cells, truncating
// first if s is already wider. Used to fill a mode-line or body row to a
// window's full width.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	pad := width - StringWidth(s)
	if pad <= 0 {
		return s
	}
	b := make([]byte, pad)
	for i := range b {
		b[i] = ' '
	}
	return s + string(b)
}
