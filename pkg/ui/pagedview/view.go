package pagedview

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= chromeHeight {
		return ""
	}

	contentHeight := m.height - chromeHeight
	cur := m.pageLines(m.ctrl.Page(), contentHeight)
	next := m.pageLines(m.ctrl.Page()+1, contentHeight)

	shift := int(math.Round(m.ctrl.Offset() * float64(m.width)))
	shift = min(max(shift, 0), m.width)

	rows := make([]string, contentHeight)
	for i := range rows {
		rows[i] = composeRow(cur[i], next[i], shift, m.width)
	}

	return strings.Join(rows, "\n") + "\n" + m.statusView()
}

// pageLines renders page i as exactly height lines. Page content is kept
// free of ANSI sequences so rows can be cropped at arbitrary columns during
// a page transition.
func (m Model) pageLines(i, height int) []string {
	lines := make([]string, height)
	if i < 0 || i >= len(m.pages) {
		return lines
	}

	src := strings.Split(m.pages[i], "\n")
	for j := 0; j < height && j < len(src); j++ {
		lines[j] = src[j]
	}

	return lines
}

// composeRow builds one visual row of a page transition: the tail of the
// current page's row followed by the head of the next page's row, shifted
// left by shift columns.
func composeRow(cur, next string, shift, width int) string {
	left := runewidth.TruncateLeft(cur, shift, "")
	left = runewidth.FillRight(runewidth.Truncate(left, width-shift, ""), width-shift)

	right := runewidth.FillRight(runewidth.Truncate(next, shift, ""), shift)

	return left + right
}
