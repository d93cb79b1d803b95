package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/baaaaaaaka/cursive/internal/term"
)

const statusStyle = term.StyleReverse

// drawStatusBar fills row with a reversed bar: left-aligned hint, centered
// title and a right-aligned block one cell in from the edge. The right block
// wins on a narrow screen: the hint is cut short and the title is dropped
// unless it fits between the other two with a cell of space on each side.
func drawStatusBar(screen term.Screen, row, cols int, left, center, right string) {
	if cols <= 0 || row < 0 {
		return
	}
	screen.WriteAt(row, 0, padRight("", cols), statusStyle)

	rightStart := cols
	if right != "" {
		right = truncate(right, cols)
		rightStart = max(0, cols-displayWidth(right)-1)
		screen.WriteAt(row, rightStart, right, statusStyle)
	}
	leftRoom := cols
	if right != "" {
		leftRoom = rightStart - 1
	}
	left = truncate(left, leftRoom)
	screen.WriteAt(row, 0, left, statusStyle)

	if center == "" {
		return
	}
	w := displayWidth(center)
	start := (cols - w) / 2
	if left != "" && start <= displayWidth(left) {
		return
	}
	if start < 0 || start+w > cols || (right != "" && start+w >= rightStart) {
		return
	}
	screen.WriteAt(row, start, center, statusStyle)
}

// drawInputLine renders a prompt followed by the buffer and a block cursor.
// When the line is wider than the screen the tail stays visible.
func drawInputLine(screen term.Screen, row, cols int, prompt, buf string) {
	if cols <= 0 {
		return
	}
	line := prompt + buf
	if w := displayWidth(line); w >= cols {
		line = sliceColumns(line, w-(cols-1), cols-1)
	}
	screen.WriteAt(row, 0, line, term.StyleNormal)
	screen.WriteAt(row, displayWidth(line), " ", term.StyleReverse)
}

// sliceColumns returns the cells [offset, offset+width) of s. A wide rune
// cut by either edge is replaced by spaces.
func sliceColumns(s string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	offset = max(0, offset)
	end := offset + width
	var buf strings.Builder
	x := 0
	for _, ch := range s {
		if x >= end {
			break
		}
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			if x > offset {
				buf.WriteRune(ch)
			}
			continue
		}
		switch {
		case x >= offset && x+chWidth <= end:
			buf.WriteRune(ch)
		case x+chWidth > offset:
			lo := max(x, offset)
			hi := min(x+chWidth, end)
			buf.WriteString(strings.Repeat(" ", hi-lo))
		}
		x += chWidth
	}
	return buf.String()
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	var buf strings.Builder
	curWidth := 0
	for _, ch := range s {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			buf.WriteRune(ch)
			continue
		}
		if curWidth+chWidth > width {
			break
		}
		buf.WriteRune(ch)
		curWidth += chWidth
	}
	return buf.String()
}

func padRight(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-displayWidth(s))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
