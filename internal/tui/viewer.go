package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/baaaaaaaka/cursive/internal/term"
	"github.com/baaaaaaaka/cursive/internal/viewport"
)

const (
	viewerQuitHint   = " Press 'q' to quit."
	viewerJumpPrompt = "Go to line (press 'Enter' to confirm, 'Esc' to cancel): "
	lineNumberSep    = " | "
	tabWidth         = 4
)

var DefaultScrollSpeeds = []int{1, 2, 4, 8}

type ViewerOptions struct {
	Title string

	// ShowLineCount appends the number of lines to the title.
	ShowLineCount bool

	// LineNumbers is the initial state of the line-number gutter.
	LineNumbers bool

	// ScrollSpeeds is the ladder cycled with Space. Non-positive entries
	// are dropped; DefaultScrollSpeeds is used when nothing is left.
	ScrollSpeeds []int
}

type viewerState struct {
	lines    []string
	maxWidth int
	title    string

	rows        viewport.Axis
	cols        viewport.Axis
	speeds      []int
	speedIdx    int
	lineNumbers bool
	mode        mode
	jump        lineInput
}

// ViewText shows content in a read-only pane that pans in both directions.
// It returns when the user quits with 'q' or Escape.
func ViewText(content string, opts ViewerOptions) error {
	st := newViewerState(content, opts)
	return withSession(func(screen term.Screen) error {
		return runLoop(screen,
			func(rows, cols int) {
				st = st.layout(rows, cols)
				st.render(screen, rows, cols)
			},
			func(k term.Key) bool {
				var done bool
				st, done = st.handleKey(k)
				return done
			})
	})
}

func newViewerState(content string, opts ViewerOptions) viewerState {
	lines := splitLines(content)
	maxWidth := 0
	for _, ln := range lines {
		maxWidth = max(maxWidth, displayWidth(ln))
	}
	title := opts.Title
	if opts.ShowLineCount {
		title = strings.TrimSpace(fmt.Sprintf("%s (%d LINES)", title, len(lines)))
	}
	return viewerState{
		lines:       lines,
		maxWidth:    maxWidth,
		title:       title,
		rows:        viewport.Axis{Span: 1, Length: len(lines)},
		cols:        viewport.Axis{Span: 1, Length: maxWidth},
		speeds:      scrollLadder(opts.ScrollSpeeds),
		lineNumbers: opts.LineNumbers,
	}
}

// splitLines breaks content on \n, \r\n and \r. A trailing line break does
// not produce an extra empty line. Tabs become spaces so that column
// offsets match screen cells.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\t", strings.Repeat(" ", tabWidth))
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func scrollLadder(speeds []int) []int {
	out := make([]int, 0, len(speeds))
	for _, s := range speeds {
		if s > 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]int(nil), DefaultScrollSpeeds...)
	}
	return out
}

func (s viewerState) speed() int { return s.speeds[s.speedIdx] }

func (s viewerState) numberWidth() int {
	return len(strconv.Itoa(max(1, len(s.lines))))
}

func (s viewerState) gutterWidth() int {
	if !s.lineNumbers {
		return 0
	}
	return s.numberWidth() + len(lineNumberSep)
}

// layout keeps the last row for the status bar and the gutter, when shown,
// out of the horizontal span.
func (s viewerState) layout(rows, cols int) viewerState {
	s.rows = s.rows.Resize(rows-1, len(s.lines))
	s.cols = s.cols.Resize(cols-s.gutterWidth(), s.maxWidth)
	return s
}

func (s viewerState) handleKey(k term.Key) (viewerState, bool) {
	if s.mode == modePromptingJump {
		return s.handleJumpKey(k), false
	}
	switch {
	case k.Is(term.KeyUp):
		s.rows = s.rows.Scroll(-s.speed())
	case k.Is(term.KeyDown):
		s.rows = s.rows.Scroll(s.speed())
	case k.Is(term.KeyLeft):
		s.cols = s.cols.Scroll(-s.speed())
	case k.Is(term.KeyRight):
		s.cols = s.cols.Scroll(s.speed())
	case k.Is(term.KeySpace):
		s.speedIdx = (s.speedIdx + 1) % len(s.speeds)
	case k.IsRune('l'):
		s.lineNumbers = !s.lineNumbers
	case k.IsRune(':'):
		s.mode = modePromptingJump
		s.jump = lineInput{digitsOnly: true}
	case k.IsRune('q'), k.Is(term.KeyEscape):
		return s, true
	}
	return s, false
}

func (s viewerState) handleJumpKey(k term.Key) viewerState {
	in, act := s.jump.handleKey(k)
	switch act {
	case inputEditing:
		s.jump = in
		return s
	case inputSubmit:
		if n, ok := in.number(); ok {
			s.rows = s.rows.JumpTo(n - 1)
			s.cols = s.cols.JumpTo(0)
		}
	}
	s.mode = modeNavigating
	s.jump = lineInput{}
	return s
}

func (s viewerState) statusRight() string {
	return fmt.Sprintf("Scroll Speed: %d | %d%% / %d%%", s.speed(), s.cols.Percent(), s.rows.Percent())
}

func (s viewerState) render(screen term.Screen, rows, cols int) {
	gutter := s.gutterWidth()
	for i := s.rows.Offset; i < s.rows.End(); i++ {
		y := i - s.rows.Offset
		if s.lineNumbers {
			num := fmt.Sprintf("%*d%s", s.numberWidth(), i+1, lineNumberSep)
			screen.WriteAt(y, 0, truncate(num, cols), term.StyleDim)
		}
		screen.WriteAt(y, gutter, sliceColumns(s.lines[i], s.cols.Offset, s.cols.Span), term.StyleNormal)
	}

	if rows <= 0 {
		return
	}
	if s.mode == modePromptingJump {
		drawInputLine(screen, rows-1, cols, viewerJumpPrompt, s.jump.buf)
		return
	}
	drawStatusBar(screen, rows-1, cols, viewerQuitHint, s.title, s.statusRight())
}
