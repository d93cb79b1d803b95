package tui

import (
	"fmt"

	"github.com/baaaaaaaka/cursive/internal/term"
	"github.com/baaaaaaaka/cursive/internal/viewport"
)

const (
	menuQuitHint   = " Press 'q' to quit, ':' to enter option number."
	menuJumpHint   = " Press ':' to enter option number."
	menuJumpPrompt = "Go to option (press 'Enter' to confirm, 'Esc' to cancel): "
)

type MenuOptions[T any] struct {
	Title string

	// Label renders an item. fmt.Sprint is used when nil, so items that
	// implement fmt.Stringer are shown through String.
	Label func(T) string

	HideIndexes bool
	DisableQuit bool
}

type menuAction int

const (
	menuContinue menuAction = iota
	menuSelect
	menuQuit
)

type menuState struct {
	labels      []string
	title       string
	showIndexes bool
	quittable   bool

	cursor int
	rows   viewport.Axis
	mode   mode
	jump   lineInput
}

// ListMenu shows items as a scrolling single-selection list. An empty list
// returns an Empty result without touching the terminal.
func ListMenu[T any](items []T, opts MenuOptions[T]) (Result[T], error) {
	if len(items) == 0 {
		return Result[T]{Status: Empty}, nil
	}
	label := opts.Label
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = label(it)
	}

	st := newMenuState(labels, opts.Title, !opts.HideIndexes, !opts.DisableQuit)
	var res Result[T]
	err := withSession(func(screen term.Screen) error {
		return runLoop(screen,
			func(rows, cols int) {
				st = st.layout(rows, cols)
				st.render(screen, rows, cols)
			},
			func(k term.Key) bool {
				var act menuAction
				st, act = st.handleKey(k)
				switch act {
				case menuSelect:
					res = Result[T]{Status: Confirmed, Value: items[st.cursor], Index: st.cursor}
					return true
				case menuQuit:
					res = Result[T]{Status: Cancelled}
					return true
				}
				return false
			})
	})
	return res, err
}

func newMenuState(labels []string, title string, showIndexes, quittable bool) menuState {
	return menuState{
		labels:      labels,
		title:       title,
		showIndexes: showIndexes,
		quittable:   quittable,
		rows:        viewport.Axis{Span: 1, Length: len(labels)},
	}
}

// layout fits the list between the optional title row and the status row.
func (s menuState) layout(rows, cols int) menuState {
	span := rows - 1
	if s.title != "" {
		span--
	}
	s.rows = s.rows.Resize(span, len(s.labels)).Focus(s.cursor)
	return s
}

func (s menuState) handleKey(k term.Key) (menuState, menuAction) {
	if s.mode == modePromptingJump {
		return s.handleJumpKey(k), menuContinue
	}
	last := len(s.labels) - 1
	switch {
	case k.Is(term.KeyUp):
		s.cursor = clamp(s.cursor-1, 0, last)
		s.rows = s.rows.Focus(s.cursor)
	case k.Is(term.KeyDown):
		s.cursor = clamp(s.cursor+1, 0, last)
		s.rows = s.rows.Focus(s.cursor)
	case k.Is(term.KeyEnter):
		return s, menuSelect
	case k.IsRune(':'):
		s.mode = modePromptingJump
		s.jump = lineInput{digitsOnly: true}
	case k.IsRune('q'):
		if s.quittable {
			return s, menuQuit
		}
	}
	return s, menuContinue
}

func (s menuState) handleJumpKey(k term.Key) menuState {
	in, act := s.jump.handleKey(k)
	switch act {
	case inputEditing:
		s.jump = in
		return s
	case inputSubmit:
		if n, ok := in.number(); ok && n >= 1 && n <= len(s.labels) {
			s.cursor = n - 1
			s.rows = s.rows.Focus(s.cursor)
		}
	}
	s.mode = modeNavigating
	s.jump = lineInput{}
	return s
}

func (s menuState) render(screen term.Screen, rows, cols int) {
	top := 0
	if s.title != "" {
		screen.WriteAt(0, 0, truncate(s.title, cols), term.StyleBold)
		top = 1
	}
	for i := s.rows.Offset; i < s.rows.End(); i++ {
		text := s.labels[i]
		if s.showIndexes {
			text = fmt.Sprintf("[%d] %s", i+1, text)
		}
		text = truncate(text, cols)
		style := term.StyleNormal
		if i == s.cursor {
			text = padRight(text, cols)
			style = term.StyleReverse
		}
		screen.WriteAt(top+i-s.rows.Offset, 0, text, style)
	}

	if rows <= 0 {
		return
	}
	if s.mode == modePromptingJump {
		drawInputLine(screen, rows-1, cols, menuJumpPrompt, s.jump.buf)
		return
	}
	hint := menuJumpHint
	if s.quittable {
		hint = menuQuitHint
	}
	drawStatusBar(screen, rows-1, cols, hint, "", fmt.Sprintf("%d/%d", s.cursor+1, len(s.labels)))
}
