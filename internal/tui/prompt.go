package tui

import (
	"strconv"

	"github.com/baaaaaaaka/cursive/internal/term"
)

type inputAction int

const (
	inputEditing inputAction = iota
	inputSubmit
	inputCancel
)

// lineInput is a single-line edit buffer. With digitsOnly set it accepts
// nothing but ASCII digits, which is how the jump prompts use it.
type lineInput struct {
	buf        string
	digitsOnly bool
}

func (in lineInput) handleKey(k term.Key) (lineInput, inputAction) {
	switch k.Kind {
	case term.KeyEnter:
		return in, inputSubmit
	case term.KeyEscape:
		return in, inputCancel
	case term.KeyBackspace:
		if in.buf != "" {
			r := []rune(in.buf)
			in.buf = string(r[:len(r)-1])
		}
		return in, inputEditing
	}
	if in.digitsOnly {
		if k.IsDigit() {
			in.buf += string(k.Rune)
		}
		return in, inputEditing
	}
	if k.IsPrintable() {
		in.buf += string(k.Char())
	}
	return in, inputEditing
}

func (in lineInput) number() (int, bool) {
	n, err := strconv.Atoi(in.buf)
	if err != nil {
		return 0, false
	}
	return n, true
}

type promptState struct {
	text  string
	title string
	input lineInput
}

// InputPrompt asks for one line of text. Enter confirms, possibly with an
// empty string; Escape cancels.
func InputPrompt(promptText, title string) (Result[string], error) {
	st := promptState{text: promptText, title: title}
	var res Result[string]
	err := withSession(func(screen term.Screen) error {
		return runLoop(screen,
			func(rows, cols int) { st.render(screen, rows, cols) },
			func(k term.Key) bool {
				var act inputAction
				st.input, act = st.input.handleKey(k)
				switch act {
				case inputSubmit:
					res = Result[string]{Status: Confirmed, Value: st.input.buf}
					return true
				case inputCancel:
					res = Result[string]{Status: Cancelled}
					return true
				}
				return false
			})
	})
	return res, err
}

func (s promptState) render(screen term.Screen, rows, cols int) {
	if s.title != "" {
		screen.WriteAt(0, 0, truncate(s.title, cols), term.StyleBold)
	}
	drawInputLine(screen, 1, cols, s.text, s.input.buf)
	if rows > 3 {
		screen.WriteAt(rows-1, 0, truncate(" Enter: confirm  Esc: cancel", cols), term.StyleDim)
	}
}
