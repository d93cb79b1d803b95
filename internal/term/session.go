// Package term owns the terminal while a widget runs.
//
// A Session is the only handle to the terminal: Acquire switches it into
// raw mode with the cursor hidden, Release puts it back. Callers defer
// Release immediately after a successful Acquire.
package term

import (
	"errors"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	xterm "golang.org/x/term"
)

var (
	ErrNotInteractive = errors.New("stdin and stdout are not terminals")
	ErrClosed         = errors.New("terminal session closed")
)

// AcquireError reports that the terminal could not be taken over. Nothing
// about the terminal has changed when it is returned.
type AcquireError struct {
	Err error
}

func (e *AcquireError) Error() string { return "acquire terminal: " + e.Err.Error() }

func (e *AcquireError) Unwrap() error { return e.Err }

type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleReverse
	StyleDim

	StyleNormal Style = 0
)

func (s Style) toTcell() tcell.Style {
	out := tcell.StyleDefault
	if s&StyleBold != 0 {
		out = out.Bold(true)
	}
	if s&StyleReverse != 0 {
		out = out.Reverse(true)
	}
	if s&StyleDim != 0 {
		out = out.Dim(true)
	}
	return out
}

// Screen is the drawing and input surface a widget renders to.
type Screen interface {
	Size() (rows, cols int)
	Clear()
	WriteAt(row, col int, text string, style Style)
	Refresh()
	ReadKey() (Key, error)
}

var (
	newScreen     = tcell.NewScreen
	isInteractive = func() bool {
		return xterm.IsTerminal(int(os.Stdin.Fd())) || xterm.IsTerminal(int(os.Stdout.Fd()))
	}
)

type Session struct {
	screen tcell.Screen

	mu     sync.Mutex
	closed bool
}

// Acquire takes exclusive control of the controlling terminal.
func Acquire() (*Session, error) {
	if !isInteractive() {
		return nil, &AcquireError{Err: ErrNotInteractive}
	}
	screen, err := newScreen()
	if err != nil {
		return nil, &AcquireError{Err: err}
	}
	return Open(screen)
}

// Open initializes screen and wraps it in a Session. It is used directly
// with simulation screens.
func Open(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, &AcquireError{Err: err}
	}
	screen.HideCursor()
	screen.Clear()
	return &Session{screen: screen}, nil
}

// Release restores the terminal to the mode it had before Acquire. It is
// safe to call more than once.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

func (s *Session) Size() (rows, cols int) {
	cols, rows = s.screen.Size()
	return max(0, rows), max(0, cols)
}

func (s *Session) Clear() {
	s.screen.Clear()
}

// WriteAt draws text starting at (row, col). Anything falling outside the
// current grid is dropped. Zero-width runes such as combining marks are
// attached to the cell before them.
func (s *Session) WriteAt(row, col int, text string, style Style) {
	cols, rows := s.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	st := style.toTcell()
	x := col
	lastX := -1
	var mainc rune
	var combc []rune
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			if lastX >= 0 {
				combc = append(combc, ch)
				s.screen.SetContent(lastX, row, mainc, combc, st)
			}
			continue
		}
		if x+width > cols {
			return
		}
		lastX = -1
		if x >= 0 {
			lastX, mainc, combc = x, ch, nil
			s.screen.SetContent(x, row, ch, nil, st)
		}
		x += width
	}
}

func (s *Session) Refresh() {
	s.screen.Show()
}

// ReadKey blocks until the next keystroke. A resize is reported as
// KeyResize after the screen has been resynchronized.
func (s *Session) ReadKey() (Key, error) {
	for {
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return Key{}, ErrClosed
		}

		ev := s.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return Key{}, ErrClosed
		case *tcell.EventResize:
			s.screen.Sync()
			return Key{Kind: KeyResize}, nil
		case *tcell.EventKey:
			return decodeKey(tev), nil
		}
	}
}
