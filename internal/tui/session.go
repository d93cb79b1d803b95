// Package tui implements the full-screen widgets: a list menu, a text
// viewer, a slider and a single-line input prompt.
//
// Each widget takes over the terminal for the duration of one call and
// hands it back before returning, whatever happens inside the loop.
package tui

import (
	"errors"
	"fmt"

	"github.com/baaaaaaaka/cursive/internal/term"
)

var (
	ErrInterrupted = errors.New("interrupted")
	ErrWidgetPanic = errors.New("widget panicked")
)

type Status int

const (
	Cancelled Status = iota
	Confirmed
	Empty
)

func (s Status) String() string {
	switch s {
	case Confirmed:
		return "confirmed"
	case Empty:
		return "empty"
	default:
		return "cancelled"
	}
}

// Result is what an interactive widget hands back. Value and Index are only
// meaningful when Status is Confirmed.
type Result[T any] struct {
	Status Status
	Value  T
	Index  int
}

func (r Result[T]) Ok() bool { return r.Status == Confirmed }

type session interface {
	term.Screen
	Release()
}

var acquire = func() (session, error) {
	s, err := term.Acquire()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func withSession(run func(term.Screen) error) (err error) {
	s, err := acquire()
	if err != nil {
		return err
	}
	// Deferred calls run last-in first-out: the terminal is released before
	// the panic is recovered.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWidgetPanic, r)
		}
	}()
	defer s.Release()
	return run(s)
}

// runLoop redraws a full frame, waits for one key and feeds it to step
// until step reports that the widget is done.
func runLoop(screen term.Screen, frame func(rows, cols int), step func(term.Key) bool) error {
	for {
		rows, cols := screen.Size()
		screen.Clear()
		frame(rows, cols)
		screen.Refresh()

		k, err := screen.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		switch k.Kind {
		case term.KeyInterrupt:
			return ErrInterrupted
		case term.KeyResize:
			continue
		}
		if step(k) {
			return nil
		}
	}
}

type mode int

const (
	modeNavigating mode = iota
	modePromptingJump
)
