package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/baaaaaaaka/cursive/internal/term"
)

const (
	sliderTrackRow    = 2
	sliderTrackCol    = 5
	sliderTrackMargin = 12
	sliderValueRow    = 4
	sliderHint        = " Left/Right: adjust  Enter: confirm"
)

var ErrInvalidRange = errors.New("slider minimum is greater than maximum")

type sliderState struct {
	title string
	min   int
	max   int
	step  int
	value int
}

// Slider lets the user pick an integer in [min, max]. There is no cancel
// key: the value on screen when Enter is pressed is returned.
func Slider(title string, min, max, initial, step int) (int, error) {
	st, err := newSliderState(title, min, max, initial, step)
	if err != nil {
		return 0, err
	}
	err = withSession(func(screen term.Screen) error {
		return runLoop(screen,
			func(rows, cols int) { st.render(screen, rows, cols) },
			func(k term.Key) bool {
				var done bool
				st, done = st.handleKey(k)
				return done
			})
	})
	if err != nil {
		return 0, err
	}
	return st.value, nil
}

func newSliderState(title string, lo, hi, initial, step int) (sliderState, error) {
	if lo > hi {
		return sliderState{}, fmt.Errorf("%w: %d > %d", ErrInvalidRange, lo, hi)
	}
	if step <= 0 {
		step = 1
	}
	return sliderState{
		title: title,
		min:   lo,
		max:   hi,
		step:  step,
		value: clamp(initial, lo, hi),
	}, nil
}

func (s sliderState) handleKey(k term.Key) (sliderState, bool) {
	switch k.Kind {
	case term.KeyLeft:
		s.value = stepDown(s.value, s.step, s.min)
	case term.KeyRight:
		s.value = stepUp(s.value, s.step, s.max)
	case term.KeyEnter:
		return s, true
	}
	return s, false
}

// stepUp adds step to v, stopping at hi. The distance is measured in uint64
// so ranges wider than an int do not overflow.
func stepUp(v, step, hi int) int {
	if uint64(hi)-uint64(v) <= uint64(step) {
		return hi
	}
	return v + step
}

func stepDown(v, step, lo int) int {
	if uint64(v)-uint64(lo) <= uint64(step) {
		return lo
	}
	return v - step
}

// position is the number of filled track cells for the current value.
func (s sliderState) position(width int) int {
	if s.max == s.min || width <= 0 {
		return 0
	}
	frac := (float64(s.value) - float64(s.min)) / (float64(s.max) - float64(s.min))
	return clamp(int(math.Round(frac*float64(width))), 0, width)
}

func trackWidth(cols int) int {
	return max(1, cols-sliderTrackMargin)
}

func (s sliderState) render(screen term.Screen, rows, cols int) {
	screen.WriteAt(0, 0, truncate(s.title, cols), term.StyleBold)

	width := trackWidth(cols)
	pos := s.position(width)
	screen.WriteAt(sliderTrackRow, sliderTrackCol, "[", term.StyleNormal)
	screen.WriteAt(sliderTrackRow, sliderTrackCol+1, strings.Repeat(" ", pos), term.StyleReverse)
	screen.WriteAt(sliderTrackRow, sliderTrackCol+1+pos, strings.Repeat(" ", width-pos), term.StyleNormal)
	screen.WriteAt(sliderTrackRow, sliderTrackCol+1+width, "]", term.StyleNormal)
	screen.WriteAt(sliderValueRow, 0, fmt.Sprintf("Value: %d", s.value), term.StyleNormal)

	if rows > sliderValueRow+1 {
		drawStatusBar(screen, rows-1, cols, sliderHint, "", fmt.Sprintf("%d..%d step %d", s.min, s.max, s.step))
	}
}
