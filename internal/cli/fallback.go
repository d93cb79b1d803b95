package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/baaaaaaaka/cursive/internal/tui"
)

// The fallbacks below stand in for the full-screen widgets when no terminal
// can be acquired: prompts go to errOut and answers are read line by line.

// readAnswer reads one line. ok is false once the input is exhausted.
func readAnswer(r *bufio.Reader) (string, bool) {
	s, err := r.ReadString('\n')
	if err != nil && (s == "" || !errors.Is(err, io.EOF)) {
		return "", false
	}
	return strings.TrimRight(s, "\r\n"), true
}

func printTitle(errOut io.Writer, title string) {
	if title != "" {
		_, _ = fmt.Fprintln(errOut, title)
	}
}

func fallbackMenu(in io.Reader, errOut io.Writer, items []string, opts tui.MenuOptions[string]) (tui.Result[string], error) {
	if len(items) == 0 {
		return tui.Result[string]{Status: tui.Empty}, nil
	}
	printTitle(errOut, opts.Title)
	for i, it := range items {
		if opts.HideIndexes {
			_, _ = fmt.Fprintf(errOut, "  %s\n", it)
		} else {
			_, _ = fmt.Fprintf(errOut, "[%d] %s\n", i+1, it)
		}
	}

	label := fmt.Sprintf("Choose option (1-%d)", len(items))
	if !opts.DisableQuit {
		label += ", 'q' to quit"
	}
	r := bufio.NewReader(in)
	for {
		_, _ = fmt.Fprintf(errOut, "%s: ", label)
		s, ok := readAnswer(r)
		if !ok {
			return tui.Result[string]{Status: tui.Cancelled}, nil
		}
		s = strings.TrimSpace(s)
		if s == "q" && !opts.DisableQuit {
			return tui.Result[string]{Status: tui.Cancelled}, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 1 && n <= len(items) {
			return tui.Result[string]{Status: tui.Confirmed, Value: items[n-1], Index: n - 1}, nil
		}
	}
}

// fallbackSlider returns initial when the input ends before a valid value.
func fallbackSlider(in io.Reader, errOut io.Writer, title string, lo, hi, initial int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: %d > %d", tui.ErrInvalidRange, lo, hi)
	}
	initial = min(max(initial, lo), hi)
	printTitle(errOut, title)

	r := bufio.NewReader(in)
	for {
		_, _ = fmt.Fprintf(errOut, "Value %d..%d [%d]: ", lo, hi, initial)
		s, ok := readAnswer(r)
		if !ok {
			return initial, nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return initial, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
	}
}

func fallbackPrompt(in io.Reader, errOut io.Writer, promptText, title string) (tui.Result[string], error) {
	printTitle(errOut, title)
	_, _ = fmt.Fprint(errOut, promptText)
	s, ok := readAnswer(bufio.NewReader(in))
	if !ok {
		return tui.Result[string]{Status: tui.Cancelled}, nil
	}
	return tui.Result[string]{Status: tui.Confirmed, Value: s}, nil
}
