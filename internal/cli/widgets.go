package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/cursive/internal/config"
	"github.com/baaaaaaaka/cursive/internal/term"
	"github.com/baaaaaaaka/cursive/internal/tui"
)

// widgets is the set of full-screen entry points the commands call.
// Tests replace it to script results or force the line-based fallback.
type widgets struct {
	menu   func(items []string, opts tui.MenuOptions[string]) (tui.Result[string], error)
	view   func(content string, opts tui.ViewerOptions) error
	slider func(title string, min, max, initial, step int) (int, error)
	prompt func(promptText, title string) (tui.Result[string], error)
}

var ui = widgets{
	menu:   tui.ListMenu[string],
	view:   tui.ViewText,
	slider: tui.Slider,
	prompt: tui.InputPrompt,
}

func isAcquireError(err error) bool {
	var acqErr *term.AcquireError
	return errors.As(err, &acqErr)
}

// loadPrefs returns the stored preferences. A broken or unreadable file is
// reported and then ignored so the widgets still run with defaults.
func loadPrefs(cmd *cobra.Command, root *rootOptions) config.Config {
	store, err := config.NewStore(root.configPath)
	if err == nil {
		cfg, loadErr := store.Load()
		if loadErr == nil {
			return cfg
		}
		err = loadErr
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring preferences: %v\n", err)
	return config.Config{Version: config.CurrentVersion}
}

// readInput returns the contents of path, or of stdin when path is empty
// or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// readItems returns the non-blank lines of r.
func readItems(r io.Reader) ([]string, error) {
	var items []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}
