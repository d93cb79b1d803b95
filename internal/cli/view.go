package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/cursive/internal/tui"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	var title string
	var lineCount bool
	var lineNumbers bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Page through a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			content, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			prefs := loadPrefs(cmd, root)
			if !cmd.Flags().Changed("line-numbers") {
				lineNumbers = prefs.Viewer.LineNumbers
			}
			opts := tui.ViewerOptions{
				Title:         title,
				ShowLineCount: lineCount,
				LineNumbers:   lineNumbers,
				ScrollSpeeds:  prefs.Viewer.ScrollSpeeds,
			}

			err = ui.view(content, opts)
			if isAcquireError(err) {
				out := cmd.OutOrStdout()
				_, err = fmt.Fprint(out, content)
				if err == nil && content != "" && !strings.HasSuffix(content, "\n") {
					_, err = fmt.Fprintln(out)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title shown in the status bar")
	cmd.Flags().BoolVar(&lineCount, "line-count", false, "Append the number of lines to the title")
	cmd.Flags().BoolVar(&lineNumbers, "line-numbers", false, "Start with the line-number gutter shown (toggle with 'l')")
	return cmd
}
