package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/cursive/internal/tui"
)

var errNoItems = errors.New("no items to choose from")

func newMenuCmd(root *rootOptions) *cobra.Command {
	var title string
	var noIndex bool
	var noQuit bool

	cmd := &cobra.Command{
		Use:   "menu [item...]",
		Short: "Pick one item from a list and print it",
		Long:  "Pick one item from a list and print it. Items come from the arguments, or one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				var err error
				if items, err = readItems(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			prefs := loadPrefs(cmd, root)
			opts := tui.MenuOptions[string]{
				Title:       title,
				HideIndexes: noIndex || !prefs.ShowIndexes(),
				DisableQuit: noQuit,
			}

			res, err := ui.menu(items, opts)
			if isAcquireError(err) {
				res, err = fallbackMenu(cmd.InOrStdin(), cmd.ErrOrStderr(), items, opts)
			}
			if err != nil {
				return err
			}
			switch res.Status {
			case tui.Empty:
				return errNoItems
			case tui.Cancelled:
				return errCancelled
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Value)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title shown above the list")
	cmd.Flags().BoolVar(&noIndex, "no-index", false, "Hide the [n] index in front of each item")
	cmd.Flags().BoolVar(&noQuit, "no-quit", false, "Disable 'q'; a choice must be made")
	return cmd
}
