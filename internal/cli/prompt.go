package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/cursive/internal/tui"
)

func newPromptCmd(_ *rootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "prompt <text>",
		Short: "Ask for one line of input and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ui.prompt(args[0], title)
			if isAcquireError(err) {
				res, err = fallbackPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), args[0], title)
			}
			if err != nil {
				return err
			}
			if res.Status != tui.Confirmed {
				return errCancelled
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Value)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title shown above the input line")
	return cmd
}
