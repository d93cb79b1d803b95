package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSliderCmd(root *rootOptions) *cobra.Command {
	var title string
	var lo, hi, initial, step int

	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Choose an integer in a range and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("step") {
				step = loadPrefs(cmd, root).SliderStep(step)
			}

			v, err := ui.slider(title, lo, hi, initial, step)
			if isAcquireError(err) {
				v, err = fallbackSlider(cmd.InOrStdin(), cmd.ErrOrStderr(), title, lo, hi, initial)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title shown above the track")
	cmd.Flags().IntVar(&lo, "min", 0, "Smallest selectable value")
	cmd.Flags().IntVar(&hi, "max", 100, "Largest selectable value")
	cmd.Flags().IntVar(&initial, "initial", 50, "Starting value, clamped into [--min, --max]")
	cmd.Flags().IntVar(&step, "step", 1, "Change per arrow key press")
	return cmd
}
