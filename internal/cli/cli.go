package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/cursive/internal/tui"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

// errCancelled ends a command that the user backed out of. It maps to exit
// status 1 without an error message.
var errCancelled = errors.New("cancelled")

const exitInterrupted = 130

type rootOptions struct {
	configPath string
}

func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return exitCode(errOut, cmd.Execute())
}

func exitCode(errOut io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCancelled):
		return 1
	case errors.Is(err, tui.ErrInterrupted):
		return exitInterrupted
	}
	_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	return 1
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cursive",
		Short:         "Full-screen menus, pagers, sliders and prompts for shell scripts",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       buildVersion(),
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")

	cmd.AddCommand(
		newMenuCmd(opts),
		newViewCmd(opts),
		newSliderCmd(opts),
		newPromptCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
