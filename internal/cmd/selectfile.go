package cmd

import (
	"bufio"
	"fmt"
	"time"

	"github.com/harrison/fstools/internal/models"
	"github.com/harrison/fstools/internal/selector"
	"github.com/spf13/cobra"
)

// NewSelectFileCommand creates the selectfile root command
func NewSelectFileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selectfile <option>...",
		Short: "Prompt the user to select from a set of options",
		Long: `Prints the options as a numbered list on stdout and reads the user's
choice from stdin. Enter the number of an option, or a line starting with
'q' to cancel. Invalid entries are asked for again.

The selected option is written to stderr, so scripts can tell the prompt
apart from the result. A single option is selected without asking.
Cancelling writes nothing and still exits 0; only I/O errors exit non-zero.`,
		Example: `  selectfile foo bar baz
  choice=$(selectfile $(findfile . plan.sh) 2>&1 >/dev/tty)`,
		Version:       Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectFile(cmd, args)
		},
	}

	addCommonFlags(cmd)

	return cmd
}

func runSelectFile(cmd *cobra.Command, options []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stderr carries the result, so only the file logger is attached
	logs, err := newCommandLoggers(cfg, nil)
	if err != nil {
		return err
	}
	defer logs.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	in := bufio.NewReader(cmd.InOrStdin())

	menu := &selector.Menu{
		Color: useColor(cfg.Color, cmd.OutOrStdout()),
		OnInvalid: func(line string) {
			logs.all.LogDebug(fmt.Sprintf("rejected input %q", line))
		},
	}

	start := time.Now()
	sel, err := selector.SelectWithMenu(menu, options, in, out)
	if err != nil {
		// show whatever menu text was buffered; the selection error wins
		_ = out.Flush()
		err = fmt.Errorf("selection failed: %w", err)
		logs.recordFailure(err)
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}

	result := models.SelectionResult{
		Options:  options,
		Index:    int(selector.None),
		Outcome:  models.OutcomeCancelled,
		Duration: time.Since(start),
	}
	if idx, ok := sel.Index(); ok {
		result.Index = idx
		result.Outcome = models.OutcomeSelected
	}
	logs.all.LogSelectionResult(result)

	if text, ok := result.Selected(); ok {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), text); err != nil {
			return fmt.Errorf("failed to write selection: %w", err)
		}
	}

	return nil
}
