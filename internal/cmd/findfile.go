package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/harrison/fstools/internal/filelock"
	"github.com/harrison/fstools/internal/finder"
	"github.com/harrison/fstools/internal/models"
	"github.com/spf13/cobra"
)

// NewFindFileCommand creates the findfile root command
func NewFindFileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findfile <search-directory> <search-term>",
		Short: "Search a directory tree for files with a given name",
		Long: `Searches a directory tree for files with a specified file name and
prints one matching path per line, in depth-first order.

The search term is compared with the trailing components of each path:
"plan.sh" matches any file named plan.sh, "scripts/plan.sh" only those
inside a directory named scripts. Directories are never printed.

Any unreadable directory aborts the search with a non-zero exit code.
Finding nothing is not an error.`,
		Example: `  findfile ~ .vimrc
  findfile . plan.sh
  findfile -a -o matches.txt src scripts/build.sh`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFindFile(cmd, args[0], args[1])
		},
	}

	cmd.Flags().BoolP("absolute", "a", false, "Print absolute paths")
	cmd.Flags().StringP("output", "o", "", "Also write the matches to this file (locked, atomic)")
	addCommonFlags(cmd)

	return cmd
}

func runFindFile(cmd *cobra.Command, root, term string) error {
	if term == "" {
		return errors.New("search term must not be empty")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logs, err := newCommandLoggers(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logs.Close()

	logs.all.LogDebug(fmt.Sprintf("searching %s for %q", root, term))

	start := time.Now()
	matches, err := finder.FindWithOptions(root, term, finder.Options{
		Absolute: cfg.Find.Absolute,
		Logger:   logs.all,
	})
	if err != nil {
		err = fmt.Errorf("search failed: %w", err)
		logs.recordFailure(err)
		return err
	}

	out := cmd.OutOrStdout()
	for _, match := range matches {
		if _, err := fmt.Fprintln(out, match); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := filelock.WriteLines(output, matches); err != nil {
			err = fmt.Errorf("failed to write %s: %w", output, err)
			logs.recordFailure(err)
			return err
		}
		logs.all.LogInfo(fmt.Sprintf("wrote %d matches to %s", len(matches), output))
	}

	logs.all.LogSearchResult(models.SearchResult{
		Root:     root,
		Name:     term,
		Matches:  matches,
		Duration: time.Since(start),
	})

	return nil
}
