package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"listlint/internal/config"
	"listlint/internal/output"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Build the Markdown review comment for changed project files",
	Long: `Build the single Markdown comment an automated reviewer posts on a pull
request, from the list of changed project files.

The comment opens with a greeting on the first run and with an update header
on re-runs (--rerun). The comment body adapts to the batch:

	- any file with a disallowed extension: one notice listing those files
	- more than two projects: clean-project count plus detail for flagged ones
	- two or fewer projects: one detail block per project

Examples:
	listlint comment --root . --changed _data/projects/example.yml
	listlint comment --root . --changed a.yml,b.yml --rerun`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		if len(cfg.Changed) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --changed is required")
			os.Exit(3)
		}
		os.Exit(runComment(cfg, os.Stdout, os.Stderr))
	},
}

func init() {
	commentCmd.Flags().StringVar(&cfg.Root, "root", cfg.Root, "Directory containing the _data tree")
	commentCmd.Flags().StringArrayVar(&cfg.Changed, "changed", nil, "Changed project file path, relative to --root (repeatable; comma lists accepted)")
	commentCmd.Flags().BoolVar(&cfg.Rerun, "rerun", false, "Use the update header instead of the greeting")
	commentCmd.Flags().StringVar(&cfg.Label, "label", cfg.Label, "Contributor label remote-tracked projects must carry")
	commentCmd.Flags().StringVar(&cfg.Token, "token", "", "GitHub access token (default: GITHUB_TOKEN, then gh CLI)")
	commentCmd.Flags().IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "How many files to review in parallel")
	commentCmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Overall run timeout; remote checks cut off by it count as inconclusive")
	rootCmd.AddCommand(commentCmd)
}

func runComment(cfg *config.Config, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	runner, status, err := newRunner(ctx, cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 3
	}

	rep := runner.Run(ctx, cfg.Root, cfg.Changed)
	reportSkipped(cfg, stderr, rep)
	reportQuota(cfg, stderr, status)

	fmt.Fprint(stdout, output.RenderComment(rep, cfg.Rerun))
	return 0
}
