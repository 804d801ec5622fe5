package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"listlint/internal/config"
	gh "listlint/internal/github"
	"listlint/internal/output"
	"listlint/internal/report"
	"listlint/internal/review"
	"listlint/internal/scan"
	"listlint/internal/schema"
	"listlint/internal/tags"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every project listing file under a directory",
	Long: `Validate every project listing file under a directory and print a
plain-text report.

Authentication:
  The remote checks use a GitHub access token when one is available. It is
  resolved from --token, then GITHUB_TOKEN, then the gh CLI. Without a token
  the checks still run against the (much smaller) unauthenticated quota, and
  an exhausted quota downgrades them to inconclusive rather than failing.

Exit codes:
	0 = every project valid, no misplaced files
	1 = flagged projects or misplaced files found
	3 = fatal error (review did not run)

Examples:
  export GITHUB_TOKEN="<your_token>"
  listlint check --root .

  # Skip remote checks entirely by keeping the run offline
  listlint check --root . --timeout 30s`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		os.Exit(runCheck(cfg, os.Stdout, os.Stderr))
	},
}

func init() {
	checkCmd.Flags().StringVar(&cfg.Root, "root", cfg.Root, "Directory containing the _data tree")
	checkCmd.Flags().StringVar(&cfg.Label, "label", cfg.Label, "Contributor label remote-tracked projects must carry")
	checkCmd.Flags().StringVar(&cfg.Token, "token", "", "GitHub access token (default: GITHUB_TOKEN, then gh CLI)")
	checkCmd.Flags().IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "How many files to review in parallel")
	checkCmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Overall run timeout; remote checks cut off by it count as inconclusive")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cfg *config.Config, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	layout, err := scan.Scan(cfg.Root)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 3
	}

	runner, status, err := newRunner(ctx, cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 3
	}

	rep := runner.Run(ctx, cfg.Root, layout.Projects)
	rep.StrayFiles = layout.StrayFiles
	rep.NonYAMLFiles = layout.NonYAMLFiles

	reportSkipped(cfg, stderr, rep)
	reportQuota(cfg, stderr, status)
	output.RenderText(stdout, rep)
	return output.ExitCode(rep)
}

// newRunner wires the review pipeline: local validators, the GitHub status
// client with its shared request budget, and the bounded-concurrency runner.
func newRunner(ctx context.Context, cfg *config.Config, stderr io.Writer) (*report.Runner, *gh.StatusClient, error) {
	token, source, err := gh.ResolveToken(ctx, cfg.Token)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving GitHub token: %w", err)
	}
	if cfg.Verbose {
		fmt.Fprintf(stderr, "github auth source: %s\n", source)
	}

	client := gh.NewClient(token, gh.WithVerbose(cfg.Verbose, stderr))
	status := gh.NewStatusClient(client, gh.NewRequestBudget())

	engine := review.NewEngine(schema.New(), tags.New(), status, status, cfg.Label)
	return report.NewRunner(engine, cfg.Concurrency), status, nil
}

func reportSkipped(cfg *config.Config, stderr io.Writer, rep *report.Report) {
	if !cfg.Verbose {
		return
	}
	for _, path := range rep.Skipped {
		fmt.Fprintf(stderr, "skipping unreadable file: %s\n", path)
	}
}

func reportQuota(cfg *config.Config, stderr io.Writer, status *gh.StatusClient) {
	if !cfg.Verbose || !status.Budget().Exhausted() {
		return
	}
	fmt.Fprintln(stderr, "github request quota exhausted during the run; remote checks were reported as inconclusive")
}
