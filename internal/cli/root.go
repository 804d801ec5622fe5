package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"listlint/internal/config"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "listlint",
	Short: "Validate project listing files and produce review feedback",
	Long: `listlint validates machine-readable project listing files submitted to a
curated directory of open-source projects.

It runs the same review pipeline two ways:

	# Validate every project file under a directory (CI / local run)
	listlint check --root .

	# Build the Markdown comment for an automated pull-request review
	listlint comment --root . --changed _data/projects/example.yml

Checks are ordered from cheap to expensive: file extension, document schema,
tags, link syntax, then (for projects hosted on GitHub) repository state and
contributor label. A project failing an early check never triggers a network
call, and GitHub rate limiting downgrades the remote checks to inconclusive
instead of failing the review.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging (prints every GitHub API call and skipped files)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
