package config

import (
	"errors"
	"strings"
	"time"
)

type Config struct {
	// Root is the directory containing the data tree (see --root).
	Root string

	// Changed lists changed project file paths relative to Root (see
	// --changed). Values may be provided as repeated flags and/or
	// comma-separated lists.
	Changed []string

	// Rerun selects the "update" comment header instead of the greeting
	// (see --rerun).
	Rerun bool

	// Label is the contributor label every remote-tracked project must
	// carry (see --label).
	Label string

	// Token is an explicit GitHub access token (see --token). When empty,
	// the token is resolved from GITHUB_TOKEN or the gh CLI.
	Token string

	// Concurrency controls parallelism for per-file review (see
	// --concurrency). Must be >= 1.
	Concurrency int

	// Timeout bounds the whole run (see --timeout). Remote checks cut off
	// by the deadline degrade to inconclusive. Must be > 0.
	Timeout time.Duration

	// Verbose enables diagnostics on stderr, including one line per GitHub
	// API call.
	Verbose bool
}

func New() *Config {
	return &Config{
		Root:        ".",
		Label:       "help wanted",
		Concurrency: 4,
		Timeout:     5 * time.Minute,
	}
}

func (c *Config) Validate() error {
	c.Changed = splitCommaList(c.Changed)
	c.Label = strings.TrimSpace(c.Label)
	c.Root = strings.TrimSpace(c.Root)

	if c.Root == "" {
		return errors.New("--root must not be empty")
	}
	if c.Label == "" {
		return errors.New("--label must not be empty")
	}
	if c.Concurrency <= 0 {
		return errors.New("--concurrency must be >= 1")
	}
	if c.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}
	return nil
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
