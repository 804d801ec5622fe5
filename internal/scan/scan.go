// Package scan inspects a directory tree for project listing files and for
// files that sit in the wrong place or carry the wrong extension.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProjectsDir is where project listing files are expected to live, relative
// to the repository root.
const ProjectsDir = "_data/projects"

// DataDir is the data tree the scanner walks.
const DataDir = "_data"

// Result lists what a scan found. All slices are sorted lexicographically so
// reports stay stable across runs, and paths are relative to the scanned
// root with forward slashes.
type Result struct {
	// Projects are the reviewable files: *.yml directly under ProjectsDir.
	Projects []string

	// StrayFiles look like project files but sit outside ProjectsDir.
	StrayFiles []string

	// NonYAMLFiles sit inside ProjectsDir with a disallowed extension.
	NonYAMLFiles []string
}

// HasIssues reports whether the layout itself needs fixing, independent of
// any per-project validation.
func (r *Result) HasIssues() bool {
	return len(r.StrayFiles) > 0 || len(r.NonYAMLFiles) > 0
}

// Scan walks root's data tree. A missing data directory is an error: running
// against the wrong working directory should fail loudly, not report an
// empty clean run.
func Scan(root string) (*Result, error) {
	dataRoot := filepath.Join(root, DataDir)
	if _, err := os.Stat(dataRoot); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataRoot, err)
	}

	res := &Result{}
	err := filepath.WalkDir(dataRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		inProjects := filepath.ToSlash(filepath.Dir(rel)) == ProjectsDir
		switch {
		case inProjects && strings.EqualFold(filepath.Ext(rel), ".yml"):
			res.Projects = append(res.Projects, rel)
		case inProjects:
			res.NonYAMLFiles = append(res.NonYAMLFiles, rel)
		case looksLikeProjectFile(rel):
			res.StrayFiles = append(res.StrayFiles, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataRoot, err)
	}

	sort.Strings(res.Projects)
	sort.Strings(res.StrayFiles)
	sort.Strings(res.NonYAMLFiles)
	return res, nil
}

// looksLikeProjectFile reports whether a data file outside the projects
// directory was probably meant to be a project listing.
func looksLikeProjectFile(rel string) bool {
	switch strings.ToLower(filepath.Ext(rel)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
