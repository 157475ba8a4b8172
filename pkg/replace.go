package bumpytrack

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Replacement is the pending rewrite of a single file: its content on disk and
// the content it will have once every spec targeting it has been applied.
type Replacement struct {
	Path     string
	Original []byte
	Updated  []byte

	mode fs.FileMode
}

// RenderTemplate substitutes v for every {version} placeholder in template.
func RenderTemplate(template string, v Version) string {
	return strings.ReplaceAll(template, VersionPlaceholder, v.String())
}

// ApplyReplacement rewrites the version string described by spec in a single
// file, replacing every literal occurrence of the template rendered with
// oldVersion by the template rendered with newVersion.
func ApplyReplacement(spec ReplaceSpec, oldVersion, newVersion Version) error {
	r, err := PrepareReplacement(spec, oldVersion, newVersion)
	if err != nil {
		return err
	}
	return r.Write()
}

// PrepareReplacement reads the file targeted by spec and computes its new
// content without writing anything.
func PrepareReplacement(spec ReplaceSpec, oldVersion, newVersion Version) (*Replacement, error) {
	rs, err := PrepareReplacements([]ReplaceSpec{spec}, oldVersion, newVersion)
	if err != nil {
		return nil, err
	}
	return rs[0], nil
}

// PrepareReplacements prepares every spec in order. Specs that target the same
// file are chained, so each one sees the edits of the ones before it, and the
// file appears once in the result, at the position of its first spec.
// Nothing is written; the first failing spec aborts preparation.
func PrepareReplacements(specs []ReplaceSpec, oldVersion, newVersion Version) ([]*Replacement, error) {
	var ordered []*Replacement
	byPath := make(map[string]*Replacement)

	for _, spec := range specs {
		key := filepath.Clean(spec.Path)
		r, ok := byPath[key]
		if !ok {
			original, mode, err := readTarget(spec.Path)
			if err != nil {
				return nil, err
			}
			r = &Replacement{Path: spec.Path, Original: original, Updated: original, mode: mode}
			byPath[key] = r
			ordered = append(ordered, r)
		}
		if err := r.apply(spec, oldVersion, newVersion); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

func (r *Replacement) apply(spec ReplaceSpec, oldVersion, newVersion Version) error {
	search := RenderTemplate(spec.SearchTemplate, oldVersion)
	replace := RenderTemplate(spec.SearchTemplate, newVersion)

	updated := bytes.ReplaceAll(r.Updated, []byte(search), []byte(replace))
	if bytes.Equal(updated, r.Updated) {
		return fmt.Errorf("%w in file '%s' (searched for '%s'). Aborting since this looks like a misconfiguration or an inconsistent version in config file",
			ErrNoReplacementPerformed, spec.Path, search)
	}
	r.Updated = updated
	return nil
}

// Write stores the updated content, keeping the file's permissions.
func (r *Replacement) Write() error {
	if err := os.WriteFile(r.Path, r.Updated, r.mode.Perm()); err != nil {
		return fmt.Errorf("writing '%s': %w", r.Path, err)
	}
	return nil
}

// Diff renders the changed lines of the replacement, prefixed with - and +.
func (r *Replacement) Diff() string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(r.Original), string(r.Updated))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", r.Path, r.Path)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

func readTarget(path string) ([]byte, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: '%s': %v", ErrFileNotAccessible, path, err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("%w: '%s' is a directory", ErrFileNotAccessible, path)
	}
	if err := checkAccess(path); err != nil {
		return nil, 0, fmt.Errorf("%w: '%s': %v", ErrFileNotAccessible, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: '%s': %v", ErrFileNotAccessible, path, err)
	}
	return data, info.Mode(), nil
}
