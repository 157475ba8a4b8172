package bumpytrack

import (
	"context"
	"fmt"
)

// Options are the per-run overrides, usually taken from the command line.
// Empty strings and nil pointers defer to the config file.
type Options struct {
	ConfigPath     string
	Part           string
	CurrentVersion string
	NewVersion     string
	GitCommit      *bool
	GitTag         *bool
	// DryRun computes and reports every replacement without writing files or touching git.
	DryRun bool
}

// Result describes a completed run.
type Result struct {
	OldVersion    Version
	NewVersion    Version
	ModifiedFiles []string // Paths written (or that would be written on a dry run), in plan order.
	Committed     bool
	Tagged        bool
	DryRun        bool
}

// Bumper runs version bumps.
type Bumper struct {
	Reporter *Reporter
	// NewGit builds the git gateway for a loaded config. When nil the git
	// binary named by the config is invoked directly.
	NewGit func(cfg *Config) Git
}

// New returns a Bumper reporting to reporter.
func New(reporter *Reporter) *Bumper {
	return &Bumper{Reporter: reporter}
}

// Run performs a bump with the default git gateway.
func Run(ctx context.Context, opts Options, reporter *Reporter) (Result, error) {
	return New(reporter).Run(ctx, opts)
}

// Run loads the config, resolves the current and new versions, rewrites every
// planned file and then commits and tags when enabled. It stops at the first
// error. Replacements are all validated before any file is written, but a
// failing commit or tag leaves the written files in place.
func (b *Bumper) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result
	rep := b.Reporter
	if rep == nil {
		rep = DiscardReporter()
	}

	// 1. Load config
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return res, err
	}
	rep.Verbose("Loaded config from '%s'.", configPath)

	// 2. Current version
	current, err := resolveCurrentVersion(opts, cfg)
	if err != nil {
		return res, err
	}
	res.OldVersion = current
	rep.Info("Current version: '%s'", current)

	// 3. New version
	next, err := resolveNewVersion(opts, current)
	if err != nil {
		return res, err
	}
	res.NewVersion = next
	rep.Info("New version: '%s'", next)
	if next.Compare(current) < 0 {
		rep.Warn("new version %s is lower than current version %s", next, current)
	}

	// 4. Replace version in config file and other configured files
	rep.Info("Replacing version string in files")
	specs := PlanReplacements(configPath, cfg)
	for _, spec := range specs {
		rep.Verbose("Replacing version string in '%s'.", spec.Path)
		rep.Verbose("Searching '%s' and replacing for '%s'", RenderTemplate(spec.SearchTemplate, current), RenderTemplate(spec.SearchTemplate, next))
	}
	replacements, err := PrepareReplacements(specs, current, next)
	if err != nil {
		return res, err
	}

	if opts.DryRun {
		res.DryRun = true
		for _, r := range replacements {
			rep.Diff(r.Diff())
			res.ModifiedFiles = append(res.ModifiedFiles, r.Path)
		}
		return res, nil
	}

	for _, r := range replacements {
		if err := r.Write(); err != nil {
			return res, err
		}
		res.ModifiedFiles = append(res.ModifiedFiles, r.Path)
	}

	// 5. Git commit and tag
	doCommit := resolveFlag(opts.GitCommit, cfg.GitCommit)
	doTag := resolveFlag(opts.GitTag, cfg.GitTag)
	if !doCommit && !doTag {
		return res, nil
	}
	git := b.git(cfg)

	if doCommit {
		rep.Info("Committing changes to GIT")
		if err := git.Commit(ctx, res.ModifiedFiles, current, next); err != nil {
			return res, fmt.Errorf("git commit: %w", err)
		}
		res.Committed = true
	}

	if doTag {
		rep.Info("Adding version tag to GIT")
		if err := git.Tag(ctx, next); err != nil {
			return res, fmt.Errorf("git tag: %w", err)
		}
		res.Tagged = true
	}

	return res, nil
}

func (b *Bumper) git(cfg *Config) Git {
	if b.NewGit != nil {
		return b.NewGit(cfg)
	}
	return NewCommandGit(cfg.GitBinary())
}

func resolveCurrentVersion(opts Options, cfg *Config) (Version, error) {
	text := opts.CurrentVersion
	if text == "" && cfg.CurrentVersion != nil {
		text = *cfg.CurrentVersion
	}
	if text == "" {
		return Version{}, ErrMissingCurrentVersion
	}
	v, err := ParseVersion(text)
	if err != nil {
		return Version{}, fmt.Errorf("current version: %w", err)
	}
	return v, nil
}

func resolveNewVersion(opts Options, current Version) (Version, error) {
	switch {
	case opts.NewVersion != "":
		v, err := ParseVersion(opts.NewVersion)
		if err != nil {
			return Version{}, fmt.Errorf("new version: %w", err)
		}
		return v, nil
	case opts.Part != "":
		return current.Increment(Part(opts.Part))
	default:
		return Version{}, ErrMissingNewVersion
	}
}

// resolveFlag prefers an explicit override, then the config value, then false.
func resolveFlag(override, configured *bool) bool {
	if override != nil {
		return *override
	}
	if configured != nil {
		return *configured
	}
	return false
}
