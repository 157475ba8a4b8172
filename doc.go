// Package main implements the bumpytrack CLI tool.
//
// The bumpytrack tool bumps a semantic version across a project. It reads the current
// version from a config file (default "./.bumpytrack.yml"), computes the new version
// (explicitly or by incrementing a part), rewrites the version string in the config file
// and in every file declared under file_replaces, and optionally commits the changed
// files and tags the commit with the new version (prefixed with "v").
//
// Command Usage:
//
//	bumpytrack [flags] <part>
//
// Flags:
//
//	--current-version: Overrides the current_version of the config file.
//	--new-version:     Sets the new version explicitly; <part> is then optional.
//	--git-commit:      Commits the rewritten files. --no-git-commit disables a commit
//	                   enabled by the config file.
//	--git-tag:         Tags the commit with v<new-version>. --no-git-tag disables a tag
//	                   enabled by the config file.
//	--config-path:     Path to the config file. Also read from BUMPYTRACK_CONFIG_PATH.
//	--verbose:         Logs every search and replace. Also read from BUMPYTRACK_VERBOSE.
//	--dry-run:         Prints the diff of every file without writing anything.
//	--version:         Displays the version of the bumpytrack CLI tool and exits.
//
// Config file:
//
//	current_version: 0.1.0
//	file_replaces:
//	  - path: VERSION
//	    search_template: "{version}"
//	  - path: setup.py
//	    search_template: 'version="{version}"'
//	git_commit: true
//	git_tag: true
//	git_path: git
//
// A config file with a .toml extension is read as TOML with the same keys; its own
// version is then located by `current_version = "{version}"`.
//
// Examples:
//
//	# Bump the tiny (patch) version (e.g. 1.2.3 → 1.2.4)
//	bumpytrack tiny
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	bumpytrack minor
//
//	# Bump the major version, commit and tag (e.g. 1.2.3 → 2.0.0, tag v2.0.0)
//	bumpytrack --git-commit --git-tag major
//
//	# Set an explicit version
//	bumpytrack --new-version 2.1.0
//
// The process exits with status 1 and prints the error when any step fails. Files
// already written are not restored.
package main
