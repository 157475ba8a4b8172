package bumpytrack

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported by a bump run. Every error returned by this package
// wraps exactly one of these, so callers can branch with errors.Is.
var (
	// ErrConfigLoad indicates the configuration file is missing, unreadable or invalid.
	ErrConfigLoad = errors.New("failed to load config")

	// ErrInvalidVersionFormat indicates a version is not major.minor.patch integers.
	ErrInvalidVersionFormat = errors.New("invalid version format")

	// ErrInvalidPart indicates the part to bump is not one of major, minor or tiny.
	ErrInvalidPart = errors.New("part should be one of: major, minor or tiny")

	// ErrMissingCurrentVersion indicates neither an override nor the config provides a current version.
	ErrMissingCurrentVersion = errors.New("no way to obtain current version")

	// ErrMissingNewVersion indicates neither an explicit new version nor a part was given.
	ErrMissingNewVersion = errors.New("no way to obtain a new version")

	// ErrFileNotAccessible indicates a target file does not exist or is not readable and writable.
	ErrFileNotAccessible = errors.New("file not found or not accessible")

	// ErrNoReplacementPerformed indicates the search string was not found in a target file.
	ErrNoReplacementPerformed = errors.New("nothing to replace")

	// ErrExternalCommandFailed indicates a git invocation exited unsuccessfully.
	ErrExternalCommandFailed = errors.New("external command failed")
)

// CommandError carries the command line and combined output of a failed
// external command. It matches ErrExternalCommandFailed.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to execute '%s': %v. Output was:\n\n%s\n", strings.Join(e.Args, " "), e.Err, e.Output)
}

func (e *CommandError) Is(target error) bool {
	return target == ErrExternalCommandFailed
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
