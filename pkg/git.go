package bumpytrack

import (
	"context"
	"fmt"
	"os/exec"
)

// Git performs the version-control side effects of a bump.
type Git interface {
	// Commit stages exactly files and commits them with a bump message.
	Commit(ctx context.Context, files []string, oldVersion, newVersion Version) error
	// Tag tags the current reference with "v" followed by newVersion.
	Tag(ctx context.Context, newVersion Version) error
}

// CommandRunner runs an external command and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// CommandGit implements Git by invoking the git binary.
type CommandGit struct {
	// Binary is the git executable; "git" when empty.
	Binary string
	// Dir is the working directory; the process working directory when empty.
	Dir    string
	Runner CommandRunner
}

// NewCommandGit returns a CommandGit running binary through os/exec.
func NewCommandGit(binary string) *CommandGit {
	return &CommandGit{Binary: binary, Runner: ExecRunner{}}
}

// CommitMessage is the message used for bump commits.
func CommitMessage(oldVersion, newVersion Version) string {
	return fmt.Sprintf("Bumping version: %s → %s", oldVersion, newVersion)
}

// TagName is the tag created for a version.
func TagName(v Version) string {
	return "v" + v.String()
}

// Commit resets the index, so that only files end up in the commit, then
// stages files and commits.
func (g *CommandGit) Commit(ctx context.Context, files []string, oldVersion, newVersion Version) error {
	if err := g.run(ctx, "reset", "HEAD"); err != nil {
		return err
	}
	if err := g.run(ctx, append([]string{"add"}, files...)...); err != nil {
		return err
	}
	return g.run(ctx, "commit", "-m", CommitMessage(oldVersion, newVersion))
}

func (g *CommandGit) Tag(ctx context.Context, newVersion Version) error {
	return g.run(ctx, "tag", TagName(newVersion))
}

func (g *CommandGit) run(ctx context.Context, args ...string) error {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	runner := g.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	out, err := runner.Run(ctx, g.Dir, binary, args...)
	if err != nil {
		return &CommandError{
			Args:   append([]string{binary}, args...),
			Output: string(out),
			Err:    err,
		}
	}
	return nil
}
