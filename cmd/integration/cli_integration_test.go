package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestCLIBinaryIntegration(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available on system")
	}

	// 1. Build the CLI binary.
	tmpBuildDir := t.TempDir()

	// The built binary will be written to "bumpytrack" in tmpBuildDir.
	// The main package is at the module root, two directories up from cmd/integration.
	binPath := filepath.Join(tmpBuildDir, "bumpytrack")
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../")
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, string(buildOutput))
	}

	// 2. Set up a temporary git repository for testing.
	tmpRepo := t.TempDir()
	runGit := func(args ...string) string {
		cmd := exec.Command("git", args...)
		cmd.Dir = tmpRepo
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %v failed: %v; output: %s", args, err, string(output))
		}
		return string(output)
	}
	runGit("init")
	runGit("config", "user.email", "test@example.com")
	runGit("config", "user.name", "Test User")

	// 3. Create the config, a VERSION file and a Go version file.
	pkgDir := filepath.Join(tmpRepo, "pkg")
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		t.Fatalf("failed to create pkg directory: %v", err)
	}
	files := map[string]string{
		".bumpytrack.yml": `current_version: 1.2.3
file_replaces:
  - path: VERSION
    search_template: "{version}"
  - path: pkg/version.go
    search_template: 'Version = "{version}"'
git_commit: true
git_tag: true
`,
		"VERSION": "1.2.3\n",
		"pkg/version.go": `package version

var (
	Version = "1.2.3"
)
`,
		"notes.txt": "unrelated work in progress\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpRepo, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	// 4. Commit everything but notes.txt, then stage notes.txt so the bump must leave it out.
	runGit("add", ".bumpytrack.yml", "VERSION", "pkg/version.go")
	runGit("commit", "-m", "initial commit")
	runGit("add", "notes.txt")

	// 5. Run the CLI binary.
	cliCmd := exec.Command(binPath, "--verbose", "minor")
	cliCmd.Dir = tmpRepo
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stdout: %s; stderr: %s", err, cliStdout.String(), cliStderr.String())
	}

	// 6. Verify every file was updated to "1.3.0".
	for name, want := range map[string]string{
		".bumpytrack.yml": "current_version: 1.3.0",
		"VERSION":         "1.3.0\n",
		"pkg/version.go":  `Version = "1.3.0"`,
	} {
		content, err := os.ReadFile(filepath.Join(tmpRepo, name))
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if !strings.Contains(string(content), want) {
			t.Errorf("%s not updated; expected %q in content, got:\n%s", name, want, string(content))
		}
	}

	// 7. Verify the commit holds exactly the bumped files.
	changed := strings.Fields(runGit("show", "--name-only", "--pretty=format:", "HEAD"))
	slices.Sort(changed)
	if want := []string{".bumpytrack.yml", "VERSION", "pkg/version.go"}; !slices.Equal(changed, want) {
		t.Errorf("expected commit to contain %v, got %v", want, changed)
	}
	if msg := strings.TrimSpace(runGit("log", "-1", "--pretty=%s")); msg != "Bumping version: 1.2.3 → 1.3.0" {
		t.Errorf("unexpected commit message %q", msg)
	}

	// 8. Verify that a git tag "v1.3.0" was created.
	tags := strings.Split(strings.TrimSpace(runGit("tag")), "\n")
	expectedTag := "v1.3.0"
	if !slices.Contains(tags, expectedTag) {
		t.Errorf("expected git tag %q not found; got tags: %v", expectedTag, tags)
	}
}
