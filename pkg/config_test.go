package bumpytrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), ".bumpytrack.yml"), `current_version: 0.1.0
file_replaces:
  - path: VERSION
    search_template: "{version}"
  - path: setup.py
    search_template: 'version="{version}"'
git_commit: true
git_tag: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.CurrentVersion)
	assert.Equal(t, "0.1.0", *cfg.CurrentVersion)
	assert.Equal(t, []ReplaceSpec{
		{Path: "VERSION", SearchTemplate: "{version}"},
		{Path: "setup.py", SearchTemplate: `version="{version}"`},
	}, cfg.FileReplaces)
	require.NotNil(t, cfg.GitCommit)
	assert.True(t, *cfg.GitCommit)
	require.NotNil(t, cfg.GitTag)
	assert.False(t, *cfg.GitTag)
	assert.Equal(t, "git", cfg.GitBinary())
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), ".bumpytrack.toml"), `current_version = "2.3.4"
git_tag = true
git_path = "/usr/local/bin/git"

[[file_replaces]]
path = "VERSION"
search_template = "{version}"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.CurrentVersion)
	assert.Equal(t, "2.3.4", *cfg.CurrentVersion)
	assert.Equal(t, []ReplaceSpec{{Path: "VERSION", SearchTemplate: "{version}"}}, cfg.FileReplaces)
	assert.Nil(t, cfg.GitCommit)
	require.NotNil(t, cfg.GitTag)
	assert.True(t, *cfg.GitTag)
	assert.Equal(t, "/usr/local/bin/git", cfg.GitBinary())
	assert.Equal(t, FormatTOML, cfg.Format)
}

func TestLoadConfigEmptyDocument(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), ".bumpytrack.yml"), "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.CurrentVersion)
	assert.Empty(t, cfg.FileReplaces)
	assert.Nil(t, cfg.GitCommit)
	assert.Nil(t, cfg.GitTag)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unparseable yaml", "c.yml", "current_version: [1.2.3\n"},
		{"unknown yaml key", "c.yml", "current_version: 1.2.3\ngit_push: true\n"},
		{"wrong yaml type", "c.yml", "git_commit: maybe\n"},
		{"unparseable toml", "c.toml", "current_version = \n"},
		{"unknown toml key", "c.toml", "current_version = \"1.2.3\"\ngit_push = true\n"},
		{"missing path", "c.yml", "file_replaces:\n  - search_template: \"{version}\"\n"},
		{"template without placeholder", "c.yml", "file_replaces:\n  - path: VERSION\n    search_template: version\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), tc.file), tc.content)
			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, ErrConfigLoad)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, ErrConfigLoad)
	assert.Contains(t, err.Error(), "missing.yml")
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath(".bumpytrack.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("conf/bump.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("bumpfile"))
	assert.Equal(t, FormatTOML, FormatForPath("conf/.bumpytrack.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("BUMP.TOML"))
}
