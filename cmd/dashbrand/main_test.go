package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// resetFlags restores every flag to its default so runs don't leak into
// each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func newKittify(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), branding.DirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, branding.FileName), []byte(content), 0644))
	}
	return dir
}

func TestValidateCommand(t *testing.T) {
	dir := newKittify(t, `{"projectName": "Acme", "colors": {"primary": "#123456"}}`)

	out, err := execute(t, "validate", filepath.Join(dir, branding.FileName))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, err = execute(t, "validate", "--kittify-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, branding.FileName))
}

func TestValidateCommand_Invalid(t *testing.T) {
	dir := newKittify(t, `{"projectName": "Acme", "colors": {"primary": "gold"}}`)

	_, err := execute(t, "validate", filepath.Join(dir, branding.FileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, branding.ErrInvalidColor)

	_, err = execute(t, "validate", "--kittify-dir", newKittify(t, ""))
	assert.ErrorIs(t, err, branding.ErrNotFound)
}

func TestInitThenShow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), branding.DirName)

	out, err := execute(t, "init", "--kittify-dir", dir,
		"--project-name", "Acme",
		"--color", "primary=#112233",
		"--footer-text", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.DirExists(t, filepath.Join(dir, branding.StaticDirName))

	out, err = execute(t, "show", "--kittify-dir", dir, "--format", "json")
	require.NoError(t, err)

	var b branding.Branding
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, "Acme", b.ProjectName)
	assert.Equal(t, "#112233", b.Colors.Primary)
	assert.Equal(t, branding.DefaultColors().Accent, b.Colors.Accent)
	assert.Empty(t, b.Footer.Text)

	_, err = execute(t, "init", "--kittify-dir", dir, "--project-name", "Again")
	assert.Error(t, err, "existing branding must not be overwritten")
}

func TestInitForceReplacesOtherFormats(t *testing.T) {
	dir := newKittify(t, `{"projectName": "Old"}`)

	_, err := execute(t, "init", "--kittify-dir", dir, "--project-name", "New", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, "Old", branding.Load(dir).ProjectName)

	out, err := execute(t, "init", "--kittify-dir", dir, "--project-name", "New", "--format", "yaml", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "branding.yaml")

	assert.NoFileExists(t, filepath.Join(dir, branding.FileName))
	found, ok := branding.FindFile(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "branding.yaml"), found)
	assert.Equal(t, "New", branding.Load(dir).ProjectName)
}

func TestInitForceOverwritesSameFormat(t *testing.T) {
	dir := newKittify(t, `{"projectName": "Old"}`)

	_, err := execute(t, "init", "--kittify-dir", dir, "--project-name", "New", "--force")
	require.NoError(t, err)
	assert.Equal(t, "New", branding.Load(dir).ProjectName)
}

func TestCSSCommand(t *testing.T) {
	dir := newKittify(t, `{"projectName": "Acme", "colors": {"accent": "#ABCDEF"}}`)

	out, err := execute(t, "css", "--kittify-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "--honey-bright: #ABCDEF;")
}

func TestRenderCommand(t *testing.T) {
	dir := newKittify(t, `{"projectName": "Acme"}`)
	target := filepath.Join(t.TempDir(), "out.html")

	_, err := execute(t, "render", "--kittify-dir", dir, "--output", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Acme Dashboard</title>")
}

func TestStaticCommand(t *testing.T) {
	dir := newKittify(t, "")
	static := filepath.Join(dir, branding.StaticDirName)
	require.NoError(t, os.MkdirAll(static, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "spec-kitty.png"), []byte("custom logo"), 0644))

	out, err := execute(t, "static", "--kittify-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "spec-kitty.png")
	assert.Contains(t, out, "11 B")
	assert.Contains(t, out, "overrides bundled")
}

func TestParseColors(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected map[string]string
		wantErr  bool
	}{
		{"none", nil, nil, false},
		{"single", []string{"primary=#111"}, map[string]string{"primary": "#111"}, false},
		{"spaces", []string{" accent = #222222 "}, map[string]string{"accent": "#222222"}, false},
		{"missing equals", []string{"primary"}, nil, true},
		{"missing key", []string{"=#111"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColors(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
