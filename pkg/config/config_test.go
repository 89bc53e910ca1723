package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pinpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
major_prompt: Unlock device
warning: 3 attempts left
allow_cancel: false
log_file: /tmp/pinpad.log
theme:
  background: "#1a1a1a"
  accent: "#ffb347"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Unlock device", cfg.MajorPrompt)
	assert.Equal(t, "3 attempts left", cfg.Warning)
	assert.False(t, cfg.AllowCancel)
	assert.Equal(t, "/tmp/pinpad.log", cfg.LogFile)
	assert.Equal(t, "#1a1a1a", cfg.Theme.Background)
	// Absent fields keep their defaults.
	assert.Equal(t, Default().MinorPrompt, cfg.MinorPrompt)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "major_prompt: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := writeConfig(t, `
theme:
  accent: "not-a-color"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.accent")
}

func TestValidateEmptyMajorPrompt(t *testing.T) {
	cfg := Default()
	cfg.MajorPrompt = ""
	assert.Error(t, cfg.Validate())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		wantErr bool
	}{
		{in: "#000000"},
		{in: "#ffffff", r: 0xff, g: 0xff, b: 0xff},
		{in: "#ffb347", r: 0xff, g: 0xb3, b: 0x47},
		{in: "ffb347", wantErr: true},
		{in: "#fff", wantErr: true},
		{in: "#gghhii", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		r, g, b, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b}, "input %q", tt.in)
	}
}
