package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultRegion, cfg.AWS.Region)
	assert.Equal(t, 2, cfg.Output.Indent)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
aws:
  region: us-east-1
  profile: staging
output:
  indent: 4
log:
  level: debug
theme: dracula
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, AWS{Region: "us-east-1", Profile: "staging"}, cfg.AWS)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "ec2-user", cfg.SSH.User)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad yaml", body: "aws: [", want: "parse config"},
		{name: "unknown field", body: "regoin: us-east-1\n", want: "parse config"},
		{name: "bad indent", body: "output:\n  indent: 12\n", want: "output.indent"},
		{name: "bad level", body: "log:\n  level: loud\n", want: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INVENTORY_DIR", "inv")

	got, err := ExpandPath("~/$INVENTORY_DIR/config.yml")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "inv", "config.yml"), got)
}

func TestSSHKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Empty(t, SSH{KeyDir: "~/.ssh"}.KeyPath())
	assert.Equal(t, filepath.Join(home, ".ssh", "deploy.pem"), SSH{KeyDir: "~/.ssh", Key: "deploy.pem"}.KeyPath())
	assert.Equal(t, "/etc/keys/id", SSH{KeyDir: "~/.ssh", Key: "/etc/keys/id"}.KeyPath())
}
