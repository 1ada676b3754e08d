package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "msgtrail", "snapshot.json"), cfg.Snapshot)
	assert.Equal(t, filepath.Join(home, ".local", "share", "msgtrail", "crumbs"), cfg.CrumbDir)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_ReadsAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `snapshot: /var/lib/msgtrail/snap.json
crumb_dir: /var/lib/msgtrail/crumbs
format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/msgtrail/snap.json", cfg.Snapshot)
	assert.Equal(t, "/var/lib/msgtrail/crumbs", cfg.CrumbDir)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, filepath.Join(home, ".local", "share", "msgtrail", "snapshot.json"), cfg.Snapshot)
	assert.Equal(t, filepath.Join(home, ".local", "share", "msgtrail", "crumbs"), cfg.CrumbDir)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapsot: /tmp/x.json\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapsot")
}

func TestLoad_ExplicitMissingPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "msgtrail")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "snapshot: /custom/snap.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/custom/snap.json", cfg.Snapshot)
}
