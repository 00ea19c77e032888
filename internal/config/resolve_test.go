package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rorycl/pgdumpanon/internal/locale"
)

func TestCompilePatterns(t *testing.T) {
	patterns, err := compilePatterns([]string{`^public\.tmp_.*`})
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.True(t, patterns[0].MatchString("public.tmp_sessions"))
}

func TestCompilePatternsRejectsInvalidRegex(t *testing.T) {
	_, err := compilePatterns([]string{`(unclosed`})
	assert.Error(t, err)
}

func TestOpenInputDefaultsToStdin(t *testing.T) {
	f, err := openInput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, f)
}

func TestOpenInputOpensNamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1;"), 0o644))

	f, err := openInput(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, path, f.Name())
}

func TestOpenInputMissingFileErrors(t *testing.T) {
	_, err := openInput(filepath.Join(t.TempDir(), "missing.sql"))
	assert.Error(t, err)
}

func TestLoadLocaleOverlayAppliesNamedLocale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locales.toml")
	content := "[en]\nstreet_names = [\"Custom Street\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overlay, err := loadLocaleOverlay(path, locale.EN)
	require.NoError(t, err)
	require.NotNil(t, overlay)
	assert.Equal(t, []string{"Custom Street"}, overlay.StreetNames)
}

func TestLoadLocaleOverlayMissingLocaleIsNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locales.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ru]\nstreet_names = [\"x\"]\n"), 0o644))

	overlay, err := loadLocaleOverlay(path, locale.EN)
	require.NoError(t, err)
	assert.Nil(t, overlay)
}
