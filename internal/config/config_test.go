package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftmsg/draftmsg/internal/classify"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.Keywords)
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, "format: json\nno_color: true\nkeywords:\n  security:\n    - oauth\n")

	cfg, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, []string{"oauth"}, cfg.Keywords["security"])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "format: text\n")
	t.Setenv("DRAFTMSG_FORMAT", "json")

	cfg, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_FlagOverridesEverything(t *testing.T) {
	dir := writeConfig(t, "format: json\n")
	t.Setenv("DRAFTMSG_FORMAT", "json")

	cfg, err := Load(dir, map[string]string{"format": "text"})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_UnknownFormat(t *testing.T) {
	dir := writeConfig(t, "format: xml\n")
	_, err := Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestLoad_UnknownKeywordCategory(t *testing.T) {
	dir := writeConfig(t, "keywords:\n  secrutiy:\n    - oops\n")
	_, err := Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secrutiy")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "format: [unclosed\n  nope")
	_, err := Load(dir, nil)
	require.Error(t, err)
}

func TestExtraKeywords(t *testing.T) {
	cfg := Config{Keywords: map[string][]string{"fixes": {"hotfix"}}}
	extra := cfg.ExtraKeywords()
	assert.Equal(t, []string{"hotfix"}, extra[classify.CategoryFixes])

	assert.Nil(t, Config{}.ExtraKeywords())
}
