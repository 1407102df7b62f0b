package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/diag"
)

func TestParseVersion(t *testing.T) {
	v, err := config.ParseVersion("1.2")
	require.NoError(t, err)
	assert.Equal(t, config.Version{Major: 1, Minor: 2}, v)
	assert.Equal(t, "1.2", v.String())

	for _, bad := range []string{"", "1", "1.x", "-1.0"} {
		_, err := config.ParseVersion(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestVersion_AtLeast(t *testing.T) {
	v12 := config.Version{Major: 1, Minor: 2}
	assert.True(t, config.Version{Major: 1, Minor: 2}.AtLeast(v12))
	assert.True(t, config.Version{Major: 1, Minor: 4}.AtLeast(v12))
	assert.True(t, config.Version{Major: 2, Minor: 0}.AtLeast(v12))
	assert.False(t, config.Version{Major: 1, Minor: 1}.AtLeast(v12))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.yaml")
	content := "languageVersion: \"1.1\"\ndisabled:\n  - REDUNDANT_OPEN_IN_INTERFACE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Version{Major: 1, Minor: 1}, cfg.LanguageVersion)
	assert.Equal(t, []diag.Code{diag.CodeRedundantOpenInInterface}, cfg.Disabled)

	bag := cfg.NewBag()
	bag.Report(diag.Diagnostic{Code: diag.CodeRedundantOpenInInterface})
	assert.Empty(t, bag.Diagnostics())
}

func TestLoad_DefaultsWhenFieldsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.LanguageVersion)
	assert.Empty(t, cfg.Disabled)
}
