package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	chaterrors "github.com/mosaicmc/chatrender/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chatrender.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "locale: lang/en_us.yaml\n"))
	require.NoError(t, err)
	require.Equal(t, "lang/en_us.yaml", cfg.Locale)
	require.Equal(t, "ansi", cfg.Output)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 80, cfg.ObfuscationIntervalMS)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	content := "output: html\nlog:\n  level: debug\n  human: true\nobfuscation_interval_ms: 120\n"
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.Equal(t, "html", cfg.Output)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.Human)
	require.Equal(t, 120, cfg.ObfuscationIntervalMS)
}

func TestLoadRejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "output: pdf\n"))
	require.Error(t, err)

	var verr *chaterrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Message, "oneof")
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "log:\n  level: shouty\n"))
	require.Error(t, err)

	var verr *chaterrors.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestLoadRejectsOutOfRangeInterval(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "obfuscation_interval_ms: 2\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var perr *chaterrors.ParseError
	require.True(t, errors.As(err, &perr))
}

func TestValidateNilConfig(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
}
