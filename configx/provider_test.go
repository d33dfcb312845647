package configx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinia/featuretoggles/errorx"
	"github.com/clinia/featuretoggles/featureflagx"
	loggerxtest "github.com/clinia/featuretoggles/loggerx/test"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestNewRouter(t *testing.T) {
	ctx := context.Background()

	t.Run("should return an empty router without sources", func(t *testing.T) {
		values, err := Values(ctx)
		require.NoError(t, err)
		assert.Empty(t, values)

		r, err := NewRouter(ctx)
		require.NoError(t, err)
		isEnabled, err := r.IsEnabled("next-gen-ecomm")
		require.NoError(t, err)
		assert.False(t, isEnabled)
	})

	t.Run("should load json and yaml files with later files winning", func(t *testing.T) {
		jsonFile := writeFile(t, "features.json", `{"features": {"next-gen-ecomm": true, "use-new-SR-algorithm": true}}`)
		yamlFile := writeFile(t, "features.yaml", "features:\n  use-new-SR-algorithm: false\n  dotted.flag: true\n")

		r, err := NewRouter(ctx, WithConfigFiles(jsonFile, yamlFile))
		require.NoError(t, err)

		for name, expected := range map[string]bool{
			"next-gen-ecomm":       true,
			"use-new-SR-algorithm": false,
			"dotted.flag":          true,
		} {
			isEnabled, err := r.IsEnabled(featureflagx.FeatureFlag(name))
			require.NoError(t, err)
			assert.Equal(t, expected, isEnabled, name)
		}
	})

	t.Run("should apply sources in order", func(t *testing.T) {
		file := writeFile(t, "features.yml", "features:\n  a: true\n  b: true\n  c: true\n")
		fs := newFlagSet(t, "--config", file, "--feature", "b=false,c=false")

		values, err := Values(ctx,
			WithBaseValues(map[string]bool{"a": false, "base": true}),
			WithFlags(fs),
			WithValue("c", true),
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"a":    true,
			"b":    false,
			"c":    true,
			"base": true,
		}, values)
	})

	t.Run("should coerce command line values", func(t *testing.T) {
		fs := newFlagSet(t, "--feature", "a=1", "--feature", "b=FALSE", "--feature", "c=t")

		values, err := Values(ctx, WithFlags(fs))
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"a": true, "b": false, "c": true}, values)
	})

	t.Run("should reject command line values that are not booleans", func(t *testing.T) {
		fs := newFlagSet(t, "--feature", "a=maybe")

		_, err := Values(ctx, WithFlags(fs))
		assert.True(t, errorx.IsInvalidArgumentError(err), "%v", err)
	})

	t.Run("should reject non boolean values in files", func(t *testing.T) {
		file := writeFile(t, "features.json", `{"features": {"a": "yes"}}`)
		l, buf := loggerxtest.NewTestLoggerWithJSONBuffer(t)

		_, err := Values(ctx, WithConfigFiles(file), WithLogger(l))
		assert.True(t, errorx.IsInvalidArgumentError(err), "%v", err)

		entries := loggerxtest.DecodeEntries(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0]["level"])
	})

	t.Run("should reject blank flag names", func(t *testing.T) {
		file := writeFile(t, "features.json", `{"features": {" ": true}}`)

		_, err := NewRouter(ctx, WithConfigFiles(file))
		assert.True(t, errorx.IsInvalidArgumentError(err), "%v", err)
	})

	t.Run("should reject unknown top level keys", func(t *testing.T) {
		file := writeFile(t, "features.json", `{"feature": {"a": true}}`)

		_, err := Values(ctx, WithConfigFiles(file))
		assert.True(t, errorx.IsInvalidArgumentError(err), "%v", err)
	})

	t.Run("should reject unsupported file extensions", func(t *testing.T) {
		file := writeFile(t, "features.toml", "[features]\na = true\n")

		_, err := Values(ctx, WithConfigFiles(file))
		assert.True(t, errorx.IsInvalidArgumentError(err), "%v", err)
	})

	t.Run("should fail on missing files", func(t *testing.T) {
		_, err := Values(ctx, WithConfigFiles(filepath.Join(t.TempDir(), "missing.json")))
		assert.Error(t, err)
	})

	t.Run("should log the loaded configuration", func(t *testing.T) {
		file := writeFile(t, "features.json", `{"features": {"a": true}}`)
		l, buf := loggerxtest.NewTestLoggerWithJSONBuffer(t)

		_, err := Values(ctx, WithConfigFiles(file, file), WithLogger(l))
		require.NoError(t, err)

		entries := loggerxtest.DecodeEntries(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "feature flag configuration loaded", entries[0]["msg"])
		assert.Equal(t, float64(1), entries[0]["count"])
		assert.Equal(t, []any{file}, entries[0]["files"])
	})
}
