package config

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/authgate/pkg/reconcile"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnv, "")
	for _, o := range envOverrides {
		t.Setenv(o.env, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultEnv, c.Env)
	assert.Equal(t, DefaultEnvFilePath, c.EnvFilePath)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
	assert.Equal(t, reconcile.UnknownWarn, c.UnknownVariables)
	assert.Empty(t, c.Prefix)
	assert.Empty(t, c.ConfigFilePath())
	assert.Equal(t, SourceDefault, c.Source("prefix"))

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefix is required")
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `[app]
env = "production"
prefix = "APP_"
env_file_path = "/etc/app/.env"
unknown_variables = "strict"
log_level = "debug"
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `app:
  env: production
  prefix: APP_
  env_file_path: /etc/app/.env
  unknown_variables: strict
  log_level: debug
`,
		},
		{
			name: "yml",
			file: "config.yml",
			content: `app:
  env: production
  prefix: APP_
  env_file_path: /etc/app/.env
  unknown_variables: strict
  log_level: debug
`,
		},
		{
			name: "json",
			file: "config.json",
			content: `{"app": {"env": "production", "prefix": "APP_", "env_file_path": "/etc/app/.env",
  "unknown_variables": "strict", "log_level": "debug"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			c, err := Load(path)
			require.NoError(t, err)
			require.NoError(t, c.Validate())

			assert.Equal(t, "production", c.Env)
			assert.Equal(t, "APP_", c.Prefix)
			assert.Equal(t, "/etc/app/.env", c.EnvFilePath)
			assert.Equal(t, reconcile.UnknownStrict, c.UnknownVariables)
			assert.Equal(t, "debug", c.LogLevel)
			assert.Equal(t, path, c.ConfigFilePath())
			for _, attr := range c.Attributes() {
				assert.Equal(t, SourceFile, attr.Source, attr.Name)
			}
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[app]\nprefix = \"SVC_\"\n")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SVC_", c.Prefix)
	assert.Equal(t, SourceFile, c.Source("prefix"))
	assert.Equal(t, DefaultEnvFilePath, c.EnvFilePath)
	assert.Equal(t, SourceDefault, c.Source("env_file_path"))
}

func TestLoad_ExtensionLookupOrder(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "app:\n  prefix: YAML_\n")
	writeFile(t, dir, "config.json", `{"app": {"prefix": "JSON_"}}`)

	c, err := Load(filepath.Join(dir, "config"))
	require.NoError(t, err)
	assert.Equal(t, "YAML_", c.Prefix)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), c.ConfigFilePath())

	writeFile(t, dir, "config.toml", "[app]\nprefix = \"TOML_\"\n")
	c, err = Load(filepath.Join(dir, "config"))
	require.NoError(t, err)
	assert.Equal(t, "TOML_", c.Prefix)
}

func TestLoad_DefaultPathInWorkingDirectory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "[app]\nprefix = \"CWD_\"\n")
	t.Chdir(dir)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "CWD_", c.Prefix)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_ConfigPathFromEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "settings.yaml", "app:\n  prefix: ENV_PATH_\n")
	t.Setenv(ConfigPathEnv, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ENV_PATH_", c.Prefix)

	t.Setenv(ConfigPathEnv, path+".gone")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[app\nprefix = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_InvalidPolicyInFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[app]\nunknown_variables = \"loud\"\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", `[app]
env = "staging"
prefix = "APP_"
log_level = "info"
`)
	t.Setenv("AUTHGATE_VARIABLE_PREFIX", "OVERRIDE_")
	t.Setenv("AUTHGATE_ENV_FILE_PATH", "/run/secrets/.env")
	t.Setenv("AUTHGATE_UNKNOWN_VARIABLES", "ignore")
	t.Setenv("AUTHGATE_LOG_LEVEL", "warn")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", c.Env)
	assert.Equal(t, SourceFile, c.Source("env"))
	assert.Equal(t, "OVERRIDE_", c.Prefix)
	assert.Equal(t, SourceEnvironment, c.Source("prefix"))
	assert.Equal(t, "/run/secrets/.env", c.EnvFilePath)
	assert.Equal(t, reconcile.UnknownIgnore, c.UnknownVariables)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, SourceEnvironment, c.Source("log_level"))
}

func TestLoad_InvalidEnvironmentPolicy(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("AUTHGATE_UNKNOWN_VARIABLES", "sometimes")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTHGATE_UNKNOWN_VARIABLES")
}

func TestSet(t *testing.T) {
	c := newDefault()

	require.NoError(t, c.Set("prefix", "FLAG_", SourceFlag))
	assert.Equal(t, "FLAG_", c.Prefix)
	assert.Equal(t, SourceFlag, c.Source("prefix"))

	require.NoError(t, c.Set("unknown_variables", "strict", SourceFlag))
	assert.Equal(t, reconcile.UnknownStrict, c.UnknownVariables)

	assert.Error(t, c.Set("unknown_variables", "never", SourceFlag))
	assert.Error(t, c.Set("nonsense", "x", SourceFlag))
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		c := newDefault()
		c.Prefix = "APP_"
		return c
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.EnvFilePath = ""
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env_file_path is required")

	c = valid()
	c.LogLevel = "chatty"
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level value")

	c = valid()
	c.UnknownVariables = reconcile.UnknownPolicy(42)
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid unknown_variables value")
}

func TestSource_ZeroValue(t *testing.T) {
	var c AppConfig
	assert.Equal(t, SourceDefault, c.Source("prefix"))
}

func TestFormatText(t *testing.T) {
	c := newDefault()
	c.Prefix = "APP_"

	out := c.FormatText()
	assert.Contains(t, out, "Config file: (none)")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "APP_")
	assert.Contains(t, out, "unknown_variables")
	assert.Contains(t, out, "warn")

	c.Prefix = ""
	assert.Contains(t, c.FormatText(), "(not set)")
}

func TestFormatJSON(t *testing.T) {
	c := newDefault()
	c.Prefix = "APP_"

	out, err := c.FormatJSON()
	require.NoError(t, err)

	var decoded struct {
		ConfigFile string      `json:"config_file"`
		Attributes []Attribute `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Empty(t, decoded.ConfigFile)
	require.Len(t, decoded.Attributes, 5)
	assert.Equal(t, Attribute{Name: "prefix", Value: "APP_", Source: SourceDefault}, decoded.Attributes[1])
}
