package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/authgate/pkg/reconcile"
)

const (
	DefaultConfigPath  = "./config"
	DefaultEnv         = "development"
	DefaultEnvFilePath = "./.env"
	DefaultLogLevel    = "info"

	// ConfigPathEnv overrides DefaultConfigPath.
	ConfigPathEnv = "AUTHGATE_CONFIG_PATH"
)

// Attribute sources
const (
	SourceDefault     = "default"
	SourceFile        = "file"
	SourceEnvironment = "environment"
	SourceFlag        = "flag"
)

// Extensions lists the supported configuration file extensions in lookup order.
var Extensions = []string{".toml", ".yaml", ".yml", ".json"}

// LogLevels is the list of accepted log levels
var LogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// envOverrides maps attribute names to the variables overriding them
var envOverrides = []struct {
	name string
	env  string
}{
	{"env", "AUTHGATE_ENV"},
	{"prefix", "AUTHGATE_VARIABLE_PREFIX"},
	{"env_file_path", "AUTHGATE_ENV_FILE_PATH"},
	{"unknown_variables", "AUTHGATE_UNKNOWN_VARIABLES"},
	{"log_level", "AUTHGATE_LOG_LEVEL"},
}

// AppConfig holds the application configuration
type AppConfig struct {
	// Env is the deployment environment name (development, production, ...)
	Env string `validate:"required"`

	// Prefix namespaces every required environment variable
	Prefix string `validate:"required"`

	// EnvFilePath is the dotenv file loaded before validation
	EnvFilePath string `validate:"required"`

	// UnknownVariables decides what happens to undeclared prefixed variables
	UnknownVariables reconcile.UnknownPolicy

	// LogLevel is a logrus level name
	LogLevel string `validate:"required"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the file the configuration was read from, if any
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// fileSettings is the on-disk shape. Pointers tell unset keys apart from
// zero values.
type fileSettings struct {
	Env              *string                  `yaml:"env" toml:"env" json:"env"`
	Prefix           *string                  `yaml:"prefix" toml:"prefix" json:"prefix"`
	EnvFilePath      *string                  `yaml:"env_file_path" toml:"env_file_path" json:"env_file_path"`
	UnknownVariables *reconcile.UnknownPolicy `yaml:"unknown_variables" toml:"unknown_variables" json:"unknown_variables"`
	LogLevel         *string                  `yaml:"log_level" toml:"log_level" json:"log_level"`
}

type fileConfig struct {
	App fileSettings `yaml:"app" toml:"app" json:"app"`
}

// newDefault returns a config with default values
func newDefault() *AppConfig {
	c := &AppConfig{
		Env:              DefaultEnv,
		EnvFilePath:      DefaultEnvFilePath,
		UnknownVariables: reconcile.UnknownWarn,
		LogLevel:         DefaultLogLevel,
		sources:          make(map[string]string),
	}
	for _, name := range attributeNames() {
		c.sources[name] = SourceDefault
	}
	return c
}

func attributeNames() []string {
	return []string{"env", "prefix", "env_file_path", "unknown_variables", "log_level"}
}

// Load loads configuration from the file at path and from environment
// variables. An empty path means AUTHGATE_CONFIG_PATH, then DefaultConfigPath.
// Only an explicitly requested file has to exist.
func Load(path string) (*AppConfig, error) {
	config := newDefault()

	explicit := true
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path == "" {
		path = DefaultConfigPath
		explicit = false
	}

	resolved, err := resolvePath(path)
	switch {
	case err == nil:
		if err := config.applyFile(resolved); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults and environment only
	default:
		return nil, err
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolvePath finds the configuration file for path, trying each supported
// extension when path has none.
func resolvePath(path string) (string, error) {
	if slices.Contains(Extensions, strings.ToLower(filepath.Ext(path))) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("configuration file %s: %w", path, err)
		}
		return path, nil
	}

	for _, ext := range Extensions {
		candidate := path + ext
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no configuration file found for %s (tried %s): %w",
		path, strings.Join(Extensions, ", "), fs.ErrNotExist)
}

func (c *AppConfig) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.configFilePath = path
	c.applyFileConfig(&file.App)
	return nil
}

func (c *AppConfig) applyFileConfig(file *fileSettings) {
	if file.Env != nil {
		c.Env = *file.Env
		c.sources["env"] = SourceFile
	}
	if file.Prefix != nil {
		c.Prefix = *file.Prefix
		c.sources["prefix"] = SourceFile
	}
	if file.EnvFilePath != nil {
		c.EnvFilePath = *file.EnvFilePath
		c.sources["env_file_path"] = SourceFile
	}
	if file.UnknownVariables != nil {
		c.UnknownVariables = *file.UnknownVariables
		c.sources["unknown_variables"] = SourceFile
	}
	if file.LogLevel != nil {
		c.LogLevel = *file.LogLevel
		c.sources["log_level"] = SourceFile
	}
}

func (c *AppConfig) applyEnvConfig() error {
	for _, o := range envOverrides {
		val, ok := os.LookupEnv(o.env)
		if !ok || val == "" {
			continue
		}
		if err := c.Set(o.name, val, SourceEnvironment); err != nil {
			return fmt.Errorf("invalid %s: %w", o.env, err)
		}
	}
	return nil
}

// Set assigns the attribute name from its string form and records source.
func (c *AppConfig) Set(name, value, source string) error {
	switch name {
	case "env":
		c.Env = value
	case "prefix":
		c.Prefix = value
	case "env_file_path":
		c.EnvFilePath = value
	case "unknown_variables":
		policy, err := reconcile.UnknownPolicyString(value)
		if err != nil {
			return err
		}
		c.UnknownVariables = policy
	case "log_level":
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown configuration attribute %q", name)
	}
	c.sources[name] = source
	return nil
}

// ConfigFilePath returns the path of the file the configuration was read
// from, empty when no file was found.
func (c *AppConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *AppConfig) Source(name string) string {
	if c.sources == nil {
		return SourceDefault
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// Validate validates the configuration
func (c *AppConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("invalid configuration: %s is required", attributeName(fieldErrs[0].Field()))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}
	if !c.UnknownVariables.IsAUnknownPolicy() {
		return fmt.Errorf("invalid unknown_variables value: %s", c.UnknownVariables)
	}
	return nil
}

func attributeName(field string) string {
	switch field {
	case "EnvFilePath":
		return "env_file_path"
	case "LogLevel":
		return "log_level"
	default:
		return strings.ToLower(field)
	}
}

// Attributes returns all configuration attributes with their values and sources
func (c *AppConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "env", Value: c.Env, Source: c.Source("env")},
		{Name: "prefix", Value: c.Prefix, Source: c.Source("prefix")},
		{Name: "env_file_path", Value: c.EnvFilePath, Source: c.Source("env_file_path")},
		{Name: "unknown_variables", Value: c.UnknownVariables.String(), Source: c.Source("unknown_variables")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
	}
}

// FormatText returns a text representation of the configuration
func (c *AppConfig) FormatText() string {
	configFile := c.configFilePath
	if configFile == "" {
		configFile = "(none)"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", configFile))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *AppConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
