package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/authgate/pkg/audit"
	"github.com/doodlesbykumbi/authgate/pkg/config"
	"github.com/doodlesbykumbi/authgate/pkg/envstore"
	"github.com/doodlesbykumbi/authgate/pkg/reconcile"
	"github.com/doodlesbykumbi/authgate/pkg/schema"
	"github.com/doodlesbykumbi/authgate/pkg/settings"
	"github.com/doodlesbykumbi/authgate/pkg/vartype"
)

// App runs the startup validation for one configuration.
type App struct {
	configPath string
	overrides  map[string]string
	registry   *schema.Registry
	newStore   func() envstore.Store
	log        logrus.FieldLogger
	auditor    *audit.Logger

	loadConfig func() (*config.AppConfig, error)
}

// Option configures an App.
type Option func(*App)

// WithOverride sets a configuration attribute with flag precedence.
func WithOverride(name, value string) Option {
	return func(a *App) {
		a.overrides[name] = value
	}
}

// WithRegistry replaces the default DB_* catalog.
func WithRegistry(registry *schema.Registry) Option {
	return func(a *App) {
		a.registry = registry
	}
}

// WithStoreFactory sets how the environment store is created for each check.
// The default is the process environment.
func WithStoreFactory(newStore func() envstore.Store) Option {
	return func(a *App) {
		a.newStore = newStore
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithAuditor records every validation outcome as an audit event.
func WithAuditor(auditor *audit.Logger) Option {
	return func(a *App) {
		a.auditor = auditor
	}
}

// New creates an App reading its configuration from configPath. An empty
// path uses the config package lookup rules.
func New(configPath string, opts ...Option) *App {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	a := &App{
		configPath: configPath,
		overrides:  make(map[string]string),
		registry:   schema.Default,
		newStore:   func() envstore.Store { return envstore.NewProcess() },
		log:        discard,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.loadConfig = sync.OnceValues(a.readConfig)
	return a
}

func (a *App) readConfig() (*config.AppConfig, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	for _, name := range slices.Sorted(maps.Keys(a.overrides)) {
		if err := cfg.Set(name, a.overrides[name], config.SourceFlag); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return cfg, nil
}

// Config returns the configuration, loading it on first use. The result is
// not validated.
func (a *App) Config() (*config.AppConfig, error) {
	return a.loadConfig()
}

// Registry returns the schema the environment is checked against.
func (a *App) Registry() *schema.Registry {
	return a.registry
}

// Check loads the configured environment file into a new store, reconciles
// it against the registry and decodes the database settings.
func (a *App) Check() (*settings.Database, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := a.newStore()
	r := reconcile.New(a.registry, store,
		reconcile.WithPolicy(cfg.UnknownVariables),
		reconcile.WithLogger(a.log),
	)
	err = r.LoadAndValidate(cfg.EnvFilePath, cfg.Prefix)
	a.record(cfg, err)
	if err != nil {
		return nil, err
	}

	return settings.Decode(store, cfg.Prefix)
}

// Run validates the environment and reports the settings the service would
// start with. The connection pool and HTTP server are not started here.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db, err := a.Check()
	if err != nil {
		return err
	}

	cfg, _ := a.Config()
	a.log.WithFields(logrus.Fields{
		"env":    cfg.Env,
		"prefix": cfg.Prefix,
	}).Info("Environment validated")
	a.log.WithFields(db.Fields()).Info("Database settings resolved")
	a.log.Info("Database connection pool not started")
	a.log.Info("HTTP server not started")

	return nil
}

func (a *App) record(cfg *config.AppConfig, err error) {
	if a.auditor == nil {
		return
	}

	event := audit.ValidationEvent{
		Prefix:  cfg.Prefix,
		EnvFile: cfg.EnvFilePath,
		Success: err == nil,
	}
	if err != nil {
		var fileErr *envstore.FileError
		var missing *reconcile.MissingVariablesError
		var unknown *reconcile.UnknownVariablesError
		var invalid *vartype.InvalidValueError
		switch {
		case errors.As(err, &fileErr):
			event.Reason = "environment file could not be loaded"
		case errors.As(err, &missing):
			event.Missing = missing.Names
		case errors.As(err, &unknown):
			event.Unknown = unknown.Names
		case errors.As(err, &invalid):
			event.Invalid = invalid.Name
			event.InvalidType = invalid.Type.Kind.String()
		default:
			event.Reason = "validation failed"
		}
	}
	a.auditor.Log(event)
}
