package reconcile

import (
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/authgate/pkg/envstore"
	"github.com/doodlesbykumbi/authgate/pkg/schema"
)

// Reconciler validates a store against a schema registry.
type Reconciler struct {
	registry *schema.Registry
	store    envstore.Store
	policy   UnknownPolicy
	log      logrus.FieldLogger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithPolicy sets how undeclared variables under the prefix are treated.
// The default is UnknownWarn.
func WithPolicy(policy UnknownPolicy) Option {
	return func(r *Reconciler) {
		r.policy = policy
	}
}

// WithLogger sets the logger used for warnings. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Reconciler) {
		r.log = log
	}
}

// New creates a Reconciler for registry reading from and loading into store.
func New(registry *schema.Registry, store envstore.Store, opts ...Option) *Reconciler {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Reconciler{
		registry: registry,
		store:    store,
		policy:   UnknownWarn,
		log:      discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the unknown variable policy in effect.
func (r *Reconciler) Policy() UnknownPolicy {
	return r.policy
}

// LoadAndValidate loads the dotenv file at filePath into the store and then
// validates the variables under prefix. A load failure is returned before
// any variable is checked.
func (r *Reconciler) LoadAndValidate(filePath, prefix string) error {
	if err := r.store.LoadFile(filePath); err != nil {
		return err
	}
	r.log.WithField("path", filePath).Debug("Loaded environment file")

	return r.Validate(prefix)
}

// Validate checks the current content of the store without loading a file.
func (r *Reconciler) Validate(prefix string) error {
	env := environment(r.store.Snapshot(prefix))
	required := r.registry.Names(prefix)

	if r.policy != UnknownIgnore {
		if unknown := unknownNames(env, required); len(unknown) > 0 {
			if r.policy == UnknownStrict {
				return &UnknownVariablesError{Prefix: prefix, Names: unknown}
			}
			r.log.WithFields(logrus.Fields{
				"prefix":    prefix,
				"variables": unknown,
			}).Warn("Environment variables are not declared in the schema")
		}
	}

	if missing := missingNames(env, required); len(missing) > 0 {
		return &MissingVariablesError{Names: missing}
	}

	if err := r.registry.VerifyAll(env, prefix); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"prefix":    prefix,
		"variables": len(required),
	}).Debug("Environment validated")
	return nil
}

// environment is a snapshot usable as a schema.Getter, so the type check
// sees exactly what the presence checks saw.
type environment map[string]string

func (e environment) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

func missingNames(env environment, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := env[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func unknownNames(env environment, required []string) []string {
	var unknown []string
	for name := range env {
		if !slices.Contains(required, name) {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	return unknown
}
