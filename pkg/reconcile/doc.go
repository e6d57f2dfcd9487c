// Package reconcile is the startup gate that compares the declared schema
// with the environment actually loaded.
//
// LoadAndValidate runs these steps and stops at the first failing one:
//
//  1. load the dotenv file into the store (*envstore.FileError)
//  2. snapshot every variable under the prefix
//  3. report variables under the prefix the schema does not declare,
//     according to the UnknownPolicy (*UnknownVariablesError in strict mode)
//  4. report every declared variable absent from the snapshot
//     (*MissingVariablesError, listing all of them)
//  5. verify each declared variable against its type, in declaration order
//     (*vartype.InvalidValueError)
//
// Nothing is retried. The caller decides whether to abort the process.
//
// # Usage
//
//	r := reconcile.New(schema.Default, envstore.NewProcess(),
//	    reconcile.WithPolicy(reconcile.UnknownStrict),
//	    reconcile.WithLogger(log),
//	)
//	if err := r.LoadAndValidate(".env", "APP_"); err != nil {
//	    log.WithError(err).Fatal("Environment is not valid")
//	}
//
// A Reconciler writes to its store. Do not run several of them against the
// process environment at the same time.
package reconcile
