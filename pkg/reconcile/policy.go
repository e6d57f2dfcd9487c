package reconcile

//go:generate go run github.com/dmarkham/enumer -type UnknownPolicy -trimprefix Unknown -transform lower -text -output policy.gen.go

// UnknownPolicy decides how variables under the prefix that the schema does
// not declare are treated.
type UnknownPolicy int

const (
	// UnknownWarn logs the variables and carries on.
	UnknownWarn UnknownPolicy = iota
	// UnknownStrict fails the validation.
	UnknownStrict
	// UnknownIgnore skips the check.
	UnknownIgnore
)
