package vartype

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform snake -output kind.gen.go

// Kind is the tag of a variable Type.
type Kind int

const (
	KindText Kind = iota
	KindUnsignedShort
	KindEnumerated
	KindFilePath
)
