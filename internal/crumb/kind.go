package crumb

// Kind classifies the mutation a crumb records.
type Kind int

const (
	// KindNew records an insertion.
	KindNew Kind = iota + 1
	// KindUpdate records a group change.
	KindUpdate
	// KindDelete records a removal.
	KindDelete
)

// Filename tokens for each kind.
const (
	tokenNew    = "new"
	tokenUpdate = "update"
	tokenDelete = "del"
)

// String returns the filename token for the kind.
func (k Kind) String() string {
	switch k {
	case KindNew:
		return tokenNew
	case KindUpdate:
		return tokenUpdate
	case KindDelete:
		return tokenDelete
	default:
		return "unknown"
	}
}

// valid reports whether k is one of the three crumb kinds.
func (k Kind) valid() bool {
	switch k {
	case KindNew, KindUpdate, KindDelete:
		return true
	}
	return false
}
