package state

// ChangeKind classifies how a document was mutated.
type ChangeKind int

const (
	// ChangePath is a fine-grained change to a single addressed field.
	ChangePath ChangeKind = iota
	// ChangeMerge is a whole-document merge; every binding re-evaluates.
	ChangeMerge
	// ChangeRefresh follows a direct shape change (insert, remove, reorder).
	ChangeRefresh
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePath:
		return "path"
	case ChangeMerge:
		return "merge"
	case ChangeRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Coarse reports whether the change invalidates the whole document.
func (k ChangeKind) Coarse() bool {
	return k != ChangePath
}

// Change is delivered to watchers and registry subscribers after a mutation.
type Change struct {
	Key  string
	Kind ChangeKind
	Path string
}

// Affects reports whether a binding on path must re-evaluate for this change.
// Coarse changes affect every path; path changes affect the addressed field,
// its ancestors and its descendants, never its siblings.
func (c Change) Affects(path string) bool {
	if c.Kind.Coarse() {
		return true
	}
	return overlaps(c.Path, path)
}

// Segments returns the change path split into its segments.
func (c Change) Segments() []string {
	return segmentsOf(c.Path)
}
