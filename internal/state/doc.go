// Package state provides the observable document store the rest of taskpane is
// built on.
//
// # Overview
//
// A Store[T] owns exactly one typed document. The view layer never sees the
// live value: State() returns a deep copy, so anything a reader does to its
// snapshot stays local to that reader. All writes go through the store and
// every write produces a Change that is delivered synchronously to watchers
// and to the Registry.
//
// # Mutation Strategies
//
// Three write paths exist, and they differ in what they invalidate:
//
//	SetAt("/items/2/title", "x")   → Change{Kind: ChangePath, Path: "/items/2/title"}
//	MergeSet(Patch{"layout": ...}) → Change{Kind: ChangeMerge,  Path: "/"}
//	Mutate(func(doc *T) bool)      → Change{Kind: ChangeRefresh, Path: "/"}
//
// SetAt is fine-grained: only bindings on the addressed path, its ancestors or
// its descendants re-evaluate. MergeSet and Mutate are coarse: every binding
// on the document re-evaluates. Use SetAt for single-field edits on an element
// that has already been located, and Mutate for shape changes (append, remove,
// reorder) that cannot be written as one path assignment.
//
// # Paths
//
// Paths are slash-delimited. Segments are JSON field names of structs, decimal
// slice indices, or string map keys:
//
//	/layout
//	/items/0/priority
//	/selectedTask/title
//
// Every segment must already resolve. A missing field, an index out of range
// or a nil pointer on the way down yields a *PathError wrapping
// ErrPathNotFound; nothing is created implicitly. Values that cannot be stored
// at the leaf yield ErrTypeMismatch.
//
// # Merge Semantics
//
// MergeSet takes a Patch keyed by JSON field names. Present keys overwrite,
// nested patches merge into structs and maps, slices are replaced wholesale.
// The merge is applied to a copy and committed only when it succeeds.
//
// # Registry
//
// The Registry replaces ambient global lookup: it is built once at startup and
// passed to every store constructor. Registration is last-write-wins. The UI
// subscribes to the registry to learn which document changed and how.
//
// # Concurrency
//
// The application mutates stores from the Bubble Tea update loop only, but
// commands run on their own goroutines, so the document is guarded by a
// sync.RWMutex. The lock is never held while watchers run, which lets a
// watcher read the store it is observing.
package state
