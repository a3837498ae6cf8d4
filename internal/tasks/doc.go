// Package tasks holds the task collection: the Item type, the seed data and
// the domain store the list and editor panes operate on.
//
// Single-field edits on an existing item are path-sets on /items/{i}/<field>,
// so only that row re-renders. Adding, removing and reordering change the
// shape of the collection and emit a coarse refresh instead.
//
// The selected task is a detached copy. Editing it through the SetDraft*
// methods never touches Items until the controller commits it with AddTask or
// ReplaceItem.
package tasks
