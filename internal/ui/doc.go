// Package ui provides the terminal user interface for taskpane.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program over two stores: the task collection
// (internal/tasks) and the application view (internal/appstate). The stores
// own all data. The Model never keeps its own copy of a task beyond what
// bindings caches for rendering.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - bindings.go: registry subscriber that tracks which cached rows, editor
//     inputs and layout a change invalidated
//   - controller.go: list and editor policies (save, delete, priority guard)
//     expressed as store operations
//   - list.go, editor.go: the master and detail panes
//   - header.go, help.go, logs.go: status line, command bar and overlays
//   - theme.go, style_helpers.go, box.go: colors and background-safe rendering
//
// # Data Flow
//
//  1. A key press reaches Update and is routed to the editor, an overlay or
//     the list.
//  2. The handler calls the controller or a store setter. Stores notify the
//     registry synchronously.
//  3. bindings records the invalidated paths. At the end of Update, sync
//     re-reads only those and reloads editor inputs when the selection itself
//     was replaced.
//
// Field edits in the editor write to the draft (/selectedTask/...) and leave
// the listed task untouched until ctrl+s saves it.
//
// # Resource Text
//
// Status labels and UI strings come from internal/i18n. The bundle loads
// through a command at Init. Until it arrives, status labels render as a
// placeholder and other strings render as their message key.
//
// # Keyboard Shortcuts
//
// See keys.go for the full key map; press ? in the app for the help overlay.
package ui
