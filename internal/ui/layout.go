package ui

import "github.com/five82/taskpane/internal/appstate"

// Pane split percentages for the two-column layouts (share of the list pane).
const (
	listShareMidExpanded   = 33
	listShareBeginExpanded = 67
)

// Log overlay limits.
const (
	// LogTailLines is how many lines the log overlay reads from the log file.
	LogTailLines = 200
)

// Minimum pane widths below which a pane is not drawn next to another.
const (
	minListWidth   = 24
	minEditorWidth = 30
)

// paneWidths splits total between the list and the editor for layout. The
// editor only takes space when open.
func paneWidths(layout appstate.Layout, total int, editorOpen bool) (list, editor int) {
	if !editorOpen || !layout.ShowsDetail() {
		return total, 0
	}
	if layout.Columns() == 1 {
		return 0, total
	}
	share := listShareMidExpanded
	if layout == appstate.TwoColumnsBeginExpanded {
		share = listShareBeginExpanded
	}
	list = total * share / 100
	if list < minListWidth || total-list < minEditorWidth {
		return 0, total
	}
	return list, total - list
}
