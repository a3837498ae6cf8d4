// Package logtail reads the end of taskpane's log file for the in-app log
// overlay.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded by the
// tail size rather than the file size and the file is scanned once. Lines come
// back oldest first.
//
// Records are slog text lines:
//
//	time=2026-10-19T09:12:44.120+02:00 level=DEBUG msg="store changed" key=task kind=path path=/items/1/title
//
// LineLevel and Filter read the level= field to hide records below a chosen
// level. Missing files read as empty; other I/O errors are returned wrapped.
package logtail
