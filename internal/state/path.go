package state

import "strings"

// splitPath parses a slash-delimited path. The root ("" or "/") yields no
// segments. Empty inner segments such as "/items//title" are rejected.
func splitPath(path string) ([]string, error) {
	trimmed := strings.TrimSpace(path)
	trimmed = strings.TrimPrefix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return nil, nil
	}
	segs := strings.Split(trimmed, "/")
	for _, seg := range segs {
		if seg == "" {
			return nil, notFound(path, "")
		}
	}
	return segs, nil
}

// segmentsOf is splitPath without validation, for matching only.
func segmentsOf(path string) []string {
	segs, err := splitPath(path)
	if err != nil {
		return strings.Split(strings.Trim(strings.TrimSpace(path), "/"), "/")
	}
	return segs
}

func joinPath(segs []string) string {
	return "/" + strings.Join(segs, "/")
}

func normalizePath(path string) string {
	return joinPath(segmentsOf(path))
}

// overlaps reports whether one path is a segment prefix of the other.
func overlaps(a, b string) bool {
	as, bs := segmentsOf(a), segmentsOf(b)
	n := min(len(as), len(bs))
	for i := 0; i < n; i++ {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
