package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A maxLines
// of zero or less returns every line. A missing file reads as empty.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// LineLevel extracts the level of a slog text record ("level=WARN"). Lines
// without a recognizable level report ok == false.
func LineLevel(line string) (level slog.Level, ok bool) {
	for _, field := range strings.Fields(line) {
		value, found := strings.CutPrefix(field, "level=")
		if !found {
			continue
		}
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return slog.LevelInfo, false
		}
		return level, true
	}
	return slog.LevelInfo, false
}

// Filter keeps lines at or above minLevel. Lines without a level follow the record
// before them, so multi-line values stay with their record.
func Filter(lines []string, minLevel slog.Level) []string {
	out := make([]string, 0, len(lines))
	keep := true
	for _, line := range lines {
		if level, ok := LineLevel(line); ok {
			keep = level >= minLevel
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}
