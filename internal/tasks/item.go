package tasks

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following status, wrapping around. Unknown values restart at open.
func (s Status) Next() Status {
	for i, v := range Statuses {
		if s == v {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusOpen
}

// Prev returns the preceding status, wrapping around.
func (s Status) Prev() Status {
	for i, v := range Statuses {
		if s == v {
			return Statuses[(i+len(Statuses)-1)%len(Statuses)]
		}
	}
	return StatusOpen
}

// LabelKey is the resource-text identifier for the status label.
func (s Status) LabelKey() string {
	switch s {
	case StatusDone:
		return "TASK_STATUS_DONE"
	case StatusInProgress:
		return "TASK_STATUS_IN_PROGRESS"
	default:
		return "TASK_STATUS_OPEN"
	}
}

// DefaultPriority is the priority given to new drafts.
const DefaultPriority = 1

// Item is a single task. ID is the identity; every other field is mutable.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Priority    int    `json:"priority"`
}

// NewItem returns an empty draft. An empty ID marks it as not yet saved.
func NewItem() Item {
	return Item{
		Status:   StatusOpen,
		Priority: DefaultPriority,
	}
}

// IsDraft reports whether the item has never been saved.
func (it Item) IsDraft() bool {
	return strings.TrimSpace(it.ID) == ""
}

// PriorityNames are the named priorities in ascending order; a name parses to
// its position plus one.
var PriorityNames = []string{"low", "medium", "high"}

// ParsePriority accepts a non-negative integer or one of PriorityNames.
func ParsePriority(raw string) (int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, fmt.Errorf("parse priority: empty value")
	}
	if i := slices.Index(PriorityNames, raw); i >= 0 {
		return i + 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse priority %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parse priority %q: must not be negative", raw)
	}
	return n, nil
}
