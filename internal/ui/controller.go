package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/five82/taskpane/internal/appstate"
	"github.com/five82/taskpane/internal/tasks"
)

var (
	errNothingSelected  = errors.New("no task is being edited")
	errNegativePriority = errors.New("priority cannot go below zero")
)

// controller holds the list and editor policies. It translates user intent
// into store operations; the stores themselves trust their callers.
type controller struct {
	tasks  *tasks.Store
	view   *appstate.Store
	newID  func() string
	logger *slog.Logger
}

func newController(ts *tasks.Store, vs *appstate.Store, newID func() string, logger *slog.Logger) controller {
	if newID == nil {
		newID = uuid.NewString
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return controller{tasks: ts, view: vs, newID: newID, logger: logger}
}

// newTask opens the editor on an empty draft. The draft is not part of the
// list until saved.
func (c controller) newTask() error {
	draft := tasks.NewItem()
	if err := c.tasks.SetSelectedTask(&draft); err != nil {
		return fmt.Errorf("select draft: %w", err)
	}
	return c.view.SetLayout(appstate.TwoColumnsMidExpanded)
}

// editTask opens the editor on a detached copy of the task with id.
func (c controller) editTask(id string) error {
	item, ok := c.tasks.Find(id)
	if !ok {
		return nil
	}
	if err := c.tasks.SetSelectedTask(&item); err != nil {
		return fmt.Errorf("select task %s: %w", id, err)
	}
	return c.view.SetLayout(appstate.TwoColumnsMidExpanded)
}

// save commits the selected task. A draft gets a fresh id and is appended;
// an existing task is replaced in one notification. The editor then closes.
func (c controller) save() (tasks.Item, error) {
	sel := c.tasks.Selected()
	if sel == nil {
		return tasks.Item{}, errNothingSelected
	}
	item := *sel

	if item.IsDraft() {
		item.ID = c.newID()
		c.tasks.AddTask(item)
		c.logger.Info("task created", "id", item.ID)
	} else {
		if err := c.tasks.ReplaceItem(item.ID, item); err != nil {
			return tasks.Item{}, fmt.Errorf("save task %s: %w", item.ID, err)
		}
		c.logger.Info("task saved", "id", item.ID)
	}

	if err := c.tasks.SetSelectedTask(nil); err != nil {
		return item, fmt.Errorf("clear selection: %w", err)
	}
	return item, c.view.SetLayout(appstate.OneColumn)
}

// closeEditor returns to the single-column layout. The selection is kept.
func (c controller) closeEditor() error {
	return c.view.SetLayout(appstate.OneColumn)
}

// deleteTask removes the task with id and drops the selection if it pointed
// at the removed task.
func (c controller) deleteTask(id string) error {
	c.tasks.RemoveTask(id)
	if sel := c.tasks.Selected(); sel != nil && sel.ID == id {
		if err := c.tasks.SetSelectedTask(nil); err != nil {
			return fmt.Errorf("clear selection: %w", err)
		}
	}
	c.logger.Info("task deleted", "id", id)
	return nil
}

func nextPriority(current, delta int) (int, error) {
	next := current + delta
	if next < 0 {
		return current, errNegativePriority
	}
	return next, nil
}

// changePriority adjusts a listed task's priority, refusing to go below zero.
func (c controller) changePriority(id string, delta int) error {
	item, ok := c.tasks.Find(id)
	if !ok {
		return nil
	}
	p, err := nextPriority(item.Priority, delta)
	if err != nil {
		return err
	}
	return c.tasks.SetTaskPriority(id, p)
}

// changeDraftPriority adjusts the priority of the task being edited.
func (c controller) changeDraftPriority(delta int) error {
	sel := c.tasks.Selected()
	if sel == nil {
		return errNothingSelected
	}
	p, err := nextPriority(sel.Priority, delta)
	if err != nil {
		return err
	}
	return c.tasks.SetDraftPriority(p)
}

// setDraftPriority stores an entered priority on the draft.
func (c controller) setDraftPriority(p int) error {
	if c.tasks.Selected() == nil {
		return errNothingSelected
	}
	if p < 0 {
		return errNegativePriority
	}
	return c.tasks.SetDraftPriority(p)
}

// toggleFullscreen switches the editor between full screen and the
// mid-expanded split.
func (c controller) toggleFullscreen() error {
	if c.view.Layout() == appstate.MidColumnFullScreen {
		return c.view.SetLayout(appstate.TwoColumnsMidExpanded)
	}
	return c.view.SetLayout(appstate.MidColumnFullScreen)
}

// swapExpansion gives the wider share to the other pane.
func (c controller) swapExpansion() error {
	if c.view.Layout() == appstate.TwoColumnsMidExpanded {
		return c.view.SetLayout(appstate.TwoColumnsBeginExpanded)
	}
	return c.view.SetLayout(appstate.TwoColumnsMidExpanded)
}
