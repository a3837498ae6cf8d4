package tasks

import "strconv"

// Document is the task collection owned by the store.
type Document struct {
	Items        []Item `json:"items"`
	SelectedTask *Item  `json:"selectedTask"`
}

// Document paths the view binds to.
const (
	ItemsPath    = "/items"
	SelectedPath = "/selectedTask"
)

// ItemPath addresses the item at index i.
func ItemPath(i int) string {
	return ItemsPath + "/" + strconv.Itoa(i)
}

func itemFieldPath(i int, field string) string {
	return ItemPath(i) + "/" + field
}

func selectedFieldPath(field string) string {
	return SelectedPath + "/" + field
}

// Seed returns the fixed startup collection.
func Seed() Document {
	return Document{
		Items: []Item{
			{ID: "1", Title: "Task 1", Description: "Description 1", Status: StatusOpen, Priority: 1},
			{ID: "2", Title: "Task 2", Description: "Description 2", Status: StatusInProgress, Priority: 2},
			{ID: "3", Title: "Task 3", Description: "Description 3", Status: StatusOpen, Priority: 3},
		},
	}
}

// indexOf scans items for id. It returns -1 when no item matches.
func indexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
