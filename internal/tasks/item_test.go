package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	it := NewItem()
	assert.Equal(t, Item{Status: StatusOpen, Priority: DefaultPriority}, it)
	assert.True(t, it.IsDraft())

	it.ID = "  "
	assert.True(t, it.IsDraft())
	it.ID = "x"
	assert.False(t, it.IsDraft())
}

func TestStatusCycle(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusOpen.Next())
	assert.Equal(t, StatusDone, StatusInProgress.Next())
	assert.Equal(t, StatusOpen, StatusDone.Next())
	assert.Equal(t, StatusDone, StatusOpen.Prev())
	assert.Equal(t, StatusOpen, Status("bogus").Next())

	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("closed").Valid())
}

func TestStatusLabelKey(t *testing.T) {
	cases := map[Status]string{
		StatusOpen:       "TASK_STATUS_OPEN",
		StatusInProgress: "TASK_STATUS_IN_PROGRESS",
		StatusDone:       "TASK_STATUS_DONE",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.LabelKey(), string(status))
	}
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"low", 1},
		{" Medium ", 2},
		{"HIGH", 3},
		{"0", 0},
		{"12", 12},
	}
	for _, tc := range cases {
		got, err := ParsePriority(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "-1", "urgent", "1.5"} {
		_, err := ParsePriority(bad)
		assert.Error(t, err, bad)
	}
}
