package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleGrouping() Grouping {
	return Grouping{
		Todo: []Task{
			{ID: "t-1", Title: "Fix bug", Description: "urgent", Status: StatusTodo},
			{ID: "t-2", Title: "Write docs", Description: "", Status: StatusTodo},
		},
		InProgress: []Task{
			{ID: "t-3", Title: "Refactor login", Description: "cleanup", Status: StatusInProgress},
		},
		Done: []Task{
			{ID: "t-4", Title: "Deploy", Description: "urgently needed", Status: StatusDone},
		},
	}
}

func TestFilterEmptyQueryIsNeutral(t *testing.T) {
	grouping := sampleGrouping()

	assert.Equal(t, grouping, Filter(grouping, ""))
	assert.Equal(t, grouping, Filter(grouping, "   "))
	assert.Equal(t, grouping, Filter(grouping, "\t\n"))
}

func TestFilterCaseInsensitiveDescriptionMatch(t *testing.T) {
	filtered := Filter(sampleGrouping(), "URGENT")

	// "Fix bug" matches via its description, mixed case notwithstanding.
	assert.Len(t, filtered.Todo, 1)
	assert.Equal(t, "t-1", filtered.Todo[0].ID)

	assert.Empty(t, filtered.InProgress)
	assert.Len(t, filtered.Done, 1)
}

func TestFilterTitleMatchAndOrderPreserved(t *testing.T) {
	grouping := Grouping{
		Todo: []Task{
			{ID: "t-1", Title: "alpha task"},
			{ID: "t-2", Title: "beta"},
			{ID: "t-3", Title: "another task"},
		},
	}

	filtered := Filter(grouping, "task")
	assert.Equal(t, []Task{grouping.Todo[0], grouping.Todo[2]}, filtered.Todo)
}

func TestFilterNoMatchOnOtherFields(t *testing.T) {
	grouping := Grouping{
		Todo: []Task{{ID: "t-1", Title: "Fix bug", Category: "Technical Task"}},
	}

	assert.Empty(t, Filter(grouping, "technical").Todo)
}

func TestFilterTrimsQuery(t *testing.T) {
	filtered := Filter(sampleGrouping(), "  docs  ")
	assert.Len(t, filtered.Todo, 1)
	assert.Equal(t, "t-2", filtered.Todo[0].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	grouping := sampleGrouping()
	before := len(grouping.Todo)

	_ = Filter(grouping, "urgent")
	assert.Len(t, grouping.Todo, before)
	assert.Equal(t, "Fix bug", grouping.Todo[0].Title)
}
