package board

import "strings"

// Filter returns the grouping reduced to tasks whose title or description
// contains the query, case-insensitively. An empty or whitespace-only query
// returns the grouping unchanged. The input lists are never mutated; the
// result is re-derived on every call and never persisted.
func Filter(g Grouping, query string) Grouping {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return g
	}

	return Grouping{
		Todo:          filterTasks(g.Todo, query),
		InProgress:    filterTasks(g.InProgress, query),
		AwaitFeedback: filterTasks(g.AwaitFeedback, query),
		Done:          filterTasks(g.Done, query),
	}
}

func filterTasks(tasks []Task, query string) []Task {
	var matched []Task
	for _, t := range tasks {
		if matches(t, query) {
			matched = append(matched, t)
		}
	}
	return matched
}

func matches(t Task, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), query)
}
