package home

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/wingsfly/internal/models"
	"github.com/sahilm/fuzzy"
)

// taskSource adapts tasks to fuzzy.Source. Titles and tags are searchable.
type taskSource []models.Task

func (s taskSource) String(i int) string {
	t := s[i]
	if len(t.Tags) == 0 {
		return t.Title
	}
	tags := make([]string, len(t.Tags))
	for j, tag := range t.Tags {
		tags[j] = string(tag)
	}
	return t.Title + " " + strings.Join(tags, " ")
}

func (s taskSource) Len() int { return len(s) }

// filterTasks returns the indexes of tasks matching query, best match
// first. An empty query returns nil, meaning no filter.
func filterTasks(tasks []models.Task, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, taskSource(tasks))
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}
	return out
}

// visibleTasks applies the current filter
func (m Model) visibleTasks() []models.Task {
	if m.filter == nil {
		return m.Tasks
	}
	out := make([]models.Task, 0, len(m.filter))
	for _, i := range m.filter {
		if i >= 0 && i < len(m.Tasks) {
			out = append(out, m.Tasks[i])
		}
	}
	return out
}

func (m *Model) startSearch() tea.Cmd {
	m.SearchActive = true
	return m.search.Focus()
}

// clearSearch drops the query and shows every task again
func (m *Model) clearSearch() {
	m.SearchActive = false
	m.search.Blur()
	m.search.SetValue("")
	m.refreshTasks()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.clearSearch()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		// keep the filter, hand the keys back to the screen
		m.SearchActive = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.TaskCursor = 0
		m.refreshTasks()
	}
	return m, cmd
}

// refreshTasks recomputes the filter and re-renders the task viewport
func (m *Model) refreshTasks() {
	m.filter = filterTasks(m.Tasks, m.search.Value())
	m.TaskCursor = max(0, min(m.TaskCursor, len(m.visibleTasks())-1))
	m.taskView.SetContent(m.renderTasks())
	m.ensureTaskVisible()
}
