package home

import (
	tea "github.com/charmbracelet/bubbletea"
)

// taskRows is the height of one task card plus its spacer line
const taskRows = 3

// moveTaskCursor moves the highlighted task by delta, clamped to the list
func (m *Model) moveTaskCursor(delta int) {
	n := len(m.visibleTasks())
	if n == 0 {
		m.TaskCursor = 0
		return
	}
	m.TaskCursor = max(0, min(m.TaskCursor+delta, n-1))
	m.taskView.SetContent(m.renderTasks())
	m.ensureTaskVisible()
}

// ensureTaskVisible scrolls the task viewport so the cursor's card is shown
func (m *Model) ensureTaskVisible() {
	top := m.TaskCursor * taskRows
	bottom := top + taskRows - 1
	switch {
	case top < m.taskView.YOffset:
		m.taskView.SetYOffset(top)
	case bottom > m.taskView.YOffset+m.taskView.Height:
		m.taskView.SetYOffset(bottom - m.taskView.Height)
	}
}

// taskAt maps a screen row inside the task list to a visible task index
func (m Model) taskAt(y int) (int, bool) {
	row := y - tasksTop + m.taskView.YOffset
	if row < 0 || row%taskRows == taskRows-1 {
		return 0, false
	}
	idx := row / taskRows
	if idx >= len(m.visibleTasks()) {
		return 0, false
	}
	return idx, true
}

// pressTask reports the highlighted task in the status line
func (m *Model) pressTask() tea.Cmd {
	visible := m.visibleTasks()
	if m.TaskCursor < 0 || m.TaskCursor >= len(visible) {
		return nil
	}
	t := visible[m.TaskCursor]
	m.log.Info("task pressed", "id", t.ID, "title", t.Title)
	return m.setStatus(t.Title+" at "+t.Time, false)
}
