package home

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/wingsfly/internal/drawer"
	"github.com/marcus/wingsfly/internal/models"
	"github.com/marcus/wingsfly/pkg/home/mouse"
)

// Hit region IDs registered by View
const (
	regionFAB      = "fab"
	regionDate     = "date"
	regionTasks    = "tasks"
	regionBackdrop = "backdrop"
	regionSheet    = "sheet"
	regionOption   = "option"
)

// wheelLines is how far one wheel notch scrolls the task list
const wheelLines = 3

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m, nil
	}
	if m.HelpOpen {
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	now := m.now()
	action := m.mouse.HandleMouse(msg)

	var cmds []tea.Cmd
	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		cmds = append(cmds, m.handlePress(action))

	case mouse.ActionDrag:
		if m.mouse.DragRegion() == regionSheet {
			m.Drawer.DragMove(float64(action.DragDY)*m.Config.Screen.RowHeight, now)
		}

	case mouse.ActionDragEnd:
		// the release cell decides dismiss or snap back
		m.Drawer.DragMove(float64(action.DragDY)*m.Config.Screen.RowHeight, now)
		m.handleRelease(now)

	case mouse.ActionHover:
		m.hoverOption = -1
		if action.Region != nil && action.Region.ID == regionOption {
			if idx, ok := action.Region.Data.(int); ok {
				m.hoverOption = idx
			}
		}

	case mouse.ActionScrollUp:
		if !m.Drawer.Phase().Visible() {
			m.taskView.ScrollUp(wheelLines)
		}

	case mouse.ActionScrollDown:
		if !m.Drawer.Phase().Visible() {
			m.taskView.ScrollDown(wheelLines)
		}
	}

	cmds = append(cmds, m.ensureTicking())
	return m, tea.Batch(cmds...)
}

// handlePress routes a left-button press to whatever is under the pointer.
// Presses on the panel start a gesture; whether it becomes a drag or a tap
// is decided on release.
func (m *Model) handlePress(action mouse.Action) tea.Cmd {
	region := action.Region
	if region == nil {
		return nil
	}

	switch region.ID {
	case regionBackdrop:
		m.Drawer.Close(m.now())

	case regionSheet, regionOption:
		pressed := -1
		if idx, ok := region.Data.(int); ok && region.ID == regionOption {
			pressed = idx
			m.SheetCursor = idx
		}
		m.Drawer.DragStart()
		if m.Drawer.Dragging() {
			m.mouse.StartDrag(action.X, action.Y, regionSheet, pressed)
		}

	case regionFAB:
		m.SheetCursor = 0
		m.Selection.RequestAdd()

	case regionDate:
		if entry, ok := region.Data.(models.DateEntry); ok {
			m.Selection.SelectDate(entry)
			m.log.Debug("date selected", "value", entry.Value)
		}

	case regionTasks:
		if idx, ok := m.taskAt(action.Y); ok {
			m.TaskCursor = idx
			m.taskView.SetContent(m.renderTasks())
			return m.pressTask()
		}
	}
	return nil
}

// handleRelease ends a panel gesture. A release that never became a drag
// is a tap and picks the option it started on.
func (m *Model) handleRelease(now time.Time) {
	pressed := m.mouse.DragStartValue()
	tapped := m.Drawer.Phase() != drawer.Dragging
	m.Drawer.DragEnd(now)

	if !tapped || pressed < 0 || pressed >= len(m.Sheet.Options) {
		return
	}
	m.Drawer.SelectOption(m.Sheet.Options[pressed], now)
}
