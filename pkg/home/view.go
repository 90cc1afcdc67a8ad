package home

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/wingsfly/internal/drawer"
	"github.com/marcus/wingsfly/internal/mockdata"
	"github.com/marcus/wingsfly/internal/models"
)

// Screen layout, in rows from the top
const (
	pickerTop     = 3
	pickerRows    = 2
	tasksTop      = 11
	footerRows    = 2
	dateCellWidth = 6
	fabLabel      = "+ New"
)

// View implements tea.Model
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "loading..."
	}

	m.mouse.Clear()
	view := m.renderHome()

	if st := m.Drawer.State(); st.Phase.Visible() {
		view = m.renderDrawer(view, st)
	}
	if m.HelpOpen {
		view = composeCenter(dimBackground(view, 1), m.renderHelp(), m.Width, m.Height)
	}
	if m.form != nil {
		view = composeCenter(dimBackground(view, 1), m.renderForm(), m.Width, m.Height)
	}
	return view
}

// renderHome draws the screen behind the drawer and registers its hit regions
func (m Model) renderHome() string {
	lines := make([]string, 0, m.Height)

	// header
	date := ""
	if idx := m.Selection.SelectedIndex(); idx >= 0 {
		d := m.Selection.Dates()[idx]
		date = fmt.Sprintf("%s %d", d.Label, d.Value)
	} else if v, ok := m.Selection.SelectedDate(); ok {
		date = fmt.Sprintf("Day %d", v)
	}
	lines = append(lines, spread(titleStyle.Render("Wingsfly"), subtleText.Render(date), m.Width))
	lines = append(lines, subtleText.Render(mockdata.Greeting(m.now())))
	lines = append(lines, "")

	// date picker
	labels, values := m.renderDatePicker()
	lines = append(lines, labels, values, "")

	// quote card
	inner := max(m.Width-cardStyle.GetHorizontalFrameSize(), 1)
	quote := ansi.Truncate(mockdata.Quote, inner, "…")
	bar := m.progress.ViewAs(float64(mockdata.QuoteProgress)/100) + fmt.Sprintf(" %d%%", mockdata.QuoteProgress)
	card := cardStyle.Width(m.Width - cardStyle.GetHorizontalBorderSize()).Render(
		quoteStyle.Render(quote) + "\n" + ansi.Truncate(bar, inner, ""))
	lines = append(lines, strings.Split(card, "\n")...)
	lines = append(lines, "")

	// tasks
	m.mouse.HitMap.AddRect(regionTasks, 0, tasksTop, m.Width, m.taskView.Height, nil)
	lines = append(lines, strings.Split(m.taskView.View(), "\n")...)

	body := normalizeLines(strings.Join(lines, "\n"), m.Width, m.Height-footerRows)
	return strings.Join(append(body, m.renderFooter()...), "\n")
}

// renderDatePicker returns the weekday row and the day-of-month row
func (m Model) renderDatePicker() (string, string) {
	var labels, values []string
	for i, d := range m.Selection.Dates() {
		style := dateCell
		if d.Selected {
			style = dateCellSelected
		}
		labels = append(labels, style.Render(d.Label))
		values = append(values, style.Render(fmt.Sprintf("%d", d.Value)))
		x := i * dateCellWidth
		if x+dateCellWidth <= m.Width {
			m.mouse.HitMap.AddRect(regionDate, x, pickerTop, dateCellWidth, pickerRows, d)
		}
	}
	return strings.Join(labels, ""), strings.Join(values, "")
}

func (m Model) renderFooter() []string {
	status := ""
	switch {
	case m.SearchActive || m.search.Value() != "":
		status = m.search.View()
	case m.StatusMessage != "" && m.StatusIsError:
		status = statusErr.Render(m.StatusMessage)
	case m.StatusMessage != "":
		status = statusOK.Render(m.StatusMessage)
	}

	var helpLine string
	if m.Drawer.Phase().Visible() {
		helpLine = m.help.ShortHelpView(m.keys.drawerKeys())
	} else {
		helpLine = m.help.View(m.keys)
	}

	fab := fabStyle.Render(fabLabel)
	fabW := lipgloss.Width(fab)
	helpLine = ansi.Truncate(helpLine, max(m.Width-fabW-1, 0), "…")
	m.mouse.HitMap.AddRect(regionFAB, m.Width-fabW, m.Height-1, fabW, 1, nil)

	return []string{
		padToWidth(status, m.Width),
		spread(helpLine, fab, m.Width),
	}
}

// renderTasks lays out the task cards for the viewport
func (m Model) renderTasks() string {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		if m.search.Value() != "" {
			return subtleText.Render("  no tasks match " + fmt.Sprintf("%q", m.search.Value()))
		}
		return subtleText.Render("  no tasks for this day")
	}

	width := max(m.Width, 20)
	var out []string
	for i, t := range visible {
		out = append(out, renderTaskCard(t, width, i == m.TaskCursor)...)
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderTaskCard(t models.Task, width int, selected bool) []string {
	glyph := models.IconGlyph(t.Icon)
	status := models.StatusGlyph(t.Status)

	marker := " "
	if selected {
		marker = taskMarker.Render("\u258c")
	}
	left := marker + glyph + "  " + lipgloss.NewStyle().Bold(true).Render(t.Title)
	titleLine := spread(ansi.Truncate(left, max(width-4, 1), "…"), status+" ", width)

	var chips []string
	for _, tag := range t.Tags {
		chips = append(chips, tagStyle(tag).Render("#"+string(tag)))
	}
	meta := "     " + taskTime.Render(t.Time)
	if len(chips) > 0 {
		meta += "  " + strings.Join(chips, " ")
	}
	if t.Progress != "" {
		if done, total, err := mockdata.ParseProgress(t.Progress); err == nil {
			meta += taskTime.Render(fmt.Sprintf("  %s (%d%%)", t.Progress, mockdata.CalculateProgress(done, total)))
		}
	}
	return []string{titleLine, ansi.Truncate(meta, width, "…")}
}

// renderDrawer dims the screen by the backdrop alpha and draws the panel
// displaced by the drag offset
func (m Model) renderDrawer(view string, st drawer.State) string {
	rowH := m.Config.Screen.RowHeight
	if rowH <= 0 {
		return view
	}
	panelRows := int(math.Round(m.Drawer.PanelHeight() / rowH))
	if panelRows < 1 {
		return view
	}
	top := m.Height - panelRows + int(math.Round(st.DragOffset/rowH))

	dimmed := dimBackground(view, st.BackdropAlpha)
	rendered := m.Sheet.Render(m.Width, panelRows, m.SheetCursor, m.hoverOption)

	m.mouse.HitMap.AddRect(regionBackdrop, 0, 0, m.Width, m.Height, nil)
	if visible := min(m.Height-top, panelRows); visible > 0 {
		m.mouse.HitMap.AddRect(regionSheet, 0, top, m.Width, visible, nil)
		for _, h := range rendered.Hits {
			if top+h.Row < m.Height {
				m.mouse.HitMap.AddRect(regionOption, 0, top+h.Row, m.Width, h.Height, h.Index)
			}
		}
	}
	return composeBottom(dimmed, rendered.Content, top, m.Width, m.Height)
}

// spread places left and right at opposite ends of a width-wide line
func spread(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return padToWidth(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
