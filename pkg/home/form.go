package home

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/marcus/wingsfly/internal/mockdata"
	"github.com/marcus/wingsfly/internal/models"
)

// createForm collects the details for a new task after an option is picked
// in the drawer. Field values live here so they survive Model copies.
type createForm struct {
	option   models.SelectableOption
	form     *huh.Form
	title    string
	clock    string
	priority string
}

func newCreateForm(opt models.SelectableOption, width int) *createForm {
	f := &createForm{option: opt, priority: "none"}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New "+opt.Title).
				Placeholder("What do you want to do?").
				Value(&f.title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Time").
				Description("24h HH:MM, optional").
				Placeholder("09:00").
				Value(&f.clock).
				Validate(validateClock),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("Must", string(models.TagMust)),
					huh.NewOption("Important", string(models.TagImportant)),
				).
				Value(&f.priority),
		),
	).WithWidth(width).WithShowHelp(true)
	return f
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

func validateClock(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return errors.New("use HH:MM, e.g. 18:30")
	}
	return nil
}

// task builds the new task from the submitted values
func (f *createForm) task(id string) models.Task {
	kind := models.TagTask
	if strings.EqualFold(f.option.Title, string(models.TagHabit)) {
		kind = models.TagHabit
	}
	tags := []models.Tag{kind}
	if f.priority != "" && f.priority != "none" {
		tags = append(tags, models.Tag(f.priority))
	}

	clock := "Anytime"
	if c := strings.TrimSpace(f.clock); c != "" {
		clock = mockdata.FormatTime(c)
	}

	return models.Task{
		ID:     id,
		Title:  strings.TrimSpace(f.title),
		Time:   clock,
		Icon:   f.option.Icon,
		Tags:   tags,
		Status: models.StatusPending,
		Color:  models.TagColor(kind),
	}
}

func (m Model) formWidth() int {
	return max(min(m.Width-8, 60), 30)
}

// openForm shows the create form for opt
func (m *Model) openForm(opt models.SelectableOption) tea.Cmd {
	m.form = newCreateForm(opt, m.formWidth())
	m.log.Debug("create form opened", "option", opt.Title)
	return m.form.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.form = nil
		cmd := m.setStatus("Cancelled", false)
		return m, cmd
	}

	fm, cmd := m.form.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		task := m.form.task(strconv.Itoa(len(m.Tasks) + 1))
		m.Tasks = append(m.Tasks, task)
		m.form = nil
		m.refreshTasks()
		m.log.Info("task created", "id", task.ID, "title", task.Title)
		status := m.setStatus("Created "+task.Title, false)
		return m, tea.Batch(cmd, status)
	case huh.StateAborted:
		m.form = nil
		status := m.setStatus("Cancelled", false)
		return m, tea.Batch(cmd, status)
	}
	return m, cmd
}

func (m Model) renderForm() string {
	return dialogStyle.Render(m.form.form.View())
}
