// Package selection tracks which date is active on the home screen and
// whether the creation drawer has been requested.
package selection

import "github.com/marcus/wingsfly/internal/models"

// State is a snapshot of the selection model
type State struct {
	SelectedDate int
	HasDate      bool
	DrawerOpen   bool
	LastOption   *models.SelectableOption
}

// Listener is notified after every change
type Listener func(State)

// Model is a reducer over user events and drawer callbacks.
// Every update overwrites the previous value; there is no validation.
type Model struct {
	dates     []models.DateEntry
	state     State
	listeners map[int]Listener
	nextID    int
}

// New seeds the selection from the entry pre-marked Selected, falling back
// to the first entry. An empty list leaves no date selected.
func New(dates []models.DateEntry) *Model {
	m := &Model{
		dates:     append([]models.DateEntry(nil), dates...),
		listeners: make(map[int]Listener),
	}
	for _, d := range dates {
		if d.Selected {
			m.state.SelectedDate, m.state.HasDate = d.Value, true
			return m
		}
	}
	if len(dates) > 0 {
		m.state.SelectedDate, m.state.HasDate = dates[0].Value, true
	}
	return m
}

// State returns the current snapshot
func (m *Model) State() State { return m.state }

// SelectedDate returns the selected day-of-month and whether one is set
func (m *Model) SelectedDate() (int, bool) {
	return m.state.SelectedDate, m.state.HasDate
}

// DrawerOpen reports whether the drawer is requested visible
func (m *Model) DrawerOpen() bool { return m.state.DrawerOpen }

// SelectDate makes entry the active date
func (m *Model) SelectDate(entry models.DateEntry) {
	m.state.SelectedDate = entry.Value
	m.state.HasDate = true
	m.notify()
}

// RequestAdd asks for the creation drawer
func (m *Model) RequestAdd() {
	m.state.DrawerOpen = true
	m.notify()
}

// DrawerClosed records that the drawer finished closing
func (m *Model) DrawerClosed() {
	m.state.DrawerOpen = false
	m.notify()
}

// OptionSelected records the option picked in the drawer
func (m *Model) OptionSelected(opt models.SelectableOption) {
	m.state.LastOption = &opt
	m.notify()
}

// ClearOption forgets the last picked option once the host has handled it
func (m *Model) ClearOption() {
	if m.state.LastOption == nil {
		return
	}
	m.state.LastOption = nil
	m.notify()
}

// Dates returns the host's entries with Selected derived from the current
// selection. Entries sharing the selected value are all marked.
func (m *Model) Dates() []models.DateEntry {
	out := make([]models.DateEntry, len(m.dates))
	for i, d := range m.dates {
		d.Selected = m.state.HasDate && d.Value == m.state.SelectedDate
		out[i] = d
	}
	return out
}

// SelectedIndex returns the position of the selected date, or -1
func (m *Model) SelectedIndex() int {
	if !m.state.HasDate {
		return -1
	}
	for i, d := range m.dates {
		if d.Value == m.state.SelectedDate {
			return i
		}
	}
	return -1
}

// Subscribe registers fn and returns a function that removes it
func (m *Model) Subscribe(fn Listener) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

func (m *Model) notify() {
	// Listeners run in registration order
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.listeners[id]; ok {
			fn(m.state)
		}
	}
}
