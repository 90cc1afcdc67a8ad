// Package mockdata holds the static records the home screen is seeded with.
package mockdata

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/marcus/wingsfly/internal/models"
)

// Quote shown in the "Today's Quote" card and its progress percentage
const (
	Quote         = "You must do the things, you think you cannot do."
	QuoteProgress = 65
)

// Tasks returns a fresh copy of the seeded task list
func Tasks() []models.Task {
	return []models.Task{
		{
			ID:      "1",
			Title:   "Schedule a meeting with Harshit Sir",
			Time:    "09:00 AM",
			Icon:    models.IconPeople,
			Tags:    []models.Tag{models.TagHabit, models.TagMust},
			Status:  models.StatusCompleted,
			Color:   "#4A5FFF",
			BgColor: "#EEF2FF",
		},
		{
			ID:      "2",
			Title:   "2.5 Hours Simran and Meditation",
			Time:    "09:00 AM",
			Icon:    models.IconSelfImprovement,
			Tags:    []models.Tag{models.TagHabit, models.TagMust},
			Status:  models.StatusPending,
			Color:   "#8B5CF6",
			BgColor: "#F3E8FF",
		},
		{
			ID:      "3",
			Title:   "Save 200 Rupees Daily",
			Time:    "12:00 PM",
			Icon:    models.IconSavings,
			Tags:    []models.Tag{models.TagHabit, models.TagMust},
			Status:  models.StatusInProgress,
			Color:   "#F59E0B",
			BgColor: "#FEF3C7",
		},
		{
			ID:       "4",
			Title:    "Walk 10k Step Daily",
			Time:     "07:00 AM",
			Icon:     models.IconDirectionsWalk,
			Tags:     []models.Tag{models.TagHabit, models.TagImportant},
			Status:   models.StatusPending,
			Progress: "12/31",
			Color:    "#10B981",
			BgColor:  "#D1FAE5",
		},
		{
			ID:       "5",
			Title:    "Buy Sunflower for Mumma",
			Time:     "11:00 AM",
			Icon:     models.IconLocalFlorist,
			Tags:     []models.Tag{models.TagTask, models.TagImportant},
			Status:   models.StatusPending,
			Progress: "0/1",
			Color:    "#3B82F6",
			BgColor:  "#DBEAFE",
		},
		{
			ID:       "6",
			Title:    "Make Mandala and Colour Daily",
			Time:     "07:30 PM",
			Icon:     models.IconPalette,
			Tags:     []models.Tag{models.TagTask, models.TagImportant},
			Status:   models.StatusPending,
			Progress: "12/30",
			Color:    "#EC4899",
			BgColor:  "#FCE7F3",
		},
	}
}

// Dates returns the seeded week, with Wednesday the 18th pre-selected
func Dates() []models.DateEntry {
	return []models.DateEntry{
		{Label: "Sun", Value: 15},
		{Label: "Mon", Value: 16},
		{Label: "Tue", Value: 17},
		{Label: "Wed", Value: 18, Selected: true},
		{Label: "Thu", Value: 19},
		{Label: "Fri", Value: 20},
		{Label: "Sat", Value: 21},
	}
}

// DrawerOptions returns the "Create New" choices
func DrawerOptions() []models.SelectableOption {
	return []models.SelectableOption{
		{
			ID:       "1",
			Title:    "Habit",
			Subtitle: "Activity that repeats over time it has detailed tracking and statistics.",
			Icon:     models.IconRefresh,
		},
		{
			ID:       "2",
			Title:    "Recurring Task",
			Subtitle: "Activity that repeats over time it has detailed tracking and statistics.",
			Icon:     models.IconRepeat,
		},
		{
			ID:       "3",
			Title:    "Task",
			Subtitle: "Single instance activity without tracking over time.",
			Icon:     models.IconCheck,
		},
		{
			ID:       "4",
			Title:    "Goal of the Day",
			Subtitle: "A specific target set for oneself to achieve within a single day.",
			Icon:     models.IconFlag,
		},
	}
}

// DefaultSelectedIndex is the position pre-selected by GenerateDateRange
const DefaultSelectedIndex = 3

// GenerateDateRange builds consecutive picker entries starting at start.
// The entry at DefaultSelectedIndex is marked selected when it exists.
func GenerateDateRange(start time.Time, days int) []models.DateEntry {
	if days <= 0 {
		return nil
	}
	entries := make([]models.DateEntry, 0, days)
	current := start
	for i := 0; i < days; i++ {
		entries = append(entries, models.DateEntry{
			Label:    current.Weekday().String()[:3],
			Value:    current.Day(),
			Selected: i == DefaultSelectedIndex,
		})
		current = current.AddDate(0, 0, 1)
	}
	return entries
}

// FormatTime converts "HH:MM" in 24h form to "H:MM AM/PM".
// Input that does not parse is returned unchanged.
func FormatTime(hhmm string) string {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// CalculateProgress returns current/total as a rounded percentage; 0 when total is 0
func CalculateProgress(current, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}

// ParseProgress parses a "done/total" progress string
func ParseProgress(s string) (done, total int, err error) {
	if _, err := fmt.Sscanf(s, "%d/%d", &done, &total); err != nil {
		return 0, 0, fmt.Errorf("parse progress %q: %w", s, err)
	}
	return done, total, nil
}

// Greeting returns the time-of-day greeting for the hour of t
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
