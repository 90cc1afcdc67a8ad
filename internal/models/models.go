package models

import "strings"

// Status represents the completion state of a task card
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Tag is a label decorating a task card
type Tag string

const (
	TagHabit     Tag = "Habit"
	TagTask      Tag = "Task"
	TagMust      Tag = "Must"
	TagImportant Tag = "Important"
)

// Icon is a symbolic icon name used by tasks and drawer options
type Icon string

const (
	IconPeople          Icon = "people"
	IconSelfImprovement Icon = "self-improvement"
	IconSavings         Icon = "savings"
	IconDirectionsWalk  Icon = "directions-walk"
	IconLocalFlorist    Icon = "local-florist"
	IconPalette         Icon = "palette"
	IconAccessTime      Icon = "access-time"
	IconChevronRight    Icon = "chevron-right"
	IconRefresh         Icon = "refresh"
	IconRepeat          Icon = "repeat"
	IconCheck           Icon = "check"
	IconFlag            Icon = "flag"
)

// Task is a single card in the home screen task list
type Task struct {
	ID       string
	Title    string
	Time     string // "09:00 AM"
	Icon     Icon
	Tags     []Tag
	Status   Status
	Progress string // optional "12/31"
	Color    string // accent hex color
	BgColor  string // icon tile hex color
}

// DateEntry is one cell of the horizontal date picker
type DateEntry struct {
	Label    string // weekday abbreviation
	Value    int    // day of month
	Selected bool
}

// SelectableOption is one row of the "Create New" drawer
type SelectableOption struct {
	ID       string
	Title    string
	Subtitle string
	Icon     Icon
}

// Config holds the tunables for the home screen and its drawer
type Config struct {
	Drawer DrawerConfig `mapstructure:"drawer" json:"drawer"`
	Screen ScreenConfig `mapstructure:"screen" json:"screen"`
}

// DrawerConfig holds drawer geometry, gesture and animation tunables
type DrawerConfig struct {
	HeightFraction  float64 `mapstructure:"height_fraction" json:"height_fraction"`
	DragThreshold   float64 `mapstructure:"drag_threshold" json:"drag_threshold"`
	DismissFraction float64 `mapstructure:"dismiss_fraction" json:"dismiss_fraction"`
	OpenMillis      int     `mapstructure:"open_ms" json:"open_ms"`
	CloseMillis     int     `mapstructure:"close_ms" json:"close_ms"`
	SpringTension   float64 `mapstructure:"spring_tension" json:"spring_tension"`
	SpringFriction  float64 `mapstructure:"spring_friction" json:"spring_friction"`
}

// ScreenConfig holds terminal scaling tunables
type ScreenConfig struct {
	// RowHeight is the number of layout units one terminal row represents.
	RowHeight float64 `mapstructure:"row_height" json:"row_height"`
	FPS       int     `mapstructure:"fps" json:"fps"`
}

// IsValidStatus checks if a status is valid
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// NormalizeStatus converts loose spellings ("in_progress", "done") to a Status.
// Unknown values map to StatusPending.
func NormalizeStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completed", "complete", "done":
		return StatusCompleted
	case "in-progress", "in_progress", "inprogress", "wip":
		return StatusInProgress
	default:
		return StatusPending
	}
}

// StatusGlyph returns the decoration shown at the right edge of a task card
func StatusGlyph(s Status) string {
	switch s {
	case StatusCompleted:
		return "✅"
	case StatusInProgress:
		return "⏱️"
	default:
		return "⚪"
	}
}

// TagColor returns the ANSI-256 color used for a tag chip.
// Matching is case-insensitive; unknown tags use the primary color.
func TagColor(t Tag) string {
	switch strings.ToLower(string(t)) {
	case "must":
		return "196"
	case "important":
		return "214"
	default:
		return PrimaryColor
	}
}

// PrimaryColor is the brand color used for untagged accents
const PrimaryColor = "63"

// FallbackGlyph is shown for icons without a mapping
const FallbackGlyph = "⚫"

// IconGlyph returns the display glyph for an icon name
func IconGlyph(i Icon) string {
	switch i {
	case IconPeople:
		return "👥"
	case IconSelfImprovement:
		return "🧘"
	case IconSavings:
		return "💰"
	case IconDirectionsWalk:
		return "🚶"
	case IconLocalFlorist:
		return "🌻"
	case IconPalette:
		return "🎨"
	case IconAccessTime:
		return "⏰"
	case IconChevronRight:
		return "▶"
	case IconRefresh:
		return "🔄"
	case IconRepeat:
		return "🔁"
	case IconCheck:
		return "✅"
	case IconFlag:
		return "🚩"
	default:
		return FallbackGlyph
	}
}

// HasTag reports whether the task carries the tag (case-insensitive)
func (t Task) HasTag(tag Tag) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(string(have), string(tag)) {
			return true
		}
	}
	return false
}
