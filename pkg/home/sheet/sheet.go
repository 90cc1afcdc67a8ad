// Package sheet renders the "Create New" bottom sheet and reports where each
// option landed so the host can register mouse regions for them.
//
// Rendering follows a render-then-measure pattern: option rows are laid out
// first and their row offsets recorded, so hit regions always match what was
// drawn.
package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/wingsfly/internal/models"
)

const (
	DefaultTitle    = "Create New"
	DefaultSubtitle = "Choose what you'd like to create"

	handleGlyph = "━━━━━━"
	chevron     = "▶"
	// rows each option occupies, title plus subtitle
	optionRows = 2
)

// Sheet is the panel's content. It holds no animation state; the drawer
// controller decides where it is drawn.
type Sheet struct {
	Title    string
	Subtitle string
	Options  []models.SelectableOption
}

// New returns a sheet with the stock heading
func New(options []models.SelectableOption) *Sheet {
	return &Sheet{
		Title:    DefaultTitle,
		Subtitle: DefaultSubtitle,
		Options:  options,
	}
}

// Hit locates one rendered option relative to the panel's top-left cell
type Hit struct {
	Index  int
	ID     string
	Row    int
	Height int
}

// Rendered is a frame of the sheet
type Rendered struct {
	Content string
	Width   int
	Height  int
	Hits    []Hit
}

// Render draws the sheet into exactly width x height cells. cursor is the
// keyboard-focused option and hover the option under the pointer; -1 for none.
// Options that do not fit are clipped and get no hit.
func (s *Sheet) Render(width, height, cursor, hover int) Rendered {
	frameW := Panel.GetHorizontalFrameSize()
	inner := max(width-frameW, 1)
	top := Panel.GetBorderTopSize()
	bodyRows := max(height-top, 0)

	var lines []string
	lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, HandleStyle.Render(handleGlyph)))
	lines = append(lines, "")
	lines = append(lines, TitleStyle.Render(s.Title))
	lines = append(lines, MutedText.Render(s.Subtitle))
	lines = append(lines, "")

	var hits []Hit
	for i, opt := range s.Options {
		row := len(lines)
		if row+optionRows > bodyRows {
			break
		}
		lines = append(lines, renderOption(opt, inner, i == cursor, i == hover)...)
		hits = append(hits, Hit{Index: i, ID: opt.ID, Row: top + row, Height: optionRows})
	}

	if len(lines) > bodyRows {
		lines = lines[:bodyRows]
	}
	for len(lines) < bodyRows {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = fit(l, inner)
	}

	content := ""
	if height > 0 {
		content = Panel.Width(width - Panel.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
	}
	return Rendered{Content: content, Width: width, Height: height, Hits: hits}
}

func renderOption(opt models.SelectableOption, width int, focused, hovered bool) []string {
	style := OptionNormal
	switch {
	case focused:
		style = OptionFocused
	case hovered:
		style = OptionHover
	}

	marker := "  "
	if focused {
		marker = Cursor.Render("▸ ")
	}

	left := marker + models.IconGlyph(opt.Icon) + "  " + opt.Title
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(chevron), 1)
	first := style.Render(left+strings.Repeat(" ", gap)) + Chevron.Render(chevron)

	pad := strings.Repeat(" ", 2+ansi.StringWidth(models.IconGlyph(opt.Icon))+2)
	second := MutedText.Render(pad + opt.Subtitle)
	return []string{first, second}
}

// fit truncates or pads a styled line to exactly w cells
func fit(line string, w int) string {
	if ansi.StringWidth(line) > w {
		line = ansi.Truncate(line, w, "…")
	}
	if n := w - ansi.StringWidth(line); n > 0 {
		line += strings.Repeat(" ", n)
	}
	return line
}

// HitAt returns the option index under panel-relative row, or -1
func (r Rendered) HitAt(row int) int {
	for _, h := range r.Hits {
		if row >= h.Row && row < h.Row+h.Height {
			return h.Index
		}
	}
	return -1
}

// HandleKey moves cursor for navigation keys and returns the chosen option
// ID on enter. The bool reports whether the key was consumed.
func (s *Sheet) HandleKey(key string, cursor *int) (string, bool) {
	if len(s.Options) == 0 || cursor == nil {
		return "", false
	}
	switch key {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
		return "", true
	case "down", "j", "tab":
		if *cursor < len(s.Options)-1 {
			*cursor++
		}
		return "", true
	case "home", "g":
		*cursor = 0
		return "", true
	case "end", "G":
		*cursor = len(s.Options) - 1
		return "", true
	case "enter", " ":
		if *cursor >= 0 && *cursor < len(s.Options) {
			return s.Options[*cursor].ID, true
		}
		return "", true
	}
	return "", false
}

// Option looks up an option by ID
func (s *Sheet) Option(id string) (models.SelectableOption, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return models.SelectableOption{}, false
}
