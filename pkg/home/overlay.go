package home

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimBackground renders view as a flat gray scrim whose strength follows
// alpha. Inner styles are stripped so they cannot bleed through. An alpha of
// zero leaves the view untouched.
func dimBackground(view string, alpha float64) string {
	if alpha <= 0 {
		return view
	}
	style := lipgloss.NewStyle().Foreground(scrimColor(alpha))
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// normalizeLines pads or clips view to exactly width x height cells
func normalizeLines(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// composeBottom draws a full-width panel whose first row lands on row top of
// the background. Rows below the screen are clipped, so a panel pushed down
// by a drag slides out of view.
func composeBottom(background, panel string, top, width, height int) string {
	bg := normalizeLines(background, width, height)
	if panel == "" {
		return strings.Join(bg, "\n")
	}
	for i, line := range strings.Split(panel, "\n") {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= height {
			break
		}
		bg[row] = padToWidth(line, width)
	}
	return strings.Join(bg, "\n")
}

// composeCenter overlays fg centered on the background, keeping the
// background visible on either side
func composeCenter(background, fg string, width, height int) string {
	bg := normalizeLines(background, width, height)
	fgLines := strings.Split(fg, "\n")

	fw := 0
	for _, l := range fgLines {
		fw = max(fw, ansi.StringWidth(l))
	}
	fw = min(fw, width)
	fh := min(len(fgLines), height)

	x := max((width-fw)/2, 0)
	y := max((height-fh)/2, 0)

	for i := 0; i < fh; i++ {
		row := y + i
		base := bg[row]
		prefix := ansi.Cut(base, 0, x)
		suffix := ansi.Cut(base, x+fw, width)
		bg[row] = prefix + padToWidth(fgLines[i], fw) + suffix
	}
	return strings.Join(bg, "\n")
}
