package home

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpMarkdown string

var (
	mdRendererMu sync.Mutex
	// keyed by wrap width; a fixed style avoids terminal background queries
	mdRenderers = map[int]*glamour.TermRenderer{}
)

// renderMarkdown renders md wrapped to width, falling back to the raw text
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 10)

	mdRendererMu.Lock()
	r := mdRenderers[width]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[width]; existing != nil {
			r = existing
		} else {
			mdRenderers[width] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// helpSize is the dialog's outer size for the current screen
func (m Model) helpSize() (int, int) {
	w := min(m.Width-4, 72)
	h := max(m.Height-4, 6)
	return max(w, 24), h
}

// openHelp sizes the help viewport and fills it
func (m *Model) openHelp() {
	m.HelpOpen = true
	w, h := m.helpSize()
	m.helpView.Width = w - dialogStyle.GetHorizontalFrameSize()
	m.helpView.Height = h - dialogStyle.GetVerticalFrameSize()
	m.helpView.SetContent(renderMarkdown(helpMarkdown, m.helpView.Width) +
		"\n\n" + subtleText.Render("  ? or esc to close"))
	m.helpView.GotoTop()
}

func (m Model) renderHelp() string {
	return dialogStyle.Render(m.helpView.View())
}
