package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

type listModel struct {
	entries   []models.PreferenceEntry
	idx       int
	loading   bool
	spinner   spinner.Model
	filter    textinput.Model
	filtering bool
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = "filter keys"
	f.CharLimit = 128

	return listModel{spinner: s, filter: f, loading: true}
}

// visible returns the entries whose key contains the filter text.
func (m listModel) visible() []models.PreferenceEntry {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		return m.entries
	}

	out := make([]models.PreferenceEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Key), needle) {
			out = append(out, e)
		}
	}
	return out
}

func (m listModel) current() (models.PreferenceEntry, bool) {
	items := m.visible()
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return models.PreferenceEntry{}, false
	}
	return items[m.idx], true
}

func (m *listModel) clamp() {
	n := len(m.visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	title := "PREFERENCES"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	items := m.visible()
	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Loading...")
	case len(items) == 0:
		b.WriteString("No preferences")
	default:
		for i, e := range items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-28s %-6s %s\n", cursor, fitText(e.Key, 28), e.Kind, fitText(e.Raw, 40))
		}
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open  /: filter  d: delete  c: copy raw  s: flush  r: reload  tab: keys")
}
