package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

type keysModel struct {
	info    models.KeysInfo
	idx     int
	loaded  bool
	loading bool
	err     error
}

func (m keysModel) current() (models.KeyInfo, bool) {
	if len(m.info.Keys) == 0 || m.idx < 0 || m.idx >= len(m.info.Keys) {
		return models.KeyInfo{}, false
	}
	return m.info.Keys[m.idx], true
}

func (m *keysModel) clamp() {
	if m.idx >= len(m.info.Keys) {
		m.idx = len(m.info.Keys) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m keysModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && !m.loaded:
		b.WriteString("Loading...")
	case m.err != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.err)))
	default:
		fmt.Fprintf(&b, "Credentials: %d    Delimiter: %q\n\n", m.info.Count, m.info.Delimiter)
		if len(m.info.Keys) == 0 {
			b.WriteString("No keys: encryption is unavailable")
		}
		for i, k := range m.info.Keys {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s#%-3d %s\n", cursor, k.Index, k.Fingerprint)
		}
	}

	return renderPage("KEYS", strings.TrimRight(b.String(), "\n"),
		"g: generate  d: remove  r: reload  tab: next tab")
}
