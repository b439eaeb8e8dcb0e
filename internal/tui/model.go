package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

type tab int

const (
	tabPrefs tab = iota
	tabKeys
	tabAbout
)

var tabTitles = []string{"Preferences", "Keys", "About"}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// pendingAction is what a confirmed prompt runs.
type pendingAction func() tea.Cmd

type browserModel struct {
	ctx       context.Context
	prefs     service.PreferenceService
	keySvc    service.KeyService
	buildInfo models.AppBuildInfo
	source    string

	active  tab
	list    listModel
	detail  *detailModel
	keyring keysModel

	confirm *confirmModel
	pending pendingAction
	overlay *errorOverlayModel
	status  string
}

func newBrowserModel(ctx context.Context, prefs service.PreferenceService, keySvc service.KeyService,
	buildInfo models.AppBuildInfo, source string) browserModel {
	return browserModel{
		ctx:       ctx,
		prefs:     prefs,
		keySvc:    keySvc,
		buildInfo: buildInfo,
		source:    source,
		list:      newListModel(),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPrefs(), m.list.spinner.Tick)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.list.entries = msg.entries
		m.list.clamp()
		return m, nil
	case keysLoadedMsg:
		m.keyring.loading = false
		m.keyring.loaded = true
		m.keyring.err = msg.err
		if msg.err == nil {
			m.keyring.info = msg.info
			m.keyring.clamp()
		}
		return m, nil
	case decodedMsg:
		if m.detail == nil {
			return m, nil
		}
		m.detail.decoding = false
		m.detail.decodeErr = msg.err
		m.detail.decoded = nil
		if msg.err == nil {
			v := msg.value
			m.detail.decoded = &v
		}
		return m, nil
	case prefDeletedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Delete failed: " + humanizeError(msg.err)}
			return m, nil
		}
		m.detail = nil
		m.status = "Preference deleted"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadPrefs(), m.list.spinner.Tick)
	case keyRemovedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Remove failed: " + humanizeError(msg.err)}
			return m, nil
		}
		m.status = "Key removed"
		return m, m.cmdLoadKeys()
	case keyAddedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Generate failed: " + humanizeError(msg.err)}
			return m, nil
		}
		m.status = fmt.Sprintf("Key #%d added (%s)", msg.resp.Key.Index, msg.resp.Key.Fingerprint)
		return m, m.cmdLoadKeys()
	case flushDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Flush failed: " + humanizeError(msg.err)}
			return m, nil
		}
		m.status = "Preferences flushed"
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			run := m.pending
			m.confirm, m.pending = nil, nil
			return m, run()
		case key.Matches(keyMsg, keys.no, keys.esc):
			m.confirm, m.pending = nil, nil
		}
		return m, nil
	}

	if m.list.filtering {
		return m.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		return m.switchTab((m.active + 1) % tab(len(tabTitles)))
	case key.Matches(keyMsg, keys.backtab):
		return m.switchTab((m.active + tab(len(tabTitles)) - 1) % tab(len(tabTitles)))
	}

	switch m.active {
	case tabPrefs:
		if m.detail != nil {
			return m.updateDetail(keyMsg)
		}
		return m.updateList(keyMsg)
	case tabKeys:
		return m.updateKeys(keyMsg)
	}
	return m, nil
}

func (m browserModel) switchTab(to tab) (tea.Model, tea.Cmd) {
	m.active = to
	m.detail = nil
	m.status = ""
	if to == tabKeys && !m.keyring.loaded && !m.keyring.loading {
		return m, m.cmdLoadKeys()
	}
	return m, nil
}

func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.list.filtering = false
		m.list.filter.SetValue("")
		m.list.filter.Blur()
		m.list.clamp()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.list.filtering = false
		m.list.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.list.filter, cmd = m.list.filter.Update(msg)
	m.list.idx = 0
	return m, cmd
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.visible())-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.filter):
		m.list.filtering = true
		return m, m.list.filter.Focus()
	case key.Matches(msg, keys.reload):
		m.list.loading = true
		m.status = ""
		return m, tea.Batch(m.cmdLoadPrefs(), m.list.spinner.Tick)
	case key.Matches(msg, keys.flush):
		return m, m.cmdFlush()
	case key.Matches(msg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			m.status = "No preferences"
			return m, nil
		}
		d := newDetailModel(entry)
		m.detail = &d
		return m, m.cmdDecode()
	case key.Matches(msg, keys.delete):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.askDeletePref(entry.Key)
	case key.Matches(msg, keys.copy):
		entry, ok := m.list.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		m.copy(entry.Raw)
	}
	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = nil
		return m, nil
	case key.Matches(msg, keys.cycle):
		m.detail.typeIdx = (m.detail.typeIdx + 1) % len(models.ValueTypes)
		return m, m.cmdDecode()
	case key.Matches(msg, keys.encrypt):
		m.detail.encrypted = !m.detail.encrypted
		return m, m.cmdDecode()
	case key.Matches(msg, keys.keyNext):
		if !m.detail.encrypted {
			return m, nil
		}
		m.detail.keyIndex++
		return m, m.cmdDecode()
	case key.Matches(msg, keys.keyPrev):
		if !m.detail.encrypted || m.detail.keyIndex == 0 {
			return m, nil
		}
		m.detail.keyIndex--
		return m, m.cmdDecode()
	case key.Matches(msg, keys.copy):
		m.copy(m.detail.copyValue())
	case key.Matches(msg, keys.delete):
		m.askDeletePref(m.detail.entry.Key)
	}
	return m, nil
}

func (m browserModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.keyring.idx > 0 {
			m.keyring.idx--
		}
	case key.Matches(msg, keys.down):
		if m.keyring.idx < len(m.keyring.info.Keys)-1 {
			m.keyring.idx++
		}
	case key.Matches(msg, keys.reload):
		return m, m.cmdLoadKeys()
	case key.Matches(msg, keys.generate):
		return m, m.cmdGenerateKey()
	case key.Matches(msg, keys.delete):
		k, ok := m.keyring.current()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{message: fmt.Sprintf("key #%d (%s)", k.Index, k.Fingerprint)}
		m.pending = func() tea.Cmd { return m.cmdRemoveKey(k.Index) }
	}
	return m, nil
}

func (m *browserModel) askDeletePref(k string) {
	m.confirm = &confirmModel{message: fmt.Sprintf("%q", k)}
	m.pending = func() tea.Cmd { return m.cmdDeletePref(k) }
}

func (m *browserModel) copy(text string) {
	if err := writeClipboard(text); err != nil {
		m.overlay = &errorOverlayModel{message: fmt.Sprintf("Copy failed: %v", err)}
		return
	}
	m.status = "Copied"
}

func (m browserModel) View() string {
	var body string
	switch m.active {
	case tabPrefs:
		if m.detail != nil {
			body = m.detail.View()
		} else {
			body = m.list.View()
		}
	case tabKeys:
		body = m.keyring.View()
	case tabAbout:
		body = renderBuildInfoWindow(m.buildInfo, m.source)
	}

	out := renderTabs(m.active) + "\n\n" + body
	if m.status != "" {
		out += "\n\n" + m.status
	}
	if m.confirm != nil {
		out += "\n\n" + m.confirm.View()
	}
	if m.overlay != nil {
		out += "\n\n" + m.overlay.View()
	}
	return appStyle.Render(out)
}

// ── commands ────────────────────────────────────────────────────────────────

func (m browserModel) cmdLoadPrefs() tea.Cmd {
	ctx, svc := m.ctx, m.prefs
	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return prefsLoadedMsg{entries: entries, err: err}
	}
}

func (m *browserModel) cmdLoadKeys() tea.Cmd {
	m.keyring.loading = true
	ctx, svc := m.ctx, m.keySvc
	return func() tea.Msg {
		info, err := svc.List(ctx)
		return keysLoadedMsg{info: info, err: err}
	}
}

func (m *browserModel) cmdDecode() tea.Cmd {
	m.detail.decoding = true
	ctx, svc, req := m.ctx, m.prefs, m.detail.request()
	return func() tea.Msg {
		value, err := svc.Get(ctx, req)
		return decodedMsg{value: value, err: err}
	}
}

func (m browserModel) cmdDeletePref(k string) tea.Cmd {
	ctx, svc := m.ctx, m.prefs
	return func() tea.Msg {
		return prefDeletedMsg{err: svc.Delete(ctx, k)}
	}
}

func (m browserModel) cmdFlush() tea.Cmd {
	ctx, svc := m.ctx, m.prefs
	return func() tea.Msg {
		return flushDoneMsg{err: svc.Flush(ctx)}
	}
}

func (m browserModel) cmdRemoveKey(index int) tea.Cmd {
	ctx, svc := m.ctx, m.keySvc
	return func() tea.Msg {
		return keyRemovedMsg{err: svc.Remove(ctx, index)}
	}
}

func (m browserModel) cmdGenerateKey() tea.Cmd {
	ctx, svc := m.ctx, m.keySvc
	return func() tea.Msg {
		resp, err := svc.Add(ctx, models.AddKeyRequest{})
		return keyAddedMsg{resp: resp, err: err}
	}
}
