package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// detailModel shows one entry and its value decoded as a chosen type.
type detailModel struct {
	entry     models.PreferenceEntry
	typeIdx   int
	encrypted bool
	keyIndex  int

	decoding  bool
	decoded   *models.TypedValue
	decodeErr error
}

func newDetailModel(entry models.PreferenceEntry) detailModel {
	m := detailModel{entry: entry}
	want := defaultTypeFor(entry.Kind)
	for i, t := range models.ValueTypes {
		if t == want {
			m.typeIdx = i
		}
	}
	return m
}

// defaultTypeFor guesses the value type from the slot a value lives in.
func defaultTypeFor(kind models.SlotKind) models.ValueType {
	switch kind {
	case models.SlotInt:
		return models.TypeInt
	case models.SlotFloat:
		return models.TypeFloat
	default:
		return models.TypeString
	}
}

func (m detailModel) valueType() models.ValueType {
	return models.ValueTypes[m.typeIdx]
}

func (m detailModel) request() models.GetPreferenceRequest {
	return models.GetPreferenceRequest{
		Key:       m.entry.Key,
		Type:      m.valueType(),
		Encrypted: m.encrypted,
		KeyIndex:  m.keyIndex,
	}
}

// copyValue is the decoded value when there is one, the raw text otherwise.
func (m detailModel) copyValue() string {
	if m.decoded != nil {
		return m.decoded.Value
	}
	return m.entry.Raw
}

func (m detailModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Key:      %s\n", m.entry.Key)
	fmt.Fprintf(&b, "Slot:     %s\n", m.entry.Kind)
	if !m.entry.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "Updated:  %s\n", m.entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "Raw:      %s\n\n", m.entry.Raw)

	mode := "plain"
	if m.encrypted {
		mode = fmt.Sprintf("encrypted, key #%d", m.keyIndex)
	}
	fmt.Fprintf(&b, "Read as:  %s (%s)\n", m.valueType(), mode)

	switch {
	case m.decoding:
		b.WriteString("Value:    ...")
	case m.decodeErr != nil:
		b.WriteString("Value:    " + errorStyle.Render(humanizeError(m.decodeErr)))
	case m.decoded != nil:
		b.WriteString("Value:    " + m.decoded.Value)
	}

	return renderPage(titleStyle.Render(m.entry.Key), b.String(),
		"t: type  x: encrypted  [ ]: key  c: copy  d: delete  esc: back")
}
