package tui

import (
	"github.com/MKhiriev/go-prefs-keeper/models"
)

type prefsLoadedMsg struct {
	entries []models.PreferenceEntry
	err     error
}

type keysLoadedMsg struct {
	info models.KeysInfo
	err  error
}

type decodedMsg struct {
	value models.TypedValue
	err   error
}

type prefDeletedMsg struct {
	err error
}

type keyRemovedMsg struct {
	err error
}

type keyAddedMsg struct {
	resp models.AddKeyResponse
	err  error
}

type flushDoneMsg struct {
	err error
}
