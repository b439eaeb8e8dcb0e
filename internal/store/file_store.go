package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// FileStore keeps preferences and the key registry in a single JSON
// document, the way platform preference files (plists, registry exports)
// hold them. Save rewrites the whole file.
type FileStore struct {
	*prefsCache

	path string

	mu        sync.Mutex
	keys      []models.KeyRecord
	delimiter rune
}

type filePersistedState struct {
	Delimiter   string             `json:"delimiter,omitempty"`
	Keys        []models.KeyRecord `json:"keys,omitempty"`
	Preferences []filePreference   `json:"preferences"`
}

// filePreference is the on-disk form of a preference. The float slot is
// kept as codec text: encoding/json has no representation for NaN and the
// infinities.
type filePreference struct {
	Key       string          `json:"key"`
	Kind      models.SlotKind `json:"kind"`
	Float     string          `json:"float,omitempty"`
	Int       int32           `json:"int,omitempty"`
	String    string          `json:"string,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toFilePreference(p models.Preference) filePreference {
	fp := filePreference{
		Key:       p.Key,
		Kind:      p.Kind,
		Int:       p.Int,
		String:    p.String,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Kind == models.SlotFloat {
		fp.Float = codec.EncodeFloat(p.Float)
	}
	return fp
}

func (fp filePreference) preference() (models.Preference, error) {
	p := models.Preference{
		Key:       fp.Key,
		Kind:      fp.Kind,
		Int:       fp.Int,
		String:    fp.String,
		UpdatedAt: fp.UpdatedAt,
	}
	if fp.Kind == models.SlotFloat && fp.Float != "" {
		f, err := codec.DecodeFloat(fp.Float)
		if err != nil {
			return models.Preference{}, fmt.Errorf("preference %q: %w", fp.Key, err)
		}
		p.Float = f
	}
	return p, nil
}

// NewFileStore opens the JSON preference file at path. A missing file is
// an empty store; it is created on the first Save.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		prefsCache: newPrefsCache(),
		path:       path,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read preference file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptStoreFile, err)
	}
	for _, k := range st.Keys {
		if !k.Valid() {
			return fmt.Errorf("%w: invalid key record", ErrCorruptStoreFile)
		}
	}

	prefs := make([]models.Preference, 0, len(st.Preferences))
	for _, fp := range st.Preferences {
		p, err := fp.preference()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptStoreFile, err)
		}
		prefs = append(prefs, p)
	}

	s.prefsCache.fill(prefs)
	s.keys = st.Keys
	for _, r := range st.Delimiter {
		s.delimiter = r
		break
	}

	return nil
}

func (s *FileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preference dir: %w", err)
		}
	}

	all := s.prefsCache.all()
	state := filePersistedState{
		Keys:        s.keys,
		Preferences: make([]filePreference, 0, len(all)),
	}
	for _, p := range all {
		state.Preferences = append(state.Preferences, toFilePreference(p))
	}
	if s.delimiter != 0 {
		state.Delimiter = string(s.delimiter)
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preference file: %w", err)
	}

	// write then rename so a crash never leaves a truncated file
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write preference file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preference file: %w", err)
	}

	return nil
}

// Save implements [PreferenceStore].
func (s *FileStore) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.takeChanges()
	if err := s.persist(); err != nil {
		s.restoreChanges(cs)
		return err
	}
	return nil
}

// LoadKeys implements [KeyRepository].
func (s *FileStore) LoadKeys(ctx context.Context) ([]models.KeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.KeyRecord, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, k.Clone())
	}
	return out, nil
}

// SaveKeys implements [KeyRepository]. The file is rewritten immediately;
// pending preference writes are flushed along with the keys.
func (s *FileStore) SaveKeys(ctx context.Context, records []models.KeyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.keys
	s.keys = make([]models.KeyRecord, 0, len(records))
	for _, r := range records {
		s.keys = append(s.keys, r.Clone())
	}

	cs := s.takeChanges()
	if err := s.persist(); err != nil {
		s.keys = prev
		s.restoreChanges(cs)
		return err
	}
	return nil
}

// LoadDelimiter implements [KeyRepository].
func (s *FileStore) LoadDelimiter(ctx context.Context) (rune, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.delimiter, nil
}

// SaveDelimiter implements [KeyRepository].
func (s *FileStore) SaveDelimiter(ctx context.Context, delimiter rune) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.delimiter
	s.delimiter = delimiter

	cs := s.takeChanges()
	if err := s.persist(); err != nil {
		s.delimiter = prev
		s.restoreChanges(cs)
		return err
	}
	return nil
}
