// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prefs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// ManagerOptions switches the lifecycle hooks of a Manager.
type ManagerOptions struct {
	// AutoLoad loads a field from the store as soon as it is bound.
	AutoLoad bool
	// AutoSave saves every field when the Manager is closed.
	AutoSave bool
}

// Manager persists a set of declared fields, each bound to a Go variable.
// A field is only saved and loaded when its declaration has Save set.
//
// The Manager reads and writes the bound variables from SaveAll, LoadAll
// and Close; callers must not modify them concurrently with those calls.
type Manager struct {
	prefs *Prefs
	opts  ManagerOptions

	mu     sync.Mutex
	fields []binding
	names  map[string]struct{}
	closed bool
}

type binding struct {
	decl models.VariableData
	save func(*Prefs) error
	load func(*Prefs)
}

func NewManager(p *Prefs, opts ManagerOptions) *Manager {
	return &Manager{
		prefs: p,
		opts:  opts,
		names: make(map[string]struct{}),
	}
}

// Bind registers ptr as the variable behind decl. The current value of
// *ptr is the default used when loading.
func Bind[T codec.Value](m *Manager, decl models.VariableData, ptr *T) error {
	if ptr == nil {
		return fmt.Errorf("bind %q: nil pointer", decl.Name)
	}

	b := binding{
		decl: decl,
		save: func(p *Prefs) error {
			if decl.Encrypt {
				return SaveEncrypted(p, decl.PrefsKey(), *ptr, decl.KeyIndex)
			}
			Save(p, decl.PrefsKey(), *ptr)
			return nil
		},
		load: func(p *Prefs) {
			if decl.Encrypt {
				*ptr = LoadEncrypted(p, *ptr, decl.PrefsKey(), decl.KeyIndex)
				return
			}
			*ptr = Load(p, *ptr, decl.PrefsKey())
		},
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.names[decl.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, decl.Name)
	}
	m.names[decl.Name] = struct{}{}
	m.fields = append(m.fields, b)

	if m.opts.AutoLoad && decl.Save {
		b.load(m.prefs)
	}
	return nil
}

// Fields returns the bound declarations in bind order.
func (m *Manager) Fields() []models.VariableData {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.VariableData, 0, len(m.fields))
	for _, f := range m.fields {
		out = append(out, f.decl)
	}
	return out
}

// SaveAll writes every field flagged Save, then flushes the store. Fields
// that fail to encrypt are skipped and reported together; the remaining
// fields are still written and flushed.
func (m *Manager) SaveAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, f := range m.fields {
		if !f.decl.Save {
			continue
		}
		if err := f.save(m.prefs); err != nil {
			m.prefs.logger.Err(err).
				Str("func", "Manager.SaveAll").
				Str("category", f.decl.Category).
				Str("field", f.decl.Name).
				Msg("failed to save field")
			errs = append(errs, fmt.Errorf("save %q: %w", f.decl.Name, err))
		}
	}

	if err := m.prefs.Flush(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadAll loads every field flagged Save. Fields that are missing or
// corrupt keep their current value.
func (m *Manager) LoadAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.fields {
		if f.decl.Save {
			f.load(m.prefs)
		}
	}
}

// Close runs the final save when AutoSave is set. Calling Close more than
// once is a no-op.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.mu.Unlock()

	if !m.opts.AutoSave {
		return nil
	}
	return m.SaveAll(ctx)
}
