// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// prefsCache is the in-memory state shared by every PreferenceStore. It
// tracks which keys changed since the last flush so durable backends only
// write what is needed.
type prefsCache struct {
	mu      sync.RWMutex
	entries map[string]models.Preference
	dirty   map[string]struct{}
	deleted map[string]struct{}
	cleared bool

	now func() time.Time
}

// changeSet is the pending work of one flush.
type changeSet struct {
	cleared bool
	upserts []models.Preference
	deletes []string
}

func (c changeSet) empty() bool {
	return !c.cleared && len(c.upserts) == 0 && len(c.deletes) == 0
}

func newPrefsCache() *prefsCache {
	return &prefsCache{
		entries: make(map[string]models.Preference),
		dirty:   make(map[string]struct{}),
		deleted: make(map[string]struct{}),
		now:     time.Now,
	}
}

// fill replaces the cache contents with entries loaded from a backend. The
// loaded entries are clean.
func (c *prefsCache) fill(prefs []models.Preference) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]models.Preference, len(prefs))
	for _, p := range prefs {
		c.entries[p.Key] = p
	}
	c.dirty = make(map[string]struct{})
	c.deleted = make(map[string]struct{})
	c.cleared = false
}

func (c *prefsCache) set(p models.Preference) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p.UpdatedAt = c.now().UTC()
	c.entries[p.Key] = p
	c.dirty[p.Key] = struct{}{}
	delete(c.deleted, p.Key)
}

func (c *prefsCache) SetFloat(key string, value float32) {
	c.set(models.Preference{Key: key, Kind: models.SlotFloat, Float: value})
}

func (c *prefsCache) SetInt(key string, value int32) {
	c.set(models.Preference{Key: key, Kind: models.SlotInt, Int: value})
}

func (c *prefsCache) SetString(key string, value string) {
	c.set(models.Preference{Key: key, Kind: models.SlotString, String: value})
}

func (c *prefsCache) GetFloat(key string, def float32) float32 {
	if p, ok := c.Entry(key); ok && p.Kind == models.SlotFloat {
		return p.Float
	}
	return def
}

func (c *prefsCache) GetInt(key string, def int32) int32 {
	if p, ok := c.Entry(key); ok && p.Kind == models.SlotInt {
		return p.Int
	}
	return def
}

func (c *prefsCache) GetString(key string, def string) string {
	if p, ok := c.Entry(key); ok && p.Kind == models.SlotString {
		return p.String
	}
	return def
}

func (c *prefsCache) HasKey(key string) bool {
	_, ok := c.Entry(key)
	return ok
}

func (c *prefsCache) Entry(key string) (models.Preference, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.entries[key]
	return p, ok
}

func (c *prefsCache) DeleteKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	delete(c.dirty, key)
	if !c.cleared {
		c.deleted[key] = struct{}{}
	}
}

func (c *prefsCache) DeleteAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]models.Preference)
	c.dirty = make(map[string]struct{})
	c.deleted = make(map[string]struct{})
	c.cleared = true
}

func (c *prefsCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// all returns every entry ordered by key.
func (c *prefsCache) all() []models.Preference {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Preference, 0, len(c.entries))
	for _, p := range c.entries {
		out = append(out, p)
	}
	slices.SortFunc(out, byKey)
	return out
}

// takeChanges returns the pending changes and resets change tracking.
func (c *prefsCache) takeChanges() changeSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	cs := changeSet{cleared: c.cleared}
	for k := range c.dirty {
		cs.upserts = append(cs.upserts, c.entries[k])
	}
	for k := range c.deleted {
		cs.deletes = append(cs.deletes, k)
	}
	slices.SortFunc(cs.upserts, byKey)
	slices.Sort(cs.deletes)

	c.dirty = make(map[string]struct{})
	c.deleted = make(map[string]struct{})
	c.cleared = false
	return cs
}

// restoreChanges puts a failed change set back so the next flush retries
// it. Changes made after takeChanges win over the restored ones.
func (c *prefsCache) restoreChanges(cs changeSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cs.cleared {
		c.cleared = true
	}
	for _, k := range cs.deletes {
		if _, ok := c.entries[k]; !ok && !c.cleared {
			c.deleted[k] = struct{}{}
		}
	}
	for _, p := range cs.upserts {
		if _, ok := c.entries[p.Key]; ok {
			c.dirty[p.Key] = struct{}{}
		}
	}
}

func byKey(a, b models.Preference) int {
	return strings.Compare(a.Key, b.Key)
}
