// GoRetro Catalog
// Copyright (c) 2026 The GoRetro Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of GoRetro Catalog.
//
// GoRetro Catalog is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoRetro Catalog is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoRetro Catalog.  If not, see <http://www.gnu.org/licenses/>.

package catalog

import (
	"context"
	"slices"

	"github.com/goretro/catalog/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// Store holds the selected system's item list and the system index.
//
// Every SelectSystem call takes a new generation number; a load that
// finishes after a newer one has started is discarded, so a slow response
// for a previously selected system can't overwrite the current list.
type Store struct {
	source     Source
	system     string
	items      []Item
	systems    []System
	generation uint64
	loading    bool
	mu         syncutil.RWMutex
}

// NewStore creates an empty store for source. No system is loaded until
// SelectSystem is called.
func NewStore(source Source) *Store {
	return &Store{
		source:  source,
		items:   []Item{},
		systems: []System{AllSystemsEntry()},
	}
}

// SelectSystem makes system current and loads its items. Failures are
// logged and leave an empty list. The result reports whether this load was
// still current when it finished.
func (s *Store) SelectSystem(ctx context.Context, system string) bool {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.system = system
	s.loading = true
	s.mu.Unlock()

	items, err := s.source.Items(ctx, system)
	if err != nil {
		log.Error().Err(err).Str("system", system).Msg("failed to load catalog items")
		items = []Item{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		log.Debug().
			Str("system", system).
			Uint64("generation", gen).
			Uint64("current", s.generation).
			Msg("discarding stale catalog load")
		return false
	}

	s.items = items
	s.loading = false
	log.Info().Str("system", system).Int("items", len(items)).Msg("catalog loaded")
	return true
}

// Reload re-fetches the current system.
func (s *Store) Reload(ctx context.Context) bool {
	return s.SelectSystem(ctx, s.System())
}

// LoadSystems loads the system index. On failure the index falls back to the
// single "All Systems" entry.
func (s *Store) LoadSystems(ctx context.Context) []System {
	systems, err := s.source.Systems(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load systems")
		systems = []System{AllSystemsEntry()}
	}

	s.mu.Lock()
	s.systems = systems
	s.mu.Unlock()

	return slices.Clone(systems)
}

// System is the currently selected system id.
func (s *Store) System() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.system
}

// Loading reports whether the current system's load is still running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Items returns the loaded items. The slice must not be modified.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Systems returns a copy of the system index.
func (s *Store) Systems() []System {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.systems)
}

// CurrentSystem returns the descriptor of the selected system, or the
// aggregate entry when the id isn't in the index.
func (s *Store) CurrentSystem() System {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sys := range s.systems {
		if sys.ID == s.system {
			return sys
		}
	}
	return AllSystemsEntry()
}

// SystemName returns the display name for id, or id itself if unknown.
func (s *Store) SystemName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sys := range s.systems {
		if sys.ID == id {
			return sys.Name
		}
	}
	return id
}
