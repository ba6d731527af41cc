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

// Package favorites is a client for the GoRetro favorites service and the
// in-memory favorites set it hydrates.
package favorites

import (
	"context"
	"slices"
	"sort"
)

// ActionResult is the service's reply to an add or remove.
type ActionResult struct {
	Message string `json:"message"`
	System  string `json:"system"`
	ROM     string `json:"rom"`
	Success bool   `json:"success"`
}

// Service is the favorites API used by the widget session.
type Service interface {
	IsConfigured() bool
	GetAllFavorites(ctx context.Context) Map
	GetSystemFavorites(ctx context.Context, system string) []string
	AddFavorite(ctx context.Context, system, name string) (ActionResult, bool)
	RemoveFavorite(ctx context.Context, system, name string) (ActionResult, bool)
	ToggleFavorite(ctx context.Context, system, name string, currentlyFavorite bool) bool
}

// Map is the set of favorited names per system. A missing system is the
// same as an empty set. The zero value is ready to use for reads; use
// NewMap or FromLists before calling Add.
type Map map[string]map[string]struct{}

func NewMap() Map {
	return make(Map)
}

// FromLists builds a Map from the service's wire shape, dropping duplicate
// and blank names.
func FromLists(lists map[string][]string) Map {
	m := NewMap()
	for system, names := range lists {
		for _, name := range names {
			if name == "" {
				continue
			}
			m.Add(system, name)
		}
	}
	return m
}

// Has reports whether name is a favorite of system.
func (m Map) Has(system, name string) bool {
	_, ok := m[system][name]
	return ok
}

// Add marks name as a favorite of system. Adding twice is a no-op.
func (m Map) Add(system, name string) {
	set, ok := m[system]
	if !ok {
		set = make(map[string]struct{})
		m[system] = set
	}
	set[name] = struct{}{}
}

// Remove unmarks name. The system key is dropped once its set is empty.
func (m Map) Remove(system, name string) {
	set, ok := m[system]
	if !ok {
		return
	}
	delete(set, name)
	if len(set) == 0 {
		delete(m, system)
	}
}

// Names returns the favorites of system, sorted.
func (m Map) Names(system string) []string {
	set := m[system]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Systems returns the systems with at least one favorite, sorted.
func (m Map) Systems() []string {
	systems := make([]string, 0, len(m))
	for system, set := range m {
		if len(set) > 0 {
			systems = append(systems, system)
		}
	}
	slices.Sort(systems)
	return systems
}

// Len is the total number of favorites across systems.
func (m Map) Len() int {
	n := 0
	for _, set := range m {
		n += len(set)
	}
	return n
}

// Lists converts back to the service's wire shape.
func (m Map) Lists() map[string][]string {
	out := make(map[string][]string, len(m))
	for system := range m {
		if names := m.Names(system); len(names) > 0 {
			out[system] = names
		}
	}
	return out
}

// Clone returns a deep copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for system, set := range m {
		cp := make(map[string]struct{}, len(set))
		for name := range set {
			cp[name] = struct{}{}
		}
		out[system] = cp
	}
	return out
}
