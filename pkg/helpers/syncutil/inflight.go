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

package syncutil

// InFlight tracks keys that currently have an operation running. It is used
// to drop duplicate requests rather than queue them: a second TryAcquire on a
// held key fails immediately.
//
// Keys are deleted on Release, so the set only ever holds the operations that
// are actually running.
type InFlight[K comparable] struct {
	keys map[K]struct{}
	mu   Mutex
}

// NewInFlight returns an empty in-flight set.
func NewInFlight[K comparable]() *InFlight[K] {
	return &InFlight[K]{keys: make(map[K]struct{})}
}

// TryAcquire marks key as in flight. It returns false if the key was
// already held.
func (f *InFlight[K]) TryAcquire(key K) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys == nil {
		f.keys = make(map[K]struct{})
	}
	if _, held := f.keys[key]; held {
		return false
	}
	f.keys[key] = struct{}{}
	return true
}

// Release clears key. Releasing a key that is not held is a no-op.
func (f *InFlight[K]) Release(key K) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
}

// Held reports whether key is currently in flight.
func (f *InFlight[K]) Held(key K) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, held := f.keys[key]
	return held
}

// Len returns the number of keys in flight.
func (f *InFlight[K]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}
