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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAccessors_NoRecursiveLock guards against accessors calling each other
// while holding the lock. With -tags=deadlock, go-deadlock panics on
// recursive locks.
func TestAccessors_NoRecursiveLock(t *testing.T) {
	t.Parallel()

	cfg := NewInMemory(Values{
		GoRetro: Favorites{Endpoint: "'https://fav.example'", Enabled: true},
		Catalog: Catalog{BaseURL: "https://roms.example/", RequestTimeout: "5s"},
	})

	done := make(chan struct{})
	go func() {
		_ = cfg.Favorites()
		_ = cfg.CatalogBaseURL()
		_ = cfg.RequestTimeout()
		_, _ = cfg.ErrorReporting()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("config accessors deadlocked")
	}
}

// TestFavorites_ConcurrentAccess verifies readers and writers can interleave.
func TestFavorites_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cfg := NewInMemory(Values{})

	done := make(chan struct{})
	for i := range 10 {
		go func() {
			for range 100 {
				if i%2 == 0 {
					cfg.SetFavorites(Favorites{Endpoint: "https://fav.example", Enabled: true})
				} else {
					_ = cfg.Favorites().Configured()
				}
			}
			done <- struct{}{}
		}()
	}

	for range 10 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent access deadlocked")
		}
	}

	assert.True(t, cfg.Favorites().Configured())
}
