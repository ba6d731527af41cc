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

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairKey struct {
	system string
	name   string
}

func TestInFlightAcquireRelease(t *testing.T) {
	t.Parallel()

	f := NewInFlight[pairKey]()
	key := pairKey{system: "snes", name: "Mario"}

	require.True(t, f.TryAcquire(key))
	assert.True(t, f.Held(key))
	assert.False(t, f.TryAcquire(key), "second acquire must fail while held")

	// different key is independent
	assert.True(t, f.TryAcquire(pairKey{system: "snes", name: "Zelda"}))
	assert.Equal(t, 2, f.Len())

	f.Release(key)
	assert.False(t, f.Held(key))
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.TryAcquire(key))
}

func TestInFlightReleaseUnheldIsNoop(t *testing.T) {
	t.Parallel()

	f := NewInFlight[string]()
	f.Release("missing")
	assert.Equal(t, 0, f.Len())
}

func TestInFlightZeroValue(t *testing.T) {
	t.Parallel()

	var f InFlight[string]
	assert.True(t, f.TryAcquire("a"))
	assert.False(t, f.TryAcquire("a"))
}

func TestInFlightConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	f := NewInFlight[string]()
	var wins atomic.Int32
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.TryAcquire("same") {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
