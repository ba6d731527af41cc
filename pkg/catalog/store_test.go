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

package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/goretro/catalog/pkg/testing/fixtures"
	"github.com/goretro/catalog/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInitialState(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(catalog.NewHTTPSource("http://127.0.0.1:0", nil))
	assert.Empty(t, store.Items())
	assert.False(t, store.Loading())
	assert.Equal(t, []catalog.System{catalog.AllSystemsEntry()}, store.Systems())
	assert.Equal(t, catalog.AllSystemsEntry(), store.CurrentSystem())
}

func TestStoreSelectSystem(t *testing.T) {
	t.Parallel()

	srv := helpers.NewMockSnapshotServer(t).
		WithSystems(fixtures.SystemIndex()).
		WithItems("snes", fixtures.SNESItems())
	store := catalog.NewStore(catalog.NewHTTPSource(srv.URL, nil))

	systems := store.LoadSystems(context.Background())
	require.Len(t, systems, 3)

	assert.True(t, store.SelectSystem(context.Background(), "snes"))
	assert.Equal(t, "snes", store.System())
	assert.False(t, store.Loading())
	assert.Len(t, store.Items(), 3)
	assert.Equal(t, "Super Nintendo", store.CurrentSystem().Name)
	assert.Equal(t, "Mega Drive", store.SystemName("megadrive"))
	assert.Equal(t, "gba", store.SystemName("gba"))
}

func TestStoreLoadFailureLeavesEmptyList(t *testing.T) {
	t.Parallel()

	srv := helpers.NewMockSnapshotServer(t).WithItems("snes", fixtures.SNESItems())
	store := catalog.NewStore(catalog.NewHTTPSource(srv.URL, nil))

	require.True(t, store.SelectSystem(context.Background(), "snes"))
	require.NotEmpty(t, store.Items())

	assert.True(t, store.SelectSystem(context.Background(), "nes"))
	assert.Empty(t, store.Items())
	assert.False(t, store.Loading())
}

func TestStoreSystemsFallback(t *testing.T) {
	t.Parallel()

	srv := helpers.NewMockSnapshotServer(t)
	store := catalog.NewStore(catalog.NewHTTPSource(srv.URL, nil))

	systems := store.LoadSystems(context.Background())
	assert.Equal(t, []catalog.System{catalog.AllSystemsEntry()}, systems)
	assert.Equal(t, []catalog.System{catalog.AllSystemsEntry()}, store.Systems())
}

func TestStoreDiscardsStaleLoad(t *testing.T) {
	t.Parallel()

	srv := helpers.NewMockSnapshotServer(t).
		WithItems("snes", fixtures.SNESItems()).
		WithItems("megadrive", []catalog.Item{fixtures.NewStreetsOfRage2()}).
		Block("snes")
	store := catalog.NewStore(catalog.NewHTTPSource(srv.URL, nil))

	done := make(chan bool, 1)
	go func() {
		done <- store.SelectSystem(context.Background(), "snes")
	}()

	require.Eventually(t, func() bool {
		return len(srv.Requests()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, store.Loading())

	require.True(t, store.SelectSystem(context.Background(), "megadrive"))
	srv.Release("snes")

	select {
	case current := <-done:
		assert.False(t, current, "slow load must report itself as stale")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stale load")
	}

	assert.Equal(t, "megadrive", store.System())
	require.Len(t, store.Items(), 1)
	assert.Equal(t, "Streets of Rage 2", store.Items()[0].Name)
	assert.False(t, store.Loading())
}

func TestStoreReload(t *testing.T) {
	t.Parallel()

	srv := helpers.NewMockSnapshotServer(t).WithItems("snes", []catalog.Item{fixtures.NewSuperMarioWorld()})
	store := catalog.NewStore(catalog.NewHTTPSource(srv.URL, nil))

	require.True(t, store.SelectSystem(context.Background(), "snes"))
	require.Len(t, store.Items(), 1)

	srv.WithItems("snes", fixtures.SNESItems())
	require.True(t, store.Reload(context.Background()))
	assert.Len(t, store.Items(), 3)
	assert.Len(t, srv.Requests(), 2)
}
