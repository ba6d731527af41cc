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

package examples

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/goretro/catalog/pkg/testing/fixtures"
	"github.com/goretro/catalog/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilesystemHelperUsage demonstrates how to build a site snapshot tree in
// memory and read it back through the catalog
func TestFilesystemHelperUsage(t *testing.T) {
	t.Parallel()
	t.Run("Snapshot Tree", func(t *testing.T) {
		t.Parallel()
		// Create in-memory filesystem helper
		fsh := helpers.NewMemoryFS()
		root := "/site/public"

		// The site build writes one index for systems and one per system
		require.NoError(t, fsh.WriteSystemIndex(root, fixtures.SystemIndex()))
		require.NoError(t, fsh.WriteItems(root, "snes", fixtures.SNESItems()))

		src := catalog.NewFSSource(fsh.Fs, root)

		systems, err := src.Systems(context.Background())
		require.NoError(t, err)
		assert.Len(t, systems, 3)

		items, err := src.Items(context.Background(), "snes")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("Store Over Snapshot Tree", func(t *testing.T) {
		t.Parallel()
		fsh := helpers.NewMemoryFS()
		root := "/site/public"

		require.NoError(t, fsh.WriteItems(root, "megadrive", []catalog.Item{fixtures.NewStreetsOfRage2()}))

		// Raw payloads are handy for malformed snapshots
		require.NoError(t, fsh.WriteRaw(filepath.Join(root, "systems", "nes", "index.json"), []byte(`{}`)))

		store := catalog.NewStore(catalog.NewFSSource(fsh.Fs, root))

		// Missing system index falls back to the aggregate entry
		systems := store.LoadSystems(context.Background())
		assert.Equal(t, []catalog.System{catalog.AllSystemsEntry()}, systems)

		require.True(t, store.SelectSystem(context.Background(), "megadrive"))
		assert.Len(t, store.Items(), 1)

		// Non-array payloads load as empty lists
		require.True(t, store.SelectSystem(context.Background(), "nes"))
		assert.Empty(t, store.Items())
	})
}
