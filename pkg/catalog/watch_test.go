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
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	seen map[string]int
	mu   sync.Mutex
}

func (r *changeRecorder) record(system string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[system]++
}

func (r *changeRecorder) has(system string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[system] > 0
}

func TestWatchSnapshots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	systems := filepath.Join(root, "systems")
	require.NoError(t, os.MkdirAll(filepath.Join(systems, "snes"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(systems, "index.json"), []byte("[]"), 0o600))

	rec := &changeRecorder{seen: make(map[string]int)}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	errCh := make(chan error, 1)
	go func() {
		errCh <- catalog.WatchSnapshots(ctx, root, rec.record)
	}()

	// the watcher starts asynchronously, so keep rewriting until it notices
	snesIndex := filepath.Join(systems, "snes", "index.json")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(snesIndex, []byte("[]"), 0o600)
		return rec.has("snes")
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(systems, "index.json"), []byte("[]"), 0o600)
		return rec.has("")
	}, 5*time.Second, 20*time.Millisecond)

	// systems added after start are picked up too
	require.NoError(t, os.MkdirAll(filepath.Join(systems, "nes"), 0o750))
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(systems, "nes", "index.json"), []byte("[]"), 0o600)
		return rec.has("nes")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchSnapshotsMissingDir(t *testing.T) {
	t.Parallel()

	err := catalog.WatchSnapshots(context.Background(), t.TempDir(), func(string) {})
	require.Error(t, err)
}
