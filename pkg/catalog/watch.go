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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// WatchSnapshots calls onChange whenever the site build rewrites a snapshot
// under root/systems. The argument is the system id, or "" when the system
// index itself changed. It blocks until ctx is done.
func WatchSnapshots(ctx context.Context, root string, onChange func(system string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing snapshot watcher")
		}
	}()

	dir := filepath.Join(root, systemsDir)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			addWatch(watcher, filepath.Join(dir, e.Name()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("snapshot watcher error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleSnapshotEvent(watcher, dir, ev, onChange)
		}
	}
}

func addWatch(watcher *fsnotify.Watcher, path string) {
	if err := watcher.Add(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to watch snapshot directory")
	}
}

func handleSnapshotEvent(watcher *fsnotify.Watcher, dir string, ev fsnotify.Event, onChange func(string)) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}

	rel, err := filepath.Rel(dir, ev.Name)
	if err != nil {
		return
	}

	if ev.Has(fsnotify.Create) {
		if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
			addWatch(watcher, ev.Name)
			return
		} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			log.Debug().Err(statErr).Str("path", ev.Name).Msg("stat failed")
		}
	}

	if filepath.Base(rel) != indexFile {
		return
	}

	switch parent := filepath.Dir(rel); parent {
	case ".":
		onChange("")
	default:
		if filepath.Dir(parent) == "." {
			onChange(parent)
		}
	}
}
