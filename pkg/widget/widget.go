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

// Package widget is a catalog browsing session: the selected system's
// items, the filter state, and the user's favorites kept in sync with the
// favorites service.
package widget

import (
	"context"
	"fmt"
	"slices"

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/goretro/catalog/pkg/favorites"
	"github.com/goretro/catalog/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Widget is one browsing session. All methods are safe for concurrent use.
type Widget struct {
	store    *catalog.Store
	service  favorites.Service
	cache    favorites.Map
	toggles  *syncutil.InFlight[catalog.Key]
	initial  string
	filter   catalog.Filter
	hydrated bool
	mu       syncutil.RWMutex
}

// Option configures a Widget.
type Option func(*Widget)

// WithInitialSystem sets the system loaded by Mount. Defaults to the
// aggregate "all" system.
func WithInitialSystem(id string) Option {
	return func(w *Widget) {
		if id != "" {
			w.initial = id
		}
	}
}

// New creates a session over store. service may be nil, in which case
// favorites are unavailable.
func New(store *catalog.Store, service favorites.Service, opts ...Option) *Widget {
	w := &Widget{
		store:   store,
		service: service,
		cache:   favorites.NewMap(),
		toggles: syncutil.NewInFlight[catalog.Key](),
		initial: catalog.AllSystems,
		filter:  catalog.DefaultFilter(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Store is the catalog store behind the session.
func (w *Widget) Store() *catalog.Store {
	return w.store
}

func (w *Widget) favoritesConfigured() bool {
	return w.service != nil && w.service.IsConfigured()
}

// Mount loads the system index, the initial system's items and, when the
// favorites service is configured, the favorites map. The three loads run
// concurrently and none of them fails the mount; only cancellation of ctx
// is reported.
func (w *Widget) Mount(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		w.store.LoadSystems(ctx)
		return nil
	})
	g.Go(func() error {
		w.store.SelectSystem(ctx, w.initial)
		return nil
	})
	g.Go(func() error {
		w.HydrateFavorites(ctx)
		return nil
	})

	// each load logs and absorbs its own failure
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mount: %w", err)
	}

	log.Info().
		Str("system", w.store.System()).
		Int("items", len(w.store.Items())).
		Bool("favorites", w.Hydrated()).
		Msg("widget mounted")
	return nil
}

// HydrateFavorites replaces the cached favorites with the service's full
// map. It does nothing and returns false when the service isn't
// configured.
func (w *Widget) HydrateFavorites(ctx context.Context) bool {
	if !w.favoritesConfigured() {
		log.Debug().Msg("favorites service not configured, skipping hydrate")
		return false
	}

	favs := w.service.GetAllFavorites(ctx)
	if favs == nil {
		favs = favorites.NewMap()
	}

	w.mu.Lock()
	w.cache = favs
	w.hydrated = true
	w.mu.Unlock()

	log.Debug().Int("favorites", favs.Len()).Msg("favorites hydrated")
	return true
}

// Hydrated reports whether favorites have been loaded from the service.
func (w *Widget) Hydrated() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hydrated
}

// SelectSystem switches to system and resets the system filter, which only
// applies to the aggregate view. It returns false if a newer selection
// superseded this one before it finished loading.
func (w *Widget) SelectSystem(ctx context.Context, system string) bool {
	w.mu.Lock()
	w.filter.System = catalog.Wildcard
	w.mu.Unlock()

	return w.store.SelectSystem(ctx, system)
}

// Reload re-fetches the current system's items.
func (w *Widget) Reload(ctx context.Context) bool {
	return w.store.Reload(ctx)
}

// SnapshotChanged reloads whatever a rewritten snapshot affects: the system
// index when system is "", the item list when system is the current one.
func (w *Widget) SnapshotChanged(ctx context.Context, system string) {
	switch system {
	case "":
		w.store.LoadSystems(ctx)
	case w.store.System():
		w.store.Reload(ctx)
	default:
		log.Debug().Str("system", system).Msg("ignoring snapshot change for other system")
	}
}

// SetFilter replaces the filter state.
func (w *Widget) SetFilter(f catalog.Filter) {
	f.Languages = slices.Clone(f.Languages)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.filter = f
}

// Filter returns a copy of the filter state.
func (w *Widget) Filter() catalog.Filter {
	w.mu.RLock()
	defer w.mu.RUnlock()
	f := w.filter
	f.Languages = slices.Clone(f.Languages)
	return f
}

// ResetFilter restores the default filter state.
func (w *Widget) ResetFilter() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filter.Reset()
}

// View returns the loaded items that pass the filter, sorted. The system
// filter is ignored unless the aggregate system is selected.
func (w *Widget) View() []catalog.Item {
	system := w.store.System()
	items := w.store.Items()

	w.mu.RLock()
	defer w.mu.RUnlock()

	f := w.filter
	if system != catalog.AllSystems {
		f.System = catalog.Wildcard
	}
	return f.Apply(items, w.cache, system)
}

// Facets returns the filter choices for the loaded items.
func (w *Widget) Facets() catalog.Facets {
	return catalog.ComputeFacets(w.store.Items())
}

// IsFavorite reports whether item is in the cached favorites.
func (w *Widget) IsFavorite(item *catalog.Item) bool {
	key := item.Key(w.store.System())

	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cache.Has(key.System, key.Name)
}

// Favorites returns a copy of the cached favorites.
func (w *Widget) Favorites() favorites.Map {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cache.Clone()
}

// Toggling reports whether a toggle for item is in flight.
func (w *Widget) Toggling(item *catalog.Item) bool {
	return w.toggles.Held(item.Key(w.store.System()))
}

// ToggleFavorite flips item's favorite status on the service. favorite is
// the item's status after the call and ok reports whether the service
// confirmed the change. The cache is only updated on confirmation.
//
// A toggle for an item that already has one in flight is dropped without
// a request and returns the current status with ok false.
func (w *Widget) ToggleFavorite(ctx context.Context, item *catalog.Item) (favorite, ok bool) {
	key := item.Key(w.store.System())

	if !w.toggles.TryAcquire(key) {
		log.Debug().Str("system", key.System).Str("name", key.Name).Msg("toggle already in flight")
		return w.isFavoriteKey(key), false
	}
	defer w.toggles.Release(key)

	// read under the toggle lock so a toggle that just settled is seen
	current := w.isFavoriteKey(key)

	if w.service == nil {
		return current, false
	}

	if !w.service.ToggleFavorite(ctx, key.System, key.Name, current) {
		log.Warn().Str("system", key.System).Str("name", key.Name).Msg("favorite toggle not confirmed")
		return current, false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if current {
		w.cache.Remove(key.System, key.Name)
	} else {
		w.cache.Add(key.System, key.Name)
	}
	return !current, true
}

func (w *Widget) isFavoriteKey(key catalog.Key) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cache.Has(key.System, key.Name)
}
