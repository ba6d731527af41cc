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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/goretro/catalog/pkg/config"
	"github.com/goretro/catalog/pkg/favorites"
	"github.com/goretro/catalog/pkg/shared/httpclient"
	"github.com/goretro/catalog/pkg/widget"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const suggestionCount = 3

var (
	ErrNoSource              = errors.New("no catalog source configured, set catalog.base_url or catalog.snapshot_dir")
	ErrFavoritesUnconfigured = errors.New("favorites service is not configured")
	ErrItemNotFound          = errors.New("item not found")
	ErrToggleFailed          = errors.New("favorite toggle was not confirmed")
	ErrWatchNeedsSnapshotDir = errors.New("watch requires catalog.snapshot_dir")
)

// NewSource picks the snapshot source: a local snapshot directory when one
// is configured, otherwise the published site.
func NewSource(cfg *config.Instance, fs afero.Fs) (catalog.Source, error) {
	if dir := cfg.SnapshotDir(); dir != "" {
		return catalog.NewFSSource(fs, dir), nil
	}
	if base := cfg.CatalogBaseURL(); base != "" {
		return catalog.NewHTTPSource(base, httpclient.NewClientFromConfig(cfg)), nil
	}
	return nil, ErrNoSource
}

// Env is what Run needs from the process.
type Env struct {
	Cfg      *config.Instance
	Out      io.Writer
	Fs       afero.Fs
	Registry prometheus.Registerer
}

// Run mounts a catalog session for the flags and actions them: list the
// systems, toggle a favorite, or print the filtered view (once, or on
// every snapshot rebuild with -watch).
func Run(ctx context.Context, env Env, f *Flags) error {
	format, err := ParseFormat(*f.Format)
	if err != nil {
		return err
	}
	filter, err := f.Filter()
	if err != nil {
		return err
	}
	if *f.Watch && env.Cfg.SnapshotDir() == "" {
		return ErrWatchNeedsSnapshotDir
	}

	source, err := NewSource(env.Cfg, env.Fs)
	if err != nil {
		return err
	}

	client := favorites.NewClient(
		env.Cfg.Favorites,
		favorites.WithHTTPClient(httpclient.NewClientFromConfig(env.Cfg)),
		favorites.WithMetrics(env.Registry),
	)

	w := widget.New(catalog.NewStore(source), client, widget.WithInitialSystem(f.SystemID(env.Cfg)))
	if err := w.Mount(ctx); err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}
	w.SetFilter(filter)

	switch {
	case *f.ListSystems:
		return RenderSystems(env.Out, format, w.Store().Systems())
	case *f.Toggle != "":
		return toggle(ctx, env.Out, w, client, *f.Toggle)
	}

	if err := printView(env.Out, format, w, *f.Page, *f.PageSize); err != nil {
		return err
	}
	if !*f.Watch {
		return nil
	}

	root := env.Cfg.SnapshotDir()
	log.Info().Str("dir", root).Msg("watching snapshots")
	err = catalog.WatchSnapshots(ctx, root, func(system string) {
		w.SnapshotChanged(ctx, system)
		if system != "" && system != w.Store().System() {
			return
		}
		if err := printView(env.Out, format, w, *f.Page, *f.PageSize); err != nil {
			log.Error().Err(err).Msg("error printing catalog")
		}
	})
	if err != nil {
		return fmt.Errorf("error watching snapshots: %w", err)
	}
	return nil
}

// BuildResult pages the session's current view.
func BuildResult(w *widget.Widget, page, size int) *Result {
	view := w.View()
	res := &Result{
		System:      w.Store().CurrentSystem(),
		Page:        catalog.Paginate(view, page, size),
		Favorites:   []string{},
		SystemNames: make(map[string]string),
	}

	for i := range res.Items {
		item := &res.Items[i]
		if w.IsFavorite(item) {
			res.Favorites = append(res.Favorites, item.Name)
		}
		if item.System != "" {
			res.SystemNames[item.System] = w.Store().SystemName(item.System)
		}
	}

	if search := w.Filter().Search; len(view) == 0 && strings.TrimSpace(search) != "" {
		res.Suggestions = catalog.Suggest(w.Store().Items(), search, suggestionCount)
	}
	return res
}

func printView(out io.Writer, format Format, w *widget.Widget, page, size int) error {
	return RenderResult(out, format, BuildResult(w, page, size))
}

// findItem matches name exactly, then case-insensitively.
func findItem(items []catalog.Item, name string) (catalog.Item, bool) {
	name = strings.TrimSpace(name)
	for i := range items {
		if items[i].Name == name {
			return items[i], true
		}
	}
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			return items[i], true
		}
	}
	return catalog.Item{}, false
}

func toggle(ctx context.Context, out io.Writer, w *widget.Widget, client favorites.Service, name string) error {
	if !client.IsConfigured() {
		return ErrFavoritesUnconfigured
	}

	item, ok := findItem(w.Store().Items(), name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}

	favorite, ok := w.ToggleFavorite(ctx, &item)
	if !ok {
		return fmt.Errorf("%w: %s", ErrToggleFailed, item.Name)
	}

	if favorite {
		_, _ = fmt.Fprintf(out, "%s %s added to favorites\n", favoriteMark, item.Name)
	} else {
		_, _ = fmt.Fprintf(out, "%s removed from favorites\n", item.Name)
	}
	return nil
}

// LogMetrics writes the current value of every counter in g to the debug
// log.
func LogMetrics(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("error gathering metrics")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := log.Debug().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			ev.Float64("value", m.GetCounter().GetValue()).Msg("metric")
		}
	}
}
