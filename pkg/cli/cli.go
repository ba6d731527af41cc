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
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goretro/catalog/internal/telemetry"
	"github.com/goretro/catalog/pkg/catalog"
	"github.com/goretro/catalog/pkg/config"
	"github.com/goretro/catalog/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Flags struct {
	fs           *flag.FlagSet
	ConfigDir    *string
	Site         *string
	System       *string
	Search       *string
	Genre        *string
	Publisher    *string
	FilterSystem *string
	Regions      *string
	Sort         *string
	Format       *string
	Toggle       *string
	Page         *int
	PageSize     *int
	Favorites    *bool
	ListSystems  *bool
	Watch        *bool
	Version      *bool
}

// SetupFlags defines all CLI flags on fs, or the process flag set when fs
// is nil.
func SetupFlags(fs *flag.FlagSet) *Flags {
	if fs == nil {
		fs = flag.CommandLine
	}
	return &Flags{
		fs: fs,
		ConfigDir: fs.String(
			"config",
			"",
			"directory holding goretro.toml and auth.toml",
		),
		Site: fs.String(
			"site",
			"",
			"read favorites settings from [params.goretro] in a Hugo config.toml",
		),
		System: fs.String(
			"system",
			"",
			"system to browse (default from config)",
		),
		Search: fs.String(
			"search",
			"",
			"case-insensitive search in name, description and developer",
		),
		Genre: fs.String(
			"genre",
			catalog.Wildcard,
			"only show this genre",
		),
		Publisher: fs.String(
			"publisher",
			catalog.Wildcard,
			"only show this publisher",
		),
		FilterSystem: fs.String(
			"filter-system",
			catalog.Wildcard,
			"only show this system when browsing all systems",
		),
		Regions: fs.String(
			"regions",
			"",
			"comma separated regions to show, e.g. us,jp",
		),
		Favorites: fs.Bool(
			"favorites",
			false,
			"only show favorites",
		),
		Sort: fs.String(
			"sort",
			string(catalog.SortName),
			"sort order: name, releasedate or rating",
		),
		Page: fs.Int(
			"page",
			1,
			"page to print",
		),
		PageSize: fs.Int(
			"page-size",
			50,
			"items per page, 0 for everything",
		),
		Format: fs.String(
			"format",
			string(FormatTable),
			"output format: table, json or csv",
		),
		ListSystems: fs.Bool(
			"list-systems",
			false,
			"print the system index and exit",
		),
		Toggle: fs.String(
			"toggle",
			"",
			"toggle the favorite status of the named item",
		),
		Watch: fs.Bool(
			"watch",
			false,
			"reprint whenever the snapshot directory is rebuilt",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and actions any immediate flags that don't require the
// environment to be set up. It returns true when the program should exit.
func (f *Flags) Pre(out io.Writer, args []string) (bool, error) {
	if err := f.fs.Parse(args); err != nil {
		return true, fmt.Errorf("error parsing flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "GoRetro Catalog v%s\n", config.AppVersion)
		return true, nil
	}

	if f.isFlagPassed("toggle") && strings.TrimSpace(*f.Toggle) == "" {
		return true, errors.New("toggle flag requires a value")
	}
	if *f.Watch && *f.ListSystems {
		return true, errors.New("watch and list-systems can't be combined")
	}

	return false, nil
}

// Filter builds the catalog filter described by the flags.
func (f *Flags) Filter() (catalog.Filter, error) {
	sortKey, ok := catalog.ParseSortKey(*f.Sort)
	if !ok {
		return catalog.Filter{}, fmt.Errorf("unknown sort order: %s", *f.Sort)
	}

	filter := catalog.DefaultFilter()
	filter.Search = *f.Search
	filter.Genre = *f.Genre
	filter.Publisher = *f.Publisher
	filter.System = *f.FilterSystem
	filter.Sort = sortKey
	filter.FavoritesOnly = *f.Favorites

	for _, region := range strings.Split(*f.Regions, ",") {
		if region = strings.TrimSpace(region); region != "" {
			filter.ToggleLanguage(region)
		}
	}

	return filter, nil
}

// SystemID is the system to browse: the flag when passed, otherwise the
// configured default.
func (f *Flags) SystemID(cfg *config.Instance) string {
	if f.isFlagPassed("system") && *f.System != "" {
		return *f.System
	}
	return cfg.DefaultSystem()
}

// Setup initializes logging and the user config. Extra log writers (stderr
// for interactive use) are passed in writers.
//
//nolint:gocritic // config struct copied for immutability
func Setup(configDir string, defaultConfig config.Values, writers []io.Writer) (*config.Instance, error) {
	if err := helpers.InitLogging(helpers.LogDir(), writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	if configDir == "" {
		configDir = helpers.ConfigDir()
	}

	cfg, err := config.NewConfig(configDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// opt-in error reporting
	opts, reporting := telemetry.OptionsFromConfig(cfg)
	if err := telemetry.Init(reporting, opts); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	return cfg, nil
}

// ApplySite overrides the favorites settings of cfg with the
// [params.goretro] section of a Hugo site config.
func ApplySite(cfg *config.Instance, path string) error {
	favs, err := config.LoadSiteParams(path)
	if err != nil {
		return fmt.Errorf("error loading site params: %w", err)
	}
	cfg.SetFavorites(favs)
	log.Info().
		Str("site", path).
		Bool("configured", favs.Configured()).
		Msg("using favorites settings from site config")
	return nil
}
