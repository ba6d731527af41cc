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
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// siteConfig is the part of a Hugo site config.toml that the site injects
// into its pages for the catalog widget.
type siteConfig struct {
	Params struct {
		GoRetro map[string]any `toml:"goretro"`
	} `toml:"params"`
}

// LoadSiteParams reads [params.goretro] from a Hugo site config file.
// A missing section yields a disabled, empty Favorites value.
func LoadSiteParams(path string) (Favorites, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI user
	if err != nil {
		return Favorites{}, fmt.Errorf("failed to read site config: %w", err)
	}
	return ParseSiteParams(data)
}

// ParseSiteParams is LoadSiteParams on already loaded file contents.
func ParseSiteParams(data []byte) (Favorites, error) {
	var site siteConfig
	if err := toml.Unmarshal(data, &site); err != nil {
		return Favorites{}, fmt.Errorf("failed to parse site config: %w", err)
	}

	raw := site.Params.GoRetro
	if raw == nil {
		return Favorites{}, nil
	}

	var fav Favorites
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fav,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			siteBoolHook(),
			siteStringHook(),
		),
	})
	if err != nil {
		return Favorites{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Favorites{}, fmt.Errorf("failed to decode site params: %w", err)
	}

	return fav.Normalized(), nil
}

// siteBoolHook follows the loose boolean coercion the site templates rely
// on: any non-empty string other than "false"/"0" counts as enabled.
func siteBoolHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
			return data, nil
		}

		str, ok := data.(string)
		if !ok {
			return false, nil
		}
		s := NormalizeValue(str)
		if s == "" {
			return false, nil
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		return true, nil
	}
}

// siteStringHook drops non-string values for string fields, so a stray
// `endpoint = 42` leaves the endpoint unset.
func siteStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to.Kind() != reflect.String || from.Kind() == reflect.String {
			return data, nil
		}
		return "", nil
	}
}
