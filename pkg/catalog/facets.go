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
	"sort"
	"strings"
)

// Facets are the distinct values offered by the filter controls. They are
// computed from the whole loaded list, not the filtered view.
type Facets struct {
	Systems    []string `json:"systems"`
	Regions    []string `json:"regions"`
	Genres     []string `json:"genres"`
	Publishers []string `json:"publishers"`
}

// ComputeFacets collects the distinct non-blank systems, lower-cased
// regions, genres and publishers of items, each sorted ascending.
func ComputeFacets(items []Item) Facets {
	systems := make(map[string]struct{})
	regions := make(map[string]struct{})
	genres := make(map[string]struct{})
	publishers := make(map[string]struct{})

	for i := range items {
		item := &items[i]
		if !isBlank(item.System) {
			systems[item.System] = struct{}{}
		}
		if !isBlank(item.Region) {
			regions[strings.ToLower(item.Region)] = struct{}{}
		}
		if !isBlank(item.Genre) {
			genres[item.Genre] = struct{}{}
		}
		if !isBlank(item.Publisher) {
			publishers[item.Publisher] = struct{}{}
		}
	}

	return Facets{
		Systems:    sortedKeys(systems),
		Regions:    sortedKeys(regions),
		Genres:     sortedKeys(genres),
		Publishers: sortedKeys(publishers),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// regionNames are the labels shown for the common region codes.
var regionNames = map[string]string{
	"us":  "🇺🇸 USA",
	"fr":  "🇫🇷 France",
	"jp":  "🇯🇵 Japan",
	"eu":  "🇪🇺 Europe",
	"uk":  "🇬🇧 UK",
	"de":  "🇩🇪 Germany",
	"es":  "🇪🇸 Spain",
	"it":  "🇮🇹 Italy",
	"wor": "🌍 World",
	"ss":  "🎮 System",
}

// RegionLabel returns the display label of a region code, or the upper-cased
// code for unknown regions.
func RegionLabel(region string) string {
	lower := strings.ToLower(region)
	if name, ok := regionNames[lower]; ok {
		return name
	}
	return strings.ToUpper(region)
}
