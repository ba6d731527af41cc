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
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Wildcard selects every value of a filter dimension.
const Wildcard = "all"

// SortKey selects the single active sort order.
type SortKey string

const (
	SortName        SortKey = "name"
	SortReleaseDate SortKey = "releasedate"
	SortRating      SortKey = "rating"
)

// ParseSortKey accepts the sort names used by the widget, case-insensitively.
// Unknown names fall back to SortName.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "":
		return SortName, true
	case "releasedate", "release_date", "date":
		return SortReleaseDate, true
	case "rating":
		return SortRating, true
	default:
		return SortName, false
	}
}

// Favorites is the favorites lookup the filter needs.
type Favorites interface {
	Has(system, name string) bool
}

// Filter is the widget's filter and sort state.
type Filter struct {
	Search    string
	Genre     string
	Publisher string
	// System narrows the aggregate "all systems" view to one system.
	System string
	// Languages holds lower-cased regions; empty means every region.
	Languages     []string
	Sort          SortKey
	FavoritesOnly bool
}

// DefaultFilter is the state the widget starts in and resets to.
func DefaultFilter() Filter {
	return Filter{
		Genre:     Wildcard,
		Publisher: Wildcard,
		System:    Wildcard,
		Sort:      SortName,
	}
}

// Reset restores the default state.
func (f *Filter) Reset() {
	*f = DefaultFilter()
}

// ToggleLanguage adds lang to the selected regions, or removes it if it is
// already selected.
func (f *Filter) ToggleLanguage(lang string) {
	lang = strings.ToLower(lang)
	if idx := slices.Index(f.Languages, lang); idx >= 0 {
		f.Languages = slices.Delete(slices.Clone(f.Languages), idx, idx+1)
		return
	}
	f.Languages = append(slices.Clone(f.Languages), lang)
}

// ToggleAllLanguages selects every available region, or clears the
// selection back to "all regions" if they were all selected already.
func (f *Filter) ToggleAllLanguages(available []string) {
	if len(f.Languages) == len(available) {
		f.Languages = nil
		return
	}
	f.Languages = slices.Clone(available)
}

func isWildcard(s string) bool {
	return s == "" || s == Wildcard
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Match reports whether item passes every filter predicate. favs may be nil
// when favorites aren't available, in which case FavoritesOnly matches
// nothing. fallbackSystem is used as the item's system for the favorites
// lookup when the item doesn't carry one.
func (f *Filter) Match(item *Item, favs Favorites, fallbackSystem string) bool {
	if isBlank(item.Name) {
		return false
	}

	if !isBlank(f.Search) {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) &&
			!strings.Contains(strings.ToLower(item.Developer), term) {
			return false
		}
	}

	if !isWildcard(f.Genre) && f.Genre != item.Genre {
		return false
	}

	if !isWildcard(f.Publisher) && f.Publisher != item.Publisher {
		return false
	}

	if !isWildcard(f.System) && f.System != item.System {
		return false
	}

	if len(f.Languages) > 0 && !slices.Contains(f.Languages, Wildcard) {
		if item.Region == "" || !slices.Contains(f.Languages, strings.ToLower(item.Region)) {
			return false
		}
	}

	if f.FavoritesOnly {
		key := item.Key(fallbackSystem)
		if favs == nil || !favs.Has(key.System, key.Name) {
			return false
		}
	}

	return true
}

// Apply returns the items passing f, sorted by f.Sort. The input slice is
// not modified.
func (f *Filter) Apply(items []Item, favs Favorites, fallbackSystem string) []Item {
	out := make([]Item, 0, len(items))
	for i := range items {
		if f.Match(&items[i], favs, fallbackSystem) {
			out = append(out, items[i])
		}
	}
	SortItems(out, f.Sort)
	return out
}

// ReleaseSortValue is the date used for sorting; missing dates sort as "0".
func ReleaseSortValue(item *Item) string {
	if item.ReleaseDate == "" {
		return "0"
	}
	return item.ReleaseDate
}

// RatingValue parses the item rating; a missing or unparseable rating is 0.
func RatingValue(item *Item) float64 {
	if item.Rating == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(item.Rating), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// SortItems sorts items in place and stably:
// name ascending by locale collation, release date newest first, rating
// highest first.
func SortItems(items []Item, key SortKey) {
	switch key {
	case SortReleaseDate:
		slices.SortStableFunc(items, func(a, b Item) int {
			return strings.Compare(ReleaseSortValue(&b), ReleaseSortValue(&a))
		})
	case SortRating:
		slices.SortStableFunc(items, func(a, b Item) int {
			return cmp.Compare(RatingValue(&b), RatingValue(&a))
		})
	default:
		// collators keep internal buffers and aren't safe to share
		c := collate.New(language.Und)
		slices.SortStableFunc(items, func(a, b Item) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
}
