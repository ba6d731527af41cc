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

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

const (
	// minSuggestSimilarity is the Jaro-Winkler floor for a suggestion.
	minSuggestSimilarity = 0.75
	suggestTieBreakTopN  = 10
)

type suggestion struct {
	name       string
	lower      string
	similarity float32
	distance   int
}

// Suggest returns up to n item names close to term, for "did you mean"
// hints when a search matches nothing. Candidates are ranked by Jaro-Winkler
// similarity, then the best few are re-ranked by Damerau-Levenshtein
// distance to catch transposed letters.
func Suggest(items []Item, term string, n int) []string {
	query := strings.ToLower(strings.TrimSpace(term))
	if query == "" || n <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var matches []suggestion
	for i := range items {
		name := items[i].Name
		if isBlank(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		lower := strings.ToLower(name)
		similarity := edlib.JaroWinklerSimilarity(query, lower)
		if similarity < minSuggestSimilarity {
			continue
		}
		matches = append(matches, suggestion{name: name, lower: lower, similarity: similarity})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	top := matches
	if len(top) > suggestTieBreakTopN {
		top = top[:suggestTieBreakTopN]
	}
	for i := range top {
		top[i].distance = edlib.DamerauLevenshteinDistance(query, top[i].lower)
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].distance < top[j].distance
	})

	if len(top) > n {
		top = top[:n]
	}

	out := make([]string, 0, len(top))
	for _, m := range top {
		out = append(out, m.name)
	}

	log.Debug().Str("term", term).Strs("suggestions", out).Msg("search suggestions")
	return out
}
