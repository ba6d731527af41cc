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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/goretro/catalog/pkg/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	items := []catalog.Item{fixtures.NewSuperMarioWorld(), fixtures.NewStreetsOfRage2()}
	return &Result{
		System:      catalog.AllSystemsEntry(),
		Page:        catalog.Paginate(items, 1, 10),
		Favorites:   []string{"Super Mario World"},
		SystemNames: map[string]string{"snes": "Super Nintendo"},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"table", "JSON", " csv "} {
		_, err := ParseFormat(s)
		require.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	require.ErrorContains(t, err, "unknown output format")
}

func TestRenderResultTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RenderResult(&out, FormatTable, sampleResult()))

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, catalog.IconAll+" All Systems", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[2], "FAV"))
	assert.Contains(t, lines[3], favoriteMark)
	assert.Contains(t, lines[3], "Super Mario World")
	assert.Contains(t, lines[3], "11/21/1990")
	assert.Contains(t, lines[3], "Super Nintendo")
	assert.Contains(t, lines[3], catalog.RegionLabel("us"))
	assert.NotContains(t, lines[4], favoriteMark)
	assert.Contains(t, lines[4], "Unknown")
	assert.Contains(t, lines[4], "megadrive", "unnamed systems show their id")
	assert.Contains(t, lines[4], catalog.RegionLabel("eu"))
	assert.Contains(t, out.String(), "page 1/1, 2 items")
	assert.NotContains(t, out.String(), "did you mean")
}

func TestRenderResultSuggestions(t *testing.T) {
	t.Parallel()

	res := &Result{
		System:      catalog.AllSystemsEntry(),
		Page:        catalog.Paginate(nil, 1, 10),
		Suggestions: []string{"Super Mario World", "Super Metroid"},
	}

	var out bytes.Buffer
	require.NoError(t, RenderResult(&out, FormatTable, res))
	assert.Contains(t, out.String(), "did you mean: Super Mario World, Super Metroid\n")
}

func TestRenderResultJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RenderResult(&out, FormatJSON, sampleResult()))

	var decoded struct {
		System    catalog.System `json:"system"`
		Items     []catalog.Item `json:"items"`
		Favorites []string       `json:"favorites"`
		Page      int            `json:"page"`
		Pages     int            `json:"pages"`
		Total     int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, catalog.AllSystems, decoded.System.ID)
	assert.Len(t, decoded.Items, 2)
	assert.Equal(t, 1, decoded.Page)
	assert.Equal(t, 2, decoded.Total)
	assert.Equal(t, []string{"Super Mario World"}, decoded.Favorites)
	assert.NotContains(t, out.String(), "suggestions")
}

func TestRenderResultCSV(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RenderResult(&out, FormatCSV, sampleResult()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,path,md5,system,region,genre,publisher,developer,releasedate,rating", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Super Mario World,"))
	assert.NotContains(t, out.String(), "Dinosaur Land", "descriptions are not exported")
}

func TestRenderSystems(t *testing.T) {
	t.Parallel()

	systems := []catalog.System{
		catalog.AllSystemsEntry(),
		{ID: "snes", Name: "Super Nintendo", Icon: catalog.IconSystem, GameCount: 2},
	}

	var table bytes.Buffer
	require.NoError(t, RenderSystems(&table, FormatTable, systems))
	assert.Contains(t, table.String(), "snes")
	assert.Contains(t, table.String(), "Super Nintendo")

	var csvOut bytes.Buffer
	require.NoError(t, RenderSystems(&csvOut, FormatCSV, systems))
	lines := strings.Split(strings.TrimSpace(csvOut.String()), "\n")
	assert.Equal(t, "id,name,color,game_count", lines[0])
	assert.Equal(t, "snes,Super Nintendo,,2", lines[2])

	var jsonOut bytes.Buffer
	require.NoError(t, RenderSystems(&jsonOut, FormatJSON, systems))
	var decoded []catalog.System
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	assert.Equal(t, systems, decoded)
}
