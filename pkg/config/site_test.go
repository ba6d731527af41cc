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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSiteParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected Favorites
	}{
		{
			name: "full section",
			data: `baseURL = "https://site.example/"
[params.goretro]
enabled = true
endpoint = '"https://fav.example"'
token = "  tok  "
`,
			expected: Favorites{Enabled: true, Endpoint: "https://fav.example", Token: "tok"},
		},
		{
			name:     "missing section",
			data:     "baseURL = \"https://site.example/\"\n",
			expected: Favorites{},
		},
		{
			name: "string enabled",
			data: `[params.goretro]
enabled = "true"
endpoint = "https://fav.example"
`,
			expected: Favorites{Enabled: true, Endpoint: "https://fav.example"},
		},
		{
			name: "string false disables",
			data: `[params.goretro]
enabled = "false"
endpoint = "https://fav.example"
`,
			expected: Favorites{Enabled: false, Endpoint: "https://fav.example"},
		},
		{
			name: "zero string disables",
			data: `[params.goretro]
enabled = "0"
endpoint = "https://fav.example"
`,
			expected: Favorites{Enabled: false, Endpoint: "https://fav.example"},
		},
		{
			name: "empty string disables",
			data: `[params.goretro]
enabled = "  "
endpoint = "https://fav.example"
`,
			expected: Favorites{Enabled: false, Endpoint: "https://fav.example"},
		},
		{
			name: "quoted false disables",
			data: `[params.goretro]
enabled = "'false'"
endpoint = "https://fav.example"
`,
			expected: Favorites{Enabled: false, Endpoint: "https://fav.example"},
		},
		{
			name: "other string enables",
			data: `[params.goretro]
enabled = "yes please"
endpoint = "https://fav.example"
`,
			expected: Favorites{Enabled: true, Endpoint: "https://fav.example"},
		},
		{
			name: "unknown keys ignored",
			data: `[params.goretro]
enabled = true
endpoint = "https://fav.example"
theme = "dark"
`,
			expected: Favorites{Enabled: true, Endpoint: "https://fav.example"},
		},
		{
			name: "non-string endpoint ignored",
			data: `[params.goretro]
enabled = 1
endpoint = 42
`,
			expected: Favorites{Enabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSiteParams([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadSiteParams(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[params.goretro]\nenabled = true\nendpoint = \"http://x\"\n"), 0o600))

	fav, err := LoadSiteParams(path)
	require.NoError(t, err)
	assert.True(t, fav.Configured())

	_, err = LoadSiteParams(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = ParseSiteParams([]byte("[params"))
	require.Error(t, err)
}
