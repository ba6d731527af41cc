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

package fixtures

import "github.com/goretro/catalog/pkg/catalog"

// Common catalog fixtures for use in tests

// NewSuperMarioWorld creates a sample SNES catalog item
func NewSuperMarioWorld() catalog.Item {
	return catalog.Item{
		Name:        "Super Mario World",
		Path:        "/roms/snes/Super Mario World (USA).sfc",
		MD5:         "cdd3c8c37322978ca8669b34bc89c804",
		System:      "snes",
		Region:      "US",
		Genre:       "Platform",
		Publisher:   "Nintendo",
		Developer:   "Nintendo EAD",
		ReleaseDate: "19901121",
		Description: "Mario and Luigi explore Dinosaur Land to rescue Princess Toadstool.",
		Rating:      "4.5",
	}
}

// NewZeldaLinkToThePast creates a sample SNES catalog item
func NewZeldaLinkToThePast() catalog.Item {
	return catalog.Item{
		Name:        "The Legend of Zelda: A Link to the Past",
		Path:        "/roms/snes/Zelda - A Link to the Past (Japan).sfc",
		MD5:         "608c22b8ff930c62dc2de54bcd6eba72",
		System:      "snes",
		Region:      "jp",
		Genre:       "Adventure",
		Publisher:   "Nintendo",
		Developer:   "Nintendo EAD",
		ReleaseDate: "19911121",
		Description: "Link sets out to save Hyrule from the wizard Agahnim.",
		Rating:      "9",
	}
}

// NewStreetsOfRage2 creates a sample Mega Drive catalog item with no rating
func NewStreetsOfRage2() catalog.Item {
	return catalog.Item{
		Name:        "Streets of Rage 2",
		Path:        "/roms/megadrive/Streets of Rage 2 (Europe).md",
		MD5:         "e2ef6b7ad1c1b9e6a5e3c1b09e5f2d6a",
		System:      "megadrive",
		Region:      "EU",
		Genre:       "Beat'em Up",
		Publisher:   "Sega",
		Developer:   "Ancient",
		Description: "Axel, Blaze, Max and Skate take the fight to Mr. X.",
	}
}

// NewBlankItem creates an entry with no name, as sometimes produced by
// scrapers; it must never show up in a view.
func NewBlankItem() catalog.Item {
	return catalog.Item{
		Name:   "  ",
		Path:   "/roms/snes/unknown.sfc",
		MD5:    "00000000000000000000000000000000",
		System: "snes",
	}
}

// SNESItems returns the SNES snapshot used across tests
func SNESItems() []catalog.Item {
	return []catalog.Item{NewZeldaLinkToThePast(), NewSuperMarioWorld(), NewBlankItem()}
}

// AllItems returns the aggregate snapshot used across tests
func AllItems() []catalog.Item {
	return append(SNESItems(), NewStreetsOfRage2())
}

// SystemIndex returns the raw system index as written by the site build
func SystemIndex() []map[string]any {
	return []map[string]any{
		{"id": "all", "name": "All Systems", "gameCount": 3},
		{"id": "snes", "name": "Super Nintendo", "gameCount": 2, "color": "purple"},
		{"id": "megadrive", "name": "Mega Drive", "gameCount": 1},
	}
}
