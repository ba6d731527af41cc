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

// Package catalog loads the per-system game lists published by the site
// build and derives the filtered, sorted views the catalog widget shows.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/goretro/catalog/pkg/config"
)

// AllSystems is the id of the aggregate catalog containing every system.
const AllSystems = config.AllSystems

const (
	AllSystemsName = "All Systems"
	IconAll        = "🎮"
	IconSystem     = "🕹️"
)

var (
	ErrNotFound      = errors.New("snapshot not found")
	ErrInvalidSystem = errors.New("invalid system id")
)

// Item is one game in a system's snapshot. The JSON names match the files
// written by the site build.
type Item struct {
	Name        string `json:"name" csv:"name"`
	Path        string `json:"path" csv:"path"`
	MD5         string `json:"md5" csv:"md5"`
	System      string `json:"system,omitempty" csv:"system"`
	Hash        string `json:"hash,omitempty" csv:"-"`
	GenreID     string `json:"genreid,omitempty" csv:"-"`
	Region      string `json:"region,omitempty" csv:"region"`
	Genre       string `json:"genre,omitempty" csv:"genre"`
	Publisher   string `json:"publisher,omitempty" csv:"publisher"`
	Developer   string `json:"developer,omitempty" csv:"developer"`
	ReleaseDate string `json:"releasedate,omitempty" csv:"releasedate"`
	Thumbnail   string `json:"thumbnail,omitempty" csv:"-"`
	Image       string `json:"image,omitempty" csv:"-"`
	Description string `json:"desc,omitempty" csv:"-"`
	Rating      string `json:"rating,omitempty" csv:"rating"`
}

// Key identifies an item for favorites: a name is unique within its system.
type Key struct {
	System string
	Name   string
}

// Key returns the favorites key of the item. Items in a single-system
// snapshot may omit System, in which case fallback is used.
func (i *Item) Key(fallback string) Key {
	system := i.System
	if system == "" {
		system = fallback
	}
	return Key{System: system, Name: i.Name}
}

// System is a selectable catalog partition.
type System struct {
	ID        string `json:"id" csv:"id"`
	Name      string `json:"name" csv:"name"`
	Icon      string `json:"icon" csv:"-"`
	Color     string `json:"color,omitempty" csv:"color"`
	GameCount int    `json:"gameCount,omitempty" csv:"game_count"`
}

// AllSystemsEntry is the aggregate system descriptor, also used when the
// system index can't be loaded.
func AllSystemsEntry() System {
	return System{ID: AllSystems, Name: AllSystemsName, Icon: IconAll}
}

func systemIcon(id string) string {
	if id == AllSystems {
		return IconAll
	}
	return IconSystem
}

// Source provides the snapshot files.
type Source interface {
	Systems(ctx context.Context) ([]System, error)
	Items(ctx context.Context, system string) ([]Item, error)
}

// validSystemID rejects ids that can't be used as a single path element.
func validSystemID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
