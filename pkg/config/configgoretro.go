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
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// NormalizeValue trims s and strips one matching pair of surrounding
// single or double quotes. Site templates often emit values like
// `'https://host'`.
func NormalizeValue(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 {
		first := trimmed[0]
		last := trimmed[len(trimmed)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		}
	}
	return trimmed
}

// Normalized returns a copy with Endpoint and Token passed through
// NormalizeValue.
func (f Favorites) Normalized() Favorites {
	return Favorites{
		Enabled:  f.Enabled,
		Endpoint: NormalizeValue(f.Endpoint),
		Token:    NormalizeValue(f.Token),
	}
}

// Configured reports whether the section points at a usable service.
func (f Favorites) Configured() bool {
	n := f.Normalized()
	return n.Enabled && n.Endpoint != ""
}

// Favorites returns the normalized favorites service settings. The result
// is a snapshot; callers wanting live values should call it per request.
func (c *Instance) Favorites() Favorites {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.GoRetro.Normalized()
}

func (c *Instance) SetFavorites(f Favorites) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.GoRetro = f
}

func (c *Instance) CatalogBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimRight(NormalizeValue(c.vals.Catalog.BaseURL), "/")
}

func (c *Instance) SnapshotDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return NormalizeValue(c.vals.Catalog.SnapshotDir)
}

func (c *Instance) DefaultSystem() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s := NormalizeValue(c.vals.Catalog.DefaultSystem); s != "" {
		return s
	}
	return AllSystems
}

// RequestTimeout returns the configured per-request timeout, or zero for
// no timeout.
func (c *Instance) RequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Catalog.RequestTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.vals.Catalog.RequestTimeout)
	if err != nil {
		log.Warn().Err(err).Msgf("invalid request timeout: %s", c.vals.Catalog.RequestTimeout)
		return 0
	}
	return d
}
