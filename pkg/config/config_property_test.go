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
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyNormalizeStripsQuotes verifies any quoted value resolves to
// the trimmed inner text.
func TestPropertyNormalizeStripsQuotes(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		inner := rapid.StringMatching(`[ a-zA-Z0-9:/._-]{0,30}`).Draw(t, "inner")
		quote := rapid.SampledFrom([]string{`"`, `'`}).Draw(t, "quote")

		got := NormalizeValue(quote + inner + quote)
		if got != strings.TrimSpace(inner) {
			t.Fatalf("NormalizeValue(%q) = %q, want %q", quote+inner+quote, got, strings.TrimSpace(inner))
		}
	})
}

// TestPropertyNormalizeUnquotedTrims verifies unquoted values only get
// trimmed.
func TestPropertyNormalizeUnquotedTrims(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.StringMatching(`[a-zA-Z0-9:/._-]{1,30}`).Draw(t, "value")
		pad := rapid.StringMatching(`[ \t]{0,3}`).Draw(t, "pad")

		got := NormalizeValue(pad + value + pad)
		if got != value {
			t.Fatalf("NormalizeValue(%q) = %q, want %q", pad+value+pad, got, value)
		}
	})
}

// TestPropertyNormalizeIdempotentOnUnquoted verifies a normalized value
// without quotes is stable.
func TestPropertyNormalizeIdempotentOnUnquoted(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[ a-z0-9]{0,20}`).Draw(t, "s")
		once := NormalizeValue(s)
		if NormalizeValue(once) != once {
			t.Fatalf("not idempotent for %q", s)
		}
	})
}

// TestPropertyConfiguredRequiresEnabled verifies a disabled section is never
// configured whatever the endpoint.
func TestPropertyConfiguredRequiresEnabled(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		endpoint := rapid.String().Draw(t, "endpoint")
		if (Favorites{Enabled: false, Endpoint: endpoint}).Configured() {
			t.Fatalf("disabled section reported configured for %q", endpoint)
		}
	})
}
