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

// FormatReleaseDate renders a YYYYMMDD date as MM/DD/YYYY. Anything that
// isn't exactly eight characters is "Unknown".
func FormatReleaseDate(date string) string {
	if len(date) != 8 {
		return "Unknown"
	}
	return date[4:6] + "/" + date[6:8] + "/" + date[0:4]
}

// Page is one page of a result list.
type Page struct {
	Items []Item `json:"items"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	Total int    `json:"total"`
}

// Paginate returns the 1-based page of items. A size of zero or less puts
// everything on one page; out of range pages are clamped.
func Paginate(items []Item, page, size int) Page {
	total := len(items)
	if size <= 0 || total == 0 {
		return Page{Items: items, Page: 1, Pages: 1, Total: total}
	}

	pages := (total + size - 1) / size
	page = max(1, min(page, pages))

	start := (page - 1) * size
	end := min(start+size, total)

	return Page{
		Items: items[start:end],
		Page:  page,
		Pages: pages,
		Total: total,
	}
}
