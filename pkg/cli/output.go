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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/goretro/catalog/pkg/catalog"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Result is one rendered page of the catalog view.
type Result struct {
	System catalog.System `json:"system"`
	catalog.Page
	// Favorites are the names on this page that are favorites.
	Favorites   []string `json:"favorites"`
	Suggestions []string `json:"suggestions,omitempty"`
	// SystemNames maps system ids on this page to their display names.
	SystemNames map[string]string `json:"-"`
}

const favoriteMark = "★"

// RenderResult writes res to w in format.
func RenderResult(w io.Writer, format Format, res *Result) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, res)
	case FormatCSV:
		if err := gocsv.Marshal(res.Items, w); err != nil {
			return fmt.Errorf("error writing csv: %w", err)
		}
		return nil
	default:
		return renderResultTable(w, res)
	}
}

func renderResultTable(w io.Writer, res *Result) error {
	favs := make(map[string]struct{}, len(res.Favorites))
	for _, name := range res.Favorites {
		favs[name] = struct{}{}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "%s %s\n\n", res.System.Icon, res.System.Name)
	_, _ = fmt.Fprintln(tw, "FAV\tNAME\tSYSTEM\tREGION\tGENRE\tPUBLISHER\tRELEASED\tRATING")
	for i := range res.Items {
		item := &res.Items[i]
		mark := ""
		if _, ok := favs[item.Name]; ok {
			mark = favoriteMark
		}
		system := item.System
		if name, ok := res.SystemNames[item.System]; ok {
			system = name
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark,
			item.Name,
			system,
			catalog.RegionLabel(item.Region),
			item.Genre,
			item.Publisher,
			catalog.FormatReleaseDate(item.ReleaseDate),
			item.Rating,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}

	_, _ = fmt.Fprintf(w, "\npage %d/%d, %d items\n", res.Page.Page, res.Pages, res.Total)
	if len(res.Suggestions) > 0 {
		_, _ = fmt.Fprintf(w, "did you mean: %s\n", strings.Join(res.Suggestions, ", "))
	}
	return nil
}

// RenderSystems writes the system index to w in format.
func RenderSystems(w io.Writer, format Format, systems []catalog.System) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, systems)
	case FormatCSV:
		if err := gocsv.Marshal(systems, w); err != nil {
			return fmt.Errorf("error writing csv: %w", err)
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tNAME\tGAMES")
		for _, sys := range systems {
			_, _ = fmt.Fprintf(tw, "%s\t%s %s\t%d\n", sys.ID, sys.Icon, sys.Name, sys.GameCount)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("error writing table: %w", err)
		}
		return nil
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing json: %w", err)
	}
	return nil
}
