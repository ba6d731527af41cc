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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/goretro/catalog/pkg/shared/httpclient"
	"github.com/spf13/afero"
)

const (
	systemsDir = "systems"
	indexFile  = "index.json"
)

type systemEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	GameCount int    `json:"gameCount"`
}

func decodeSystems(data []byte) ([]System, error) {
	var entries []systemEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error decoding system index: %w", err)
	}
	systems := make([]System, 0, len(entries))
	for _, e := range entries {
		systems = append(systems, System{
			ID:        e.ID,
			Name:      e.Name,
			Icon:      systemIcon(e.ID),
			GameCount: e.GameCount,
			Color:     e.Color,
		})
	}
	return systems, nil
}

// decodeItems treats any non-array payload as an empty list.
func decodeItems(data []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("error decoding items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// HTTPSource reads snapshots from the published site.
type HTTPSource struct {
	client  *httpclient.Client
	baseURL string
}

// NewHTTPSource reads {baseURL}/systems/... with client, or the shared
// default client when nil.
func NewHTTPSource(baseURL string, client *httpclient.Client) *HTTPSource {
	if client == nil {
		client = httpclient.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) fetch(ctx context.Context, u string) ([]byte, error) {
	var raw json.RawMessage
	err := s.client.GetJSON(ctx, u, &raw)
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", u, err)
	}
	return raw, nil
}

func (s *HTTPSource) Systems(ctx context.Context) ([]System, error) {
	data, err := s.fetch(ctx, s.baseURL+"/"+systemsDir+"/"+indexFile)
	if err != nil {
		return nil, err
	}
	return decodeSystems(data)
}

func (s *HTTPSource) Items(ctx context.Context, system string) ([]Item, error) {
	if !validSystemID(system) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSystem, system)
	}
	data, err := s.fetch(ctx, s.baseURL+"/"+systemsDir+"/"+system+"/"+indexFile)
	if err != nil {
		return nil, err
	}
	return decodeItems(data)
}

// FSSource reads snapshots from a local site build directory.
type FSSource struct {
	fs   afero.Fs
	root string
}

// NewFSSource reads root/systems/... from fsys, or the OS filesystem when
// nil.
func NewFSSource(fsys afero.Fs, root string) *FSSource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FSSource{fs: fsys, root: root}
}

// Root is the site build directory the source reads from.
func (s *FSSource) Root() string {
	return s.root
}

func (s *FSSource) read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}

func (s *FSSource) Systems(ctx context.Context) ([]System, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading systems: %w", err)
	}
	data, err := s.read(filepath.Join(s.root, systemsDir, indexFile))
	if err != nil {
		return nil, err
	}
	return decodeSystems(data)
}

func (s *FSSource) Items(ctx context.Context, system string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	if !validSystemID(system) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSystem, system)
	}
	data, err := s.read(filepath.Join(s.root, systemsDir, system, indexFile))
	if err != nil {
		return nil, err
	}
	return decodeItems(data)
}
