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

package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goretro/catalog/pkg/helpers/syncutil"
)

// MockSnapshotServer serves the static catalog snapshot files produced by the
// site build: /systems/index.json and /systems/{system}/index.json.
type MockSnapshotServer struct {
	*httptest.Server
	systems  any
	items    map[string]any
	gates    map[string]chan struct{}
	requests []string
	mu       syncutil.Mutex
}

// NewMockSnapshotServer starts a snapshot host closed at test end.
func NewMockSnapshotServer(t *testing.T) *MockSnapshotServer {
	t.Helper()

	m := &MockSnapshotServer{
		items: make(map[string]any),
		gates: make(map[string]chan struct{}),
	}

	r := chi.NewRouter()
	r.Get("/systems/index.json", m.handleSystems)
	r.Get("/systems/{system}/index.json", m.handleItems)

	m.Server = httptest.NewServer(r)
	t.Cleanup(func() {
		m.mu.Lock()
		for id, gate := range m.gates {
			close(gate)
			delete(m.gates, id)
		}
		m.mu.Unlock()
		m.Close()
	})

	return m
}

// WithSystems sets the body of /systems/index.json. nil answers 404.
func (m *MockSnapshotServer) WithSystems(systems any) *MockSnapshotServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.systems = systems
	return m
}

// WithItems sets the body for one system. Systems without items answer 404.
func (m *MockSnapshotServer) WithItems(system string, items any) *MockSnapshotServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[system] = items
	return m
}

// Block holds requests for system until Release is called.
func (m *MockSnapshotServer) Block(system string) *MockSnapshotServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gates[system] = make(chan struct{})
	return m
}

// Release lets held requests for system complete.
func (m *MockSnapshotServer) Release(system string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gate, ok := m.gates[system]; ok {
		close(gate)
		delete(m.gates, system)
	}
}

// Requests returns the request paths seen so far.
func (m *MockSnapshotServer) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockSnapshotServer) handleSystems(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, r.URL.Path)
	systems := m.systems
	m.mu.Unlock()

	if systems == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, systems)
}

func (m *MockSnapshotServer) handleItems(w http.ResponseWriter, r *http.Request) {
	system := chi.URLParam(r, "system")

	m.mu.Lock()
	m.requests = append(m.requests, r.URL.Path)
	items, ok := m.items[system]
	gate := m.gates[system]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, items)
}
