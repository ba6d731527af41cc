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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goretro/catalog/pkg/helpers/syncutil"
)

// RecordedRequest is one call seen by a mock server.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
}

// MockFavoritesServer is an in-memory stand-in for the GoRetro favorites
// service.
type MockFavoritesServer struct {
	*httptest.Server
	favorites  map[string][]string
	gate       chan struct{}
	token      string
	rawBody    string
	requests   []RecordedRequest
	failStatus int
	mu         syncutil.Mutex
}

// NewMockFavoritesServer starts a mock favorites service that is closed when
// the test ends.
func NewMockFavoritesServer(t *testing.T) *MockFavoritesServer {
	t.Helper()

	m := &MockFavoritesServer{
		favorites: make(map[string][]string),
	}

	r := chi.NewRouter()
	r.Use(m.record)
	r.Use(m.middleware)
	r.Get("/api/favorites", m.handleAll)
	r.Get("/api/favorites/{system}", m.handleSystem)
	r.Put("/api/favorites/{system}/{rom}", m.handleAdd)
	r.Delete("/api/favorites/{system}/{rom}", m.handleRemove)

	m.Server = httptest.NewServer(r)
	t.Cleanup(func() {
		m.Unblock()
		m.Close()
	})

	return m
}

// WithFavorites replaces the stored favorites.
func (m *MockFavoritesServer) WithFavorites(favs map[string][]string) *MockFavoritesServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites = make(map[string][]string, len(favs))
	for k, v := range favs {
		m.favorites[k] = slices.Clone(v)
	}
	return m
}

// WithToken requires "Authorization: Bearer token" on every request.
func (m *MockFavoritesServer) WithToken(token string) *MockFavoritesServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return m
}

// WithFailure makes every request answer with status.
func (m *MockFavoritesServer) WithFailure(status int) *MockFavoritesServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failStatus = status
	return m
}

// WithRawBody makes every request answer 200 with body verbatim.
func (m *MockFavoritesServer) WithRawBody(body string) *MockFavoritesServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rawBody = body
	return m
}

// Block holds every request until Unblock is called.
func (m *MockFavoritesServer) Block() *MockFavoritesServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gate = make(chan struct{})
	return m
}

// Unblock releases requests held by Block.
func (m *MockFavoritesServer) Unblock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gate != nil {
		close(m.gate)
		m.gate = nil
	}
}

// Requests returns the calls received so far.
func (m *MockFavoritesServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.requests)
}

// RequestCount returns how many calls used method.
func (m *MockFavoritesServer) RequestCount(method string) int {
	n := 0
	for _, r := range m.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}

// Favorites returns the stored favorites for system, sorted.
func (m *MockFavoritesServer) Favorites(system string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.favorites[system])
	sort.Strings(out)
	return out
}

func (m *MockFavoritesServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests = append(m.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
		})
		gate := m.gate
		m.mu.Unlock()

		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (m *MockFavoritesServer) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		token, failStatus, rawBody := m.token, m.failStatus, m.rawBody
		m.mu.Unlock()

		switch {
		case token != "" && r.Header.Get("Authorization") != "Bearer "+token:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case failStatus != 0:
			http.Error(w, http.StatusText(failStatus), failStatus)
		case rawBody != "":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(rawBody))
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func romParam(r *http.Request) string {
	rom := chi.URLParam(r, "rom")
	if r.URL.RawPath == "" {
		return rom
	}
	if unescaped, err := url.PathUnescape(rom); err == nil {
		return unescaped
	}
	return rom
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (m *MockFavoritesServer) handleAll(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	writeJSON(w, m.favorites)
}

func (m *MockFavoritesServer) handleSystem(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	favs := m.favorites[chi.URLParam(r, "system")]
	if favs == nil {
		favs = []string{}
	}
	writeJSON(w, map[string]any{"favorites": favs})
}

func (m *MockFavoritesServer) handleAdd(w http.ResponseWriter, r *http.Request) {
	system, rom := chi.URLParam(r, "system"), romParam(r)

	m.mu.Lock()
	if !slices.Contains(m.favorites[system], rom) {
		m.favorites[system] = append(m.favorites[system], rom)
	}
	m.mu.Unlock()

	writeJSON(w, map[string]any{
		"success": true,
		"message": "added to favorites",
		"system":  system,
		"rom":     rom,
	})
}

func (m *MockFavoritesServer) handleRemove(w http.ResponseWriter, r *http.Request) {
	system, rom := chi.URLParam(r, "system"), romParam(r)

	m.mu.Lock()
	idx := slices.Index(m.favorites[system], rom)
	if idx >= 0 {
		m.favorites[system] = slices.Delete(m.favorites[system], idx, idx+1)
	}
	m.mu.Unlock()

	writeJSON(w, map[string]any{
		"success": idx >= 0,
		"message": "removed from favorites",
		"system":  system,
		"rom":     rom,
	})
}
