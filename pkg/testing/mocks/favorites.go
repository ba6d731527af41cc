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

package mocks

import (
	"context"

	"github.com/goretro/catalog/pkg/favorites"
	"github.com/stretchr/testify/mock"
)

// MockFavoritesService is a mock implementation of favorites.Service.
type MockFavoritesService struct {
	mock.Mock
}

var _ favorites.Service = (*MockFavoritesService)(nil)

// NewMockFavoritesService creates a new mock favorites service.
func NewMockFavoritesService() *MockFavoritesService {
	return &MockFavoritesService{}
}

func (m *MockFavoritesService) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockFavoritesService) GetAllFavorites(ctx context.Context) favorites.Map {
	args := m.Called(ctx)
	if favs, ok := args.Get(0).(favorites.Map); ok {
		return favs
	}
	return favorites.NewMap()
}

func (m *MockFavoritesService) GetSystemFavorites(ctx context.Context, system string) []string {
	args := m.Called(ctx, system)
	if names, ok := args.Get(0).([]string); ok {
		return names
	}
	return []string{}
}

func (m *MockFavoritesService) AddFavorite(
	ctx context.Context,
	system, name string,
) (favorites.ActionResult, bool) {
	args := m.Called(ctx, system, name)
	result, _ := args.Get(0).(favorites.ActionResult)
	return result, args.Bool(1)
}

func (m *MockFavoritesService) RemoveFavorite(
	ctx context.Context,
	system, name string,
) (favorites.ActionResult, bool) {
	args := m.Called(ctx, system, name)
	result, _ := args.Get(0).(favorites.ActionResult)
	return result, args.Bool(1)
}

func (m *MockFavoritesService) ToggleFavorite(
	ctx context.Context,
	system, name string,
	currentlyFavorite bool,
) bool {
	args := m.Called(ctx, system, name, currentlyFavorite)
	return args.Bool(0)
}

// SetupConfigured configures the mock as a configured service returning
// lists as the full favorites map.
func (m *MockFavoritesService) SetupConfigured(lists map[string][]string) {
	m.On("IsConfigured").Return(true)
	m.On("GetAllFavorites", mock.Anything).Return(favorites.FromLists(lists))
}

// SetupUnconfigured configures the mock as a service with no endpoint.
func (m *MockFavoritesService) SetupUnconfigured() {
	m.On("IsConfigured").Return(false)
}
