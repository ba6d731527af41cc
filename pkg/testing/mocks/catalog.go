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

	"github.com/goretro/catalog/pkg/catalog"
	"github.com/stretchr/testify/mock"
)

// MockCatalogSource is a mock implementation of catalog.Source.
type MockCatalogSource struct {
	mock.Mock
}

var _ catalog.Source = (*MockCatalogSource)(nil)

// NewMockCatalogSource creates a new mock catalog source.
func NewMockCatalogSource() *MockCatalogSource {
	return &MockCatalogSource{}
}

func (m *MockCatalogSource) Systems(ctx context.Context) ([]catalog.System, error) {
	args := m.Called(ctx)
	if systems, ok := args.Get(0).([]catalog.System); ok {
		return systems, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogSource) Items(ctx context.Context, system string) ([]catalog.Item, error) {
	args := m.Called(ctx, system)
	if items, ok := args.Get(0).([]catalog.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// SetupSystem configures the mock to serve items for system.
func (m *MockCatalogSource) SetupSystem(system string, items []catalog.Item) {
	m.On("Items", mock.Anything, system).Return(items, nil)
}

// SetupSystems configures the mock to serve the system index.
func (m *MockCatalogSource) SetupSystems(systems []catalog.System) {
	m.On("Systems", mock.Anything).Return(systems, nil)
}
