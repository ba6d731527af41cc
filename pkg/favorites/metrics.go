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

package favorites

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes recorded by the client.
const (
	OutcomeOK             = "ok"
	OutcomeUnconfigured   = "unconfigured"
	OutcomeTransportError = "transport_error"
	OutcomeHTTPError      = "http_error"
	OutcomeDecodeError    = "decode_error"
)

// Operation labels.
const (
	OpGetAll    = "get_all"
	OpGetSystem = "get_system"
	OpAdd       = "add"
	OpRemove    = "remove"
)

// Metrics counts favorites requests by operation and outcome.
type Metrics struct {
	Requests *prometheus.CounterVec
}

// NewMetrics registers the client counters on reg. Clients sharing a
// registry share the counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goretro",
				Subsystem: "favorites",
				Name:      "requests_total",
				Help:      "Favorites service requests by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
	}
	if err := reg.Register(m.Requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			m.Requests = existing
		}
	}
	return m
}

func (m *Metrics) observe(op, outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(op, outcome).Inc()
}
