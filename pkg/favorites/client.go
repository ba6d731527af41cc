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
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/goretro/catalog/pkg/config"
	"github.com/goretro/catalog/pkg/shared/httpclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// ConfigSource returns the current favorites settings. It is called once per
// operation so config reloads take effect without rebuilding the client.
type ConfigSource func() config.Favorites

// StaticConfig wraps a fixed settings value as a ConfigSource.
func StaticConfig(f config.Favorites) ConfigSource {
	return func() config.Favorites { return f }
}

// Client talks to the favorites service. Every failure is logged and
// reported as an empty or false result; no method returns an error.
type Client struct {
	source  ConfigSource
	http    *httpclient.Client
	metrics *Metrics
}

var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithMetrics records request outcomes on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		if reg != nil {
			c.metrics = NewMetrics(reg)
		}
	}
}

// NewClient creates a favorites client reading its settings from source.
func NewClient(source ConfigSource, opts ...Option) *Client {
	c := &Client{
		source: source,
		http:   httpclient.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resolved is one read of the settings.
type resolved struct {
	endpoint string
	token    string
}

func (c *Client) resolve() (resolved, bool) {
	if c.source == nil {
		return resolved{}, false
	}
	cfg := c.source().Normalized()
	if !cfg.Enabled || cfg.Endpoint == "" {
		return resolved{}, false
	}
	return resolved{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		token:    cfg.Token,
	}, true
}

func (r resolved) headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if r.token != "" {
		h["Authorization"] = "Bearer " + r.token
	}
	return h
}

func itemPath(endpoint, system, name string) string {
	return endpoint + "/api/favorites/" + system + "/" + escapeComponent(name)
}

// componentUnescapes are the marks url.QueryEscape encodes but a browser's
// component encoding leaves alone.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent percent-encodes name as a single path segment, escaping
// every reserved character including & : = + $ @ and /.
func escapeComponent(name string) string {
	return componentUnescapes.Replace(url.QueryEscape(name))
}

// IsConfigured reports whether the service is enabled and has an endpoint.
func (c *Client) IsConfigured() bool {
	_, ok := c.resolve()
	return ok
}

func (c *Client) call(ctx context.Context, op, method, u string, r resolved, out any) bool {
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  method,
		URL:     u,
		Headers: r.headers(),
	}, out)
	if err == nil {
		c.metrics.observe(op, OutcomeOK)
		return true
	}

	var statusErr *httpclient.StatusError
	switch {
	case errors.As(err, &statusErr):
		c.metrics.observe(op, OutcomeHTTPError)
	case errors.Is(err, httpclient.ErrDecode):
		c.metrics.observe(op, OutcomeDecodeError)
	default:
		c.metrics.observe(op, OutcomeTransportError)
	}
	log.Error().Err(err).Str("op", op).Str("method", method).Msg("favorites request failed")
	return false
}

// GetAllFavorites fetches every system's favorites. Any failure returns an
// empty map.
func (c *Client) GetAllFavorites(ctx context.Context) Map {
	r, ok := c.resolve()
	if !ok {
		log.Warn().Msg("favorites service not configured")
		c.metrics.observe(OpGetAll, OutcomeUnconfigured)
		return NewMap()
	}

	var body map[string][]string
	if !c.call(ctx, OpGetAll, http.MethodGet, r.endpoint+"/api/favorites", r, &body) {
		return NewMap()
	}
	return FromLists(body)
}

type systemFavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// GetSystemFavorites fetches one system's favorites. Any failure, or a body
// without a favorites list, returns an empty slice.
func (c *Client) GetSystemFavorites(ctx context.Context, system string) []string {
	r, ok := c.resolve()
	if !ok {
		log.Warn().Msg("favorites service not configured")
		c.metrics.observe(OpGetSystem, OutcomeUnconfigured)
		return []string{}
	}

	var body systemFavoritesResponse
	if !c.call(ctx, OpGetSystem, http.MethodGet, r.endpoint+"/api/favorites/"+system, r, &body) {
		return []string{}
	}
	if body.Favorites == nil {
		return []string{}
	}
	return body.Favorites
}

func (c *Client) action(ctx context.Context, op, method, system, name string) (ActionResult, bool) {
	r, ok := c.resolve()
	if !ok {
		log.Error().Str("op", op).Msg("favorites service not configured")
		c.metrics.observe(op, OutcomeUnconfigured)
		return ActionResult{}, false
	}

	var result ActionResult
	if !c.call(ctx, op, method, itemPath(r.endpoint, system, name), r, &result) {
		return ActionResult{}, false
	}
	return result, true
}

// AddFavorite marks name as a favorite. ok is false when the service is not
// configured or the request failed.
func (c *Client) AddFavorite(ctx context.Context, system, name string) (ActionResult, bool) {
	return c.action(ctx, OpAdd, http.MethodPut, system, name)
}

// RemoveFavorite unmarks name. ok is false when the service is not
// configured or the request failed.
func (c *Client) RemoveFavorite(ctx context.Context, system, name string) (ActionResult, bool) {
	return c.action(ctx, OpRemove, http.MethodDelete, system, name)
}

// ToggleFavorite removes a current favorite or adds a new one and reports
// whether the service confirmed the change.
func (c *Client) ToggleFavorite(ctx context.Context, system, name string, currentlyFavorite bool) bool {
	var (
		result ActionResult
		ok     bool
	)
	if currentlyFavorite {
		result, ok = c.RemoveFavorite(ctx, system, name)
	} else {
		result, ok = c.AddFavorite(ctx, system, name)
	}
	return ok && result.Success
}
