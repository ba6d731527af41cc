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

// Package httpclient is the shared HTTP client used to talk to the catalog
// snapshot host and the favorites service.
package httpclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/goretro/catalog/pkg/config"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries a per-request id so client and server logs can be
// matched up.
const RequestIDHeader = "X-Request-ID"

// CredsFunc returns the credentials configured for the auth transport.
type CredsFunc func() map[string]config.CredentialEntry

// AuthTransport adds credentials from auth.toml to requests that don't
// already carry an Authorization header, and tags every request with an id.
type AuthTransport struct {
	Base  http.RoundTripper
	Creds CredsFunc
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())

	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.New().String())
	}

	if req.Header.Get("Authorization") == "" && t.Creds != nil {
		creds := config.LookupAuth(t.Creds(), req.URL.String())
		if creds != nil {
			if creds.Bearer != "" {
				req.Header.Set("Authorization", "Bearer "+creds.Bearer)
			} else if creds.Username != "" {
				auth := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
				req.Header.Set("Authorization", "Basic "+auth)
			}
		}
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Msg("http request")

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform HTTP round trip: %w", err)
	}
	return resp, nil
}

// DefaultTransport pools connections and bounds connection setup. It sets no
// overall request deadline; callers bound requests with their context.
var DefaultTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout: 10 * time.Second,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// Client is an http.Client with auth support and JSON helpers.
type Client struct {
	*http.Client
}

// NewClient creates a client with no request timeout.
func NewClient(creds CredsFunc) *Client {
	return NewClientWithTimeout(creds, 0)
}

// NewClientWithTimeout creates a client with a request timeout. Zero means
// no timeout.
func NewClientWithTimeout(creds CredsFunc, timeout time.Duration) *Client {
	return &Client{
		Client: &http.Client{
			Transport: &AuthTransport{
				Base:  DefaultTransport,
				Creds: creds,
			},
			Timeout: timeout,
		},
	}
}

// NewClientFromConfig creates a client using the auth entries and request
// timeout from cfg.
func NewClientFromConfig(cfg *config.Instance) *Client {
	return NewClientWithTimeout(cfg.Auth, cfg.RequestTimeout())
}

// WithTransport returns a client sharing c's auth settings but sending
// requests through base. Used to point clients at test servers.
func (c *Client) WithTransport(base http.RoundTripper) *Client {
	var creds CredsFunc
	if at, ok := c.Transport.(*AuthTransport); ok {
		creds = at.Creds
	}
	return &Client{
		Client: &http.Client{
			Transport: &AuthTransport{Base: base, Creds: creds},
			Timeout:   c.Timeout,
		},
	}
}

// StatusError is returned by DoJSON for non-2xx responses.
type StatusError struct {
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

// ErrDecode wraps JSON decoding failures from DoJSON.
var ErrDecode = errors.New("error decoding response")

// Request describes a JSON API call.
type Request struct {
	Headers map[string]string
	Method  string
	URL     string
}

// DoJSON performs req and decodes a 2xx JSON body into out. out may be nil
// to discard the body.
func (c *Client) DoJSON(ctx context.Context, r Request, out any) error {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, http.NoBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("error performing %s request: %w", method, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// GetJSON is DoJSON with a plain GET.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	return c.DoJSON(ctx, Request{Method: http.MethodGet, URL: url}, out)
}

// DefaultClient is a shared client with no auth entries.
var DefaultClient = NewClient(nil)
