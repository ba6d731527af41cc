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

package httpclient

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goretro/catalog/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTransportBearer(t *testing.T) {
	t.Parallel()

	var gotAuth, gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotID = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(func() map[string]config.CredentialEntry {
		return map[string]config.CredentialEntry{srv.URL: {Bearer: "tok"}}
	})

	require.NoError(t, c.GetJSON(context.Background(), srv.URL+"/api", nil))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.NotEmpty(t, gotID)
}

func TestAuthTransportBasic(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	c := NewClient(func() map[string]config.CredentialEntry {
		return map[string]config.CredentialEntry{srv.URL: {Username: "u", Password: "p"}}
	})

	require.NoError(t, c.GetJSON(context.Background(), srv.URL, nil))
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("u:p")), gotAuth)
}

func TestAuthTransportKeepsExplicitHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	c := NewClient(func() map[string]config.CredentialEntry {
		return map[string]config.CredentialEntry{srv.URL: {Bearer: "from-file"}}
	})

	err := c.DoJSON(context.Background(), Request{
		URL:     srv.URL,
		Headers: map[string]string{"Authorization": "Bearer explicit"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer explicit", gotAuth)
}

func TestDoJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, http.MethodPut, r.Method)
			_, _ = w.Write([]byte(`{"success":true}`))
		case "/bad":
			_, _ = w.Write([]byte(`{not json`))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(nil)
	ctx := context.Background()

	var out struct {
		Success bool `json:"success"`
	}
	require.NoError(t, c.DoJSON(ctx, Request{Method: http.MethodPut, URL: srv.URL + "/ok"}, &out))
	assert.True(t, out.Success)

	err := c.GetJSON(ctx, srv.URL+"/bad", &out)
	require.ErrorIs(t, err, ErrDecode)

	err = c.GetJSON(ctx, srv.URL+"/missing", &out)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestDoJSONContextCancel(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewClient(nil).GetJSON(ctx, srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClientFromConfig(t *testing.T) {
	t.Parallel()

	vals := config.BaseDefaults
	vals.Catalog.RequestTimeout = "3s"
	c := NewClientFromConfig(config.NewInMemory(vals))
	assert.Equal(t, 3*time.Second, c.Timeout)
}
