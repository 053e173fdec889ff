// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.amzn.com/flowport/port"
)

func newTestServer(t *testing.T) (*httptest.Server, *port.Coordinator[int]) {
	registry := NewRegistry()
	c := port.NewCoordinator(port.NewNullPolicy[int]())
	registry.Register(c)

	srv := httptest.NewServer(NewHTTPRouter(registry))
	t.Cleanup(srv.Close)
	return srv, c
}

func get(t *testing.T, url string) (int, []byte) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestPing(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := get(t, srv.URL+"/ping")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", string(body))
}

func TestChannelList(t *testing.T) {
	srv, c := newTestServer(t)

	status, body := get(t, srv.URL+"/channels")
	assert.Equal(t, http.StatusOK, status)

	var ids []string
	require.NoError(t, json.Unmarshal(body, &ids))
	assert.Equal(t, []string{c.ID()}, ids)
}

func TestChannelState(t *testing.T) {
	srv, c := newTestServer(t)
	require.NoError(t, c.Fill())

	status, body := get(t, srv.URL+"/channels/"+c.ID())
	assert.Equal(t, http.StatusOK, status)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, c.ID(), decoded["id"])
	state := decoded["state"].(map[string]interface{})
	assert.Equal(t, port.StateFullEmptyName, state["name"])
}

func TestChannelStateNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := get(t, srv.URL+"/channels/no-such-channel")
	assert.Equal(t, http.StatusNotFound, status)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, errorTypeChannelNotFound, resp.ErrorType)
}

func TestDeregister(t *testing.T) {
	srv, c := newTestServer(t)

	registry := NewRegistry()
	registry.Register(c)
	registry.Deregister(c.ID())
	assert.Empty(t, registry.IDs())

	// The server's own registry still serves the channel.
	status, _ := get(t, srv.URL+"/channels/"+c.ID())
	assert.Equal(t, http.StatusOK, status)
}
