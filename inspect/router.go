// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"net/http"

	"github.com/go-chi/chi"
)

// NewHTTPRouter builds the inspection surface over a channel
// registry: channel listing, per-channel state snapshots and a ping
// probe.
func NewHTTPRouter(registry *Registry) *chi.Mux {
	r := chi.NewRouter()
	r.Use(accessLogDecorator)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) { PingHandler(w, r) })
	r.Get("/channels", func(w http.ResponseWriter, r *http.Request) { ChannelListHandler(w, r, registry) })
	r.Get("/channels/{channelID}", func(w http.ResponseWriter, r *http.Request) { ChannelStateHandler(w, r, registry) })
	return r
}
