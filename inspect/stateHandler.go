// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
)

const errorTypeChannelNotFound = "ChannelNotFound"

// ErrorResponse is the JSON body returned for inspection errors.
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorMessage string `json:"errorMessage"`
}

// ChannelListHandler writes the registered channel IDs.
func ChannelListHandler(w http.ResponseWriter, r *http.Request, registry *Registry) {
	render.JSON(w, r, registry.IDs())
}

// ChannelStateHandler writes one channel's state description.
func ChannelStateHandler(w http.ResponseWriter, r *http.Request, registry *Registry) {
	id := chi.URLParam(r, "channelID")
	c, ok := registry.Lookup(id)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, &ErrorResponse{
			ErrorType:    errorTypeChannelNotFound,
			ErrorMessage: "no channel registered with id " + id,
		})
		return
	}

	desc := c.Description()
	w.Write(desc.AsJSON())
}
