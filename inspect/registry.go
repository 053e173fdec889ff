// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"sync"

	"go.amzn.com/flowport/port/statejson"
)

// ChannelDescriber is implemented by anything that can snapshot its
// state for diagnostics, typically a port.Coordinator.
type ChannelDescriber interface {
	ID() string
	Description() statejson.ChannelDescription
}

// Registry is a concurrency-safe set of channels exposed over the
// inspection router.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]ChannelDescriber
}

func NewRegistry() *Registry {
	return &Registry{channels: make(map[string]ChannelDescriber)}
}

// Register adds a channel under its own ID, replacing any previous
// entry with the same ID.
func (g *Registry) Register(c ChannelDescriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels[c.ID()] = c
}

// Deregister removes a channel by ID.
func (g *Registry) Deregister(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.channels, id)
}

// Lookup returns the channel with the given ID, if registered.
func (g *Registry) Lookup(id string) (ChannelDescriber, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.channels[id]
	return c, ok
}

// IDs returns the registered channel IDs in unspecified order.
func (g *Registry) IDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.channels))
	for id := range g.channels {
		ids = append(ids, id)
	}
	return ids
}
