// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

import "sync"

// itemSlot holds one optional value. Its mutex serializes Inject and
// Extract against each other, against attach/detach, and against the
// coordinator's swap. A slot is mutated only under this mutex.
type itemSlot[T any] struct {
	mu   sync.Mutex
	val  T
	full bool
}

// endpoint is the state shared by Source and Sink: one slot, the
// attached flag and the coordinator handle, all guarded by the slot's
// mutex.
type endpoint[T any] struct {
	slot     itemSlot[T]
	attached bool
	coord    *Coordinator[T]
}

// Inject stores v into the local slot. Returns false, leaving the
// slot unchanged, when the slot is already occupied; occupancy is the
// back-pressure signal. The endpoint must be attached.
func (e *endpoint[T]) Inject(v T) (bool, error) {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	if !e.attached {
		return false, ErrNotAttached
	}
	if e.slot.full {
		return false, nil
	}
	e.slot.val = v
	e.slot.full = true
	return true, nil
}

// Extract removes and returns the slot's value. The second return is
// false when the slot is empty. The endpoint must be attached.
func (e *endpoint[T]) Extract() (T, bool, error) {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	var zero T
	if !e.attached {
		return zero, false, ErrNotAttached
	}
	if !e.slot.full {
		return zero, false, nil
	}
	v := e.slot.val
	e.slot.val = zero
	e.slot.full = false
	return v, true, nil
}

// Attached reports whether the endpoint is bound to a coordinator.
func (e *endpoint[T]) Attached() bool {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	return e.attached
}

// Coordinator returns the shared coordinator, or nil when unattached.
func (e *endpoint[T]) Coordinator() *Coordinator[T] {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	return e.coord
}

func (e *endpoint[T]) bind(c *Coordinator[T]) bool {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	if e.attached {
		return false
	}
	e.attached = true
	e.coord = c
	return true
}

func (e *endpoint[T]) unbind() {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	e.attached = false
	e.coord = nil
}

// Source is the producer endpoint of a channel.
type Source[T any] struct {
	endpoint[T]
}

// Sink is the consumer endpoint of a channel.
type Sink[T any] struct {
	endpoint[T]
}

// Attach binds a Source/Sink pair with a fresh coordinator driven by
// the given policy. Fails if either endpoint is already attached; at
// most one coordinator per endpoint at a time.
func Attach[T any](src *Source[T], snk *Sink[T], p Policy[T]) (*Coordinator[T], error) {
	return AttachWith(src, snk, NewCoordinator(p))
}

// AttachWith binds a Source/Sink pair to an externally supplied
// coordinator and registers both slots for swapping.
func AttachWith[T any](src *Source[T], snk *Sink[T], c *Coordinator[T]) (*Coordinator[T], error) {
	if !src.bind(c) {
		return nil, ErrAlreadyAttached
	}
	if !snk.bind(c) {
		src.unbind()
		return nil, ErrAlreadyAttached
	}
	c.registerItems(&src.slot, &snk.slot)
	return c, nil
}

// Detach unbinds both endpoints and deregisters their slots. Both
// sides detach together; the protocol assumes symmetric endpoint
// lifetime, and the pair must be the one attached to the shared
// coordinator.
func Detach[T any](src *Source[T], snk *Sink[T]) error {
	c := src.Coordinator()
	if c == nil || snk.Coordinator() == nil {
		return ErrNotAttached
	}
	if c != snk.Coordinator() {
		return ErrItemMismatch
	}
	if err := c.deregisterItems(&src.slot, &snk.slot); err != nil {
		return err
	}
	src.unbind()
	snk.unbind()
	return nil
}
