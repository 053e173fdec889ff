// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"go.amzn.com/flowport/port/statejson"
)

// Coordinator is the shared finite-state machine serializing one
// Source/Sink pair's protocol. Both sides drive it through Fill,
// Push, Pull and Drain; every call performs exactly one table-driven
// transition under the coordinator's lock.
type Coordinator[T any] struct {
	id     string
	mu     sync.Mutex
	state  State
	policy Policy[T]

	// Registered slots. Borrowed references, valid only between
	// registration and deregistration; the swap path revalidates
	// them before every exchange.
	srcItem *itemSlot[T]
	snkItem *itemSlot[T]

	debug        bool
	lastModified time.Time
}

// NewCoordinator creates a coordinator in state empty_empty and binds
// the policy to its lock.
func NewCoordinator[T any](p Policy[T]) *Coordinator[T] {
	c := &Coordinator[T]{
		id:           uuid.New().String(),
		state:        StateEmptyEmpty,
		policy:       p,
		lastModified: time.Now(),
	}
	p.Bind(c)
	return c
}

// ID returns the coordinator's unique identifier.
func (c *Coordinator[T]) ID() string {
	return c.id
}

// Fill announces that the source slot has been filled and wakes a
// sink that is waiting for data.
func (c *Coordinator[T]) Fill() error {
	if err := c.event(EventSourceFill, SideSource); err != nil {
		return err
	}
	c.policy.NotifySink()
	return nil
}

// Push offers the filled source slot for exchange on behalf of the
// source side. Under a blocking policy it waits until the sink has
// drained; under the others a push that cannot exchange is a no-op.
func (c *Coordinator[T]) Push() error {
	return c.event(EventSwap, SideSource)
}

// Pull requests an item on behalf of the sink side. Under a blocking
// policy it waits until the source has filled; under the others a
// pull that cannot exchange is a no-op.
func (c *Coordinator[T]) Pull() error {
	return c.event(EventSwap, SideSink)
}

// Drain announces that the sink slot has been emptied and wakes a
// source that is waiting for room.
func (c *Coordinator[T]) Drain() error {
	if err := c.event(EventSinkDrain, SideSink); err != nil {
		return err
	}
	c.policy.NotifySource()
	return nil
}

// Exhausted moves the coordinator to the terminal done state and
// wakes both sides. All further events return ErrDone.
func (c *Coordinator[T]) Exhausted() {
	c.mu.Lock()
	c.setState(StateDone, StateDoneName)
	c.mu.Unlock()
	c.policy.NotifySource()
	c.policy.NotifySink()
}

// IsDone reports whether Exhausted has been called.
func (c *Coordinator[T]) IsDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateDone
}

// State returns the current protocol state.
func (c *Coordinator[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// EnableDebug turns on transition logging for this coordinator.
func (c *Coordinator[T]) EnableDebug() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = true
}

// DisableDebug turns off transition logging.
func (c *Coordinator[T]) DisableDebug() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = false
}

// event drives one transition: exit action, state change, entry
// action, as a single atomic step under the coordinator's lock. A
// policy wait releases the lock for the duration of the wait; on
// wakeup the tables are consulted again from the current state.
func (c *Coordinator[T]) event(ev Event, side Side) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		if c.state == StateDone {
			return ErrDone
		}
		next := transitionTable[c.state][ev]
		if next == StateError {
			prev := c.state
			c.setState(StateError, ev.String())
			return fmt.Errorf("%w: %s in state %s (%s side)", ErrProtocolViolation, ev, prev, side)
		}
		if exitTable[c.state][ev] == ActionReturn {
			if c.policy.OnReturn(c, side) == VerdictRetry {
				continue
			}
			if c.state == StateDone {
				return ErrDone
			}
			return nil
		}
		c.setState(next, ev.String())
		if entryTable[next][ev] == ActionSourceSwap {
			var err error
			if side == SideSink {
				err = c.policy.OnSinkSwap(c)
			} else {
				err = c.policy.OnSourceSwap(c)
			}
			if err != nil {
				c.setState(StateError, ev.String())
				return err
			}
		}
		return nil
	}
}

// setState records the new state. Callers hold c.mu.
func (c *Coordinator[T]) setState(next State, cause string) {
	if c.debug && next != c.state {
		log.WithFields(log.Fields{
			"channel": c.id,
			"from":    c.state.String(),
			"to":      next.String(),
			"cause":   cause,
		}).Debug("port transition")
	}
	c.state = next
	c.lastModified = time.Now()
}

// exchange swaps the contents of the registered source and sink
// slots. Requires source full and sink empty; the swap is the only
// path data crosses from producer to consumer.
func (c *Coordinator[T]) exchange() error {
	if c.srcItem == nil || c.snkItem == nil {
		return ErrItemsNotRegistered
	}
	c.srcItem.mu.Lock()
	defer c.srcItem.mu.Unlock()
	c.snkItem.mu.Lock()
	defer c.snkItem.mu.Unlock()
	if !c.srcItem.full || c.snkItem.full {
		return fmt.Errorf("%w: swap requires source full and sink empty", ErrProtocolViolation)
	}
	c.srcItem.val, c.snkItem.val = c.snkItem.val, c.srcItem.val
	c.srcItem.full, c.snkItem.full = false, true
	return nil
}

// registerItems binds the slot pair a swap exchanges.
func (c *Coordinator[T]) registerItems(src, snk *itemSlot[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.srcItem = src
	c.snkItem = snk
}

// deregisterItems unbinds the slot pair. The pair must be the one
// currently registered.
func (c *Coordinator[T]) deregisterItems(src, snk *itemSlot[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.srcItem != src || c.snkItem != snk {
		return ErrItemMismatch
	}
	c.srcItem = nil
	c.snkItem = nil
	return nil
}

// Description returns a JSON-renderable snapshot for diagnostics.
func (c *Coordinator[T]) Description() statejson.ChannelDescription {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := statejson.ChannelDescription{
		ID: c.id,
		State: statejson.StateDescription{
			Name:         c.state.String(),
			LastModified: c.lastModified.UnixMilli(),
		},
	}
	if c.srcItem != nil {
		c.srcItem.mu.Lock()
		d.SourceOccupied = c.srcItem.full
		c.srcItem.mu.Unlock()
	}
	if c.snkItem != nil {
		c.snkItem.mu.Lock()
		d.SinkOccupied = c.snkItem.full
		c.snkItem.mu.Unlock()
	}
	if sp, ok := c.policy.(StatsProvider); ok {
		stats := sp.Stats()
		d.Stats = &statejson.PolicyStats{
			SourceSwaps: stats.SourceSwaps,
			SinkSwaps:   stats.SinkSwaps,
			SourceWaits: stats.SourceWaits,
			SinkWaits:   stats.SinkWaits,
		}
	}
	return d
}
