// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

import (
	log "github.com/sirupsen/logrus"
)

// Verdict is a policy's answer to an ActionReturn cell.
type Verdict int

const (
	// VerdictHandled ends processing of the event; the state is left
	// unchanged and the operation returns to the caller.
	VerdictHandled Verdict = iota
	// VerdictRetry asks the coordinator to consult the tables again
	// from the current state, after a wait hook returned.
	VerdictRetry
)

// Policy supplies the concrete effect of each table action: no-op,
// synchronous exchange, or blocking exchange with wait/notify. It
// never inspects or mutates the tables; it only reacts to an action
// the coordinator already decided.
//
// OnReturn, OnSourceSwap, OnSinkSwap, WaitSource and WaitSink are
// invoked with the coordinator's lock held; a wait hook releases the
// lock for the duration of the wait. NotifySource and NotifySink may
// be called with or without the lock.
type Policy[T any] interface {
	// Bind attaches the policy to a coordinator's lock so blocking
	// policies can build their condition variables. Called once by
	// NewCoordinator.
	Bind(c *Coordinator[T])
	// OnReturn handles an ActionReturn cell for the initiating side.
	OnReturn(c *Coordinator[T], side Side) Verdict
	// OnSourceSwap handles the swap action when the source initiated it.
	OnSourceSwap(c *Coordinator[T]) error
	// OnSinkSwap handles the swap action when the sink initiated it.
	OnSinkSwap(c *Coordinator[T]) error
	// WaitSource blocks the source side until notified.
	WaitSource()
	// WaitSink blocks the sink side until notified.
	WaitSink()
	// NotifySource wakes a waiting source side.
	NotifySource()
	// NotifySink wakes a waiting sink side.
	NotifySink()
}

// PolicyStats counts swap and wait hook activity on one coordinator.
type PolicyStats struct {
	SourceSwaps uint64
	SinkSwaps   uint64
	SourceWaits uint64
	SinkWaits   uint64
}

// StatsProvider is implemented by policies that count their swaps
// and waits. Read Stats only under the coordinator's lock or after
// both sides have quiesced.
type StatsProvider interface {
	Stats() PolicyStats
}

// NullPolicy makes every hook a no-op. The tables drive transitions
// but no data moves and nothing blocks; it isolates the protocol
// logic for testing.
type NullPolicy[T any] struct{}

func NewNullPolicy[T any]() *NullPolicy[T] { return &NullPolicy[T]{} }

func (p *NullPolicy[T]) Bind(*Coordinator[T]) {}

func (p *NullPolicy[T]) OnReturn(*Coordinator[T], Side) Verdict { return VerdictHandled }

func (p *NullPolicy[T]) OnSourceSwap(*Coordinator[T]) error { return nil }

func (p *NullPolicy[T]) OnSinkSwap(*Coordinator[T]) error { return nil }

func (p *NullPolicy[T]) WaitSource() {}

func (p *NullPolicy[T]) WaitSink() {}

func (p *NullPolicy[T]) NotifySource() {}

func (p *NullPolicy[T]) NotifySink() {}

// ManualPolicy performs the exchange synchronously and never blocks.
// Intended for single-goroutine, hand-stepped protocol tests.
type ManualPolicy[T any] struct{}

func NewManualPolicy[T any]() *ManualPolicy[T] { return &ManualPolicy[T]{} }

func (p *ManualPolicy[T]) Bind(*Coordinator[T]) {}

func (p *ManualPolicy[T]) OnReturn(*Coordinator[T], Side) Verdict { return VerdictHandled }

func (p *ManualPolicy[T]) OnSourceSwap(c *Coordinator[T]) error { return c.exchange() }

func (p *ManualPolicy[T]) OnSinkSwap(c *Coordinator[T]) error { return c.exchange() }

func (p *ManualPolicy[T]) WaitSource() {}

func (p *ManualPolicy[T]) WaitSink() {}

func (p *ManualPolicy[T]) NotifySource() {}

func (p *ManualPolicy[T]) NotifySink() {}

// DebugPolicy has NullPolicy's behavior plus a debug log line for
// every hook invocation. Development visibility only, never a
// correctness dependency.
type DebugPolicy[T any] struct{}

func NewDebugPolicy[T any]() *DebugPolicy[T] { return &DebugPolicy[T]{} }

func (p *DebugPolicy[T]) Bind(c *Coordinator[T]) {
	log.WithField("channel", c.ID()).Debug("policy bind")
}

func (p *DebugPolicy[T]) OnReturn(c *Coordinator[T], side Side) Verdict {
	p.logHook(c, "on_ac_return", side.String())
	return VerdictHandled
}

func (p *DebugPolicy[T]) OnSourceSwap(c *Coordinator[T]) error {
	p.logHook(c, "on_source_swap", SideSourceName)
	return nil
}

func (p *DebugPolicy[T]) OnSinkSwap(c *Coordinator[T]) error {
	p.logHook(c, "on_sink_swap", SideSinkName)
	return nil
}

func (p *DebugPolicy[T]) WaitSource() { log.Debug("wait_source") }

func (p *DebugPolicy[T]) WaitSink() { log.Debug("wait_sink") }

func (p *DebugPolicy[T]) NotifySource() { log.Debug("notify_source") }

func (p *DebugPolicy[T]) NotifySink() { log.Debug("notify_sink") }

func (p *DebugPolicy[T]) logHook(c *Coordinator[T], hook, side string) {
	log.WithFields(log.Fields{
		"channel": c.id,
		"state":   c.state.String(),
		"side":    side,
	}).Debug(hook)
}
