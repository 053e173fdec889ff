// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

import "sync"

// AsyncPolicy coordinates one producer goroutine and one consumer
// goroutine with two condition variables, one per side, so a
// notifying side never wakes itself. A swap that cannot proceed
// blocks the calling side until the peer's fill or drain makes the
// exchange possible or Exhausted ends the channel.
type AsyncPolicy[T any] struct {
	srcCV *sync.Cond
	snkCV *sync.Cond
	stats PolicyStats
}

func NewAsyncPolicy[T any]() *AsyncPolicy[T] { return &AsyncPolicy[T]{} }

// Bind builds both condition variables on the coordinator's lock.
func (p *AsyncPolicy[T]) Bind(c *Coordinator[T]) {
	p.srcCV = sync.NewCond(&c.mu)
	p.snkCV = sync.NewCond(&c.mu)
}

// OnReturn decides, per side, whether an ActionReturn cell is a
// harmless no-op or a wait point. The source waits at full_full
// (sink has not drained); the sink waits at empty_empty (source has
// not filled). After a wait the coordinator re-evaluates the tables.
func (p *AsyncPolicy[T]) OnReturn(c *Coordinator[T], side Side) Verdict {
	if side == SideSource {
		if c.state != StateFullFull {
			return VerdictHandled
		}
		p.stats.SourceWaits++
		p.NotifySink()
		p.WaitSource()
	} else {
		if c.state != StateEmptyEmpty {
			return VerdictHandled
		}
		p.stats.SinkWaits++
		p.NotifySource()
		p.WaitSink()
	}
	if c.state == StateDone {
		return VerdictHandled
	}
	return VerdictRetry
}

func (p *AsyncPolicy[T]) OnSourceSwap(c *Coordinator[T]) error {
	if err := c.exchange(); err != nil {
		return err
	}
	p.stats.SourceSwaps++
	p.NotifySink()
	return nil
}

func (p *AsyncPolicy[T]) OnSinkSwap(c *Coordinator[T]) error {
	if err := c.exchange(); err != nil {
		return err
	}
	p.stats.SinkSwaps++
	p.NotifySource()
	return nil
}

func (p *AsyncPolicy[T]) WaitSource() { p.srcCV.Wait() }

func (p *AsyncPolicy[T]) WaitSink() { p.snkCV.Wait() }

func (p *AsyncPolicy[T]) NotifySource() { p.srcCV.Signal() }

func (p *AsyncPolicy[T]) NotifySink() { p.snkCV.Signal() }

// Stats returns the swap and wait counters.
func (p *AsyncPolicy[T]) Stats() PolicyStats { return p.stats }

// UnifiedAsyncPolicy has AsyncPolicy's semantics with a single
// condition variable and a single swap implementation, showing the
// two-condition split is not load-bearing. Notifications broadcast
// and woken goroutines re-check state, so a wrong-side wakeup only
// costs another pass through the tables.
type UnifiedAsyncPolicy[T any] struct {
	cv    *sync.Cond
	stats PolicyStats
}

func NewUnifiedAsyncPolicy[T any]() *UnifiedAsyncPolicy[T] { return &UnifiedAsyncPolicy[T]{} }

func (p *UnifiedAsyncPolicy[T]) Bind(c *Coordinator[T]) {
	p.cv = sync.NewCond(&c.mu)
}

func (p *UnifiedAsyncPolicy[T]) OnReturn(c *Coordinator[T], side Side) Verdict {
	if side == SideSource {
		if c.state != StateFullFull {
			return VerdictHandled
		}
		p.stats.SourceWaits++
		p.NotifySink()
		p.WaitSource()
	} else {
		if c.state != StateEmptyEmpty {
			return VerdictHandled
		}
		p.stats.SinkWaits++
		p.NotifySource()
		p.WaitSink()
	}
	if c.state == StateDone {
		return VerdictHandled
	}
	return VerdictRetry
}

func (p *UnifiedAsyncPolicy[T]) OnSourceSwap(c *Coordinator[T]) error {
	if err := c.exchange(); err != nil {
		return err
	}
	p.stats.SourceSwaps++
	p.cv.Broadcast()
	return nil
}

// OnSinkSwap delegates to the single swap implementation.
func (p *UnifiedAsyncPolicy[T]) OnSinkSwap(c *Coordinator[T]) error {
	return p.OnSourceSwap(c)
}

func (p *UnifiedAsyncPolicy[T]) WaitSource() { p.cv.Wait() }

func (p *UnifiedAsyncPolicy[T]) WaitSink() { p.cv.Wait() }

func (p *UnifiedAsyncPolicy[T]) NotifySource() { p.cv.Broadcast() }

func (p *UnifiedAsyncPolicy[T]) NotifySink() { p.cv.Broadcast() }

// Stats returns the swap and wait counters.
func (p *UnifiedAsyncPolicy[T]) Stats() PolicyStats { return p.stats }
