// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package port implements a single-item handshake channel between exactly
one producer goroutine and one consumer goroutine.

The channel is built from three pieces:

1. A port state machine. The state is the occupancy of the producer's
and the consumer's item slot, giving four live states (empty_empty,
empty_full, full_empty, full_full) plus an absorbing error state and a
terminal done state. Three read-only tables (transition, exit action,
entry action) define the protocol; the Coordinator drives exactly one
transition per event, atomically, under a single lock shared by both
sides.

2. A synchronization policy. The tables decide WHAT happens (swap the
slots, return early); the policy decides HOW (do nothing, exchange
synchronously, or block on a condition until the peer notifies). Five
policies are provided: Null (every hook a no-op, for table tests),
Manual (synchronous exchange, no blocking), Async (two condition
variables, one per side), UnifiedAsync (same semantics with a single
condition variable), and Debug (Null plus logging of every hook).

3. Two endpoints, Source and Sink. Each owns one optional-value slot.
Inject and Extract move data between caller and slot without blocking;
Attach binds a Source/Sink pair to a shared Coordinator and registers
both slots for swapping.

A producer drives its side with Inject, Fill, Push; a consumer with
Pull, Extract, Drain. The only path data takes from producer to
consumer is the swap action, an atomic exchange of the two slots
performed while the Coordinator's lock is held. When the producer is
finished it calls Exhausted, which moves the Coordinator to done and
wakes any waiting consumer.

The protocol supports exactly one goroutine per side. Illegal events
(for example draining an empty sink) move the Coordinator to the
absorbing error state and return an error wrapping
ErrProtocolViolation; they indicate a broken caller, not a transient
condition.
*/
package port
