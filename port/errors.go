// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

import "errors"

// ErrProtocolViolation is returned when an event is issued in a state
// that has no legal transition for it. The coordinator moves to the
// absorbing error state; the violation is a caller bug, not a
// transient condition.
var ErrProtocolViolation = errors.New("event is not allowed in current state")

// ErrDone is returned for any event issued after Exhausted moved the
// coordinator to the terminal done state.
var ErrDone = errors.New("channel is done")

// ErrNotAttached is returned by endpoint operations that require a
// prior Attach.
var ErrNotAttached = errors.New("endpoint is not attached")

// ErrAlreadyAttached is returned by Attach when either endpoint is
// already bound to a coordinator.
var ErrAlreadyAttached = errors.New("endpoint is already attached")

// ErrItemsNotRegistered is returned by a swap when the coordinator
// has no registered slot pair to exchange.
var ErrItemsNotRegistered = errors.New("items are not registered")

// ErrItemMismatch is returned when deregistering a slot pair that is
// not the pair currently registered.
var ErrItemMismatch = errors.New("items do not match registered items")
