// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

// String values of port states
const (
	StateEmptyEmptyName = "empty_empty"
	StateEmptyFullName  = "empty_full"
	StateFullEmptyName  = "full_empty"
	StateFullFullName   = "full_full"
	StateErrorName      = "error"
	StateDoneName       = "done"
)

// String values of protocol events
const (
	EventSourceFillName = "source_fill"
	EventSwapName       = "swap"
	EventSinkDrainName  = "sink_drain"
	EventShutdownName   = "shutdown"
)

// String values of table actions
const (
	ActionNoneName       = "none"
	ActionReturnName     = "ac_return"
	ActionSourceSwapName = "src_swap"
	ActionSinkSwapName   = "snk_swap"
	ActionErrorName      = "error"
)

// String values of initiating sides
const (
	SideSourceName = "source"
	SideSinkName   = "sink"
)

// UnknownName is returned by String() for out-of-range values.
const UnknownName = "unknown"

var stateNames = [numStates]string{
	StateEmptyEmpty: StateEmptyEmptyName,
	StateEmptyFull:  StateEmptyFullName,
	StateFullEmpty:  StateFullEmptyName,
	StateFullFull:   StateFullFullName,
	StateError:      StateErrorName,
	StateDone:       StateDoneName,
}

var eventNames = [numEvents]string{
	EventSourceFill: EventSourceFillName,
	EventSwap:       EventSwapName,
	EventSinkDrain:  EventSinkDrainName,
	EventShutdown:   EventShutdownName,
}

var actionNames = [numActions]string{
	ActionNone:       ActionNoneName,
	ActionReturn:     ActionReturnName,
	ActionSourceSwap: ActionSourceSwapName,
	ActionSinkSwap:   ActionSinkSwapName,
	ActionError:      ActionErrorName,
}
