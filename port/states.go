// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

// State is the occupancy of the (source slot, sink slot) pair, plus
// the absorbing error state and the terminal done state.
type State int

const (
	StateEmptyEmpty State = iota
	StateEmptyFull
	StateFullEmpty
	StateFullFull
	StateError
	StateDone

	numStates = int(StateDone) + 1
)

func (s State) String() string {
	if s < 0 || int(s) >= numStates {
		return UnknownName
	}
	return stateNames[s]
}

// Event is a protocol event delivered to the Coordinator.
type Event int

const (
	EventSourceFill Event = iota
	EventSwap
	EventSinkDrain
	EventShutdown

	numEvents = int(EventShutdown) + 1
)

func (e Event) String() string {
	if e < 0 || int(e) >= numEvents {
		return UnknownName
	}
	return eventNames[e]
}

// Action is the side effect a table cell selects for an event.
type Action int

const (
	// ActionNone selects no side effect.
	ActionNone Action = iota
	// ActionReturn aborts processing of the current event. Depending
	// on the initiating side and the policy it expresses either a
	// harmless no-op or "cannot proceed yet, wait for the peer".
	ActionReturn
	// ActionSourceSwap exchanges the two registered slots on behalf
	// of the source side.
	ActionSourceSwap
	// ActionSinkSwap exchanges the two registered slots on behalf of
	// the sink side.
	ActionSinkSwap
	// ActionError marks a table cell that is unreachable under
	// correct protocol use.
	ActionError

	numActions = int(ActionError) + 1
)

func (a Action) String() string {
	if a < 0 || int(a) >= numActions {
		return UnknownName
	}
	return actionNames[a]
}

// Side identifies which endpoint initiated an event.
type Side int

const (
	SideSource Side = iota
	SideSink
)

func (s Side) String() string {
	if s == SideSource {
		return SideSourceName
	}
	return SideSinkName
}
