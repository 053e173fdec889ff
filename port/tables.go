// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

// The three protocol tables. Pure data, never mutated at runtime.
// Rows are indexed by State, columns by Event. Every (state, event)
// combination that is not meaningful under correct protocol use maps
// to StateError / ActionError.

// transitionTable gives the next state for an event.
var transitionTable = [numStates][numEvents]State{
	StateEmptyEmpty: {
		EventSourceFill: StateFullEmpty,
		EventSwap:       StateEmptyEmpty,
		EventSinkDrain:  StateError,
		EventShutdown:   StateError,
	},
	StateEmptyFull: {
		EventSourceFill: StateFullFull,
		EventSwap:       StateEmptyFull,
		EventSinkDrain:  StateEmptyEmpty,
		EventShutdown:   StateError,
	},
	StateFullEmpty: {
		EventSourceFill: StateError,
		EventSwap:       StateEmptyFull,
		EventSinkDrain:  StateError,
		EventShutdown:   StateError,
	},
	StateFullFull: {
		EventSourceFill: StateError,
		EventSwap:       StateFullFull,
		EventSinkDrain:  StateFullEmpty,
		EventShutdown:   StateError,
	},
	StateError: {StateError, StateError, StateError, StateError},
	StateDone:  {StateError, StateError, StateError, StateError},
}

// exitTable gives the action taken before leaving the current state.
// ActionReturn cells are the swap no-op/wait points: a swap issued
// anywhere but full_empty cannot exchange anything yet.
var exitTable = [numStates][numEvents]Action{
	StateEmptyEmpty: {
		EventSourceFill: ActionNone,
		EventSwap:       ActionReturn,
		EventSinkDrain:  ActionError,
		EventShutdown:   ActionError,
	},
	StateEmptyFull: {
		EventSourceFill: ActionNone,
		EventSwap:       ActionReturn,
		EventSinkDrain:  ActionNone,
		EventShutdown:   ActionError,
	},
	StateFullEmpty: {
		EventSourceFill: ActionError,
		EventSwap:       ActionNone,
		EventSinkDrain:  ActionError,
		EventShutdown:   ActionError,
	},
	StateFullFull: {
		EventSourceFill: ActionError,
		EventSwap:       ActionReturn,
		EventSinkDrain:  ActionNone,
		EventShutdown:   ActionError,
	},
	StateError: {ActionError, ActionError, ActionError, ActionError},
	StateDone:  {ActionError, ActionError, ActionError, ActionError},
}

// entryTable gives the action taken after entering the next state.
// The single swap cell holds ActionSourceSwap; the Coordinator
// dispatches the sink variant instead when the sink initiated the
// event, so each policy can signal the correct peer.
var entryTable = [numStates][numEvents]Action{
	StateEmptyEmpty: {
		EventSourceFill: ActionNone,
		EventSwap:       ActionNone,
		EventSinkDrain:  ActionNone,
		EventShutdown:   ActionNone,
	},
	StateEmptyFull: {
		EventSourceFill: ActionNone,
		EventSwap:       ActionSourceSwap,
		EventSinkDrain:  ActionNone,
		EventShutdown:   ActionNone,
	},
	StateFullEmpty: {
		EventSourceFill: ActionNone,
		EventSwap:       ActionNone,
		EventSinkDrain:  ActionNone,
		EventShutdown:   ActionNone,
	},
	StateFullFull: {
		EventSourceFill: ActionNone,
		EventSwap:       ActionNone,
		EventSinkDrain:  ActionNone,
		EventShutdown:   ActionNone,
	},
	StateError: {ActionError, ActionError, ActionError, ActionError},
	StateDone:  {ActionError, ActionError, ActionError, ActionError},
}
