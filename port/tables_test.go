// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStates = []State{
	StateEmptyEmpty, StateEmptyFull, StateFullEmpty, StateFullFull, StateError, StateDone,
}

var allEvents = []Event{
	EventSourceFill, EventSwap, EventSinkDrain, EventShutdown,
}

func TestTransitionTableClosedForm(t *testing.T) {
	expected := map[State]map[Event]State{
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
		StateError: {
			EventSourceFill: StateError,
			EventSwap:       StateError,
			EventSinkDrain:  StateError,
			EventShutdown:   StateError,
		},
		StateDone: {
			EventSourceFill: StateError,
			EventSwap:       StateError,
			EventSinkDrain:  StateError,
			EventShutdown:   StateError,
		},
	}

	for _, s := range allStates {
		for _, e := range allEvents {
			assert.Equal(t, expected[s][e], transitionTable[s][e],
				"transition[%s][%s]", s, e)
		}
	}
}

func TestExitTableReturnCells(t *testing.T) {
	// A swap issued anywhere but full_empty cannot exchange yet.
	returnCells := map[State]bool{
		StateEmptyEmpty: true,
		StateEmptyFull:  true,
		StateFullFull:   true,
	}

	for _, s := range allStates {
		for _, e := range allEvents {
			want := ActionNone
			if transitionTable[s][e] == StateError {
				want = ActionError
			}
			if e == EventSwap && returnCells[s] {
				want = ActionReturn
			}
			assert.Equal(t, want, exitTable[s][e], "exit[%s][%s]", s, e)
		}
	}
}

func TestEntryTableSwapCell(t *testing.T) {
	for _, s := range allStates {
		for _, e := range allEvents {
			want := ActionNone
			if s == StateError || s == StateDone {
				want = ActionError
			}
			if s == StateEmptyFull && e == EventSwap {
				want = ActionSourceSwap
			}
			assert.Equal(t, want, entryTable[s][e], "entry[%s][%s]", s, e)
		}
	}
}

func TestSinkSwapAbsentFromTables(t *testing.T) {
	// The tables hold a single swap cell; the coordinator dispatches
	// OnSinkSwap by initiating side instead of through a table entry.
	for _, s := range allStates {
		for _, e := range allEvents {
			assert.NotEqual(t, ActionSinkSwap, exitTable[s][e], "exit[%s][%s]", s, e)
			assert.NotEqual(t, ActionSinkSwap, entryTable[s][e], "entry[%s][%s]", s, e)
		}
	}
}

func TestNameTables(t *testing.T) {
	assert.Equal(t, StateEmptyEmptyName, StateEmptyEmpty.String())
	assert.Equal(t, StateEmptyFullName, StateEmptyFull.String())
	assert.Equal(t, StateFullEmptyName, StateFullEmpty.String())
	assert.Equal(t, StateFullFullName, StateFullFull.String())
	assert.Equal(t, StateErrorName, StateError.String())
	assert.Equal(t, StateDoneName, StateDone.String())
	assert.Equal(t, UnknownName, State(99).String())

	assert.Equal(t, EventSourceFillName, EventSourceFill.String())
	assert.Equal(t, EventSwapName, EventSwap.String())
	assert.Equal(t, EventSinkDrainName, EventSinkDrain.String())
	assert.Equal(t, EventShutdownName, EventShutdown.String())

	assert.Equal(t, ActionReturnName, ActionReturn.String())
	assert.Equal(t, ActionSourceSwapName, ActionSourceSwap.String())
	assert.Equal(t, ActionSinkSwapName, ActionSinkSwap.String())

	assert.Equal(t, SideSourceName, SideSource.String())
	assert.Equal(t, SideSinkName, SideSink.String())
}
