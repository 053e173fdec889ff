// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statejson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelDescriptionAsJSON(t *testing.T) {
	d := ChannelDescription{
		ID:             "c-1",
		State:          StateDescription{Name: "full_empty", LastModified: 1234},
		SourceOccupied: true,
	}

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(d.AsJSON(), &decoded))

	assert.Equal(t, "c-1", decoded["id"])
	assert.Equal(t, true, decoded["sourceOccupied"])
	assert.Equal(t, false, decoded["sinkOccupied"])
	state := decoded["state"].(map[string]interface{})
	assert.Equal(t, "full_empty", state["name"])
	assert.Equal(t, float64(1234), state["lastModified"])

	// Stats are omitted unless the policy reports them.
	_, hasStats := decoded["stats"]
	assert.False(t, hasStats)
}

func TestChannelDescriptionWithStats(t *testing.T) {
	d := ChannelDescription{
		ID:    "c-2",
		State: StateDescription{Name: "empty_empty"},
		Stats: &PolicyStats{SourceSwaps: 3, SinkWaits: 1},
	}

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(d.AsJSON(), &decoded))

	stats := decoded["stats"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["sourceSwaps"])
	assert.Equal(t, float64(1), stats["sinkWaits"])
}
