// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statejson

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

// StateDescription ...
type StateDescription struct {
	Name         string `json:"name"`
	LastModified int64  `json:"lastModified"`
}

// PolicyStats ...
type PolicyStats struct {
	SourceSwaps uint64 `json:"sourceSwaps"`
	SinkSwaps   uint64 `json:"sinkSwaps"`
	SourceWaits uint64 `json:"sourceWaits"`
	SinkWaits   uint64 `json:"sinkWaits"`
}

// ChannelDescription describes one handshake channel for debugging purposes
type ChannelDescription struct {
	ID             string           `json:"id"`
	State          StateDescription `json:"state"`
	SourceOccupied bool             `json:"sourceOccupied"`
	SinkOccupied   bool             `json:"sinkOccupied"`
	Stats          *PolicyStats     `json:"stats,omitempty"`
}

func (d *ChannelDescription) AsJSON() []byte {
	bytes, err := json.Marshal(d)
	if err != nil {
		log.Panicf("Failed to marshal channel state: %s", err)
	}
	return bytes
}
