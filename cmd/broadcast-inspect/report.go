/*
 *
 * Copyright 2025 The Broadcast Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package main

import (
	"fmt"

	"github.com/ringbroadcast/core"
)

// sampleMessage is one record the report builder transmits before draining
// a receiver behind it.
type sampleMessage struct {
	TypeID  int32
	Payload []byte
}

// recordEntry describes one record a receiver observed while draining.
type recordEntry struct {
	Cursor     int64
	TypeID     int32
	PayloadLen int32
}

// report is the full result of buildReport: the records a receiver
// observed, in order, plus a snapshot of the trailer counters taken after
// every message was transmitted.
type report struct {
	Records    []recordEntry
	TailIntent int64
	Tail       int64
	Latest     int64
}

// buildReport transmits messages into buf via a fresh Transmitter, draining
// a Receiver attached before the first transmit after each one (so it
// observes every message, including any that force a wrap, before a later
// record can overwrite it), and returns
// what the receiver saw plus the final trailer counters.
//
// This is factored out of main so it can be exercised directly by tests
// without spawning the binary.
func buildReport(buf *broadcast.AtomicBuffer, messages []sampleMessage) (report, error) {
	tx, err := broadcast.NewTransmitter(buf)
	if err != nil {
		return report{}, fmt.Errorf("new transmitter: %w", err)
	}

	rx, err := broadcast.NewReceiverFromTail(buf)
	if err != nil {
		return report{}, fmt.Errorf("new receiver: %w", err)
	}

	var rep report
	for _, m := range messages {
		if err := tx.Transmit(m.TypeID, m.Payload, 0, int32(len(m.Payload))); err != nil {
			return report{}, fmt.Errorf("transmit type %d: %w", m.TypeID, err)
		}
		for {
			ok, typeID, payload := rx.ReceiveNext()
			if !ok {
				break
			}
			cursor := rx.Cursor()
			rep.Records = append(rep.Records, recordEntry{Cursor: cursor, TypeID: typeID, PayloadLen: int32(len(payload))})
			if !rx.Validate() {
				return rep, fmt.Errorf("receiver overrun while draining report: lapped=%d", rx.LappedCount())
			}
		}
	}

	capacity := tx.Capacity()
	rep.TailIntent = buf.GetInt64Acquire(capacity + broadcast.TailIntentCounterOffset)
	rep.Tail = buf.GetInt64Acquire(capacity + broadcast.TailCounterOffset)
	rep.Latest = buf.GetInt64Acquire(capacity + broadcast.LatestCounterOffset)

	return rep, nil
}

// formatReport returns a human-readable rendering of rep, which main prints
// to stdout; kept separate from buildReport so the data-producing half
// stays trivially testable.
func formatReport(rep report) string {
	out := fmt.Sprintf("tail_intent=%d tail=%d latest=%d\n", rep.TailIntent, rep.Tail, rep.Latest)
	for i, rec := range rep.Records {
		out += fmt.Sprintf("  [%d] cursor=%d type=%d payload_len=%d\n", i, rec.Cursor, rec.TypeID, rec.PayloadLen)
	}
	return out
}
