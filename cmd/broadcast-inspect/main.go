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

// Command broadcast-inspect creates an anonymous broadcast region, writes a
// handful of sample records through a Transmitter (deliberately sized so
// one forces a wrap), drains them through a Receiver, and prints the
// resulting trailer counters and per-record log. It exists for manual
// sanity-checking of layout changes during development; it is not part of
// the wire contract and is not exercised by the test suite (report.go and
// sampleMessages are, directly).
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ringbroadcast/core"
)

func main() {
	capacity := flag.Int("capacity", 1024, "data area capacity in bytes; must be a power of two")
	flag.Parse()

	region, err := broadcast.CreateRegion(int32(*capacity))
	if err != nil {
		log.Fatalf("broadcast-inspect: create region: %v", err)
	}
	defer region.Close()

	tx, err := broadcast.NewTransmitter(region.Buffer())
	if err != nil {
		log.Fatalf("broadcast-inspect: %v", err)
	}
	messages := sampleMessages(int32(*capacity), tx.MaxMsgLength())

	rep, err := buildReport(region.Buffer(), messages)
	if err != nil {
		log.Fatalf("broadcast-inspect: %v", err)
	}

	fmt.Printf("capacity=%d\n", *capacity)
	fmt.Print(formatReport(rep))
}

// alignUp8 rounds x up to the nearest multiple of 8, mirroring the package's
// own record alignment rule (record.go's alignUp, unexported there).
func alignUp8(x int32) int32 {
	return (x + 7) &^ 7
}

// sampleMessages builds a deterministic sequence of sample records: two
// that fit comfortably, a run of maxLen-sized filler records that eats into
// the data area regardless of its capacity, and a final record sized so
// that run is guaranteed to have left less room than the final record's
// aligned length needs before the end of the buffer, forcing a wrap. This
// matches the teacher's debug-capacity tool's probing style but produces a
// fixed, readable sequence rather than a capacity search.
func sampleMessages(capacity, maxLen int32) []sampleMessage {
	msgs := []sampleMessage{
		{TypeID: 1, Payload: []byte("hello")},
		{TypeID: 2, Payload: make([]byte, 16)},
	}

	final := []byte("after the wrap")
	finalAligned := alignUp8(int32(len(final)) + broadcast.HeaderLength)

	used := alignUp8(int32(len("hello"))+broadcast.HeaderLength) + alignUp8(16+broadcast.HeaderLength)
	remaining := capacity - used

	fillerType := int32(10)
	for remaining >= finalAligned {
		// Consume just enough to leave finalAligned-8 bytes of room (always
		// strictly less than finalAligned, so the final record wraps), but
		// never exceed the buffer's own max message length in one record.
		payloadLen := remaining - (finalAligned - broadcast.HeaderLength) - broadcast.HeaderLength
		if payloadLen > maxLen {
			payloadLen = maxLen
		}
		if payloadLen < 0 {
			payloadLen = 0
		}
		msgs = append(msgs, sampleMessage{TypeID: fillerType, Payload: make([]byte, payloadLen)})
		remaining -= alignUp8(payloadLen + broadcast.HeaderLength)
		fillerType++
	}

	msgs = append(msgs, sampleMessage{TypeID: 4, Payload: final})
	return msgs
}
