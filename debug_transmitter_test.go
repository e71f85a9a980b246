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

package broadcast

import (
	"bytes"
	"sync"
	"testing"
)

func TestDebugTransmitterRoundTrip(t *testing.T) {
	buf := newTestBuffer(t, 1024)
	tx, err := NewDebugTransmitter(buf)
	if err != nil {
		t.Fatalf("NewDebugTransmitter: %v", err)
	}
	rx, err := NewReceiverFromTail(buf)
	if err != nil {
		t.Fatalf("NewReceiverFromTail: %v", err)
	}

	payload := []byte("debug mode")
	if err := tx.Transmit(3, payload, 0, int32(len(payload))); err != nil {
		t.Fatalf("Transmit: %v", err)
	}

	ok, typeID, got := rx.ReceiveNext()
	if !ok || typeID != 3 || !bytes.Equal(got, payload) {
		t.Fatalf("ReceiveNext: ok=%v typeID=%d payload=%q", ok, typeID, got)
	}
}

func TestDebugTransmitterRejectsInvalidArguments(t *testing.T) {
	buf := newTestBuffer(t, 1024)
	tx, err := NewDebugTransmitter(buf)
	if err != nil {
		t.Fatalf("NewDebugTransmitter: %v", err)
	}

	if err := tx.Transmit(0, nil, 0, 0); err != ErrInvalidArgument {
		t.Errorf("Transmit(0): err = %v, want ErrInvalidArgument", err)
	}
	oversize := make([]byte, tx.MaxMsgLength()+1)
	if err := tx.Transmit(1, oversize, 0, int32(len(oversize))); err != ErrMessageTooLong {
		t.Errorf("Transmit oversize: err = %v, want ErrMessageTooLong", err)
	}
}

// TestDebugTransmitterDetectsConcurrentProducer simulates a second producer
// by advancing TAIL after the DebugTransmitter was constructed and before
// its next Transmit commits.
func TestDebugTransmitterDetectsConcurrentProducer(t *testing.T) {
	buf := newTestBuffer(t, 1024)
	tx, err := NewDebugTransmitter(buf)
	if err != nil {
		t.Fatalf("NewDebugTransmitter: %v", err)
	}

	// A rogue second producer commits a record directly, advancing TAIL,
	// before tx's own Transmit call below reaches its CAS.
	buf.PutInt64Release(tx.tailIndex, 8)

	if err := tx.Transmit(1, nil, 0, 0); err != ErrConcurrentProducer {
		t.Fatalf("Transmit: err = %v, want ErrConcurrentProducer", err)
	}
}

// TestDebugTransmitterSingleProducerUnderConcurrentReceivers confirms the
// guard does not false-positive when only receivers, never a second
// producer, are concurrently active.
func TestDebugTransmitterSingleProducerUnderConcurrentReceivers(t *testing.T) {
	buf := newTestBuffer(t, 4096)
	tx, err := NewDebugTransmitter(buf)
	if err != nil {
		t.Fatalf("NewDebugTransmitter: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rx, err := NewReceiverFromTail(buf)
			if err != nil {
				return
			}
			for j := 0; j < 100; j++ {
				if ok, _, _ := rx.ReceiveNext(); ok {
					rx.Validate()
				}
			}
		}()
	}

	for i := int32(1); i <= 50; i++ {
		if err := tx.Transmit(i, nil, 0, 0); err != nil {
			t.Fatalf("Transmit(%d): %v", i, err)
		}
	}

	wg.Wait()
}
