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

import "sync/atomic"

// DebugTransmitter wraps Transmitter with an additional compare-and-swap
// guard on the TAIL counter, to catch a second, concurrent producer
// accidentally attached to the same buffer during development or testing.
//
// The core Transmitter does not perform this check: it is an extra atomic
// operation on the commit hot path, and the single-producer invariant is
// the caller's responsibility to uphold, not the ring's to enforce (see
// the package doc comment). DebugTransmitter exists purely as an opt-in
// diagnostic for tests and does not change the wire format.
type DebugTransmitter struct {
	buffer       *AtomicBuffer
	capacity     int32
	mask         int32
	maxMsgLength int32

	tailIntentIndex int32
	tailIndex       int32
	latestIndex     int32

	// committedTail is the TAIL value this DebugTransmitter last committed,
	// or observed at construction; the commit CAS expects TAIL to hold it.
	committedTail int64
}

// NewDebugTransmitter constructs a DebugTransmitter over buffer, applying
// the same layout checks as NewTransmitter.
func NewDebugTransmitter(buffer *AtomicBuffer) (*DebugTransmitter, error) {
	capacity := dataCapacity(buffer.Capacity())
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &DebugTransmitter{
		buffer:          buffer,
		capacity:        capacity,
		mask:            capacity - 1,
		maxMsgLength:    calculateMaxMessageLength(capacity),
		tailIntentIndex: capacity + TailIntentCounterOffset,
		tailIndex:       capacity + TailCounterOffset,
		latestIndex:     capacity + LatestCounterOffset,
		committedTail:   buffer.GetInt64Acquire(capacity + TailCounterOffset),
	}, nil
}

// Capacity returns the data area capacity in bytes.
func (t *DebugTransmitter) Capacity() int32 {
	return t.capacity
}

// MaxMsgLength returns the largest payload, in bytes, Transmit will accept.
func (t *DebugTransmitter) MaxMsgLength() int32 {
	return t.maxMsgLength
}

// Transmit behaves exactly like Transmitter.Transmit, except the final
// commit of TAIL is a compare-and-swap against the TAIL value this
// DebugTransmitter last committed (or observed at construction) rather than
// an unconditional store. If the CAS fails, some other producer committed a
// record since then, whether before this call or during it, and Transmit
// returns ErrConcurrentProducer. The expected value only moves on a
// successful commit, so every later Transmit reports the same violation.
// The record has already been written to
// the data area at that point (matching a real second producer's potential
// corruption), so this is a detector, not a preventer: it exists to fail
// tests loudly, not to make concurrent producers safe.
func (t *DebugTransmitter) Transmit(msgTypeID int32, src []byte, srcOffset, length int32) error {
	if err := checkMsgTypeID(msgTypeID); err != nil {
		return err
	}
	if length > t.maxMsgLength {
		return ErrMessageTooLong
	}

	origTail := t.buffer.GetInt64(t.tailIndex)
	currentTail := origTail
	recordOffset := int32(currentTail & int64(t.mask))
	recordLength := length + HeaderLength
	alignedLength := alignUp(recordLength, RecordAlignment)
	newTail := currentTail + int64(alignedLength)
	toEndOfBuffer := t.capacity - recordOffset

	if toEndOfBuffer < alignedLength {
		t.buffer.PutInt64Release(t.tailIntentIndex, newTail+int64(toEndOfBuffer))

		t.buffer.PutInt32(lengthOffset(recordOffset), toEndOfBuffer)
		t.buffer.PutInt32(typeOffset(recordOffset), PaddingMsgTypeID)

		currentTail += int64(toEndOfBuffer)
		recordOffset = 0
	} else {
		t.buffer.PutInt64Release(t.tailIntentIndex, newTail)
	}

	t.buffer.PutInt32(lengthOffset(recordOffset), recordLength)
	t.buffer.PutInt32(typeOffset(recordOffset), msgTypeID)
	t.buffer.PutBytes(msgOffset(recordOffset), src, srcOffset, length)

	t.buffer.PutInt64Release(t.latestIndex, currentTail)

	committedTail := currentTail + int64(alignedLength)
	tailPtr := (*int64)(t.buffer.ptrAt(t.tailIndex))
	if !atomic.CompareAndSwapInt64(tailPtr, t.committedTail, committedTail) {
		return ErrConcurrentProducer
	}
	t.committedTail = committedTail
	return nil
}
