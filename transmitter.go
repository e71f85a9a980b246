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

// Transmitter is the single-producer side of the broadcast ring. It is a
// non-owning view over an AtomicBuffer: constructing one never allocates
// beyond the struct itself and never mutates the buffer.
//
// Exactly one Transmitter may be active against a given buffer at a time.
// This type does not detect or prevent a second one; see
// NewDebugTransmitter for an opt-in guard intended for tests.
type Transmitter struct {
	buffer       *AtomicBuffer
	capacity     int32
	mask         int32
	maxMsgLength int32

	tailIntentIndex int32
	tailIndex       int32
	latestIndex     int32
}

// NewTransmitter constructs a Transmitter over buffer. The data area
// capacity (buffer length minus TrailerLength) must be a power of two of
// at least MinCapacity bytes, or ErrInvalidCapacity is returned and the
// buffer is left untouched.
func NewTransmitter(buffer *AtomicBuffer) (*Transmitter, error) {
	capacity := dataCapacity(buffer.Capacity())
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Transmitter{
		buffer:          buffer,
		capacity:        capacity,
		mask:            capacity - 1,
		maxMsgLength:    calculateMaxMessageLength(capacity),
		tailIntentIndex: capacity + TailIntentCounterOffset,
		tailIndex:       capacity + TailCounterOffset,
		latestIndex:     capacity + LatestCounterOffset,
	}, nil
}

// Capacity returns the data area capacity in bytes.
func (t *Transmitter) Capacity() int32 {
	return t.capacity
}

// MaxMsgLength returns the largest payload, in bytes, Transmit will accept.
func (t *Transmitter) MaxMsgLength() int32 {
	return t.maxMsgLength
}

// Transmit appends one record carrying src[srcOffset : srcOffset+length] as
// payload, tagged with msgTypeID, and commits it.
//
// msgTypeID must be >= 1, or ErrInvalidArgument is returned. length must
// not exceed MaxMsgLength, or ErrMessageTooLong is returned. Both failures
// leave the buffer untouched. On success, the record (and any padding
// record inserted to avoid a wrap straddle) is fully written before TAIL is
// published; any receiver that subsequently observes the new TAIL via an
// acquire load is guaranteed to see the complete record.
func (t *Transmitter) Transmit(msgTypeID int32, src []byte, srcOffset, length int32) error {
	if err := checkMsgTypeID(msgTypeID); err != nil {
		return err
	}
	if length > t.maxMsgLength {
		return ErrMessageTooLong
	}

	currentTail := t.buffer.GetInt64(t.tailIndex)
	recordOffset := int32(currentTail & int64(t.mask))
	recordLength := length + HeaderLength
	alignedLength := alignUp(recordLength, RecordAlignment)
	newTail := currentTail + int64(alignedLength)
	toEndOfBuffer := t.capacity - recordOffset

	if toEndOfBuffer < alignedLength {
		t.buffer.PutInt64Release(t.tailIntentIndex, newTail+int64(toEndOfBuffer))

		t.insertPaddingRecord(recordOffset, toEndOfBuffer)

		currentTail += int64(toEndOfBuffer)
		recordOffset = 0
	} else {
		t.buffer.PutInt64Release(t.tailIntentIndex, newTail)
	}

	t.buffer.PutInt32(lengthOffset(recordOffset), recordLength)
	t.buffer.PutInt32(typeOffset(recordOffset), msgTypeID)
	t.buffer.PutBytes(msgOffset(recordOffset), src, srcOffset, length)

	t.buffer.PutInt64Release(t.latestIndex, currentTail)
	t.buffer.PutInt64Release(t.tailIndex, currentTail+int64(alignedLength))

	return nil
}

// insertPaddingRecord writes a padding header at recordOffset, marking the
// remaining length bytes to the end of the data area as unusable filler so
// that the next real record starts at offset 0.
func (t *Transmitter) insertPaddingRecord(recordOffset, length int32) {
	t.buffer.PutInt32(lengthOffset(recordOffset), length)
	t.buffer.PutInt32(typeOffset(recordOffset), PaddingMsgTypeID)
}
