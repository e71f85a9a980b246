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

// Receiver is one cooperative, independent reader of a broadcast ring. Any
// number of Receivers may attach to the same AtomicBuffer; they never
// coordinate with each other or with the Transmitter beyond reading the
// three published counters, and never write to the buffer.
type Receiver struct {
	buffer   *AtomicBuffer
	capacity int32
	mask     int32

	tailIntentIndex int32
	tailIndex       int32
	latestIndex     int32

	cursor          int64
	nextCursor      int64
	cursorBeforeAdv int64
	lappedCount     uint64
}

// NewReceiver constructs a Receiver over buffer whose cursor starts at the
// current LATEST counter (acquire), so a late joiner begins from the most
// recently committed message rather than missing it while waiting for the
// next one.
func NewReceiver(buffer *AtomicBuffer) (*Receiver, error) {
	r, err := newReceiver(buffer)
	if err != nil {
		return nil, err
	}
	r.cursor = r.buffer.GetInt64Acquire(r.latestIndex)
	r.nextCursor = r.cursor
	return r, nil
}

// NewReceiverFromTail constructs a Receiver over buffer whose cursor starts
// at the current TAIL counter (acquire): it observes only messages
// transmitted after construction.
func NewReceiverFromTail(buffer *AtomicBuffer) (*Receiver, error) {
	r, err := newReceiver(buffer)
	if err != nil {
		return nil, err
	}
	r.cursor = r.buffer.GetInt64Acquire(r.tailIndex)
	r.nextCursor = r.cursor
	return r, nil
}

func newReceiver(buffer *AtomicBuffer) (*Receiver, error) {
	capacity := dataCapacity(buffer.Capacity())
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Receiver{
		buffer:          buffer,
		capacity:        capacity,
		mask:            capacity - 1,
		tailIntentIndex: capacity + TailIntentCounterOffset,
		tailIndex:       capacity + TailCounterOffset,
		latestIndex:     capacity + LatestCounterOffset,
	}, nil
}

// Cursor returns the receiver's current absolute position in the stream.
// After a true-returning ReceiveNext it is the start of the returned record
// (past any padding skipped to reach it); after Validate it is past that
// record, or at LATEST if an overrun was detected.
func (r *Receiver) Cursor() int64 {
	return r.cursor
}

// LappedCount returns the running count of overruns this receiver has
// detected and resynchronised from.
func (r *Receiver) LappedCount() uint64 {
	return r.lappedCount
}

// ReceiveNext returns the next undelivered record, skipping any padding
// records transparently. ok is false if the receiver's cursor has caught up
// to the published TAIL (acquire); there is nothing new to read.
//
// The returned payload aliases the underlying buffer; it is only valid
// until the caller calls Validate, and Validate may determine the producer
// has already overwritten it (see Validate's doc comment). Callers must
// call Validate exactly once after each true-returning ReceiveNext before
// using the result of a subsequent ReceiveNext.
func (r *Receiver) ReceiveNext() (ok bool, msgTypeID int32, payload []byte) {
	tail := r.buffer.GetInt64Acquire(r.tailIndex)
	cursor := r.cursor

	for cursor < tail {
		offset := int32(cursor & int64(r.mask))
		length := r.buffer.GetInt32(lengthOffset(offset))
		typeID := r.buffer.GetInt32(typeOffset(offset))
		alignedLength := alignUp(length, RecordAlignment)

		if typeID == PaddingMsgTypeID {
			cursor += int64(alignedLength)
			continue
		}

		r.cursor = cursor
		r.cursorBeforeAdv = cursor
		r.nextCursor = cursor + int64(alignedLength)
		payload = r.buffer.GetBytes(msgOffset(offset), length-HeaderLength)
		return true, typeID, payload
	}

	r.cursor = cursor
	return false, 0, nil
}

// Validate must be called after a caller is done using the payload
// returned by a true-returning ReceiveNext, before the next ReceiveNext.
//
// It returns true if the record just consumed is still guaranteed not to
// have been overwritten by the producer: that is, if
// TAIL_INTENT - capacity <= the cursor the record was read from (an
// acquire load of TAIL_INTENT). If it returns false, the receiver has been
// overrun: Validate resynchronises the cursor to the current LATEST
// (acquire) and increments LappedCount before returning, so the next
// ReceiveNext resumes from the most recent message rather than from stale,
// possibly-torn data.
func (r *Receiver) Validate() bool {
	tailIntent := r.buffer.GetInt64Acquire(r.tailIntentIndex)
	if tailIntent-int64(r.capacity) > r.cursorBeforeAdv {
		r.lappedCount++
		r.cursor = r.buffer.GetInt64Acquire(r.latestIndex)
		r.nextCursor = r.cursor
		return false
	}
	r.cursor = r.nextCursor
	return true
}
