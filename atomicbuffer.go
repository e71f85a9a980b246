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
	"fmt"
	"sync/atomic"
	"unsafe"
)

// AtomicBuffer is a thin, non-owning view over a byte-addressable region,
// typically backed by a shared memory mapping (see Region) but equally
// usable over a plain heap-allocated []byte in unit tests. It exposes the
// aligned 32- and 64-bit loads/stores the core ring needs at three explicit
// orderings: plain, acquire, and release.
//
// AtomicBuffer never allocates and never copies the underlying slice; it
// only computes addresses into it. Callers are responsible for keeping the
// backing slice alive for the lifetime of the AtomicBuffer.
type AtomicBuffer struct {
	mem []byte
}

// NewAtomicBuffer wraps mem without copying it.
func NewAtomicBuffer(mem []byte) *AtomicBuffer {
	return &AtomicBuffer{mem: mem}
}

// Capacity returns the total length of the underlying region, data area
// plus trailer.
func (b *AtomicBuffer) Capacity() int32 {
	return int32(len(b.mem))
}

// Bytes exposes the raw backing slice. Callers that need to hand payload
// bytes to a Transmitter should slice this directly rather than copying.
func (b *AtomicBuffer) Bytes() []byte {
	return b.mem
}

func (b *AtomicBuffer) checkBounds(offset, width int32) {
	if offset < 0 || width < 0 || int64(offset)+int64(width) > int64(len(b.mem)) {
		panic(fmt.Sprintf("broadcast: access [%d, %d) out of bounds for buffer of length %d", offset, offset+width, len(b.mem)))
	}
}

func (b *AtomicBuffer) checkAligned(offset int32, alignment int32) {
	if offset&(alignment-1) != 0 {
		panic(fmt.Sprintf("broadcast: offset %d is not %d-byte aligned", offset, alignment))
	}
}

func (b *AtomicBuffer) ptrAt(offset int32) unsafe.Pointer {
	return unsafe.Pointer(&b.mem[offset])
}

// GetInt32 performs a plain (unordered) 32-bit load at offset.
func (b *AtomicBuffer) GetInt32(offset int32) int32 {
	b.checkBounds(offset, 4)
	b.checkAligned(offset, 4)
	return *(*int32)(b.ptrAt(offset))
}

// PutInt32 performs a plain (unordered) 32-bit store at offset.
func (b *AtomicBuffer) PutInt32(offset int32, value int32) {
	b.checkBounds(offset, 4)
	b.checkAligned(offset, 4)
	*(*int32)(b.ptrAt(offset)) = value
}

// GetInt32Acquire performs an acquire 32-bit load at offset: it observes
// every store released before the matching PutInt32Release on the same
// address.
func (b *AtomicBuffer) GetInt32Acquire(offset int32) int32 {
	b.checkBounds(offset, 4)
	b.checkAligned(offset, 4)
	return atomic.LoadInt32((*int32)(b.ptrAt(offset)))
}

// PutInt32Release performs a release 32-bit store at offset: it becomes
// visible to a matching acquire load only after every prior store issued by
// this goroutine.
func (b *AtomicBuffer) PutInt32Release(offset int32, value int32) {
	b.checkBounds(offset, 4)
	b.checkAligned(offset, 4)
	atomic.StoreInt32((*int32)(b.ptrAt(offset)), value)
}

// GetInt64 performs a plain (unordered) 64-bit load at offset.
func (b *AtomicBuffer) GetInt64(offset int32) int64 {
	b.checkBounds(offset, 8)
	b.checkAligned(offset, 8)
	return *(*int64)(b.ptrAt(offset))
}

// PutInt64 performs a plain (unordered) 64-bit store at offset.
func (b *AtomicBuffer) PutInt64(offset int32, value int64) {
	b.checkBounds(offset, 8)
	b.checkAligned(offset, 8)
	*(*int64)(b.ptrAt(offset)) = value
}

// GetInt64Acquire performs an acquire 64-bit load at offset.
func (b *AtomicBuffer) GetInt64Acquire(offset int32) int64 {
	b.checkBounds(offset, 8)
	b.checkAligned(offset, 8)
	return atomic.LoadInt64((*int64)(b.ptrAt(offset)))
}

// PutInt64Release performs a release 64-bit store at offset.
func (b *AtomicBuffer) PutInt64Release(offset int32, value int64) {
	b.checkBounds(offset, 8)
	b.checkAligned(offset, 8)
	atomic.StoreInt64((*int64)(b.ptrAt(offset)), value)
}

// PutBytes copies src[srcOffset : srcOffset+length] into the buffer at
// dstOffset. The copy is plain; callers that need the write visible to a
// concurrent acquire-loader must follow it with a release store of a
// counter that covers these bytes (the Transmitter does this).
func (b *AtomicBuffer) PutBytes(dstOffset int32, src []byte, srcOffset, length int32) {
	b.checkBounds(dstOffset, length)
	if srcOffset < 0 || length < 0 || int64(srcOffset)+int64(length) > int64(len(src)) {
		panic(fmt.Sprintf("broadcast: source slice [%d, %d) out of bounds for slice of length %d", srcOffset, srcOffset+length, len(src)))
	}
	copy(b.mem[dstOffset:dstOffset+length], src[srcOffset:srcOffset+length])
}

// GetBytes returns a slice view (no copy) of length bytes starting at
// offset. The slice aliases the buffer's backing memory; it is only valid
// to read from it, and only until the producer overwrites that region.
func (b *AtomicBuffer) GetBytes(offset, length int32) []byte {
	b.checkBounds(offset, length)
	return b.mem[offset : offset+length : offset+length]
}
