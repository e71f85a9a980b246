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

// Buffer layout: an AtomicBuffer's data area occupies bytes
// [0, capacity), and is followed immediately by a fixed-size trailer
// holding the three counters the Transmitter and Receiver coordinate
// through. The trailer is sized and laid out so each counter lives on its
// own cache line.
const (
	// MinCapacity is the smallest data area capacity NewTransmitter and
	// NewReceiver will accept: enough to hold one aligned record header
	// with no payload, with headroom.
	MinCapacity int32 = 64

	// TailIntentCounterOffset is the trailer-relative offset of the
	// TAIL_INTENT counter: the producer's declaration of where the next
	// record will end, published before it writes anything.
	TailIntentCounterOffset int32 = 0

	// TailCounterOffset is the trailer-relative offset of the TAIL
	// counter: the committed end of the last fully written record.
	TailCounterOffset int32 = 64

	// LatestCounterOffset is the trailer-relative offset of the LATEST
	// counter: the absolute start position of the most recently committed
	// non-padding record.
	LatestCounterOffset int32 = 128

	// TrailerLength is the fixed size, in bytes, of the trailer following
	// the data area. It must be a multiple of the cache-line-aligned
	// counter spacing above.
	TrailerLength int32 = 192
)

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int32) bool {
	return n > 0 && (n&(n-1)) == 0
}

// checkCapacity validates a data area capacity shared by both Transmitter
// and Receiver construction: it must be a power of two and at least
// MinCapacity.
func checkCapacity(capacity int32) error {
	if capacity < MinCapacity || !isPowerOfTwo(capacity) {
		return ErrInvalidCapacity
	}
	return nil
}

// dataCapacity returns the data area capacity implied by a buffer of the
// given total length (data area plus trailer).
func dataCapacity(totalLength int32) int32 {
	return totalLength - TrailerLength
}
