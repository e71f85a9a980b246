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

// Package broadcast implements a single-producer / many-consumer lock-free
// ring over a shared memory region.
//
// A Transmitter appends typed, length-prefixed records to the data area of
// an AtomicBuffer and publishes three trailer counters (tail-intent, tail,
// latest) in a strict order. Any number of independent Receivers may attach
// to the same buffer and read records between their own cursor and the
// published tail; a Receiver that falls far enough behind detects the
// overrun via the tail-intent counter and resynchronises to the latest
// record instead of reading torn or overwritten data.
//
// The producer side is wait-free and the consumer side is lock-free: neither
// blocks, allocates on the hot path, or coordinates with the other beyond
// the three atomically published counters. Exactly one Transmitter may be
// active against a given buffer at a time; this package does not detect or
// prevent a second one (see NewDebugTransmitter for an opt-in guard used in
// tests).
//
// This package contains the core ring only. Creating and mapping the actual
// shared memory region is the host's responsibility; see the region.go
// adapter in this module for one concrete POSIX implementation.
package broadcast
