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

import "errors"

// ErrInvalidCapacity is returned by NewTransmitter/NewReceiver when the data
// area of the supplied buffer is not a power of two or is below
// MinCapacity. Construction fails without touching the buffer.
var ErrInvalidCapacity = errors.New("broadcast: capacity must be a power of two and at least MinCapacity bytes")

// ErrInvalidArgument is returned by Transmit when msgTypeID is not a valid
// user message type (must be >= 1; PaddingMsgTypeID and 0 are reserved).
var ErrInvalidArgument = errors.New("broadcast: invalid message type id")

// ErrMessageTooLong is returned by Transmit when length exceeds the
// buffer's MaxMsgLength.
var ErrMessageTooLong = errors.New("broadcast: encoded message exceeds max message length")

// ErrReceiverOverrun is a diagnostic wrapper some callers may prefer over
// the raw bool returned by Receiver.Validate. The core itself never returns
// this error; Validate reports the same condition as a bool and resyncs the
// receiver automatically.
var ErrReceiverOverrun = errors.New("broadcast: receiver overrun, cursor resynchronised to latest")

// ErrConcurrentProducer is returned by a DebugTransmitter when, at commit,
// TAIL no longer holds the value that DebugTransmitter last committed (or
// observed at construction). It indicates a second producer is active against the same
// buffer, which violates the single-producer invariant this package does
// not otherwise enforce.
var ErrConcurrentProducer = errors.New("broadcast: concurrent producer detected")
