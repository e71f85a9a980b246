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
	"testing"
)

func TestAtomicBufferInt32RoundTrip(t *testing.T) {
	buf := NewAtomicBuffer(make([]byte, 64))
	buf.PutInt32(8, 42)
	if got := buf.GetInt32(8); got != 42 {
		t.Fatalf("GetInt32(8) = %d, want 42", got)
	}

	buf.PutInt32Release(16, -1)
	if got := buf.GetInt32Acquire(16); got != -1 {
		t.Fatalf("GetInt32Acquire(16) = %d, want -1", got)
	}
}

func TestAtomicBufferInt64RoundTrip(t *testing.T) {
	buf := NewAtomicBuffer(make([]byte, 64))
	buf.PutInt64(0, 1<<40)
	if got := buf.GetInt64(0); got != 1<<40 {
		t.Fatalf("GetInt64(0) = %d, want %d", got, 1<<40)
	}

	buf.PutInt64Release(8, -9)
	if got := buf.GetInt64Acquire(8); got != -9 {
		t.Fatalf("GetInt64Acquire(8) = %d, want -9", got)
	}
}

func TestAtomicBufferPutBytesAndGetBytes(t *testing.T) {
	buf := NewAtomicBuffer(make([]byte, 32))
	src := []byte("0123456789")
	buf.PutBytes(4, src, 2, 5)

	got := buf.GetBytes(4, 5)
	if !bytes.Equal(got, src[2:7]) {
		t.Fatalf("GetBytes(4,5) = %q, want %q", got, src[2:7])
	}
}

func TestAtomicBufferGetBytesAliasesBackingMemory(t *testing.T) {
	buf := NewAtomicBuffer(make([]byte, 16))
	buf.PutInt32(0, 1)
	view := buf.GetBytes(0, 4)
	buf.PutInt32(0, 2)
	if got := int32(view[0]); got != 2 {
		t.Fatalf("GetBytes view did not alias buffer: got first byte %d after mutation", got)
	}
}

func TestAtomicBufferMisalignedAccessPanics(t *testing.T) {
	buf := NewAtomicBuffer(make([]byte, 32))

	assertPanics(t, "GetInt32 misaligned", func() { buf.GetInt32(1) })
	assertPanics(t, "PutInt32 misaligned", func() { buf.PutInt32(3, 0) })
	assertPanics(t, "GetInt64 misaligned", func() { buf.GetInt64(4) })
	assertPanics(t, "PutInt64 misaligned", func() { buf.PutInt64(12, 0) })
}

func TestAtomicBufferOutOfBoundsPanics(t *testing.T) {
	buf := NewAtomicBuffer(make([]byte, 16))

	assertPanics(t, "GetInt32 out of bounds", func() { buf.GetInt32(16) })
	assertPanics(t, "GetInt64 out of bounds", func() { buf.GetInt64(16) })
	assertPanics(t, "GetBytes out of bounds", func() { buf.GetBytes(8, 100) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}
