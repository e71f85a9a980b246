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

import "os"

// Region is a concrete host-system adapter for the "shared memory region"
// external collaborator the ring core treats as opaque. It owns a mapped
// byte slice and, for named regions, the backing file descriptor; the ring
// types (Transmitter, Receiver) never see any of that, only the
// AtomicBuffer Region.Buffer returns.
//
// Region is intentionally a thin wrapper: it makes no framing decisions and
// holds no counters of its own.
type Region struct {
	file *os.File
	mem  []byte
	buf  *AtomicBuffer
	path string
}

// Buffer returns the AtomicBuffer view over this region's mapped memory.
func (r *Region) Buffer() *AtomicBuffer {
	return r.buf
}

// Path returns the backing file path for a named region, or "" for an
// anonymous one.
func (r *Region) Path() string {
	return r.path
}

// regionSize returns the total mmap length (data area plus trailer) for a
// data area of the given capacity.
func regionSize(capacity int32) int64 {
	return int64(capacity) + int64(TrailerLength)
}

// defaultRegionDir mirrors the teacher's /dev/shm-first, temp-dir-fallback
// convention for locating named shared memory segments.
func defaultRegionDir() string {
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		return "/dev/shm"
	}
	return os.TempDir()
}
