//go:build unix

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
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CreateRegion maps an anonymous, process-private region sized for a data
// area of capacity bytes. capacity must be a power of two of at least
// MinCapacity; this is re-validated by NewTransmitter/NewReceiver, but
// CreateRegion checks it up front so callers get a clear error before any
// syscall.
//
// Anonymous regions are suitable for same-process producer/consumer use
// (tests, benchmarks, in-process fan-out); they cannot be attached to from
// another process. Use CreateNamedRegion for that.
func CreateRegion(capacity int32) (*Region, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	size := regionSize(capacity)
	mem, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("broadcast: mmap anonymous region: %w", err)
	}

	return &Region{mem: mem, buf: NewAtomicBuffer(mem)}, nil
}

// CreateNamedRegion creates a new backing file at name (resolved under
// /dev/shm when available, the OS temp dir otherwise, matching the
// teacher's segment path convention) sized for a data area of capacity
// bytes, and maps it MAP_SHARED so other processes that open the same path
// observe the same memory.
//
// CreateNamedRegion fails if a file already exists at the resolved path;
// callers that want to attach to an existing region should use
// OpenNamedRegion instead.
func CreateNamedRegion(name string, capacity int32) (*Region, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	path := filepath.Join(defaultRegionDir(), name)
	size := regionSize(capacity)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("broadcast: create region file %s: %w", path, err)
	}

	if err := file.Truncate(size); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("broadcast: resize region file %s: %w", path, err)
	}

	mem, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("broadcast: mmap region file %s: %w", path, err)
	}

	return &Region{file: file, mem: mem, buf: NewAtomicBuffer(mem), path: path}, nil
}

// OpenNamedRegion attaches to an existing named region created by
// CreateNamedRegion, inferring the data area capacity from the file size.
func OpenNamedRegion(name string) (*Region, error) {
	path := filepath.Join(defaultRegionDir(), name)

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("broadcast: open region file %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("broadcast: stat region file %s: %w", path, err)
	}

	size := info.Size()
	if size < int64(TrailerLength) {
		file.Close()
		return nil, fmt.Errorf("broadcast: region file %s too small: %d bytes", path, size)
	}

	mem, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("broadcast: mmap region file %s: %w", path, err)
	}

	return &Region{file: file, mem: mem, buf: NewAtomicBuffer(mem), path: path}, nil
}

// Close unmaps the region's memory and, for a named region, closes the
// backing file descriptor. It does not remove the backing file: another
// process may still need to attach to it. Use RemoveNamedRegion for that.
func (r *Region) Close() error {
	var firstErr error

	if r.mem != nil {
		if err := unix.Munmap(r.mem); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("broadcast: munmap region: %w", err)
		}
		r.mem = nil
	}

	if r.file != nil {
		if err := r.file.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("broadcast: close region file: %w", err)
		}
		r.file = nil
	}

	return firstErr
}

// RemoveNamedRegion deletes the backing file for a named region created by
// CreateNamedRegion. Safe to call after all attachers have closed.
func RemoveNamedRegion(name string) error {
	path := filepath.Join(defaultRegionDir(), name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("broadcast: remove region file %s: %w", path, err)
	}
	return nil
}
