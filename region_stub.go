//go:build !unix

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

// ErrRegionUnsupported is returned by CreateRegion, CreateNamedRegion, and
// OpenNamedRegion on platforms without a POSIX mmap implementation wired
// up. Callers on such platforms may still use NewTransmitter/NewReceiver
// directly over an AtomicBuffer backed by a plain []byte.
var ErrRegionUnsupported = errors.New("broadcast: shared memory regions not supported on this platform")

// CreateRegion is unsupported outside unix build targets.
func CreateRegion(capacity int32) (*Region, error) {
	return nil, ErrRegionUnsupported
}

// CreateNamedRegion is unsupported outside unix build targets.
func CreateNamedRegion(name string, capacity int32) (*Region, error) {
	return nil, ErrRegionUnsupported
}

// OpenNamedRegion is unsupported outside unix build targets.
func OpenNamedRegion(name string) (*Region, error) {
	return nil, ErrRegionUnsupported
}

// RemoveNamedRegion is unsupported outside unix build targets.
func RemoveNamedRegion(name string) error {
	return ErrRegionUnsupported
}

// Close is a no-op on platforms without a region implementation; Region
// values can never be constructed here, but the method must still exist to
// satisfy any shared code paths.
func (r *Region) Close() error {
	return nil
}
