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

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := map[string]struct {
		n    int32
		want bool
	}{
		"zero":             {n: 0, want: false},
		"negative":         {n: -8, want: false},
		"one":              {n: 1, want: true},
		"power of two":     {n: 1024, want: true},
		"not power of two": {n: 1000, want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := isPowerOfTwo(tc.n); got != tc.want {
				t.Errorf("isPowerOfTwo(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

// TestPowerOfTwoGuard is testable property 1: for all non-power-of-two N,
// transmitter/receiver construction fails with ErrInvalidCapacity.
func TestPowerOfTwoGuard(t *testing.T) {
	for _, capacity := range []int32{0, 1, 63, 100, 1000, 1023} {
		buf := NewAtomicBuffer(make([]byte, int(capacity)+int(TrailerLength)))
		if _, err := NewTransmitter(buf); err != ErrInvalidCapacity {
			t.Errorf("NewTransmitter with capacity %d: err = %v, want ErrInvalidCapacity", capacity, err)
		}
		if _, err := NewReceiver(buf); err != ErrInvalidCapacity {
			t.Errorf("NewReceiver with capacity %d: err = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestCheckCapacityAcceptsCanonicalValues(t *testing.T) {
	for _, capacity := range []int32{64, 128, 1024, 1 << 20} {
		if err := checkCapacity(capacity); err != nil {
			t.Errorf("checkCapacity(%d) = %v, want nil", capacity, err)
		}
	}
}
