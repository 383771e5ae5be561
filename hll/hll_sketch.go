/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package hll estimates the number of distinct elements in a stream using a fixed amount
// of memory, following Philippe Flajolet's HyperLogLog algorithm with the 64-bit hash
// improvement from Heule, Nunkesser and Hall (2013).
//
// A Sketch is fed hashes, not elements. The caller hashes every element with any
// sufficiently uniform 64-bit hash (see the hashing package) and passes the result to
// AddHash. The low b bits of the hash select one of m = 2^b one-byte buckets; the bucket
// keeps the largest rank, one plus the number of leading zeros in the remaining 64-b
// bits, that it has seen.
//
// The typical relative error is 1.04/sqrt(m). In practice it is bounded by about three
// times that value:
//
//	sharding bits   memory (bytes)   3 * RSE
//	 4                  16             78%
//	 8                 256             20%
//	12                4096            4.9%
//	16               65536            1.2%
//
// Sketches with the same number of sharding bits can be combined with MergedEstimate or
// Merge; the union of two populations is the elementwise maximum of their counters.
//
// A Sketch is not safe for concurrent mutation. Estimates may be read concurrently with
// each other; a read racing with AddHash sees a stale but consistent value.
package hll

import (
	"fmt"
	"math/bits"
)

// Sketch is a single HyperLogLog instance: a fixed array of bucket counters plus the
// configuration it was built with.
type Sketch struct {
	sketchConfig
	counters []uint8
}

// NewSketch constructs an empty sketch.
//
//   - numShardingBits, the log2 of the number of buckets. This value must be
//     between 4 and 16 inclusively.
func NewSketch(numShardingBits int) (*Sketch, error) {
	b, err := checkShardingBits(numShardingBits)
	if err != nil {
		return nil, err
	}
	cfg := newSketchConfig(b)
	return &Sketch{
		sketchConfig: cfg,
		counters:     make([]uint8, cfg.numBuckets),
	}, nil
}

// NewSketchWithDefault constructs an empty sketch with DefaultShardingBits.
func NewSketchWithDefault() *Sketch {
	s, _ := NewSketch(DefaultShardingBits)
	return s
}

// AddHash presents an already hashed element to the sketch. It returns true if a bucket
// counter changed, which means a previously computed estimate may be out of date.
func (s *Sketch) AddHash(hash uint64) bool {
	bucket, rho := s.splitHash(hash)
	if rho > s.counters[bucket] {
		s.counters[bucket] = rho
		return true
	}
	return false
}

// splitHash decomposes a hash into its bucket index and the rank of the remaining bits.
// The low numShardingBits bits select the bucket. The rank is one plus the number of
// leading zeros in the upper 64-numShardingBits bits, or maxRho if they are all zero.
func (s *Sketch) splitHash(hash uint64) (int, uint8) {
	bucket := int(hash & s.bucketMask)
	window := hash >> s.numShardingBits
	// window has numShardingBits zeros shifted in at the top; an all-zero window yields maxRho.
	rho := uint8(bits.LeadingZeros64(window)-s.numShardingBits) + 1
	return bucket, rho
}

// Estimate returns the bias corrected cardinality estimate.
func (s *Sketch) Estimate() int64 {
	return toCardinality(estimate(s.counters, s.alphaNumBuckets2))
}

// RawEstimate returns the uncorrected HyperLogLog estimate. It is meant for diagnostics;
// it is badly biased for cardinalities below about 2.5 * NumBuckets().
func (s *Sketch) RawEstimate() int64 {
	return toCardinality(rawEstimate(s.counters, s.alphaNumBuckets2))
}

// UpperBound returns the approximate upper error bound given the specified number of
// standard deviations.
//
//   - numStdDev, this must be an integer between 1 and 3, inclusive.
func (s *Sketch) UpperBound(numStdDev int) (float64, error) {
	if err := checkNumStdDev(numStdDev); err != nil {
		return 0, err
	}
	est := estimate(s.counters, s.alphaNumBuckets2)
	return est / (1.0 - s.relErr(numStdDev)), nil
}

// LowerBound returns the approximate lower error bound given the specified number of
// standard deviations. It is never less than the number of non-empty buckets.
//
//   - numStdDev, this must be an integer between 1 and 3, inclusive.
func (s *Sketch) LowerBound(numStdDev int) (float64, error) {
	if err := checkNumStdDev(numStdDev); err != nil {
		return 0, err
	}
	est := estimate(s.counters, s.alphaNumBuckets2)
	numNonZeros := float64(s.numBuckets - countZeros(s.counters))
	return max(est/(1.0+s.relErr(numStdDev)), numNonZeros), nil
}

func (s *Sketch) relErr(numStdDev int) float64 {
	rse, _ := RelativeStandardError(s.numShardingBits)
	return float64(numStdDev) * rse
}

// IsEmpty returns true if no hash has been added since construction or the last Reset.
func (s *Sketch) IsEmpty() bool {
	return countZeros(s.counters) == s.numBuckets
}

// Counters returns a copy of the bucket counters, indexed by bucket.
func (s *Sketch) Counters() []uint8 {
	out := make([]uint8, len(s.counters))
	copy(out, s.counters)
	return out
}

// Copy returns a deep copy of this sketch.
func (s *Sketch) Copy() *Sketch {
	return &Sketch{
		sketchConfig: s.sketchConfig,
		counters:     s.Counters(),
	}
}

// Reset clears all counters but keeps the configuration.
func (s *Sketch) Reset() {
	clear(s.counters)
}

func (s *Sketch) String() string {
	return fmt.Sprintf("hll.Sketch{shardingBits: %d, buckets: %d, empty: %d, estimate: %d}",
		s.numShardingBits, s.numBuckets, countZeros(s.counters), s.Estimate())
}
