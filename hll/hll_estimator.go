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

package hll

import (
	"math"

	"github.com/cachesize/hyperloglog-go/internal"
)

// invPow2 caches 2^-k for every counter value a bucket can hold.
var invPow2 = func() [hashBits + 2]float64 {
	var t [hashBits + 2]float64
	for k := range t {
		t[k] = internal.InvPow2(k)
	}
	return t
}()

// rawEstimate is the algorithm from Flajolet's, et al, 2007 HLL paper, Fig 3:
// alpha * m^2 over the sum of 2^-counter.
func rawEstimate(counters []uint8, alphaNumBuckets2 float64) float64 {
	sum := 0.0
	for _, c := range counters {
		sum += invPow2[c]
	}
	return alphaNumBuckets2 / sum
}

// estimate is the bias corrected estimator. Exactly one of three ranges applies:
//
//   - small, raw <= 2.5m with at least one empty bucket: linear counting, m * ln(m/z).
//   - mid, raw <= 2^64/30: the raw estimate.
//   - large: -2^64 * ln(1 - raw/2^64), correcting for hash collisions.
func estimate(counters []uint8, alphaNumBuckets2 float64) float64 {
	numBuckets := float64(len(counters))
	raw := rawEstimate(counters, alphaNumBuckets2)

	if raw <= 2.5*numBuckets {
		// z > 0 keeps the logarithm finite.
		if z := countZeros(counters); z > 0 {
			return linearCountingEstimate(numBuckets, float64(z))
		}
	}
	if raw <= largeRangeThreshold {
		return raw
	}
	if raw >= two64 {
		// Only reachable with saturated buckets; the correction is undefined here.
		return math.Inf(1)
	}
	return -two64 * math.Log(1.0-raw/two64)
}

// linearCountingEstimate is the estimator when N is small, based on the fraction of
// buckets that were never hit.
func linearCountingEstimate(numBuckets float64, numZeros float64) float64 {
	return numBuckets * math.Log(numBuckets/numZeros)
}

func countZeros(counters []uint8) int {
	z := 0
	for _, c := range counters {
		if c == 0 {
			z++
		}
	}
	return z
}

// toCardinality rounds an estimate to the nearest integer, saturating at math.MaxInt64.
func toCardinality(est float64) int64 {
	r := math.Round(est)
	if r >= math.MaxInt64 || math.IsNaN(r) {
		return math.MaxInt64
	}
	return int64(r)
}
