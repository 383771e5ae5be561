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
	"errors"
	"fmt"
	"math"
)

const (
	minShardingBits = 4
	maxShardingBits = 16

	// DefaultShardingBits gives 256 one-byte buckets, roughly a 20% error bound at 3 standard deviations.
	DefaultShardingBits = 8

	hashBits = 64
)

const (
	alpha16 = 0.673
	alpha32 = 0.697
	alpha64 = 0.709

	rseFactor = 1.04
)

var (
	two64               = math.Ldexp(1, hashBits)
	largeRangeThreshold = two64 / 30
)

var (
	ErrInvalidConfig  = errors.New("invalid sketch configuration")
	ErrConfigMismatch = errors.New("sketches have different bucket configurations")
	ErrEmptyMerge     = errors.New("no sketches to merge")
)

// checkShardingBits returns the given number of sharding bits if it is valid and an error otherwise.
func checkShardingBits(numShardingBits int) (int, error) {
	if numShardingBits >= minShardingBits && numShardingBits <= maxShardingBits {
		return numShardingBits, nil
	}
	return 0, fmt.Errorf("%w: sharding bits must be between %d and %d, inclusive: %d",
		ErrInvalidConfig, minShardingBits, maxShardingBits, numShardingBits)
}

func checkNumStdDev(numStdDev int) error {
	if numStdDev < 1 || numStdDev > 3 {
		return fmt.Errorf("numStdDev may not be less than 1 or greater than 3: %d", numStdDev)
	}
	return nil
}

// alpha is the bias correction constant from Flajolet et al. 2007, Fig. 3.
func alpha(numBuckets int) float64 {
	switch numBuckets {
	case 16:
		return alpha16
	case 32:
		return alpha32
	case 64:
		return alpha64
	default:
		return 0.7213 / (1.0 + 1.079/float64(numBuckets))
	}
}

// RelativeStandardError returns the expected relative standard error, 1.04/sqrt(m), of a
// sketch configured with the given number of sharding bits.
func RelativeStandardError(numShardingBits int) (float64, error) {
	b, err := checkShardingBits(numShardingBits)
	if err != nil {
		return 0, err
	}
	return rseFactor / math.Sqrt(float64(uint64(1)<<b)), nil
}
