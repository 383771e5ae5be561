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

package workload

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// DefaultZipfianConstant is the skew used by YCSB and most key-value benchmarks.
const DefaultZipfianConstant = 0.99

var ErrInvalidRange = errors.New("invalid item range")

func checkRange(min, max int64) error {
	if max < min {
		return fmt.Errorf("%w: max %d is less than min %d", ErrInvalidRange, max, min)
	}
	if max-min < 0 || max-min == math.MaxInt64 {
		return fmt.Errorf("%w: [%d, %d] holds more than %d items", ErrInvalidRange, min, max, int64(math.MaxInt64))
	}
	return nil
}

// ZipfGenerator draws items from a Zipfian distribution over [min, max], item min being the
// most popular, using the method from Gray et al., "Quickly Generating Billion-Record
// Synthetic Databases", SIGMOD 1994.
//
// The normalization constant zeta(n) is O(n) to compute. When NextLong is asked for a larger
// item count than the one zeta was computed for, it is extended incrementally.
type ZipfGenerator struct {
	items int64 // number of items in the initial range
	base  int64 // smallest item

	theta      float64
	alpha      float64 // 1 / (1 - theta)
	zeta2theta float64
	zetan      float64
	eta        float64

	countForZeta int64 // item count zetan was computed for
	lastValue    int64

	rng *rand.Rand
}

// NewZipfGenerator returns a Zipfian generator for items between min and max, inclusive.
func NewZipfGenerator(min, max int64, opts ...GeneratorOption) (*ZipfGenerator, error) {
	if err := checkRange(min, max); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	if !(o.zipfianConst > 0 && o.zipfianConst < 1) {
		return nil, fmt.Errorf("zipfian constant must be in (0, 1): %v", o.zipfianConst)
	}

	z := &ZipfGenerator{
		items: max - min + 1,
		base:  min,
		theta: o.zipfianConst,
		rng:   o.rng,
	}
	z.alpha = 1.0 / (1.0 - z.theta)
	z.zeta2theta = zetaStatic(0, 2, z.theta, 0)
	z.zetan = zetaStatic(0, z.items, z.theta, 0)
	z.countForZeta = z.items
	z.eta = z.computeEta()

	z.Next()
	return z, nil
}

// zetaStatic returns initialSum + sum of 1/(i+1)^theta for i in [st, n).
func zetaStatic(st, n int64, theta float64, initialSum float64) float64 {
	sum := initialSum
	for i := st; i < n; i++ {
		sum += 1 / math.Pow(float64(i+1), theta)
	}
	return sum
}

func (z *ZipfGenerator) computeEta() float64 {
	return (1 - math.Pow(2.0/float64(z.items), 1-z.theta)) / (1 - z.zeta2theta/z.zetan)
}

// NextLong returns an item in [min, min+itemCount). itemCount may grow between calls;
// shrinking it reuses the larger zeta, which skews slightly toward the head. Counts below
// one are treated as one.
func (z *ZipfGenerator) NextLong(itemCount int64) int64 {
	itemCount = max(itemCount, 1)
	if itemCount > z.countForZeta {
		z.zetan = zetaStatic(z.countForZeta, itemCount, z.theta, z.zetan)
		z.countForZeta = itemCount
		z.eta = z.computeEta()
	}

	u := z.rng.Float64()
	uz := u * z.zetan

	var ret int64
	switch {
	case uz < 1.0:
		ret = z.base
	case uz < 1.0+math.Pow(0.5, z.theta):
		ret = z.base + 1
	default:
		ret = z.base + int64(float64(itemCount)*math.Pow(z.eta*u-z.eta+1, z.alpha))
	}
	// guard against floating point landing on the exclusive upper end
	if last := z.base + itemCount - 1; ret > last {
		ret = last
	}
	z.lastValue = ret
	return ret
}

// Next returns an item in [min, max].
func (z *ZipfGenerator) Next() int64 {
	return z.NextLong(z.items)
}

func (z *ZipfGenerator) LastValue() int64 {
	return z.lastValue
}

// Items returns the number of items in the generator's range.
func (z *ZipfGenerator) Items() int64 {
	return z.items
}
