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

// sketchConfig holds the values derived from the number of sharding bits. They never change
// after construction, and two sketches can be merged only if their configs are equal.
type sketchConfig struct {
	numShardingBits int
	numBuckets      int
	bucketMask      uint64 // mask from numShardingBits to extract the bucket index

	alphaNumBuckets2 float64 // alpha(m) * m * m, the numerator of the raw estimate
}

func newSketchConfig(numShardingBits int) sketchConfig {
	numBuckets := 1 << numShardingBits
	return sketchConfig{
		numShardingBits:  numShardingBits,
		numBuckets:       numBuckets,
		bucketMask:       uint64(numBuckets - 1),
		alphaNumBuckets2: alpha(numBuckets) * float64(numBuckets) * float64(numBuckets),
	}
}

// NumShardingBits returns b, the log2 of the number of buckets.
func (c *sketchConfig) NumShardingBits() int {
	return c.numShardingBits
}

// NumBuckets returns m = 2^b.
func (c *sketchConfig) NumBuckets() int {
	return c.numBuckets
}

// maxRho is the rank stored when every bit of the window above the bucket index is zero.
func (c *sketchConfig) maxRho() uint8 {
	return uint8(hashBits - c.numShardingBits + 1)
}
