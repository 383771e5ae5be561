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
)

// mix64 is the SplitMix64 finalizer. Any well mixed 64-bit hash will do.
func mix64(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func Example() {
	// 1024 buckets, about 3% relative standard error
	sketch, _ := NewSketch(10)

	for i := uint64(0); i < 100; i++ {
		sketch.AddHash(mix64(i))
	}
	fmt.Printf("Estimate of first sketch(0-100): %d (raw %d)\n", sketch.Estimate(), sketch.RawEstimate())

	for i := uint64(0); i < 100000; i++ {
		sketch.AddHash(mix64(i))
	}
	fmt.Printf("Estimate of first sketch(0-100000): %d\n", sketch.Estimate())

	anotherSketch, _ := NewSketch(10)
	for i := uint64(50000); i < 150000; i++ {
		anotherSketch.AddHash(mix64(i))
	}
	fmt.Printf("Estimate of second sketch(50000-150000): %d\n", anotherSketch.Estimate())

	union, _ := MergedEstimate(sketch, anotherSketch)
	fmt.Printf("Estimate of first and second union: %d\n", union)

	smallSketch, _ := NewSketch(8)
	_, err := MergedEstimate(sketch, smallSketch)
	fmt.Printf("Merging 1024 and 256 buckets fails: %v\n", errors.Is(err, ErrConfigMismatch))

	// Output:
	// Estimate of first sketch(0-100): 101 (raw 784)
	// Estimate of first sketch(0-100000): 100918
	// Estimate of second sketch(50000-150000): 97708
	// Estimate of first and second union: 147976
	// Merging 1024 and 256 buckets fails: true
}
