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
	"fmt"
)

// LatestGenerator favors the most recently inserted items: with a basis of n items
// numbered 0..n-1, item n-1 is the most popular and popularity decays along a Zipfian
// curve toward item 1.
type LatestGenerator struct {
	basis     int64
	lastValue int64
	zipf      *ZipfGenerator
}

// NewLatestGenerator returns a recency-biased generator over basis items. The Zipfian
// generator it draws offsets from should have been built over [0, basis-1].
func NewLatestGenerator(zipf *ZipfGenerator, basis int64) (*LatestGenerator, error) {
	if zipf == nil {
		return nil, fmt.Errorf("latest generator needs a zipfian generator")
	}
	if basis < 2 {
		return nil, fmt.Errorf("%w: latest generator basis must be at least 2: %d", ErrInvalidRange, basis)
	}
	l := &LatestGenerator{basis: basis, zipf: zipf}
	l.Next()
	return l, nil
}

// NewLatestGeneratorOver builds the Zipfian generator over [0, basis-1] as well.
func NewLatestGeneratorOver(basis int64, opts ...GeneratorOption) (*LatestGenerator, error) {
	zipf, err := NewZipfGenerator(0, basis-1, opts...)
	if err != nil {
		return nil, err
	}
	return NewLatestGenerator(zipf, basis)
}

// Next returns an item in [1, basis-1].
func (l *LatestGenerator) Next() int64 {
	newest := l.basis - 1
	l.lastValue = newest - l.zipf.NextLong(newest)
	return l.lastValue
}

func (l *LatestGenerator) LastValue() int64 {
	return l.lastValue
}

// Insert records that n more items exist, so they become the most recent ones.
func (l *LatestGenerator) Insert(n int64) {
	if n > 0 {
		l.basis += n
	}
}

// Basis returns the current number of items.
func (l *LatestGenerator) Basis() int64 {
	return l.basis
}
