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
	"fmt"
)

// MergedEstimate returns the bias corrected estimate of the union of every population fed
// to the given sketches. All sketches must have the same number of sharding bits. None of
// them is modified.
func MergedEstimate(sketches ...*Sketch) (int64, error) {
	cfg, err := checkMergeable(sketches)
	if err != nil {
		return 0, err
	}
	merged := make([]uint8, cfg.numBuckets)
	for _, s := range sketches {
		mergeCounters(merged, s.counters)
	}
	return toCardinality(estimate(merged, cfg.alphaNumBuckets2)), nil
}

// Merge folds other into this sketch so that it represents the union of both populations.
// other is not modified.
func (s *Sketch) Merge(other *Sketch) error {
	if _, err := checkMergeable([]*Sketch{s, other}); err != nil {
		return err
	}
	mergeCounters(s.counters, other.counters)
	return nil
}

// mergeCounters sets dst to the elementwise maximum of dst and src.
func mergeCounters(dst []uint8, src []uint8) {
	for i, c := range src {
		if c > dst[i] {
			dst[i] = c
		}
	}
}

// checkMergeable returns the shared config of the given sketches, or an error if there are
// none, one is nil, or their configurations differ.
func checkMergeable(sketches []*Sketch) (sketchConfig, error) {
	if len(sketches) == 0 {
		return sketchConfig{}, ErrEmptyMerge
	}
	for i, s := range sketches {
		if s == nil {
			return sketchConfig{}, fmt.Errorf("sketch %d is nil", i)
		}
	}
	cfg := sketches[0].sketchConfig
	for i, s := range sketches[1:] {
		if s.numShardingBits != cfg.numShardingBits {
			return sketchConfig{}, fmt.Errorf("%w: sketch %d has %d sharding bits, sketch 0 has %d",
				ErrConfigMismatch, i+1, s.numShardingBits, cfg.numShardingBits)
		}
	}
	return cfg, nil
}
