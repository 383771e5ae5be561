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

// Package workload generates synthetic element streams for exercising cardinality sketches.
// Every generator owns all of its state, including its random source, so any number of
// them can coexist. A single generator is not safe for concurrent use.
package workload

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Generator produces a stream of integer items.
type Generator interface {
	// Next returns the next item in the stream.
	Next() int64
	// LastValue returns the item most recently returned by Next.
	LastValue() int64
}

// generatorOptions holds optional parameters shared by all generators.
type generatorOptions struct {
	seed         int64
	zipfianConst float64
	rng          *rand.Rand
}

// GeneratorOption is a functional option for configuring a generator.
type GeneratorOption func(*generatorOptions)

// WithSeed seeds the generator's private random source.
func WithSeed(seed int64) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.seed = seed
	}
}

// WithRand makes the generator draw from r instead of a private source. r must not be
// shared with another goroutine.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.rng = r
	}
}

// WithZipfianConstant sets theta, the skew of a Zipfian generator. It must be in (0, 1).
func WithZipfianConstant(theta float64) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.zipfianConst = theta
	}
}

func applyOptions(opts []GeneratorOption) generatorOptions {
	o := generatorOptions{
		seed:         DefaultSeed,
		zipfianConst: DefaultZipfianConstant,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(o.seed))
	}
	return o
}

// DefaultSeed is used when no seed or random source is given.
const DefaultSeed = int64(1)

// Take draws n items from g, converted to T.
func Take[T constraints.Integer](g Generator, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(g.Next())
	}
	return out
}

// ExactDistinct returns the exact number of distinct values in items.
func ExactDistinct[T comparable](items []T) int {
	seen := make(map[T]struct{}, len(items))
	for _, x := range items {
		seen[x] = struct{}{}
	}
	return len(seen)
}

// UniformGenerator draws items uniformly from [min, max].
type UniformGenerator struct {
	min, max  int64
	lastValue int64
	rng       *rand.Rand
}

// NewUniformGenerator returns a generator of items uniformly distributed in [min, max].
func NewUniformGenerator(min, max int64, opts ...GeneratorOption) (*UniformGenerator, error) {
	if err := checkRange(min, max); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &UniformGenerator{min: min, max: max, lastValue: min, rng: o.rng}, nil
}

func (u *UniformGenerator) Next() int64 {
	u.lastValue = u.min + u.rng.Int63n(u.max-u.min+1)
	return u.lastValue
}

func (u *UniformGenerator) LastValue() int64 {
	return u.lastValue
}
