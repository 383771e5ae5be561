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

// Package hashing turns stream elements into the uniformly distributed 64-bit values a
// HyperLogLog sketch expects. Sketches never hash on their own, so the same hash can be
// computed once and fed to several sketches.
package hashing

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"

	"github.com/cachesize/hyperloglog-go/internal"
)

// Hasher maps an element to a 64-bit hash with effectively uniform bits.
type Hasher interface {
	HashUint64(datum uint64) uint64
	HashBytes(datum []byte) uint64
	HashString(datum string) uint64
}

const (
	NameMurmur3 = "murmur3"
	NameXXHash  = "xxhash"
)

// Murmur3 hashes with the low 64 bits of seeded MurmurHash3 x64 128.
type Murmur3 struct {
	seed uint64
}

// NewMurmur3 returns a Murmur3 hasher using seed for both 128-bit lanes.
func NewMurmur3(seed uint64) Murmur3 {
	return Murmur3{seed: seed}
}

func (m Murmur3) HashUint64(datum uint64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], datum)
	return m.HashBytes(scratch[:])
}

func (m Murmur3) HashBytes(datum []byte) uint64 {
	lo, _ := murmur3.SeedSum128(m.seed, m.seed, datum)
	return lo
}

func (m Murmur3) HashString(datum string) uint64 {
	// get a slice to the string data (avoiding a copy to heap)
	return m.HashBytes(unsafe.Slice(unsafe.StringData(datum), len(datum)))
}

// XXHash hashes with seeded XXH64.
type XXHash struct {
	seed uint64
}

func NewXXHash(seed uint64) XXHash {
	return XXHash{seed: seed}
}

func (x XXHash) HashUint64(datum uint64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], datum)
	return x.HashBytes(scratch[:])
}

func (x XXHash) HashBytes(datum []byte) uint64 {
	if x.seed == 0 {
		return xxhash.Sum64(datum)
	}
	h := xxhash.NewWithSeed(x.seed)
	h.Write(datum)
	return h.Sum64()
}

func (x XXHash) HashString(datum string) uint64 {
	if x.seed == 0 {
		return xxhash.Sum64String(datum)
	}
	h := xxhash.NewWithSeed(x.seed)
	h.WriteString(datum)
	return h.Sum64()
}

// Default returns the Murmur3 hasher seeded with the default update seed.
func Default() Hasher {
	return NewMurmur3(internal.DefaultUpdateSeed)
}

// ByName returns the hasher registered under name ("murmur3" or "xxhash").
func ByName(name string, seed uint64) (Hasher, error) {
	switch name {
	case NameMurmur3:
		return NewMurmur3(seed), nil
	case NameXXHash:
		return NewXXHash(seed), nil
	default:
		return nil, fmt.Errorf("unknown hash function %q, want %q or %q", name, NameMurmur3, NameXXHash)
	}
}
