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

package hashing

// HashAdder is anything that accepts pre-hashed elements, such as *hll.Sketch.
type HashAdder interface {
	AddHash(hash uint64) bool
}

// Updater hashes raw elements and feeds the hashes to a HashAdder. Like the sketch it
// wraps, it is not safe for concurrent use.
type Updater struct {
	sink   HashAdder
	hasher Hasher
}

// NewUpdater returns an Updater feeding sink. A nil hasher selects Default().
func NewUpdater(sink HashAdder, hasher Hasher) *Updater {
	if hasher == nil {
		hasher = Default()
	}
	return &Updater{sink: sink, hasher: hasher}
}

// UpdateUint64 presents the given unsigned 64-bit integer as a potential unique item.
// It reports whether the sink changed.
func (u *Updater) UpdateUint64(datum uint64) bool {
	return u.sink.AddHash(u.hasher.HashUint64(datum))
}

// UpdateInt64 presents the given signed 64-bit integer as a potential unique item.
func (u *Updater) UpdateInt64(datum int64) bool {
	return u.UpdateUint64(uint64(datum))
}

// UpdateSlice presents the given byte slice as a potential unique item. Empty slices are
// ignored.
func (u *Updater) UpdateSlice(datum []byte) bool {
	if len(datum) == 0 {
		return false
	}
	return u.sink.AddHash(u.hasher.HashBytes(datum))
}

// UpdateString presents the given string as a potential unique item. Empty strings are
// ignored.
func (u *Updater) UpdateString(datum string) bool {
	if len(datum) == 0 {
		return false
	}
	return u.sink.AddHash(u.hasher.HashString(datum))
}
