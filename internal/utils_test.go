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

package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvPow2(t *testing.T) {
	assert.Equal(t, 1.0, InvPow2(0))
	assert.Equal(t, 0.5, InvPow2(1))
	for e := 0; e <= 65; e++ {
		assert.Equal(t, math.Ldexp(1, -e), InvPow2(e), "e=%d", e)
	}
}

func TestInvPow2OutOfRange(t *testing.T) {
	assert.Panics(t, func() { InvPow2(-1) })
	assert.Panics(t, func() { InvPow2(1024) })
}
