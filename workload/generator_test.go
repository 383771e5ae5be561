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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipfGeneratorRange(t *testing.T) {
	z, err := NewZipfGenerator(10, 1009, WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), z.Items())
	for i := 0; i < 100000; i++ {
		v := z.Next()
		require.GreaterOrEqual(t, v, int64(10))
		require.LessOrEqual(t, v, int64(1009))
		require.Equal(t, v, z.LastValue())
	}
}

func TestZipfGeneratorSkew(t *testing.T) {
	const n = 200000
	z, err := NewZipfGenerator(0, 999, WithSeed(5))
	require.NoError(t, err)

	counts := make(map[int64]int)
	for i := 0; i < n; i++ {
		counts[z.Next()]++
	}
	p0 := 1 / z.zetan
	p1 := math.Pow(0.5, z.theta) / z.zetan
	assert.InDelta(t, p0, float64(counts[0])/n, 0.01)
	assert.InDelta(t, p1, float64(counts[1])/n, 0.01)
	assert.Greater(t, counts[0], counts[1])
	assert.Greater(t, counts[1], counts[100])
}

func TestZipfGeneratorReproducible(t *testing.T) {
	a, err := NewZipfGenerator(0, 10000, WithSeed(42))
	require.NoError(t, err)
	b, err := NewZipfGenerator(0, 10000, WithSeed(42))
	require.NoError(t, err)
	c, err := NewZipfGenerator(0, 10000, WithSeed(43))
	require.NoError(t, err)

	sa, sb, sc := Take[int64](a, 1000), Take[int64](b, 1000), Take[int64](c, 1000)
	assert.Equal(t, sa, sb)
	assert.NotEqual(t, sa, sc)
}

func TestZipfGeneratorsDoNotShareState(t *testing.T) {
	solo, err := NewZipfGenerator(0, 500, WithSeed(7))
	require.NoError(t, err)
	expected := Take[int64](solo, 200)

	a, err := NewZipfGenerator(0, 500, WithSeed(7))
	require.NoError(t, err)
	other, err := NewZipfGenerator(0, 90000, WithSeed(8), WithZipfianConstant(0.5))
	require.NoError(t, err)

	got := make([]int64, 0, 200)
	for i := 0; i < 200; i++ {
		got = append(got, a.Next())
		other.NextLong(100000)
	}
	assert.Equal(t, expected, got)
}

func TestZipfGeneratorIncrementalZeta(t *testing.T) {
	z, err := NewZipfGenerator(0, 999, WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), z.countForZeta)

	for i := 0; i < 1000; i++ {
		v := z.NextLong(2000)
		require.Less(t, v, int64(2000))
	}
	assert.Equal(t, int64(2000), z.countForZeta)
	assert.InEpsilon(t, zetaStatic(0, 2000, z.theta, 0), z.zetan, 1e-12)

	// a smaller count keeps the larger zeta and stays in range
	for i := 0; i < 1000; i++ {
		require.Less(t, z.NextLong(10), int64(10))
	}
	assert.Equal(t, int64(2000), z.countForZeta)
	assert.Equal(t, int64(0), z.NextLong(0))
}

func TestZipfGeneratorSharedRand(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	z, err := NewZipfGenerator(0, 100, WithRand(r))
	require.NoError(t, err)
	assert.Same(t, r, z.rng)
}

func TestZipfGeneratorInvalidArguments(t *testing.T) {
	_, err := NewZipfGenerator(10, 9)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewZipfGenerator(math.MinInt64, math.MaxInt64)
	assert.ErrorIs(t, err, ErrInvalidRange)

	for _, theta := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		_, err = NewZipfGenerator(0, 10, WithZipfianConstant(theta))
		assert.Error(t, err, "theta=%v", theta)
	}
}

func TestZipfGeneratorSingleItem(t *testing.T) {
	z, err := NewZipfGenerator(5, 5)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(5), z.Next())
	}
}

func TestLatestGenerator(t *testing.T) {
	const basis = 1000
	l, err := NewLatestGeneratorOver(basis, WithSeed(13))
	require.NoError(t, err)
	assert.Equal(t, int64(basis), l.Basis())

	counts := make(map[int64]int)
	for i := 0; i < 100000; i++ {
		v := l.Next()
		require.GreaterOrEqual(t, v, int64(1))
		require.LessOrEqual(t, v, int64(basis-1))
		require.Equal(t, v, l.LastValue())
		counts[v]++
	}
	assert.Greater(t, counts[basis-1], counts[basis-2])
	assert.Greater(t, counts[basis-2], counts[basis/2])
}

func TestLatestGeneratorInsert(t *testing.T) {
	l, err := NewLatestGeneratorOver(100, WithSeed(17))
	require.NoError(t, err)
	l.Insert(50)
	l.Insert(-3)
	assert.Equal(t, int64(150), l.Basis())

	counts := make(map[int64]int)
	for i := 0; i < 50000; i++ {
		v := l.Next()
		require.LessOrEqual(t, v, int64(149))
		counts[v]++
	}
	assert.Greater(t, counts[149], counts[99])
}

func TestLatestGeneratorInvalidArguments(t *testing.T) {
	_, err := NewLatestGenerator(nil, 10)
	assert.Error(t, err)

	z, err := NewZipfGenerator(0, 10)
	require.NoError(t, err)
	_, err = NewLatestGenerator(z, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUniformGenerator(t *testing.T) {
	u, err := NewUniformGenerator(-5, 5, WithSeed(19))
	require.NoError(t, err)
	seen := make(map[int64]bool)
	for i := 0; i < 10000; i++ {
		v := u.Next()
		require.GreaterOrEqual(t, v, int64(-5))
		require.LessOrEqual(t, v, int64(5))
		assert.Equal(t, v, u.LastValue())
		seen[v] = true
	}
	assert.Len(t, seen, 11)

	_, err = NewUniformGenerator(1, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTakeAndExactDistinct(t *testing.T) {
	u, err := NewUniformGenerator(0, 9, WithSeed(23))
	require.NoError(t, err)
	items := Take[uint64](u, 1000)
	assert.Len(t, items, 1000)
	assert.Equal(t, 10, ExactDistinct(items))

	assert.Equal(t, 0, ExactDistinct([]int{}))
	assert.Equal(t, 3, ExactDistinct([]string{"a", "b", "a", "c"}))
}
