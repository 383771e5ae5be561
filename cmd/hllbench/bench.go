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

package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cachesize/hyperloglog-go/hashing"
	"github.com/cachesize/hyperloglog-go/hll"
)

type checkpoint struct {
	draws      int
	meanExact  float64
	meanEst    float64
	meanRelErr float64
	maxRelErr  float64
}

type report struct {
	cfg             config
	rse             float64
	checkpoints     []checkpoint
	mergeConsistent bool
	unchangedAdds   int // AddHash calls that left every counter alone, over all trials
	totalAdds       int
}

// checkpointsFor returns draw counts on a 1-2-5 progression up to and including draws.
func checkpointsFor(draws int) []int {
	var out []int
	for decade := 1; decade < draws; decade *= 10 {
		for _, f := range []int{1, 2, 5} {
			if n := decade * f; n < draws {
				out = append(out, n)
			}
		}
	}
	return append(out, draws)
}

// trialEstimator keeps the last estimate and recomputes it only after a counter changed.
type trialEstimator struct {
	sketch *hll.Sketch
	est    int64
	dirty  bool
}

func (e *trialEstimator) add(hash uint64) bool {
	changed := e.sketch.AddHash(hash)
	e.dirty = e.dirty || changed
	return changed
}

func (e *trialEstimator) estimate() int64 {
	if e.dirty {
		e.est = e.sketch.Estimate()
		e.dirty = false
	}
	return e.est
}

func runBench(cfg config) (report, error) {
	rse, err := hll.RelativeStandardError(cfg.shardingBits)
	if err != nil {
		return report{}, err
	}
	points := checkpointsFor(cfg.draws)
	r := report{
		cfg:             cfg,
		rse:             rse,
		checkpoints:     make([]checkpoint, len(points)),
		mergeConsistent: true,
	}
	for i, n := range points {
		r.checkpoints[i].draws = n
	}

	for trial := 0; trial < cfg.trials; trial++ {
		seed := cfg.seed + int64(trial)
		gen, err := cfg.newGenerator(seed)
		if err != nil {
			return report{}, err
		}
		hasher, err := hashing.ByName(cfg.hash, uint64(seed))
		if err != nil {
			return report{}, err
		}
		whole, err := hll.NewSketch(cfg.shardingBits)
		if err != nil {
			return report{}, err
		}
		halves := [2]*hll.Sketch{}
		for i := range halves {
			if halves[i], err = hll.NewSketch(cfg.shardingBits); err != nil {
				return report{}, err
			}
		}

		est := &trialEstimator{sketch: whole}
		exact := make(map[int64]struct{})
		next := 0
		for draw := 1; draw <= cfg.draws; draw++ {
			item := gen.Next()
			h := hasher.HashUint64(uint64(item))
			if !est.add(h) {
				r.unchangedAdds++
			}
			r.totalAdds++
			halves[draw%2].AddHash(h)
			exact[item] = struct{}{}

			if draw == points[next] {
				cp := &r.checkpoints[next]
				e, n := float64(est.estimate()), float64(len(exact))
				relErr := math.Abs(e-n) / n
				cp.meanExact += n / float64(cfg.trials)
				cp.meanEst += e / float64(cfg.trials)
				cp.meanRelErr += relErr / float64(cfg.trials)
				cp.maxRelErr = max(cp.maxRelErr, relErr)
				next++
			}
		}

		merged, err := hll.MergedEstimate(halves[0], halves[1])
		if err != nil {
			return report{}, err
		}
		if merged != whole.Estimate() {
			r.mergeConsistent = false
		}
	}
	return r, nil
}

func printReport(w io.Writer, r report) error {
	fmt.Fprintf(w, "dist=%s hash=%s bits=%d buckets=%d trials=%d universe=%d\n",
		r.cfg.dist, r.cfg.hash, r.cfg.shardingBits, 1<<r.cfg.shardingBits, r.cfg.trials, r.cfg.universe)
	fmt.Fprintf(w, "expected RSE %.2f%%, 3-sigma bound %.2f%%\n", 100*r.rse, 300*r.rse)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "draws\texact\testimate\tmean err %\tmax err %\t")
	for _, cp := range r.checkpoints {
		fmt.Fprintf(tw, "%d\t%.0f\t%.0f\t%.2f\t%.2f\t\n",
			cp.draws, cp.meanExact, cp.meanEst, 100*cp.meanRelErr, 100*cp.maxRelErr)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "adds that changed no counter: %d of %d\n", r.unchangedAdds, r.totalAdds)
	fmt.Fprintf(w, "merged halves match whole-stream estimate: %v\n", r.mergeConsistent)
	return nil
}
