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
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cachesize/hyperloglog-go/hashing"
	"github.com/cachesize/hyperloglog-go/hll"
	"github.com/cachesize/hyperloglog-go/workload"
)

const (
	distUniform = "uniform"
	distZipf    = "zipf"
	distLatest  = "latest"
)

type config struct {
	shardingBits int
	draws        int
	universe     int64
	trials       int
	dist         string
	hash         string
	seed         int64
	theta        float64
	chartPath    string
}

func defaultConfig() config {
	return config{
		shardingBits: hll.DefaultShardingBits,
		draws:        100000,
		universe:     1 << 20,
		trials:       10,
		dist:         distZipf,
		hash:         hashing.NameMurmur3,
		seed:         1,
		theta:        workload.DefaultZipfianConstant,
	}
}

func parseConfig(args []string, output io.Writer) (config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("hllbench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.shardingBits, "bits", cfg.shardingBits, "log2 of the number of sketch buckets, 4 to 16")
	fs.IntVar(&cfg.draws, "draws", cfg.draws, "items drawn from the generator per trial")
	fs.Int64Var(&cfg.universe, "universe", cfg.universe, "number of distinct items the generator can produce")
	fs.IntVar(&cfg.trials, "trials", cfg.trials, "independent trials")
	fs.StringVar(&cfg.dist, "dist", cfg.dist, "item distribution: uniform, zipf or latest")
	fs.StringVar(&cfg.hash, "hash", cfg.hash, "hash function: murmur3 or xxhash")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "seed of the first trial; trial i uses seed+i")
	fs.Float64Var(&cfg.theta, "theta", cfg.theta, "zipfian constant for the zipf and latest distributions")
	fs.StringVar(&cfg.chartPath, "chart", "", "write an HTML chart of the relative error to this path")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	var errs []error
	if _, err := hll.RelativeStandardError(c.shardingBits); err != nil {
		errs = append(errs, err)
	}
	if c.draws < 1 {
		errs = append(errs, fmt.Errorf("draws must be positive: %d", c.draws))
	}
	if c.universe < 2 {
		errs = append(errs, fmt.Errorf("universe must be at least 2: %d", c.universe))
	}
	if c.trials < 1 {
		errs = append(errs, fmt.Errorf("trials must be positive: %d", c.trials))
	}
	switch c.dist {
	case distUniform, distZipf, distLatest:
	default:
		errs = append(errs, fmt.Errorf("unknown distribution %q", c.dist))
	}
	if _, err := hashing.ByName(c.hash, 0); err != nil {
		errs = append(errs, err)
	}
	if !(c.theta > 0 && c.theta < 1) {
		errs = append(errs, fmt.Errorf("theta must be in (0, 1): %v", c.theta))
	}
	return errors.Join(errs...)
}

// newGenerator builds the item generator for one trial.
func (c config) newGenerator(seed int64) (workload.Generator, error) {
	opts := []workload.GeneratorOption{workload.WithSeed(seed), workload.WithZipfianConstant(c.theta)}
	switch c.dist {
	case distUniform:
		return workload.NewUniformGenerator(0, c.universe-1, opts...)
	case distZipf:
		return workload.NewZipfGenerator(0, c.universe-1, opts...)
	case distLatest:
		return workload.NewLatestGeneratorOver(c.universe, opts...)
	default:
		return nil, fmt.Errorf("unknown distribution %q", c.dist)
	}
}
