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

// Command hllbench measures how closely HyperLogLog sketches track the true number of
// distinct items in synthetic workloads.
//
//	hllbench -bits 12 -dist latest -draws 1000000 -chart error.html
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "hllbench: %v\n", err)
		return 2
	}

	r, err := runBench(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "hllbench: %v\n", err)
		return 1
	}
	if err := printReport(stdout, r); err != nil {
		fmt.Fprintf(stderr, "hllbench: %v\n", err)
		return 1
	}
	if cfg.chartPath != "" {
		if err := writeChart(cfg.chartPath, r); err != nil {
			fmt.Fprintf(stderr, "hllbench: writing chart: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "chart written to %s\n", cfg.chartPath)
	}
	return 0
}
