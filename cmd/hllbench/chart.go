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
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// errorChart plots mean and max relative error against the number of draws, with the
// 3-sigma bound as a reference line.
func errorChart(r report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "HyperLogLog relative error",
			Subtitle: fmt.Sprintf("%s items, %s hash, %d buckets, %d trials", r.cfg.dist, r.cfg.hash, 1<<r.cfg.shardingBits, r.cfg.trials),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "draws"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "relative error %"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "5%", Top: "5%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xs := make([]int, 0, len(r.checkpoints))
	mean := make([]opts.LineData, 0, len(r.checkpoints))
	worst := make([]opts.LineData, 0, len(r.checkpoints))
	bound := make([]opts.LineData, 0, len(r.checkpoints))
	for _, cp := range r.checkpoints {
		xs = append(xs, cp.draws)
		mean = append(mean, opts.LineData{Value: 100 * cp.meanRelErr})
		worst = append(worst, opts.LineData{Value: 100 * cp.maxRelErr})
		bound = append(bound, opts.LineData{Value: 300 * r.rse})
	}
	line.SetXAxis(xs).
		AddSeries("mean error", mean).
		AddSeries("max error", worst).
		AddSeries("3-sigma bound", bound)
	return line
}

func renderChart(w io.Writer, r report) error {
	page := components.NewPage()
	page.AddCharts(errorChart(r))
	return page.Render(w)
}

func writeChart(path string, r report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return renderChart(f, r)
}
