// Command falcon-benchplot renders an HTML chart of Falcon verification
// timings from a JSONL record stream, one {"op":...,"nanos":...} object
// per line, such as repeated stopwatch samples around falcon.Verify512.
//
// Example record producer:
//
//	start := time.Now()
//	falcon.Verify512(pub, msg, sig)
//	fmt.Printf(`{"op":"verify512","nanos":%d}`+"\n", time.Since(start).Nanoseconds())
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type sample struct {
	Op    string `json:"op"`
	Nanos int64  `json:"nanos"`
}

func readSamples(path string) ([]sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []sample
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s sample
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("parse line %q: %w", line, err)
		}
		out = append(out, s)
	}
	return out, scanner.Err()
}

// microsByOp buckets samples by op name and converts to microseconds,
// sorted for a stable x-axis ordering within each series.
func microsByOp(samples []sample) map[string][]float64 {
	byOp := make(map[string][]float64)
	for _, s := range samples {
		byOp[s.Op] = append(byOp[s.Op], float64(s.Nanos)/1000.0)
	}
	for _, v := range byOp {
		sort.Float64s(v)
	}
	return byOp
}

func main() {
	in := flag.String("in", "", "path to a JSONL file of {op, nanos} samples")
	out := flag.String("out", "falcon_bench.html", "output HTML path")
	flag.Parse()

	if *in == "" {
		fmt.Println("usage: falcon-benchplot -in samples.jsonl [-out chart.html]")
		os.Exit(2)
	}

	samples, err := readSamples(*in)
	if err != nil {
		log.Fatalf("read samples: %v", err)
	}
	if len(samples) == 0 {
		log.Fatalf("no samples in %s", *in)
	}

	byOp := microsByOp(samples)
	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Falcon verification latency",
			Subtitle: fmt.Sprintf("%d samples", len(samples)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample index"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	var maxLen int
	for _, v := range byOp {
		if len(v) > maxLen {
			maxLen = len(v)
		}
	}
	xAxis := make([]string, maxLen)
	for i := range xAxis {
		xAxis[i] = fmt.Sprintf("%d", i)
	}
	bar.SetXAxis(xAxis)

	for _, op := range ops {
		values := byOp[op]
		items := make([]opts.BarData, len(values))
		for i, v := range values {
			items[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(op, items)
	}

	page := components.NewPage().SetPageTitle("Falcon Verification Benchmark")
	page.AddCharts(bar)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}
