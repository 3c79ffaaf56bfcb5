package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"
)

type densityList []float64

func (l *densityList) String() string {
	parts := make([]string, len(*l))
	for i, d := range *l {
		parts[i] = strconv.FormatFloat(d, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *densityList) Set(value string) error {
	d, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*l = append(*l, d)
	return nil
}

func main() {
	rows := flag.Int("rows", 400, "grid rows")
	columns := flag.Int("columns", 400, "grid columns")
	generations := flag.Int("generations", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds per density")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios simulated in parallel")
	verify := flag.Bool("verify", false, "check counters and candidate completeness after every generation")
	compare := flag.Bool("compare", false, "run a full-scan grid alongside and fail on divergence")
	var densities densityList
	flag.Var(&densities, "density", "seed density (repeatable)")
	flag.Parse()

	if len(densities) == 0 {
		densities = densityList{0.05, 0.15, 0.35}
	}

	var scenarios []scenario
	for _, d := range densities {
		for s := 1; s <= *seeds; s++ {
			scenarios = append(scenarios, scenario{
				rows:        *rows,
				columns:     *columns,
				density:     d,
				seed:        int64(s),
				generations: *generations,
				verify:      *verify,
				compare:     *compare,
			})
		}
	}

	fmt.Printf("Simulating %d scenarios on %dx%d (%d workers, %d generations)\n",
		len(scenarios), *rows, *columns, *workers, *generations)

	start := time.Now()
	results, err := sweep(scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].activeRatio() < results[j].activeRatio() })
	for i, res := range results {
		fmt.Printf("%2d) %s\n", i+1, res)
	}
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))
}
