package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sparselife/internal/life"
	"sparselife/internal/sims/fullscan"
)

type scenario struct {
	rows, columns int
	density       float64
	seed          int64
	generations   int
	verify        bool
	compare       bool
}

type scenarioResult struct {
	scenario
	population  int
	activeCells int
	peakActive  int
	elapsed     time.Duration
}

// area is the cost a full rescan would pay per generation.
func (r scenarioResult) area() int { return r.rows * r.columns }

func (r scenarioResult) activeRatio() float64 {
	return float64(r.activeCells) / float64(r.area())
}

func (r scenarioResult) gensPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.generations) / r.elapsed.Seconds()
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("density=%.2f seed=%d pop=%d active=%d (%.2f%% of %d, peak %d) %.0f G/s",
		r.density, r.seed, r.population, r.activeCells, 100*r.activeRatio(), r.area(), r.peakActive, r.gensPerSecond())
}

// runScenario advances one independently owned grid; nothing is shared
// between scenarios.
func runScenario(s scenario) (scenarioResult, error) {
	g, err := life.New(s.rows, s.columns, s.density)
	if err != nil {
		return scenarioResult{}, err
	}
	g.Reset(s.seed)

	var ref *fullscan.Life
	if s.compare {
		if ref, err = fullscan.New(s.rows, s.columns, 0); err != nil {
			return scenarioResult{}, err
		}
		copy(ref.Cells(), g.Cells())
	}

	res := scenarioResult{scenario: s}
	start := time.Now()
	for gen := 1; gen <= s.generations; gen++ {
		g.Step()
		res.peakActive = max(res.peakActive, g.ActiveCells())
		if s.verify {
			if err := g.Verify(); err != nil {
				return res, errors.Wrapf(err, "seed %d generation %d", s.seed, gen)
			}
		}
		if ref != nil {
			ref.Step()
			if !slices.Equal(g.Cells(), ref.Cells()) {
				return res, errors.Errorf("seed %d generation %d: diverged from full scan", s.seed, gen)
			}
		}
	}
	res.elapsed = time.Since(start)
	res.population = g.Population()
	res.activeCells = g.ActiveCells()
	return res, nil
}

// sweep runs every scenario with at most workers in flight and returns the
// results in input order.
func sweep(scenarios []scenario, workers int) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(scenarios))
	var eg errgroup.Group
	eg.SetLimit(max(workers, 1))
	for i, s := range scenarios {
		eg.Go(func() error {
			res, err := runScenario(s)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
