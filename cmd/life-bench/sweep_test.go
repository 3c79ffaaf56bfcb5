package main

import "testing"

func TestSweepKeepsScenarioOrder(t *testing.T) {
	var scenarios []scenario
	for seed := int64(1); seed <= 6; seed++ {
		scenarios = append(scenarios, scenario{
			rows: 40, columns: 50, density: 0.2, seed: seed,
			generations: 30, verify: true, compare: true,
		})
	}

	results, err := sweep(scenarios, 3)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for i, res := range results {
		if res.seed != scenarios[i].seed {
			t.Fatalf("result %d has seed %d, want %d", i, res.seed, scenarios[i].seed)
		}
		if res.activeCells > res.area() || res.peakActive > res.area() {
			t.Fatalf("seed %d: active %d / peak %d exceed area %d", res.seed, res.activeCells, res.peakActive, res.area())
		}
	}
}

func TestSweepReportsConfigurationErrors(t *testing.T) {
	_, err := sweep([]scenario{{rows: 0, columns: 10, generations: 1}}, 1)
	if err == nil {
		t.Fatal("expected error for empty grid")
	}
}

func TestEmptyDensityStaysIdle(t *testing.T) {
	res, err := runScenario(scenario{rows: 100, columns: 100, density: 0, seed: 1, generations: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.population != 0 || res.activeCells != 0 || res.peakActive != 0 {
		t.Fatalf("empty grid did work: %+v", res)
	}
}
