package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"vecstats/cmd/samplegen/engine"
)

func main() {
	scenario := flag.String("scenario", "random", "Scenario to generate: random, sorted, reversed, duplicates")
	distribution := flag.String("distribution", "uniform", "Distribution to use: uniform, weibull")
	outDir := flag.String("out", "", "Directory to write a .env file with SAMPLE_VALUES (prints to stdout when empty)")
	count := flag.Int("count", 20, "Number of values to generate")
	maxValue := flag.Int("max", 100, "Largest value to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario:     *scenario,
		Distribution: *distribution,
		Count:        *count,
		Max:          *maxValue,
		Seed:         *seed,
	}

	values, err := engine.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outDir == "" {
		fmt.Println(engine.Format(values))
		return
	}

	path, err := engine.Save(*outDir, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save sample: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d values (scenario %s, seed %d) to %s\n", len(values), cfg.Scenario, cfg.Seed, path)
}
