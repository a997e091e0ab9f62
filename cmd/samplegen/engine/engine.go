package engine

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type GeneratorConfig struct {
	Scenario     string // "random", "sorted", "reversed" or "duplicates"
	Distribution string // "uniform" or "weibull"
	Count        int
	Max          int
	Seed         int64
}

// Generate returns Count integers in [0, Max] arranged according to Scenario.
func Generate(cfg GeneratorConfig) ([]int, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", cfg.Count)
	}
	if cfg.Max <= 0 {
		cfg.Max = 100
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	draw := func() int {
		if cfg.Distribution == "weibull" {
			// Right-skewed: most values low, a long tail up to Max.
			v := int(math.Round(weibullSample(rng, 1.2, float64(cfg.Max)/4)))
			return min(v, cfg.Max)
		}
		return rng.Intn(cfg.Max + 1)
	}

	values := make([]int, cfg.Count)
	switch cfg.Scenario {
	case "", "random", "sorted", "reversed":
		for i := range values {
			values[i] = draw()
		}
	case "duplicates":
		// Few distinct values so the mode is meaningful.
		pool := make([]int, max(1, cfg.Count/4))
		for i := range pool {
			pool[i] = draw()
		}
		for i := range values {
			values[i] = pool[rng.Intn(len(pool))]
		}
	default:
		return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}

	switch cfg.Scenario {
	case "sorted":
		slices.Sort(values)
	case "reversed":
		slices.Sort(values)
		slices.Reverse(values)
	}

	return values, nil
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

// Format renders values the way SAMPLE_VALUES expects them.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Save writes a .env file in outDir that sets SAMPLE_VALUES.
func Save(outDir string, values []int) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	envPath := filepath.Join(outDir, ".env")
	env := map[string]string{"SAMPLE_VALUES": Format(values)}
	if err := godotenv.Write(env, envPath); err != nil {
		return "", fmt.Errorf("writing %s: %w", envPath, err)
	}
	return envPath, nil
}
