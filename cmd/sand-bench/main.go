package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

type benchConfig struct {
	width, height int
	steps         int
	scene         string
	tps           int
	fullScan      bool
	realtime      bool
}

type seedResult struct {
	seed    int64
	budget  core.TickBudget
	census  [sand.NumMaterials]int
	elapsed time.Duration
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 400, "grid width")
	height := flag.Int("h", 300, "grid height")
	seedList := flag.String("seeds", "1,2,3,4", "comma-separated seeds, one world each")
	scene := flag.String("scene", sand.SceneTerrain, "scene: empty, box or terrain")
	tps := flag.Int("tps", 60, "tick rate the budget is measured against")
	full := flag.Bool("full", false, "visit every cell instead of eligible ones")
	realtime := flag.Bool("realtime", false, "pace ticks at -tps instead of running flat out")
	level := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	logger := core.NewLogger(*level)
	seeds, err := parseSeeds(*seedList)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}
	cfg := benchConfig{
		width:    *width,
		height:   *height,
		steps:    *steps,
		scene:    *scene,
		tps:      *tps,
		fullScan: *full,
		realtime: *realtime,
	}
	if *workers <= 0 {
		*workers = 1
	}

	logger.Infof("benchmarking %d seeds (%d workers, %d steps, %dx%d %s, full=%v)",
		len(seeds), *workers, cfg.steps, cfg.width, cfg.height, cfg.scene, cfg.fullScan)

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	for res := range results {
		logger.Debugf("seed %d finished in %s", res.seed, res.elapsed.Round(time.Millisecond))
		if res.budget.Overruns > 0 {
			logger.Warnf("seed %d: %d of %d ticks exceeded the %s budget", res.seed, res.budget.Overruns, res.budget.Ticks, res.budget.Budget)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	fmt.Printf("Results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("seed=%d mean=%s max=%s overruns=%d/%d census: %s\n",
			res.seed, res.budget.Mean(), res.budget.Max, res.budget.Overruns, res.budget.Ticks, formatCensus(res.census))
	}
}

func runSeed(cfg benchConfig, seed int64) seedResult {
	world := sand.NewWithConfig(sand.FromMap(map[string]string{
		"w":         strconv.Itoa(cfg.width),
		"h":         strconv.Itoa(cfg.height),
		"scene":     cfg.scene,
		"full_scan": strconv.FormatBool(cfg.fullScan),
	}))
	world.Reset(seed)
	size := world.Size()
	world.Place(sand.Lava, size.W/3, size.H/4, max(size.W/40, 2))
	world.Place(sand.Fire, size.W*2/3, size.H/4, max(size.W/60, 2))
	world.Place(sand.Sand, size.W/2, size.H/8, max(size.W/30, 2))

	res := seedResult{seed: seed, budget: *core.NewTickBudget(cfg.tps)}
	var pacer *core.FixedStep
	if cfg.realtime {
		pacer = core.NewFixedStep(cfg.tps)
	}
	start := time.Now()
	for i := 0; i < cfg.steps; {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		res.budget.Time(world.Step)
		i++
	}
	res.elapsed = time.Since(start)
	res.census = world.Grid().Census()
	return res
}

func parseSeeds(list string) ([]int64, error) {
	var seeds []int64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		seed, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", field, err)
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds in %q", list)
	}
	return seeds, nil
}

func formatCensus(census [sand.NumMaterials]int) string {
	var parts []string
	for i, n := range census {
		if n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", sand.Material(i), n))
	}
	return strings.Join(parts, " ")
}
