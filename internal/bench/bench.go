// Package bench times the search algorithms against a dataset with
// uniform-random targets spread over a worker pool.
package bench

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"github.com/panjf2000/ants/v2"

	"pkg.jsn.cam/searchlab/pkg/search"
)

// Options controls a benchmark run
type Options struct {
	Searches int // total searches per algorithm
	Threads  int // worker pool size
	Window   int // moving-average window for per-search latency
}

// Result is the outcome of one algorithm's run
type Result struct {
	Algorithm  string
	Searches   int
	Hits       int64
	Total      time.Duration
	AvgLatency time.Duration
	OpsPerSec  float64
}

const defaultWindow = 1000

// algorithms in report order
var algorithms = []struct {
	name string
	fn   search.Func
}{
	{"jump", search.Jump},
	{"interpolation", search.Interpolation},
}

// Run benchmarks every algorithm against values, which must be sorted
// ascending. Targets are drawn uniformly from [min, max] of the
// dataset, so runs mix hits and misses.
func Run(values []int64, opts Options) ([]Result, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	if opts.Searches <= 0 {
		return nil, fmt.Errorf("searches must be positive, got %d", opts.Searches)
	}
	if opts.Threads <= 0 {
		return nil, fmt.Errorf("threads must be positive, got %d", opts.Threads)
	}
	window := opts.Window
	if window <= 0 {
		window = defaultWindow
	}

	pool, err := ants.NewPool(opts.Threads, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	lo, hi := values[0], values[len(values)-1]

	results := make([]Result, 0, len(algorithms))
	for _, algo := range algorithms {
		res, err := runOne(pool, algo.name, algo.fn, values, lo, hi, opts.Searches, opts.Threads, window)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func runOne(pool *ants.Pool, name string, fn search.Func, values []int64, lo, hi int64, searches, threads, window int) (Result, error) {
	var (
		hits atomic.Int64
		wg   sync.WaitGroup

		maMu sync.Mutex
		ma   = movingaverage.New(window)
	)

	span := hi - lo + 1
	share := searches / threads

	start := time.Now()
	for t := 0; t < threads; t++ {
		n := share
		if t == threads-1 {
			n += searches % threads // remainder goes to the last worker
		}
		if n == 0 {
			continue
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()

			// Per-worker random source, no contention on a shared one
			r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			for i := 0; i < n; i++ {
				target := lo + r.Int64N(span)

				t0 := time.Now()
				idx := fn(values, target)
				d := time.Since(t0)

				if idx >= 0 {
					hits.Add(1)
				}
				maMu.Lock()
				ma.Add(float64(d.Nanoseconds()))
				maMu.Unlock()
			}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			// Tasks submitted before the failure must finish before the
			// caller releases the pool
			wg.Wait()
			return Result{}, fmt.Errorf("failed to submit benchmark task: %w", err)
		}
	}
	wg.Wait()
	total := time.Since(start)

	return Result{
		Algorithm:  name,
		Searches:   searches,
		Hits:       hits.Load(),
		Total:      total,
		AvgLatency: time.Duration(ma.Avg()),
		OpsPerSec:  float64(searches) / total.Seconds(),
	}, nil
}
