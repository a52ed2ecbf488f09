package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/google/uuid"
)

func main() {
	var (
		workers   = flag.Int("workers", 64, "number of concurrent workers")
		ops       = flag.Int("ops", 200000, "operations per phase (encode + decode)")
		alg       = flag.String("alg", goJWT.HS256, "signing algorithm")
		claimKeys = flag.Int("claims", 8, "extra claims per token")
		tokens    = flag.Int("tokens", 1024, "distinct tokens to seed for the decode phase")
		metrics   = flag.Bool("metrics", false, "record codec metrics and print a summary")
	)
	flag.Parse()

	if *workers <= 0 || *ops <= 0 || *tokens <= 0 || *claimKeys < 0 {
		fmt.Fprintln(os.Stderr, "workers, ops and tokens must be > 0; claims must be >= 0")
		os.Exit(2)
	}

	codec, err := goJWT.New().
		WithDefaultAlgorithm(*alg).
		WithMetricsEnabled(*metrics).
		WithLatencyHistograms(*metrics).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build codec: %v\n", err)
		os.Exit(1)
	}

	key := []byte(uuid.NewString())

	claims := make([]goJWT.Claims, *tokens)
	seeded := make([]string, *tokens)
	fmt.Printf("seeding %d tokens with %s...\n", *tokens, *alg)
	startSeed := time.Now()
	for i := range claims {
		claims[i] = buildClaims(i, *claimKeys)
		tok, err := codec.Encode(claims[i], key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed encode failed: %v\n", err)
			os.Exit(1)
		}
		seeded[i] = tok
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	encodeStats := runPhase(*ops, *workers, 7919, func(idx int) error {
		_, err := codec.Encode(claims[idx%len(claims)], key)
		return err
	})
	decodeStats := runPhase(*ops, *workers, 6151, func(idx int) error {
		_, err := codec.Decode(seeded[idx%len(seeded)], key)
		return err
	})

	fmt.Println("---- results ----")
	printStats("encode", encodeStats)
	printStats("decode", decodeStats)

	if *metrics {
		snap := codec.MetricsSnapshot()
		fmt.Printf("metrics: encoded=%d verified=%d mismatches=%d\n",
			snap.Counters[goJWT.MetricEncodeSuccess],
			snap.Counters[goJWT.MetricDecodeSuccess],
			snap.Counters[goJWT.MetricDecodeSignatureMismatch],
		)
	}
}

// runPhase runs op ops times across workers, each worker picking random
// indices from its own source.
func runPhase(ops, workers int, seed int64, op func(idx int) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*seed))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				err := op(r.Int())
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

func buildClaims(i, extra int) goJWT.Claims {
	now := time.Now().Unix()
	c := goJWT.Claims{
		"iss": "gojwt-bench",
		"sub": fmt.Sprintf("user-%d", i),
		"jti": uuid.NewString(),
		"iat": now,
		"exp": now + 3600,
	}
	for j := 0; j < extra; j++ {
		c[fmt.Sprintf("c%02d", j)] = fmt.Sprintf("value-%d-%d", i, j)
	}
	return c
}
