package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	bidding "github.com/mikemacmadeit/wildlife-auction-sub007/internal/biddingService"
	repository "github.com/mikemacmadeit/wildlife-auction-sub007/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumAuctions int
	ReadRatio   int
	MaxRaise    int64
	Burst       bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupStore creates a seeded store and coordinator for load scenarios
func setupStore(b *testing.B, numAuctions int) (*repository.MemoryStore, *bidding.BidCoordinator) {
	store := repository.NewMemoryStore()
	svc := benchCoordinator(store)
	for i := 0; i < numAuctions; i++ {
		if err := store.CreateAuction(benchAuction(fmt.Sprintf("auction_%d", i), 1_000)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}
	return store, svc
}

// Benchmark_Load_AuctionEngine runs multiple scenarios
func Benchmark_Load_AuctionEngine(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, 5_000, false},
		{"High-Contention-WriteHeavy", 10, 0, 2_000, false},
		{"Mixed-Workload", 50, 7, 3_000, false},
		{"ReadHeavy", 50, 9, 2_000, false},
		{"Edge-Case-SingleAuction", 1, 5, 1_000, false},
		{"Peak-Burst", 50, 0, 2_000, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupStore(b, s.NumAuctions)

	var totalOps, successfulBids, failedBids, totalReads int64
	// Per-auction monotonic maxima keep most bids past validation, so the
	// commit path itself is what contends.
	ceilings := make([]int64, s.NumAuctions)
	for i := range ceilings {
		ceilings[i] = 1_000_000
	}
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			auctionIndex := rnd.Intn(s.NumAuctions)
			auctionID := fmt.Sprintf("auction_%d", auctionIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.GetWinning(auctionID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				maxBid := atomic.AddInt64(&ceilings[auctionIndex], rnd.Int63n(s.MaxRaise)+s.MaxRaise)
				bidderID := fmt.Sprintf("bidder_%d", rnd.Int())
				if _, err := svc.PlaceBid(ctx, auctionID, bidderID, maxBid); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulBids, failedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
