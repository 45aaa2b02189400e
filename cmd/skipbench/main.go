// Microbenchmark driver comparing skipset against a B-tree ordered set
// over bulk insert, erase, find and iterate phases.
package main

import (
	"flag"
	"log/slog"
	randv2 "math/rand/v2"
	"time"

	"github.com/tidwall/btree"

	"github.com/metailurini/skipset"
)

var (
	startN = flag.Int("start_n", 100_000, "Element count for the first round of each phase.")
	rounds = flag.Int("rounds", 3, "Rounds per phase; the element count grows 10x each round.")
	seed   = flag.Uint64("seed", 0, "Seed for the workload generator; 0 draws a random one.")
)

func timeIt(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func randomKeys(r *randv2.Rand, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = int(r.Int32())
	}
	return keys
}

func main() {
	flag.Parse()

	workloadSeed := *seed
	if workloadSeed == 0 {
		workloadSeed = randv2.Uint64()
	}
	r := randv2.New(randv2.NewPCG(workloadSeed, workloadSeed>>1|1))
	slog.Info("Starting ordered set comparison.", "seed", workloadSeed, "rounds", *rounds)

	slog.Info("Phase: insert.")
	for round, n := 0, *startN; round < *rounds; round, n = round+1, n*10 {
		keys := randomKeys(r, n)

		var set btree.Set[int]
		btreeDur := timeIt(func() {
			for _, k := range keys {
				set.Insert(k)
			}
		})

		sk := skipset.New[int]()
		skipDur := timeIt(func() {
			for _, k := range keys {
				sk.Insert(k)
			}
		})

		slog.Info("Insert round done.", "n", n, "skipset", skipDur, "btree", btreeDur)
	}

	slog.Info("Phase: erase.")
	for round, n := 0, *startN; round < *rounds; round, n = round+1, n*10 {
		keys := randomKeys(r, n)
		victims := randomKeys(r, n)

		var set btree.Set[int]
		sk := skipset.New[int]()
		for _, k := range keys {
			set.Insert(k)
			sk.Insert(k)
		}

		btreeDur := timeIt(func() {
			for _, k := range victims {
				set.Delete(k)
			}
		})
		skipDur := timeIt(func() {
			for _, k := range victims {
				sk.Delete(k)
			}
		})

		slog.Info("Erase round done.", "n", n, "skipset", skipDur, "btree", btreeDur)
	}

	slog.Info("Phase: find.")
	for round, n := 0, *startN; round < *rounds; round, n = round+1, n*10 {
		keys := randomKeys(r, n)
		probes := randomKeys(r, n)

		var set btree.Set[int]
		sk := skipset.New[int]()
		for _, k := range keys {
			set.Insert(k)
			sk.Insert(k)
		}

		btreeDur := timeIt(func() {
			for _, k := range probes {
				set.Contains(k)
			}
		})
		skipDur := timeIt(func() {
			for _, k := range probes {
				sk.Find(k)
			}
		})

		slog.Info("Find round done.", "n", n, "skipset", skipDur, "btree", btreeDur)
	}

	slog.Info("Phase: iterate.")
	{
		n := *startN * 10
		values := make([]int, n)
		for i := range values {
			values[i] = i
		}

		var set btree.Set[int]
		for _, v := range values {
			set.Insert(v)
		}
		sk := skipset.NewFromSorted(values)

		count := 0
		skipDur := timeIt(func() {
			for it := sk.Begin(); it.Valid(); it.Next() {
				count++
			}
		})
		btreeCount := 0
		btreeDur := timeIt(func() {
			set.Scan(func(int) bool {
				btreeCount++
				return true
			})
		})

		slog.Info("Iterate done.", "n", n, "visited", count, "btree_visited", btreeCount,
			"skipset", skipDur, "btree", btreeDur)
	}
}
