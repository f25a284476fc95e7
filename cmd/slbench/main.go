// slbench compares skip-list behavior across level probabilities: it runs
// an insert/lookup/remove workload per probability, one list per
// goroutine, and prints a timing table plus the observed level histogram.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"sklist"
)

// countingGen wraps a generator and tallies the levels it hands out.
type countingGen struct {
	inner  sklist.LevelGenerator
	counts []int
}

func newCountingGen(p float64, limit int, seed int64) *countingGen {
	return &countingGen{
		inner:  sklist.NewLevelGenerator(p, limit, seed),
		counts: make([]int, limit),
	}
}

func (g *countingGen) NextLevel() int {
	level := g.inner.NextLevel()
	g.counts[level-1]++
	return level
}

func (g *countingGen) MaxLevel() int {
	return g.inner.MaxLevel()
}

type result struct {
	p        float64
	insert   time.Duration
	lookup   time.Duration
	remove   time.Duration
	maxLevel int
	counts   []int
}

func runWorkload(p float64, n int, seed int64) (result, error) {
	gen := newCountingGen(p, sklist.DefaultMaxLevelCap, seed)
	list := sklist.New[int64, int64](sklist.WithLevelGenerator[int64, int64](gen))
	keys := rand.New(rand.NewSource(seed)).Perm(n)

	start := time.Now()
	for _, k := range keys {
		if err := list.Set(int64(k), int64(k)); err != nil {
			return result{}, err
		}
	}
	insert := time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if _, ok := list.TryGet(int64(k)); !ok {
			return result{}, fmt.Errorf("lost key %d during lookup phase", k)
		}
	}
	lookup := time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if !list.Remove(int64(k)) {
			return result{}, fmt.Errorf("lost key %d during remove phase", k)
		}
	}
	remove := time.Since(start)

	maxLevel := 0
	for i, c := range gen.counts {
		if c > 0 {
			maxLevel = i + 1
		}
	}
	return result{p: p, insert: insert, lookup: lookup, remove: remove, maxLevel: maxLevel, counts: gen.counts}, nil
}

func main() {
	n := flag.Int("n", 200000, "keys per workload")
	seed := flag.Int64("seed", 42, "workload seed")
	verbose := flag.Bool("v", false, "log list events to stdout")
	flag.Parse()

	if *verbose {
		sklist.SetLogger(sklist.ConsoleLogger())
	}

	probs := []float64{0.25, 0.5, 0.75}
	results := make([]result, len(probs))

	// Each goroutine owns its list outright; the container itself takes
	// no locks.
	var g errgroup.Group
	for i, p := range probs {
		i, p := i, p
		g.Go(func() error {
			r, err := runWorkload(p, *n, *seed)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "slbench: %v\n", err)
		os.Exit(1)
	}

	perOp := func(d time.Duration) string {
		return fmt.Sprintf("%d ns/op", d.Nanoseconds()/int64(*n))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"p", "insert", "lookup", "remove", "max level"})
	for _, r := range results {
		table.Append([]string{
			fmt.Sprintf("%.2f", r.p),
			perOp(r.insert),
			perOp(r.lookup),
			perOp(r.remove),
			strconv.Itoa(r.maxLevel),
		})
	}
	table.Render()

	fmt.Printf("\nlevel histogram (n=%d)\n", *n)
	hist := tablewriter.NewWriter(os.Stdout)
	header := []string{"p \\ level"}
	maxShown := 0
	for _, r := range results {
		if r.maxLevel > maxShown {
			maxShown = r.maxLevel
		}
	}
	for i := 1; i <= maxShown; i++ {
		header = append(header, strconv.Itoa(i))
	}
	hist.SetHeader(header)
	for _, r := range results {
		row := []string{fmt.Sprintf("%.2f", r.p)}
		for i := 0; i < maxShown; i++ {
			row = append(row, strconv.Itoa(r.counts[i]))
		}
		hist.Append(row)
	}
	hist.Render()
}
