package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/g-m-twostay/kdtree/Trees"
	"github.com/urfave/cli/v2"
)

type point = Trees.Triple[int, int, int]

func main() {
	app := cli.App{
		Name:  "kdmeasure",
		Usage: "measure depth and operation timings of random k-d trees",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "n",
				Usage:   "number of keys to insert",
				Value:   1 << 16,
				EnvVars: []string{"KDMEASURE_N"},
			},
			&cli.IntFlag{
				Name:    "range",
				Usage:   "coordinates are drawn from [0, range)",
				Value:   1 << 20,
				EnvVars: []string{"KDMEASURE_RANGE"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed",
				EnvVars: []string{"KDMEASURE_SEED"},
			},
			&cli.Float64Flag{
				Name:    "erase",
				Usage:   "fraction of the keys erased after building",
				Value:   0.5,
				EnvVars: []string{"KDMEASURE_ERASE"},
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the tree structure at the end (only sensible for small n)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "verbose logging",
			},
		},
		Action: runMeasure,
	}
	app.RunAndExitOnError()
}

func runMeasure(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	n, rg, frac := cctx.Int("n"), cctx.Int("range"), cctx.Float64("erase")
	if n < 0 || rg <= 0 || frac < 0 || frac > 1 {
		return fmt.Errorf("invalid flags: n=%d range=%d erase=%f", n, rg, frac)
	}
	r := rand.New(rand.NewSource(cctx.Int64("seed")))
	es := make([]Trees.Entry[point, int], n)
	for i := range es {
		es[i] = Trees.Entry[point, int]{Key: point{X: r.Intn(rg), Y: r.Intn(rg), Z: r.Intn(rg)}, Value: i}
	}

	start := time.Now()
	tree := Trees.New[point, int, uint32](uint32(n))
	for _, e := range es {
		tree.Insert(e.Key, e.Value)
	}
	slog.Info("inserted", "size", tree.Size(), "depth", tree.Depth(), "took", time.Since(start))

	start = time.Now()
	bulk := Trees.From[point, int, uint32](es)
	slog.Info("bulk built", "size", bulk.Size(), "depth", bulk.Depth(), "took", time.Since(start))

	start = time.Now()
	for _, e := range es {
		if !tree.Has(e.Key) {
			return fmt.Errorf("key %v lost after insertion", e.Key)
		}
	}
	slog.Info("found all", "took", time.Since(start))

	start = time.Now()
	for axis := range tree.Dims() {
		lo, hi := tree.FindMin(axis), tree.FindMax(axis)
		if lo.Valid() && hi.Valid() {
			slog.Debug("extremes", "axis", axis, "min", lo.Key(), "max", hi.Key())
		}
	}
	slog.Info("extremes", "took", time.Since(start))

	start = time.Now()
	erased := 0
	for _, e := range es[:int(float64(n)*frac)] {
		if tree.Erase(e.Key) {
			erased++
		}
	}
	slog.Info("erased", "count", erased, "size", tree.Size(), "depth", tree.Depth(), "took", time.Since(start))

	if tree.Corrupt() || bulk.Corrupt() {
		return fmt.Errorf("tree corrupt after measuring")
	}
	if cctx.Bool("dump") {
		fmt.Println(tree)
	}
	return nil
}
