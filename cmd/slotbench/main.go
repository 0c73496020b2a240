// Command slotbench exercises the slot-map variants with a synthetic
// insert/get/remove workload and reports throughput. With --shm it also
// drives the full shared-memory embedding path: create a segment, place
// a map inside it, attach a second view, and verify both views agree.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/joshuapare/slotkit/shm"
	"github.com/joshuapare/slotkit/slotmap"
)

var (
	capacity = flag.Uint64("capacity", 1024, "slot map capacity")
	ops      = flag.Int("ops", 1_000_000, "operations per benchmark pass")
	shmName  = flag.String("shm", "", "also run against a map placed in this shared-memory segment")
	keep     = flag.Bool("keep", false, "do not unlink the shared-memory segment on exit")
	verbose  = flag.BoolP("verbose", "v", false, "debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("slotbench failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	logger.Info().
		Uint64("capacity", *capacity).
		Int("ops", *ops).
		Msg("starting")

	heap := slotmap.New[uint64](*capacity)
	report(logger, "heap", churn(heap, *ops))

	fixed := slotmap.NewFixed[uint64](*capacity)
	report(logger, "fixed", churn(fixed, *ops))

	if *shmName != "" {
		if err := runShared(logger); err != nil {
			return err
		}
	}
	return nil
}

// mapOps is the operation surface shared by every variant.
type mapOps interface {
	Insert(uint64) (slotmap.Key, bool)
	Get(slotmap.Key) (*uint64, bool)
	Remove(slotmap.Key) bool
}

// churn fills the map, then cycles remove+insert+get to exercise the
// free-list recycling path, and returns the elapsed time.
func churn(m mapOps, ops int) time.Duration {
	start := time.Now()

	keys := make([]slotmap.Key, 0, *capacity)
	for {
		k, ok := m.Insert(uint64(len(keys)))
		if !ok {
			break
		}
		keys = append(keys, k)
	}

	for i := 0; i < ops; i++ {
		k := keys[i%len(keys)]
		m.Remove(k)
		nk, ok := m.Insert(uint64(i))
		if !ok {
			panic("reinsert after remove cannot fail")
		}
		keys[i%len(keys)] = nk
		if _, ok := m.Get(nk); !ok {
			panic("freshly inserted key must resolve")
		}
	}
	return time.Since(start)
}

func report(logger zerolog.Logger, variant string, elapsed time.Duration) {
	perOp := elapsed / time.Duration(*ops)
	logger.Info().
		Str("variant", variant).
		Dur("elapsed", elapsed).
		Str("per_cycle", perOp.String()).
		Str("cycles_per_sec", fmt.Sprintf("%.0f", float64(*ops)/elapsed.Seconds())).
		Msg("bench pass done")
}

func runShared(logger zerolog.Logger) error {
	size := int(slotmap.PlacedSize[uint64](*capacity))
	seg, err := shm.Create(*shmName, size)
	if err != nil {
		return err
	}
	defer func() {
		_ = seg.Close()
		if !*keep {
			_ = seg.Unlink()
		}
	}()
	logger.Debug().Str("segment", seg.Name()).Int("bytes", size).Msg("segment created")

	placed, err := slotmap.Place[uint64](seg.Bytes(), *capacity)
	if err != nil {
		return err
	}
	report(logger, "shm", churn(placed, *ops))

	// attach a second view the way another process would and cross-check
	view, err := slotmap.Attach[uint64](seg.Bytes(), *capacity)
	if err != nil {
		return err
	}
	if view.Len() != placed.Len() {
		return fmt.Errorf("attached view disagrees: len %d vs %d", view.Len(), placed.Len())
	}
	logger.Info().Uint64("len", view.Len()).Msg("attached view verified")

	if *keep {
		logger.Info().Str("segment", seg.Name()).Msg("segment kept for inspection")
	}
	return nil
}
