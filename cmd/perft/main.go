// Command perft drives the move-generator correctness oracle from
// the command line: a fixed FEN and depth, optional per-root-move
// divide output, optional TT memoization, and optional CPU profiling.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/kvchess/chesscore"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	hashMB := flag.Int("hash", 0, "TT size in MiB (0 disables the TT)")
	parallel := flag.Bool("parallel", false, "fan the root moves out across goroutines, sharing one TT")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := chess.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	var tt *chess.TranspositionTable
	if *hashMB > 0 {
		tt = chess.NewTranspositionTable(*hashMB)
	}

	var nodes uint64
	if *parallel {
		nodes = runParallel(pos, *depth, tt)
	} else {
		cfg := chess.PerftConfig{TT: tt, Divide: *divide}
		if *divide {
			type divideEntry struct {
				move  string
				nodes uint64
			}
			var entries []divideEntry
			cfg.DivideFn = func(m chess.Move, n uint64) {
				entries = append(entries, divideEntry{m.UCI(), n})
			}
			nodes = chess.Perft(pos, *depth, cfg)
			sort.Slice(entries, func(i, j int) bool { return entries[i].move < entries[j].move })
			for _, e := range entries {
				fmt.Printf("%s: %d\n", e.move, e.nodes)
			}
		} else {
			nodes = chess.Perft(pos, *depth, cfg)
		}
	}

	fmt.Printf("nodes: %d\n", nodes)
}

// runParallel fans the root moves out across goroutines that each own
// their own Position (cloned from pos), sharing only the read/write
// TT — the one resource spec.md §5 designates safe for concurrent
// access across independent Position owners.
func runParallel(pos *chess.Position, depth int, tt *chess.TranspositionTable) uint64 {
	moves := chess.GenerateLegal(pos)
	results := make([]uint64, len(moves))

	var g errgroup.Group
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child, err := chess.FromFEN(chess.ToFEN(pos))
			if err != nil {
				return err
			}
			saved := chess.Make(child, m)
			if depth > 1 {
				results[i] = chess.Perft(child, depth-1, chess.PerftConfig{TT: tt})
			} else {
				results[i] = 1
			}
			chess.Unmake(child, m, saved)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	var total uint64
	for _, n := range results {
		total += n
	}
	return total
}
