package chess

// perftTTThreshold is the fixed "plies from root" depth at or beyond
// which the driver consults the perft TT (spec.md §4.9); shallow
// plies are cheap enough that probing isn't worth the bucket
// contention.
const perftTTThreshold = 3

// PerftConfig tunes a single perft run.
type PerftConfig struct {
	TT       *TranspositionTable // nil disables memoization entirely
	Stop     *bool               // polled at every recursion entry; nil means never stop
	Divide   bool
	DivideFn func(move Move, nodes uint64) // called once per root move when Divide is set
}

// Perft counts the leaf nodes of pos's legal move tree at depth,
// optionally memoized through cfg.TT and optionally reporting a
// per-root-move breakdown via cfg.DivideFn (spec.md §4.9).
func Perft(pos *Position, depth int, cfg PerftConfig) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegal(pos)
	if !cfg.Divide {
		return perftRecurse(pos, moves, depth, 0, cfg)
	}
	var total uint64
	for _, m := range moves {
		saved := Make(pos, m)
		var nodes uint64
		if depth == 1 {
			nodes = 1
		} else {
			nodes = perftRecurse(pos, GenerateLegal(pos), depth-1, 1, cfg)
		}
		Unmake(pos, m, saved)
		if cfg.DivideFn != nil {
			cfg.DivideFn(m, nodes)
		}
		total += nodes
	}
	return total
}

// perftRecurse handles depth >= 1 given an already-generated legal
// move list for pos, with pliesFromRoot tracking when the TT becomes
// eligible.
func perftRecurse(pos *Position, moves []Move, depth, pliesFromRoot int, cfg PerftConfig) uint64 {
	if cfg.Stop != nil && *cfg.Stop {
		return 0
	}
	if depth == 1 {
		return uint64(len(moves))
	}
	if cfg.TT != nil && pliesFromRoot >= perftTTThreshold {
		if n, ok := cfg.TT.ProbePerft(pos.State.Key, depth); ok {
			return n
		}
	}
	var nodes uint64
	for _, m := range moves {
		saved := Make(pos, m)
		nodes += perftRecurse(pos, GenerateLegal(pos), depth-1, pliesFromRoot+1, cfg)
		Unmake(pos, m, saved)
	}
	if cfg.TT != nil && pliesFromRoot >= perftTTThreshold {
		cfg.TT.StorePerft(pos.State.Key, depth, nodes)
	}
	return nodes
}
