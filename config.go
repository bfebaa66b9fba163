package chess

import (
	"github.com/BurntSushi/toml"
)

// EngineConfig is the host-facing knob set for a core instance:
// TT sizing, the starting position, strict vs. lenient invariant
// checking, and the perft TT depth threshold. Loaded from TOML so a
// host can ship one config file across environments. PerftTTDepthMin
// is only carried here: Perft does not read it and always uses the
// built-in perftTTThreshold.
type EngineConfig struct {
	HashSizeMB      int    `toml:"hash_size_mb"`
	StartFEN        string `toml:"start_fen"`
	Strict          bool   `toml:"strict"`
	PerftTTDepthMin int    `toml:"perft_tt_depth_min"`
}

// DefaultEngineConfig returns the config a fresh engine boots with.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		HashSizeMB:      DefaultHashSizeMB,
		StartFEN:        StartFEN,
		Strict:          true,
		PerftTTDepthMin: perftTTThreshold,
	}
}

// LoadEngineConfig reads and parses a TOML config file, filling in
// defaults for any field the file omits.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// Apply installs cfg's strictness setting globally. Callers that care
// about hash sizing construct their own TranspositionTable with
// cfg.HashSizeMB directly.
func (cfg EngineConfig) Apply() {
	StrictMode = cfg.Strict
}
