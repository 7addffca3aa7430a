package cellgraph

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config holds the tunables a Sheet is constructed with. Grid bounds are
// fixed at Sheet construction time; they are not enforced retroactively
// against cells created under a different Config.
type Config struct {
	MaxRows int `toml:"max_rows"`
	MaxCols int `toml:"max_cols"`
}

// DefaultConfig returns the engine's built-in bounds.
func DefaultConfig() Config {
	return Config{MaxRows: MaxRows, MaxCols: MaxCols}
}

// contains reports whether p falls within cfg's bounds. A Sheet checks
// positions against its own Config rather than the package-wide MaxRows
// and MaxCols, so a Sheet configured with tighter bounds rejects
// positions that Position.IsValid alone would accept.
func (cfg Config) contains(p Position) bool {
	return p.Row >= 0 && p.Row < cfg.MaxRows && p.Col >= 0 && p.Col < cfg.MaxCols
}

// LoadConfig reads a Config from a TOML file at path, filling any field
// left at its zero value with DefaultConfig's value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "loading config from %q", path)
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = MaxRows
	}
	if cfg.MaxCols <= 0 {
		cfg.MaxCols = MaxCols
	}
	return cfg, nil
}
