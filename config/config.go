// Package config assembles an experiment configuration from defaults, an
// optional TOML file and environment overrides, in that order.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/bjmcder/digital-dice/coingame"
)

// Defaults mirror the original puzzle statement: every player starts with a
// single token and all coins are fair. The seed is the puzzle's historical
// default so runs are comparable across machines.
const (
	DefaultBias   = 0.5
	DefaultTrials = 100000
	DefaultSeed   = 55283621
)

// Experiment is the on-disk and environment shape of a run configuration.
type Experiment struct {
	InitialTokens []int   `toml:"initial_tokens"`
	Bias          float64 `toml:"bias"`
	Trials        int     `toml:"n_trials"`
	Seed          int64   `toml:"seed"`
	PlayerSeeds   []int64 `toml:"player_seeds"`
	Workers       int     `toml:"workers"`
	BatchSize     int     `toml:"batch_size"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Experiment {
	return Experiment{
		InitialTokens: []int{1, 1, 1},
		Bias:          DefaultBias,
		Trials:        DefaultTrials,
		Seed:          DefaultSeed,
	}
}

// Load reads a TOML experiment file over the defaults.
func Load(path string) (Experiment, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Experiment{}, errors.Wrapf(err, "loading experiment config %q", path)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from DICE_* environment variables. Unset
// variables leave the current value alone; unparsable ones are an error
// rather than a silent fallback.
func (c *Experiment) ApplyEnv() error {
	if v := os.Getenv("DICE_BIAS"); v != "" {
		bias, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "parsing DICE_BIAS")
		}
		c.Bias = bias
	}
	if v := os.Getenv("DICE_TRIALS"); v != "" {
		trials, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "parsing DICE_TRIALS")
		}
		c.Trials = trials
	}
	if v := os.Getenv("DICE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parsing DICE_SEED")
		}
		c.Seed = seed
	}
	if v := os.Getenv("DICE_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "parsing DICE_WORKERS")
		}
		c.Workers = workers
	}
	return nil
}

// Experiment converts the configuration into a runnable coingame.Experiment.
// Shape errors surface as coingame.ErrInvalidConfiguration; value errors are
// left to the driver's own validation.
func (c Experiment) Experiment() (coingame.Experiment, error) {
	if len(c.InitialTokens) != 3 {
		return coingame.Experiment{}, errors.Wrapf(coingame.ErrInvalidConfiguration,
			"initial_tokens needs exactly 3 entries, got %d", len(c.InitialTokens))
	}
	ex := coingame.Experiment{
		Tokens: coingame.Tokens{
			L: c.InitialTokens[0],
			M: c.InitialTokens[1],
			N: c.InitialTokens[2],
		},
		Bias:      c.Bias,
		Trials:    c.Trials,
		Seed:      c.Seed,
		Workers:   c.Workers,
		BatchSize: c.BatchSize,
	}
	if len(c.PlayerSeeds) > 0 {
		if len(c.PlayerSeeds) != 3 {
			return coingame.Experiment{}, errors.Wrapf(coingame.ErrInvalidConfiguration,
				"player_seeds needs exactly 3 entries, got %d", len(c.PlayerSeeds))
		}
		seeds := [3]int64{c.PlayerSeeds[0], c.PlayerSeeds[1], c.PlayerSeeds[2]}
		ex.PlayerSeeds = &seeds
	}
	return ex, nil
}
