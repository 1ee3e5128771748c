// Command digital-dice runs the curious coin-flipping game: it estimates
// the expected number of flip rounds until the first player is eliminated
// and compares the estimate with the closed-form answer for fair coins.
package main

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bjmcder/digital-dice/coingame"
	"github.com/bjmcder/digital-dice/config"
	"github.com/bjmcder/digital-dice/report"
)

var (
	tokenL     = flag.Int("l", 1, "tokens held by player 1")
	tokenM     = flag.Int("m", 1, "tokens held by player 2")
	tokenN     = flag.Int("n", 1, "tokens held by player 3")
	bias       = flag.Float64("bias", config.DefaultBias, "probability of heads for every coin")
	trials     = flag.Int("trials", config.DefaultTrials, "number of independent trials")
	seed       = flag.Int64("seed", config.DefaultSeed, "master seed for the random sources")
	workers    = flag.Int("workers", 1, "goroutines to partition trials across")
	batch      = flag.Int("batch", 0, "rounds pre-drawn per refill; 0 draws sequentially")
	configPath = flag.String("config", "", "optional TOML experiment file")
	verbose    = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Load .env file
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded environment variables from .env")
	}

	cfg, err := loadConfig()
	if err != nil {
		logrus.Fatalf("configuration: %v", err)
	}

	ex, err := cfg.Experiment()
	if err != nil {
		logrus.Fatalf("configuration: %v", err)
	}

	est, err := ex.Run()
	if err != nil {
		logrus.Fatalf("experiment: %v", err)
	}

	cf, err := coingame.ClosedFormMeanRounds(ex.Tokens, ex.Bias)
	if err != nil {
		logrus.Fatalf("closed form: %v", err)
	}

	fmt.Print(report.Comparison(ex.Tokens, ex.Bias, est, cf))
}

// loadConfig layers defaults, the optional TOML file, DICE_* environment
// variables and finally any flags the user set on the command line.
func loadConfig() (config.Experiment, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Experiment{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Experiment{}, err
	}
	if len(cfg.InitialTokens) != 3 {
		return config.Experiment{}, errors.Wrapf(coingame.ErrInvalidConfiguration,
			"initial_tokens needs exactly 3 entries, got %d", len(cfg.InitialTokens))
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.InitialTokens[0] = *tokenL
		case "m":
			cfg.InitialTokens[1] = *tokenM
		case "n":
			cfg.InitialTokens[2] = *tokenN
		case "bias":
			cfg.Bias = *bias
		case "trials":
			cfg.Trials = *trials
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "batch":
			cfg.BatchSize = *batch
		}
	})
	return cfg, nil
}
