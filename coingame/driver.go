package coingame

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Experiment configures one Monte Carlo run of the coin game.
type Experiment struct {
	Tokens Tokens
	Bias   float64
	Trials int

	// Seed is the master seed; every per-player and per-worker source is
	// derived from it, so an Experiment value fully determines its output.
	Seed int64

	// PlayerSeeds optionally seeds the three per-player sources directly
	// instead of deriving them from Seed. Setting it forces a single
	// worker; parallel runs need the per-worker derivation from Seed.
	PlayerSeeds *[numPlayers]int64

	// Workers is the number of goroutines trials are partitioned across.
	// Values below 2 run everything on the calling goroutine.
	Workers int

	// BatchSize enables the batched flip strategy when positive: each
	// worker pre-draws this many rounds per refill. Zero selects the
	// sequential strategy.
	BatchSize int
}

// Estimate is the reduced result of an experiment.
type Estimate struct {
	MeanRounds  float64
	TotalRounds int64
	Trials      int
}

func (e Experiment) validate() error {
	if err := e.Tokens.Validate(); err != nil {
		return err
	}
	if err := validBias(e.Bias); err != nil {
		return err
	}
	if e.Trials < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "n_trials %d, need at least 1", e.Trials)
	}
	return nil
}

// source builds the flip source for one worker, honoring the configured
// execution strategy. Explicit player seeds bypass the per-worker
// derivation, which is why Run clamps them to a single worker: two workers
// on the same seeds would replay the same draw stream and correlate their
// trials.
func (e Experiment) source(worker int) FlipSource {
	if e.PlayerSeeds != nil {
		return NewFlipSourceSeeds(e.Bias, *e.PlayerSeeds)
	}
	seed := workerSeed(e.Seed, worker)
	if e.BatchSize > 0 {
		return NewBatchedFlipSource(e.Bias, seed, e.BatchSize)
	}
	return NewFlipSource(e.Bias, seed)
}

// Run plays Trials independent games and returns the mean round count.
// Trials are partitioned into contiguous chunks, one per worker; each
// worker owns a separately seeded source and accumulates a private partial
// sum, and partials are combined only after every worker has finished. The
// partition and all seed derivations are fixed functions of the Experiment,
// so repeated runs of an equal Experiment reproduce bit-identical results.
func (e Experiment) Run() (Estimate, error) {
	if err := e.validate(); err != nil {
		return Estimate{}, err
	}

	workers := e.Workers
	if workers < 2 || workers > e.Trials || e.PlayerSeeds != nil {
		workers = 1
	}

	start := time.Now()
	partials := make([]int64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		trials := e.Trials / workers
		if w < e.Trials%workers {
			trials++
		}
		w := w
		g.Go(func() error {
			src := e.source(w)
			var sum int64
			for i := 0; i < trials; i++ {
				rounds, err := SimulateTrial(e.Tokens, e.Bias, src)
				if err != nil {
					return err
				}
				sum += int64(rounds)
			}
			partials[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Estimate{}, err
	}

	var total int64
	for _, p := range partials {
		total += p
	}

	est := Estimate{
		MeanRounds:  float64(total) / float64(e.Trials),
		TotalRounds: total,
		Trials:      e.Trials,
	}
	logrus.WithFields(logrus.Fields{
		"trials":  est.Trials,
		"mean":    est.MeanRounds,
		"workers": workers,
		"elapsed": time.Since(start),
	}).Debug("experiment finished")
	return est, nil
}

// EstimateMeanRounds runs trials games of (tokens, bias) on a single worker
// seeded from seed and returns the mean number of rounds to elimination.
func EstimateMeanRounds(tokens Tokens, bias float64, trials int, seed int64) (float64, error) {
	est, err := Experiment{Tokens: tokens, Bias: bias, Trials: trials, Seed: seed}.Run()
	if err != nil {
		return 0, err
	}
	return est.MeanRounds, nil
}
