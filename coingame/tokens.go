// Package coingame simulates the curious coin-flipping game: three players
// holding l, m and n tokens flip coins simultaneously each round, the odd
// one out collects one token from each of the other two, and the game ends
// the moment any player is left with nothing. The package estimates the
// expected number of rounds until that first elimination by Monte Carlo and,
// for fair coins, evaluates the known closed-form answer.
package coingame

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned for token counts, biases or trial
// counts the game is not defined for. Callers should test with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Tokens holds the per-player token counts, in fixed player order.
type Tokens struct {
	L int
	M int
	N int
}

// counts returns the token counts as a mutable per-trial array.
func (t Tokens) counts() [numPlayers]int {
	return [numPlayers]int{t.L, t.M, t.N}
}

// Total returns the number of tokens in play. It is conserved by every
// redistribution round.
func (t Tokens) Total() int {
	return t.L + t.M + t.N
}

// Validate rejects token triples with any entry below one. A zero entry is
// not a finished game, it is a game that never started.
func (t Tokens) Validate() error {
	for i, n := range t.counts() {
		if n < 1 {
			return errors.Wrapf(ErrInvalidConfiguration, "player %d has %d tokens, need at least 1", i+1, n)
		}
	}
	return nil
}

// validBias rejects biases for which the game almost surely never ends.
// At bias 0 or 1 every round is unanimous and no token ever moves.
func validBias(bias float64) error {
	if bias <= 0 || bias >= 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "bias %v outside (0, 1)", bias)
	}
	return nil
}
