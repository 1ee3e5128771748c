package coingame

// applyRound redistributes tokens for one flip round. Unanimous rounds
// leave the counts untouched. Otherwise the odd one out collects one token
// from each of the other two players, so the total is conserved. Returns
// true when the round left some player with zero tokens.
func applyRound(counts *[numPlayers]int, round FlipRound) bool {
	sum := round.Sum()
	if sum == 0 || sum == numPlayers {
		return false
	}

	// With one heads the heads-shower is the odd one out; with two it is
	// the lone tails-shower.
	winnerShows := sum == 1
	eliminated := false
	for i, heads := range round {
		if heads == winnerShows {
			counts[i] += numPlayers - 1
		} else {
			counts[i]--
			if counts[i] == 0 {
				eliminated = true
			}
		}
	}
	return eliminated
}

// SimulateTrial plays one game from the given token counts until the first
// elimination and returns the number of flip rounds consumed, unanimous
// rounds included. The trial owns its token state; nothing leaks between
// trials sharing a FlipSource. There is no cap on rounds: termination is
// almost sure for valid inputs, not guaranteed in any fixed number of steps.
func SimulateTrial(tokens Tokens, bias float64, src FlipSource) (int, error) {
	if err := tokens.Validate(); err != nil {
		return 0, err
	}
	if err := validBias(bias); err != nil {
		return 0, err
	}

	counts := tokens.counts()
	rounds := 0
	for {
		rounds++
		if applyRound(&counts, src.NextRound()) {
			return rounds, nil
		}
	}
}
