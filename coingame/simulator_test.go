package coingame

import (
	"errors"
	"testing"

	"gotest.tools/assert"
)

func TestApplyRoundOddOneOut(t *testing.T) {
	tests := []struct {
		name       string
		round      FlipRound
		start      [3]int
		want       [3]int
		eliminated bool
	}{
		{
			name:  "all heads is a no-op",
			round: FlipRound{true, true, true},
			start: [3]int{4, 7, 9},
			want:  [3]int{4, 7, 9},
		},
		{
			name:  "all tails is a no-op",
			round: FlipRound{false, false, false},
			start: [3]int{4, 7, 9},
			want:  [3]int{4, 7, 9},
		},
		{
			name:  "lone heads collects from both",
			round: FlipRound{true, false, false},
			start: [3]int{4, 7, 9},
			want:  [3]int{6, 6, 8},
		},
		{
			name:  "lone tails collects from both",
			round: FlipRound{true, false, true},
			start: [3]int{4, 7, 9},
			want:  [3]int{3, 9, 8},
		},
		{
			name:       "loser on one token is eliminated",
			round:      FlipRound{false, true, false},
			start:      [3]int{1, 5, 3},
			want:       [3]int{0, 7, 2},
			eliminated: true,
		},
		{
			name:       "both losers can bottom out at once",
			round:      FlipRound{false, true, false},
			start:      [3]int{1, 5, 1},
			want:       [3]int{0, 7, 0},
			eliminated: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			counts := tc.start
			eliminated := applyRound(&counts, tc.round)
			assert.Equal(t, counts, tc.want)
			assert.Equal(t, eliminated, tc.eliminated)
		})
	}
}

func TestApplyRoundConservesTokens(t *testing.T) {
	src := NewFlipSource(0.5, 99)
	counts := [3]int{4, 7, 9}
	total := 4 + 7 + 9

	for i := 0; i < 10000; i++ {
		if applyRound(&counts, src.NextRound()) {
			counts = [3]int{4, 7, 9}
			continue
		}
		got := counts[0] + counts[1] + counts[2]
		if got != total {
			t.Fatalf("round %d: token total = %d, want %d (counts %v)", i, got, total, counts)
		}
	}
}

func TestSimulateTrialRejectsBadTokens(t *testing.T) {
	src := NewFlipSource(0.5, 1)
	for _, tokens := range []Tokens{
		{L: 0, M: 1, N: 1},
		{L: 1, M: 0, N: 1},
		{L: 1, M: 1, N: 0},
		{L: -2, M: 3, N: 3},
	} {
		_, err := SimulateTrial(tokens, 0.5, src)
		assert.Assert(t, errors.Is(err, ErrInvalidConfiguration), "tokens %+v: got %v", tokens, err)
	}
}

func TestSimulateTrialRejectsDegenerateBias(t *testing.T) {
	src := NewFlipSource(0.5, 1)
	for _, bias := range []float64{0, 1, -0.1, 1.5} {
		_, err := SimulateTrial(Tokens{L: 1, M: 1, N: 1}, bias, src)
		assert.Assert(t, errors.Is(err, ErrInvalidConfiguration), "bias %v: got %v", bias, err)
	}
}

func TestSimulateTrialReturnsPositiveRounds(t *testing.T) {
	src := NewFlipSource(0.5, 7)
	for i := 0; i < 1000; i++ {
		rounds, err := SimulateTrial(Tokens{L: 2, M: 3, N: 4}, 0.5, src)
		assert.NilError(t, err)
		if rounds < 1 {
			t.Fatalf("trial %d: rounds = %d, want >= 1", i, rounds)
		}
	}
}

func TestBatchedStreamMatchesSequential(t *testing.T) {
	const seed = 20260823
	sequential := NewFlipSource(0.5, seed)
	batched := NewBatchedFlipSource(0.5, seed, 128)

	// Draw past several refills to cover the batch boundary.
	for i := 0; i < 1000; i++ {
		want := sequential.NextRound()
		got := batched.NextRound()
		if got != want {
			t.Fatalf("round %d: batched %v, sequential %v", i, got, want)
		}
	}
}

func TestBatchedSourceDefaultsBatchSize(t *testing.T) {
	sequential := NewFlipSource(0.3, 5)
	batched := NewBatchedFlipSource(0.3, 5, 0)
	for i := 0; i < DefaultBatchSize+10; i++ {
		assert.Equal(t, batched.NextRound(), sequential.NextRound())
	}
}
