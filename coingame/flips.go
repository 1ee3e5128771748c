package coingame

import "math/rand"

// FlipRound is one simultaneous flip, one outcome per player in player
// order. true is heads.
type FlipRound [numPlayers]bool

// Sum counts the heads in the round. 0 and 3 are unanimous no-op rounds,
// 1 and 2 produce an odd one out.
func (r FlipRound) Sum() int {
	sum := 0
	for _, heads := range r {
		if heads {
			sum++
		}
	}
	return sum
}

// A FlipSource produces the rounds a trial consumes. Implementations are
// not safe for concurrent use; every worker owns its own source.
type FlipSource interface {
	NextRound() FlipRound
}

// sequentialSource draws each round on demand, one draw per player per
// round in player order.
type sequentialSource struct {
	bias    float64
	players [numPlayers]*rand.Rand
}

// NewFlipSource returns a sequential FlipSource with three per-player
// random sources derived from the master seed.
func NewFlipSource(bias float64, seed int64) FlipSource {
	return &sequentialSource{bias: bias, players: playerSources(seed)}
}

// NewFlipSourceSeeds is NewFlipSource with an explicit per-player seed
// triple instead of a derived one.
func NewFlipSourceSeeds(bias float64, seeds [numPlayers]int64) FlipSource {
	s := &sequentialSource{bias: bias}
	for i, seed := range seeds {
		s.players[i] = rand.New(rand.NewSource(seed))
	}
	return s
}

func (s *sequentialSource) NextRound() (round FlipRound) {
	for i, rng := range s.players {
		round[i] = rng.Float64() < s.bias
	}
	return round
}

// batchedSource pre-draws a block of rounds and serves them from memory,
// refilling when the block runs out. It draws from the same per-player
// sources in the same order as sequentialSource, so under equal seeds the
// two strategies produce identical round streams; the batch is purely a
// throughput optimization.
type batchedSource struct {
	inner *sequentialSource
	buf   []FlipRound
	next  int
}

// DefaultBatchSize is the number of rounds pre-drawn per refill when the
// caller does not choose one.
const DefaultBatchSize = 4096

// NewBatchedFlipSource returns a FlipSource that pre-draws batchSize rounds
// at a time. batchSize below one falls back to DefaultBatchSize.
func NewBatchedFlipSource(bias float64, seed int64, batchSize int) FlipSource {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &batchedSource{
		inner: &sequentialSource{bias: bias, players: playerSources(seed)},
		buf:   make([]FlipRound, 0, batchSize),
	}
}

func (b *batchedSource) NextRound() FlipRound {
	if b.next == len(b.buf) {
		b.refill()
	}
	round := b.buf[b.next]
	b.next++
	return round
}

func (b *batchedSource) refill() {
	b.buf = b.buf[:cap(b.buf)]
	for i := range b.buf {
		b.buf[i] = b.inner.NextRound()
	}
	b.next = 0
}
