package coingame

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// numPlayers is fixed by the puzzle. The odd-one-out rule only makes sense
// with exactly three coins on the table.
const numPlayers = 3

// NewSeededRNG returns a rand.Rand seeded from an arbitrary string. Hashing
// the string first means nearby labels ("seed-1", "seed-2") still land on
// unrelated points of the generator's state space.
func NewSeededRNG(seed string) *rand.Rand {
	hash := sha256.Sum256([]byte(seed))
	seedInt := int64(binary.BigEndian.Uint64(hash[:8]))
	return rand.New(rand.NewSource(seedInt))
}

// SeedFromString derives the numeric master seed used for a seed string
// published ahead of a run. Same derivation as NewSeededRNG so a published
// seed string and its numeric form drive identical experiments.
func SeedFromString(seed string) int64 {
	hash := sha256.Sum256([]byte(seed))
	return int64(binary.BigEndian.Uint64(hash[:8]))
}

// playerSources derives one independent random source per player from a
// single master seed. Convention: sources are created in player order and
// each is advanced exactly once per round, player 0 first. Every execution
// strategy in this package draws in that order, which is what makes the
// sequential and batched strategies interchangeable.
func playerSources(seed int64) [numPlayers]*rand.Rand {
	var sources [numPlayers]*rand.Rand
	for i := range sources {
		sources[i] = NewSeededRNG(fmt.Sprintf("%d-player-%d", seed, i))
	}
	return sources
}

// workerSeed derives the master seed for one worker's batch of trials.
// Workers never share sources, so their draw streams stay independent.
func workerSeed(seed int64, worker int) int64 {
	return SeedFromString(fmt.Sprintf("%d-worker-%d", seed, worker))
}
