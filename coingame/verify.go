package coingame

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// Seed commitments let an experiment be published fairly: announce the
// commitment first, run the experiment, then reveal the seed string so
// anyone can re-derive the exact trial sequence.

// NewExperimentSeed returns a fresh random seed string and its sha256
// commitment. Feed the seed string to SeedFromString to drive an
// Experiment.
func NewExperimentSeed() (seed string, commitment string) {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	seed = hex.EncodeToString(bytes)

	h := sha256.Sum256([]byte(seed))
	commitment = hex.EncodeToString(h[:])

	return seed, commitment
}

// VerifySeedCommitment reports whether a revealed seed string matches a
// previously published commitment.
func VerifySeedCommitment(seed, commitment string) bool {
	h := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(h[:]) == commitment
}

// VerifyEstimate re-runs an experiment from its configuration and reports
// whether it reproduces a published estimate exactly. Experiments are
// deterministic in their configuration, so any mismatch means the published
// numbers did not come from this configuration.
func VerifyEstimate(ex Experiment, published Estimate) (bool, error) {
	est, err := ex.Run()
	if err != nil {
		return false, err
	}
	return est == published, nil
}
