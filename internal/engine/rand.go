package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic scene behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func rangeF(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

func rangeI(r *rand.Rand, min, max int) int {
	return min + r.IntN(max-min+1)
}

func chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}
