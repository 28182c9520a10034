// Package randutil derives reproducible math/rand/v2 generators from int64 seeds.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	return Stream(seed, 0)
}

// Stream returns an independent generator for the given stream number.
// Work split across goroutines draws one stream per unit of work so results
// do not depend on scheduling.
func Stream(seed int64, stream uint64) *rand.Rand {
	base := mix(uint64(seed)) ^ mix(stream*goldenRatio64+1)
	return rand.New(rand.NewPCG(mix(base), mix(base+goldenRatio64)))
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
