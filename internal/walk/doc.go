// Package walk generates one-dimensional symmetric random walks.
//
// A walk is a cumulative sum of N independent ±1 steps with step
// length 1. Only the final position is of interest here, so [Walker.Final]
// discards the intermediate path:
//
//	w := walk.New(seed)
//	pos, err := w.Final(1000)
//
// Each call builds its own math/rand source from the walker's
// [SeedSequence], keeping trials independent while a single root seed
// reproduces every walk of a session.
package walk
