// Package parallel splits index ranges across goroutines while keeping the
// results in index order.
package parallel

import "golang.org/x/sync/errgroup"

// MinChunk is the smallest range worth handing to its own goroutine.
const MinChunk = 1024

// Chunk is the half-open index range [Lo, Hi).
type Chunk struct {
	Lo, Hi int
}

// Split divides [0, n) into at most workers contiguous chunks of near-equal
// size, in order. Chunks are never smaller than MinChunk unless n itself is.
// It returns nil for n <= 0.
func Split(n, workers int) []Chunk {
	if n <= 0 {
		return nil
	}
	workers = max(workers, 1)
	workers = min(workers, (n+MinChunk-1)/MinChunk)

	chunks := make([]Chunk, 0, workers)
	size, extra := n/workers, n%workers
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		chunks = append(chunks, Chunk{Lo: lo, Hi: hi})
		lo = hi
	}
	return chunks
}

// Map runs fn over every chunk of [0, n) with at most workers goroutines and
// returns the per-chunk results in chunk order. With a single chunk fn runs
// on the calling goroutine.
func Map[T any](n, workers int, fn func(c Chunk) T) []T {
	chunks := Split(n, workers)
	out := make([]T, len(chunks))
	if len(chunks) == 1 {
		out[0] = fn(chunks[0])
		return out
	}

	// fn has no error result, so the group only bounds the goroutines and
	// Wait always returns nil.
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, c := range chunks {
		g.Go(func() error {
			out[i] = fn(c)
			return nil
		})
	}
	_ = g.Wait() // never fails; see above
	return out
}
