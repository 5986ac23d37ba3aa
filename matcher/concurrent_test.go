package matcher

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrentMatchString calls MatchString from many goroutines on one
// Pattern. Run with -race; coregex search state must never be shared.
func TestConcurrentMatchString(t *testing.T) {
	patterns := []string{
		`(a+b)*abb(a+b)*`,
		`(a+b)*abb`,
		`a*b*`,
		`(ab+ba)*`,
	}
	inputs := []string{"", "a", "abb", "aabb", "babba", "abab", "bbbbbbbabbaaa", "ba"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			p := MustCompile(pattern)
			oracle := MustCompile(pattern, WithEngine(EngineStdlib))

			want := make([]bool, len(inputs))
			for i, s := range inputs {
				want[i] = oracle.MatchString(s)
			}

			const numGoroutines = 16
			const numIterations = 200

			var wg sync.WaitGroup
			var mismatches atomic.Int64
			for range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range numIterations {
						for i, s := range inputs {
							if p.MatchString(s) != want[i] {
								mismatches.Add(1)
							}
						}
					}
				}()
			}
			wg.Wait()

			if n := mismatches.Load(); n > 0 {
				t.Errorf("%d concurrent calls disagreed with the stdlib engine", n)
			}
		})
	}
}
