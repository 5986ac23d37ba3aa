package compare_test

import (
	"slices"
	"testing"

	"github.com/coregx/regcheck/classify"
	"github.com/coregx/regcheck/compare"
	"github.com/coregx/regcheck/matcher"
	"github.com/coregx/regcheck/universe"
)

func reference(t *testing.T, pattern string, maxLength int, symbols ...string) classify.Partition {
	t.Helper()
	u, err := universe.New(universe.MustAlphabet(symbols...), maxLength)
	if err != nil {
		t.Fatalf("universe.New: %v", err)
	}
	return classify.Classify(matcher.MustCompile(pattern), u)
}

func TestCompareKnownExamples(t *testing.T) {
	tests := []struct {
		name           string
		reference      string
		candidate      string
		maxLength      int
		symbols        []string
		falseNegatives []string
		falsePositives []string
	}{
		{
			name:           "missing alternative",
			reference:      "a+b",
			candidate:      "a",
			maxLength:      2,
			symbols:        []string{"a", "b"},
			falseNegatives: []string{"b"},
		},
		{
			name:           "one-or-more instead of star",
			reference:      "a*",
			candidate:      "aa*",
			maxLength:      3,
			symbols:        []string{"a"},
			falseNegatives: []string{""},
		},
		{
			name:      "identical",
			reference: "(ab)*",
			candidate: "(ab)*",
			maxLength: 4,
			symbols:   []string{"a", "b"},
		},
		{
			name:           "too permissive",
			reference:      "(ab)*",
			candidate:      "(a+b)*",
			maxLength:      2,
			symbols:        []string{"a", "b"},
			falsePositives: []string{"a", "b", "aa", "ba", "bb"},
		},
		{
			name:           "both directions",
			reference:      "a(a+b)*",
			candidate:      "(a+b)*b",
			maxLength:      2,
			symbols:        []string{"a", "b"},
			falseNegatives: []string{"a", "aa"},
			falsePositives: []string{"b", "bb"},
		},
		{
			name:      "equivalent but written differently",
			reference: "(a+b)*",
			candidate: "(a*b*)*",
			maxLength: 6,
			symbols:   []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := reference(t, tt.reference, tt.maxLength, tt.symbols...)
			r := compare.Partition(ref, matcher.MustCompile(tt.candidate))

			if !slices.Equal(r.FalseNegatives, tt.falseNegatives) {
				t.Errorf("FalseNegatives = %q, want %q", r.FalseNegatives, tt.falseNegatives)
			}
			if !slices.Equal(r.FalsePositives, tt.falsePositives) {
				t.Errorf("FalsePositives = %q, want %q", r.FalsePositives, tt.falsePositives)
			}
			wantConsistent := len(tt.falseNegatives) == 0 && len(tt.falsePositives) == 0
			if r.Consistent() != wantConsistent {
				t.Errorf("Consistent() = %v, want %v", r.Consistent(), wantConsistent)
			}
			if r.Len() != len(tt.falseNegatives)+len(tt.falsePositives) {
				t.Errorf("Len() = %d", r.Len())
			}
		})
	}
}

func TestCompareSelfConsistent(t *testing.T) {
	patterns := []string{"ε", "a", "a+b", "(ab)*", "a*b*", "(a+b)*abb", "((a+b)(a+b))*", "b(ab)*a+ε"}
	alphabets := [][]string{{"a"}, {"a", "b"}, {"b", "a", "c"}}

	for _, pattern := range patterns {
		for _, symbols := range alphabets {
			for _, n := range []int{0, 1, 4} {
				ref := reference(t, pattern, n, symbols...)
				r := compare.Partition(ref, matcher.MustCompile(pattern))
				if !r.Consistent() {
					t.Errorf("%q vs itself over %v up to %d: %+v", pattern, symbols, n, r)
				}
			}
		}
	}
}

// TestCompareOrderPreserved checks that counterexamples come out in
// universe order.
func TestCompareOrderPreserved(t *testing.T) {
	u, err := universe.New(universe.MustAlphabet("a", "b"), 5)
	if err != nil {
		t.Fatal(err)
	}
	position := make(map[string]int, u.Len())
	for i, s := range u.Strings() {
		position[s] = i
	}

	ref := classify.Classify(matcher.MustCompile("(a+b)*a"), u)
	r := compare.Partition(ref, matcher.MustCompile("(a+b)*b"))

	for _, set := range [][]string{r.FalseNegatives, r.FalsePositives} {
		if len(set) == 0 {
			t.Fatal("expected counterexamples")
		}
		for i := 1; i < len(set); i++ {
			if position[set[i-1]] >= position[set[i]] {
				t.Errorf("%q listed before %q", set[i-1], set[i])
			}
		}
	}
	if r.FalseNegatives[0] != "a" || r.FalsePositives[0] != "b" {
		t.Errorf("first counterexamples = %q / %q, want a / b", r.FalseNegatives[0], r.FalsePositives[0])
	}
}

func TestCompareWorkersAgree(t *testing.T) {
	ref := reference(t, "(a+b)*c", 9, "a", "b", "c")
	candidate := matcher.MustCompile("(a+b+c)*c")

	want := compare.Partition(ref, candidate)
	if want.Consistent() {
		t.Fatal("expected counterexamples")
	}
	for _, workers := range []int{2, 3, 8} {
		got := compare.Partition(ref, candidate, compare.WithWorkers(workers))
		if !slices.Equal(got.FalseNegatives, want.FalseNegatives) ||
			!slices.Equal(got.FalsePositives, want.FalsePositives) {
			t.Errorf("workers=%d: result differs", workers)
		}
	}
}

func TestCompareWorkersAgreeNFA(t *testing.T) {
	ref := reference(t, "(a+b)*abb(a+b)*", 12, "a", "b")
	candidate := matcher.MustCompile("(a+b)*ab(a+b)*")

	want := compare.Partition(ref, matcher.MustCompile("(a+b)*ab(a+b)*", matcher.WithEngine(matcher.EngineStdlib)))
	if len(want.FalsePositives) == 0 {
		t.Fatal("expected false positives")
	}
	for _, workers := range []int{1, 4, 8} {
		got := compare.Partition(ref, candidate, compare.WithWorkers(workers))
		if !slices.Equal(got.FalseNegatives, want.FalseNegatives) ||
			!slices.Equal(got.FalsePositives, want.FalsePositives) {
			t.Errorf("workers=%d: result differs from the stdlib engine", workers)
		}
	}
}

func TestCompareEmptySets(t *testing.T) {
	r := compare.Compare(nil, nil, matcher.MustCompile("a"))
	if !r.Consistent() {
		t.Errorf("empty inputs should be consistent: %+v", r)
	}
}
