package universe

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

// sizeFormula returns Σ_{i=0..n} k^i.
func sizeFormula(k, n int) int {
	total, pow := 0, 1
	for i := 0; i <= n; i++ {
		total += pow
		pow *= k
	}
	return total
}

func TestUniverseKnownSequence(t *testing.T) {
	u, err := New(MustAlphabet("a", "b"), 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"", "a", "b", "aa", "ab", "ba", "bb"}
	if got := u.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %q, want %q", got, want)
	}
}

func TestUniverseSize(t *testing.T) {
	symbols := []string{"a", "b", "c", "d"}
	for k := 0; k <= len(symbols); k++ {
		for n := 0; n <= 6; n++ {
			u, err := New(MustAlphabet(symbols[:k]...), n)
			if err != nil {
				t.Fatalf("New(k=%d, n=%d): %v", k, n, err)
			}

			want := sizeFormula(k, n)
			if k == 0 {
				want = 1
			}
			if u.Len() != want {
				t.Errorf("k=%d n=%d: Len() = %d, want %d", k, n, u.Len(), want)
			}

			all := u.Strings()
			if len(all) != want {
				t.Errorf("k=%d n=%d: generated %d strings, want %d", k, n, len(all), want)
			}
			if all[0] != "" {
				t.Errorf("k=%d n=%d: first string = %q, want empty", k, n, all[0])
			}

			seen := make(map[string]bool, len(all))
			for _, s := range all {
				if seen[s] {
					t.Fatalf("k=%d n=%d: duplicate %q", k, n, s)
				}
				seen[s] = true
			}
		}
	}
}

func TestUniverseOrder(t *testing.T) {
	// Declared order, not code point order, drives generation.
	u, err := New(MustAlphabet("b", "a"), 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "b", "a", "bb", "ba", "ab", "aa"}
	if got := u.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %q, want %q", got, want)
	}

	u, err = New(MustAlphabet("0", "1", "2"), 4)
	if err != nil {
		t.Fatal(err)
	}
	prev := ""
	for i, s := range u.Strings() {
		if i == 0 {
			continue
		}
		if len(s) < len(prev) {
			t.Fatalf("index %d: %q shorter than previous %q", i, s, prev)
		}
		if len(s) == len(prev) && s <= prev {
			t.Fatalf("index %d: %q not after %q", i, s, prev)
		}
		prev = s
	}
}

func TestUniverseEmptyAlphabet(t *testing.T) {
	for _, n := range []int{0, 1, 5, 1 << 30} {
		u, err := New(Alphabet{}, n)
		if err != nil {
			t.Fatalf("New(empty, %d): %v", n, err)
		}
		if got := u.Strings(); !reflect.DeepEqual(got, []string{""}) {
			t.Errorf("n=%d: Strings() = %q, want [\"\"]", n, got)
		}
		if u.MaxLength() != n {
			t.Errorf("MaxLength() = %d, want %d", u.MaxLength(), n)
		}
	}
}

func TestUniverseMultiCharSymbols(t *testing.T) {
	u, err := New(MustAlphabet("ab", "c"), 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "ab", "c", "abab", "abc", "cab", "cc"}
	if got := u.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %q, want %q", got, want)
	}
}

func TestUniverseAtMatchesRange(t *testing.T) {
	u, err := New(MustAlphabet("x", "y", "z"), 4)
	if err != nil {
		t.Fatal(err)
	}
	all := u.Strings()
	for i, s := range all {
		if got := u.At(i); got != s {
			t.Fatalf("At(%d) = %q, want %q", i, got, s)
		}
	}

	// Ranges that start mid-length and cross length boundaries.
	bounds := [][2]int{{0, 1}, {2, 9}, {3, 4}, {12, 40}, {39, len(all)}, {-5, 3}, {100, 1000}, {7, 7}}
	for _, b := range bounds {
		got := slices.Collect(u.Range(b[0], b[1]))
		lo, hi := max(b[0], 0), min(b[1], len(all))
		var want []string
		if lo < hi {
			want = all[lo:hi]
		}
		if !slices.Equal(got, want) {
			t.Errorf("Range(%d, %d) = %q, want %q", b[0], b[1], got, want)
		}
	}
}

func TestUniverseRestartable(t *testing.T) {
	u, err := New(MustAlphabet("a", "b"), 3)
	if err != nil {
		t.Fatal(err)
	}
	first := slices.Collect(u.All())
	second := slices.Collect(u.All())
	if !slices.Equal(first, second) {
		t.Errorf("second walk differs:\n first=%q\nsecond=%q", first, second)
	}
}

func TestUniverseEarlyStop(t *testing.T) {
	u, err := New(MustAlphabet("a", "b"), 3)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for s := range u.All() {
		if len(s) == 2 {
			break
		}
		got = append(got, s)
	}
	if want := []string{"", "a", "b"}; !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUniverseCountOfLength(t *testing.T) {
	u, err := New(MustAlphabet("a", "b", "c"), 3)
	if err != nil {
		t.Fatal(err)
	}
	for n, want := range []int{1, 3, 9, 27} {
		if got := u.CountOfLength(n); got != want {
			t.Errorf("CountOfLength(%d) = %d, want %d", n, got, want)
		}
	}
	if got := u.CountOfLength(4); got != 0 {
		t.Errorf("CountOfLength(4) = %d, want 0", got)
	}
	if got := u.CountOfLength(-1); got != 0 {
		t.Errorf("CountOfLength(-1) = %d, want 0", got)
	}
}

func TestUniverseErrors(t *testing.T) {
	if _, err := New(MustAlphabet("a"), -1); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("negative length: got %v, want ErrNegativeLength", err)
	}
	if _, err := NewWithLimit(MustAlphabet("a", "b"), 10, 100); !errors.Is(err, ErrTooLarge) {
		t.Errorf("over limit: got %v, want ErrTooLarge", err)
	}
	if _, err := NewWithLimit(MustAlphabet("a", "b"), 200, 0); !errors.Is(err, ErrTooLarge) {
		t.Errorf("overflow: got %v, want ErrTooLarge", err)
	}
	// Exactly at the limit is fine: 1+2+4+8 = 15.
	if _, err := NewWithLimit(MustAlphabet("a", "b"), 3, 15); err != nil {
		t.Errorf("at limit: %v", err)
	}
}

func TestGenerate(t *testing.T) {
	got, err := Generate(MustAlphabet("a"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"", "a", "aa", "aaa"}; !slices.Equal(got, want) {
		t.Errorf("Generate = %q, want %q", got, want)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	u, err := New(MustAlphabet("a"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("At(2) did not panic")
		}
	}()
	u.At(2)
}
