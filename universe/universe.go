package universe

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
)

// DefaultMaxSize is the largest universe New accepts.
const DefaultMaxSize = 1 << 24

// Universe is the ordered sequence of all strings of length 0..MaxLength
// over an alphabet.
//
// A Universe is immutable and safe for concurrent use. Its strings are
// generated on demand; walking it twice regenerates the same sequence.
type Universe struct {
	alphabet  Alphabet
	maxLength int

	// offsets[n] is the index of the first string of length n.
	// offsets[len(offsets)-1] is the universe size.
	offsets []int
}

// New returns the universe of all strings of length 0..maxLength over
// alphabet, limited to DefaultMaxSize strings.
func New(alphabet Alphabet, maxLength int) (*Universe, error) {
	return NewWithLimit(alphabet, maxLength, DefaultMaxSize)
}

// NewWithLimit is like New but with an explicit size limit.
// A limit <= 0 only guards against int overflow.
func NewWithLimit(alphabet Alphabet, maxLength, limit int) (*Universe, error) {
	if maxLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, maxLength)
	}
	if limit <= 0 {
		limit = math.MaxInt
	}

	k := alphabet.Len()

	// Without symbols nothing extends the empty string.
	lengths := maxLength
	if k == 0 {
		lengths = 0
	}

	offsets := make([]int, 1, min(lengths, 64)+2)
	total, count := 0, 1
	for n := 0; n <= lengths; n++ {
		if count > limit-total {
			return nil, fmt.Errorf("%w: more than %d strings for %d symbols up to length %d",
				ErrTooLarge, limit, k, maxLength)
		}
		total += count
		offsets = append(offsets, total)
		if n < lengths {
			if count > math.MaxInt/k {
				return nil, fmt.Errorf("%w: size overflows int for %d symbols up to length %d",
					ErrTooLarge, k, maxLength)
			}
			count *= k
		}
	}

	return &Universe{
		alphabet:  alphabet,
		maxLength: maxLength,
		offsets:   offsets,
	}, nil
}

// Generate returns every string of length 0..maxLength over alphabet, in
// universe order, as a slice.
func Generate(alphabet Alphabet, maxLength int) ([]string, error) {
	u, err := New(alphabet, maxLength)
	if err != nil {
		return nil, err
	}
	return u.Strings(), nil
}

// Alphabet returns the alphabet the universe is built over.
func (u *Universe) Alphabet() Alphabet {
	return u.alphabet
}

// MaxLength returns the length bound.
func (u *Universe) MaxLength() int {
	return u.maxLength
}

// Len returns the number of strings, Σ_{i=0..MaxLength} k^i.
func (u *Universe) Len() int {
	return u.offsets[len(u.offsets)-1]
}

// CountOfLength returns the number of strings of length n.
func (u *Universe) CountOfLength(n int) int {
	if n < 0 || n+1 >= len(u.offsets) {
		return 0
	}
	return u.offsets[n+1] - u.offsets[n]
}

// All returns the whole universe as a sequence. The first string is "".
func (u *Universe) All() iter.Seq[string] {
	return u.Range(0, u.Len())
}

// Strings returns the whole universe as a newly allocated slice.
func (u *Universe) Strings() []string {
	out := make([]string, 0, u.Len())
	return slices.AppendSeq(out, u.All())
}

// At returns the i-th string of the universe.
// It panics if i is out of range.
func (u *Universe) At(i int) string {
	if i < 0 || i >= u.Len() {
		panic(fmt.Sprintf("universe: index %d out of range [0,%d)", i, u.Len()))
	}
	n, digits := u.locate(i)
	return string(u.build(make([]byte, 0, n), digits))
}

// Range returns the strings with indices in [lo, hi) as a sequence.
// Bounds are clamped to [0, Len()].
func (u *Universe) Range(lo, hi int) iter.Seq[string] {
	lo = max(lo, 0)
	hi = min(hi, u.Len())
	return func(yield func(string) bool) {
		if lo >= hi {
			return
		}
		n, digits := u.locate(lo)
		end := u.offsets[n+1]
		buf := make([]byte, 0, 16)
		for i := lo; i < hi; i++ {
			if i == end {
				// Roll over to the first string of the next length.
				n++
				end = u.offsets[n+1]
				digits = make([]int, n)
			}
			buf = u.build(buf[:0], digits)
			if !yield(string(buf)) {
				return
			}
			u.increment(digits)
		}
	}
}

// locate returns the length of the i-th string and its base-k digits,
// most significant first.
func (u *Universe) locate(i int) (int, []int) {
	// offsets is strictly increasing, so the length of the i-th string is
	// the last n with offsets[n] <= i.
	n := sort.Search(len(u.offsets), func(j int) bool { return u.offsets[j] > i }) - 1
	digits := make([]int, n)
	r := i - u.offsets[n]
	k := u.alphabet.Len()
	for p := n - 1; p >= 0; p-- {
		digits[p] = r % k
		r /= k
	}
	return n, digits
}

// build appends the symbols named by digits to buf.
func (u *Universe) build(buf []byte, digits []int) []byte {
	for _, d := range digits {
		buf = append(buf, u.alphabet.symbols[d]...)
	}
	return buf
}

// increment advances digits to the next string of the same length.
// The rightmost position varies fastest. Overflow past the last string of
// the length leaves digits at zero; Range handles the length change.
func (u *Universe) increment(digits []int) {
	k := u.alphabet.Len()
	for p := len(digits) - 1; p >= 0; p-- {
		digits[p]++
		if digits[p] < k {
			return
		}
		digits[p] = 0
	}
}

// String describes the universe, e.g. "strings of length <= 3 over {a,b}".
func (u *Universe) String() string {
	return fmt.Sprintf("strings of length <= %d over %s", u.maxLength, u.alphabet)
}
