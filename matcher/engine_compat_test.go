package matcher

import "testing"

// TestEnginesAgree compares coregex against the stdlib engine on every short
// string over {a,b,c}. The two must classify identically.
func TestEnginesAgree(t *testing.T) {
	patterns := []string{
		"",
		"a",
		"a|b",
		"a*b*",
		"(a|b)*c",
		"(ab|ba)*",
		"a?b?c?",
		"[ab]{2,3}",
		"(a*b)*|c",
		"((a|b)(a|b))*",
		"a(b|c)*a",
		"(a|ab)(c|bcd)?",
		"[^a]*",
		"(?:aa|a)*b",
	}

	inputs := []string{""}
	frontier := []string{""}
	for n := 0; n < 5; n++ {
		var next []string
		for _, s := range frontier {
			for _, c := range []string{"a", "b", "c"} {
				next = append(next, s+c)
			}
		}
		inputs = append(inputs, next...)
		frontier = next
	}

	for _, pattern := range patterns {
		co := MustCompile(pattern, WithEngine(EngineCoregex))
		std := MustCompile(pattern, WithEngine(EngineStdlib))
		for _, s := range inputs {
			if co.MatchString(s) != std.MatchString(s) {
				t.Errorf("pattern %q input %q: coregex=%v stdlib=%v",
					pattern, s, co.MatchString(s), std.MatchString(s))
			}
		}
	}
}
