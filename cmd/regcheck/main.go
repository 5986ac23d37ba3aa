// Command regcheck grades regular expression answers by bounded equivalence
// checking against a reference pattern.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
