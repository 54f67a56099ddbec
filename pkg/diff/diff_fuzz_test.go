// Fuzz test comparing Compute+Apply round-trip behavior against raw
// byte input. Catches algorithmic bugs in the search engine and script
// builder that deterministic seeds don't happen to exercise.
//
// Failures mean: Apply(old, Compute(old, new)) != new, or a produced
// script violates the Count (1..64) or payload-subsequence invariants.

package diff_test

import (
	"testing"

	"github.com/gdkimura/diflib/pkg/diff"
)

func FuzzComputeApply_Roundtrips_When_Given_Arbitrary_Byte_Pairs(f *testing.F) {
	f.Add([]byte{}, []byte{})
	f.Add([]byte("abc"), []byte("abc"))
	f.Add([]byte("abc"), []byte(""))
	f.Add([]byte(""), []byte("abc"))
	f.Add([]byte("ac"), []byte("abc"))
	f.Add([]byte{0x00, 0x01, 0x02}, []byte{0xFF, 0xFE, 0xFD})
	f.Add(make([]byte, 70), make([]byte, 70))

	f.Fuzz(func(t *testing.T, old, new []byte) {
		// Cap input size: the fuzzer can hand us megabytes, and the
		// algorithm is O((len(old)+len(new)) * D) — not worth burning
		// fuzz budget on inputs too large to search quickly.
		const maxLen = 2048
		if len(old) > maxLen {
			old = old[:maxLen]
		}
		if len(new) > maxLen {
			new = new[:maxLen]
		}

		script, err := diff.ComputeBytes(old, new)
		if err != nil {
			t.Fatalf("ComputeBytes(%x, %x) returned error: %v", old, new, err)
		}

		cursor := 0 // position in new reached by the Insert payloads so far
		for i := 0; i < len(script); {
			b := script[i]
			kind := b >> 6
			count := int(b&0x3F) + 1
			if kind == 0 {
				t.Fatalf("script contains reserved Noop tag at offset %d", i)
			}
			if count < 1 || count > 64 {
				t.Fatalf("opcode at offset %d has out-of-range count %d", i, count)
			}
			i++
			if kind == 1 { // Insert
				for _, p := range script[i : i+count] {
					for cursor < len(new) && new[cursor] != p {
						cursor++
					}
					if cursor >= len(new) {
						t.Fatalf("insert payload byte %q at offset %d is not a subsequence of new", p, i)
					}
					cursor++
				}
				i += count
			}
		}

		got, err := diff.ApplyBytes(old, script)
		if err != nil {
			t.Fatalf("ApplyBytes returned error: %v", err)
		}
		if string(got) != string(new) {
			t.Fatalf("round trip mismatch: old=%x new=%x script=%x got=%x", old, new, script, got)
		}
	})
}
