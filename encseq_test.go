package sain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// encode "acgt" over a 4-symbol alphabet plus SpecialSymbol wildcards,
// mirroring how a caller would build a DNA sequence with ambiguous bases.
func encodeDNA(s string) []int {
	out := make([]int, len(s))
	for i, c := range s {
		switch c {
		case 'a':
			out[i] = 0
		case 'c':
			out[i] = 1
		case 'g':
			out[i] = 2
		case 't':
			out[i] = 3
		default:
			out[i] = SpecialSymbol
		}
	}
	return out
}

func TestSortSuffixesEncodedWithSpecialPositions(t *testing.T) {
	data := encodeDNA("acgtNNacgt")
	encseq := NewMemEncodedSequence(data, 4)

	got := SortSuffixesEncoded(encseq, Forward, WithFinalCheck())

	require.Equal(t, len(data)+1, len(got))
	require.Equal(t, len(data), got[len(got)-1])

	nonspecial := len(data) - encseq.SpecialCharacters()
	seen := make(map[int]bool)
	for _, p := range got[:nonspecial] {
		require.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
		require.NotEqual(t, SpecialSymbol, data[p])
	}
}

func TestSortSuffixesEncodedWithoutFinalCheckOmitsSpecials(t *testing.T) {
	data := encodeDNA("acNgt")
	encseq := NewMemEncodedSequence(data, 4)

	got := SortSuffixesEncoded(encseq, Forward)

	require.Equal(t, len(data)-encseq.SpecialCharacters(), len(got))
	for _, p := range got {
		require.NotEqual(t, SpecialSymbol, data[p])
	}
}

func TestReadModeComplement(t *testing.T) {
	data := encodeDNA("acgt")
	encseq := NewMemEncodedSequence(data, 4)
	view := NewEncodedSeqView(encseq, Complement)

	require.Equal(t, 3, view.Get(0)) // 'a' (0) complements to 3 ('t')
	require.Equal(t, 0, view.Get(3)) // 't' (3) complements to 0 ('a')
}

func TestMemEncodedSequenceSpecialRanges(t *testing.T) {
	data := encodeDNA("acNNgtNa")
	encseq := NewMemEncodedSequence(data, 4)

	it := encseq.SpecialRanges(Forward)
	var ranges []Range
	for {
		r, more := it.Next()
		if !more {
			break
		}
		ranges = append(ranges, r)
	}
	require.Equal(t, []Range{{Start: 2, End: 4}, {Start: 6, End: 7}}, ranges)
	require.Equal(t, 3, encseq.SpecialCharacters())
}
